package models

// Entity is implemented by records that carry an integer identity.
// The store owns identity: it reads it with EntityID and assigns it on
// create with SetEntityID.
type Entity interface {
	EntityID() int
	SetEntityID(id int)
}
