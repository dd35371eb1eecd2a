package models_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/internal/models"
)

func TestProductEvent_RoutingKey(t *testing.T) {
	event := models.NewProductEvent(models.EventDeleted, "products", 3)

	assert.Equal(t, "products.deleted", event.RoutingKey())
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestProduct_JSONShape(t *testing.T) {
	var product models.Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Kalem","price":100.5,"stock":null}`), &product))

	assert.Equal(t, 1, product.EntityID())
	require.NotNil(t, product.Price)
	assert.Equal(t, "100.5", product.Price.String())
	assert.Nil(t, product.Stock)
	assert.Nil(t, product.Color)

	out, err := json.Marshal(product)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Kalem","price":100.5,"stock":null,"color":null}`, string(out))
}

func TestProduct_MarshalPriceAsNumber(t *testing.T) {
	price := decimal.RequireFromString("7.25")
	out, err := json.Marshal(models.Product{ID: 3, Name: "Silgi", Price: &price})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Silgi","price":7.25,"stock":null,"color":null}`, string(out))

	out, err = json.Marshal([]models.Product{{ID: 4, Name: "Defter"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":4,"name":"Defter","price":null,"stock":null,"color":null}]`, string(out))

	// Decimals outside a Product keep the library's quoted form.
	out, err = json.Marshal(decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, `"5"`, string(out))
}
