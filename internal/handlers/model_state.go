package handlers

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/shopspring/decimal"

	"katalog/internal/models"
)

// FieldError is a validation failure attached to one submitted field.
type FieldError struct {
	Field   string
	Message string
}

// ModelState collects the validation failures of a submitted form. A form
// is only handed to the repository when its ModelState is valid.
type ModelState struct {
	errors []FieldError
}

// NewModelState returns an empty, valid ModelState.
func NewModelState() *ModelState {
	return &ModelState{}
}

// AddError records a failure for field. An empty field marks a form-level error.
func (m *ModelState) AddError(field, message string) {
	m.errors = append(m.errors, FieldError{Field: field, Message: message})
}

// IsValid reports whether no errors were recorded.
func (m *ModelState) IsValid() bool {
	return len(m.errors) == 0
}

// Errors returns the recorded failures in insertion order.
func (m *ModelState) Errors() []FieldError {
	return m.errors
}

// ErrorFor returns the first message recorded for field, or "".
func (m *ModelState) ErrorFor(field string) string {
	for _, e := range m.errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// newValidator returns a validator reporting fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs the struct rules of product and records every failure.
func (m *ModelState) Validate(v *validator.Validate, product *models.Product) {
	err := v.Struct(product)
	if err == nil {
		return
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		m.AddError("", err.Error())
		return
	}
	for _, e := range validationErrors {
		m.AddError(e.Field(), formatValidationError(e))
	}
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", e.Field(), e.Tag())
	}
}

// productForm is the urlencoded shape of the product create/edit forms.
// Numeric inputs arrive as text so that malformed values become field
// errors instead of a failed request.
type productForm struct {
	ID    string `form:"id"`
	Name  string `form:"name"`
	Price string `form:"price"`
	Stock string `form:"stock"`
	Color string `form:"color"`
}

// toProduct converts the form into a product, recording conversion failures
// in state. Blank optional inputs become nil. Text fields are copied since
// the parsed form aliases the request buffer, which fasthttp reuses.
func (f productForm) toProduct(state *ModelState) *models.Product {
	product := &models.Product{Name: utils.CopyString(strings.TrimSpace(f.Name))}

	if id := strings.TrimSpace(f.ID); id != "" {
		n, err := strconv.Atoi(id)
		if err != nil {
			state.AddError("id", "id must be a whole number")
		} else {
			product.ID = n
		}
	}

	if price := strings.TrimSpace(f.Price); price != "" {
		d, err := decimal.NewFromString(price)
		if err != nil {
			state.AddError("price", "price must be a number")
		} else {
			product.Price = &d
		}
	}

	if stock := strings.TrimSpace(f.Stock); stock != "" {
		n, err := strconv.Atoi(stock)
		if err != nil {
			state.AddError("stock", "stock must be a whole number")
		} else {
			product.Stock = &n
		}
	}

	if color := strings.TrimSpace(f.Color); color != "" {
		color = utils.CopyString(color)
		product.Color = &color
	}

	return product
}

// bindProductForm parses the submitted form and validates the resulting
// product. The returned ModelState is never nil.
func bindProductForm(c *fiber.Ctx, v *validator.Validate) (*models.Product, *ModelState, error) {
	var form productForm
	if err := c.BodyParser(&form); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}

	state := NewModelState()
	product := form.toProduct(state)
	state.Validate(v, product)
	return product, state, nil
}
