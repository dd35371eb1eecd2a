package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/internal/models"
)

func TestProductForm_ToProduct(t *testing.T) {
	state := NewModelState()
	product := productForm{
		ID:    " 4 ",
		Name:  " Kalem ",
		Price: "12.50",
		Stock: "3",
		Color: "",
	}.toProduct(state)

	require.True(t, state.IsValid())
	assert.Equal(t, 4, product.ID)
	assert.Equal(t, "Kalem", product.Name)
	require.NotNil(t, product.Price)
	assert.Equal(t, "12.5", product.Price.String())
	require.NotNil(t, product.Stock)
	assert.Equal(t, 3, *product.Stock)
	assert.Nil(t, product.Color)
}

func TestProductForm_ToProduct_ConversionErrors(t *testing.T) {
	state := NewModelState()
	product := productForm{ID: "x", Name: "Kalem", Price: "abc", Stock: "1.5"}.toProduct(state)

	assert.False(t, state.IsValid())
	assert.Len(t, state.Errors(), 3)
	assert.Equal(t, "price must be a number", state.ErrorFor("price"))
	assert.Equal(t, "stock must be a whole number", state.ErrorFor("stock"))
	assert.NotEmpty(t, state.ErrorFor("id"))
	assert.Nil(t, product.Price)
	assert.Nil(t, product.Stock)
}

func TestModelState_Validate(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name      string
		product   models.Product
		wantField string
		wantMsg   string
	}{
		{name: "valid", product: models.Product{Name: "Kalem"}},
		{name: "missing name", product: models.Product{}, wantField: "name", wantMsg: "name is required"},
		{name: "long name", product: models.Product{Name: strings.Repeat("a", 101)}, wantField: "name", wantMsg: "name must be at most 100 characters"},
		{name: "long color", product: models.Product{Name: "Kalem", Color: strPtr(strings.Repeat("b", 51))}, wantField: "color", wantMsg: "color must be at most 50 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewModelState()
			state.Validate(v, &tt.product)

			if tt.wantField == "" {
				assert.True(t, state.IsValid())
				return
			}
			assert.False(t, state.IsValid())
			assert.Equal(t, tt.wantMsg, state.ErrorFor(tt.wantField))
		})
	}
}

func TestModelState_NegativeValuesAreNotRejected(t *testing.T) {
	stock := -5
	state := NewModelState()
	state.Validate(newValidator(), &models.Product{Name: "Kalem", Stock: &stock})

	assert.True(t, state.IsValid())
}

func TestProductLocation(t *testing.T) {
	assert.Equal(t, "/api/products/3", productLocation("/api/products", 3))
	assert.Equal(t, "/api/products/3", productLocation("/api/products/", 3))
}

func strPtr(s string) *string { return &s }
