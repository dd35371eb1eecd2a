package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"katalog/internal/database"
	"katalog/internal/models"
	"katalog/internal/repositories"
)

func setupGORMRepository(t *testing.T) *repositories.GORMRepository[models.Product] {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return repositories.NewGORMRepository[models.Product](db)
}

func newProduct(name string, price string, stock int, color string) *models.Product {
	p := decimal.RequireFromString(price)
	return &models.Product{Name: name, Price: &p, Stock: &stock, Color: &color}
}

func TestGORMRepository_CreateAssignsIDAndGetByIDReturnsIt(t *testing.T) {
	repo := setupGORMRepository(t)
	ctx := context.Background()

	kalem := newProduct("Kalem", "100", 50, "Kırmızı")
	require.NoError(t, repo.Create(ctx, kalem))
	assert.NotZero(t, kalem.ID)

	found, err := repo.GetByID(ctx, kalem.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, kalem.ID, found.ID)
	assert.Equal(t, "Kalem", found.Name)
	require.NotNil(t, found.Price)
	assert.True(t, decimal.NewFromInt(100).Equal(*found.Price))
	assert.Equal(t, 50, *found.Stock)
	assert.Equal(t, "Kırmızı", *found.Color)
}

func TestGORMRepository_GetByIDMissingReturnsNil(t *testing.T) {
	repo := setupGORMRepository(t)

	found, err := repo.GetByID(context.Background(), 0)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestGORMRepository_GetAllReturnsEveryRecord(t *testing.T) {
	repo := setupGORMRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProduct("Kalem", "100", 50, "Kırmızı")))
	require.NoError(t, repo.Create(ctx, newProduct("Defter", "200", 500, "Mavi")))

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Kalem", products[0].Name)
	assert.Equal(t, "Defter", products[1].Name)
}

func TestGORMRepository_UpdateReplacesRecord(t *testing.T) {
	repo := setupGORMRepository(t)
	ctx := context.Background()

	kalem := newProduct("Kalem", "100", 50, "Kırmızı")
	require.NoError(t, repo.Create(ctx, kalem))

	replacement := &models.Product{ID: kalem.ID, Name: "Kurşun Kalem"}
	require.NoError(t, repo.Update(ctx, replacement))

	found, err := repo.GetByID(ctx, kalem.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Kurşun Kalem", found.Name)
	assert.Nil(t, found.Price)
	assert.Nil(t, found.Stock)
	assert.Nil(t, found.Color)
}

func TestGORMRepository_DeleteRemovesRecord(t *testing.T) {
	repo := setupGORMRepository(t)
	ctx := context.Background()

	kalem := newProduct("Kalem", "100", 50, "Kırmızı")
	require.NoError(t, repo.Create(ctx, kalem))
	require.NoError(t, repo.Delete(ctx, kalem))

	found, err := repo.GetByID(ctx, kalem.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
