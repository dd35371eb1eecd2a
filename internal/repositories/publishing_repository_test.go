package repositories_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// MockEventPublisher is a mock implementation of repositories.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(ctx context.Context, event models.ProductEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func eventOf(eventType models.EventType, id int) interface{} {
	return mock.MatchedBy(func(e models.ProductEvent) bool {
		return e.Type == eventType && e.EntityID == id && e.Resource == "products" && e.ID != ""
	})
}

func setupPublishingRepository() (*repositories.PublishingRepository[models.Product, *models.Product], *MockEventPublisher) {
	publisher := new(MockEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	inner := repositories.NewMemoryRepository[models.Product]()
	return repositories.NewPublishingRepository[models.Product](inner, publisher, "products", logger), publisher
}

func TestPublishingRepository_PublishesMutations(t *testing.T) {
	repo, publisher := setupPublishingRepository()
	ctx := context.Background()

	publisher.On("PublishProductEvent", mock.Anything, eventOf(models.EventCreated, 1)).Return(nil).Once()
	publisher.On("PublishProductEvent", mock.Anything, eventOf(models.EventUpdated, 1)).Return(nil).Once()
	publisher.On("PublishProductEvent", mock.Anything, eventOf(models.EventDeleted, 1)).Return(nil).Once()

	kalem := &models.Product{Name: "Kalem"}
	require.NoError(t, repo.Create(ctx, kalem))
	kalem.Name = "Kurşun Kalem"
	require.NoError(t, repo.Update(ctx, kalem))
	require.NoError(t, repo.Delete(ctx, kalem))

	publisher.AssertExpectations(t)
}

func TestPublishingRepository_ReadsAreNotPublished(t *testing.T) {
	repo, publisher := setupPublishingRepository()
	ctx := context.Background()

	_, err := repo.GetAll(ctx)
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)

	publisher.AssertNotCalled(t, "PublishProductEvent", mock.Anything, mock.Anything)
}

func TestPublishingRepository_PublishFailureDoesNotFailStore(t *testing.T) {
	repo, publisher := setupPublishingRepository()
	ctx := context.Background()

	publisher.On("PublishProductEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	kalem := &models.Product{Name: "Kalem"}
	assert.NoError(t, repo.Create(ctx, kalem))

	found, err := repo.GetByID(ctx, kalem.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
	publisher.AssertExpectations(t)
}
