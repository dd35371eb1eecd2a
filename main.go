package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"katalog/internal/config"
	"katalog/internal/database"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/server"
	"katalog/pkg/rabbitmq"
	"katalog/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("katalog stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load(viper.New())
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Repository ---
	var productRepo repositories.ProductRepository
	if cfg.Database.Driver == config.DriverMemory {
		productRepo = repositories.NewMemoryRepository[models.Product]()
	} else {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}
		productRepo = repositories.NewGORMRepository[models.Product](db)
	}

	if cfg.SeedData {
		if err := seedProducts(ctx, productRepo, logger); err != nil {
			return err
		}
	}

	// --- Messaging (optional) ---
	if cfg.RabbitMQ.Enabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
		}, logger)
		if err != nil {
			return err
		}
		defer mqClient.Close()

		productRepo = repositories.NewPublishingRepository[models.Product](productRepo, mqClient, "products", logger)

		go func() {
			err := mqClient.ConsumeProductEvents(ctx, func(ctx context.Context, event models.ProductEvent) error {
				logger.InfoContext(ctx, "catalog event",
					slog.String("routing_key", event.RoutingKey()),
					slog.Int("entity_id", event.EntityID),
					slog.Time("occurred_at", event.OccurredAt),
				)
				return nil
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("catalog event consumer stopped", slog.String("error", err.Error()))
			}
		}()
	}

	// --- HTTP ---
	views, err := web.NewViews()
	if err != nil {
		return err
	}
	app := server.NewApp(server.Options{
		Products:  productRepo,
		Views:     views,
		Layout:    web.Layout,
		Logger:    logger,
		AccessLog: true,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", cfg.AppPort))
		listenErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// seedProducts populates an empty product store with the demo catalog.
func seedProducts(ctx context.Context, repo repositories.ProductRepository, logger *slog.Logger) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect product store: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	products := []models.Product{
		newProduct("Kalem", 100, 50, "Kırmızı"),
		newProduct("Defter", 200, 500, "Mavi"),
	}
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
		logger.Info("seeded product", slog.String("name", products[i].Name), slog.Int("id", products[i].ID))
	}
	return nil
}

func newProduct(name string, price int64, stock int, color string) models.Product {
	p := decimal.NewFromInt(price)
	return models.Product{Name: name, Price: &p, Stock: &stock, Color: &color}
}
