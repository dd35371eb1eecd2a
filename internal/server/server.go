package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"katalog/internal/handlers"
	"katalog/internal/repositories"
)

// Mount points of the two product surfaces.
const (
	APIPrefix   = "/api"
	FormsPrefix = "/products"
)

// Options carries the collaborators of the HTTP application.
type Options struct {
	Products repositories.ProductRepository
	Views    fiber.Views
	// Layout wraps every rendered page; empty renders views bare.
	Layout string
	Logger *slog.Logger
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// NewApp builds the fiber application serving the REST resource under
// /api/products and the form flow under /products.
func NewApp(opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:               "katalog",
		Immutable:             true,
		Views:                 opts.Views,
		ErrorHandler:          ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiHandler := handlers.NewProductAPIHandler(opts.Products)
	apiHandler.RegisterRoutes(app.Group(APIPrefix))

	var layout []string
	if opts.Layout != "" {
		layout = append(layout, opts.Layout)
	}
	formHandler := handlers.NewProductHandler(opts.Products, FormsPrefix, layout...)
	formHandler.RegisterRoutes(app.Group(FormsPrefix))

	return app
}

// ErrorHandler logs errors escaping a handler and answers with their fiber
// status, or 500 for anything else.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.ErrorContext(c.UserContext(), "request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"message": message,
		})
	}
}
