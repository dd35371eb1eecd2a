package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// View names rendered by ProductHandler.
const (
	ViewProductIndex   = "products/index"
	ViewProductDetails = "products/details"
	ViewProductCreate  = "products/create"
	ViewProductEdit    = "products/edit"
	ViewProductDelete  = "products/delete"
)

// ProductHandler serves the HTML form flow of the product catalog.
type ProductHandler struct {
	repo      repositories.ProductRepository
	validate  *validator.Validate
	indexPath string
	layout    []string
}

// NewProductHandler creates a new ProductHandler. Successful mutations
// redirect to indexPath; layout, if given, wraps every rendered view.
func NewProductHandler(repo repositories.ProductRepository, indexPath string, layout ...string) *ProductHandler {
	return &ProductHandler{
		repo:      repo,
		validate:  newValidator(),
		indexPath: indexPath,
		layout:    layout,
	}
}

// RegisterRoutes registers the form routes. router is expected to be mounted
// at the handler's index path.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/details/:id?", h.HandleDetails)
	router.Get("/create", h.HandleCreateForm)
	router.Post("/create", h.HandleCreate)
	router.Get("/edit/:id?", h.HandleEditForm)
	router.Post("/edit/:id", h.HandleEdit)
	router.Get("/delete/:id?", h.HandleDeleteConfirm)
	router.Post("/delete/:id", h.HandleDelete)
}

// HandleIndex renders the product list.
func (h *ProductHandler) HandleIndex(c *fiber.Ctx) error {
	products, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, ViewProductIndex, fiber.Map{
		"Title":    "Products",
		"Products": products,
	})
}

// HandleDetails renders one product. Without an id it returns to the list.
func (h *ProductHandler) HandleDetails(c *fiber.Ctx) error {
	id, ok := optionalID(c)
	if !ok {
		return c.Redirect(h.indexPath)
	}

	product, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return h.renderProduct(c, ViewProductDetails, "Details", product, nil)
}

// HandleCreateForm renders an empty product form.
func (h *ProductHandler) HandleCreateForm(c *fiber.Ctx) error {
	return h.renderProduct(c, ViewProductCreate, "Create", &models.Product{}, nil)
}

// HandleCreate stores a submitted product. An invalid submission is shown
// again with its errors and never reaches the repository.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	product, state, err := bindProductForm(c, h.validate)
	if err != nil {
		return err
	}
	if !state.IsValid() {
		return h.renderProduct(c, ViewProductCreate, "Create", product, state)
	}

	if err := h.repo.Create(c.UserContext(), product); err != nil {
		return err
	}
	return c.Redirect(h.indexPath)
}

// HandleEditForm renders the form of an existing product. Without an id it
// returns to the list.
func (h *ProductHandler) HandleEditForm(c *fiber.Ctx) error {
	id, ok := optionalID(c)
	if !ok {
		return c.Redirect(h.indexPath)
	}

	product, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return h.renderProduct(c, ViewProductEdit, "Edit", product, nil)
}

// HandleEdit replaces a product with the submitted form. A form whose id
// does not match the path answers 404.
func (h *ProductHandler) HandleEdit(c *fiber.Ctx) error {
	id, ok := optionalID(c)
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}

	product, state, err := bindProductForm(c, h.validate)
	if err != nil {
		return err
	}
	if id != product.ID {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if !state.IsValid() {
		return h.renderProduct(c, ViewProductEdit, "Edit", product, state)
	}

	if err := h.repo.Update(c.UserContext(), product); err != nil {
		return err
	}
	return c.Redirect(h.indexPath)
}

// HandleDeleteConfirm renders the delete confirmation of a product.
func (h *ProductHandler) HandleDeleteConfirm(c *fiber.Ctx) error {
	id, ok := optionalID(c)
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}

	product, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return h.renderProduct(c, ViewProductDelete, "Delete", product, nil)
}

// HandleDelete removes a confirmed product and returns to the list. A product
// that is already gone is not an error.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := optionalID(c)
	if !ok {
		return c.Redirect(h.indexPath)
	}

	product, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if product != nil {
		if err := h.repo.Delete(c.UserContext(), product); err != nil {
			return err
		}
	}
	return c.Redirect(h.indexPath)
}

func (h *ProductHandler) renderProduct(c *fiber.Ctx, view, title string, product *models.Product, state *ModelState) error {
	if state == nil {
		state = NewModelState()
	}
	return h.render(c, view, fiber.Map{
		"Title":      title,
		"IndexPath":  h.indexPath,
		"Product":    product,
		"ModelState": state,
	})
}

func (h *ProductHandler) render(c *fiber.Ctx, view string, binding fiber.Map) error {
	if _, ok := binding["IndexPath"]; !ok {
		binding["IndexPath"] = h.indexPath
	}
	return c.Render(view, binding, h.layout...)
}

// optionalID reads the :id path parameter. A missing or non-numeric id is
// reported as absent.
func optionalID(c *fiber.Ctx) (int, bool) {
	if c.Params("id") == "" {
		return 0, false
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, false
	}
	return id, true
}
