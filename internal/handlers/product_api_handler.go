package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// ProductAPIHandler exposes the product catalog as a JSON resource.
type ProductAPIHandler struct {
	repo repositories.ProductRepository
}

// NewProductAPIHandler creates a new ProductAPIHandler.
func NewProductAPIHandler(repo repositories.ProductRepository) *ProductAPIHandler {
	return &ProductAPIHandler{
		repo: repo,
	}
}

// RegisterRoutes registers the product resource routes under /products.
func (h *ProductAPIHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleReplaceProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns every product.
func (h *ProductAPIHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// HandleGetProduct returns a single product or 404.
func (h *ProductAPIHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	product, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// HandleCreateProduct stores the submitted product and answers 201 with the
// stored record and its location.
func (h *ProductAPIHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := h.repo.Create(c.UserContext(), &product); err != nil {
		return err
	}

	c.Location(productLocation(c.Path(), product.ID))
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleReplaceProduct replaces the product at :id with the submitted one.
// The only guarded precondition is that path and body agree on the id;
// existence is left to the store.
func (h *ProductAPIHandler) HandleReplaceProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if id != product.ID {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := h.repo.Update(c.UserContext(), &product); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteProduct removes the product at :id, or answers 404 if it does
// not exist.
func (h *ProductAPIHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	product, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := h.repo.Delete(c.UserContext(), product); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// productLocation is the read route of product id, given the collection path.
func productLocation(collectionPath string, id int) string {
	return strings.TrimSuffix(collectionPath, "/") + "/" + strconv.Itoa(id)
}
