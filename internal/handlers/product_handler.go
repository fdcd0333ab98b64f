package handlers

import (
	"shopapi/internal/models"
	"shopapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes under /products.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, "list products", err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "get product", err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, "create product", err)
	}

	product, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, "create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req models.UpdateProductRequest
	if hasBody(c) {
		if err := c.BodyParser(&req); err != nil {
			return respondBadBody(c, "update product", err)
		}
	}

	product, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, "update product", err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	resp, err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "delete product", err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
