package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/api"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products := h.service.List()
	return c.JSON(api.OK(products, "Products retrieved successfully"))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(api.Err(api.CodeInvalidID, "Invalid product ID"))
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).
			JSON(api.Err(api.CodeProductNotFound, "Product not found"))
	}
	return c.JSON(api.OK(p, "Product retrieved successfully"))
}
