package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/api"
	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/product"
)

// Handler exposes checkout and the cart total preview.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/checkout", h.checkout)
	app.Post("/api/cart/calculate", h.calculateTotal)
}

type cartRequest struct {
	Items []product.CartLine `json:"items"`
}

type totalResponse struct {
	Total float64 `json:"total"`
}

// validateItems checks the request shape the computation core does not:
// items present, optionally non-empty, every productId and quantity a
// positive integer. All failures are reported together.
func validateItems(items []product.CartLine, requireNonEmpty bool) []api.ValidationError {
	if items == nil {
		return []api.ValidationError{{Field: "items", Message: "items is required"}}
	}
	if requireNonEmpty && len(items) == 0 {
		return []api.ValidationError{{Field: "items", Message: "items must contain at least 1 item"}}
	}

	var errs []api.ValidationError
	for i, item := range items {
		if item.ProductID <= 0 {
			errs = append(errs, api.ValidationError{
				Field:   "items." + strconv.Itoa(i) + ".productId",
				Message: "productId must be a positive integer",
			})
		}
		if item.Quantity <= 0 {
			errs = append(errs, api.ValidationError{
				Field:   "items." + strconv.Itoa(i) + ".quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}
	return errs
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(api.Err(api.CodeInvalidCart, "Cart items are required"))
	}
	if ves := validateItems(payload.Items, true); len(ves) > 0 {
		resp := api.Err(api.CodeValidationError, "Validation failed")
		resp.ValidationErrors = ves
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	ord, invalidIDs := h.service.ProcessOrder(payload.Items)

	// Invalid ids fail the checkout, but the partial order still goes back
	// so the client can show what would have been bought.
	if len(invalidIDs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(api.Response{
			Success: false,
			Data:    ord,
			Message: "Some products were not found: " + joinIDs(invalidIDs),
			Error:   api.CodeInvalidProducts,
		})
	}

	return c.JSON(api.OK(ord, "Order processed successfully"))
}

func (h *Handler) calculateTotal(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(api.Err(api.CodeInvalidCart, "Cart items are required"))
	}
	// An empty cart is a valid preview (total 0), unlike checkout.
	if ves := validateItems(payload.Items, false); len(ves) > 0 {
		resp := api.Err(api.CodeValidationError, "Validation failed")
		resp.ValidationErrors = ves
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	total := h.service.CalculateCartTotal(payload.Items)
	return c.JSON(api.OK(totalResponse{Total: total}, "Cart total calculated successfully"))
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
