package products

import (
	"github.com/gofiber/fiber/v2"
)

// Message is the static body returned by the products route.
const Message = "This is new feature change, a new route for products samin"

// Handler serves the products placeholder route.
type Handler struct{}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the handler on /api/products for every method and sub path.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use("/api/products", h.HandleProducts)
}

// HandleProducts returns the static products message.
// @Summary Products
// @Tags products
// @Produce json
// @Success 200 {object} map[string]string "Message"
// @Router /api/products [get]
func (h *Handler) HandleProducts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": Message,
	})
}
