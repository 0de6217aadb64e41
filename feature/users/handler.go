package users

import (
	"strconv"

	"user-service/feature/users/models"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for users. Errors are returned to the
// application's error handler, which renders them.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/users")
	group.Get("/", h.HandleListUsers)
	group.Post("/", h.HandleCreateUser)
	group.Get("/:id", h.HandleGetUser)
	group.Put("/:id", h.HandleUpdateUser)
	group.Delete("/:id", h.HandleDeleteUser)
}

// HandleListUsers returns every user.
// @Summary List Users
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Users"
// @Failure 500 {object} errorhandler.Response "Internal Server Error"
// @Router /api/users [get]
func (h *Handler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleGetUser returns a single user.
// @Summary Get User
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User"
// @Failure 400 {object} errorhandler.Response "Invalid ID"
// @Failure 404 {object} errorhandler.Response "Not Found"
// @Router /api/users/{id} [get]
func (h *Handler) HandleGetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.service.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleCreateUser creates a user.
// @Summary Create User
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User"
// @Success 201 {object} models.User "Created"
// @Failure 400 {object} errorhandler.Response "Validation Error"
// @Failure 409 {object} errorhandler.Response "Duplicate name or email"
// @Router /api/users [post]
func (h *Handler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	user, err := h.service.CreateUser(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser updates the fields present in the body.
// @Summary Update User
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User "Updated"
// @Failure 400 {object} errorhandler.Response "Validation Error"
// @Failure 404 {object} errorhandler.Response "Not Found"
// @Failure 409 {object} errorhandler.Response "Duplicate name or email"
// @Router /api/users/{id} [put]
func (h *Handler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	user, err := h.service.UpdateUser(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user.
// @Summary Delete User
// @Tags users
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorhandler.Response "Not Found"
// @Router /api/users/{id} [delete]
func (h *Handler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}
	return uint(id), nil
}
