package handlers

import (
	"shopapi/internal/models"
	"shopapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes under /users.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, "list users", err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// HandleGetUserByID retrieves a single user by its ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "get user", err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, "create user", err)
	}

	user, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, "create user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser applies a partial update to a user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if hasBody(c) {
		if err := c.BodyParser(&req); err != nil {
			return respondBadBody(c, "update user", err)
		}
	}

	user, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, "update user", err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// HandleDeleteUser deletes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	resp, err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "delete user", err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
