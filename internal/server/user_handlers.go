package server

import (
	"atmos/internal/models"
	"atmos/internal/service"
	"atmos/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name    string `json:"name" validate:"omitempty,min=3,max=32"`
		Email   string `json:"email" validate:"omitempty,email"`
		IsAdmin bool   `json:"isAdmin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	user, err := s.userService.UpdateUser(c.Context(), id, service.UpdateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// DeleteAllUsers handles DELETE /users. Succeeds on an empty collection.
func (s *Server) DeleteAllUsers(c *fiber.Ctx) error {
	if err := s.userService.DeleteAllUsers(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "All users deleted successfully"})
}

// PromoteToAdmin handles POST /users/:id/admin
func (s *Server) PromoteToAdmin(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.SetAdmin(c.Context(), id, true)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User promoted to admin",
		"user":    user,
	})
}

// DemoteFromAdmin handles DELETE /users/:id/admin
func (s *Server) DemoteFromAdmin(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.SetAdmin(c.Context(), id, false)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Admin rights revoked",
		"user":    user,
	})
}
