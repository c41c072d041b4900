package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/services"
)

type UserHandler struct {
	userService  *services.UserService
	statsService *services.StatsService
}

func NewUserHandler(userService *services.UserService, statsService *services.StatsService) *UserHandler {
	return &UserHandler{userService: userService, statsService: statsService}
}

// List returns users, optionally filtered by ?role=. Responses are always
// sanitized; the password hash never crosses this boundary.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Query("role"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}
	return c.JSON(dto.NewUserResponseList(users))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch user",
		})
	}

	return c.JSON(dto.NewUserResponse(user))
}

// SetVerification is the admin action that moves a pharmacist through the
// verification lifecycle.
func (h *UserHandler) SetVerification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.SetVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.VerificationStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Verification status is required",
		})
	}

	user, err := h.userService.SetVerification(id, req.VerificationStatus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrNotAPharmacist):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update verification status",
		})
	}

	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) AdminStats(c *fiber.Ctx) error {
	stats, err := h.statsService.AdminStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}
	return c.JSON(stats)
}
