package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/authctx"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/services"
)

type ShiftHandler struct {
	shiftService *services.ShiftService
}

func NewShiftHandler(shiftService *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Create posts a shift for the authenticated owner. It enters review at
// pending_review regardless of the payload.
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	ownerID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	shift, err := h.shiftService.Create(ownerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingShiftFields) || errors.Is(err, services.ErrInvalidDateRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create shift",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewShiftResponse(shift))
}

// List serves three views from one endpoint, mirroring the query-parameter
// dispatch of the web client: ?ownerId= for an owner dashboard, ?search=true
// with filter params for pharmacists, plain for open shifts.
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	if ownerParam := c.Query("ownerId"); ownerParam != "" {
		ownerID, err := uuid.Parse(ownerParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid owner ID",
			})
		}
		shifts, err := h.shiftService.ListByOwner(ownerID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to fetch shifts",
			})
		}
		return c.JSON(dto.NewShiftResponseList(shifts))
	}

	filters := dto.ShiftFilters{
		MinRate:     queryFloat(c, "minRate"),
		MaxRate:     queryFloat(c, "maxRate"),
		MinDuration: queryInt(c, "minDuration"),
		MaxDuration: queryInt(c, "maxDuration"),
		Location:    c.Query("location"),
		StartDate:   c.Query("startDate"),
		EndDate:     c.Query("endDate"),
	}

	shifts, err := h.shiftService.Search(filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to search shifts",
		})
	}
	return c.JSON(dto.NewShiftResponseList(shifts))
}

// ListAll is the admin review queue; every status is visible.
func (h *ShiftHandler) ListAll(c *fiber.Ctx) error {
	shifts, err := h.shiftService.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch shifts",
		})
	}
	return c.JSON(dto.NewShiftResponseList(shifts))
}

func (h *ShiftHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid shift ID",
		})
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrShiftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch shift",
		})
	}

	return c.JSON(dto.NewShiftResponse(shift))
}

func (h *ShiftHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid shift ID",
		})
	}

	var req dto.ApproveShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	shift, err := h.shiftService.Approve(id, req.AdminNotes, req.OverrideRate)
	if err != nil {
		return shiftReviewError(c, err, "Failed to approve shift")
	}
	return c.JSON(dto.NewShiftResponse(shift))
}

func (h *ShiftHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid shift ID",
		})
	}

	var req dto.RejectShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	shift, err := h.shiftService.Reject(id, req.AdminNotes)
	if err != nil {
		if errors.Is(err, services.ErrNotesRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return shiftReviewError(c, err, "Failed to reject shift")
	}
	return c.JSON(dto.NewShiftResponse(shift))
}

func (h *ShiftHandler) Cancel(c *fiber.Ctx) error {
	ownerID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid shift ID",
		})
	}

	shift, err := h.shiftService.Cancel(id, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrShiftNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotShiftOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrShiftNotCancelable):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to cancel shift",
		})
	}
	return c.JSON(dto.NewShiftResponse(shift))
}

func shiftReviewError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrShiftNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrShiftNotReviewable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func queryFloat(c *fiber.Ctx, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func queryInt(c *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
