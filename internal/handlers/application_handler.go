package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/authctx"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/locumconnect/locum-backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	shiftService       *services.ShiftService
	userService        *services.UserService
}

func NewApplicationHandler(
	applicationService *services.ApplicationService,
	shiftService *services.ShiftService,
	userService *services.UserService,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		shiftService:       shiftService,
		userService:        userService,
	}
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	pharmacistID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.ShiftID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Shift ID is required",
		})
	}

	application, err := h.applicationService.Apply(pharmacistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrShiftNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPharmacistNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create application",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

// List dispatches on query parameters the way the web client queries:
// ?shiftId=, ?pharmacistId=, ?ownerId= or ?status=.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	var (
		applications []models.Application
		err          error
	)

	switch {
	case c.Query("shiftId") != "":
		var shiftID uuid.UUID
		if shiftID, err = uuid.Parse(c.Query("shiftId")); err == nil {
			applications, err = h.applicationService.ListByShift(shiftID)
		}
	case c.Query("pharmacistId") != "":
		var pharmacistID uuid.UUID
		if pharmacistID, err = uuid.Parse(c.Query("pharmacistId")); err == nil {
			applications, err = h.applicationService.ListByPharmacist(pharmacistID)
		}
	case c.Query("ownerId") != "":
		var ownerID uuid.UUID
		if ownerID, err = uuid.Parse(c.Query("ownerId")); err == nil {
			applications, err = h.applicationService.ListByOwner(ownerID)
		}
	case c.Query("status") != "":
		applications, err = h.applicationService.ListByStatus(c.Query("status"))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "One of shiftId, pharmacistId, ownerId or status is required",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid query",
		})
	}

	return c.JSON(h.enrich(applications))
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	application, err := h.applicationService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch application",
		})
	}

	enriched := h.enrich([]models.Application{*application})
	return c.JSON(enriched[0])
}

// UpdateStatus routes the three legal transitions. Approval and rejection are
// shift-owner actions; withdrawal belongs to the applicant.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	callerID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Status is required",
		})
	}

	var application *models.Application
	switch req.Status {
	case models.ApplicationApproved, models.ApplicationRejected:
		allowed, ferr := h.requireShiftOwner(c, id, callerID)
		if !allowed {
			return ferr
		}
		if req.Status == models.ApplicationApproved {
			application, err = h.applicationService.Approve(id)
		} else {
			application, err = h.applicationService.Reject(id)
		}
	case models.ApplicationWithdrawn:
		application, err = h.applicationService.Withdraw(id, callerID)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrInvalidTransition.Error(),
		})
	}

	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrShiftNotOpen), errors.Is(err, services.ErrApplicationNotPending):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotApplicant):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update application",
		})
	}

	return c.JSON(application)
}

// requireShiftOwner checks that the caller owns the shift behind the
// application (admins pass as well). When not allowed, the error response has
// already been written and the second return value is what the handler should
// return.
func (h *ApplicationHandler) requireShiftOwner(c *fiber.Ctx, applicationID, callerID uuid.UUID) (bool, error) {
	if authctx.GetRole(c) == models.RoleAdmin {
		return true, nil
	}

	application, err := h.applicationService.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return false, c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch application",
		})
	}

	shift, err := h.shiftService.GetByID(application.ShiftID)
	if err != nil {
		return false, c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch shift",
		})
	}
	if shift.OwnerID != callerID {
		return false, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Only the shift owner can settle applications",
		})
	}
	return true, nil
}

// enrich attaches the shift and the sanitized pharmacist to each application
// so dashboards render in one round trip.
func (h *ApplicationHandler) enrich(applications []models.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		app := &applications[i]
		shift, _ := h.shiftService.GetByID(app.ShiftID)
		pharmacist, _ := h.userService.GetByID(app.PharmacistID)
		out = append(out, dto.NewApplicationResponse(app, shift, pharmacist))
	}
	return out
}
