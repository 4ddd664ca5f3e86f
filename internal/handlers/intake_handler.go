package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hydrolog/hydrolog-backend/internal/dto"
	"github.com/hydrolog/hydrolog-backend/internal/middleware"
	"github.com/hydrolog/hydrolog-backend/internal/services"
)

type IntakeHandler struct {
	service *services.IntakeService
}

func NewIntakeHandler(service *services.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: service}
}

func (h *IntakeHandler) AddForm(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "intake_add"})
}

func (h *IntakeHandler) Add(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.AddIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	quantity, err := strconv.ParseFloat(req.Quantity, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrInvalidQuantity.Error(),
		})
	}

	if _, err := h.service.AddDaily(userID, quantity); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEntry):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to add intake",
			})
		}
	}

	return c.Redirect("/intake/list", fiber.StatusFound)
}

func (h *IntakeHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	// Missing or non-numeric ?page falls back to 1; the service also
	// clamps non-positive values.
	page := c.QueryInt("page", 1)

	intakes, page, totalPages, err := h.service.List(userID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list intakes",
		})
	}

	return c.JSON(dto.IntakeListResponse{
		Intakes:    intakes,
		Page:       page,
		TotalPages: totalPages,
	})
}

func (h *IntakeHandler) EditForm(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	// A malformed id gets the same treatment as a missing record: back to
	// the list.
	intakeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Redirect("/intake/list", fiber.StatusFound)
	}

	intake, err := h.service.GetForEdit(userID, intakeID)
	if err != nil {
		if errors.Is(err, services.ErrIntakeNotFound) {
			return c.Redirect("/intake/list", fiber.StatusFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch intake",
		})
	}

	return c.JSON(intake)
}

func (h *IntakeHandler) Edit(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	intakeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrIntakeNotFound.Error(),
		})
	}

	var req dto.EditIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	quantity, err := strconv.ParseFloat(req.Quantity, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrInvalidQuantity.Error(),
		})
	}

	if err := h.service.Edit(userID, intakeID, quantity); err != nil {
		switch {
		case errors.Is(err, services.ErrIntakeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update intake",
			})
		}
	}

	return c.Redirect("/intake/list", fiber.StatusFound)
}

func (h *IntakeHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	intakeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrIntakeNotFound.Error(),
		})
	}

	if err := h.service.Delete(userID, intakeID); err != nil {
		if errors.Is(err, services.ErrIntakeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete intake",
		})
	}

	return c.Redirect("/intake/list", fiber.StatusFound)
}

func (h *IntakeHandler) Difference(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.DifferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	difference, message, err := h.service.Difference(userID, req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingDates), errors.Is(err, services.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNoDataForDate):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to compute difference",
			})
		}
	}

	return c.JSON(dto.DifferenceResponse{
		From:       req.From,
		To:         req.To,
		Difference: difference,
		Message:    message,
	})
}
