package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jladao109/wedding-rsvp-api/internal/application"
	"github.com/jladao109/wedding-rsvp-api/internal/domain"
)

const apiVersion = "v3"

type RSVPHandler struct {
	lookup     *application.LookupService
	submission *application.SubmissionService
	validate   *validator.Validate
}

// LookupRequest is the guest lookup payload. Zip narrows the match when
// supplied but is not required.
type LookupRequest struct {
	LastName string `json:"lastName" validate:"required"`
	Zip      string `json:"zip"`
}

// SubmitRequest is the RSVP submission payload. Values carries the
// seven write-back fields keyed E through K.
type SubmitRequest struct {
	RowNumber int                `json:"rowNumber" validate:"required,min=2"`
	Values    *domain.RsvpRecord `json:"values" validate:"required"`
}

// NewRSVPHandler creates a new RSVP handler.
func NewRSVPHandler(lookup *application.LookupService, submission *application.SubmissionService) *RSVPHandler {
	return &RSVPHandler{
		lookup:     lookup,
		submission: submission,
		validate:   validator.New(),
	}
}

// Health is a simple liveness and version probe.
func (h *RSVPHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "version": apiVersion})
}

// Validate godoc
// @Summary Look up a party by last name
// @Description Returns every roster party matching the last name, optionally narrowed by zip
// @Tags rsvp
// @Accept json
// @Produce json
// @Param request body LookupRequest true "Lookup query"
// @Success 200 {object} application.LookupResult
// @Failure 400 {object} map[string]interface{}
func (h *RSVPHandler) Validate(c *fiber.Ctx) error {
	var req LookupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide lastName.",
		})
	}

	result, err := h.lookup.Lookup(c.Context(), req.LastName, req.Zip)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(result)
}

// Submit godoc
// @Summary Save a party's RSVP
// @Description Writes the seven RSVP fields of the identified roster row and sends a confirmation email
// @Tags rsvp
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "RSVP values"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing rowNumber or values.",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing rowNumber or values.",
		})
	}

	result, err := h.submission.Submit(c.Context(), req.RowNumber, *req.Values)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":          true,
		"email":       result.Email,
		"emailResult": result.EmailResult,
	})
}

// fail maps the error taxonomy to HTTP responses. Store failures get a
// generic message with the diagnostic attached; validation and cutoff
// errors keep their specific text.
func (h *RSVPHandler) fail(c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	var storeErr *domain.StoreError

	switch {
	case errors.Is(err, domain.ErrCutoffPassed):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cutoff passed",
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
		})
	case errors.As(err, &storeErr):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Server error",
			"details": storeErr.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Server error",
			"details": err.Error(),
		})
	}
}
