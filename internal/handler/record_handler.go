package handler

import (
	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/logger"
	"medmcq/internal/middleware"
	"medmcq/internal/service"
	"medmcq/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecordHandler handles saved-question HTTP requests
type RecordHandler struct {
	records   service.RecordService
	exports   service.ExportService
	validator *validation.Validator
}

// NewRecordHandler creates a new RecordHandler instance
func NewRecordHandler(records service.RecordService, exports service.ExportService) *RecordHandler {
	return &RecordHandler{
		records:   records,
		exports:   exports,
		validator: validation.NewValidator(),
	}
}

func recordID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.ValidatedIDKey).(string)
	return id
}

// List godoc
// @Summary List saved questions
// @Description Newest first, optionally filtered by topic substring and minimum rating
// @Tags records
// @Produce json
// @Param topic query string false "Topic substring"
// @Param min_rating query int false "Minimum rating (0-5)"
// @Success 200 {object} dto.RecordListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /records [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	var q dto.RecordListQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("min_rating", c.Query("min_rating"))}
	}
	if q.MinRating < domain.MinRating || q.MinRating > domain.MaxRating {
		return domain.ValidationErrors{domain.NewOutOfRangeError("min_rating", q.MinRating, domain.MinRating, domain.MaxRating)}
	}

	records, err := h.records.List(c.UserContext(), domain.RecordFilter{Topic: q.Topic, MinRating: q.MinRating})
	if err != nil {
		return err
	}
	return c.JSON(dto.ToRecordListResponse(records))
}

// Create godoc
// @Summary Save a question
// @Description Saves a draft (by draft_id) or inline raw text. Content is parsed from the raw text, then any content overrides apply.
// @Tags records
// @Accept json
// @Produce json
// @Param request body dto.SaveRecordRequest true "Record to save"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /records [post]
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	var req dto.SaveRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateSaveRecordRequest(&req); len(errs) > 0 {
		return errs
	}

	record, err := h.records.Save(c.UserContext(), &req)
	if err != nil {
		return err
	}
	logger.Get().Info("Record saved", zap.String("id", record.ID), zap.String("topic", record.Topic))
	return c.Status(fiber.StatusCreated).JSON(dto.ToRecordResponse(record))
}

// Get godoc
// @Summary Get a saved question
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/{id} [get]
func (h *RecordHandler) Get(c *fiber.Ctx) error {
	record, err := h.records.Get(c.UserContext(), recordID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToRecordResponse(record))
}

// Update godoc
// @Summary Edit and resave a question
// @Description New raw text re-derives the content; overrides then apply on top
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.UpdateRecordRequest true "Fields to change"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/{id} [put]
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateUpdateRecordRequest(&req); len(errs) > 0 {
		return errs
	}

	record, err := h.records.Update(c.UserContext(), recordID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToRecordResponse(record))
}

// Rate godoc
// @Summary Rate a question
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.RateRecordRequest true "Rating 0-5"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/{id}/rating [patch]
func (h *RecordHandler) Rate(c *fiber.Ctx) error {
	var req dto.RateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateRating(&req); len(errs) > 0 {
		return errs
	}

	record, err := h.records.Rate(c.UserContext(), recordID(c), *req.Rating)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToRecordResponse(record))
}

// Delete godoc
// @Summary Delete a question
// @Tags records
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/{id} [delete]
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	if err := h.records.Delete(c.UserContext(), recordID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Preview godoc
// @Summary Preview a question as HTML
// @Tags records
// @Produce html
// @Param id path string true "Record ID"
// @Success 200 {string} string "HTML fragment"
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/{id}/preview [get]
func (h *RecordHandler) Preview(c *fiber.Ctx) error {
	html, err := h.exports.PreviewHTML(c.UserContext(), recordID(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
