package handler

import (
	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/middleware"
	"medmcq/internal/service"
	"medmcq/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenerationHandler handles question generation, token estimates and parse previews.
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func toEstimateResponse(e service.TokenEstimate) *dto.TokenEstimateResponse {
	return &dto.TokenEstimateResponse{
		Model:      e.Model,
		Tokens:     e.Tokens,
		Limit:      e.Limit,
		Remaining:  e.Remaining,
		OverBudget: e.OverBudget,
	}
}

// Estimate godoc
// @Summary Estimate prompt tokens
// @Description Counts the tokens of the exact prompt that would be sent for this topic and reference text. Advisory only.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.EstimateRequest true "Topic and reference text"
// @Success 200 {object} dto.TokenEstimateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /estimate [post]
func (h *GenerationHandler) Estimate(c *fiber.Ctx) error {
	var req dto.EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateEstimateRequest(&req); len(errs) > 0 {
		return errs
	}
	return c.JSON(toEstimateResponse(h.service.Estimate(req.Topic, req.ReferenceText)))
}

// Generate godoc
// @Summary Generate a question draft
// @Description Asks the configured model for one question and stores the result as a draft
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Generation parameters"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /generate [post]
func (h *GenerationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}
	effort, _ := domain.ParseReasoningEffort(req.ReasoningEffort)

	draft, estimate, err := h.service.Generate(c.UserContext(), domain.GenerationRequest{
		Topic:           req.Topic,
		ReferenceText:   req.ReferenceText,
		ReasoningEffort: effort,
	})
	if err != nil {
		return err
	}

	resp := dto.ToDraftResponse(draft)
	resp.Estimate = toEstimateResponse(estimate)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetDraft godoc
// @Summary Get a draft
// @Description Returns a generated draft that has not expired yet
// @Tags generation
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /drafts/{id} [get]
func (h *GenerationHandler) GetDraft(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.ValidatedIDKey).(string)
	draft, err := h.service.GetDraft(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToDraftResponse(draft))
}

// Parse godoc
// @Summary Parse question text
// @Description Extracts the question fields from free text without saving anything
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.ParseRequest true "Text to parse"
// @Success 200 {object} domain.ParsedContent
// @Failure 422 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /parse [post]
func (h *GenerationHandler) Parse(c *fiber.Ctx) error {
	var req dto.ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateParseRequest(&req); len(errs) > 0 {
		return errs
	}
	content, err := h.service.Parse(req.Text)
	if err != nil {
		return err
	}
	return c.JSON(content)
}
