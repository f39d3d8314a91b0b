package middleware

import (
	"strconv"

	"medmcq/internal/domain"
	"medmcq/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedIDKey       = "validated_id"
	ValidatedIDsKey      = "validated_ids"
	ValidatedPracticeKey = "validated_practice"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateRecordID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateRecordID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateRecordID(id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidateExportParams validates the ids and practice query parameters
func (vm *ValidationMiddleware) ValidateExportParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids, errors := vm.validator.ParseIDList(c.Query("ids"))

		practice := false
		if raw := c.Query("practice"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				errors = append(errors, domain.NewInvalidFormatError("practice", raw))
			}
			practice = parsed
		}

		if len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedIDsKey, ids)
		c.Locals(ValidatedPracticeKey, practice)
		return c.Next()
	}
}
