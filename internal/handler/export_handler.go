package handler

import (
	"fmt"
	"time"

	"medmcq/internal/middleware"
	"medmcq/internal/service"

	"github.com/gofiber/fiber/v2"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves record downloads.
type ExportHandler struct {
	service service.ExportService
	now     func() time.Time
}

func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{service: service, now: time.Now}
}

func exportParams(c *fiber.Ctx) ([]string, bool) {
	ids, _ := c.Locals(middleware.ValidatedIDsKey).([]string)
	practice, _ := c.Locals(middleware.ValidatedPracticeKey).(bool)
	return ids, practice
}

func (h *ExportHandler) attachment(c *fiber.Ctx, prefix, ext, contentType string, body []byte) error {
	name := fmt.Sprintf("%s-%s.%s", prefix, h.now().Format("20060102-150405"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(body)
}

// Excel godoc
// @Summary Export questions to Excel
// @Description Selected ids in the given order, or every record when ids is omitted
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param ids query string false "Comma separated record IDs"
// @Success 200 {file} file
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /export/excel [get]
func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	ids, _ := exportParams(c)
	body, err := h.service.Excel(c.UserContext(), ids)
	if err != nil {
		return err
	}
	return h.attachment(c, "questions", "xlsx", mimeXLSX, body)
}

// PDF godoc
// @Summary Export questions to PDF
// @Description The practice variant leaves out answers and explanations
// @Tags export
// @Produce application/pdf
// @Param ids query string false "Comma separated record IDs"
// @Param practice query bool false "Practice variant"
// @Success 200 {file} file
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	ids, practice := exportParams(c)
	body, err := h.service.PDF(c.UserContext(), ids, practice)
	if err != nil {
		return err
	}
	prefix := "questions"
	if practice {
		prefix = "practice"
	}
	return h.attachment(c, prefix, "pdf", "application/pdf", body)
}
