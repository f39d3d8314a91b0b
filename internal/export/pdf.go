package export

import (
	"embed"
	"fmt"
	"io"

	"medmcq/internal/domain"

	"github.com/go-pdf/fpdf"
)

// PDFOptions controls the PDF layout.
type PDFOptions struct {
	Title string
	// Practice omits the correct answer and explanation and leaves a blank
	// answer line instead.
	Practice bool
}

// Core PDF fonts only cover cp1252, which drops symbols such as β, ≥ and →.
//
//go:embed fonts/DejaVuSansCondensed.ttf fonts/DejaVuSansCondensed-Bold.ttf
var fontFS embed.FS

const bodyFont = "DejaVu"

const (
	pageMargin  = 15.0
	lineHeight  = 6.0
	blankAnswer = "Answer: ____________"
)

// WritePDF renders one section per record.
func WritePDF(w io.Writer, records []*domain.Record, opts PDFOptions) error {
	if err := buildPDF(records, opts).Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func buildPDF(records []*domain.Record, opts PDFOptions) *fpdf.Fpdf {
	title := opts.Title
	if title == "" {
		title = "Medical MCQ Collection"
		if opts.Practice {
			title = "Medical MCQ Practice Set"
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(title, true)
	pdf.SetCreator("medmcq", true)
	for style, file := range map[string]string{
		"":  "fonts/DejaVuSansCondensed.ttf",
		"B": "fonts/DejaVuSansCondensed-Bold.ttf",
	} {
		data, err := fontFS.ReadFile(file)
		if err != nil {
			pdf.SetError(fmt.Errorf("load font %s: %w", file, err))
			return pdf
		}
		pdf.AddUTF8FontFromBytes(bodyFont, style, data)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont(bodyFont, "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(bodyFont, "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(records) == 0 {
		pdf.SetFont(bodyFont, "", 11)
		pdf.MultiCell(0, lineHeight, "No questions selected.", "", "L", false)
	}

	section := func(label, body string) {
		pdf.SetFont(bodyFont, "B", 11)
		pdf.CellFormat(0, lineHeight, label, "", 1, "L", false, 0, "")
		pdf.SetFont(bodyFont, "", 11)
		pdf.MultiCell(0, lineHeight, body, "", "L", false)
		pdf.Ln(2)
	}

	for i, r := range records {
		if i > 0 {
			pdf.Ln(4)
		}
		pdf.SetFont(bodyFont, "B", 13)
		pdf.MultiCell(0, 8, fmt.Sprintf("%d. %s", i+1, r.Name), "B", "L", false)
		pdf.Ln(2)

		c := r.Content
		section("Clinical Scenario", c.ClinicalScenario)
		section("Question", c.Question)

		pdf.SetFont(bodyFont, "B", 11)
		pdf.CellFormat(0, lineHeight, "Options", "", 1, "L", false, 0, "")
		pdf.SetFont(bodyFont, "", 11)
		for _, letter := range domain.OptionLetters {
			if text, _ := c.Options.Get(letter); text != "" {
				pdf.MultiCell(0, lineHeight, fmt.Sprintf("%s) %s", letter, text), "", "L", false)
			}
		}
		pdf.Ln(2)

		if opts.Practice {
			pdf.SetFont(bodyFont, "", 11)
			pdf.CellFormat(0, lineHeight, blankAnswer, "", 1, "L", false, 0, "")
			continue
		}
		section("Correct Answer", c.CorrectAnswer)
		section("Explanation", c.Explanation)
	}

	return pdf
}
