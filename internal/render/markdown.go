// Package render turns saved records into Markdown and HTML previews.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"medmcq/internal/domain"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in model output is escaped; goldmark only passes it through with html.WithUnsafe.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RecordMarkdown lays a record out as Markdown. Options without text are left out.
func RecordMarkdown(r *domain.Record) string {
	var b strings.Builder
	c := r.Content

	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	fmt.Fprintf(&b, "*Topic:* %s\n\n", r.Topic)
	fmt.Fprintf(&b, "## Clinical Scenario\n\n%s\n\n", c.ClinicalScenario)
	fmt.Fprintf(&b, "## Question\n\n%s\n\n", c.Question)

	b.WriteString("## Options\n\n")
	for _, letter := range domain.OptionLetters {
		if text, _ := c.Options.Get(letter); text != "" {
			fmt.Fprintf(&b, "- **%s)** %s\n", letter, text)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Correct Answer\n\n%s\n\n", c.CorrectAnswer)
	fmt.Fprintf(&b, "## Explanation\n\n%s\n", c.Explanation)
	return b.String()
}

// RecordHTML renders RecordMarkdown to an HTML fragment.
func RecordHTML(r *domain.Record) (string, error) {
	return MarkdownToHTML(RecordMarkdown(r))
}

func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
