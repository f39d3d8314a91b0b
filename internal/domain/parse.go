package domain

import (
	"regexp"
	"strings"
)

// Section labels as they appear in generated text.
const (
	LabelClinicalScenario = "CLINICAL SCENARIO:"
	LabelQuestion         = "QUESTION:"
	LabelOptions          = "OPTIONS:"
	LabelCorrectAnswer    = "CORRECT ANSWER:"
	LabelExplanation      = "EXPLANATION:"
)

const sectionDelimiter = "\n\n"

type section int

const (
	sectionNone section = iota
	sectionOptions
)

var optionLinePattern = regexp.MustCompile(`^([A-E])\)\s*(.+)$`)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// SplitReasoning separates a <think>...</think> block emitted by reasoning models
// from the answer. Text without a complete block is returned unchanged.
func SplitReasoning(s string) (answer, reasoning string) {
	start := strings.Index(s, thinkOpen)
	if start == -1 {
		return s, ""
	}
	end := strings.Index(s, thinkClose)
	if end == -1 || end < start {
		return s, ""
	}
	reasoning = strings.TrimSpace(s[start+len(thinkOpen) : end])
	answer = strings.TrimSpace(s[:start] + s[end+len(thinkClose):])
	return answer, reasoning
}

// ParseContent splits a generated completion into its labeled sections.
// It returns nil when the text lacks any required field or has no option,
// so callers never see a partially filled question. A reasoning block is
// ignored.
func ParseContent(text string) *ParsedContent {
	text, _ = SplitReasoning(strings.ReplaceAll(text, "\r\n", "\n"))

	var content ParsedContent
	state := sectionNone

	for _, segment := range strings.Split(text, sectionDelimiter) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		switch {
		case strings.HasPrefix(segment, LabelClinicalScenario):
			content.ClinicalScenario = afterLabel(segment, LabelClinicalScenario)
			state = sectionNone
		case strings.HasPrefix(segment, LabelQuestion):
			content.Question = afterLabel(segment, LabelQuestion)
			state = sectionNone
		case strings.HasPrefix(segment, LabelCorrectAnswer):
			content.CorrectAnswer = afterLabel(segment, LabelCorrectAnswer)
			state = sectionNone
		case strings.HasPrefix(segment, LabelExplanation):
			content.Explanation = afterLabel(segment, LabelExplanation)
			state = sectionNone
		case strings.HasPrefix(segment, LabelOptions):
			state = sectionOptions
			scanOptions(afterLabel(segment, LabelOptions), &content.Options)
		case state == sectionOptions:
			scanOptions(segment, &content.Options)
		}
	}

	if !content.Valid() {
		return nil
	}
	return &content
}

func afterLabel(segment, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(segment, label))
}

// scanOptions writes every "X) text" line into its slot. A repeated letter
// overwrites the earlier one.
func scanOptions(block string, opts *Options) {
	for _, line := range strings.Split(block, "\n") {
		m := optionLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		opts.Set(m[1], strings.TrimSpace(m[2]))
	}
}
