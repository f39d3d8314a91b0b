package domain

import "strings"

// OptionLetters is the closed set of answer slots, in display order.
var OptionLetters = [...]string{"A", "B", "C", "D", "E"}

// Options holds the five answer slots of a question. Unused slots are "".
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
	E string `json:"E"`
}

// Get returns the text of the slot for letter, and false for any letter outside A-E.
func (o Options) Get(letter string) (string, bool) {
	switch letter {
	case "A":
		return o.A, true
	case "B":
		return o.B, true
	case "C":
		return o.C, true
	case "D":
		return o.D, true
	case "E":
		return o.E, true
	}
	return "", false
}

// Set overwrites the slot for letter. Letters outside A-E are ignored.
func (o *Options) Set(letter, text string) bool {
	switch letter {
	case "A":
		o.A = text
	case "B":
		o.B = text
	case "C":
		o.C = text
	case "D":
		o.D = text
	case "E":
		o.E = text
	default:
		return false
	}
	return true
}

// Any reports whether at least one slot is non-empty.
func (o Options) Any() bool {
	return o.A != "" || o.B != "" || o.C != "" || o.D != "" || o.E != ""
}

// ParsedContent is the structured form of a generated question.
type ParsedContent struct {
	ClinicalScenario string  `json:"clinical_scenario"`
	Question         string  `json:"question"`
	Options          Options `json:"options"`
	CorrectAnswer    string  `json:"correct_answer"`
	Explanation      string  `json:"explanation"`
}

// MissingFields lists the json names of required fields that are empty.
// An empty result means the content is valid.
func (c *ParsedContent) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.ClinicalScenario) == "" {
		missing = append(missing, "clinical_scenario")
	}
	if strings.TrimSpace(c.Question) == "" {
		missing = append(missing, "question")
	}
	if !c.Options.Any() {
		missing = append(missing, "options")
	}
	if strings.TrimSpace(c.CorrectAnswer) == "" {
		missing = append(missing, "correct_answer")
	}
	if strings.TrimSpace(c.Explanation) == "" {
		missing = append(missing, "explanation")
	}
	return missing
}

// Valid reports whether every required scalar is set and some option is set.
func (c *ParsedContent) Valid() bool {
	return len(c.MissingFields()) == 0
}

// ContentOverride carries user edits applied field by field on top of a
// parsed question. Nil fields leave the underlying value untouched.
type ContentOverride struct {
	ClinicalScenario *string           `json:"clinical_scenario,omitempty"`
	Question         *string           `json:"question,omitempty"`
	Options          map[string]string `json:"options,omitempty"`
	CorrectAnswer    *string           `json:"correct_answer,omitempty"`
	Explanation      *string           `json:"explanation,omitempty"`
}

// Apply returns a copy of base with the override's non-nil fields written in.
// Option keys outside A-E are ignored.
func (o *ContentOverride) Apply(base ParsedContent) ParsedContent {
	if o == nil {
		return base
	}
	out := base
	if o.ClinicalScenario != nil {
		out.ClinicalScenario = *o.ClinicalScenario
	}
	if o.Question != nil {
		out.Question = *o.Question
	}
	for letter, text := range o.Options {
		out.Options.Set(strings.ToUpper(strings.TrimSpace(letter)), text)
	}
	if o.CorrectAnswer != nil {
		out.CorrectAnswer = *o.CorrectAnswer
	}
	if o.Explanation != nil {
		out.Explanation = *o.Explanation
	}
	return out
}

// Empty reports whether the override would change nothing.
func (o *ContentOverride) Empty() bool {
	return o == nil || (o.ClinicalScenario == nil && o.Question == nil && len(o.Options) == 0 &&
		o.CorrectAnswer == nil && o.Explanation == nil)
}
