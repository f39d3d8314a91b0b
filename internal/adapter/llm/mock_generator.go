package llm

import (
	"context"
	"fmt"

	"medmcq/internal/domain"
)

const mockTemplate = `CLINICAL SCENARIO:
A 54-year-old man presents to the emergency department with %s.

QUESTION:
What is the most appropriate next step in management?

OPTIONS:
A) Obtain a 12-lead ECG
B) Order a chest X-ray
C) Start empiric antibiotics
D) Discharge with follow-up
E) Observe for 24 hours

CORRECT ANSWER:
A

EXPLANATION:
An ECG within ten minutes of arrival is the first step for suspected acute coronary syndrome.`

// MockGenerator returns a fixed, parseable answer. Used for local runs without
// an API key and in tests.
type MockGenerator struct {
	model string
}

func NewMockGenerator(model string) *MockGenerator {
	if model == "" {
		model = "mock"
	}
	return &MockGenerator{model: model}
}

func (g *MockGenerator) Model() string { return g.model }

func (g *MockGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewLLMServiceError(err)
	}
	return &domain.GenerationResult{
		RawText:   fmt.Sprintf(mockTemplate, req.Topic),
		Model:     g.model,
		Reasoning: fmt.Sprintf("reasoning effort: %s", req.ReasoningEffort),
	}, nil
}

var _ domain.Generator = (*MockGenerator)(nil)
