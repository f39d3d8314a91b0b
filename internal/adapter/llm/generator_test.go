package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medmcq/internal/config"
	"medmcq/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

const completionText = "CLINICAL SCENARIO:\nA patient.\n\nQUESTION:\nWhat now?\n\nOPTIONS:\nA) One\nB) Two\n\nCORRECT ANSWER:\nA\n\nEXPLANATION:\nBecause."

func chatServer(t *testing.T, status int, body string, seen *map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func completionBody(t *testing.T, message map[string]string) string {
	b, err := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "o4-mini-2025-04-16",
		"choices": []map[string]interface{}{
			{"index": 0, "message": message, "finish_reason": "stop"},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	})
	require.NoError(t, err)
	return string(b)
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator(config.LLMConfig{Provider: config.ProviderMock})
	require.NoError(t, err)
	assert.Equal(t, "mock", g.Model())

	g, err = NewGenerator(config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k", Model: "o4-mini"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIGenerator{}, g)

	g, err = NewGenerator(config.LLMConfig{Provider: config.ProviderOpenAISDK, APIKey: "k", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAISDKGenerator{}, g)

	g, err = NewGenerator(config.LLMConfig{Provider: config.ProviderOllama, OllamaServerURL: "http://localhost:11434", Model: "deepseek-r1"})
	require.NoError(t, err)
	assert.IsType(t, &OllamaGenerator{}, g)

	_, err = NewGenerator(config.LLMConfig{Provider: config.ProviderOpenAI, Model: "o4-mini"})
	assert.Error(t, err)
	_, err = NewGenerator(config.LLMConfig{Provider: config.ProviderOpenAISDK, APIKey: "k"})
	assert.Error(t, err)
	_, err = NewGenerator(config.LLMConfig{Provider: config.ProviderOllama, Model: "m"})
	assert.Error(t, err)
	_, err = NewGenerator(config.LLMConfig{Provider: "gemini"})
	assert.Error(t, err)
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	var seen map[string]interface{}
	srv := chatServer(t, http.StatusOK, completionBody(t, map[string]string{
		"role":              "assistant",
		"content":           completionText,
		"reasoning_content": "ruled out PE",
	}), &seen)

	g, err := NewOpenAIGenerator(config.LLMConfig{APIKey: "k", Model: "o4-mini", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
	require.NoError(t, err)

	res, err := g.Generate(context.Background(), domain.GenerationRequest{
		Topic: "chest pain", ReferenceText: "ACC guideline", ReasoningEffort: domain.EffortHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, completionText, res.RawText)
	assert.Equal(t, "ruled out PE", res.Reasoning)
	assert.Equal(t, "o4-mini-2025-04-16", res.Model)

	assert.Equal(t, "o4-mini", seen["model"])
	assert.Equal(t, "high", seen["reasoning_effort"])
	msgs := seen["messages"].([]interface{})
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.BuildPrompt("chest pain", "ACC guideline"), msgs[0].(map[string]interface{})["content"])
}

func TestOpenAIGenerator_KeepsContentVerbatim(t *testing.T) {
	content := "  <think>\nconsider aortic dissection\n</think>\n" + completionText + "\n\n"
	srv := chatServer(t, http.StatusOK, completionBody(t, map[string]string{
		"role":    "assistant",
		"content": content,
	}), nil)

	g, err := NewOpenAIGenerator(config.LLMConfig{APIKey: "k", Model: "o4-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	res, err := g.Generate(context.Background(), domain.GenerationRequest{Topic: "chest pain", ReasoningEffort: domain.EffortMedium})
	require.NoError(t, err)
	assert.Equal(t, content, res.RawText)
	assert.Equal(t, "consider aortic dissection", res.Reasoning)

	parsed := domain.ParseContent(res.RawText)
	require.NotNil(t, parsed)
	assert.Equal(t, "One", parsed.Options.A)
}

func TestOpenAIGenerator_Error(t *testing.T) {
	srv := chatServer(t, http.StatusBadRequest, `{"error":{"message":"bad model","type":"invalid_request_error"}}`, nil)

	g, err := NewOpenAIGenerator(config.LLMConfig{APIKey: "k", Model: "o4-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), domain.GenerationRequest{Topic: "x", ReasoningEffort: domain.EffortLow})
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeLLMServiceError, derr.Code)
}

func TestOpenAISDKGenerator_Generate(t *testing.T) {
	var seen map[string]interface{}
	srv := chatServer(t, http.StatusOK, completionBody(t, map[string]string{
		"role":    "assistant",
		"content": "<think>weighing options</think>\n" + completionText,
	}), &seen)

	g, err := NewOpenAISDKGenerator(config.LLMConfig{APIKey: "k", Model: "gpt-4o", BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)

	res, err := g.Generate(context.Background(), domain.GenerationRequest{Topic: "sepsis", ReasoningEffort: domain.EffortMedium})
	require.NoError(t, err)
	assert.Equal(t, "<think>weighing options</think>\n"+completionText, res.RawText)
	assert.Equal(t, "A", domain.ParseContent(res.RawText).CorrectAnswer)
	assert.Equal(t, "weighing options", res.Reasoning)
	assert.Equal(t, "medium", seen["reasoning_effort"])
	assert.Equal(t, "gpt-4o", seen["model"])
}

func TestOpenAISDKGenerator_Error(t *testing.T) {
	srv := chatServer(t, http.StatusBadRequest, `{"error":{"message":"nope","type":"invalid_request_error"}}`, nil)

	g, err := NewOpenAISDKGenerator(config.LLMConfig{APIKey: "k", Model: "gpt-4o", BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), domain.GenerationRequest{Topic: "x"})
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeLLMServiceError, derr.Code)
}

// fakeModel is an llms.Model returning a canned completion.
type fakeModel struct {
	text   string
	err    error
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if p, ok := messages[0].Parts[0].(llms.TextContent); ok {
			f.prompt = p.Text
		}
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.text}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestOllamaGenerator_Generate(t *testing.T) {
	fm := &fakeModel{text: "<think>\nconsider ACS\n</think>\n" + completionText}
	g := newOllamaGenerator(fm, config.LLMConfig{Model: "deepseek-r1", Temperature: 0.2})

	res, err := g.Generate(context.Background(), domain.GenerationRequest{Topic: "chest pain"})
	require.NoError(t, err)
	assert.Equal(t, fm.text, res.RawText)
	assert.Equal(t, "consider ACS", res.Reasoning)
	assert.Equal(t, "deepseek-r1", res.Model)
	assert.Equal(t, domain.BuildPrompt("chest pain", ""), fm.prompt)
}

func TestOllamaGenerator_Error(t *testing.T) {
	g := newOllamaGenerator(&fakeModel{err: errors.New("connection refused")}, config.LLMConfig{Model: "m"})

	_, err := g.Generate(context.Background(), domain.GenerationRequest{Topic: "x"})
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeLLMServiceError, derr.Code)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMockGenerator_ParsesCleanly(t *testing.T) {
	g := NewMockGenerator("")
	res, err := g.Generate(context.Background(), domain.GenerationRequest{Topic: "chest pain", ReasoningEffort: domain.EffortLow})
	require.NoError(t, err)

	parsed := domain.ParseContent(res.RawText)
	require.NotNil(t, parsed)
	assert.Equal(t, "A", parsed.CorrectAnswer)
	assert.Contains(t, parsed.ClinicalScenario, "chest pain")
	assert.Equal(t, "mock", res.Model)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Generate(ctx, domain.GenerationRequest{Topic: "x"})
	assert.Error(t, err)
}
