package tokenizer

import (
	"strings"

	"medmcq/internal/domain"

	"github.com/tmc/langchaingo/llms"
)

// contextWindows covers chat models newer than langchaingo's table, which
// reports its 2048 default for them. More specific prefixes come first.
var contextWindows = []struct {
	prefix string
	tokens int
}{
	{"gpt-4.1", 1047576},
	{"gpt-4o", 128000},
	{"gpt-4-turbo", 128000},
	{"gpt-3.5-turbo", 16385},
	{"o1-mini", 128000},
	{"o1", 200000},
	{"o3", 200000},
	{"o4-mini", 200000},
}

// LangchainCounter counts tokens with langchaingo's tiktoken-backed helpers.
// Models without a known encoding fall back to an approximate count.
type LangchainCounter struct{}

func NewLangchainCounter() *LangchainCounter {
	return &LangchainCounter{}
}

func (LangchainCounter) CountTokens(model, text string) int {
	return llms.CountTokens(model, text)
}

func (LangchainCounter) ContextSize(model string) int {
	name := strings.ToLower(strings.TrimSpace(model))
	for _, w := range contextWindows {
		if strings.HasPrefix(name, w.prefix) {
			return w.tokens
		}
	}
	return llms.GetModelContextSize(model)
}

var _ domain.TokenCounter = LangchainCounter{}
