package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimHistoryKeepsNewestTurns(t *testing.T) {
	counter := &tokenCounter{} // byte-estimate path, no encoder needed
	history := []ChatMessage{
		{Role: "user", Content: strings.Repeat("old ", 100)},
		{Role: "assistant", Content: strings.Repeat("mid ", 100)},
		{Role: "user", Content: "latest question"},
	}

	trimmed := counter.trimHistory(history, 20)
	require.NotEmpty(t, trimmed)
	require.Equal(t, "latest question", trimmed[len(trimmed)-1].Content)
	require.Less(t, len(trimmed), len(history))
}

func TestTrimHistoryZeroBudget(t *testing.T) {
	counter := &tokenCounter{}
	require.Nil(t, counter.trimHistory([]ChatMessage{{Content: "x"}}, 0))
}

func TestNormalizeQuestion(t *testing.T) {
	require.Equal(t, "what helps redness", normalizeQuestion("  What helps redness?? "))
	require.Equal(t, "spf 50 daily", normalizeQuestion("SPF-50, daily!"))
}

func TestStripJSONFences(t *testing.T) {
	require.Equal(t, `{"a":1}`, stripJSONFences("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, stripJSONFences(`{"a":1}`))
}
