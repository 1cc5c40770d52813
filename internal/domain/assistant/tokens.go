package assistant

import (
	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

type tokenCounter struct {
	encoder *tiktoken.Tiktoken
}

func newTokenCounter(model string) *tokenCounter {
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoder, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return &tokenCounter{}
		}
	}
	return &tokenCounter{encoder: encoder}
}

func (c *tokenCounter) count(text string) int {
	if c.encoder == nil {
		// rough bytes-per-token estimate when no encoding is available
		return len(text) / 4
	}
	return len(c.encoder.Encode(text, nil, nil))
}

// trimHistory drops the oldest turns until the conversation fits the
// budget. The newest turns always survive, even if the budget is tiny.
func (c *tokenCounter) trimHistory(history []ChatMessage, budget int) []ChatMessage {
	if budget <= 0 || len(history) == 0 {
		return nil
	}
	total := 0
	start := len(history)
	for i := len(history) - 1; i >= 0; i-- {
		cost := c.count(history[i].Content) + 4 // per-message overhead
		if total+cost > budget && start < len(history) {
			break
		}
		total += cost
		start = i
	}
	return history[start:]
}
