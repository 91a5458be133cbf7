package gemini

import (
	"encoding/json"
	"strings"

	"github.com/voicecart/voicecart/internal/core/domain"
)

type rawCommandJSON struct {
	Action   string `json:"action"`
	Product  string `json:"product"`
	Quantity *int   `json:"quantity"`
	Message  string `json:"message"`
}

type searchResultJSON struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Relevance string  `json:"relevance"`
	Reason    string  `json:"reason"`
}

// stripCodeFences removes a wrapping ```json / ``` block when present.
// Best effort: the text is validated as JSON after stripping, never
// before, so other model formatting still fails loudly at decode time.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	firstNewline := strings.Index(trimmed, "\n")
	if firstNewline == -1 {
		return strings.TrimSpace(strings.ReplaceAll(trimmed, "```", ""))
	}
	lastFence := strings.LastIndex(trimmed, "```")
	if lastFence > firstNewline {
		return strings.TrimSpace(trimmed[firstNewline+1 : lastFence])
	}
	return strings.TrimSpace(trimmed[firstNewline+1:])
}

// decodeCommands parses the model's cleaned output into raw commands.
// A missing quantity defaults to 1; entries with a non-positive stated
// quantity are dropped. An empty array is success, not an error.
func decodeCommands(raw string) ([]domain.RawCommand, error) {
	cleaned := stripCodeFences(raw)

	var items []rawCommandJSON
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, &domain.ExtractionError{Raw: raw, Err: err}
	}

	cmds := make([]domain.RawCommand, 0, len(items))
	for _, item := range items {
		qty := 1
		if item.Quantity != nil {
			if *item.Quantity <= 0 {
				continue
			}
			qty = *item.Quantity
		}
		cmds = append(cmds, domain.RawCommand{
			Action:   item.Action,
			Product:  item.Product,
			Quantity: qty,
			Message:  item.Message,
		})
	}
	return cmds, nil
}

func decodeSearchResults(raw string) ([]domain.SearchResult, error) {
	cleaned := stripCodeFences(raw)

	var items []searchResultJSON
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, &domain.ExtractionError{Raw: raw, Err: err}
	}

	results := make([]domain.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, domain.SearchResult{
			Name:      item.Name,
			Price:     item.Price,
			Relevance: item.Relevance,
			Reason:    item.Reason,
		})
	}
	return results, nil
}
