package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/port"
)

var _ port.CommandExtractor = (*Client)(nil)
var _ port.ChatAssistant = (*Client)(nil)
var _ port.ProductSearcher = (*Client)(nil)

// ExtractCommands turns one utterance into the model's raw command
// candidates. Parse failures surface as *domain.ExtractionError with
// the raw model text attached and are not retried here.
func (c *Client) ExtractCommands(
	ctx context.Context, command string,
) ([]domain.RawCommand, error) {
	const op = "gemini.Client.ExtractCommands"

	text, err := c.generate(
		ctx, extractPrompt(c.catalog, command),
		extractTemperature, extractMaxTokens,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cmds, err := decodeCommands(text)
	if err != nil {
		slog.Warn("model output is not valid JSON", "op", op, "raw", text)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cmds, nil
}

// Reply answers one chat message grounded with catalog context.
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	const op = "gemini.Client.Reply"

	text, err := c.generate(
		ctx, chatPrompt(c.catalog, message), chatTemperature, chatMaxTokens,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return text, nil
}

// SearchProducts asks the model to rank catalog entries against a free
// text query.
func (c *Client) SearchProducts(
	ctx context.Context, query string,
) ([]domain.SearchResult, error) {
	const op = "gemini.Client.SearchProducts"

	text, err := c.generate(
		ctx, searchPrompt(c.catalog, query), searchTemperature, searchMaxTokens,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	results, err := decodeSearchResults(text)
	if err != nil {
		slog.Warn("model output is not valid JSON", "op", op, "raw", text)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return results, nil
}
