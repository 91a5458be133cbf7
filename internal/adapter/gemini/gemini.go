package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/pkg/retry"
)

const (
	defaultModel          = "gemini-2.0-flash"
	defaultRequestTimeout = 15 * time.Second
	defaultMaxRetries     = 2
	retryBaseDelay        = 300 * time.Millisecond

	// Extraction and search are structured-output tasks and run cold;
	// chat keeps the original conversational temperature.
	extractTemperature = float32(0.4)
	searchTemperature  = float32(0.4)
	chatTemperature    = float32(0.7)

	extractMaxTokens = int32(1024)
	searchMaxTokens  = int32(500)
	chatMaxTokens    = int32(200)
)

type Config struct {
	APIKey         string
	Model          string
	RequestTimeout time.Duration
	MaxRetries     int
}

// Client wraps the Gemini API for the three model-backed flows:
// command extraction, chat and product search. A missing API key
// produces a degraded client whose calls fail with domain.ErrNoAPIKey
// instead of crashing the process.
type Client struct {
	genai   *genai.Client
	catalog domain.Catalog
	model   string
	timeout time.Duration
	retries int
}

func NewClient(
	ctx context.Context, cfg Config, catalog domain.Catalog,
) (*Client, error) {
	const op = "gemini.NewClient"

	c := &Client{
		catalog: catalog,
		model:   cfg.Model,
		timeout: cfg.RequestTimeout,
		retries: cfg.MaxRetries,
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.timeout <= 0 {
		c.timeout = defaultRequestTimeout
	}
	if c.retries < 0 {
		c.retries = defaultMaxRetries
	}

	if cfg.APIKey == "" {
		slog.Warn("gemini api key is not set, model endpoints degraded", "op", op)
		return c, nil
	}

	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.genai = cl
	return c, nil
}

// Ready reports whether the provider key is configured.
func (c *Client) Ready() bool { return c.genai != nil }

// generate sends one prompt with a bounded deadline and bounded retry.
// Only transport failures are retried; the caller decides what to do
// with the text.
func (c *Client) generate(
	ctx context.Context, prompt string, temperature float32, maxTokens int32,
) (string, error) {
	const op = "gemini.Client.generate"

	if c.genai == nil {
		return "", fmt.Errorf("%s: %w", op, domain.ErrNoAPIKey)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	retryCfg := retry.Config{
		MaxAttempts: c.retries + 1,
		Backoff:     retry.ExponentialBackoff(retryBaseDelay),
		ShouldRetry: func(err error) bool {
			return errors.Is(err, domain.ErrModelUnavailable)
		},
	}

	start := time.Now()
	text, err := retry.DoWithResult(ctx, retryCfg, func() (string, error) {
		return c.callModel(ctx, prompt, temperature, maxTokens)
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%s: %w", op, domain.ErrDeadline)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	slog.Debug("model completed",
		"op", op, "elapsed", time.Since(start), "responseLen", len(text),
	)
	return text, nil
}

func (c *Client) callModel(
	ctx context.Context, prompt string, temperature float32, maxTokens int32,
) (string, error) {
	resp, err := c.genai.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(temperature),
			MaxOutputTokens: maxTokens,
		},
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrModelUnavailable)
	}
	return text, nil
}
