package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/port"
)

var _ port.CommandProcessor = (*Service)(nil)
var _ port.Chatter = (*Service)(nil)
var _ port.Searcher = (*Service)(nil)
var _ port.CartMonitor = (*Service)(nil)
var _ port.AnalyticsProvider = (*Service)(nil)
var _ port.CatalogReader = (*Service)(nil)

// Service orchestrates the command pipeline: extraction, validation
// against the catalog, and the auxiliary chat/search/telemetry flows.
type Service struct {
	catalog    domain.Catalog
	extractor  port.CommandExtractor
	assistant  port.ChatAssistant
	searcher   port.ProductSearcher
	cartEvents port.CartEventsProducer
	modelReady bool
}

func New(
	catalog domain.Catalog,
	extractor port.CommandExtractor,
	assistant port.ChatAssistant,
	searcher port.ProductSearcher,
	cartEvents port.CartEventsProducer,
	modelReady bool,
) *Service {
	return &Service{
		catalog:    catalog,
		extractor:  extractor,
		assistant:  assistant,
		searcher:   searcher,
		cartEvents: cartEvents,
		modelReady: modelReady,
	}
}

func (s *Service) Catalog() domain.Catalog { return s.catalog }

func (s *Service) ModelReady() bool { return s.modelReady }

func (s *Service) TelemetryEnabled() bool { return s.cartEvents != nil }

// ProcessCommand turns one utterance into a validated, ordered command
// batch. An empty or whitespace-only command short-circuits to an empty
// batch without calling the model. Extraction failures abort the whole
// command; nothing is partially validated.
func (s *Service) ProcessCommand(
	ctx context.Context, command string,
) (domain.CommandBatch, error) {
	const op = "Service.ProcessCommand"

	if err := ctx.Err(); err != nil {
		return domain.CommandBatch{}, fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(command) == "" {
		return domain.CommandBatch{}, nil
	}

	raws, err := s.extractor.ExtractCommands(ctx, command)
	if err != nil {
		return domain.CommandBatch{}, fmt.Errorf("%s: %w", op, err)
	}

	batch := domain.CommandBatch{Commands: s.Validate(raws)}

	summary := batch.Summary()
	slog.Info("command processed",
		"op", op,
		"total", summary.Total,
		"available", summary.Available,
		"unavailable", summary.Unavailable,
	)
	return batch, nil
}

// Chat answers a free-form message grounded with catalog context.
// Not cart-mutating.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	const op = "Service.Chat"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	reply, err := s.assistant.Reply(ctx, message)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return reply, nil
}

// Search runs the model-backed catalog search and normalizes relevance
// values it does not recognize.
func (s *Service) Search(
	ctx context.Context, query string,
) ([]domain.SearchResult, error) {
	const op = "Service.Search"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	results, err := s.searcher.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range results {
		results[i].Relevance = domain.NormalizeRelevance(results[i].Relevance)
	}
	return results, nil
}

// MonitorCart accepts a client cart snapshot. Fire-and-forget: publish
// failures are logged and never surfaced to the client.
func (s *Service) MonitorCart(ctx context.Context, snapshot domain.CartSnapshot) {
	const op = "Service.MonitorCart"
	log := slog.With("op", op)

	log.Info("cart update",
		"session", snapshot.SessionID,
		"lines", len(snapshot.Lines),
		"total", snapshot.Total,
	)

	if s.cartEvents == nil {
		return
	}
	if err := s.cartEvents.ProduceCartEvent(ctx, snapshot); err != nil {
		log.Error("failed to produce cart event", "err", err)
	}
}

// Analytics returns the derived catalog statistics.
func (s *Service) Analytics() domain.CatalogStats {
	return s.catalog.Stats()
}
