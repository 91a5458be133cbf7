package port

import (
	"context"

	"github.com/voicecart/voicecart/internal/core/domain"
)

// Outbound ports implemented by adapters.

type CommandExtractor interface {
	ExtractCommands(ctx context.Context, command string) ([]domain.RawCommand, error)
}

type ChatAssistant interface {
	Reply(ctx context.Context, message string) (string, error)
}

type ProductSearcher interface {
	SearchProducts(ctx context.Context, query string) ([]domain.SearchResult, error)
}

type CartEventsProducer interface {
	ProduceCartEvent(ctx context.Context, snapshot domain.CartSnapshot) error
	Close()
}

// Inbound ports implemented by the core service and consumed by the
// HTTP adapter.

type CommandProcessor interface {
	ProcessCommand(ctx context.Context, command string) (domain.CommandBatch, error)
}

type Chatter interface {
	Chat(ctx context.Context, message string) (string, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

type CartMonitor interface {
	MonitorCart(ctx context.Context, snapshot domain.CartSnapshot)
}

type AnalyticsProvider interface {
	Analytics() domain.CatalogStats
	ModelReady() bool
	TelemetryEnabled() bool
}

type CatalogReader interface {
	Catalog() domain.Catalog
}
