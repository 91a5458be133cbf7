package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/port"
)

// A Session owns one cart and guarantees at most one command batch is
// applied to it at a time. Extraction runs outside the lock so a slow
// model call never blocks a newer command; the sequence number discards
// the older result instead of applying it out of order.
type Session struct {
	id        uuid.UUID
	processor port.CommandProcessor

	mu   sync.Mutex
	cart *domain.Cart
	seq  atomic.Uint64
}

func NewSession(processor port.CommandProcessor) *Session {
	return &Session{
		id:        uuid.New(),
		processor: processor,
		cart:      domain.NewCart(),
	}
}

func (s *Session) ID() string { return s.id.String() }

// Execute processes one utterance end to end: extract, validate, apply.
// If a newer command was submitted while this one's extraction was in
// flight, the result is discarded with domain.ErrStale and the cart is
// left untouched.
func (s *Session) Execute(
	ctx context.Context, command string,
) ([]domain.CommandResult, error) {
	const op = "Session.Execute"

	seq := s.seq.Add(1)

	batch, err := s.processor.ProcessCommand(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq.Load() {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrStale)
	}
	return s.cart.Apply(batch), nil
}

// Snapshot copies the cart state for rendering or telemetry.
func (s *Session) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartSnapshot{
		SessionID: s.id.String(),
		Lines:     s.cart.Lines(),
		Total:     s.cart.Total(),
	}
}

// Checkout clears the cart after a successful purchase.
func (s *Session) Checkout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}
