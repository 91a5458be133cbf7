package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/voicecart/voicecart/internal/core/domain"
)

// Validate passes every extracted command through the catalog matcher,
// preserving input order. Commands the model already self-flagged as
// unavailable pass through unchanged; the catalog lookup is the
// authoritative check for everything else. Unknown products become
// unavailable commands with a human-readable reason, matched products
// are enriched with the canonical id, name and price. A garbled action
// value on a matched product is surfaced as an "unknown action" command
// rather than silently dropped.
func (s *Service) Validate(raws []domain.RawCommand) []domain.ValidatedCommand {
	const op = "Service.Validate"

	out := make([]domain.ValidatedCommand, 0, len(raws))
	for _, raw := range raws {
		out = append(out, s.validateOne(op, raw))
	}
	return out
}

func (s *Service) validateOne(
	op string, raw domain.RawCommand,
) domain.ValidatedCommand {
	if domain.Action(raw.Action) == domain.ActionUnavailable {
		msg := raw.Message
		if msg == "" {
			msg = domain.UnavailableMessage(raw.Product)
		}
		return domain.ValidatedCommand{
			Action:   domain.ActionUnavailable,
			Product:  raw.Product,
			Quantity: raw.Quantity,
			Message:  msg,
		}
	}

	p, err := s.catalog.FindByName(raw.Product)
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			slog.Error("unexpected matcher failure", "op", op, "err", err)
		}
		return domain.ValidatedCommand{
			Action:   domain.ActionUnavailable,
			Product:  raw.Product,
			Quantity: raw.Quantity,
			Message:  domain.UnavailableMessage(raw.Product),
		}
	}

	action := domain.Action(raw.Action)
	if action != domain.ActionAdd && action != domain.ActionRemove {
		return domain.ValidatedCommand{
			Action:   domain.ActionUnknown,
			Product:  raw.Product,
			Quantity: raw.Quantity,
			Message:  fmt.Sprintf("unknown action %q for %s", raw.Action, p.Name),
		}
	}

	return domain.ValidatedCommand{
		Action:      action,
		Product:     raw.Product,
		Quantity:    raw.Quantity,
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
	}
}
