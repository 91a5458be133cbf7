package domain

import "fmt"

// Action classifies one extracted cart intent.
type Action string

const (
	ActionAdd         Action = "add"
	ActionRemove      Action = "remove"
	ActionUnavailable Action = "unavailable"

	// ActionUnknown marks a matched product whose action value was
	// garbled by the model. Surfaced to the caller, never dropped.
	ActionUnknown Action = "unknown"
)

// A RawCommand is the model's untrusted output unit. It exists only
// between extraction and validation.
type RawCommand struct {
	Action   string
	Product  string
	Quantity int
	Message  string
}

// A ValidatedCommand is a raw command after catalog resolution.
// For add/remove actions ProductID, ProductName and Price reference a
// real catalog entry; for unavailable/unknown actions they are zero and
// Message carries the human-readable reason.
type ValidatedCommand struct {
	Action      Action
	Product     string
	Quantity    int
	ProductID   int
	ProductName string
	Price       float64
	Message     string
}

// Actionable reports whether the command mutates the cart.
func (c ValidatedCommand) Actionable() bool {
	return c.Action == ActionAdd || c.Action == ActionRemove
}

// A CommandBatch is the ordered result of one utterance. Output order
// equals extraction order, which reflects the utterance's sequence.
type CommandBatch struct {
	Commands []ValidatedCommand
}

type CommandSummary struct {
	Total       int
	Available   int
	Unavailable int
}

// Summary derives the batch counters: Available counts add/remove
// commands, Unavailable everything else, so Available+Unavailable==Total.
func (b CommandBatch) Summary() CommandSummary {
	s := CommandSummary{Total: len(b.Commands)}
	for _, c := range b.Commands {
		if c.Actionable() {
			s.Available++
		} else {
			s.Unavailable++
		}
	}
	return s
}

// A SearchResult is one catalog hit of the model-backed product search.
type SearchResult struct {
	Name      string
	Price     float64
	Relevance string
	Reason    string
}

const (
	RelevanceExact   = "exact"
	RelevanceSimilar = "similar"
	RelevanceRelated = "related"
)

// NormalizeRelevance maps unknown relevance values to "related".
func NormalizeRelevance(s string) string {
	switch s {
	case RelevanceExact, RelevanceSimilar, RelevanceRelated:
		return s
	default:
		return RelevanceRelated
	}
}

// UnavailableMessage is the reason string attached to commands whose
// product has no catalog match.
func UnavailableMessage(product string) string {
	return fmt.Sprintf("%q is not available in our catalog", product)
}
