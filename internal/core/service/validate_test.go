package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/service"
)

func newService(t *testing.T, extractor *MockCommandExtractor) *service.Service {
	t.Helper()
	return service.New(
		domain.DefaultCatalog(), extractor, nil, nil, nil, true,
	)
}

func TestValidate(t *testing.T) {
	s := newService(t, new(MockCommandExtractor))

	t.Run("EnrichesMatchedProducts", func(t *testing.T) {
		out := s.Validate([]domain.RawCommand{
			{Action: "add", Product: "apples", Quantity: 2},
			{Action: "remove", Product: "Sugar", Quantity: 1},
		})
		require.Len(t, out, 2)

		assert.Equal(t, domain.ActionAdd, out[0].Action)
		assert.Equal(t, "apples", out[0].Product)
		assert.Equal(t, 1, out[0].ProductID)
		assert.Equal(t, "Apple", out[0].ProductName)
		assert.Equal(t, 1.5, out[0].Price)
		assert.Empty(t, out[0].Message)

		assert.Equal(t, domain.ActionRemove, out[1].Action)
		assert.Equal(t, 10, out[1].ProductID)
		assert.Equal(t, "Sugar", out[1].ProductName)
	})

	t.Run("UnknownProductBecomesUnavailable", func(t *testing.T) {
		out := s.Validate([]domain.RawCommand{
			{Action: "add", Product: "laptop", Quantity: 2},
		})
		require.Len(t, out, 1)

		assert.Equal(t, domain.ActionUnavailable, out[0].Action)
		assert.Equal(t, "laptop", out[0].Product)
		assert.Equal(t, 2, out[0].Quantity)
		assert.Zero(t, out[0].ProductID)
		assert.Empty(t, out[0].ProductName)
		assert.Equal(t, `"laptop" is not available in our catalog`, out[0].Message)
	})

	t.Run("ModelSelfFlagPassesThrough", func(t *testing.T) {
		out := s.Validate([]domain.RawCommand{
			{Action: "unavailable", Product: "pizza", Quantity: 2,
				Message: "Pizza is not available in our catalog"},
		})
		require.Len(t, out, 1)

		assert.Equal(t, domain.ActionUnavailable, out[0].Action)
		assert.Equal(t, "Pizza is not available in our catalog", out[0].Message)
	})

	t.Run("SelfFlagWithoutMessageGetsReason", func(t *testing.T) {
		out := s.Validate([]domain.RawCommand{
			{Action: "unavailable", Product: "pizza", Quantity: 1},
		})
		require.Len(t, out, 1)
		assert.Equal(t, `"pizza" is not available in our catalog`, out[0].Message)
	})

	t.Run("GarbledActionSurfaced", func(t *testing.T) {
		out := s.Validate([]domain.RawCommand{
			{Action: "purchase", Product: "apple", Quantity: 1},
		})
		require.Len(t, out, 1)

		assert.Equal(t, domain.ActionUnknown, out[0].Action)
		assert.Contains(t, out[0].Message, "unknown action")
		assert.Contains(t, out[0].Message, "Apple")
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		raws := []domain.RawCommand{
			{Action: "add", Product: "milk", Quantity: 1},
			{Action: "add", Product: "pizza", Quantity: 1},
			{Action: "remove", Product: "tea", Quantity: 2},
			{Action: "add", Product: "chips", Quantity: 1},
		}
		out := s.Validate(raws)
		require.Len(t, out, len(raws))
		for i := range raws {
			assert.Equal(t, raws[i].Product, out[i].Product, "index %d", i)
			assert.Equal(t, raws[i].Quantity, out[i].Quantity, "index %d", i)
		}
	})

	t.Run("SummaryRoundTrip", func(t *testing.T) {
		batch := domain.CommandBatch{Commands: s.Validate([]domain.RawCommand{
			{Action: "add", Product: "apple", Quantity: 1},
			{Action: "add", Product: "pizza", Quantity: 1},
			{Action: "purchase", Product: "milk", Quantity: 1},
			{Action: "remove", Product: "sugar", Quantity: 1},
		})}

		summary := batch.Summary()
		assert.Equal(t, 4, summary.Total)
		assert.Equal(t, summary.Total, summary.Available+summary.Unavailable)
		assert.Equal(t, 2, summary.Available)
		assert.Equal(t, 2, summary.Unavailable)
	})
}
