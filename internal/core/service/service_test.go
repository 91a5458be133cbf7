package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/service"
)

type MockCommandExtractor struct {
	mock.Mock
}

func (m *MockCommandExtractor) ExtractCommands(
	ctx context.Context, command string,
) ([]domain.RawCommand, error) {
	args := m.Called(ctx, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawCommand), args.Error(1)
}

type MockCartEventsProducer struct {
	mock.Mock
}

func (m *MockCartEventsProducer) ProduceCartEvent(
	ctx context.Context, snapshot domain.CartSnapshot,
) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockCartEventsProducer) Close() {
	m.Called()
}

func TestProcessCommand(t *testing.T) {
	t.Run("AddTwoProducts", func(t *testing.T) {
		extractor := new(MockCommandExtractor)
		extractor.On("ExtractCommands", mock.Anything, "Add 2 apples and 1 milk").
			Return([]domain.RawCommand{
				{Action: "add", Product: "Apple", Quantity: 2},
				{Action: "add", Product: "Milk", Quantity: 1},
			}, nil)

		s := newService(t, extractor)
		batch, err := s.ProcessCommand(t.Context(), "Add 2 apples and 1 milk")
		require.NoError(t, err)
		require.Len(t, batch.Commands, 2)

		assert.Equal(t, domain.ActionAdd, batch.Commands[0].Action)
		assert.Equal(t, "Apple", batch.Commands[0].ProductName)
		assert.Equal(t, 2, batch.Commands[0].Quantity)
		assert.Equal(t, 1.5, batch.Commands[0].Price)

		assert.Equal(t, domain.ActionAdd, batch.Commands[1].Action)
		assert.Equal(t, "Milk", batch.Commands[1].ProductName)
		assert.Equal(t, 1, batch.Commands[1].Quantity)
		assert.Equal(t, 1.2, batch.Commands[1].Price)
	})

	t.Run("RemoveAndAdd", func(t *testing.T) {
		extractor := new(MockCommandExtractor)
		extractor.On("ExtractCommands", mock.Anything, mock.Anything).
			Return([]domain.RawCommand{
				{Action: "remove", Product: "Sugar", Quantity: 1},
				{Action: "add", Product: "Apple", Quantity: 3},
			}, nil)

		s := newService(t, extractor)
		batch, err := s.ProcessCommand(t.Context(), "Remove 1 sugar and add 3 apples")
		require.NoError(t, err)
		require.Len(t, batch.Commands, 2)

		assert.Equal(t, domain.ActionRemove, batch.Commands[0].Action)
		assert.Equal(t, "Sugar", batch.Commands[0].ProductName)
		assert.Equal(t, domain.ActionAdd, batch.Commands[1].Action)
		assert.Equal(t, 3, batch.Commands[1].Quantity)
	})

	t.Run("UnknownProductMarkedUnavailable", func(t *testing.T) {
		extractor := new(MockCommandExtractor)
		extractor.On("ExtractCommands", mock.Anything, mock.Anything).
			Return([]domain.RawCommand{
				{Action: "add", Product: "pizza", Quantity: 2},
				{Action: "add", Product: "Coffee", Quantity: 1},
			}, nil)

		s := newService(t, extractor)
		batch, err := s.ProcessCommand(t.Context(), "Add 2 pizzas and 1 coffee")
		require.NoError(t, err)
		require.Len(t, batch.Commands, 2)

		assert.Equal(t, domain.ActionUnavailable, batch.Commands[0].Action)
		assert.Zero(t, batch.Commands[0].ProductID)
		assert.Equal(t, domain.ActionAdd, batch.Commands[1].Action)
		assert.Equal(t, "Coffee", batch.Commands[1].ProductName)

		summary := batch.Summary()
		assert.Equal(t, 1, summary.Available)
		assert.Equal(t, 1, summary.Unavailable)
	})

	t.Run("EmptyCommandShortCircuits", func(t *testing.T) {
		extractor := new(MockCommandExtractor)

		s := newService(t, extractor)
		batch, err := s.ProcessCommand(t.Context(), "   ")
		require.NoError(t, err)
		assert.Empty(t, batch.Commands)

		extractor.AssertNotCalled(t, "ExtractCommands", mock.Anything, mock.Anything)
	})

	t.Run("EmptyExtractionIsSuccess", func(t *testing.T) {
		extractor := new(MockCommandExtractor)
		extractor.On("ExtractCommands", mock.Anything, mock.Anything).
			Return([]domain.RawCommand{}, nil)

		s := newService(t, extractor)
		batch, err := s.ProcessCommand(t.Context(), "hello there")
		require.NoError(t, err)
		assert.Empty(t, batch.Commands)
		summary := batch.Summary()
		assert.Zero(t, summary.Total)
	})

	t.Run("ExtractionErrorAborts", func(t *testing.T) {
		extractionErr := &domain.ExtractionError{
			Raw: "not json", Err: errors.New("invalid character"),
		}
		extractor := new(MockCommandExtractor)
		extractor.On("ExtractCommands", mock.Anything, mock.Anything).
			Return(nil, extractionErr)

		s := newService(t, extractor)
		_, err := s.ProcessCommand(t.Context(), "add 2 apples")
		require.Error(t, err)

		var got *domain.ExtractionError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, "not json", got.Raw)
	})
}

func TestMonitorCart(t *testing.T) {
	snapshot := domain.CartSnapshot{
		SessionID: "s-1",
		Lines: []domain.CartLine{
			{ProductID: 1, Name: "Apple", Price: 1.5, Quantity: 2},
		},
		Total: 3.0,
	}

	t.Run("PublishesWhenConfigured", func(t *testing.T) {
		producer := new(MockCartEventsProducer)
		producer.On("ProduceCartEvent", mock.Anything, snapshot).Return(nil)

		s := service.New(domain.DefaultCatalog(), nil, nil, nil, producer, false)
		s.MonitorCart(t.Context(), snapshot)

		producer.AssertExpectations(t)
		assert.True(t, s.TelemetryEnabled())
	})

	t.Run("PublishFailureIsSwallowed", func(t *testing.T) {
		producer := new(MockCartEventsProducer)
		producer.On("ProduceCartEvent", mock.Anything, snapshot).
			Return(errors.New("broker down"))

		s := service.New(domain.DefaultCatalog(), nil, nil, nil, producer, false)
		s.MonitorCart(t.Context(), snapshot)

		producer.AssertExpectations(t)
	})

	t.Run("NoProducerConfigured", func(t *testing.T) {
		s := service.New(domain.DefaultCatalog(), nil, nil, nil, nil, false)
		s.MonitorCart(t.Context(), snapshot)
		assert.False(t, s.TelemetryEnabled())
	})
}
