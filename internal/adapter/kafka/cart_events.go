package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sr"

	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/port"
	"github.com/voicecart/voicecart/pkg/schema"
)

var _ port.CartEventsProducer = (*CartEventsProducer)(nil)

var ErrTooFewOpts = errors.New("too few options")

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type SchemaCreater interface {
	CreateSchema(ctx context.Context, subject string, s sr.Schema) (sr.SubjectSchema, error)
}

type CartEventsProducerOpt func(*cartEventsProducerOpts) error

type cartEventsProducerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func CartEventsProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) CartEventsProducerOpt {
	return func(opts *cartEventsProducerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func CartEventsProducerEncoderOpt(
	ctx context.Context, sc SchemaCreater, subject string,
) CartEventsProducerOpt {
	return func(opts *cartEventsProducerOpts) error {
		if sc == nil {
			return errors.New("schema creater is nil")
		}
		ss, err := sc.CreateSchema(
			ctx, subject, sr.Schema{
				Type:   sr.TypeAvro,
				Schema: schema.CartEventSchemaTextV1,
			},
		)
		if err != nil {
			return err
		}

		serde := new(sr.Serde)
		serde.Register(
			ss.ID,
			schema.CartEventV1{},
			sr.EncodeFn(schema.AvroEncodeFn(schema.CartEventV1Avro())),
		)
		opts.encoder = serde
		return nil
	}
}

// A CartEventsProducer publishes cart telemetry snapshots to the
// configured topic, keyed by session id and registry-encoded.
type CartEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewCartEventsProducer(
	opts ...CartEventsProducerOpt,
) (CartEventsProducer, error) {
	const op = "NewCartEventsProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options cartEventsProducerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return CartEventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return CartEventsProducer{options.cl, options.encoder}, nil
}

func (p CartEventsProducer) Close() {
	const op = "CartEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p CartEventsProducer) ProduceCartEvent(
	ctx context.Context, snapshot domain.CartSnapshot,
) error {
	const op = "CartEventsProducer.ProduceCartEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(snapshot)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p CartEventsProducer) createRecord(
	snapshot domain.CartSnapshot,
) (*kgo.Record, error) {
	const op = "CartEventsProducer.createRecord"

	v, err := p.encoder.Encode(p.toSchema(snapshot))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(snapshot.SessionID), Value: v}, nil
}

func (CartEventsProducer) toSchema(
	snapshot domain.CartSnapshot,
) (s schema.CartEventV1) {
	s.SessionID = snapshot.SessionID
	s.Total = snapshot.Total
	s.UnixMs = time.Now().UnixMilli()

	s.Lines = make([]schema.CartLineV1, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		s.Lines[i] = schema.CartLineV1{
			ProductID: int64(line.ProductID),
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  int64(line.Quantity),
		}
	}
	return s
}
