package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ActivityPublisher = (*ActivityProducer)(nil)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// An ActivityProducer publishes [domain.ActivityEvent] keyed by product id,
// so events of one product stay ordered within a partition.
type ActivityProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewActivityProducer(
	opts ...ProducerOpt,
) (ActivityProducer, error) {
	const op = "NewActivityProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ActivityProducer{}, opErr(err, op)
		}
	}

	opPrefix := "ActivityProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return ActivityProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p ActivityProducer) Close() {
	p.producer.close()
}

func (p ActivityProducer) PublishActivity(
	ctx context.Context, v domain.ActivityEvent,
) error {
	const op = "PublishActivity"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p ActivityProducer) createRecord(
	v domain.ActivityEvent,
) (*kgo.Record, error) {
	const op = "createRecord"

	s := activityToSchemaV1(v)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(strconv.Itoa(v.ProductID))
	return &kgo.Record{Key: msgKey, Value: b}, nil
}
