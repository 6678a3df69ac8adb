package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type MockProducerClient struct {
	mock.Mock
	records []*kgo.Record
}

func (c *MockProducerClient) ProduceSync(
	ctx context.Context, rs ...*kgo.Record,
) kgo.ProduceResults {
	c.records = append(c.records, rs...)
	args := c.Called(ctx)
	var res kgo.ProduceResults
	for _, r := range rs {
		res = append(res, kgo.ProduceResult{Record: r, Err: args.Error(0)})
	}
	return res
}

func (c *MockProducerClient) Close() {
	c.Called()
}

type MockEncoder struct {
	mock.Mock
}

func (e *MockEncoder) Encode(v any) ([]byte, error) {
	args := e.Called(v)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func TestActivityProducer(t *testing.T) {
	at := time.UnixMilli(1760000000123)
	event := domain.ActivityEvent{
		ID:         "evt-1",
		Kind:       domain.ActivityCartAdd,
		ProductID:  42,
		Qty:        2,
		OccurredAt: at,
	}
	wantSchema := schema.ActivityV1{
		ID:         "evt-1",
		Kind:       "cart.add",
		ProductID:  42,
		Qty:        2,
		OccurredAt: 1760000000123,
	}

	t.Run("TooFewOptsPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = NewActivityProducer(ProducerEncoderOpt(new(MockEncoder)))
		})
	})

	t.Run("NilEncoder", func(t *testing.T) {
		_, err := NewActivityProducer(
			ProducerWithClientOpt(new(MockProducerClient)),
			ProducerEncoderOpt(nil),
		)
		require.Error(t, err)
	})

	t.Run("Publish", func(t *testing.T) {
		cl := new(MockProducerClient)
		cl.On("ProduceSync", mock.Anything).Return(nil)
		enc := new(MockEncoder)
		enc.On("Encode", wantSchema).Return([]byte("payload"), nil)

		p, err := NewActivityProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		require.NoError(t, p.PublishActivity(t.Context(), event))
		require.Len(t, cl.records, 1)
		assert.Equal(t, []byte("42"), cl.records[0].Key)
		assert.Equal(t, []byte("payload"), cl.records[0].Value)
		enc.AssertExpectations(t)
	})

	t.Run("BrokerError", func(t *testing.T) {
		cl := new(MockProducerClient)
		cl.On("ProduceSync", mock.Anything).Return(errors.New("not leader"))
		enc := new(MockEncoder)
		enc.On("Encode", mock.Anything).Return([]byte("payload"), nil)

		p, err := NewActivityProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		err = p.PublishActivity(t.Context(), event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ActivityProducer.PublishActivity")
	})

	t.Run("EncodeError", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		enc.On("Encode", mock.Anything).Return(nil, errors.New("bad value"))

		p, err := NewActivityProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		require.Error(t, p.PublishActivity(t.Context(), event))
		assert.Empty(t, cl.records)
	})

	t.Run("Close", func(t *testing.T) {
		cl := new(MockProducerClient)
		cl.On("Close").Once()
		p, err := NewActivityProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(new(MockEncoder)),
		)
		require.NoError(t, err)
		p.Close()
		cl.AssertExpectations(t)
	})
}
