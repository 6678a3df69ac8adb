package schema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DelcyVillalba/chic-storefront/pkg/schema"
	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

type MockRegistry struct {
	mock.Mock
}

func (r *MockRegistry) CreateSchema(
	ctx context.Context, subject string, s sr.Schema,
) (sr.SubjectSchema, error) {
	args := r.Called(ctx, subject, s)
	return args.Get(0).(sr.SubjectSchema), args.Error(1)
}

func TestActivityEncoderV1(t *testing.T) {
	subject := "storefront-activity-value"

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewActivityEncoderV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewActivityEncoderV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := schema.NewActivityEncoderV1(
			t.Context(),
			schema.SubjectOpt(""),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
	})

	t.Run("RegistryFailure", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ActivitySchemaTextV1,
		).Return(0, errors.New("registry down"))

		_, err := schema.NewActivityEncoderV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registry down")
	})

	t.Run("EncodeFramesPayload", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ActivitySchemaTextV1,
		).Return(3, nil)

		encoder, err := schema.NewActivityEncoderV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		v1 := schema.ActivityV1{
			ID:         "id-1",
			Kind:       "wishlist.add",
			ProductID:  12,
			Qty:        1,
			OccurredAt: 1760000000000,
		}

		data, err := encoder.Encode(v1)
		require.NoError(t, err)

		// magic byte followed by the big-endian schema id
		require.Greater(t, len(data), 5)
		assert.Equal(t, []byte{0, 0, 0, 0, 3}, data[:5])

		var v2 schema.ActivityV1
		require.NoError(t, avro.Unmarshal(schema.ActivityV1Avro(), data[5:], &v2))
		assert.Equal(t, v1, v2)
		schemaIdentifier.AssertExpectations(t)
	})
}

func TestSchemaCreater(t *testing.T) {
	reg := new(MockRegistry)
	reg.On("CreateSchema", mock.Anything, "subj", sr.Schema{
		Schema: schema.ActivitySchemaTextV1,
		Type:   sr.TypeAvro,
	}).Return(sr.SubjectSchema{ID: 9}, nil)

	id, err := schema.NewSchemaCreater(reg).DetermineID(
		t.Context(), "subj", schema.ActivitySchemaTextV1,
	)
	require.NoError(t, err)
	assert.Equal(t, 9, id)
}
