package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

// An Encoder frames avro payloads with the schema-registry header: a zero
// magic byte followed by the big-endian schema id.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Opt func(*encoderOpts) error

type encoderOpts struct {
	subject string
	si      SchemaIdentifier
}

func SubjectOpt(subject string) Opt {
	return func(o *encoderOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		o.subject = subject
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(o *encoderOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		o.si = si
		return nil
	}
}

// NewActivityEncoderV1 registers [ActivityV1] under the subject.
func NewActivityEncoderV1(ctx context.Context, opts ...Opt) (Encoder, error) {
	const op = "NewActivityEncoderV1"

	if len(opts) != 2 {
		return nil, fmt.Errorf("%s: %w", op, ErrTooFewOpts)
	}

	var options encoderOpts
	for _, o := range opts {
		if err := o(&options); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	avroSchema := ActivityV1Avro()
	srID, err := options.si.DetermineID(ctx, options.subject, ActivitySchemaTextV1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var serde sr.Serde
	serde.Register(
		srID,
		ActivityV1{},
		sr.EncodeFn(func(v any) ([]byte, error) {
			return avro.Marshal(avroSchema, v)
		}),
	)
	return &serde, nil
}
