package schema

import "github.com/hamba/avro/v2"

const ActivitySchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "activity",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "qty", "type": "long"},
		{"name": "occurred_at_ms", "type": "long"}
	]
}`

// ActivityV1 is the wire form of a cart or wishlist mutation.
type ActivityV1 struct {
	ID         string `avro:"id"`
	Kind       string `avro:"kind"`
	ProductID  int64  `avro:"product_id"`
	Qty        int64  `avro:"qty"`
	OccurredAt int64  `avro:"occurred_at_ms"` // unix millis
}

// ActivityV1Avro panics when the schema text is invalid.
func ActivityV1Avro() avro.Schema {
	return avro.MustParse(ActivitySchemaTextV1)
}
