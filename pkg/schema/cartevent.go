package schema

import "github.com/hamba/avro/v2"

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "voicecart",
	"name": "cart_event",
	"fields": [
		{"name": "session_id", "type": "string"},
		{"name": "lines", "type": {"type": "array", "items": {
			"type": "record",
			"name": "cart_line",
			"fields": [
				{"name": "product_id", "type": "long"},
				{"name": "name", "type": "string"},
				{"name": "price", "type": "double"},
				{"name": "quantity", "type": "long"}
			]
		}}},
		{"name": "total", "type": "double"},
		{"name": "unix_ms", "type": "long"}
	]
}`

type (
	// CartEventV1 is the cart telemetry record produced on every
	// client cart update.
	CartEventV1 struct {
		SessionID string       `avro:"session_id"`
		Lines     []CartLineV1 `avro:"lines"`
		Total     float64      `avro:"total"`
		UnixMs    int64        `avro:"unix_ms"`
	}

	CartLineV1 struct {
		ProductID int64   `avro:"product_id"`
		Name      string  `avro:"name"`
		Price     float64 `avro:"price"`
		Quantity  int64   `avro:"quantity"`
	}
)

// CartEventV1Avro parses the cart event schema. Panics on an invalid
// schema text, which is a development mistake.
func CartEventV1Avro() avro.Schema {
	return avro.MustParse(CartEventSchemaTextV1)
}
