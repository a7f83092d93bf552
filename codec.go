package actions

// Codec provides content-type aware marshaling for Encode and Decode.
//
// Codec implementations live in the json, yaml, msgpack and bson subpackages.
// A Codec must be able to unmarshal a document into map[string]any so that
// Decode can detect which optional fields were present.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
