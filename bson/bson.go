// Package bson provides a BSON codec for actions.
//
// BSON documents must be maps or structs at the top level, which Encode
// always produces.
package bson

import (
	"github.com/zoobzio/actions"
	"go.mongodb.org/mongo-driver/bson"
)

// ContentType is the MIME type reported by the BSON codec.
const ContentType = "application/bson"

// bsonCodec implements actions.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() actions.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
