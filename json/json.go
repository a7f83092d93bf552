// Package json provides a JSON codec for actions.
package json

import (
	"encoding/json"

	"github.com/zoobzio/actions"
)

// ContentType is the MIME type reported by the JSON codec.
const ContentType = "application/json"

// jsonCodec implements actions.Codec for JSON.
type jsonCodec struct {
	prefix string
	indent string
}

// Option configures the JSON codec.
type Option func(*jsonCodec)

// WithIndent formats output with json.MarshalIndent.
func WithIndent(prefix, indent string) Option {
	return func(c *jsonCodec) {
		c.prefix = prefix
		c.indent = indent
	}
}

// New returns a JSON codec.
func New(opts ...Option) actions.Codec {
	c := &jsonCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.prefix != "" || c.indent != "" {
		return json.MarshalIndent(v, c.prefix, c.indent)
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
