// Package yaml provides a YAML codec for actions.
package yaml

import (
	"bytes"

	"github.com/zoobzio/actions"
	"gopkg.in/yaml.v3"
)

// ContentType is the MIME type reported by the YAML codec.
const ContentType = "application/yaml"

// yamlCodec implements actions.Codec for YAML.
type yamlCodec struct {
	indent int
}

// New returns a YAML codec indenting nested values by two spaces.
func New() actions.Codec {
	return &yamlCodec{indent: 2}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
