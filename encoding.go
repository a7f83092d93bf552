package actions

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Wire field names. Optional fields are written only when present.
const (
	FieldType    = "type"
	FieldPayload = "payload"
	FieldMeta    = "meta"
)

// wireAction is the typed decode target.
type wireAction[P, M any] struct {
	Type    string `json:"type" yaml:"type" msgpack:"type" bson:"type"`
	Payload P      `json:"payload" yaml:"payload" msgpack:"payload" bson:"payload"`
	Meta    M      `json:"meta" yaml:"meta" msgpack:"meta" bson:"meta"`
}

// Encode writes e as {type, payload?, meta?} using c.
// Field presence follows the action exactly: a present nil payload is
// written as null, an absent payload is not written at all.
// Symbol tags have no wire form and fail with ErrSymbolTag.
func Encode(ctx context.Context, c Codec, e Envelope) ([]byte, error) {
	start := time.Now()
	tag := e.ActionType()

	data, err := encode(c, tag, e)
	emitEncodeComplete(ctx, c.ContentType(), tag, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func encode(c Codec, tag Tag, e Envelope) ([]byte, error) {
	if tag.IsSymbol() {
		return nil, newCodecError(ErrSymbolTag, fmt.Errorf("type %s", tag))
	}
	if tag.IsZero() {
		return nil, newCodecError(ErrMarshal, errors.New("action has no type"))
	}

	doc := map[string]any{FieldType: tag.Name()}
	if p, ok := e.PayloadValue(); ok {
		doc[FieldPayload] = p
	}
	if m, ok := e.MetaValue(); ok {
		doc[FieldMeta] = m
	}

	data, err := c.Marshal(doc)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// Decode reads an action written by Encode. The decoded tag is always a
// string tag; payload and meta are present exactly when their keys were.
func Decode[P, M any](ctx context.Context, c Codec, data []byte) (Action[P, M], error) {
	start := time.Now()
	a, err := decode[P, M](c, data)
	emitDecodeComplete(ctx, c.ContentType(), len(data), time.Since(start), err)
	return a, err
}

// DecodeFor decodes data into the shapes produced by creator and requires
// the wire type to equal the creator's tag.
func DecodeFor[A, P, M any](ctx context.Context, c Codec, creator Creator[A, P, M], data []byte) (Action[P, M], error) {
	start := time.Now()
	a, err := decode[P, M](c, data)
	if err == nil && a.Type != creator.Tag() {
		err = newCodecError(ErrTagMismatch, fmt.Errorf("got %q, want %q", a.Type.Name(), creator.Tag().String()))
		a = Action[P, M]{}
	}
	emitDecodeComplete(ctx, c.ContentType(), len(data), time.Since(start), err)
	return a, err
}

func decode[P, M any](c Codec, data []byte) (Action[P, M], error) {
	// First pass finds which keys exist; the typed pass cannot tell
	// a missing field from a zero one.
	var keys map[string]any
	if err := c.Unmarshal(data, &keys); err != nil {
		return Action[P, M]{}, newCodecError(ErrUnmarshal, err)
	}
	name, ok := keys[FieldType].(string)
	if !ok {
		return Action[P, M]{}, newCodecError(ErrUnmarshal, fmt.Errorf("missing %q field", FieldType))
	}

	var wire wireAction[P, M]
	if err := c.Unmarshal(data, &wire); err != nil {
		return Action[P, M]{}, newCodecError(ErrUnmarshal, err)
	}

	a := Action[P, M]{Type: String(name)}
	if _, ok := keys[FieldPayload]; ok {
		a.Payload = wire.Payload
		a.fields |= hasPayload
	}
	if _, ok := keys[FieldMeta]; ok {
		a.Meta = wire.Meta
		a.fields |= hasMeta
	}
	return a, nil
}
