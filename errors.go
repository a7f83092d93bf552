package actions

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidArgument indicates Build or Async received an unusable tag.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotCreator indicates UnionOf found a value that is neither a creator nor a group.
	ErrNotCreator = errors.New("not a creator")

	// ErrUnbuiltCreator indicates UnionOf found a zero Creator or AsyncCreator.
	ErrUnbuiltCreator = errors.New("creator was never built")

	// ErrSymbolTag indicates an action with a symbol tag was passed to Encode.
	ErrSymbolTag = errors.New("symbol tag cannot be encoded")

	// ErrTagMismatch indicates decoded data carries a different type than the creator.
	ErrTagMismatch = errors.New("tag mismatch")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

const (
	reasonMissing     = "first argument is missing"
	reasonKind        = "first argument should be type of: string | symbol"
	reasonAsyncSymbol = "async requires a string tag"
)

// ArgumentError is returned when a tag argument is missing or of the wrong kind.
// It always unwraps to ErrInvalidArgument.
type ArgumentError struct {
	Err    error // ErrInvalidArgument
	Reason string
	Value  any // The rejected argument, nil when missing
}

func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return e.Reason
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// WalkError reports the location of a value UnionOf could not use.
type WalkError struct {
	Err  error  // ErrNotCreator or ErrUnbuiltCreator
	Path string // Dotted path from the mapping root
	Type string // Go type found at Path
}

func (e *WalkError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Type)
	}
	return fmt.Sprintf("%s at %s: %s", e.Err.Error(), e.Path, e.Type)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// CodecError represents an encode/decode error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal, ErrSymbolTag, ErrTagMismatch)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newArgumentError creates an ArgumentError for a rejected tag.
func newArgumentError(reason string, value any) error {
	return &ArgumentError{
		Err:    ErrInvalidArgument,
		Reason: reason,
		Value:  value,
	}
}

// newWalkError creates a WalkError for a leaf that is not a creator.
func newWalkError(path, typ string) error {
	return &WalkError{
		Err:  ErrNotCreator,
		Path: path,
		Type: typ,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
