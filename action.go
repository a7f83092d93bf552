package actions

import (
	"fmt"
	"reflect"
	"strings"
)

// Void marks an absent payload, meta or argument.
//
// Payload[Void] is the same creator as Builder.Empty, and FSA mappers that
// take no input are written as func(Void) P and invoked with Creator.Call.
type Void struct{}

// presence records which optional fields an action carries.
type presence uint8

const (
	hasPayload presence = 1 << iota
	hasMeta
)

// Action is a tagged record {type, payload?, meta?}.
//
// Payload and Meta hold the zero value when the corresponding field is
// absent; HasPayload and HasMeta tell the two cases apart. Actions are values:
// every creator invocation returns a new one and nothing is shared between
// invocations except the caller's own argument.
type Action[P, M any] struct {
	Type    Tag
	Payload P
	Meta    M

	fields presence
}

// Envelope is implemented by every Action regardless of its payload and meta
// types. Reducers and codecs use it to handle a union of actions uniformly.
type Envelope interface {
	// ActionType returns the action's tag.
	ActionType() Tag

	// PayloadValue returns the payload and whether it is present.
	PayloadValue() (any, bool)

	// MetaValue returns the meta value and whether it is present.
	MetaValue() (any, bool)
}

var _ Envelope = Action[Void, Void]{}

// ActionType returns the action's tag.
func (a Action[P, M]) ActionType() Tag {
	return a.Type
}

// HasPayload reports whether the payload field is present.
func (a Action[P, M]) HasPayload() bool {
	return a.fields&hasPayload != 0
}

// HasMeta reports whether the meta field is present.
func (a Action[P, M]) HasMeta() bool {
	return a.fields&hasMeta != 0
}

// PayloadValue returns the payload and whether it is present.
func (a Action[P, M]) PayloadValue() (any, bool) {
	if !a.HasPayload() {
		return nil, false
	}
	return a.Payload, true
}

// MetaValue returns the meta value and whether it is present.
func (a Action[P, M]) MetaValue() (any, bool) {
	if !a.HasMeta() {
		return nil, false
	}
	return a.Meta, true
}

// Equal reports structural equality, including which fields are present.
func (a Action[P, M]) Equal(other Action[P, M]) bool {
	return reflect.DeepEqual(a, other)
}

// Clone returns a copy of a. Payload and meta values implementing Cloner
// are deep-copied; everything else is copied by assignment.
func (a Action[P, M]) Clone() Action[P, M] {
	if c, ok := any(a.Payload).(Cloner[P]); ok && a.HasPayload() {
		a.Payload = c.Clone()
	}
	if c, ok := any(a.Meta).(Cloner[M]); ok && a.HasMeta() {
		a.Meta = c.Clone()
	}
	return a
}

// String formats the action showing only the fields that are present.
func (a Action[P, M]) String() string {
	var b strings.Builder
	b.WriteString("{type: ")
	b.WriteString(a.Type.String())
	if a.HasPayload() {
		fmt.Fprintf(&b, ", payload: %v", a.Payload)
	}
	if a.HasMeta() {
		fmt.Fprintf(&b, ", meta: %v", a.Meta)
	}
	b.WriteString("}")
	return b.String()
}

// isVoid reports whether T is Void.
func isVoid[T any]() bool {
	return reflect.TypeFor[T]() == reflect.TypeFor[Void]()
}

// isNullish reports whether v counts as "no value" for async payloads.
func isNullish(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(Void); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
