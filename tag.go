package actions

import (
	"github.com/google/uuid"
)

// Suffixes appended to a base tag by Async.
const (
	SuffixRequest = "REQUEST"
	SuffixSuccess = "SUCCESS"
	SuffixFailure = "FAILURE"
)

type tagKind uint8

const (
	tagAbsent tagKind = iota
	tagString
	tagSymbol
)

// Tag names an action kind.
//
// A Tag is either a string tag, created with String or by passing a string to
// Build, or an opaque symbol created with NewSymbol. Tags are comparable and
// can be used directly as switch cases and map keys:
//
//	switch a.ActionType() {
//	case actions.TagOf(add):
//	    // ...
//	}
//
// String tags are equal when their names are equal. Symbols are equal only
// to themselves; a symbol never equals a string tag, even one carrying the
// same text as its description.
//
// The zero Tag is absent and is rejected by Build.
type Tag struct {
	kind tagKind
	name string
	id   uuid.UUID
}

// String returns a string tag. The empty string is a valid tag.
func String(name string) Tag {
	return Tag{kind: tagString, name: name}
}

// NewSymbol returns a process-unique opaque tag. The description is used
// for display only and takes no part in equality.
func NewSymbol(description string) Tag {
	return Tag{kind: tagSymbol, name: description, id: uuid.New()}
}

// IsZero reports whether t is the absent tag.
func (t Tag) IsZero() bool {
	return t.kind == tagAbsent
}

// IsSymbol reports whether t was created by NewSymbol.
func (t Tag) IsSymbol() bool {
	return t.kind == tagSymbol
}

// Name returns the string value of a string tag or the description of a symbol.
func (t Tag) Name() string {
	return t.name
}

// String formats the tag for display. Symbols render as Symbol(description).
func (t Tag) String() string {
	switch t.kind {
	case tagString:
		return t.name
	case tagSymbol:
		return "Symbol(" + t.name + ")"
	default:
		return "<absent>"
	}
}

// suffixed derives base_SUFFIX. Only string tags can be suffixed.
func (t Tag) suffixed(suffix string) (Tag, error) {
	if t.kind != tagString {
		return Tag{}, newArgumentError(reasonAsyncSymbol, t)
	}
	return String(t.name + "_" + suffix), nil
}
