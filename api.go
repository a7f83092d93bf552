// Package actions builds tagged action values for unidirectional state management.
//
// An action is a record {type, payload?, meta?}. The package derives creators
// from a single tag, so every action a creator produces carries that tag and
// the tag can be read back from the creator for switch-style dispatch.
//
// # Tags
//
// A tag is a string or an opaque symbol:
//
//	add := actions.MustBuild("ADD")                          // string tag
//	inc := actions.MustBuild(actions.NewSymbol("INCREMENT")) // symbol tag
//
// Symbols compare by identity only. Build rejects a missing tag with
// "first argument is missing" and any non-string, non-Tag argument with
// "first argument should be type of: string | symbol".
//
// # Modes
//
// A Builder offers four ways to construct a creator:
//
//   - Empty: {type}
//   - Payload[P]: {type, payload}; the payload is present even when nil or zero
//   - FSA / FSAWithMeta: payload and meta computed from the argument by mappers
//   - Async[R, S, F]: a request/success/failure triad tagged base_REQUEST,
//     base_SUCCESS and base_FAILURE whose members omit a nil payload
//
// Example:
//
//	var (
//	    Add    = actions.Payload[int](actions.MustBuild("ADD"))
//	    Reset  = actions.MustBuild("RESET").Empty()
//	    Notify = actions.FSAWithMeta(actions.MustBuild("NOTIFY"),
//	        func(n Notification) string { return n.Username + ": " + n.Message },
//	        func(n Notification) Notification { return n },
//	    )
//	    ListUsers = actions.MustAsync[actions.Void, []User, string](actions.MustBuild("LIST_USERS"))
//	)
//
//	a := Add.Create(10) // {type: ADD, payload: 10}
//	r := Reset.Call()   // {type: RESET}
//	s := ListUsers.Success.Create(users)
//
// # Dispatch
//
// Creators expose their tag through Tag and TagOf. Tags are comparable, so a
// reducer switches on the action type directly:
//
//	switch a.ActionType() {
//	case actions.TagOf(Add):
//	case actions.TagOf(Reset):
//	}
//
// # Unions
//
// Go cannot derive a union type from a group of creators, so the package
// tracks unions at runtime. Every creator registers its tag with a Registry
// when it is built, and UnionOf walks any nested struct, map or slice of
// creators to collect the tags it can produce. The testing subpackage checks
// a reducer's handled tags against a Union.
//
// # Wire Format
//
// Encode and Decode convert actions through a Codec. Implementations are
// available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Signals
//
// Builders and codecs emit capitan signals (SignalCreatorBuilt,
// SignalBuildRejected, SignalTagRegistered, SignalEncodeComplete,
// SignalDecodeComplete). Hook them to log or meter action construction.
package actions
