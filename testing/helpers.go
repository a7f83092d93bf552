// Package testing provides test utilities for actions.
//
// Go cannot check a reducer's switch for exhaustiveness at compile time, so
// these helpers do it at test time against a Union:
//
//	func TestReducerIsExhaustive(t *testing.T) {
//	    union := actionstest.MustUnion(t, Actions)
//	    actionstest.AssertExhaustive(t, union, handledTags...)
//	}
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/actions"
)

// MustUnion derives the union of mapping and fails the test on error.
func MustUnion[T any](tb testing.TB, mapping T) actions.Union {
	tb.Helper()
	union, err := actions.UnionOf(mapping)
	if err != nil {
		tb.Fatalf("UnionOf() error: %v", err)
	}
	return union
}

// AssertExhaustive fails the test unless handled lists exactly the tags of union.
// Tags in union but not handled, and handled tags outside union, are both reported.
func AssertExhaustive(tb testing.TB, union actions.Union, handled ...actions.Tag) {
	tb.Helper()
	if missing := union.Missing(handled...); len(missing) > 0 {
		tb.Errorf("unhandled action types: %s", join(missing))
	}
	if unknown := union.Unknown(handled...); len(unknown) > 0 {
		tb.Errorf("handled action types outside the union: %s", join(unknown))
	}
}

// AssertHandles fails the test for every union member handles rejects.
// handles is typically a thin wrapper reporting whether a reducer's switch
// has a case for the tag.
func AssertHandles(tb testing.TB, union actions.Union, handles func(actions.Tag) bool) {
	tb.Helper()
	var missing []actions.Tag
	for _, tag := range union.Tags() {
		if !handles(tag) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		tb.Errorf("unhandled action types: %s", join(missing))
	}
}

func join(tags []actions.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// User is a payload fixture implementing actions.Cloner.
type User struct {
	ID    string   `json:"id" yaml:"id" msgpack:"id" bson:"id"`
	Name  string   `json:"name" yaml:"name" msgpack:"name" bson:"name"`
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty" msgpack:"roles,omitempty" bson:"roles,omitempty"`
}

// Clone implements actions.Cloner[User].
func (u User) Clone() User {
	var roles []string
	if u.Roles != nil {
		roles = make([]string, len(u.Roles))
		copy(roles, u.Roles)
	}
	return User{ID: u.ID, Name: u.Name, Roles: roles}
}

// Trace is a meta fixture.
type Trace struct {
	Source string `json:"source" yaml:"source" msgpack:"source" bson:"source"`
}

// UserActions is a nested creator group covering every builder mode.
type UserActions struct {
	Reset  actions.Creator[actions.Void, actions.Void, actions.Void]
	Select actions.Creator[string, string, actions.Void]
	Rename actions.Creator[User, string, Trace]
	Fetch  actions.AsyncCreator[actions.Void, []User, string]
	Admin  struct {
		Promote actions.Creator[User, User, actions.Void]
	}
}

// NewUserActions builds a UserActions group registered with reg.
func NewUserActions(reg *actions.Registry) UserActions {
	opt := actions.WithRegistry(reg)

	var a UserActions
	a.Reset = actions.MustBuild("USERS_RESET", opt).Empty()
	a.Select = actions.Payload[string](actions.MustBuild("USERS_SELECT", opt))
	a.Rename = actions.FSAWithMeta(actions.MustBuild("USERS_RENAME", opt),
		func(u User) string { return u.Name },
		func(User) Trace { return Trace{Source: "test"} },
	)
	a.Fetch = actions.MustAsync[actions.Void, []User, string](actions.MustBuild("USERS_FETCH", opt))
	a.Admin.Promote = actions.FSA(actions.MustBuild("USERS_PROMOTE", opt), func(u User) User {
		u.Roles = append(u.Roles, "admin")
		return u
	})
	return a
}
