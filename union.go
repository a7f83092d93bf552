package actions

import (
	"fmt"
	"go/token"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/zoobzio/sentinel"
)

// Union is an ordered set of tags: every action type a group of creators
// can produce. It is the runtime counterpart of a discriminated union type
// and lets tests check that a reducer handles every case.
//
// The zero Union is empty and ready to use.
type Union struct {
	tags  []Tag
	index map[Tag]struct{}
}

// newUnion builds a union from tags, dropping duplicates and zero tags.
func newUnion(tags ...Tag) Union {
	u := Union{index: make(map[Tag]struct{}, len(tags))}
	u.add(tags...)
	return u
}

func (u *Union) add(tags ...Tag) {
	if u.index == nil {
		u.index = make(map[Tag]struct{})
	}
	for _, t := range tags {
		if t.IsZero() {
			continue
		}
		if _, ok := u.index[t]; ok {
			continue
		}
		u.index[t] = struct{}{}
		u.tags = append(u.tags, t)
	}
}

// Tags returns the union's tags in discovery order.
func (u Union) Tags() []Tag {
	out := make([]Tag, len(u.tags))
	copy(out, u.tags)
	return out
}

// Len returns the number of tags in the union.
func (u Union) Len() int {
	return len(u.tags)
}

// Contains reports whether t is a member of the union.
func (u Union) Contains(t Tag) bool {
	_, ok := u.index[t]
	return ok
}

// Missing returns the union members absent from handled.
func (u Union) Missing(handled ...Tag) []Tag {
	seen := make(map[Tag]struct{}, len(handled))
	for _, t := range handled {
		seen[t] = struct{}{}
	}
	var missing []Tag
	for _, t := range u.tags {
		if _, ok := seen[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

// Unknown returns the entries of handled that are not union members.
func (u Union) Unknown(handled ...Tag) []Tag {
	var unknown []Tag
	for _, t := range handled {
		if !u.Contains(t) {
			unknown = append(unknown, t)
		}
	}
	return unknown
}

// Merge returns a union holding the members of u followed by those of others.
func (u Union) Merge(others ...Union) Union {
	merged := newUnion(u.tags...)
	for _, o := range others {
		merged.add(o.tags...)
	}
	return merged
}

// String lists the members, e.g. "ADD | INCREMENT".
func (u Union) String() string {
	parts := make([]string, len(u.tags))
	for i, t := range u.tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

// UnionOf collects the tags of every creator reachable from mapping.
//
// mapping is an arbitrarily nested group of creators: structs (exported
// fields only), maps, slices, arrays, pointers and interfaces are walked
// recursively; any TagSource contributes its tags (an AsyncCreator
// contributes three). Nil pointers, interfaces and maps contribute nothing,
// and a pointer or map reached a second time is not walked again, so groups
// may hold back-references. A Creator or AsyncCreator that was never built
// fails with a WalkError wrapping ErrUnbuiltCreator. Any other value fails
// with a WalkError wrapping ErrNotCreator.
//
//	var Actions = struct {
//	    Very struct{ Deep struct{ Empty actions.Creator[actions.Void, actions.Void, actions.Void] } }
//	    Add  actions.Creator[int, int, actions.Void]
//	}{...}
//	union, err := actions.UnionOf(Actions)
func UnionOf[T any](mapping T) (Union, error) {
	w := newWalker()
	rv := reflect.ValueOf(&mapping).Elem()

	var err error
	if rv.Kind() == reflect.Struct && rv.Type().Name() != "" && !isTagSource(rv) {
		err = w.fields(rv, sentinel.Scan[T](), "")
	} else {
		err = w.walk(rv, "")
	}
	if err != nil {
		return Union{}, err
	}
	return w.union, nil
}

// builtChecker is implemented by the package's creator types.
type builtChecker interface {
	isBuilt() bool
}

var tagSourceType = reflect.TypeOf((*TagSource)(nil)).Elem()

// visit identifies a pointer, map or slice already descended into.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

// walker accumulates tags while descending a mapping.
type walker struct {
	union Union
	seen  map[visit]struct{}
}

func newWalker() *walker {
	return &walker{seen: make(map[visit]struct{})}
}

// collect adds the tags of src, rejecting creators that were never built.
func (w *walker) collect(src TagSource, path string, typ reflect.Type) error {
	if b, ok := src.(builtChecker); ok && !b.isBuilt() {
		return &WalkError{Err: ErrUnbuiltCreator, Path: path, Type: typ.String()}
	}
	w.union.add(src.Tags()...)
	return nil
}

// enter marks a pointer, map or slice as visited and reports whether it was new.
func (w *walker) enter(v reflect.Value) bool {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		key.n = v.Len()
	}
	if _, ok := w.seen[key]; ok {
		return false
	}
	w.seen[key] = struct{}{}
	return true
}

func (w *walker) walk(v reflect.Value, path string) error {
	if !v.IsValid() || isNilRef(v) {
		return nil
	}
	if v.Kind() == reflect.Interface {
		return w.walk(v.Elem(), path)
	}
	if v.CanInterface() && isTagSource(v) {
		return w.collect(v.Interface().(TagSource), path, v.Type())
	}

	switch v.Kind() {
	case reflect.Pointer:
		if !w.enter(v) {
			return nil
		}
		return w.walk(v.Elem(), path)

	case reflect.Struct:
		return w.fields(v, scanGroup(v.Type()), path)

	case reflect.Map:
		if !w.enter(v) {
			return nil
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			if err := w.walk(v.MapIndex(k), joinPath(path, fmt.Sprint(k.Interface()))); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && !w.enter(v) {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := w.walk(v.Index(i), joinPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil
	}

	return newWalkError(path, v.Type().String())
}

// fields walks the exported fields of a struct group.
func (w *walker) fields(v reflect.Value, meta sentinel.Metadata, path string) error {
	for _, field := range meta.Fields {
		if !token.IsExported(field.Name) {
			continue
		}
		if err := w.walk(v.FieldByIndex(field.Index), joinPath(path, field.Name)); err != nil {
			return err
		}
	}
	return nil
}

// isTagSource reports whether v's type implements TagSource.
func isTagSource(v reflect.Value) bool {
	return v.Type().Implements(tagSourceType)
}

// isNilRef reports whether v is a nil pointer, interface or map.
func isNilRef(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return v.IsNil()
	}
	return false
}

// scanGroup returns field metadata for a nested group type.
func scanGroup(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return meta
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return meta
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
