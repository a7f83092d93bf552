package actions

import (
	"context"
	"reflect"
)

// Builder creates action creators for a single tag.
// Obtain one from Build or MustBuild.
type Builder struct {
	tag      Tag
	registry *Registry
	ctx      context.Context
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry registers the builder's creators with r instead of the
// process-wide registry.
func WithRegistry(r *Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithContext sets the context carried by signals the builder emits.
func WithContext(ctx context.Context) Option {
	return func(b *Builder) {
		if ctx != nil {
			b.ctx = ctx
		}
	}
}

// Build validates tag and returns a Builder for it.
//
// tag may be a Tag, a *Tag, or any value whose underlying kind is string
// (including named string types and pointers to them). A nil or zero tag
// fails with "first argument is missing"; any other kind fails with
// "first argument should be type of: string | symbol". Both errors unwrap
// to ErrInvalidArgument.
func Build(tag any, opts ...Option) (*Builder, error) {
	b := &Builder{
		registry: defaultRegistry,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(b)
	}

	t, err := toTag(tag)
	if err != nil {
		emitBuildRejected(b.ctx, err)
		return nil, err
	}
	b.tag = t
	return b, nil
}

// MustBuild is like Build but panics on error.
// It simplifies declaring creators as package-level variables.
func MustBuild(tag any, opts ...Option) *Builder {
	b, err := Build(tag, opts...)
	if err != nil {
		panic("actions: Build(" + describe(tag) + "): " + err.Error())
	}
	return b
}

// Tag returns the builder's base tag.
func (b *Builder) Tag() Tag {
	return b.tag
}

// Empty returns a creator whose actions carry only the type.
func (b *Builder) Empty() Creator[Void, Void, Void] {
	tag := b.tag
	return newCreator(b, ModeEmpty, tag, func(Void) Action[Void, Void] {
		return Action[Void, Void]{Type: tag}
	})
}

// Payload returns a creator whose actions carry the call argument as payload.
// The payload field is present for every argument, including nil and zero
// values. Payload[Void] is equivalent to Empty.
func Payload[P any](b *Builder) Creator[P, P, Void] {
	tag := b.tag
	if isVoid[P]() {
		return newCreator(b, ModeEmpty, tag, func(P) Action[P, Void] {
			return Action[P, Void]{Type: tag}
		})
	}
	return newCreator(b, ModePayload, tag, func(p P) Action[P, Void] {
		return Action[P, Void]{Type: tag, Payload: p, fields: hasPayload}
	})
}

// FSA returns a creator computing the payload from the call argument.
// Mappers that ignore their input take Void; invoke those creators with Call.
// A nil mapper produces actions without a payload field.
func FSA[A, P any](b *Builder, payload func(A) P) Creator[A, P, Void] {
	return fsa[A, P, Void](b, payload, nil)
}

// FSAWithMeta is FSA with a second mapper computing meta from the same argument.
// Both mappers run on every invocation; results are never cached.
func FSAWithMeta[A, P, M any](b *Builder, payload func(A) P, meta func(A) M) Creator[A, P, M] {
	return fsa(b, payload, meta)
}

func fsa[A, P, M any](b *Builder, payload func(A) P, meta func(A) M) Creator[A, P, M] {
	tag := b.tag
	return newCreator(b, ModeFSA, tag, func(arg A) Action[P, M] {
		a := Action[P, M]{Type: tag}
		if payload != nil {
			a.Payload = payload(arg)
			a.fields |= hasPayload
		}
		if meta != nil {
			a.Meta = meta(arg)
			a.fields |= hasMeta
		}
		return a
	})
}

// Async returns the request/success/failure triad for the builder's tag.
//
// Member tags are base_REQUEST, base_SUCCESS and base_FAILURE. Unlike
// Payload, a member omits the payload field when its argument is nil (nil
// interface, pointer, map, slice, channel or func) or Void. Symbol tags
// cannot be suffixed and fail with ErrInvalidArgument.
func Async[R, S, F any](b *Builder) (AsyncCreator[R, S, F], error) {
	request, err := b.tag.suffixed(SuffixRequest)
	if err != nil {
		emitBuildRejected(b.ctx, err)
		return AsyncCreator[R, S, F]{}, err
	}
	// A string base tag cannot fail the remaining suffixes.
	success, _ := b.tag.suffixed(SuffixSuccess)
	failure, _ := b.tag.suffixed(SuffixFailure)

	return AsyncCreator[R, S, F]{
		Request: newCreator(b, ModeAsync, request, optionalPayload[R](request)),
		Success: newCreator(b, ModeAsync, success, optionalPayload[S](success)),
		Failure: newCreator(b, ModeAsync, failure, optionalPayload[F](failure)),
	}, nil
}

// MustAsync is like Async but panics on error.
func MustAsync[R, S, F any](b *Builder) AsyncCreator[R, S, F] {
	a, err := Async[R, S, F](b)
	if err != nil {
		panic("actions: Async(" + b.tag.String() + "): " + err.Error())
	}
	return a
}

func optionalPayload[P any](tag Tag) func(P) Action[P, Void] {
	return func(p P) Action[P, Void] {
		a := Action[P, Void]{Type: tag}
		if !isNullish(p) {
			a.Payload = p
			a.fields = hasPayload
		}
		return a
	}
}

// newCreator assembles a creator, registers its tag and emits SignalCreatorBuilt.
func newCreator[A, P, M any](b *Builder, mode Mode, tag Tag, create func(A) Action[P, M]) Creator[A, P, M] {
	for _, added := range b.registry.Register(tag) {
		emitTagRegistered(b.ctx, added, b.registry.Len())
	}
	emitCreatorBuilt(b.ctx, tag, mode)
	return Creator[A, P, M]{tag: tag, mode: mode, create: create}
}

// toTag converts a Build argument into a Tag.
func toTag(v any) (Tag, error) {
	switch t := v.(type) {
	case nil:
		return Tag{}, newArgumentError(reasonMissing, nil)
	case Tag:
		if t.IsZero() {
			return Tag{}, newArgumentError(reasonMissing, nil)
		}
		return t, nil
	case *Tag:
		if t == nil || t.IsZero() {
			return Tag{}, newArgumentError(reasonMissing, nil)
		}
		return *t, nil
	case string:
		return String(t), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Tag{}, newArgumentError(reasonMissing, nil)
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String {
		return String(rv.String()), nil
	}
	return Tag{}, newArgumentError(reasonKind, v)
}

// describe renders a Build argument for panic messages.
func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
