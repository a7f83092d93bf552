package actions

// Tagged is implemented by every creator.
type Tagged interface {
	// Tag returns the tag stamped on every action the creator produces.
	Tag() Tag
}

// TagSource contributes tags to a union. Creators contribute one tag,
// AsyncCreator contributes three. Implement it on custom groups to control
// what UnionOf collects from them.
type TagSource interface {
	Tags() []Tag
}

// Creator produces actions of one tag.
//
// A is the call argument, P the payload and M the meta type. Creators are
// immutable records: the tag and the construction function are fixed when
// the builder returns, so a Creator may be copied and shared between
// goroutines freely. The zero Creator produces {type: <absent>}.
type Creator[A, P, M any] struct {
	tag    Tag
	mode   Mode
	create func(A) Action[P, M]
}

// Create builds a new action from arg.
func (c Creator[A, P, M]) Create(arg A) Action[P, M] {
	if c.create == nil {
		return Action[P, M]{Type: c.tag}
	}
	return c.create(arg)
}

// Call builds a new action without an argument. It is the natural way to
// invoke empty creators, Payload[Void] creators and FSA creators whose
// mappers take Void.
func (c Creator[A, P, M]) Call() Action[P, M] {
	var zero A
	return c.Create(zero)
}

// Tag returns the creator's tag without building an action.
func (c Creator[A, P, M]) Tag() Tag {
	return c.tag
}

// Tags implements TagSource.
func (c Creator[A, P, M]) Tags() []Tag {
	if c.tag.IsZero() {
		return nil
	}
	return []Tag{c.tag}
}

func (c Creator[A, P, M]) isBuilt() bool {
	return !c.tag.IsZero()
}

// Mode reports which builder mode produced the creator.
func (c Creator[A, P, M]) Mode() Mode {
	return c.mode
}

// AsyncCreator groups the three creators returned by Async.
// Each member is an ordinary Creator with its own suffixed tag.
type AsyncCreator[R, S, F any] struct {
	Request Creator[R, R, Void]
	Success Creator[S, S, Void]
	Failure Creator[F, F, Void]
}

// Tags implements TagSource, returning request, success and failure tags in order.
func (a AsyncCreator[R, S, F]) Tags() []Tag {
	tags := make([]Tag, 0, 3)
	tags = append(tags, a.Request.Tags()...)
	tags = append(tags, a.Success.Tags()...)
	tags = append(tags, a.Failure.Tags()...)
	return tags
}

func (a AsyncCreator[R, S, F]) isBuilt() bool {
	return a.Request.isBuilt() && a.Success.isBuilt() && a.Failure.isBuilt()
}

// TagOf returns the tag of a creator. For triad members this is the suffixed
// tag, not the base tag. A nil creator yields the zero Tag.
func TagOf(c Tagged) Tag {
	if c == nil {
		return Tag{}
	}
	return c.Tag()
}
