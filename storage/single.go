package storage

import (
	"errors"

	"github.com/daruolis/tessera/util"
)

type (
	// Slot is a single mandatory storage location. Get on an absent slot is
	// ErrNotFound: the caller assumed pre-existing state and did not find it
	Slot[V any] struct {
		path  Path
		key   []byte
		codec ValueCodec[V]
	}

	// OptionalSlot is a single location where absence is normal, expected
	// data, not a protocol bug. Get reports absence instead of failing
	OptionalSlot[V any] struct {
		slot Slot[V]
	}
)

// NewSlot binds a fixed path to a value codec. Prefixes are construction-time
// constants, never derived from runtime data: that is what keeps unrelated
// entities from colliding on a key
func NewSlot[V any](path Path, codec ValueCodec[V]) Slot[V] {
	util.Assertf(len(path) > 0, "storage: slot path must not be empty")
	return Slot[V]{
		path:  path,
		key:   path.Bytes(),
		codec: codec,
	}
}

func NewOptionalSlot[V any](path Path, codec ValueCodec[V]) OptionalSlot[V] {
	return OptionalSlot[V]{slot: NewSlot(path, codec)}
}

func (s Slot[V]) Get(ctx *Context) (V, error) {
	var nilV V
	data := ctx.get(s.key)
	if len(data) == 0 {
		return nilV, ErrNotFound
	}
	ret, err := s.codec.Decode(data)
	if err != nil {
		return nilV, decodeError(s.path.String(), err)
	}
	return ret, nil
}

// Set creates or overwrites the slot
func (s Slot[V]) Set(ctx *Context, v V) (*Context, error) {
	return ctx.update(s.key, s.codec.mustEncode(v))
}

// Init writes the slot only if it is currently absent, otherwise fails with
// ErrAlreadyExists and leaves the stored value untouched
func (s Slot[V]) Init(ctx *Context, v V) (*Context, error) {
	if ctx.has(s.key) {
		return nil, ErrAlreadyExists
	}
	return s.Set(ctx, v)
}

// Delete removes the slot. Idempotent
func (s Slot[V]) Delete(ctx *Context) (*Context, error) {
	return ctx.update(s.key, nil)
}

func (s Slot[V]) Path() Path {
	return s.path
}

func (s OptionalSlot[V]) Get(ctx *Context) (V, bool, error) {
	ret, err := s.slot.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		var nilV V
		return nilV, false, nil
	}
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}

func (s OptionalSlot[V]) Set(ctx *Context, v V) (*Context, error) {
	return s.slot.Set(ctx, v)
}

func (s OptionalSlot[V]) Init(ctx *Context, v V) (*Context, error) {
	return s.slot.Init(ctx, v)
}

func (s OptionalSlot[V]) Delete(ctx *Context) (*Context, error) {
	return s.slot.Delete(ctx)
}

func (s OptionalSlot[V]) Path() Path {
	return s.slot.path
}
