package storage

import (
	"github.com/daruolis/tessera/util"
)

// Set keeps membership-only state: values encoded as keys under the prefix,
// mapped to a one-byte presence marker
type Set[V any] struct {
	prefix      Path
	prefixBytes []byte
	elements    KeyCodec[V]
}

var presenceMarker = []byte{0xff}

func NewSet[V any](prefix Path, elements KeyCodec[V]) Set[V] {
	util.Assertf(len(prefix) > 0, "storage: set prefix must not be empty")
	util.Assertf(elements.Width > 0, "storage: element codec width must be positive")
	return Set[V]{
		prefix:      prefix,
		prefixBytes: prefix.Bytes(),
		elements:    elements,
	}
}

func (s Set[V]) keyBytes(v V) []byte {
	segments := s.elements.Encode(v)
	util.Assertf(len(segments) == s.elements.Width, "storage: element codec produced %d segments, expected %d", len(segments), s.elements.Width)
	return s.prefix.Append(segments...).Bytes()
}

// Add is idempotent: adding a present value changes nothing observable
func (s Set[V]) Add(ctx *Context, v V) (*Context, error) {
	return ctx.update(s.keyBytes(v), presenceMarker)
}

// Remove is idempotent: removing an absent value is a no-op, not an error
func (s Set[V]) Remove(ctx *Context, v V) (*Context, error) {
	return ctx.update(s.keyBytes(v), nil)
}

func (s Set[V]) Has(ctx *Context, v V) bool {
	return ctx.has(s.keyBytes(v))
}

// Iterate calls fun for every member of the snapshot in the Context, in the
// store's deterministic order, until fun returns false. Each call is a fresh,
// independent enumeration
func (s Set[V]) Iterate(ctx *Context, fun func(v V) bool) error {
	var err error
	ctx.iterate(s.prefixBytes, func(kBytes, _ []byte) bool {
		var p Path
		if p, err = PathFromBytes(kBytes); err != nil {
			err = decodeError(s.prefix.String(), err)
			return false
		}
		if len(p) != len(s.prefix)+s.elements.Width {
			err = decodeError(p.String(), errUnexpectedSegments)
			return false
		}
		var v V
		if v, err = s.elements.Decode(p[len(s.prefix):]); err != nil {
			err = decodeError(p.String(), err)
			return false
		}
		return fun(v)
	})
	return err
}

// Elements collects all members of the snapshot, in iteration order
func (s Set[V]) Elements(ctx *Context) ([]V, error) {
	ret := make([]V, 0)
	err := s.Iterate(ctx, func(v V) bool {
		ret = append(ret, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (s Set[V]) Prefix() Path {
	return s.prefix
}
