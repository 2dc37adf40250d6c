package storage

import (
	"errors"

	"github.com/daruolis/tessera/util"
)

type (
	// Map is a keyed collection of mandatory locations. Keys are encoded into
	// path segments under the map's prefix; distinct keys never collide by
	// construction of the path encoding
	Map[K, V any] struct {
		prefix      Path
		prefixBytes []byte
		keys        KeyCodec[K]
		values      ValueCodec[V]
	}

	// OptionalMap is a keyed collection for naturally partial relations:
	// Get reports absence instead of failing
	OptionalMap[K, V any] struct {
		m Map[K, V]
	}
)

func NewMap[K, V any](prefix Path, keys KeyCodec[K], values ValueCodec[V]) Map[K, V] {
	util.Assertf(len(prefix) > 0, "storage: map prefix must not be empty")
	util.Assertf(keys.Width > 0, "storage: key codec width must be positive")
	return Map[K, V]{
		prefix:      prefix,
		prefixBytes: prefix.Bytes(),
		keys:        keys,
		values:      values,
	}
}

func NewOptionalMap[K, V any](prefix Path, keys KeyCodec[K], values ValueCodec[V]) OptionalMap[K, V] {
	return OptionalMap[K, V]{m: NewMap(prefix, keys, values)}
}

func (m Map[K, V]) pathOf(k K) Path {
	segments := m.keys.Encode(k)
	util.Assertf(len(segments) == m.keys.Width, "storage: key codec produced %d segments, expected %d", len(segments), m.keys.Width)
	return m.prefix.Append(segments...)
}

func (m Map[K, V]) keyBytes(k K) []byte {
	return m.pathOf(k).Bytes()
}

func (m Map[K, V]) Get(ctx *Context, k K) (V, error) {
	var nilV V
	p := m.pathOf(k)
	data := ctx.get(p.Bytes())
	if len(data) == 0 {
		return nilV, ErrNotFound
	}
	ret, err := m.values.Decode(data)
	if err != nil {
		return nilV, decodeError(p.String(), err)
	}
	return ret, nil
}

func (m Map[K, V]) Set(ctx *Context, k K, v V) (*Context, error) {
	return ctx.update(m.keyBytes(k), m.values.mustEncode(v))
}

// Init fails with ErrAlreadyExists if the key is present; the stored value
// stays untouched
func (m Map[K, V]) Init(ctx *Context, k K, v V) (*Context, error) {
	key := m.keyBytes(k)
	if ctx.has(key) {
		return nil, ErrAlreadyExists
	}
	return ctx.update(key, m.values.mustEncode(v))
}

// Delete removes the entry. Idempotent
func (m Map[K, V]) Delete(ctx *Context, k K) (*Context, error) {
	return ctx.update(m.keyBytes(k), nil)
}

func (m Map[K, V]) Has(ctx *Context, k K) bool {
	return ctx.has(m.keyBytes(k))
}

func (m Map[K, V]) Prefix() Path {
	return m.prefix
}

func (m OptionalMap[K, V]) Get(ctx *Context, k K) (V, bool, error) {
	ret, err := m.m.Get(ctx, k)
	if errors.Is(err, ErrNotFound) {
		var nilV V
		return nilV, false, nil
	}
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}

func (m OptionalMap[K, V]) Set(ctx *Context, k K, v V) (*Context, error) {
	return m.m.Set(ctx, k, v)
}

func (m OptionalMap[K, V]) Init(ctx *Context, k K, v V) (*Context, error) {
	return m.m.Init(ctx, k, v)
}

func (m OptionalMap[K, V]) Delete(ctx *Context, k K) (*Context, error) {
	return m.m.Delete(ctx, k)
}

func (m OptionalMap[K, V]) Has(ctx *Context, k K) bool {
	return m.m.Has(ctx, k)
}

func (m OptionalMap[K, V]) Prefix() Path {
	return m.m.prefix
}
