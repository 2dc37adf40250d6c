package storage

type (
	// IterableMap is a Map whose entries can be enumerated. Enumeration order
	// is the raw store's deterministic key order, the same on every node, so
	// domain logic may fold over "all entries" inside consensus
	IterableMap[K, V any] struct {
		Map[K, V]
	}
)

func NewIterableMap[K, V any](prefix Path, keys KeyCodec[K], values ValueCodec[V]) IterableMap[K, V] {
	return IterableMap[K, V]{Map: NewMap(prefix, keys, values)}
}

// Iterate calls fun for every entry of the snapshot in the Context, in the
// store's deterministic order, until fun returns false. Every call starts a
// fresh iteration: mutations made through other Contexts are never observed
func (m IterableMap[K, V]) Iterate(ctx *Context, fun func(k K, v V) bool) error {
	var err error
	ctx.iterate(m.prefixBytes, func(kBytes, vBytes []byte) bool {
		var k K
		if k, err = m.decodeKeyBytes(kBytes); err != nil {
			return false
		}
		var v V
		if v, err = m.values.Decode(vBytes); err != nil {
			err = decodeError(m.prefix.String(), err)
			return false
		}
		return fun(k, v)
	})
	return err
}

// Keys collects all keys of the snapshot, in iteration order
func (m IterableMap[K, V]) Keys(ctx *Context) ([]K, error) {
	ret := make([]K, 0)
	var err error
	ctx.iterate(m.prefixBytes, func(kBytes, _ []byte) bool {
		var k K
		if k, err = m.decodeKeyBytes(kBytes); err != nil {
			return false
		}
		ret = append(ret, k)
		return true
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (m Map[K, V]) decodeKeyBytes(kBytes []byte) (K, error) {
	var nilK K
	p, err := PathFromBytes(kBytes)
	if err != nil {
		return nilK, decodeError(m.prefix.String(), err)
	}
	if len(p) != len(m.prefix)+m.keys.Width {
		return nilK, decodeError(p.String(), errUnexpectedSegments)
	}
	ret, err := m.keys.Decode(p[len(m.prefix):])
	if err != nil {
		return nilK, decodeError(p.String(), err)
	}
	return ret, nil
}
