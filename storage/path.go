package storage

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/daruolis/tessera/util"
)

// Path is an ordered sequence of segments identifying one location in the raw
// store. Segments may carry arbitrary bytes. The wire form length-prefixes
// every segment, so the segments-to-key mapping is injective: two distinct
// paths never produce the same raw key
type Path []string

const maxSegmentLen = 255

func NewPath(segments ...string) Path {
	for _, s := range segments {
		util.Assertf(len(s) > 0 && len(s) <= maxSegmentLen, "storage: path segment length must be 1..%d", maxSegmentLen)
	}
	return segments
}

func (p Path) Append(segments ...string) Path {
	ret := make(Path, 0, len(p)+len(segments))
	ret = append(ret, p...)
	return append(ret, segments...)
}

// Bytes is the raw store key of the path
func (p Path) Bytes() []byte {
	size := len(p)
	for _, s := range p {
		size += len(s)
	}
	ret := make([]byte, 0, size)
	for _, s := range p {
		ret = append(ret, byte(len(s)))
		ret = append(ret, s...)
	}
	return ret
}

func PathFromBytes(data []byte) (Path, error) {
	ret := make(Path, 0, 4)
	for i := 0; i < len(data); {
		n := int(data[i])
		i++
		if n == 0 || i+n > len(data) {
			return nil, fmt.Errorf("PathFromBytes: invalid path encoding")
		}
		ret = append(ret, string(data[i:i+n]))
		i += n
	}
	return ret, nil
}

func (p Path) String() string {
	ret := make([]string, len(p))
	for i, s := range p {
		if isPrintable(s) {
			ret[i] = s
		} else {
			ret[i] = fmt.Sprintf("%x", s)
		}
	}
	return "/" + strings.Join(ret, "/")
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
