// Package lines is a small helper for assembling indented multi-line text
package lines

import (
	"fmt"
	"strings"
)

type Lines struct {
	prefix string
	l      []string
}

func New(prefix ...string) *Lines {
	pref := ""
	if len(prefix) > 0 {
		pref = prefix[0]
	}
	return &Lines{
		prefix: pref,
		l:      make([]string, 0),
	}
}

func (ln *Lines) Add(format string, args ...any) *Lines {
	ln.l = append(ln.l, fmt.Sprintf(format, args...))
	return ln
}

func (ln *Lines) Append(other *Lines) *Lines {
	ln.l = append(ln.l, other.l...)
	return ln
}

func (ln *Lines) Join(sep string) string {
	return strings.Join(ln.l, sep)
}

func (ln *Lines) String() string {
	var sb strings.Builder
	for i, s := range ln.l {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(ln.prefix)
		sb.WriteString(s)
	}
	return sb.String()
}
