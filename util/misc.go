package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var thousandsPrinter = message.NewPrinter(language.English)

// Th formats the integer with thousands separators, for human-readable amounts
func Th[T constraints.Integer](v T) string {
	return thousandsPrinter.Sprintf("%d", int64(v))
}

// KeysSorted returns map keys sorted by the given less function
func KeysSorted[K comparable, V any](m map[K]V, less func(k1, k2 K) bool) []K {
	ret := maps.Keys(m)
	slices.SortFunc(ret, func(a, b K) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	return ret
}
