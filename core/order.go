// This file implements the optional natural-ordering capability for node
// values. Ordering is never required: algorithms that want deterministic
// emission ask for a comparator here and fall back to unordered emission
// when none exists.
package core

import "reflect"

// NaturalLess returns a strict-less comparator for N and true when N has an
// obvious total order: string, signed integer, unsigned integer, or float
// kinds (including named types with those underlying kinds). For every other
// node type it returns (nil, false); callers must treat a nil comparator as
// "emit in unspecified order", not as an error.
//
// The kind probe runs once per call; the returned comparator itself is a
// plain value comparison via reflection.
func NaturalLess[N comparable]() (func(a, b N) bool, bool) {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.String:
		return func(a, b N) bool {
			return reflect.ValueOf(a).String() < reflect.ValueOf(b).String()
		}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b N) bool {
			return reflect.ValueOf(a).Int() < reflect.ValueOf(b).Int()
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b N) bool {
			return reflect.ValueOf(a).Uint() < reflect.ValueOf(b).Uint()
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b N) bool {
			return reflect.ValueOf(a).Float() < reflect.ValueOf(b).Float()
		}, true
	default:
		// Structs, arrays, channels, pointers and interface node types are
		// hashable but carry no natural order.
		return nil, false
	}
}
