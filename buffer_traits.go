// Package beast resolves buffer-sequence capabilities for a zero-copy
// scatter/gather I/O layer.
//
// Generic routines accept many concrete buffer-sequence shapes: a lone
// region, a slice or array of regions, or a user container implementing
// one of the sequence interfaces in package buffer. Three queries answer
// everything such a routine needs to know about its argument types, and
// nothing about their bytes:
//
//   - IsConstBufferSequence and IsMutableBufferSequence gate a routine:
//     they report whether every argument type conforms to the read-only
//     or read-write sequence capability.
//   - BuffersType selects the one region type a routine should stage or
//     return when its data may come from any of the given sequences.
//   - BuffersIteratorType names the type used to walk a sequence's
//     regions.
//
// All three are pure functions of their argument types: no allocation on
// the query path after warm-up, no side effects, and repeated queries
// always agree. Candidate types are normalized first, so value and
// pointer forms of a type answer identically.
package beast

import (
	"reflect"
	"sync"

	"github.com/johron/beast/buffer"
	"github.com/johron/beast/internal/common"
)

// IsConstBufferSequence reports whether every type in tt behaves as a
// sequence of read-only regions. An empty list is vacuously conforming,
// so variadic call sites with zero buffer arguments still pass the gate.
// A non-conforming type simply yields false; turning that into a
// rejection is the caller's business.
func IsConstBufferSequence(tt ...reflect.Type) bool {
	for _, t := range tt {
		if !buffer.IsConstSequenceType(common.Decay(t)) {
			return false
		}
	}
	return true
}

// IsMutableBufferSequence reports whether every type in tt behaves as a
// sequence of read-write regions. An empty list is vacuously conforming.
func IsMutableBufferSequence(tt ...reflect.Type) bool {
	for _, t := range tt {
		if !buffer.IsMutableSequenceType(common.Decay(t)) {
			return false
		}
	}
	return true
}

// BuffersType returns the region type a generic routine should use when
// staging or returning data drawn from sequences of the given types:
// buffer.MutableBuffer when the list is non-empty and every type is
// read-write capable, buffer.ConstBuffer otherwise. Read-write is only
// safe when every source is read-write, so the selector picks the
// weakest safe kind; the empty list answers buffer.ConstBuffer for the
// same reason.
//
// BuffersType does not gate: a list holding a type that is no buffer
// sequence at all still answers buffer.ConstBuffer. Callers needing
// rejection consult IsConstBufferSequence first.
func BuffersType(tt ...reflect.Type) reflect.Type {
	if len(tt) > 0 && IsMutableBufferSequence(tt...) {
		return buffer.MutableBufferType
	}
	return buffer.ConstBufferType
}

// BuffersIteratorType returns the type used to walk the regions of a
// sequence of type t, or nil when t is no buffer sequence.
//
// The two lone-region kinds are degenerate one-element sequences with no
// traversal operation of their own, so they answer a pointer to the
// region. A slice of regions answers itself, an array of regions its
// slice form, and any other conforming type the declared result type of
// its traversal method, looked up without calling it.
func BuffersIteratorType(t reflect.Type) reflect.Type {
	t = common.Decay(t)
	if t == nil {
		return nil
	}
	if v, ok := iterTypes.Load(t); ok {
		it, _ := v.(reflect.Type)
		return it
	}
	it := resolveIterator(t)
	iterTypes.Store(t, it)
	return it
}

// iterTypes memoizes resolveIterator per decayed type; method lookup
// through reflect is not free and the answer never changes.
var iterTypes sync.Map // reflect.Type -> reflect.Type, nil for non-sequences

func resolveIterator(t reflect.Type) reflect.Type {
	if t == buffer.ConstBufferType || t == buffer.MutableBufferType {
		return reflect.PointerTo(t)
	}
	if !buffer.IsConstSequenceType(t) {
		return nil
	}
	if common.IsSequenceOf(t, buffer.ConstBufferType) || common.IsSequenceOf(t, buffer.MutableBufferType) {
		if t.Kind() == reflect.Array {
			return reflect.SliceOf(t.Elem())
		}
		return t
	}
	if buffer.IsMutableSequenceType(t) {
		if r := common.MethodResult(t, "MutableBuffers"); r != nil {
			return r
		}
	}
	return common.MethodResult(t, "ConstBuffers")
}

// IsConstBufferSequenceFor is IsConstBufferSequence for a single type
// known at the call site.
func IsConstBufferSequenceFor[T any]() bool {
	return IsConstBufferSequence(reflect.TypeOf((*T)(nil)).Elem())
}

// IsMutableBufferSequenceFor is IsMutableBufferSequence for a single
// type known at the call site.
func IsMutableBufferSequenceFor[T any]() bool {
	return IsMutableBufferSequence(reflect.TypeOf((*T)(nil)).Elem())
}

// BuffersTypeFor is BuffersType for a single type known at the call site.
func BuffersTypeFor[T any]() reflect.Type {
	return BuffersType(reflect.TypeOf((*T)(nil)).Elem())
}

// BuffersIteratorTypeFor is BuffersIteratorType for a single type known
// at the call site.
func BuffersIteratorTypeFor[T any]() reflect.Type {
	return BuffersIteratorType(reflect.TypeOf((*T)(nil)).Elem())
}
