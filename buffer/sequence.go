package buffer

import (
	"reflect"
	"sync"

	"github.com/johron/beast/internal/common"
)

// ConstSequence is implemented by containers that present their regions
// read-only. ConstBuffers returns the traversal over the regions in order.
type ConstSequence interface {
	ConstBuffers() []ConstBuffer
}

// MutableSequence is implemented by containers whose regions may be
// written. MutableBuffers returns the traversal over the regions in
// order. Every MutableSequence is also usable as a read-only sequence.
type MutableSequence interface {
	MutableBuffers() []MutableBuffer
}

var (
	// ConstBufferType and MutableBufferType are the reflect types of the
	// two region kinds, for callers selecting one as a concrete type.
	ConstBufferType   = reflect.TypeOf((*ConstBuffer)(nil)).Elem()
	MutableBufferType = reflect.TypeOf((*MutableBuffer)(nil)).Elem()

	constSequenceType   = reflect.TypeOf((*ConstSequence)(nil)).Elem()
	mutableSequenceType = reflect.TypeOf((*MutableSequence)(nil)).Elem()
)

type caps uint8

const (
	capConst caps = 1 << iota
	capMutable
)

// verdicts memoizes capsOf per type. Classification is a pure function
// of the type, so a racing store can only re-derive the same answer.
var verdicts sync.Map // reflect.Type -> caps

func capsOf(t reflect.Type) caps {
	if v, ok := verdicts.Load(t); ok {
		return v.(caps)
	}
	c := classify(t)
	verdicts.Store(t, c)
	return c
}

func classify(t reflect.Type) caps {
	switch {
	case t == MutableBufferType:
		return capConst | capMutable
	case t == ConstBufferType:
		return capConst
	case common.IsSequenceOf(t, MutableBufferType):
		return capConst | capMutable
	case common.IsSequenceOf(t, ConstBufferType):
		return capConst
	case common.Implements(t, mutableSequenceType):
		return capConst | capMutable
	case common.Implements(t, constSequenceType):
		return capConst
	default:
		return 0
	}
}

// IsConstSequenceType reports whether t behaves as a sequence of
// read-only regions. t is taken as-is; the root package applies pointer
// normalization before calling in here.
func IsConstSequenceType(t reflect.Type) bool {
	return t != nil && capsOf(t)&capConst != 0
}

// IsMutableSequenceType reports whether t behaves as a sequence of
// read-write regions.
func IsMutableSequenceType(t reflect.Type) bool {
	return t != nil && capsOf(t)&capMutable != 0
}

// AsConstBuffers materializes the read-only traversal of a sequence
// value. A lone region yields a one-element traversal and read-write
// shapes are viewed read-only. Containers whose methods use pointer
// receivers may be passed by value; traversal then goes through a
// shallow copy sharing the region spans. The second result is false
// when v does not behave as a read-only-capable sequence; a nil pointer
// to a conforming type has no regions to walk and also answers false.
func AsConstBuffers(v any) ([]ConstBuffer, bool) {
	if bs, ok := asConstPlain(v); ok {
		return bs, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
		if bs, ok := asConstPlain(rv.Interface()); ok {
			return bs, true
		}
	}
	switch t := rv.Type(); {
	case common.IsSequenceOf(t, ConstBufferType):
		out := make([]ConstBuffer, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface().(ConstBuffer)
		}
		return out, true
	case common.IsSequenceOf(t, MutableBufferType):
		out := make([]ConstBuffer, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface().(MutableBuffer).Const()
		}
		return out, true
	}
	if pt := reflect.PointerTo(rv.Type()); pt.Implements(constSequenceType) || pt.Implements(mutableSequenceType) {
		return asConstPlain(pointerCopy(rv))
	}
	return nil, false
}

// pointerCopy rebuilds v behind a pointer so methods declared on *T are
// reachable from a value. The shallow copy shares the region spans.
func pointerCopy(rv reflect.Value) any {
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Interface()
}

// asConstPlain covers the shapes a plain type switch recognizes; named
// slice types, arrays and pointers fall through to reflection.
func asConstPlain(v any) ([]ConstBuffer, bool) {
	switch s := v.(type) {
	case ConstBuffer:
		return []ConstBuffer{s}, true
	case MutableBuffer:
		return []ConstBuffer{s.Const()}, true
	case []ConstBuffer:
		return s, true
	case []MutableBuffer:
		return constViews(s), true
	case ConstSequence:
		return s.ConstBuffers(), true
	case MutableSequence:
		return constViews(s.MutableBuffers()), true
	}
	return nil, false
}

// AsMutableBuffers materializes the read-write traversal of a sequence
// value. The second result is false when v does not behave as a
// read-write sequence; read-only shapes never qualify.
func AsMutableBuffers(v any) ([]MutableBuffer, bool) {
	if bs, ok := asMutablePlain(v); ok {
		return bs, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
		if bs, ok := asMutablePlain(rv.Interface()); ok {
			return bs, true
		}
	}
	if common.IsSequenceOf(rv.Type(), MutableBufferType) {
		out := make([]MutableBuffer, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface().(MutableBuffer)
		}
		return out, true
	}
	if reflect.PointerTo(rv.Type()).Implements(mutableSequenceType) {
		return asMutablePlain(pointerCopy(rv))
	}
	return nil, false
}

func asMutablePlain(v any) ([]MutableBuffer, bool) {
	switch s := v.(type) {
	case MutableBuffer:
		return []MutableBuffer{s}, true
	case []MutableBuffer:
		return s, true
	case MutableSequence:
		return s.MutableBuffers(), true
	}
	return nil, false
}

func constViews(bs []MutableBuffer) []ConstBuffer {
	out := make([]ConstBuffer, len(bs))
	for i, b := range bs {
		out[i] = b.Const()
	}
	return out
}
