package beast

import (
	"reflect"

	"github.com/johron/beast/buffer"
)

// BuffersFront returns the first region of buffers viewed read-only, or
// a zero-length region when the sequence holds none. It panics when T
// does not meet the read-only buffer sequence requirements; callers
// gating broader type sets use IsConstBufferSequence instead and branch
// on the verdict.
func BuffersFront[T any](buffers T) buffer.ConstBuffer {
	if !IsConstBufferSequenceFor[T]() {
		panic("beast: " + reflect.TypeOf((*T)(nil)).Elem().String() +
			" does not meet the buffer sequence requirements")
	}
	bs, _ := buffer.AsConstBuffers(buffers)
	if len(bs) == 0 {
		return buffer.ConstBuffer{}
	}
	return bs[0]
}

// BufferBytes returns the total size in bytes of the regions of a
// sequence value. The bytes themselves are never touched. A value that
// is no buffer sequence counts zero.
func BufferBytes(v any) int {
	bs, ok := buffer.AsConstBuffers(v)
	if !ok {
		return 0
	}
	n := 0
	for _, b := range bs {
		n += b.Len()
	}
	return n
}
