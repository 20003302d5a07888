package beast

import (
	"reflect"
	"testing"

	"github.com/johron/beast/buffer"
)

func BenchmarkClassifyZeroAllocs(b *testing.B) {
	tt := []reflect.Type{
		reflect.TypeOf((*[]buffer.MutableBuffer)(nil)).Elem(),
		reflect.TypeOf((*regionChain)(nil)).Elem(),
		reflect.TypeOf((**scratchPool)(nil)).Elem(),
	}
	IsConstBufferSequence(tt...) // warm the verdict cache
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = IsConstBufferSequence(tt...)
		_ = IsMutableBufferSequence(tt...)
	}
}

func BenchmarkBuffersType(b *testing.B) {
	tt := []reflect.Type{
		reflect.TypeOf((*buffer.MutableBuffer)(nil)).Elem(),
		reflect.TypeOf((*[]buffer.MutableBuffer)(nil)).Elem(),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = BuffersType(tt...)
	}
}

func BenchmarkBuffersIteratorType(b *testing.B) {
	t := reflect.TypeOf((*regionChain)(nil)).Elem()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = BuffersIteratorType(t)
	}
}

func BenchmarkBuffersFront(b *testing.B) {
	seq := []buffer.MutableBuffer{
		make(buffer.MutableBuffer, 512),
		make(buffer.MutableBuffer, 512),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = BuffersFront(seq)
	}
}
