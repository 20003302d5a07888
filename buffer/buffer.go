// Package buffer defines the two canonical memory-region kinds used by
// the scatter/gather I/O layer and decides, for a single type, whether
// it behaves as a sequence of such regions.
//
// A region is a contiguous span of memory carrying a capability tag:
// read-only (ConstBuffer) or read-write (MutableBuffer). A read-write
// region is always usable read-only; the reverse conversion does not
// exist. Sequences come in several shapes: a lone region standing in as
// a one-element sequence, a slice or array of regions, or any container
// implementing ConstSequence or MutableSequence. Composition of these
// checks over lists of types lives in the root package.
package buffer

// MutableBuffer is a read-write region: a contiguous span that may be
// both inspected and overwritten.
type MutableBuffer []byte

// Len returns the size of the region in bytes.
func (b MutableBuffer) Len() int { return len(b) }

// Bytes returns the region's span. The span aliases the region; writes
// through it are writes to the region.
func (b MutableBuffer) Bytes() []byte { return b }

// Const returns the region viewed read-only, sharing the same span.
func (b MutableBuffer) Const() ConstBuffer { return ConstBuffer{data: b} }

// ConstBuffer is a read-only region. The zero value is an empty region.
type ConstBuffer struct {
	data []byte
}

// MakeConst returns a read-only region over p.
func MakeConst(p []byte) ConstBuffer { return ConstBuffer{data: p} }

// Len returns the size of the region in bytes.
func (b ConstBuffer) Len() int { return len(b.data) }

// At returns the byte at offset i.
func (b ConstBuffer) At(i int) byte { return b.data[i] }

// Bytes returns the region's span. Callers must not write through it;
// the region is read-only by contract, not by memory protection.
func (b ConstBuffer) Bytes() []byte { return b.data }
