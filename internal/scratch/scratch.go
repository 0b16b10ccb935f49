// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package scratch implements a growable byte stack used as temporary
// storage while decoding string values.
package scratch

import "fmt"

// MinSize is the minimum capacity in bytes allocated by a Buffer once it
// holds any data.
const MinSize = 256

// A Buffer is an append-only stack of bytes with a movable top. The zero
// value is ready for use. Its capacity grows by half again each time it
// needs more room, and never shrinks.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	top  int
}

// Top reports the current top-of-stack offset.
func (b *Buffer) Top() int { return b.top }

// Cap reports the current capacity of b in bytes.
func (b *Buffer) Cap() int { return len(b.data) }

// Push reserves n bytes at the top of b and returns a writable slice of
// exactly those bytes. The slice is valid until the next call to Push.
func (b *Buffer) Push(n int) []byte {
	if n <= 0 {
		panic(fmt.Sprintf("scratch: invalid push size %d", n))
	}
	b.ensure(b.top + n)
	p := b.top
	b.top += n
	return b.data[p:b.top:b.top]
}

// PushByte pushes a single byte onto b.
func (b *Buffer) PushByte(c byte) { b.Push(1)[0] = c }

// Pop removes n bytes from the top of b and returns them. The contents of
// the returned slice are valid until the next call to Push, so the caller
// must copy them if they are to be retained.
// Pop panics if fewer than n bytes are on the stack.
func (b *Buffer) Pop(n int) []byte {
	if n < 0 || n > b.top {
		panic(fmt.Sprintf("scratch: pop %d with top %d", n, b.top))
	}
	b.top -= n
	return b.data[b.top : b.top+n : b.top+n]
}

// Rewind discards everything pushed since the top was at mark.
// Rewind panics if mark is beyond the current top.
func (b *Buffer) Rewind(mark int) {
	if mark < 0 || mark > b.top {
		panic(fmt.Sprintf("scratch: rewind to %d with top %d", mark, b.top))
	}
	b.top = mark
}

// ensure grows the backing array if necessary so that it holds at least
// need bytes, preserving the current contents.
func (b *Buffer) ensure(need int) {
	if need <= len(b.data) {
		return
	}
	size := max(len(b.data), MinSize)
	for size < need {
		size += size / 2
	}
	next := make([]byte, size)
	copy(next, b.data[:b.top])
	b.data = next
}
