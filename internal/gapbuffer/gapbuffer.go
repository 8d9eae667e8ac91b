// Package gapbuffer implements the text store at the heart of lacuna: a
// single rune slice with a movable gap whose start is the cursor.
//
// The slice is split into three regions: [0,gapStart) holds the document
// runes before the cursor, [gapStart,gapEnd) is the gap and is never read
// as content, and [gapEnd,cap) holds the runes after the cursor. Typing
// writes into the gap and advances gapStart; deleting widens the gap over
// the neighboring cell. Moving the cursor shifts the runes between the gap
// and the target across the gap with copy, so edits at the cursor are O(1)
// and cursor motion costs only the distance moved.
package gapbuffer

import "errors"

// Errors returned by buffer operations. ErrNothingToDelete is benign:
// deleting at the edge of the document is a no-op, not a failure.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrNothingToDelete  = errors.New("nothing to delete")
	ErrNegativeCapacity = errors.New("negative extra capacity")
	ErrCapacityOverflow = errors.New("capacity overflow")
)

const (
	minGrow = 64
	maxInt  = int(^uint(0) >> 1)
)

// GapBuffer is a single-document text store. It is not safe for concurrent
// use; callers serialize access (the editor drives it from one update loop).
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int
}

// New returns a buffer seeded with text and a gap of extraCapacity runes
// after it. The cursor starts at the end of the seed text.
func New(text string, extraCapacity int) (*GapBuffer, error) {
	if extraCapacity < 0 {
		return nil, ErrNegativeCapacity
	}
	rs := []rune(text)
	buf := make([]rune, len(rs)+extraCapacity)
	copy(buf, rs)
	return &GapBuffer{buf: buf, gapStart: len(rs), gapEnd: len(buf)}, nil
}

// Len reports the number of runes of document text, gap excluded.
func (b *GapBuffer) Len() int {
	return len(b.buf) - (b.gapEnd - b.gapStart)
}

// Cap reports the total capacity of the store, gap included.
func (b *GapBuffer) Cap() int {
	return len(b.buf)
}

// Cursor reports the logical cursor offset, which is always gapStart.
func (b *GapBuffer) Cursor() int {
	return b.gapStart
}

func (b *GapBuffer) gapLen() int {
	return b.gapEnd - b.gapStart
}

// Insert writes r at the cursor and advances it. The buffer grows when the
// gap is exhausted; existing text and the cursor are unaffected by growth.
func (b *GapBuffer) Insert(r rune) error {
	if b.gapLen() == 0 {
		if err := b.grow(1); err != nil {
			return err
		}
	}
	b.buf[b.gapStart] = r
	b.gapStart++
	return nil
}

// InsertString inserts s at the cursor, reserving gap space once for the
// whole string. Equivalent to inserting each rune in order.
func (b *GapBuffer) InsertString(s string) error {
	if s == "" {
		return nil
	}
	rs := []rune(s)
	if b.gapLen() < len(rs) {
		if err := b.grow(len(rs)); err != nil {
			return err
		}
	}
	copy(b.buf[b.gapStart:b.gapStart+len(rs)], rs)
	b.gapStart += len(rs)
	return nil
}

// DeleteBackward removes the rune before the cursor by absorbing its cell
// into the gap. At offset 0 it returns ErrNothingToDelete and changes
// nothing.
func (b *GapBuffer) DeleteBackward() error {
	if b.gapStart == 0 {
		return ErrNothingToDelete
	}
	b.gapStart--
	return nil
}

// DeleteForward removes the rune after the cursor. At the end of the
// document it returns ErrNothingToDelete and changes nothing.
func (b *GapBuffer) DeleteForward() error {
	if b.gapEnd == len(b.buf) {
		return ErrNothingToDelete
	}
	b.gapEnd++
	return nil
}

// MoveCursorTo relocates the gap so that gapStart == offset, shifting the
// runes between the old and new positions across the gap. Offsets outside
// [0, Len()] return ErrOffsetOutOfRange with the buffer unchanged; moving
// to the current offset is a no-op.
func (b *GapBuffer) MoveCursorTo(offset int) error {
	if offset < 0 || offset > b.Len() {
		return ErrOffsetOutOfRange
	}
	switch {
	case offset == b.gapStart:
	case offset < b.gapStart:
		n := b.gapStart - offset
		copy(b.buf[b.gapEnd-n:b.gapEnd], b.buf[offset:b.gapStart])
		b.gapStart -= n
		b.gapEnd -= n
	default:
		n := offset - b.gapStart
		copy(b.buf[b.gapStart:b.gapStart+n], b.buf[b.gapEnd:b.gapEnd+n])
		b.gapStart += n
		b.gapEnd += n
	}
	return nil
}

// MoveCursorLeft steps the cursor back one rune. At offset 0 it does
// nothing.
func (b *GapBuffer) MoveCursorLeft() {
	if b.gapStart == 0 {
		return
	}
	b.buf[b.gapEnd-1] = b.buf[b.gapStart-1]
	b.gapStart--
	b.gapEnd--
}

// MoveCursorRight steps the cursor forward one rune. At the end of the
// document it does nothing.
func (b *GapBuffer) MoveCursorRight() {
	if b.gapEnd == len(b.buf) {
		return
	}
	b.buf[b.gapStart] = b.buf[b.gapEnd]
	b.gapStart++
	b.gapEnd++
}

// Text returns the document as a contiguous string, gap excluded.
func (b *GapBuffer) Text() string {
	out := make([]rune, b.Len())
	copy(out, b.buf[:b.gapStart])
	copy(out[b.gapStart:], b.buf[b.gapEnd:])
	return string(out)
}

// Stats is a point-in-time snapshot of the buffer internals, for status
// displays and diagnostics.
type Stats struct {
	GapStart  int
	GapEnd    int
	GapLength int
	Capacity  int
	Length    int
}

// Stats reports the current gap position and sizing. O(1).
func (b *GapBuffer) Stats() Stats {
	return Stats{
		GapStart:  b.gapStart,
		GapEnd:    b.gapEnd,
		GapLength: b.gapLen(),
		Capacity:  len(b.buf),
		Length:    b.Len(),
	}
}

// grow replaces the store with a larger one: doubled, but at least minGrow
// cells wider and wide enough for need more runes. The region before the
// gap stays in place and the region after it moves to the new tail, so the
// document text and cursor are untouched. Fails only when the arithmetic
// would overflow, leaving the buffer as it was.
func (b *GapBuffer) grow(need int) error {
	if len(b.buf) > maxInt/2-minGrow {
		return ErrCapacityOverflow
	}
	newCap := len(b.buf) * 2
	if c := len(b.buf) + minGrow; newCap < c {
		newCap = c
	}
	if c := b.Len() + need; newCap < c {
		newCap = c
	}
	next := make([]rune, newCap)
	copy(next, b.buf[:b.gapStart])
	tail := len(b.buf) - b.gapEnd
	copy(next[newCap-tail:], b.buf[b.gapEnd:])
	b.buf = next
	b.gapEnd = newCap - tail
	return nil
}
