// Package session owns the state of one open document: the gap buffer
// holding its text, the file path it came from, and whether it carries
// unsaved changes. A session is created per document and replaced
// wholesale on new-file/open-file; nothing here is process-global.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xonecas/lacuna/internal/gapbuffer"
)

// ErrNoPath is returned by Save on a session that was never given a file
// path. Callers prompt for one and retry with SaveAs.
var ErrNoPath = errors.New("session has no file path")

// Session is a single open document. It is driven from one update loop
// and is not safe for concurrent use.
type Session struct {
	buf   *gapbuffer.GapBuffer
	path  string
	dirty bool
}

// New returns a scratch session over seed text with no backing file. The
// cursor starts at the end of the seed.
func New(seed string, extraCapacity int) (*Session, error) {
	buf, err := gapbuffer.New(seed, extraCapacity)
	if err != nil {
		return nil, err
	}
	return &Session{buf: buf}, nil
}

// Open reads path, normalizes line endings to LF, and returns a clean
// session with the cursor at the start of the document.
func Open(path string, extraCapacity int) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	buf, err := gapbuffer.New(normalizeLineEndings(string(data)), extraCapacity)
	if err != nil {
		return nil, err
	}
	if err := buf.MoveCursorTo(0); err != nil {
		return nil, err
	}
	return &Session{buf: buf, path: path}, nil
}

// normalizeLineEndings converts CRLF and lone CR to LF so the buffer only
// ever sees one line terminator.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Insert writes r at the cursor and marks the session dirty.
func (s *Session) Insert(r rune) error {
	if err := s.buf.Insert(r); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// InsertString inserts text at the cursor and marks the session dirty.
func (s *Session) InsertString(text string) error {
	if text == "" {
		return nil
	}
	if err := s.buf.InsertString(text); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// DeleteBackward removes the rune before the cursor. The benign
// nothing-to-delete condition passes through without dirtying the session.
func (s *Session) DeleteBackward() error {
	if err := s.buf.DeleteBackward(); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// DeleteForward removes the rune after the cursor, with the same benign
// boundary behavior as DeleteBackward.
func (s *Session) DeleteForward() error {
	if err := s.buf.DeleteForward(); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// MoveCursorTo repositions the cursor. Moves never dirty the session.
func (s *Session) MoveCursorTo(offset int) error {
	return s.buf.MoveCursorTo(offset)
}

// RestoreCursor moves the cursor to an offset remembered from an earlier
// run, clamping into the current document first. The file may have
// changed since the offset was recorded, so out-of-range values are
// expected rather than errors.
func (s *Session) RestoreCursor(offset int) {
	if offset < 0 {
		offset = 0
	}
	if n := s.buf.Len(); offset > n {
		offset = n
	}
	// Cannot fail after clamping.
	_ = s.buf.MoveCursorTo(offset)
}

// MoveCursorLeft steps the cursor back one rune, stopping at the start.
func (s *Session) MoveCursorLeft() { s.buf.MoveCursorLeft() }

// MoveCursorRight steps the cursor forward one rune, stopping at the end.
func (s *Session) MoveCursorRight() { s.buf.MoveCursorRight() }

// Text returns the document as a contiguous string.
func (s *Session) Text() string { return s.buf.Text() }

// Len reports the document length in runes.
func (s *Session) Len() int { return s.buf.Len() }

// Cursor reports the logical cursor offset.
func (s *Session) Cursor() int { return s.buf.Cursor() }

// Stats exposes the underlying buffer geometry for status displays.
func (s *Session) Stats() gapbuffer.Stats { return s.buf.Stats() }

// Path returns the backing file path, empty for a scratch session.
func (s *Session) Path() string { return s.path }

// Dirty reports whether the document has unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// Name returns the basename for display, or "untitled" for a scratch
// session.
func (s *Session) Name() string {
	if s.path == "" {
		return "untitled"
	}
	return filepath.Base(s.path)
}

// Save writes the document verbatim to the session's path and clears the
// dirty flag.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(s.path, []byte(s.buf.Text()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}

// SaveAs rebinds the session to path and saves. The old path is kept when
// the write fails.
func (s *Session) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	prev := s.path
	s.path = path
	if err := s.Save(); err != nil {
		s.path = prev
		return err
	}
	return nil
}
