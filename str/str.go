// Package str provides a small owned-string value type backed by an
// exclusively owned byte buffer: construction copies its input, mutators
// never alias another String's storage, and read operations never allocate.
package str

import (
	"bytes"
	"errors"
)

// ErrOutOfBounds is returned for indexes outside the string.
var ErrOutOfBounds = errors.New("str: index out of bounds")

// String is a mutable byte string. The zero value is the empty string.
type String struct {
	buf []byte
}

// New returns a String holding a copy of s.
func New(s string) String {
	return String{buf: []byte(s)}
}

// Clone returns an independent copy.
func (s String) Clone() String {
	return String{buf: append([]byte(nil), s.buf...)}
}

// Append extends s with the contents of other. The buffer is reallocated so
// value copies of the old s are unaffected.
func (s *String) Append(other String) {
	buf := make([]byte, 0, len(s.buf)+len(other.buf))
	buf = append(buf, s.buf...)
	buf = append(buf, other.buf...)
	s.buf = buf
}

// At returns the byte at the zero-based index.
func (s String) At(index int) (byte, error) {
	if index < 0 || index >= len(s.buf) {
		return 0, ErrOutOfBounds
	}
	return s.buf[index], nil
}

// SetAt replaces the byte at the zero-based index.
func (s *String) SetAt(index int, b byte) error {
	if index < 0 || index >= len(s.buf) {
		return ErrOutOfBounds
	}
	s.buf[index] = b
	return nil
}

// Clear makes s empty.
func (s *String) Clear() {
	s.buf = nil
}

// Compare orders s against other lexicographically: 0 when equal, negative
// when s sorts first, positive when other does.
func (s String) Compare(other String) int {
	return bytes.Compare(s.buf, other.buf)
}

// Concat returns a new String holding s followed by other.
func (s String) Concat(other String) String {
	buf := make([]byte, 0, len(s.buf)+len(other.buf))
	buf = append(buf, s.buf...)
	buf = append(buf, other.buf...)
	return String{buf: buf}
}

// Contains reports whether sub occurs somewhere within s.
func (s String) Contains(sub String) bool {
	return bytes.Contains(s.buf, sub.buf)
}

// Equals reports whether s and other hold the same bytes.
func (s String) Equals(other String) bool {
	return bytes.Equal(s.buf, other.buf)
}

// Find returns the index of the first occurrence of sub, or -1.
func (s String) Find(sub String) int {
	return bytes.Index(s.buf, sub.buf)
}

// IsEmpty reports whether s holds no bytes.
func (s String) IsEmpty() bool { return len(s.buf) == 0 }

// Len returns the number of bytes.
func (s String) Len() int { return len(s.buf) }

// Substring returns the bytes from start up to but not including end.
func (s String) Substring(start, end int) (String, error) {
	if start < 0 || end < start || end > len(s.buf) {
		return String{}, ErrOutOfBounds
	}
	return String{buf: append([]byte(nil), s.buf[start:end]...)}, nil
}

// String returns the contents as a Go string.
func (s String) String() string { return string(s.buf) }
