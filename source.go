// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"bufio"
	"bytes"
	"io"
)

// ByteSource is a pull-based source of octets: read(n), read_until(delim),
// and a one-octet peek for HasNext, per spec.md §4.1's leaf dependency.
// Implementations are not required to be safe for concurrent use; a
// single Reader built over one ByteSource is single-threaded cooperative
// (spec.md §5).
type ByteSource interface {
	// ReadFull reads exactly n octets. If the source is exhausted first it
	// fails with io.EOF when no octet was read and io.ErrUnexpectedEOF
	// otherwise (wrapped by the caller into the appropriate Kind).
	ReadFull(n int) ([]byte, error)

	// ReadUntil reads octets up to and including the next occurrence of
	// delim. It returns io.EOF if delim is never found before the source
	// is exhausted.
	ReadUntil(delim byte) ([]byte, error)

	// PeekByte returns the next octet without consuming it, or io.EOF if
	// none remains.
	PeekByte() (byte, error)
}

type bufioSource struct {
	r *bufio.Reader
}

// NewByteSource adapts any io.Reader (a file, a socket, a network stream)
// into a ByteSource, buffering reads the way cacack-gedcom-go's record
// iterator buffers a plain io.Reader with bufio.Scanner.
func NewByteSource(r io.Reader) ByteSource {
	return &bufioSource{r: bufio.NewReaderSize(r, 64*1024)}
}

// NewBytesSource adapts an in-memory byte slice into a ByteSource, for
// callers (e.g. spec.md §8 scenario 3) holding a whole record set in
// memory already.
func NewBytesSource(data []byte) ByteSource {
	return NewByteSource(bytes.NewReader(data))
}

func (s *bufioSource) ReadFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *bufioSource) ReadUntil(delim byte) ([]byte, error) {
	return s.r.ReadBytes(delim)
}

func (s *bufioSource) PeekByte() (byte, error) {
	b, err := s.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
