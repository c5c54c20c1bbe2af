// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"io"
	"iter"

	"github.com/pkg/errors"

	"github.com/tjemerson/marc21/charset"
	"github.com/tjemerson/marc21/internal/marclog"
)

// Reader is the streaming decoder of spec.md §4.1: a single-threaded,
// cooperative pull iterator over a ByteSource. A Reader built over a
// given ByteSource is not safe for concurrent use; independent Readers
// over independent ByteSources are independent (spec.md §5).
type Reader struct {
	source ByteSource
	opts   readerOpts
	index  int // zero-based index of the next record to be decoded
	failed bool
}

// NewReader constructs a Reader over source. By default, the charset is
// inferred per-record from the leader's charCodingScheme (spec.md §4.1);
// WithCharsetName/WithOverride change that.
func NewReader(source ByteSource, opts ...Option) *Reader {
	o := defaultOpts()
	for _, opt := range opts {
		opt(&o)
	}
	return &Reader{source: source, opts: o}
}

// HasNext reports whether at least one more octet is available in the
// underlying ByteSource, peeking at most one octet. It returns false on
// EOF. A non-EOF I/O error is not surfaced here (spec.md says so only for
// symmetry with Next's contract) — the same error will recur and be
// returned from the following Next call.
func (r *Reader) HasNext() bool {
	if r.failed {
		return false
	}
	_, err := r.source.PeekByte()
	return err == nil
}

// Next decodes the next record, advancing the source past its record
// terminator. On any framing failure it returns a *MarcError and the
// Reader's position is thereafter undefined — callers should stop
// iterating (spec.md §4.1).
func (r *Reader) Next() (*Record, error) {
	if r.failed {
		return nil, newErr(Io, r.index, "reader already failed on a previous record")
	}

	rec, err := r.readOneRecord()
	if err != nil {
		r.failed = true
		r.opts.logger.Error(err, "failed to decode record", "index", r.index)
		return nil, err
	}
	r.index++
	return rec, nil
}

// Records returns a Go 1.23 range-over-func iterator wrapping HasNext and
// Next, the way cacack-gedcom-go/parser.RecordIterator wraps a
// bufio.Scanner into app-level records. Iteration stops, without
// surfacing an error, at EOF or the first framing failure; callers that
// need the error should use HasNext/Next directly.
func (r *Reader) Records() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for r.HasNext() {
			rec, err := r.Next()
			if err != nil {
				return
			}
			if !yield(rec) {
				return
			}
		}
	}
}

func (r *Reader) readOneRecord() (*Record, error) {
	idx := r.index

	leaderBuf, err := r.source.ReadFull(leaderSize)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, wrapErr(TruncatedLeader, idx, err, "fewer than %d octets available at record start", leaderSize)
		}
		return nil, wrapErr(Io, idx, err, "reading leader")
	}

	leader, err := parseLeader(leaderBuf)
	if err != nil {
		return nil, wrapErr(MalformedLeader, idx, err, "parsing leader")
	}

	dirAndTerm, err := r.source.ReadUntil(fieldTerminator)
	if err != nil {
		return nil, wrapErr(MalformedDirectory, idx, err, "reading directory (no field terminator found)")
	}
	dirBody := dirAndTerm[:len(dirAndTerm)-1]

	entries, err := parseDirectory(dirBody)
	if err != nil {
		return nil, wrapErr(MalformedDirectory, idx, err, "parsing directory")
	}
	if len(entries) > 0 && !sortedByOffset(entries) {
		r.opts.logger.Debug("directory entries are not in ascending offset order, tolerating", "record", idx)
	}

	dataLen := leader.RecordLength - leader.BaseAddressOfData
	if dataLen < 1 {
		return nil, newErr(TruncatedRecord, idx, "record length %d is not greater than base address %d", leader.RecordLength, leader.BaseAddressOfData)
	}

	data, err := r.source.ReadFull(dataLen)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, wrapErr(TruncatedRecord, idx, err, "data area shorter than recordLength-baseAddressOfData (%d octets)", dataLen)
		}
		return nil, wrapErr(Io, idx, err, "reading data area")
	}

	if data[len(data)-1] != recordTerminator {
		return nil, newErr(MissingRecordTerminator, idx, "data area does not end with RT")
	}

	rec := NewRecord(leader)
	scheme := r.resolveScheme(leader)

	for entryIdx, e := range entries {
		if e.offset < 0 || e.length < 0 || e.offset+e.length > len(data) {
			return nil, newErr(MalformedDirectory, idx, "directory entry %d (tag %q) references %d..%d outside the %d-octet data area", entryIdx, e.tag, e.offset, e.offset+e.length, len(data))
		}
		slice := data[e.offset : e.offset+e.length]

		field, err := r.decodeField(idx, e, slice, scheme)
		if err != nil {
			return nil, err
		}
		rec.AddField(field)
	}

	return rec, nil
}

func sortedByOffset(entries []directoryEntry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].offset < entries[i-1].offset {
			return false
		}
	}
	return true
}

func (r *Reader) resolveScheme(leader Leader) charset.Scheme {
	var leaderScheme charset.Scheme
	if leader.CharCodingScheme == 'a' {
		leaderScheme = charset.UTF8()
	} else {
		leaderScheme = charset.MARC8()
	}

	if !r.opts.hasCharset {
		return leaderScheme
	}

	explicit := charset.FromName(r.opts.charsetName)
	if r.opts.override {
		return explicit
	}
	if (explicit.IsUTF8() && leaderScheme.IsUTF8()) || (explicit.IsMARC8() && leaderScheme.IsMARC8()) {
		return explicit
	}
	return leaderScheme
}

func (r *Reader) decodeField(recIdx int, e directoryEntry, slice []byte, scheme charset.Scheme) (Field, error) {
	// A charset the registry cannot resolve surfaces as UnknownCharset;
	// any other decode failure of a field body is MalformedField.
	decodeErrKind := func(err error) Kind {
		var cerr *charset.Error
		if errors.As(err, &cerr) && cerr.Kind == charset.ErrUnknownCharset {
			return UnknownCharset
		}
		return MalformedField
	}

	// The directory length is authoritative; an embedded FT inside the
	// slice (before its final octet) is tolerated and ignored (spec.md
	// §4.1's embedded-FT policy) because we never scan for FT here — we
	// only strip it if it is the slice's last octet.
	body := slice
	if len(body) > 0 && body[len(body)-1] == fieldTerminator {
		body = body[:len(body)-1]
	} else if r.opts.tolerance == Strict {
		return nil, newErr(MalformedField, recIdx, "field %q is missing its trailing field terminator", e.tag)
	} else {
		r.opts.logger.Debug("field missing trailing FT, tolerating", "record", recIdx, "tag", e.tag)
	}

	if isControlTag(e.tag) {
		data, err := charset.Decode(body, scheme)
		if err != nil {
			return nil, wrapErr(decodeErrKind(err), recIdx, err, "decoding control field %q", e.tag)
		}
		return &ControlField{tag: e.tag, data: data}, nil
	}

	indCount := 2 // spec.md §3: indicatorCount is always 2 in practice
	if len(body) < indCount {
		return nil, newErr(MalformedField, recIdx, "data field %q body is shorter than its %d indicators", e.tag, indCount)
	}
	ind1, ind2 := body[0], body[1]
	rest := body[indCount:]

	df := &DataField{tag: e.tag, indicator1: ind1, indicator2: ind2}

	pieces := splitSubfields(rest)
	for i, piece := range pieces {
		if i == 0 {
			// Leading segment before the first subfield delimiter:
			// spec.md §9's documented open question. Lenient mode
			// discards it (logged at debug level); Strict mode
			// rejects a non-empty one as MalformedField.
			if len(piece) > 0 && r.opts.tolerance == Strict {
				return nil, newErr(MalformedField, recIdx, "data field %q has a non-empty leading segment before its first subfield", e.tag)
			} else if len(piece) > 0 {
				r.opts.logger.Debug("discarding non-empty leading segment before first subfield", "record", recIdx, "tag", e.tag)
			}
			continue
		}
		if len(piece) < 1 {
			continue
		}
		code := piece[0]
		data, err := charset.Decode(piece[1:], scheme)
		if err != nil {
			return nil, wrapErr(decodeErrKind(err), recIdx, err, "decoding subfield %q of field %q", string(code), e.tag)
		}
		df.AddSubfield(&Subfield{code: code, data: data})
	}

	return df, nil
}

// splitSubfields splits body at every subfield delimiter (0x1f),
// returning len(result) == count(delimiters)+1; result[0] is whatever
// preceded the first delimiter (normally empty).
func splitSubfields(body []byte) [][]byte {
	var out [][]byte
	start := 0
	for i := 0; i < len(body); i++ {
		if body[i] == delimiter {
			out = append(out, body[start:i])
			start = i + 1
		}
	}
	out = append(out, body[start:])
	return out
}
