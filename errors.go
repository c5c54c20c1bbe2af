// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the ways a MARC21 stream can fail to frame, per spec.md
// §7. Kind values are returned wrapped in a *MarcError, never bare.
type Kind int

const (
	// Io reports that the underlying ByteSource read failed.
	Io Kind = iota
	// TruncatedLeader reports fewer than 24 octets available at record start.
	TruncatedLeader
	// MalformedLeader reports a non-digit octet in a numeric leader position.
	MalformedLeader
	// MalformedDirectory reports a directory body whose length is not a
	// multiple of 12, or an entry with a non-digit length/offset.
	MalformedDirectory
	// TruncatedRecord reports a data area shorter than recordLength minus
	// baseAddressOfData.
	TruncatedRecord
	// MissingRecordTerminator reports a data area not ending in RT.
	MissingRecordTerminator
	// MalformedField reports a field slice missing its trailing FT, with
	// tolerance for that condition turned off.
	MalformedField
	// InvalidTag reports a tag that fails the §3 tag invariants.
	InvalidTag
	// UnknownCharset reports a named charset the platform charset registry
	// cannot resolve.
	UnknownCharset
	// DecodeError reports a charset-specific decode failure.
	DecodeError
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "io"
	case TruncatedLeader:
		return "truncated leader"
	case MalformedLeader:
		return "malformed leader"
	case MalformedDirectory:
		return "malformed directory"
	case TruncatedRecord:
		return "truncated record"
	case MissingRecordTerminator:
		return "missing record terminator"
	case MalformedField:
		return "malformed field"
	case InvalidTag:
		return "invalid tag"
	case UnknownCharset:
		return "unknown charset"
	case DecodeError:
		return "decode error"
	default:
		return "unknown"
	}
}

// MarcError is the error type returned at the Reader iterator boundary and
// at Record-model mutation sites. Record is the zero-based index of the
// record being decoded when the error occurred, or -1 when not applicable
// (e.g. InvalidTag raised from a model mutation outside any Reader).
type MarcError struct {
	Kind   Kind
	Record int
	Err    error
}

func (e *MarcError) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("marc21: record %d: %s: %v", e.Record, e.Kind, e.Err)
	}
	return fmt.Sprintf("marc21: %s: %v", e.Kind, e.Err)
}

func (e *MarcError) Unwrap() error {
	return e.Err
}

// newErr builds a *MarcError of the given kind from a formatted message,
// tagged with the given zero-based record index (-1 if not within a
// record-decode loop). wrapErr does the same around an underlying cause.
func newErr(kind Kind, record int, format string, args ...interface{}) *MarcError {
	return &MarcError{Kind: kind, Record: record, Err: errors.Errorf(format, args...)}
}

func wrapErr(kind Kind, record int, cause error, format string, args ...interface{}) *MarcError {
	return &MarcError{Kind: kind, Record: record, Err: errors.Wrapf(cause, format, args...)}
}
