// Package charset implements the Charset Decoder of spec.md §4.2: decoding
// a byte slice, in a declared or auto-detected encoding, into a Unicode
// string. UTF-8, ISO-8859-1, and arbitrary named encodings are delegated
// to golang.org/x/text, the way cacack-gedcom-go and
// lehigh-university-libraries-cataloger pull in golang.org/x/text for the
// charset layer of their own record formats. MARC-8/ANSEL has no library
// in the pack or the wider ecosystem and is implemented directly in
// marc8.go.
package charset

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

type schemeKind int

const (
	schemeUTF8 schemeKind = iota
	schemeMARC8
	schemeISO88591
	schemeNamed
)

// Scheme selects a decoding scheme for Decode: UTF8, MARC8 (ANSEL),
// ISO88591, or a Named charset resolved through the platform charset
// registry.
type Scheme struct {
	kind schemeKind
	name string
}

// UTF8 decodes strict UTF-8, failing DecodeError on invalid sequences.
func UTF8() Scheme { return Scheme{kind: schemeUTF8} }

// MARC8 decodes MARC-8/ANSEL, the legacy code-switching encoding with
// combining diacritics described in spec.md §4.2.
func MARC8() Scheme { return Scheme{kind: schemeMARC8} }

// ISO88591 decodes Latin-1.
func ISO88591() Scheme { return Scheme{kind: schemeISO88591} }

// Named resolves name (an IANA or common charset alias, e.g.
// "iso-8859-5") through the platform charset registry.
func Named(name string) Scheme { return Scheme{kind: schemeNamed, name: name} }

// IsUTF8 and IsMARC8 let a caller compare a Scheme against the leader's
// own charCodingScheme inference without reaching into this package's
// unexported fields.
func (s Scheme) IsUTF8() bool  { return s.kind == schemeUTF8 }
func (s Scheme) IsMARC8() bool { return s.kind == schemeMARC8 }

// FromName maps a charset name to a Scheme: the handful of names this
// package special-cases map to UTF8/MARC8/ISO88591; anything else
// resolves through the platform registry via Named.
func FromName(name string) Scheme {
	switch normalizeName(name) {
	case "utf8":
		return UTF8()
	case "marc8", "ansel", "marc-8":
		return MARC8()
	case "iso88591", "latin1":
		return ISO88591()
	default:
		return Named(name)
	}
}

func normalizeName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' || c == '_' || c == ' ' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// ErrorKind classifies a charset-layer failure, mirroring the Kind values
// a caller (the Reader) maps these onto at the record-framing boundary.
type ErrorKind int

const (
	// ErrDecode reports a charset-specific decode failure (spec.md's
	// DecodeError, wrapped by the Reader into MalformedField for
	// field-body failures).
	ErrDecode ErrorKind = iota
	// ErrUnknownCharset reports a named charset the registry could not
	// resolve (spec.md's UnknownCharset).
	ErrUnknownCharset
)

// Error is returned by Decode.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Decode converts data from scheme's encoding into a Unicode string.
func Decode(data []byte, scheme Scheme) (string, error) {
	switch scheme.kind {
	case schemeUTF8:
		// unicode.UTF8's decoder replaces ill-formed input with U+FFFD
		// instead of failing, so validity is checked first.
		if !utf8.Valid(data) {
			return "", &Error{Kind: ErrDecode, Err: errors.New("invalid UTF-8 sequence")}
		}
		dec := unicode.UTF8.NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", &Error{Kind: ErrDecode, Err: errors.Wrap(err, "invalid UTF-8 sequence")}
		}
		return string(out), nil
	case schemeISO88591:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", &Error{Kind: ErrDecode, Err: errors.Wrap(err, "invalid ISO-8859-1 sequence")}
		}
		return string(out), nil
	case schemeNamed:
		enc, err := ianaindex.IANA.Encoding(scheme.name)
		if err != nil || enc == nil {
			return "", &Error{Kind: ErrUnknownCharset, Err: errors.Errorf("unknown charset %q", scheme.name)}
		}
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", &Error{Kind: ErrDecode, Err: errors.Wrapf(err, "invalid %s sequence", scheme.name)}
		}
		return string(out), nil
	case schemeMARC8:
		return decodeMARC8(data)
	default:
		return "", &Error{Kind: ErrDecode, Err: errors.New("unrecognized scheme")}
	}
}
