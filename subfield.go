// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import "regexp"

// Subfield is a (code, data) pair introduced by SF (0x1f) within a
// DataField.
type Subfield struct {
	code byte
	data string
}

// NewSubfield constructs a Subfield.
func NewSubfield(code byte, data string) *Subfield {
	return &Subfield{code: code, data: data}
}

// GetCode and GetData return the subfield's code and data.
func (s *Subfield) GetCode() byte    { return s.code }
func (s *Subfield) GetData() string  { return s.data }
func (s *Subfield) SetCode(c byte)   { s.code = c }
func (s *Subfield) SetData(d string) { s.data = d }

// Find reports whether the subfield's data matches the regular
// expression expr.
func (s *Subfield) Find(expr string) (bool, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return false, err
	}
	return re.MatchString(s.data), nil
}

func (s *Subfield) String() string {
	return "$" + string(s.code) + s.data
}

// patternKind selects one of the three DataField.GetSubfields(String)
// modes from spec.md §4.3, collapsed per §9's Pattern sum type.
type patternKind int

const (
	patternAll patternKind = iota
	patternRegex
	patternCharset
)

// Pattern selects a subset of a DataField's subfields by code. It is
// built once, at the call boundary, via AllSubfields, RegexPattern, or
// CharsetPattern.
type Pattern struct {
	kind patternKind
	re   *regexp.Regexp
	set  string
}

// AllSubfields selects every subfield — the behavior of a nil or empty
// pattern string in the source API.
func AllSubfields() Pattern {
	return Pattern{kind: patternAll}
}

// RegexPattern compiles expr as a regular expression matched against
// each subfield's single-character code (as a one-character string),
// the behavior triggered by a pattern string containing '['.
func RegexPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{kind: patternRegex, re: re}, nil
}

// CharsetPattern selects subfields whose code appears in codes, the
// behavior for any pattern string without '['.
func CharsetPattern(codes string) Pattern {
	return Pattern{kind: patternCharset, set: codes}
}

// ParsePattern reproduces the source API's single dynamic-string entry
// point: empty selects all, a string containing '[' is compiled as a
// regex, anything else is a character list.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return AllSubfields(), nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '[' {
			return RegexPattern(s)
		}
	}
	return CharsetPattern(s), nil
}
