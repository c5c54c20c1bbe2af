// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import "strconv"

// Field is the shared behavior of ControlField and DataField: the tagged
// variant spec.md §9 recommends in place of a VariableField/ControlField/
// DataField inheritance hierarchy. A Field is always one of the two
// concrete variants below; isField is unexported so no other package can
// add a third.
type Field interface {
	Tag() string
	isField()
}

func isControlTag(tag string) bool {
	if len(tag) != 3 {
		return false
	}
	for _, c := range tag {
		if c < '0' || c > '9' {
			return false
		}
	}
	n, _ := strconv.Atoi(tag)
	return n < 10
}

func validTag(tag string) bool {
	if len(tag) != 3 {
		return false
	}
	for _, c := range tag {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ControlField is a variable field whose tag is numerically less than
// 010: it carries raw data and has neither indicators nor subfields.
type ControlField struct {
	tag  string
	data string
}

// NewControlField constructs a ControlField, enforcing the tag invariant
// (3 ASCII digits, numeric value < 10).
func NewControlField(tag, data string) (*ControlField, error) {
	if !isControlTag(tag) {
		return nil, &MarcError{Kind: InvalidTag, Record: -1, Err: errInvalidTag(tag, "control")}
	}
	return &ControlField{tag: tag, data: data}, nil
}

func (f *ControlField) isField() {}

// Tag returns the field's 3-digit tag.
func (f *ControlField) Tag() string { return f.tag }

// SetTag enforces the same invariant as NewControlField.
func (f *ControlField) SetTag(tag string) error {
	if !isControlTag(tag) {
		return &MarcError{Kind: InvalidTag, Record: -1, Err: errInvalidTag(tag, "control")}
	}
	f.tag = tag
	return nil
}

// GetData returns the field's decoded data.
func (f *ControlField) GetData() string { return f.data }

// SetData replaces the field's data.
func (f *ControlField) SetData(data string) { f.data = data }

func (f *ControlField) String() string {
	return f.tag + " " + f.data
}

// DataField is a variable field whose tag is numerically >= 010: it
// carries two single-character indicators and an ordered sequence of
// subfields.
type DataField struct {
	tag        string
	indicator1 byte
	indicator2 byte
	subfields  []*Subfield
}

// NewDataField constructs a DataField, enforcing the §3 tag invariant
// (3 ASCII digits, numeric value >= 10).
func NewDataField(tag string, ind1, ind2 byte) (*DataField, error) {
	if !validTag(tag) || isControlTag(tag) {
		return nil, &MarcError{Kind: InvalidTag, Record: -1, Err: errInvalidTag(tag, "data")}
	}
	return &DataField{tag: tag, indicator1: ind1, indicator2: ind2}, nil
}

func (f *DataField) isField() {}

// Tag returns the field's 3-digit tag.
func (f *DataField) Tag() string { return f.tag }

// SetTag enforces the same invariant as NewDataField.
func (f *DataField) SetTag(tag string) error {
	if !validTag(tag) || isControlTag(tag) {
		return &MarcError{Kind: InvalidTag, Record: -1, Err: errInvalidTag(tag, "data")}
	}
	f.tag = tag
	return nil
}

// Indicator1 and Indicator2 return the field's two indicator characters.
func (f *DataField) Indicator1() byte { return f.indicator1 }
func (f *DataField) Indicator2() byte { return f.indicator2 }

func (f *DataField) SetIndicator1(v byte) { f.indicator1 = v }
func (f *DataField) SetIndicator2(v byte) { f.indicator2 = v }

// AddSubfield appends sf to the field's subfield list.
func (f *DataField) AddSubfield(sf *Subfield) {
	f.subfields = append(f.subfields, sf)
}

// InsertSubfield inserts sf at index, shifting later subfields right.
func (f *DataField) InsertSubfield(index int, sf *Subfield) {
	f.subfields = append(f.subfields, nil)
	copy(f.subfields[index+1:], f.subfields[index:])
	f.subfields[index] = sf
}

// RemoveSubfield deletes sf by identity (pointer equality), a no-op if sf
// is not present.
func (f *DataField) RemoveSubfield(sf *Subfield) {
	for i, s := range f.subfields {
		if s == sf {
			f.subfields = append(f.subfields[:i], f.subfields[i+1:]...)
			return
		}
	}
}

// GetSubfields returns the field's subfields in source order.
func (f *DataField) GetSubfields() []*Subfield {
	return f.subfields
}

// GetSubfieldsByCode returns the subfields whose code equals code, in
// source order.
func (f *DataField) GetSubfieldsByCode(code byte) []*Subfield {
	var out []*Subfield
	for _, s := range f.subfields {
		if s.code == code {
			out = append(out, s)
		}
	}
	return out
}

// GetSubfieldsByPattern implements the three-mode dynamic selection from
// spec.md §4.3 / §9's Pattern sum type.
func (f *DataField) GetSubfieldsByPattern(p Pattern) ([]*Subfield, error) {
	switch p.kind {
	case patternAll:
		return f.subfields, nil
	case patternCharset:
		var out []*Subfield
		for _, s := range f.subfields {
			if containsByte(p.set, s.code) {
				out = append(out, s)
			}
		}
		return out, nil
	case patternRegex:
		var out []*Subfield
		for _, s := range f.subfields {
			if p.re.MatchString(string(s.code)) {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return f.subfields, nil
	}
}

// GetSubfield returns the first subfield with the given code, or nil.
func (f *DataField) GetSubfield(code byte) *Subfield {
	for _, s := range f.subfields {
		if s.code == code {
			return s
		}
	}
	return nil
}

// Find reports whether any subfield's data matches the regular
// expression expr.
func (f *DataField) Find(expr string) (bool, error) {
	p, err := RegexPattern(expr)
	if err != nil {
		return false, err
	}
	for _, s := range f.subfields {
		if p.re.MatchString(s.data) {
			return true, nil
		}
	}
	return false, nil
}

// GetSubfieldsAsString concatenates the data of every subfield whose code
// appears in codes, in source order. When pad is non-nil it is meant to
// separate successive pieces; this reproduces the upstream MARC4J
// behavior verbatim, including its documented bug (spec.md §9): instead
// of appending the pad character between pieces, each piece after the
// first is appended twice.
func (f *DataField) GetSubfieldsAsString(codes string, pad *byte) string {
	var out []byte
	first := true
	for _, s := range f.subfields {
		if !containsByte(codes, s.code) {
			continue
		}
		if !first && pad != nil {
			out = append(out, s.data...)
		}
		out = append(out, s.data...)
		first = false
	}
	return string(out)
}

func (f *DataField) String() string {
	s := f.tag + " " + string(f.indicator1) + string(f.indicator2)
	for _, sf := range f.subfields {
		s += "$" + string(sf.code) + sf.data
	}
	return s
}

func containsByte(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

func errInvalidTag(tag, kind string) error {
	return &tagError{tag: tag, kind: kind}
}

type tagError struct {
	tag  string
	kind string
}

func (e *tagError) Error() string {
	return "\"" + e.tag + "\" is not a valid " + e.kind + " field tag"
}
