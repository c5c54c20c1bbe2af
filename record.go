// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

// Record is one Leader plus an ordered list of variable fields (control
// and data, in directory order as read). Fields and subfields are owned
// by their containing Record; nothing is shared across records.
type Record struct {
	leader Leader
	fields []Field
}

// NewRecord constructs an empty Record with the given leader.
func NewRecord(leader Leader) *Record {
	return &Record{leader: leader}
}

// GetLeader returns the record's leader.
func (r *Record) GetLeader() Leader { return r.leader }

// SetLeader replaces the record's leader.
func (r *Record) SetLeader(l Leader) { r.leader = l }

// AddField appends field to the record, preserving the order fields were
// added in.
func (r *Record) AddField(field Field) {
	r.fields = append(r.fields, field)
}

// RemoveField deletes field by identity, a no-op if field is not present.
func (r *Record) RemoveField(field Field) {
	for i, f := range r.fields {
		if f == field {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return
		}
	}
}

// GetFields returns every field in the record, in directory order.
func (r *Record) GetFields() []Field {
	return r.fields
}

// GetFieldsByTag returns every field whose tag equals tag, in directory
// order.
func (r *Record) GetFieldsByTag(tag string) []Field {
	var out []Field
	for _, f := range r.fields {
		if f.Tag() == tag {
			out = append(out, f)
		}
	}
	return out
}

// GetControlNumberField returns the first ControlField with tag "001",
// or nil if none is present.
func (r *Record) GetControlNumberField() *ControlField {
	for _, f := range r.fields {
		if cf, ok := f.(*ControlField); ok && cf.tag == "001" {
			return cf
		}
	}
	return nil
}
