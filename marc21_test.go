// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"testing"
)

const (
	// this record extracted from the Harvard Library Open Metadata
	// http://openmetadata.lib.harvard.edu/bibdata
	fullRecord    = "00458nam a22001577u 4500001001200000005001700012008004100029035001600070245005400086260004100140300003500181650003100216710003300247988001300280906000700293\x1e000000002-7\x1e20120831093346.0\x1e821202|1937    |||||||  |||| |0||||eng|d\x1e0 \x1faocm83544809\x1e00\x1faGarden exhibition /\x1fcSan Francisco Museum of Art.\x1e0 \x1faSan Francisco :\x1fbThe Museum,\x1fc[1937]\x1e  \x1fa1 folded sheet (4p.) ;\x1fc14 cm.\x1e 0\x1faHorticultural exhibitions.\x1e2 \x1faSan Francisco Museum of Art.\x1e  \x1fa20020608\x1e  \x1f0MH\x1e\x1d"
	fullRecordLen = len(fullRecord)
)

func TestDecodeDecimal(t *testing.T) {
	if v, ok := decodeDecimal([]byte("03245")); !ok || v != 3245 {
		t.Errorf("Conversion of \"03245\" did not equal 3245, rather %v (%v)", v, ok)
	}

	if v, ok := decodeDecimal([]byte("0")); !ok || v != 0 {
		t.Errorf("Conversion of \"0\" did not equal 0, rather %v (%v)", v, ok)
	}

	if v, ok := decodeDecimal([]byte("  3")); !ok || v != 3 {
		t.Errorf("Conversion of \"  3\" did not equal 3, rather %v (%v)", v, ok)
	}

	if _, ok := decodeDecimal([]byte("3a")); ok {
		t.Errorf("Conversion of \"3a\" should have failed")
	}
}

func TestReadRecord(t *testing.T) {
	r := NewReader(NewBytesSource([]byte(fullRecord)))

	if !r.HasNext() {
		t.Fatalf("HasNext should report a record available")
	}

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Unable to read record: %v", err)
	}

	if rec.GetLeader().RecordLength != fullRecordLen {
		t.Errorf("Leader record length should be %d, got %d", fullRecordLen, rec.GetLeader().RecordLength)
	}

	if r.HasNext() {
		t.Errorf("Single-record input should not report a further record")
	}
}

func TestFieldExtraction(t *testing.T) {
	r := NewReader(NewBytesSource([]byte(fullRecord)))
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Unable to read record: %v", err)
	}

	fields := rec.GetFieldsByTag("245")
	if len(fields) != 1 {
		t.Fatalf("Expected exactly one 245 field, got %d", len(fields))
	}
	df, ok := fields[0].(*DataField)
	if !ok {
		t.Fatalf("Field 245 should be a DataField")
	}

	sf := df.GetSubfield('a')
	if sf == nil || sf.GetData() != "Garden exhibition /" {
		t.Errorf("Value for 245$a is wrong: %+v", sf)
	}

	sf = df.GetSubfield('c')
	if sf == nil || sf.GetData() != "San Francisco Museum of Art." {
		t.Errorf("Value for 245$c is wrong: %+v", sf)
	}

	if df.GetSubfield('z') != nil {
		t.Errorf("Got a value for 245$z, which doesn't exist")
	}

	// A non-existent field returns an empty slice, not an error.
	if len(rec.GetFieldsByTag("666")) != 0 {
		t.Errorf("Non-existent field should return no fields")
	}

	cf := rec.GetControlNumberField()
	if cf == nil || cf.GetData() != "000000002-7" {
		t.Errorf("Control number field (001) is wrong: %+v", cf)
	}
}

func TestRecordsIterator(t *testing.T) {
	r := NewReader(NewBytesSource([]byte(fullRecord)))

	count := 0
	for rec := range r.Records() {
		count++
		if rec.GetControlNumberField() == nil {
			t.Errorf("record %d missing a 001 field", count)
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one record, got %d", count)
	}
}
