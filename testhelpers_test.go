// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import "fmt"

// rawField is one variable field's tag and body (without its trailing
// FT) used by buildRecord to assemble a wire-exact MARC21 record for
// tests, the way a canonical writer would.
type rawField struct {
	tag  string
	data []byte
}

// controlField and dataField are small convenience constructors for
// rawField.
func controlField(tag, data string) rawField {
	return rawField{tag: tag, data: []byte(data)}
}

func dataField(tag string, ind1, ind2 byte, subfields ...[2]string) rawField {
	body := []byte{ind1, ind2}
	for _, sf := range subfields {
		body = append(body, delimiter)
		body = append(body, sf[0][0])
		body = append(body, []byte(sf[1])...)
	}
	return rawField{tag: tag, data: body}
}

// buildRecord assembles a complete ISO 2709 record (leader, directory,
// data area) from fields, in the order given, the way spec.md §6
// describes the wire layout. charCoding is the leader's position-9
// value (' ' for MARC-8, 'a' for UTF-8/Unicode).
func buildRecord(charCoding byte, fields []rawField) []byte {
	return buildRecordWithOrder(charCoding, fields, nil)
}

// buildRecordWithOrder is buildRecord, but the directory entries are
// emitted in dirOrder (a permutation of indices into fields) instead of
// fields' own order, while the data area itself is still laid out in
// fields' order — this is what spec.md §8's "reshuffled directory"
// property and the unordered-directory-entries scenario need: data
// offsets and lengths stay correct, only the directory's entry order
// changes. dirOrder == nil means "same order as fields".
func buildRecordWithOrder(charCoding byte, fields []rawField, dirOrder []int) []byte {
	var dataArea []byte
	offsets := make([]int, len(fields))
	lengths := make([]int, len(fields))

	offset := 0
	for i, f := range fields {
		fb := append(append([]byte{}, f.data...), fieldTerminator)
		offsets[i] = offset
		lengths[i] = len(fb)
		dataArea = append(dataArea, fb...)
		offset += len(fb)
	}
	dataArea = append(dataArea, recordTerminator)

	order := dirOrder
	if order == nil {
		order = make([]int, len(fields))
		for i := range fields {
			order[i] = i
		}
	}

	var dirEntries []byte
	for _, i := range order {
		dirEntries = append(dirEntries, []byte(fmt.Sprintf("%s%04d%05d", fields[i].tag, lengths[i], offsets[i]))...)
	}
	dirEntries = append(dirEntries, fieldTerminator)

	baseAddr := leaderSize + len(dirEntries)
	recLen := baseAddr + len(dataArea)

	leader := fmt.Sprintf("%05dn   %c22%05d   4500", recLen, charCoding, baseAddr)
	if len(leader) != leaderSize {
		panic(fmt.Sprintf("test leader is %d octets, want %d", len(leader), leaderSize))
	}

	out := append([]byte(leader), dirEntries...)
	out = append(out, dataArea...)
	return out
}
