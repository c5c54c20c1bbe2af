// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import "github.com/pkg/errors"

// directoryEntry is one 12-octet (tag, length, offset) triple. offset is
// relative to the start of the data area (leader.BaseAddressOfData), not
// to the start of the record.
type directoryEntry struct {
	tag    string
	length int
	offset int
}

// parseDirectory splits a directory body (everything between the leader
// and, but not including, its terminating FT) into entries, in the order
// they appear. Per spec.md §4.1, entries are accepted in arbitrary order;
// callers must slice by (offset, length) per entry and never assume
// ascending offsets.
func parseDirectory(body []byte) ([]directoryEntry, error) {
	if len(body)%directoryEntrySize != 0 {
		return nil, errors.Errorf("directory body length %d is not a multiple of %d", len(body), directoryEntrySize)
	}

	n := len(body) / directoryEntrySize
	entries := make([]directoryEntry, n)
	for i := 0; i < n; i++ {
		e := body[i*directoryEntrySize : (i+1)*directoryEntrySize]

		tag := e[0:3]
		for _, b := range tag {
			if b < '0' || b > '9' {
				return nil, errors.Errorf("directory entry %d has a non-digit tag %q", i, tag)
			}
		}

		length, ok := decodeDecimal(e[3:7])
		if !ok {
			return nil, errors.Errorf("directory entry %d has a non-digit length", i)
		}
		offset, ok := decodeDecimal(e[7:12])
		if !ok {
			return nil, errors.Errorf("directory entry %d has a non-digit starting offset", i)
		}

		entries[i] = directoryEntry{tag: string(tag), length: length, offset: offset}
	}
	return entries, nil
}
