// Copyright 2013 Thomas Emerson. All rights reserved.

// Package marc21 implements a streaming reader for MARC21 (ISO 2709)
// bibliographic records: the leader/directory/data-area framing, the
// in-memory record model, and the MARC-8 character-set transcoding that
// feeds it.
//
// The MARC-XML reader, the JSON surface, the writer, and CLI entry points
// are external to this package.
package marc21

const (
	delimiter        = 0x1f // SF, subfield delimiter
	fieldTerminator  = 0x1e // FT
	recordTerminator = 0x1d // RT
)

const (
	leaderSize    = 24
	maxRecordSize = 99999

	// directoryEntrySize is the width in octets of a single (tag, length,
	// offset) directory entry: 3 + 4 + 5.
	directoryEntrySize = 12
)

// decodeDecimal parses a run of ASCII digits as an unsigned decimal
// integer, treating leading spaces as zero (spec.md §4.1's
// whitespace-padded-digit tolerance).
func decodeDecimal(n []byte) (int, bool) {
	result := 0
	for _, b := range n {
		switch {
		case b == ' ':
			if result != 0 {
				return 0, false
			}
		case b >= '0' && b <= '9':
			result = (10 * result) + int(b-'0')
		default:
			return 0, false
		}
	}
	return result, true
}
