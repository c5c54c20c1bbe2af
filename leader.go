// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import "github.com/pkg/errors"

// Leader is the fixed 24-octet header described in spec.md §3.
type Leader struct {
	RecordLength        int
	RecordStatus        byte
	TypeOfRecord        byte
	ImplDefined1        [2]byte
	CharCodingScheme    byte
	IndicatorCount      int
	SubfieldCodeLength  int
	BaseAddressOfData   int
	EncodingLevel       byte
	DescCatalogingForm  byte
	MultipartLevel      byte
	LengthOfFieldLen    int
	LengthOfStartingPos int
	LengthOfImplDefined int
	Undefined           int
}

// parseLeader decodes the 24-octet leader. buf must be exactly leaderSize
// long; the caller (Reader) is responsible for reading that many octets
// and failing TruncatedLeader first.
func parseLeader(buf []byte) (Leader, error) {
	var l Leader

	recLen, ok := decodeDecimal(buf[0:5])
	if !ok {
		return Leader{}, errors.New("record length (pos 0-4) is not numeric")
	}
	l.RecordLength = recLen

	l.RecordStatus = buf[5]
	l.TypeOfRecord = buf[6]
	l.ImplDefined1 = [2]byte{buf[7], buf[8]}
	l.CharCodingScheme = buf[9]

	indCount, ok := decodeDecimal(buf[10:11])
	if !ok {
		return Leader{}, errors.New("indicator count (pos 10) is not numeric")
	}
	l.IndicatorCount = indCount

	sfLen, ok := decodeDecimal(buf[11:12])
	if !ok {
		return Leader{}, errors.New("subfield code length (pos 11) is not numeric")
	}
	l.SubfieldCodeLength = sfLen

	baseAddr, ok := decodeDecimal(buf[12:17])
	if !ok {
		return Leader{}, errors.New("base address of data (pos 12-16) is not numeric")
	}
	l.BaseAddressOfData = baseAddr

	l.EncodingLevel = buf[17]
	l.DescCatalogingForm = buf[18]
	l.MultipartLevel = buf[19]

	fieldLen, ok := decodeDecimal(buf[20:21])
	if !ok {
		return Leader{}, errors.New("length of field length (pos 20) is not numeric")
	}
	l.LengthOfFieldLen = fieldLen

	startPos, ok := decodeDecimal(buf[21:22])
	if !ok {
		return Leader{}, errors.New("length of starting char pos (pos 21) is not numeric")
	}
	l.LengthOfStartingPos = startPos

	implDef, ok := decodeDecimal(buf[22:23])
	if !ok {
		return Leader{}, errors.New("length of impl defined (pos 22) is not numeric")
	}
	l.LengthOfImplDefined = implDef

	undef, ok := decodeDecimal(buf[23:24])
	if !ok {
		return Leader{}, errors.New("undefined entry-map digit (pos 23) is not numeric")
	}
	l.Undefined = undef

	if l.RecordLength < leaderSize {
		return Leader{}, errors.New("record length is less than the leader size")
	}
	if l.RecordLength > maxRecordSize {
		return Leader{}, errors.Errorf("record length %d exceeds the %d-octet MARC21 maximum", l.RecordLength, maxRecordSize)
	}
	if l.BaseAddressOfData < leaderSize {
		return Leader{}, errors.New("base address of data is less than the leader size")
	}

	return l, nil
}

// Bytes renders the leader back to its 24-octet wire form. Only the
// numeric positions reconstructed from parsing are rewritten from their
// parsed values; the single-character positions are passed through
// verbatim. This is used by tests exercising the round-trip property in
// spec.md §8 and is not part of the writer (out of scope per spec.md §1).
func (l Leader) Bytes() [leaderSize]byte {
	var buf [leaderSize]byte
	putDecimal(buf[0:5], l.RecordLength)
	buf[5] = l.RecordStatus
	buf[6] = l.TypeOfRecord
	buf[7], buf[8] = l.ImplDefined1[0], l.ImplDefined1[1]
	buf[9] = l.CharCodingScheme
	putDecimal(buf[10:11], l.IndicatorCount)
	putDecimal(buf[11:12], l.SubfieldCodeLength)
	putDecimal(buf[12:17], l.BaseAddressOfData)
	buf[17] = l.EncodingLevel
	buf[18] = l.DescCatalogingForm
	buf[19] = l.MultipartLevel
	putDecimal(buf[20:21], l.LengthOfFieldLen)
	putDecimal(buf[21:22], l.LengthOfStartingPos)
	putDecimal(buf[22:23], l.LengthOfImplDefined)
	putDecimal(buf[23:24], l.Undefined)
	return buf
}

func putDecimal(dst []byte, v int) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + v%10)
		v /= 10
	}
}
