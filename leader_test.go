// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeaderBasics(t *testing.T) {
	rec := buildRecord(' ', []rawField{controlField("001", "abc123")})
	l, err := parseLeader(rec[:leaderSize])
	require.NoError(t, err)

	assert.Equal(t, len(rec), l.RecordLength)
	assert.GreaterOrEqual(t, l.BaseAddressOfData, leaderSize)
	assert.Equal(t, byte(' '), l.CharCodingScheme)
	assert.Equal(t, 2, l.IndicatorCount)
	assert.Equal(t, 2, l.SubfieldCodeLength)
}

func TestParseLeaderWhitespacePaddedDigits(t *testing.T) {
	rec := buildRecord(' ', []rawField{controlField("001", "x")})
	// Overwrite the record-length field with a space-padded value
	// equivalent to the same number (spec.md §4.1's whitespace
	// tolerance): this record is 40 octets, so "00040" -> "   40".
	buf := append([]byte{}, rec...)
	padded := []byte(fmt.Sprintf("%5d", len(rec)))
	copy(buf[0:5], padded)

	l, err := parseLeader(buf[:leaderSize])
	require.NoError(t, err)
	assert.Equal(t, len(rec), l.RecordLength)
}

func TestParseLeaderMalformed(t *testing.T) {
	rec := buildRecord(' ', []rawField{controlField("001", "x")})
	buf := append([]byte{}, rec...)
	buf[0] = 'x' // corrupt the record-length digits

	_, err := parseLeader(buf[:leaderSize])
	require.Error(t, err)
}

func TestParseLeaderTooShortBaseAddress(t *testing.T) {
	rec := buildRecord(' ', []rawField{controlField("001", "x")})
	buf := append([]byte{}, rec...)
	copy(buf[12:17], []byte("00010")) // base address < leaderSize

	_, err := parseLeader(buf[:leaderSize])
	require.Error(t, err)
}

func TestLeaderRoundTrip(t *testing.T) {
	rec := buildRecord('a', []rawField{controlField("001", "x")})
	l, err := parseLeader(rec[:leaderSize])
	require.NoError(t, err)

	b := l.Bytes()
	assert.Equal(t, rec[:leaderSize], b[:])
}
