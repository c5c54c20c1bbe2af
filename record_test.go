// Copyright 2013 Thomas Emerson. All rights reserved.

package marc21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAddRemoveField(t *testing.T) {
	rec := NewRecord(Leader{})
	cf, err := NewControlField("001", "abc")
	require.NoError(t, err)
	rec.AddField(cf)

	df, err := NewDataField("245", '0', '0')
	require.NoError(t, err)
	rec.AddField(df)

	assert.Len(t, rec.GetFields(), 2)
	assert.Same(t, cf, rec.GetControlNumberField())

	rec.RemoveField(cf)
	assert.Len(t, rec.GetFields(), 1)
	assert.Nil(t, rec.GetControlNumberField())
}

func TestControlFieldTagInvariant(t *testing.T) {
	_, err := NewControlField("245", "x")
	require.Error(t, err)
	var merr *MarcError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, InvalidTag, merr.Kind)
}

func TestDataFieldTagInvariant(t *testing.T) {
	_, err := NewDataField("001", '0', '0')
	require.Error(t, err)

	_, err = NewDataField("24", '0', '0')
	require.Error(t, err)

	_, err = NewDataField("24a", '0', '0')
	require.Error(t, err)
}

func TestDataFieldSubfieldOrder(t *testing.T) {
	df, err := NewDataField("245", '0', '0')
	require.NoError(t, err)

	a := NewSubfield('a', "Garden exhibition /")
	c := NewSubfield('c', "San Francisco Museum of Art.")
	df.AddSubfield(a)
	df.AddSubfield(c)

	subs := df.GetSubfields()
	require.Len(t, subs, 2)
	assert.Same(t, a, subs[0])
	assert.Same(t, c, subs[1])

	assert.Same(t, a, df.GetSubfield('a'))
	assert.Nil(t, df.GetSubfield('z'))

	b := NewSubfield('b', "middle")
	df.InsertSubfield(1, b)
	subs = df.GetSubfields()
	require.Len(t, subs, 3)
	assert.Same(t, b, subs[1])

	df.RemoveSubfield(b)
	assert.Len(t, df.GetSubfields(), 2)
}

func TestGetSubfieldsByPattern(t *testing.T) {
	df, err := NewDataField("650", ' ', '0')
	require.NoError(t, err)
	df.AddSubfield(NewSubfield('a', "Horticultural exhibitions"))
	df.AddSubfield(NewSubfield('x', "History"))
	df.AddSubfield(NewSubfield('z', "California"))

	all, err := df.GetSubfieldsByPattern(AllSubfields())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	az, err := df.GetSubfieldsByPattern(CharsetPattern("az"))
	require.NoError(t, err)
	assert.Len(t, az, 2)

	p, err := RegexPattern("[xz]")
	require.NoError(t, err)
	matched, err := df.GetSubfieldsByPattern(p)
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	parsed, err := ParsePattern("[xz]")
	require.NoError(t, err)
	matched2, err := df.GetSubfieldsByPattern(parsed)
	require.NoError(t, err)
	assert.Equal(t, matched, matched2)

	parsedAll, err := ParsePattern("")
	require.NoError(t, err)
	allAgain, err := df.GetSubfieldsByPattern(parsedAll)
	require.NoError(t, err)
	assert.Equal(t, all, allAgain)
}

func TestFind(t *testing.T) {
	df, err := NewDataField("245", '0', '0')
	require.NoError(t, err)
	df.AddSubfield(NewSubfield('a', "Garden exhibition /"))

	found, err := df.Find("exhibition")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = df.Find("^nomatch$")
	require.NoError(t, err)
	assert.False(t, found)
}

// TestGetSubfieldsAsStringPaddingDeviation pins down the documented
// deviation from spec.md §9: when a non-nil pad byte is supplied, the
// data of each subfield after the first is appended twice instead of
// inserting the pad character between pieces.
func TestGetSubfieldsAsStringPaddingDeviation(t *testing.T) {
	df, err := NewDataField("650", ' ', '0')
	require.NoError(t, err)
	df.AddSubfield(NewSubfield('a', "Horticultural exhibitions"))
	df.AddSubfield(NewSubfield('x', "History"))

	noPad := df.GetSubfieldsAsString("ax", nil)
	assert.Equal(t, "Horticultural exhibitionsHistory", noPad)

	pad := byte('-')
	withPad := df.GetSubfieldsAsString("ax", &pad)
	assert.Equal(t, "Horticultural exhibitionsHistoryHistory", withPad)
}

func TestDataFieldString(t *testing.T) {
	df, err := NewDataField("245", '0', '0')
	require.NoError(t, err)
	df.AddSubfield(NewSubfield('a', "Garden exhibition /"))
	assert.Equal(t, "245 00$aGarden exhibition /", df.String())
}
