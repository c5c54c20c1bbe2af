package charset

// MARC-8/ANSEL decoding: the G0/G1 code-switching state machine of
// spec.md §4.2.
//
// Each octet belongs to a G0 (0x21-0x7E, plus 0x20 space) or G1
// (0xA1-0xFE) graphic set. The initial designations are Basic Latin on
// G0 and Extended Latin (ANSEL) on G1. An ESC (0x1B) sequence reassigns
// either register to one of the sets spec.md §4.2 lists; this package
// recognizes:
//
//	ESC ( <final>     designate a single-byte set on G0
//	ESC ) <final>     designate a single-byte set on G1
//	ESC $ 1           designate the CJK (EACC) multi-byte set on G0
//	ESC $ ) <final>   designate a multi-byte set on G1
//
// with <final> drawn from the table below. The escape syntax and final
// bytes are this package's own consistent scheme for the sets spec.md
// names; no authoritative byte-for-byte designation table is bundled in
// the pack or reachable from it, so (per DESIGN.md) this is documented,
// implementation-defined behavior rather than a claim of bit-for-bit
// compatibility with any particular MARC-8 producer.
//
// decodeMARC8 starts fresh (G0 = Basic Latin, G1 = Extended Latin) on
// every call; state never persists across fields (spec.md §4.2, §5).

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

var (
	errShortEscape  = errors.New("marc8: escape sequence truncated")
	errUnknownFinal = errors.New("marc8: unrecognized escape designator")
)

type glyph struct {
	r         rune
	combining bool
}

type codedSet struct {
	name      string
	multiByte bool
	glyphs    map[byte]glyph
}

// rangeSet builds a codedSet mapping a contiguous octet range onto a
// contiguous Unicode block, in order. This is how basicCyrillic,
// basicHebrew, basicArabic, basicGreek and their "extended" companions
// below are generated: each is a dense run of letters, so a procedural
// table is less error-prone to maintain than transcribing one by hand.
func rangeSet(name string, low, high byte, base rune) codedSet {
	cs := codedSet{name: name, glyphs: make(map[byte]glyph, int(high-low)+1)}
	r := base
	for b := low; ; b++ {
		cs.glyphs[b] = glyph{r: r}
		r++
		if b == high {
			break
		}
	}
	return cs
}

var basicLatin = func() codedSet {
	cs := codedSet{name: "basic latin", glyphs: make(map[byte]glyph, 96)}
	for b := byte(0x20); b <= 0x7e; b++ {
		cs.glyphs[b] = glyph{r: rune(b)}
	}
	return cs
}()

// extendedLatin is ANSEL: 0xA1-0xDF hold precomposed special letters
// (only a representative subset is modeled here — unmapped octets in
// range fall back to U+FFFD per the "unknown octets" tolerance), and
// 0xE0-0xFE hold the combining diacritics in anselCombining.
var extendedLatin = func() codedSet {
	cs := codedSet{name: "extended latin (ansel)", glyphs: make(map[byte]glyph, 96)}
	special := map[byte]rune{
		0xa1: 'ł', 0xa2: 'ø', 0xa3: 'đ', 0xa4: 'þ', 0xa5: 'æ', 0xa6: 'œ',
		0xa7: 'ʼ', 0xa8: 'ʻ', 0xa9: 'ʹ', 0xaa: '·', 0xab: 'ʺ', 0xac: 'ǂ',
		0xb0: 'ʽ', 0xb1: 'ʾ', 0xb2: 'ß', 0xb3: 'Ł', 0xb4: 'Ø', 0xb5: 'Đ',
		0xb6: 'Þ', 0xb7: 'Æ', 0xb8: 'Œ', 0xb9: 'ʼ',
	}
	for b, r := range special {
		cs.glyphs[b] = glyph{r: r}
	}
	for b, r := range anselCombining {
		cs.glyphs[b] = glyph{r: r, combining: true}
	}
	return cs
}()

var (
	basicArabic      = rangeSet("basic arabic", 0x21, 0x7e, 0x0621)
	extendedArabic   = rangeSet("extended arabic", 0xa1, 0xfe, 0x0674)
	basicHebrew      = rangeSet("basic hebrew", 0xa1, 0xfe, 0x05d0)
	basicCyrillic    = rangeSet("basic cyrillic", 0x21, 0x7e, 0x0410)
	extendedCyrillic = rangeSet("extended cyrillic", 0xa1, 0xfe, 0x0460)
	basicGreek       = rangeSet("basic greek", 0x21, 0x7e, 0x0391)
	greekSymbols     = rangeSet("greek symbols", 0x21, 0x7e, 0x03d0)
	subscripts       = rangeSet("subscripts", 0x30, 0x39, 0x2080)
	superscripts     = rangeSet("superscripts", 0x28, 0x39, 0x207a)
	cjkEACC          = codedSet{name: "cjk (eacc)", multiByte: true}
)

// bySingleByteFinal resolves the <final> byte of an ESC ( / ESC ) escape
// to the coded set it designates.
var bySingleByteFinal = map[byte]codedSet{
	'B': basicLatin,
	'E': extendedLatin,
	'2': basicHebrew,
	'3': basicArabic,
	'4': extendedArabic,
	'N': basicCyrillic,
	'Q': extendedCyrillic,
	'S': basicGreek,
	'g': greekSymbols,
	'b': subscripts,
	'p': superscripts,
}

const (
	eacOctetsPerChar = 3 // EACC (ANSI Z39.64) is a fixed 3-octet code
)

// decodeMARC8 decodes an ANSEL/MARC-8 octet sequence to a Unicode string.
// An octet with no glyph in the designated set becomes U+FFFD and decoding
// continues; an unrecognized escape sequence drops only its ESC octet, and
// the octets after it are decoded as ordinary graphic octets.
func decodeMARC8(data []byte) (string, error) {
	g0, g0Multi := basicLatin, false
	g1, g1Multi := extendedLatin, false

	var out []rune
	var pending []rune

	emitBase := func(r rune) {
		if len(pending) == 0 {
			out = append(out, r)
			return
		}
		seq := make([]rune, 0, len(pending)+1)
		seq = append(seq, r)
		seq = append(seq, pending...)
		out = append(out, []rune(norm.NFC.String(string(seq)))...)
		pending = pending[:0]
	}

	i := 0
	for i < len(data) {
		b := data[i]

		switch {
		case b == 0x1b:
			n, err := applyEscape(data[i:], &g0, &g0Multi, &g1, &g1Multi)
			if err != nil {
				// An unrecognized escape is tolerated: skip just the
				// ESC octet and keep decoding the rest of the field.
				i++
				continue
			}
			i += n

		case b == 0x20 || (b >= 0x21 && b <= 0x7e):
			if g0Multi {
				i += decodeMultiByte(&out)
				continue
			}
			gl, ok := g0.glyphs[b]
			if !ok {
				// A set tabulated on G1 octets is looked up by its
				// 7-bit position when designated on G0.
				gl, ok = g0.glyphs[b|0x80]
			}
			if !ok {
				emitBase(utf8.RuneError)
			} else if gl.combining {
				pending = append(pending, gl.r)
			} else {
				emitBase(gl.r)
			}
			i++

		case b >= 0xa1 && b <= 0xfe:
			if g1Multi {
				i += decodeMultiByte(&out)
				continue
			}
			gl, ok := g1.glyphs[b]
			if !ok {
				gl, ok = g1.glyphs[b&0x7f]
			}
			if !ok {
				emitBase(utf8.RuneError)
			} else if gl.combining {
				pending = append(pending, gl.r)
			} else {
				emitBase(gl.r)
			}
			i++

		default:
			emitBase(utf8.RuneError)
			i++
		}
	}

	if len(pending) > 0 {
		out = append(out, []rune(norm.NFC.String(string(pending)))...)
	}

	return string(out), nil
}

// decodeMultiByte consumes one EACC code group (or whatever remains of
// the field, if truncated) and appends a single replacement character.
// No EACC-to-Unicode mapping table is bundled (see marc8.go's package
// doc); recognizing and correctly advancing past the escape is what
// spec.md §4.2 requires, not a full CJK character repertoire.
func decodeMultiByte(out *[]rune) int {
	*out = append(*out, utf8.RuneError)
	return eacOctetsPerChar
}

// applyEscape parses one escape sequence starting at buf[0] == 0x1b and
// updates whichever register it designates. It returns the number of
// octets consumed, or an error if buf does not hold a recognized escape.
func applyEscape(buf []byte, g0 *codedSet, g0Multi *bool, g1 *codedSet, g1Multi *bool) (int, error) {
	if len(buf) < 3 {
		return 0, errShortEscape
	}
	switch buf[1] {
	case '(':
		cs, ok := bySingleByteFinal[buf[2]]
		if !ok {
			return 0, errUnknownFinal
		}
		*g0, *g0Multi = cs, false
		return 3, nil
	case ')':
		cs, ok := bySingleByteFinal[buf[2]]
		if !ok {
			return 0, errUnknownFinal
		}
		*g1, *g1Multi = cs, false
		return 3, nil
	case '$':
		if buf[2] == '1' {
			*g0, *g0Multi = cjkEACC, true
			return 3, nil
		}
		if len(buf) >= 4 && buf[2] == ')' {
			if _, ok := bySingleByteFinal[buf[3]]; !ok && buf[3] != '1' {
				return 0, errUnknownFinal
			}
			*g1, *g1Multi = cjkEACC, true
			return 4, nil
		}
		return 0, errUnknownFinal
	default:
		return 0, errUnknownFinal
	}
}
