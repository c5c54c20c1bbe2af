package charset

// Combining-diacritic support for MARC-8/ANSEL.
//
// ANSEL encodes a diacritic BEFORE the base letter it modifies, in the
// 0xE0-0xFE range of whichever register is currently designated to
// Extended Latin (ANSEL). decodeMARC8 buffers those marks as they arrive
// and, once a non-combining base glyph is seen, emits base + marks in
// Unicode order (the reverse of MARC-8's order) and runs the sequence
// through NFC so that, where a precomposed code point exists (e.g. grave
// accent + 'a' -> 'à'), that is what gets emitted. Where no precomposed
// form exists, NFC leaves the base+combining-mark sequence as is. This is
// the documented choice for the open question in spec.md §4.2/§8
// scenario 6: this package always normalizes to NFC, never emits a bare
// decomposed (NFD) sequence.
//
// The mapping below covers the ANSEL combining marks in common
// bibliographic use. Octets in 0xE0-0xFE not listed here fall back to
// U+FFFD, per spec.md §4.2's "unknown octets" tolerance.
var anselCombining = map[byte]rune{
	0xe0: '̉', // hook above
	0xe1: '̀', // grave accent
	0xe2: '́', // acute accent
	0xe3: '̂', // circumflex
	0xe4: '̃', // tilde
	0xe5: '̄', // macron
	0xe6: '̆', // breve
	0xe7: '̇', // dot above
	0xe8: '̈', // diaeresis (umlaut)
	0xe9: '̌', // caron (hacek)
	0xea: '̊', // ring above
	0xeb: '︠', // ligature, left half
	0xec: '︡', // ligature, right half
	0xed: '̕', // comma above right
	0xee: '̋', // double acute accent
	0xef: '̐', // candrabindu
	0xf0: '̧', // cedilla
	0xf1: '̨', // ogonek (right hook)
	0xf2: '̣', // dot below
	0xf3: '̤', // double dot below
	0xf4: '̭', // circumflex below
	0xf5: '̰', // tilde below
	0xf6: '̱', // macron below
	0xf7: '̮', // breve below
	0xf8: '̣', // approximated as dot below, the same mark as 0xf2
	0xf9: '̦', // comma below
	0xfa: '̜', // left half ring below
	0xfb: '̲', // underscore
	0xfc: '̳', // double underscore
	0xfe: '̸', // high comma, centered (approximated as overlay stroke)
}
