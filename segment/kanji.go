package segment

import (
	"golang.org/x/text/encoding/japanese"
)

// kanjiValue computes the 13-bit QR kanji code for a single rune, per
// ISO/IEC 18004 §7.4.6: encode the character as Shift-JIS, subtract the
// range base, then fold the two resulting bytes into 13 bits as
// msb*0xC0 + lsb. ok is false if the rune has no 2-byte Shift-JIS encoding in
// the ranges the standard allows.
func kanjiValue(r rune) (value uint32, ok bool) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String(string(r))
	if err != nil || len(encoded) != 2 {
		return 0, false
	}
	v := uint32(encoded[0])<<8 | uint32(encoded[1])
	switch {
	case v >= 0x8140 && v <= 0x9FFC:
		v -= 0x8140
	case v >= 0xE040 && v <= 0xEBBF:
		v -= 0xC140
	default:
		return 0, false
	}
	msb, lsb := v>>8, v&0xFF
	return msb*0xC0 + lsb, true
}

// kanjiRune recovers the rune for a 13-bit QR kanji code, inverting
// kanjiValue. Both Shift-JIS bands the standard allows produce disjoint
// ranges of the intermediate delta value, so trying the low band first and
// falling back to the high band is unambiguous; the final Shift-JIS decode
// (and the requirement that re-encoding the decoded rune reproduces the same
// 13-bit code) rejects anything that isn't a real round trip.
func kanjiRune(value uint32) (r rune, ok bool) {
	if value > 0x1FFF {
		return 0, false
	}
	msb, lsb := value/0xC0, value%0xC0
	v := msb<<8 | lsb

	tryBase := func(base uint32) (rune, bool) {
		sjis := v + base
		if sjis > 0xFFFF {
			return 0, false
		}
		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes([]byte{byte(sjis >> 8), byte(sjis)})
		runes := []rune(string(decoded))
		if err != nil || len(runes) != 1 {
			return 0, false
		}
		if got, ok := kanjiValue(runes[0]); !ok || got != value {
			return 0, false
		}
		return runes[0], true
	}

	if rr, ok := tryBase(0x8140); ok {
		return rr, true
	}
	if rr, ok := tryBase(0xC140); ok {
		return rr, true
	}
	return 0, false
}
