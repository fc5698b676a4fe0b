package segment

import (
	"fmt"

	"github.com/sidneycadot/qrcode-go/qrerr"
)

// Writer is the scoped builder for a QR data bitstream: it owns a growing
// bit buffer sized for one particular Variant, and is consumed into a
// codeword vector by ToCodewords. This mirrors a plain bit-buffer builder,
// generalized to every segment kind.
type Writer struct {
	variant Variant
	bits    bitBuffer
}

// NewWriter creates a Writer for the given QR version (which fixes the
// count-bit widths used for every segment appended afterward).
func NewWriter(version int) *Writer {
	return &Writer{variant: VariantForVersion(version)}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.bits.len()
}

// AppendInteger pushes an MSB-first unsigned value of the given bit width.
// value must be strictly less than 2^nbits.
func (w *Writer) AppendInteger(value uint32, nbits int) error {
	if nbits < 0 || nbits > 31 {
		return qrerr.New(qrerr.Precondition, fmt.Sprintf("bit width %d out of range", nbits))
	}
	if value>>uint(nbits) != 0 {
		return qrerr.New(qrerr.Precondition, fmt.Sprintf("value %d does not fit in %d bits", value, nbits))
	}
	w.bits.appendBits(value, nbits)
	return nil
}

func countBitsForVariant(kind Kind, v Variant) int {
	return countBitsTable[v][kind]
}

// AppendNumeric appends a numeric-mode segment: indicator, count, then
// digits grouped in 3s (or 2 or 1 at the tail) as 10/7/4-bit values.
func (w *Writer) AppendNumeric(text string) error {
	for i := 0; i < len(text); i++ {
		if !IsNumeric(text[i]) {
			return qrerr.New(qrerr.Precondition, fmt.Sprintf("character %q is not numeric", text[i]))
		}
	}
	countBits := countBitsForVariant(Numeric, w.variant)
	if len(text) >= 1<<uint(countBits) {
		return qrerr.New(qrerr.Precondition, "numeric segment too long for this version")
	}
	w.bits.appendBits(uint32(IndicatorNumeric), 4)
	w.bits.appendBits(uint32(len(text)), countBits)
	for i := 0; i < len(text); {
		n := len(text) - i
		if n > 3 {
			n = 3
		}
		value := uint32(0)
		for j := 0; j < n; j++ {
			value = value*10 + uint32(text[i+j]-'0')
		}
		nbits := map[int]int{1: 4, 2: 7, 3: 10}[n]
		w.bits.appendBits(value, nbits)
		i += n
	}
	return nil
}

// AppendAlphanumeric appends an alphanumeric-mode segment: indicator, count,
// then pairs packed as a*45+b in 11 bits (6 bits for a trailing odd
// character).
func (w *Writer) AppendAlphanumeric(text string) error {
	values := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		v, ok := alphanumericValue(text[i])
		if !ok {
			return qrerr.New(qrerr.Precondition, fmt.Sprintf("character %q is not alphanumeric", text[i]))
		}
		values[i] = v
	}
	countBits := countBitsForVariant(Alphanumeric, w.variant)
	if len(text) >= 1<<uint(countBits) {
		return qrerr.New(qrerr.Precondition, "alphanumeric segment too long for this version")
	}
	w.bits.appendBits(uint32(IndicatorAlphanumeric), 4)
	w.bits.appendBits(uint32(len(text)), countBits)
	i := 0
	for ; i+1 < len(values); i += 2 {
		w.bits.appendBits(uint32(values[i]*45+values[i+1]), 11)
	}
	if i < len(values) {
		w.bits.appendBits(uint32(values[i]), 6)
	}
	return nil
}

// AppendBytes appends a byte-mode segment: indicator, count (in octets),
// then each octet as 8 bits.
func (w *Writer) AppendBytes(octets []byte) error {
	countBits := countBitsForVariant(Bytes, w.variant)
	if len(octets) >= 1<<uint(countBits) {
		return qrerr.New(qrerr.Precondition, "byte segment too long for this version")
	}
	w.bits.appendBits(uint32(IndicatorByte), 4)
	w.bits.appendBits(uint32(len(octets)), countBits)
	for _, b := range octets {
		w.bits.appendBits(uint32(b), 8)
	}
	return nil
}

// AppendKanji appends a kanji-mode segment: indicator, count, then each
// character as a 13-bit Shift-JIS-derived code.
func (w *Writer) AppendKanji(text string) error {
	runes := []rune(text)
	values := make([]uint32, len(runes))
	for i, r := range runes {
		v, ok := kanjiValue(r)
		if !ok {
			return qrerr.Wrap(qrerr.ShiftJISUnsupported, fmt.Sprintf("character %q has no Shift-JIS kanji encoding", r), nil)
		}
		values[i] = v
	}
	countBits := countBitsForVariant(Kanji, w.variant)
	if len(runes) >= 1<<uint(countBits) {
		return qrerr.New(qrerr.Precondition, "kanji segment too long for this version")
	}
	w.bits.appendBits(uint32(IndicatorKanji), 4)
	w.bits.appendBits(uint32(len(runes)), countBits)
	for _, v := range values {
		w.bits.appendBits(v, 13)
	}
	return nil
}

// AppendECIDesignator appends an ECI mode indicator and value, packed as 8,
// 16, or 24 bits depending on magnitude.
func (w *Writer) AppendECIDesignator(value uint32) error {
	w.bits.appendBits(uint32(IndicatorECI), 4)
	switch {
	case value <= 127:
		w.bits.appendBits(value, 8)
	case value <= 16383:
		w.bits.appendBits(0x8000|value, 16)
	case value <= 999999:
		w.bits.appendBits(0xC00000|value, 24)
	default:
		return qrerr.New(qrerr.Precondition, "ECI designator value out of range")
	}
	return nil
}

// AppendStructuredAppendMarker appends a structured-append header: indicator,
// 4-bit index, 4-bit count-1, 8-bit parity.
func (w *Writer) AppendStructuredAppendMarker(index, count int, parity byte) error {
	if index < 0 || index > 15 {
		return qrerr.New(qrerr.Precondition, "structured append index out of range")
	}
	if count < 1 || count > 16 {
		return qrerr.New(qrerr.Precondition, "structured append count out of range")
	}
	w.bits.appendBits(uint32(IndicatorStructuredAppend), 4)
	w.bits.appendBits(uint32(index), 4)
	w.bits.appendBits(uint32(count-1), 4)
	w.bits.appendBits(uint32(parity), 8)
	return nil
}

// AppendSegment dispatches to the matching Append* method for seg.Kind.
func (w *Writer) AppendSegment(seg Segment) error {
	switch seg.Kind {
	case Numeric:
		return w.AppendNumeric(seg.Text)
	case Alphanumeric:
		return w.AppendAlphanumeric(seg.Text)
	case Bytes:
		return w.AppendBytes(seg.Octets)
	case Kanji:
		return w.AppendKanji(seg.Text)
	default:
		return qrerr.New(qrerr.Precondition, "unknown segment kind")
	}
}

// ToCodewords finalizes the bitstream into a codeword vector sized exactly
// dataCodewordCapacity bytes: appends up to a 4-bit terminator (fewer if
// space is short), zero-pads to a byte boundary, then alternates 0xEC/0x11
// pad codewords until full. ok is false if the written bits don't fit even
// before padding, in which case the caller must pick a larger symbol.
func (w *Writer) ToCodewords(dataCodewordCapacity int) (codewords []byte, ok bool) {
	capacityBits := dataCodewordCapacity * 8
	if w.bits.len() > capacityBits {
		return nil, false
	}

	bits := append(bitBuffer(nil), w.bits...)
	term := 4
	if capacityBits-bits.len() < term {
		term = capacityBits - bits.len()
	}
	bits.appendBits(0, term)

	if pad := (8 - bits.len()%8) % 8; pad > 0 {
		bits.appendBits(0, pad)
	}

	padBytes := [2]uint32{0xEC, 0x11}
	for i := 0; bits.len() < capacityBits; i++ {
		bits.appendBits(padBytes[i%2], 8)
	}

	return bits.toBytes(), true
}
