package segment

import (
	"fmt"
	"strings"

	"github.com/sidneycadot/qrcode-go/qrerr"
)

// StructuredAppendInfo is the decoded structured-append header: surfaced as
// metadata, not used for cross-symbol reassembly.
type StructuredAppendInfo struct {
	Index  int
	Count  int
	Parity byte
}

// Result is everything Parse recovers from a bitstream.
type Result struct {
	Text             string
	ECI              []uint32 // ECI designator values encountered, in order.
	StructuredAppend *StructuredAppendInfo
	FNC1AppIndicator *byte
}

// Parse reads the segment directives out of codewords,
// reconstructing the original payload text. Byte-mode segments are decoded
// using the ByteEncoding currently selected by the most recent ECI
// designator (defaultByteEnc if none has been seen).
func Parse(codewords []byte, version int, defaultByteEnc ByteEncoding) (*Result, error) {
	r := newBitReader(codewords)
	result := &Result{}
	var sb strings.Builder
	activeByteEnc := defaultByteEnc

	for {
		if r.remaining() < 4 {
			break
		}
		indicator, err := r.readBits(4)
		if err != nil {
			return nil, err
		}

		switch Indicator(indicator) {
		case IndicatorTerminator:
			result.Text = sb.String()
			return result, nil

		case IndicatorNumeric:
			count, err := r.readBits(CountBits(Numeric, version))
			if err != nil {
				return nil, err
			}
			if err := readNumeric(r, &sb, int(count)); err != nil {
				return nil, err
			}

		case IndicatorAlphanumeric:
			count, err := r.readBits(CountBits(Alphanumeric, version))
			if err != nil {
				return nil, err
			}
			if err := readAlphanumeric(r, &sb, int(count)); err != nil {
				return nil, err
			}

		case IndicatorByte:
			count, err := r.readBits(CountBits(Bytes, version))
			if err != nil {
				return nil, err
			}
			octets := make([]byte, count)
			for i := range octets {
				b, err := r.readBits(8)
				if err != nil {
					return nil, err
				}
				octets[i] = byte(b)
			}
			decoded, err := activeByteEnc.Decode(octets)
			if err != nil {
				return nil, qrerr.Wrap(qrerr.DecoderParse, "byte segment is not valid under the active encoding", err)
			}
			sb.WriteString(decoded)

		case IndicatorKanji:
			count, err := r.readBits(CountBits(Kanji, version))
			if err != nil {
				return nil, err
			}
			for i := 0; i < int(count); i++ {
				v, err := r.readBits(13)
				if err != nil {
					return nil, err
				}
				rn, ok := kanjiRune(v)
				if !ok {
					return nil, qrerr.New(qrerr.DecoderParse, fmt.Sprintf("kanji code %#x does not decode", v))
				}
				sb.WriteRune(rn)
			}

		case IndicatorECI:
			value, err := readECIValue(r)
			if err != nil {
				return nil, err
			}
			result.ECI = append(result.ECI, value)
			if enc, ok := EncodingForECI(value); ok {
				activeByteEnc = enc
			}

		case IndicatorStructuredAppend:
			index, err := r.readBits(4)
			if err != nil {
				return nil, err
			}
			countMinus1, err := r.readBits(4)
			if err != nil {
				return nil, err
			}
			parity, err := r.readBits(8)
			if err != nil {
				return nil, err
			}
			result.StructuredAppend = &StructuredAppendInfo{
				Index:  int(index),
				Count:  int(countMinus1) + 1,
				Parity: byte(parity),
			}

		case IndicatorFNC1Second:
			app, err := r.readBits(8)
			if err != nil {
				return nil, err
			}
			b := byte(app)
			result.FNC1AppIndicator = &b

		default:
			return nil, qrerr.New(qrerr.DecoderParse, fmt.Sprintf("unknown segment directive %04b", indicator))
		}
	}

	result.Text = sb.String()
	return result, nil
}

func readNumeric(r *bitReader, sb *strings.Builder, count int) error {
	for count > 0 {
		n := 3
		nbits := 10
		if count < 3 {
			n = count
			nbits = map[int]int{1: 4, 2: 7}[n]
		}
		value, err := r.readBits(nbits)
		if err != nil {
			return err
		}
		if value >= pow10(n) {
			return qrerr.New(qrerr.DecoderParse, "invalid numeric group value")
		}
		digits := fmt.Sprintf("%0*d", n, value)
		sb.WriteString(digits)
		count -= n
	}
	return nil
}

func pow10(n int) uint32 {
	v := uint32(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func readAlphanumeric(r *bitReader, sb *strings.Builder, count int) error {
	for count >= 2 {
		value, err := r.readBits(11)
		if err != nil {
			return err
		}
		if value >= 45*45 {
			return qrerr.New(qrerr.DecoderParse, "invalid alphanumeric pair value")
		}
		sb.WriteByte(alphanumericAlphabet[value/45])
		sb.WriteByte(alphanumericAlphabet[value%45])
		count -= 2
	}
	if count == 1 {
		value, err := r.readBits(6)
		if err != nil {
			return err
		}
		if value >= 45 {
			return qrerr.New(qrerr.DecoderParse, "invalid alphanumeric tail value")
		}
		sb.WriteByte(alphanumericAlphabet[value])
	}
	return nil
}

// readECIValue reads a variable-length (8/16/24-bit) ECI designator value,
// distinguished by its leading bit pattern.
func readECIValue(r *bitReader) (uint32, error) {
	b1, err := r.readBits(1)
	if err != nil {
		return 0, err
	}
	if b1 == 0 {
		rest, err := r.readBits(7)
		if err != nil {
			return 0, err
		}
		return rest, nil
	}
	b2, err := r.readBits(1)
	if err != nil {
		return 0, err
	}
	if b2 == 0 {
		rest, err := r.readBits(14)
		if err != nil {
			return 0, err
		}
		return rest, nil
	}
	b3, err := r.readBits(1)
	if err != nil {
		return 0, err
	}
	if b3 != 0 {
		return 0, qrerr.New(qrerr.DecoderParse, "invalid ECI designator prefix")
	}
	rest, err := r.readBits(21)
	if err != nil {
		return 0, err
	}
	return rest, nil
}
