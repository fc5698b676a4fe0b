package segment

import "github.com/sidneycadot/qrcode-go/qrerr"

// bitReader reads MSB-first bits out of a byte slice, the inverse of
// bitBuffer's construction.
type bitReader struct {
	data []byte
	pos  int // bit position
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

func (r *bitReader) remaining() int {
	return len(r.data)*8 - r.pos
}

// readBits reads n bits MSB-first, returning a decoder_parse error if the
// stream is truncated.
func (r *bitReader) readBits(n int) (uint32, error) {
	if n < 0 || n > 31 {
		return 0, qrerr.New(qrerr.DecoderParse, "invalid bit-read width")
	}
	if r.remaining() < n {
		return 0, qrerr.New(qrerr.DecoderParse, "bitstream ended mid-segment")
	}
	var value uint32
	for i := 0; i < n; i++ {
		byteIdx := r.pos / 8
		bitIdx := 7 - r.pos%8
		bit := (r.data[byteIdx] >> uint(bitIdx)) & 1
		value = value<<1 | uint32(bit)
		r.pos++
	}
	return value, nil
}
