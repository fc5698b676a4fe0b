package segment

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ByteEncoding converts runes to the octets a byte-mode segment stores. The
// zero value is not usable; use one of the package-level encodings below.
type ByteEncoding struct {
	name    string
	encoder *encoding.Encoder
	decoder *encoding.Decoder
}

// Name returns the encoding's identifying name, used by callers that report
// it (e.g. alongside an ECI designator).
func (e ByteEncoding) Name() string {
	return e.name
}

// Encode converts a single rune to its octet representation under this
// encoding. ok is false if the rune is not representable.
func (e ByteEncoding) Encode(r rune) (octets []byte, ok bool) {
	out, err := e.encoder.String(string(r))
	if err != nil {
		return nil, false
	}
	return []byte(out), true
}

// Decode converts octets back to text under this encoding. UTF-8 octets are
// returned unchanged, so byte sequences that are not valid UTF-8 survive a
// round trip instead of being replaced.
func (e ByteEncoding) Decode(octets []byte) (string, error) {
	if e.name == UTF8.name {
		return string(octets), nil
	}
	return e.decoder.Bytes(octets)
}

var (
	// UTF8 is the default byte-mode encoding.
	UTF8 = ByteEncoding{"UTF-8", unicode.UTF8.NewEncoder(), unicode.UTF8.NewDecoder()}
	// ISO88591 is the Latin-1 byte-mode encoding.
	ISO88591 = ByteEncoding{"ISO-8859-1", charmap.ISO8859_1.NewEncoder(), charmap.ISO8859_1.NewDecoder()}
	// ISO88597 is the Greek byte-mode encoding.
	ISO88597 = ByteEncoding{"ISO-8859-7", charmap.ISO8859_7.NewEncoder(), charmap.ISO8859_7.NewDecoder()}
)

// ByteEncodingByName resolves a CLI-facing name to a ByteEncoding.
func ByteEncodingByName(name string) (ByteEncoding, bool) {
	switch name {
	case "", "utf-8", "UTF-8":
		return UTF8, true
	case "iso-8859-1", "ISO-8859-1", "latin1":
		return ISO88591, true
	case "iso-8859-7", "ISO-8859-7":
		return ISO88597, true
	default:
		return ByteEncoding{}, false
	}
}
