// Package qrerr defines the typed error kinds shared across the encode and
// decode pipelines, so every package (segment, reedsolomon, blockcode, the
// root qrcode package) can return and compare them without introducing an
// import cycle back to the root package.
package qrerr

// Kind classifies the broad category of a failure.
type Kind string

const (
	Precondition        Kind = "precondition"
	Capacity            Kind = "capacity"
	ShiftJISUnsupported Kind = "shift_jis_unsupported"
	DecoderFormat       Kind = "decoder_format"
	DecoderRS           Kind = "decoder_rs"
	DecoderParse        Kind = "decoder_parse"
)

// Error is the typed error value surfaced to callers of the public API.
type Error struct {
	Kind    Kind
	Message string
	Err     error // Optional wrapped cause.
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given kind wrapping a lower-level cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
