// Package terminal renders a QR payload directly to a terminal using
// half-block characters, via github.com/mdp/qrterminal/v3 — the same
// library dfbb-im2code reaches for instead of a hand-rolled encoder. Unlike
// the other renderers, qrterminal builds its own symbol from the raw
// payload and level; it does not accept a pre-built Symbol/module grid, so
// this package is a deliberate exception to "core produces grid, renderers
// consume it".
package terminal

import (
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"

	qrcode "github.com/sidneycadot/qrcode-go"
)

// Write renders payload at the given level directly to w.
func Write(w io.Writer, payload string, level qrcode.Level) error {
	qrLevel, err := terminalLevel(level)
	if err != nil {
		return err
	}
	qrterminal.GenerateWithConfig(payload, qrterminal.Config{
		Level:     qrLevel,
		Writer:    w,
		BlackChar: qrterminal.BLACK,
		WhiteChar: qrterminal.WHITE,
		QuietZone: 1,
	})
	return nil
}

func terminalLevel(level qrcode.Level) (qrterminal.Level, error) {
	switch level {
	case qrcode.LevelL:
		return qrterminal.L, nil
	case qrcode.LevelM:
		return qrterminal.M, nil
	case qrcode.LevelQ:
		return qrterminal.Q, nil
	case qrcode.LevelH:
		return qrterminal.H, nil
	default:
		return 0, fmt.Errorf("render/terminal: unknown level %v", level)
	}
}
