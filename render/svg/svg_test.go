package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	qrcode "github.com/sidneycadot/qrcode-go"
)

func TestWriteFragmentHasNoDocType(t *testing.T) {
	sym, err := qrcode.Encode("01234567", qrcode.LevelM, qrcode.WithPreferences([]qrcode.VersionLevel{{Version: 1, Level: qrcode.LevelM}}))
	assert.NoError(t, err)

	out := Write(sym, false)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "<path")
}

func TestWriteDocumentIncludesDocType(t *testing.T) {
	sym, err := qrcode.Encode("01234567", qrcode.LevelM, qrcode.WithPreferences([]qrcode.VersionLevel{{Version: 1, Level: qrcode.LevelM}}))
	assert.NoError(t, err)

	out := Write(sym, true)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<!DOCTYPE svg")
}
