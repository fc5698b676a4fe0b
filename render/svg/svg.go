// Package svg renders a symbol's module grid to a scalable vector graphics
// document, generalizing an earlier ToSVGString method to any grid produced
// by Symbol.Grid (quiet zone already baked in).
package svg

import (
	"fmt"
	"strings"

	qrcode "github.com/sidneycadot/qrcode-go"
)

// Write renders sym as an SVG document. includeDocType prepends the XML
// declaration and DOCTYPE, for producing a standalone file rather than an
// inline fragment.
func Write(sym *qrcode.Symbol, includeDocType bool) string {
	grid := sym.Grid()
	n := len(grid)

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", n)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !grid[y][x] {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x, y)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String()
}
