/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

package qrcode

import "github.com/sidneycadot/qrcode-go/blockcode"

// Module is a single position of a symbol's grid: 0 (light) or 1 (dark).
type Module int8

// Symbol is a complete QR code: its module grid plus the parameters chosen
// to build it.
type Symbol struct {
	Version int
	Level   Level
	Pattern Pattern
	Size    int // Side length in modules, 17+4*Version, quiet zone excluded.
	Modules [][]Module

	// QuietZoneWidth is the light border width Grid() pads the symbol with;
	// 0 omits the quiet zone entirely.
	QuietZoneWidth int

	isFunction [][]bool
}

// newCanvas allocates a blank Size x Size canvas for the given version.
func newCanvas(version int) *Symbol {
	size := version*4 + 17
	s := &Symbol{
		Version:    version,
		Size:       size,
		Modules:    make([][]Module, size),
		isFunction: make([][]bool, size),
	}
	for i := range s.Modules {
		s.Modules[i] = make([]Module, size)
		s.isFunction[i] = make([]bool, size)
	}
	return s
}

func (s *Symbol) setFunctionModule(x, y int, isDark bool) {
	s.Modules[y][x] = boolToModule(isDark)
	s.isFunction[y][x] = true
}

// drawFunctionPatterns lays down every function pattern: timing, finders,
// alignments, and format/version placeholders (component I).
func (s *Symbol) drawFunctionPatterns() {
	for i := 0; i < s.Size; i++ {
		s.setFunctionModule(6, i, i%2 == 0)
		s.setFunctionModule(i, 6, i%2 == 0)
	}

	s.drawFinderPattern(3, 3)
	s.drawFinderPattern(s.Size-4, 3)
	s.drawFinderPattern(3, s.Size-4)

	alignPos := alignmentPatternPositions[s.Version]
	numAlign := len(alignPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue // Corners collide with finder patterns; skip.
			}
			s.drawAlignmentPattern(alignPos[i], alignPos[j])
		}
	}

	s.drawFormatBits(s.Level, 0) // Placeholder pattern; overwritten once mask selection finishes.
	s.drawVersion()
}

func (s *Symbol) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(abs(dx), abs(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < s.Size && 0 <= yy && yy < s.Size {
				s.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

func (s *Symbol) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			s.setFunctionModule(x+dx, y+dy, maxInt(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawFormatBits writes both copies of the 15-bit format field (component L).
func (s *Symbol) drawFormatBits(level Level, pattern Pattern) {
	bits := blockcode.EncodeFormat(level.formatBits(), uint32(pattern))

	for i := 0; i <= 5; i++ {
		s.setFunctionModule(8, i, bitAt(bits, i))
	}
	s.setFunctionModule(8, 7, bitAt(bits, 6))
	s.setFunctionModule(8, 8, bitAt(bits, 7))
	s.setFunctionModule(7, 8, bitAt(bits, 8))
	for i := 9; i < 15; i++ {
		s.setFunctionModule(14-i, 8, bitAt(bits, i))
	}

	for i := 0; i < 8; i++ {
		s.setFunctionModule(s.Size-1-i, 8, bitAt(bits, i))
	}
	for i := 8; i < 15; i++ {
		s.setFunctionModule(8, s.Size-15+i, bitAt(bits, i))
	}
	s.setFunctionModule(8, s.Size-8, true)
}

// drawVersion writes both copies of the 18-bit version field for v>=7
// (component L).
func (s *Symbol) drawVersion() {
	if s.Version < 7 {
		return
	}

	bits := blockcode.EncodeVersion(uint32(s.Version))
	for i := 0; i < 18; i++ {
		bit := bitAt(bits, i)
		a := s.Size - 11 + i%3
		b := i / 3
		s.setFunctionModule(a, b, bit)
		s.setFunctionModule(b, a, bit)
	}
}

// drawCodewords writes the interleaved codeword stream onto every
// non-function module, in the standard zig-zag order (component J).
func (s *Symbol) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[s.Version]/8 {
		panic("qrcode: codeword slice is the wrong length for this version")
	}

	i := 0
	for right := s.Size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < s.Size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int
				if upward {
					y = s.Size - 1 - vert
				} else {
					y = vert
				}
				if !s.isFunction[y][x] && i < len(data)*8 {
					s.Modules[y][x] = Module((data[i>>3] >> uint(7-i&7)) & 1)
					i++
				}
			}
		}
	}
	if i != len(data)*8 {
		panic("qrcode: did not place every codeword bit")
	}
}

// readCodewordBits reads back the bit at every non-function module in
// zig-zag order, the inverse of drawCodewords, used by the grid decoder.
func (s *Symbol) readCodewordBits() []bool {
	var bits []bool
	for right := s.Size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < s.Size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int
				if upward {
					y = s.Size - 1 - vert
				} else {
					y = vert
				}
				if !s.isFunction[y][x] {
					bits = append(bits, s.Modules[y][x] == 1)
				}
			}
		}
	}
	return bits
}

// Grid returns the symbol as a boolean grid (true = dark), padded with
// QuietZoneWidth modules of light border on every side.
func (s *Symbol) Grid() [][]bool {
	width := s.QuietZoneWidth
	n := s.Size + 2*width
	grid := make([][]bool, n)
	for y := range grid {
		grid[y] = make([]bool, n)
	}
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			grid[y+width][x+width] = s.Modules[y][x] == 1
		}
	}
	return grid
}
