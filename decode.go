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
 */

package qrcode

import (
	"fmt"

	"github.com/sidneycadot/qrcode-go/blockcode"
	"github.com/sidneycadot/qrcode-go/qrerr"
	"github.com/sidneycadot/qrcode-go/reedsolomon"
	"github.com/sidneycadot/qrcode-go/segment"
)

// DecodeResult is everything the grid decoder recovers (component O) from a
// sampled module grid.
type DecodeResult struct {
	Text             string
	Version          int
	Level            Level
	Pattern          Pattern
	ECI              []uint32
	StructuredAppend *segment.StructuredAppendInfo
	FNC1AppIndicator *byte
}

// Decode recovers the payload and metadata from an already-sampled boolean
// module grid (true = dark), quiet zone already stripped.
func Decode(grid [][]bool) (*DecodeResult, error) {
	n := len(grid)
	for _, row := range grid {
		if len(row) != n {
			return nil, qrerr.New(qrerr.DecoderFormat, "module grid is not square")
		}
	}
	if (n-17)%4 != 0 {
		return nil, qrerr.New(qrerr.DecoderFormat, "module grid size is not 17+4v for any v")
	}
	version := (n - 17) / 4
	if version < 1 || version > 40 {
		return nil, qrerr.New(qrerr.DecoderFormat, "derived version out of range [1,40]")
	}

	s := newCanvas(version)
	s.drawFunctionPatterns() // Marks isFunction; placeholder content is discarded below.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			s.Modules[y][x] = boolToModule(grid[y][x])
		}
	}

	levelBits, patternBits, ok := recoverFormat(s)
	if !ok {
		return nil, qrerr.New(qrerr.DecoderFormat, "format information block is not uniquely correctable")
	}
	level, ok := levelFromFormatBits(levelBits)
	if !ok {
		return nil, qrerr.New(qrerr.DecoderFormat, "recovered format carries an invalid level code")
	}
	pattern := Pattern(patternBits)

	if version >= 7 {
		recoveredVersion, ok := recoverVersion(s)
		if !ok {
			return nil, qrerr.New(qrerr.DecoderFormat, "version information block is not uniquely correctable")
		}
		if int(recoveredVersion) != version {
			return nil, qrerr.New(qrerr.DecoderFormat, fmt.Sprintf("version information (%d) disagrees with grid size (%d)", recoveredVersion, version))
		}
	}

	s.Level = level
	s.Pattern = pattern
	s.applyMask(pattern) // XOR is its own inverse; this un-masks data/EC modules.

	bits := s.readCodewordBits()
	rawCodewords := numRawDataModules[version] / 8
	if len(bits) < rawCodewords*8 {
		return nil, qrerr.New(qrerr.DecoderFormat, "grid does not carry enough bits for this version")
	}
	codewords := make([]byte, rawCodewords)
	for i := 0; i < rawCodewords*8; i++ {
		if bits[i] {
			codewords[i/8] |= 1 << uint(7-i%8)
		}
	}

	specs := versionBlockSpecs(version, level)
	var dataLens []int
	for _, spec := range specs {
		for i := 0; i < spec.count; i++ {
			dataLens = append(dataLens, spec.dataLen)
		}
	}
	eccLen := eccCodewordsPerBlock[level][version]

	blocks := reedsolomon.Deinterleave(codewords, dataLens, eccLen)
	var dataCodewords []byte
	for _, block := range blocks {
		result, err := reedsolomon.Decode(block.Data, block.ECC, eccLen)
		if err != nil {
			return nil, err
		}
		dataCodewords = append(dataCodewords, result.Corrected...)
	}

	parsed, err := segment.Parse(dataCodewords, version, segment.UTF8)
	if err != nil {
		return nil, err
	}

	return &DecodeResult{
		Text:             parsed.Text,
		Version:          version,
		Level:            level,
		Pattern:          pattern,
		ECI:              parsed.ECI,
		StructuredAppend: parsed.StructuredAppend,
		FNC1AppIndicator: parsed.FNC1AppIndicator,
	}, nil
}

// recoverFormat tries both format information copies, using whichever
// uniquely BCH-corrects.
func recoverFormat(s *Symbol) (levelBits, pattern uint32, ok bool) {
	if levelBits, pattern, ok = blockcode.RecoverFormat(readFormatCopy1(s)); ok {
		return
	}
	return blockcode.RecoverFormat(readFormatCopy2(s))
}

func readFormatCopy1(s *Symbol) uint32 {
	var bits uint32
	for i := 0; i <= 5; i++ {
		bits |= moduleBit(s, 8, i, i)
	}
	bits |= moduleBit(s, 8, 7, 6)
	bits |= moduleBit(s, 8, 8, 7)
	bits |= moduleBit(s, 7, 8, 8)
	for i := 9; i < 15; i++ {
		bits |= moduleBit(s, 14-i, 8, i)
	}
	return bits
}

func readFormatCopy2(s *Symbol) uint32 {
	var bits uint32
	for i := 0; i < 8; i++ {
		bits |= moduleBit(s, s.Size-1-i, 8, i)
	}
	for i := 8; i < 15; i++ {
		bits |= moduleBit(s, 8, s.Size-15+i, i)
	}
	return bits
}

func recoverVersion(s *Symbol) (uint32, bool) {
	if version, ok := blockcode.RecoverVersion(readVersionCopy(s, false)); ok {
		return version, ok
	}
	return blockcode.RecoverVersion(readVersionCopy(s, true))
}

// readVersionCopy reads one of the two 3x6 version-information regions;
// transposed selects the column-major copy.
func readVersionCopy(s *Symbol, transposed bool) uint32 {
	var bits uint32
	for i := 0; i < 18; i++ {
		a := s.Size - 11 + i%3
		b := i / 3
		if transposed {
			bits |= moduleBit(s, b, a, i)
		} else {
			bits |= moduleBit(s, a, b, i)
		}
	}
	return bits
}

func moduleBit(s *Symbol, x, y, bitIndex int) uint32 {
	if s.Modules[y][x] == 1 {
		return 1 << uint(bitIndex)
	}
	return 0
}
