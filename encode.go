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

	"github.com/sidneycadot/qrcode-go/qrerr"
	"github.com/sidneycadot/qrcode-go/reedsolomon"
	"github.com/sidneycadot/qrcode-go/segment"
)

// VersionLevel names one (version, level) combination Encode may try.
type VersionLevel struct {
	Version int
	Level   Level
}

// PreferencesForLevel returns every version from 1 to 40 at a fixed level,
// ascending: "smallest symbol at this protection level", the common case.
func PreferencesForLevel(level Level) []VersionLevel {
	prefs := make([]VersionLevel, 40)
	for v := 1; v <= 40; v++ {
		prefs[v-1] = VersionLevel{Version: v, Level: level}
	}
	return prefs
}

// options collects Encode's optional parameters (functional-options style).
type options struct {
	preferences    []VersionLevel
	pattern        Pattern
	quietZoneWidth int
	byteEncoding   segment.ByteEncoding
}

// Option configures Encode.
type Option func(*options)

// WithPreferences overrides the default single-level, all-versions
// preference list.
func WithPreferences(prefs []VersionLevel) Option {
	return func(o *options) { o.preferences = prefs }
}

// WithPattern forces a specific data mask instead of automatic selection.
func WithPattern(p Pattern) Option {
	return func(o *options) { o.pattern = p }
}

// WithQuietZoneWidth sets the light border width included in Symbol.Grid().
func WithQuietZoneWidth(width int) Option {
	return func(o *options) { o.quietZoneWidth = width }
}

// WithByteEncoding selects the character set used to represent characters in
// byte-mode segments (default UTF-8).
func WithByteEncoding(enc segment.ByteEncoding) Option {
	return func(o *options) { o.byteEncoding = enc }
}

// Encode builds a QR code symbol for payload at the given default level,
// trying increasing versions until one fits, unless WithPreferences supplies
// an explicit (version, level) search order.
func Encode(payload string, level Level, opts ...Option) (*Symbol, error) {
	o := options{
		pattern:        PatternAuto,
		quietZoneWidth: 4,
		byteEncoding:   segment.UTF8,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.preferences == nil {
		o.preferences = PreferencesForLevel(level)
	}

	variantSegments := map[segment.Variant][]segment.Segment{}

	var lastBitLength = -1
	for _, pref := range o.preferences {
		if pref.Version < 1 || pref.Version > 40 {
			return nil, qrerr.New(qrerr.Precondition, fmt.Sprintf("version %d out of range [1,40]", pref.Version))
		}

		variant := segment.VariantForVersion(pref.Version)
		segs, ok := variantSegments[variant]
		if !ok {
			var err error
			segs, err = segment.Optimize(payload, pref.Version, o.byteEncoding)
			if err != nil {
				return nil, err
			}
			variantSegments[variant] = segs
		}

		writer := segment.NewWriter(pref.Version)
		if eciValue, ok := segment.ECIValue(o.byteEncoding); ok && o.byteEncoding.Name() != segment.UTF8.Name() {
			if err := writer.AppendECIDesignator(eciValue); err != nil {
				return nil, err
			}
		}
		fits := true
		for _, seg := range segs {
			if err := writer.AppendSegment(seg); err != nil {
				// Optimize only yields valid segments, so the remaining failure is
				// a segment too long for this version's character-count field.
				fits = false
				break
			}
		}
		if !fits {
			continue
		}
		lastBitLength = writer.Len()

		dataCapacity := numDataCodewords[pref.Level][pref.Version]
		codewords, ok := writer.ToCodewords(dataCapacity)
		if !ok {
			continue // Does not fit this preference; try the next.
		}

		return buildSymbol(pref.Version, pref.Level, codewords, o.pattern, o.quietZoneWidth)
	}

	if lastBitLength < 0 {
		return nil, qrerr.New(qrerr.Capacity, "no (version, level) preference holds this payload")
	}
	return nil, qrerr.New(qrerr.Capacity, fmt.Sprintf("no (version, level) preference holds %d payload bits", lastBitLength))
}

// buildSymbol assembles a finished Symbol from a completed codeword vector:
// block split, RS encode, interleave, canvas draw, mask selection.
func buildSymbol(version int, level Level, codewords []byte, pattern Pattern, quietZoneWidth int) (*Symbol, error) {
	specs := versionBlockSpecs(version, level)
	eccLen := eccCodewordsPerBlock[level][version]

	var dataBlocks [][]byte
	pos := 0
	for _, spec := range specs {
		for i := 0; i < spec.count; i++ {
			dataBlocks = append(dataBlocks, codewords[pos:pos+spec.dataLen])
			pos += spec.dataLen
		}
	}
	if pos != len(codewords) {
		return nil, fmt.Errorf("qrcode: block spec does not cover all data codewords")
	}

	blocks := reedsolomon.EncodeBlocks(dataBlocks, eccLen)
	allCodewords := reedsolomon.Interleave(blocks)

	s := newCanvas(version)
	s.Level = level
	s.QuietZoneWidth = quietZoneWidth
	s.drawFunctionPatterns()
	s.drawCodewords(allCodewords)
	s.Pattern = s.selectMask(pattern)
	s.isFunction = nil

	return s, nil
}

// EncodeBytes is a convenience wrapper for payloads that should always be
// carried as a single byte-mode segment, bypassing the optimal segmenter.
func EncodeBytes(data []byte, level Level, opts ...Option) (*Symbol, error) {
	o := options{
		pattern:        PatternAuto,
		quietZoneWidth: 4,
		byteEncoding:   segment.UTF8,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.preferences == nil {
		o.preferences = PreferencesForLevel(level)
	}

	for _, pref := range o.preferences {
		if pref.Version < 1 || pref.Version > 40 {
			return nil, qrerr.New(qrerr.Precondition, fmt.Sprintf("version %d out of range [1,40]", pref.Version))
		}
		writer := segment.NewWriter(pref.Version)
		if err := writer.AppendSegment(segment.MakeBytes(data)); err != nil {
			continue // Too many octets for this version's character-count field.
		}
		dataCapacity := numDataCodewords[pref.Level][pref.Version]
		codewords, ok := writer.ToCodewords(dataCapacity)
		if !ok {
			continue
		}
		return buildSymbol(pref.Version, pref.Level, codewords, o.pattern, o.quietZoneWidth)
	}

	return nil, qrerr.New(qrerr.Capacity, "no (version, level) preference holds this byte payload")
}
