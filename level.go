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

import "fmt"

// Level is the error correction level of a symbol.
type Level int8

// Level values, in ascending order of protection; formatBits gives the
// non-monotonic 2-bit wire encoding.
const (
	LevelL Level = iota // Recovers ~7% of codewords.
	LevelM              // Recovers ~15% of codewords.
	LevelQ              // Recovers ~25% of codewords.
	LevelH              // Recovers ~30% of codewords.
)

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// formatBits returns the 2-bit wire encoding for the level: L=01, M=00,
// Q=11, H=10.
func (l Level) formatBits() uint32 {
	switch l {
	case LevelL:
		return 1
	case LevelM:
		return 0
	case LevelQ:
		return 3
	case LevelH:
		return 2
	default:
		panic("qrcode: unknown error correction level")
	}
}

// levelFromFormatBits is the inverse of formatBits, used by the grid
// decoder after BCH correction.
func levelFromFormatBits(bits uint32) (Level, bool) {
	switch bits {
	case 1:
		return LevelL, true
	case 0:
		return LevelM, true
	case 3:
		return LevelQ, true
	case 2:
		return LevelH, true
	default:
		return 0, false
	}
}

// LevelFromString parses the CLI-facing single-letter level name.
func LevelFromString(s string) (Level, bool) {
	switch s {
	case "L", "l":
		return LevelL, true
	case "M", "m":
		return LevelM, true
	case "Q", "q":
		return LevelQ, true
	case "H", "h":
		return LevelH, true
	default:
		return 0, false
	}
}
