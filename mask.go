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

import "math"

// Penalty weights for the four scoring rules (component K).
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// applyMask XORs every non-function module with the given mask predicate.
// Applying the same mask twice removes it.
func (s *Symbol) applyMask(p Pattern) {
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			if s.isFunction[y][x] {
				continue
			}
			if maskInvert(p, y, x) {
				s.Modules[y][x] ^= 1
			}
		}
	}
}

// selectMask applies the requested pattern, or chooses the lowest-penalty
// pattern among all eight if forced is PatternAuto.
func (s *Symbol) selectMask(forced Pattern) Pattern {
	if forced != PatternAuto {
		s.applyMask(forced)
		s.drawFormatBits(s.Level, forced)
		return forced
	}

	best := Pattern(0)
	bestPenalty := math.MaxInt32
	for p := Pattern(0); p < 8; p++ {
		s.applyMask(p)
		s.drawFormatBits(s.Level, p)
		penalty := s.penaltyScore()
		if penalty < bestPenalty {
			best = p
			bestPenalty = penalty
		}
		s.applyMask(p) // Undo; XOR is its own inverse.
	}

	s.applyMask(best)
	s.drawFormatBits(s.Level, best)
	return best
}

// penaltyScore sums the four standard penalty rules over the current grid.
func (s *Symbol) penaltyScore() int {
	result := 0

	for y := 0; y < s.Size; y++ {
		runColor := Module(0)
		runLen := 0
		var history [7]int
		for x := 0; x < s.Size; x++ {
			if s.Modules[y][x] == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				s.finderPenaltyAddHistory(runLen, &history)
				if runColor == 0 {
					result += s.finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runColor = s.Modules[y][x]
				runLen = 1
			}
		}
		result += s.finderPenaltyTerminateAndCount(runColor, runLen, &history) * penaltyN3
	}

	for x := 0; x < s.Size; x++ {
		runColor := Module(0)
		runLen := 0
		var history [7]int
		for y := 0; y < s.Size; y++ {
			if s.Modules[y][x] == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				s.finderPenaltyAddHistory(runLen, &history)
				if runColor == 0 {
					result += s.finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runColor = s.Modules[y][x]
				runLen = 1
			}
		}
		result += s.finderPenaltyTerminateAndCount(runColor, runLen, &history) * penaltyN3
	}

	for y := 0; y < s.Size-1; y++ {
		for x := 0; x < s.Size-1; x++ {
			color := s.Modules[y][x]
			if color == s.Modules[y][x+1] && color == s.Modules[y+1][x] && color == s.Modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for _, row := range s.Modules {
		for _, m := range row {
			if m == 1 {
				dark++
			}
		}
	}
	total := s.Size * s.Size
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

func (s *Symbol) finderPenaltyAddHistory(runLen int, history *[7]int) {
	if history[0] == 0 {
		runLen += s.Size // Count the light border outside the symbol.
	}
	copy(history[1:], history[:6])
	history[0] = runLen
}

// finderPenaltyCountPatterns looks for the 1:1:3:1:1 finder-like proportion
// in the run history, counting it on both sides independently.
func (s *Symbol) finderPenaltyCountPatterns(history *[7]int) int {
	n := history[1]
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

func (s *Symbol) finderPenaltyTerminateAndCount(runColor Module, runLen int, history *[7]int) int {
	if runColor == 1 {
		s.finderPenaltyAddHistory(runLen, history)
		runLen = 0
	}
	runLen += s.Size
	s.finderPenaltyAddHistory(runLen, history)
	return s.finderPenaltyCountPatterns(history)
}
