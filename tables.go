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
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcode

// Version spec tables (Table 9 of ISO/IEC 18004), indexed [level][version].
// Index 0 of the version axis is unused padding.
var (
	eccCodewordsPerBlock = [4][41]int{
		LevelL: {-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		LevelM: {-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
		LevelQ: {-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		LevelH: {-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	}

	numErrorCorrectionBlocks = [4][41]int{
		LevelL: {-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		LevelM: {-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		LevelQ: {-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		LevelH: {-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	}

	// numRawDataModules[v] is the number of bit positions available for
	// data+EC after all function modules are excluded, including any
	// remainder bits.
	numRawDataModules [41]int

	// numDataCodewords[level][v] is numRawDataModules[v]/8 minus the total
	// EC codewords for that (v, level).
	numDataCodewords [4][41]int

	alignmentPatternPositions [41][]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrcode: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for l := LevelL; l <= LevelH; l++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[l][v] = numRawDataModules[v]/8 - eccCodewordsPerBlock[l][v]*numErrorCorrectionBlocks[l][v]
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = computeAlignmentPatternPositions(v)
	}
}

// computeAlignmentPatternPositions returns the ascending list of alignment
// pattern center coordinates (shared by both axes) for a version.
func computeAlignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}
	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// blockSpec describes one (count, totalLen, dataLen) group within a version
// spec's block partition.
type blockSpec struct {
	count    int
	totalLen int
	dataLen  int
}

// versionBlockSpecs derives the block-group partition for a (version,level),
// matching VersionSpec.block_spec: short blocks (missing one data codeword)
// first, then long blocks, with ECC length shared across all blocks.
func versionBlockSpecs(version int, level Level) []blockSpec {
	numBlocks := numErrorCorrectionBlocks[level][version]
	eccLen := eccCodewordsPerBlock[level][version]
	rawCodewords := numRawDataModules[version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortDataLen := rawCodewords/numBlocks - eccLen

	var specs []blockSpec
	if numShortBlocks > 0 {
		specs = append(specs, blockSpec{count: numShortBlocks, totalLen: shortDataLen + eccLen, dataLen: shortDataLen})
	}
	if numBlocks-numShortBlocks > 0 {
		specs = append(specs, blockSpec{count: numBlocks - numShortBlocks, totalLen: shortDataLen + eccLen + 1, dataLen: shortDataLen + 1})
	}
	return specs
}
