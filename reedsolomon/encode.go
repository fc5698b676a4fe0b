// Package reedsolomon implements QR's Reed-Solomon error-correction codec
// over gf256: per-block codeword generation on encode, and syndrome-based
// error location and correction on decode.
package reedsolomon

import "github.com/sidneycadot/qrcode-go/gf256"

// EncodeBlock computes the eccCount error-correction codewords for one
// data block, by dividing data (as a polynomial, data treated high-degree
// first) by the degree-eccCount generator polynomial and keeping the
// remainder.
func EncodeBlock(data []byte, eccCount int) []byte {
	generator := gf256.NewGenerator(eccCount)

	// Build data as a low-degree-first polynomial shifted up by eccCount,
	// i.e. data(x) * x^eccCount, matching "append eccCount zero bytes, then
	// divide" in the high-degree-first convention the standard describes.
	padded := make(gf256.Polynomial, len(data)+eccCount)
	for i, b := range data {
		padded[len(padded)-1-i] = b
	}
	remainder := gf256.Mod(padded, generator)

	ecc := make([]byte, eccCount)
	for i := 0; i < eccCount; i++ {
		if i < len(remainder) {
			ecc[eccCount-1-i] = remainder[i]
		}
	}
	return ecc
}

// Block is one data block plus its computed error-correction codewords.
type Block struct {
	Data []byte
	ECC  []byte
}

// EncodeBlocks computes error-correction codewords for every block
// independently.
func EncodeBlocks(dataBlocks [][]byte, eccCount int) []Block {
	blocks := make([]Block, len(dataBlocks))
	for i, d := range dataBlocks {
		blocks[i] = Block{Data: d, ECC: EncodeBlock(d, eccCount)}
	}
	return blocks
}

// Interleave reassembles a sequence of blocks (data lengths may differ by at
// most one, per the version's block-group structure) into the final codeword
// stream: data codewords round-robin first (shorter blocks exhausted first
// are simply skipped once empty), then all ECC codewords round-robin.
func Interleave(blocks []Block) []byte {
	var out []byte

	maxData := 0
	for _, b := range blocks {
		if len(b.Data) > maxData {
			maxData = len(b.Data)
		}
	}
	for i := 0; i < maxData; i++ {
		for _, b := range blocks {
			if i < len(b.Data) {
				out = append(out, b.Data[i])
			}
		}
	}

	maxECC := 0
	for _, b := range blocks {
		if len(b.ECC) > maxECC {
			maxECC = len(b.ECC)
		}
	}
	for i := 0; i < maxECC; i++ {
		for _, b := range blocks {
			if i < len(b.ECC) {
				out = append(out, b.ECC[i])
			}
		}
	}

	return out
}
