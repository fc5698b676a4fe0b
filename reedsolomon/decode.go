package reedsolomon

import (
	"github.com/sidneycadot/qrcode-go/gf256"
	"github.com/sidneycadot/qrcode-go/qrerr"
)

// Deinterleave reverses Interleave, splitting a raw codeword stream back
// into per-block Data/ECC slices given each block's data length (which may
// differ by at most one across blocks) and the shared ECC length.
func Deinterleave(codewords []byte, dataLens []int, eccCount int) []Block {
	blocks := make([]Block, len(dataLens))
	for i, n := range dataLens {
		blocks[i].Data = make([]byte, 0, n)
	}

	maxData := 0
	for _, n := range dataLens {
		if n > maxData {
			maxData = n
		}
	}
	pos := 0
	for i := 0; i < maxData; i++ {
		for b, n := range dataLens {
			if i < n {
				blocks[b].Data = append(blocks[b].Data, codewords[pos])
				pos++
			}
		}
	}
	for b := range blocks {
		blocks[b].ECC = make([]byte, 0, eccCount)
	}
	for i := 0; i < eccCount; i++ {
		for b := range blocks {
			blocks[b].ECC = append(blocks[b].ECC, codewords[pos])
			pos++
		}
	}

	return blocks
}

// syndromes computes S_0..S_{eccCount-1} for a received block (data followed
// by ECC, high-degree-first i.e. data[0] is the most significant codeword).
func syndromes(received []byte, eccCount int) []gf256.Element {
	s := make([]gf256.Element, eccCount)
	for i := range s {
		// Evaluate the received polynomial (high-degree-first as stored) at
		// alpha^i using Horner's method directly over the received order.
		alpha := gf256.Exp(i)
		var acc gf256.Element
		for _, c := range received {
			acc = gf256.Mul(acc, alpha) ^ c
		}
		s[i] = acc
	}
	return s
}

func allZero(s []gf256.Element) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// solveLinear solves the e x e system a*x = b over GF(256) via Gaussian
// elimination with partial pivoting. Returns ok=false if singular.
func solveLinear(a [][]gf256.Element, b []gf256.Element) (x []gf256.Element, ok bool) {
	n := len(b)
	// Work on a copy.
	m := make([][]gf256.Element, n)
	for i := range m {
		m[i] = append([]gf256.Element(nil), a[i]...)
	}
	rhs := append([]gf256.Element(nil), b...)

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if m[row][col] != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		inv := gf256.Inv(m[col][col])
		for j := col; j < n; j++ {
			m[col][j] = gf256.Mul(m[col][j], inv)
		}
		rhs[col] = gf256.Mul(rhs[col], inv)

		for row := 0; row < n; row++ {
			if row == col || m[row][col] == 0 {
				continue
			}
			factor := m[row][col]
			for j := col; j < n; j++ {
				m[row][j] ^= gf256.Mul(factor, m[col][j])
			}
			rhs[row] ^= gf256.Mul(factor, rhs[col])
		}
	}

	return rhs, true
}

// findErrorLocator solves the Peterson-Gorenstein-Zierler key equation for
// an assumed error count e, returning the error-locator polynomial
// coefficients sigma_1..sigma_e (sigma_0 == 1 implicitly), or ok=false if
// the system is singular (meaning fewer than e errors actually occurred).
func findErrorLocator(s []gf256.Element, e int) (sigma []gf256.Element, ok bool) {
	if e == 0 {
		return nil, true
	}
	a := make([][]gf256.Element, e)
	b := make([]gf256.Element, e)
	for row := 0; row < e; row++ {
		a[row] = make([]gf256.Element, e)
		for col := 0; col < e; col++ {
			a[row][col] = s[row+e-1-col]
		}
		b[row] = s[row+e]
	}
	return solveLinear(a, b)
}

// findErrorPositions exhaustively searches all 255 nonzero field elements
// for roots of the error-locator polynomial sigma(x) = 1 + sigma_1 x + ... +
// sigma_e x^e, returning codeword indices (counted from the low-order end,
// position 0 = last codeword) for each root found.
func findErrorPositions(sigma []gf256.Element, codewordLen int) []int {
	var positions []int
	for i := 0; i < 255; i++ {
		x := gf256.Exp(i)
		acc := gf256.Element(1)
		power := x
		for _, c := range sigma {
			acc ^= gf256.Mul(c, power)
			power = gf256.Mul(power, x)
		}
		if acc == 0 {
			// x = alpha^i is a root iff alpha^(-i) is the error position
			// exponent; position counted from the end of the codeword.
			pos := (255 - i) % 255
			if pos < codewordLen {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}

// errorMagnitudes computes, for each error position (index from the
// low-order end), the magnitude to XOR in, via the Forney algorithm.
func errorMagnitudes(s []gf256.Element, sigma []gf256.Element, positions []int) []gf256.Element {
	// Build the full sigma polynomial low-degree-first: [1, sigma_1, ..., sigma_e].
	full := gf256.Polynomial{1}
	full = append(full, sigma...)

	// Error evaluator omega(x) = S(x) * sigma(x) mod x^(2t), S(x) taken
	// low-degree-first from the syndromes.
	sPoly := gf256.Polynomial(append([]gf256.Element(nil), s...))
	omegaFull := gf256.Mul(sPoly, full)
	t2 := len(s)
	if len(omegaFull) > t2 {
		omegaFull = omegaFull[:t2]
	}

	// Formal derivative of sigma in characteristic 2 keeps only odd-degree
	// terms, each losing its x (since d/dx x^k = k*x^(k-1), k even -> 0).
	var sigmaDeriv gf256.Polynomial
	if len(full) > 1 {
		sigmaDeriv = make(gf256.Polynomial, len(full)-1)
		for k := 1; k < len(full); k += 2 {
			sigmaDeriv[k-1] = full[k]
		}
	}

	magnitudes := make([]gf256.Element, len(positions))
	for i, pos := range positions {
		// The root found at codeword position pos was alpha^i with
		// i = (255 - pos) % 255, i.e. X_l^-1; the Forney formula evaluates
		// omega and sigma' at that root and then scales by X_l = alpha^-i.
		xi := gf256.Exp((255 - pos) % 255)
		xiInv := gf256.Inv(xi)
		num := omegaFull.Eval(xi)
		den := sigmaDeriv.Eval(xi)
		if den == 0 {
			magnitudes[i] = 0
			continue
		}
		magnitudes[i] = gf256.Mul(xiInv, gf256.Div(num, den))
	}
	return magnitudes
}

// Result describes the outcome of decoding one block.
type Result struct {
	Corrected []byte
	NumErrors int
}

// Decode corrects up to eccCount/2 byte errors in a received block (data
// followed by ECC). It returns a DecoderRS error if the block cannot be
// validated as correctable.
func Decode(data, ecc []byte, eccCount int) (*Result, error) {
	received := make([]byte, 0, len(data)+len(ecc))
	received = append(received, data...)
	received = append(received, ecc...)

	s := syndromes(received, eccCount)
	if allZero(s) {
		return &Result{Corrected: append([]byte(nil), data...), NumErrors: 0}, nil
	}

	maxErrors := eccCount / 2
	for e := maxErrors; e >= 1; e-- {
		sigma, ok := findErrorLocator(s, e)
		if !ok {
			continue
		}
		positions := findErrorPositions(sigma, len(received))
		if len(positions) != e {
			continue
		}
		magnitudes := errorMagnitudes(s, sigma, positions)

		corrected := append([]byte(nil), received...)
		for i, pos := range positions {
			idx := len(corrected) - 1 - pos
			if idx < 0 || idx >= len(corrected) {
				continue
			}
			corrected[idx] ^= magnitudes[i]
		}

		if allZero(syndromes(corrected, eccCount)) {
			return &Result{Corrected: corrected[:len(data)], NumErrors: e}, nil
		}
	}

	return nil, qrerr.New(qrerr.DecoderRS, "block has more errors than the error-correction level can recover")
}
