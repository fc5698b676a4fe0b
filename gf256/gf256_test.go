package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulDivInverse(t *testing.T) {
	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			product := Mul(Element(x), Element(y))
			assert.Equal(t, Element(x), Div(product, Element(y)))
			assert.Equal(t, Element(y), Div(product, Element(x)))
		}
	}
}

func TestMulByZero(t *testing.T) {
	assert.Equal(t, Element(0), Mul(0, 42))
	assert.Equal(t, Element(0), Mul(42, 0))
}

func TestInv(t *testing.T) {
	for x := 1; x < 256; x++ {
		assert.Equal(t, Element(1), Mul(Element(x), Inv(Element(x))))
	}
}

func TestPowMatchesRepeatedMul(t *testing.T) {
	for x := 1; x < 256; x++ {
		acc := Element(1)
		for k := 0; k < 8; k++ {
			assert.Equal(t, acc, Pow(Element(x), k))
			acc = Mul(acc, Element(x))
		}
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	for x := 1; x < 256; x++ {
		assert.Equal(t, Element(x), Exp(Log(Element(x))))
	}
}

func TestAddIsXorAndSelfInverse(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			assert.Equal(t, Element(x^y), Add(Element(x), Element(y)))
			assert.Equal(t, Element(x), Add(Add(Element(x), Element(y)), Element(y)))
		}
	}
}

func TestDivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Div(1, 0) })
}

func TestInvZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Inv(0) })
}
