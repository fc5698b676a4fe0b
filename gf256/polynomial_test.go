package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomialDegree(t *testing.T) {
	assert.Equal(t, -1, Polynomial{}.Degree())
	assert.Equal(t, -1, Polynomial{0, 0, 0}.Degree())
	assert.Equal(t, 0, Polynomial{5}.Degree())
	assert.Equal(t, 2, Polynomial{1, 0, 1}.Degree())
}

func TestPolynomialAdd(t *testing.T) {
	got := Add(Polynomial{1, 2, 3}, Polynomial{4, 5})
	assert.Equal(t, Polynomial{1 ^ 4, 2 ^ 5, 3}, got)
}

func TestPolynomialMulDegree(t *testing.T) {
	p := Polynomial{1, 1}
	q := Polynomial{1, 0, 1}
	got := Mul(p, q)
	assert.Equal(t, p.Degree()+q.Degree(), got.Degree())
}

func TestPolynomialModReducesBelowDivisorDegree(t *testing.T) {
	g := NewGenerator(4)
	p := Polynomial{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	rem := Mod(p, g)
	assert.Less(t, rem.Degree(), g.Degree())
}

func TestPolynomialEvalAtGeneratorRootsIsZero(t *testing.T) {
	g := NewGenerator(8)
	for k := 0; k < 8; k++ {
		assert.Equal(t, Element(0), g.Eval(Exp(k)), "generator must vanish at alpha^%d", k)
	}
}

func TestNewGeneratorIsMonic(t *testing.T) {
	g := NewGenerator(10)
	assert.Equal(t, 10, g.Degree())
	assert.Equal(t, Element(1), g[g.Degree()])
}

func TestPolynomialShift(t *testing.T) {
	p := Polynomial{1, 2}
	got := Shift(p, 3)
	assert.Equal(t, Polynomial{0, 0, 0, 1, 2}, got)
	assert.Equal(t, p, Shift(p, 0))
}
