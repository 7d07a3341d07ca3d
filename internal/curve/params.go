// Package curve implements point arithmetic for the EC256 curve
// y² = x³ + ax + b over the field implemented by internal/field: affine and
// Jacobian points, doubling, mixed and full addition, conditional copy and
// table select, and the two scalar-multiplication strategies the EC core
// layer needs — a base-point comb multiply and a variable-point width-5
// signed-NAF multiply.
package curve

import (
	"math/big"
	"sync"

	"github.com/yueliang-sec/gmsm/internal/field"
)

// hex constants for the GM/T recommended EC256 curve. These match the
// field prime in internal/field (the same value as the well-known NIST
// P-256 prime, a historical coincidence between the two standards).
const (
	aHex  = "FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC"
	bHex  = "28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93"
	gxHex = "32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7"
	gyHex = "BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0"
)

var (
	paramsOnce sync.Once
	tableOnce  sync.Once

	a field.Element
	b field.Element

	// Generator is the base point G in affine coordinates, Montgomery form.
	Generator Affine

	// combTable holds the 2x15 precomputed subset sums used by ScalarMulBase.
	combTable [2][15]Affine
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: bad constant " + s)
	}
	return n
}

// ensureParams initializes a, b and Generator.
func ensureParams() {
	paramsOnce.Do(func() {
		a = field.ToMontgomery(mustHex(aHex))
		b = field.ToMontgomery(mustHex(bHex))
		Generator = Affine{
			X: field.ToMontgomery(mustHex(gxHex)),
			Y: field.ToMontgomery(mustHex(gyHex)),
		}
	})
}

// ensureInit initializes the curve parameters and then the comb table. The
// table has its own guard because building it calls Double, which needs
// only the parameters.
func ensureInit() {
	ensureParams()
	tableOnce.Do(buildCombTable)
}

// A returns the curve coefficient a (Montgomery form), equal to p-3.
func A() field.Element {
	ensureInit()
	return a
}

// B returns the curve coefficient b (Montgomery form).
func B() field.Element {
	ensureInit()
	return b
}

// Order returns the subgroup order n.
func Order() *big.Int {
	return field.Order()
}

// Prime returns the field prime p.
func Prime() *big.Int {
	return field.Prime()
}
