package curve

import "math/big"

const wNAFWidth = 5

// wNAF computes the width-5 signed non-adjacent-form digit sequence of k,
// little-endian (digits[i] carries weight 2^i). Non-zero digits are odd
// and in [-15, 15]; at least w-1 zero digits separate consecutive non-zero
// digits, the standard property that lets the driving loop use an 8-entry
// table of odd multiples instead of a full window.
func wNAF(k *big.Int) []int8 {
	rem := new(big.Int).Set(k)
	var digits []int8

	windowMask := int64(1<<wNAFWidth - 1)
	half := int64(1 << (wNAFWidth - 1))

	for rem.Sign() > 0 {
		var digit int64
		if rem.Bit(0) == 1 {
			window := new(big.Int).And(rem, big.NewInt(windowMask))
			d := window.Int64()
			if d >= half {
				d -= windowMask + 1
			}
			digit = d
			rem.Sub(rem, big.NewInt(d))
		}
		digits = append(digits, int8(digit))
		rem.Rsh(rem, 1)
	}
	return digits
}

// buildOddMultiples returns {1P, 3P, 5P, ..., 15P} in Jacobian coordinates.
func buildOddMultiples(p Affine) [8]Jacobian {
	var table [8]Jacobian
	base := FromAffine(p)
	twiceP := Double(base)

	table[0] = base
	for m := 1; m < 8; m++ {
		table[m] = AddFull(table[m-1], twiceP)
	}
	return table
}

// ScalarMulVar computes k*p for an arbitrary point p, using width-5 signed
// NAF: the digit loop is driven high to low, doubling the accumulator
// between digits and adding (or subtracting, for a negative digit) the
// precomputed odd multiple for nonzero digits. This routine is not
// constant-time in k — acceptable per the package's secret-branching
// policy only when k is a public scalar, or a secret consumed exclusively
// through ScalarMulBase elsewhere in the call path.
func ScalarMulVar(k *big.Int, p Affine) Affine {
	table := buildOddMultiples(p)
	digits := wNAF(k)

	acc := Infinity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc = Double(acc)
		d := digits[i]
		if d == 0 {
			continue
		}
		abs := d
		if abs < 0 {
			abs = -abs
		}
		idx := (abs - 1) / 2
		t := table[idx]
		if d < 0 {
			t = Negate(t)
		}
		acc = AddFull(acc, t)
	}
	return ToAffine(acc)
}
