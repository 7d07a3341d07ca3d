package curve

import "math/big"

func scalarToLEBytes(k *big.Int) [32]byte {
	var out [32]byte
	b := k.Bytes() // big-endian
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func bitOfScalar(scalar [32]byte, bit int) uint32 {
	return uint32(scalar[bit>>3]>>uint(bit&7)) & 1
}

// ScalarMulBase computes k*G using the precomputed comb table, following
// the 32-iteration, 4-bit-window algorithm described for base-point
// multiplication: each iteration doubles the accumulator, then performs
// two table-select + mixed-add steps (one per table half), driven by an
// "accumulator is infinity" mask so the first non-zero selection assigns
// rather than adds. k must satisfy 0 <= k < n.
func ScalarMulBase(k *big.Int) Affine {
	ensureInit()

	scalar := scalarToLEBytes(k)
	jacobian := Infinity()
	infinityMask := ^uint32(0)

	step := func(half int, positions [4]int) {
		var idx uint32
		for bitIdx, pos := range positions {
			idx |= bitOfScalar(scalar, pos) << uint(bitIdx)
		}

		affine := SelectAffine(idx, combTable[half][:])
		temp := AddMixed(jacobian, affine)

		jacobian.ConditionalCopy(infinityMask, Jacobian{X: affine.X, Y: affine.Y, Z: oneElement()})

		finite := finiteMask(idx)
		mask := finite & ^infinityMask
		jacobian.ConditionalCopy(mask, temp)

		infinityMask &= ^finite
	}

	for i := 0; i < 32; i++ {
		if i != 0 {
			jacobian = Double(jacobian)
		}
		step(0, [4]int{31 - i, 95 - i, 159 - i, 223 - i})
		step(1, [4]int{63 - i, 127 - i, 191 - i, 255 - i})
	}

	return ToAffine(jacobian)
}
