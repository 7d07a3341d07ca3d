package curve

// buildCombTable populates combTable, the 2x15 array of precomputed subset
// sums the base-point comb multiplier selects from. The first half covers
// all 15 non-empty subsets of {G, 2^64 G, 2^128 G, 2^192 G}; the second
// half covers all 15 non-empty subsets of {2^32 G, 2^96 G, 2^160 G,
// 2^224 G}. This is public data computed once at init time by repeated
// doubling, rather than embedded as a literal table — an 18-word-per-entry
// table built this way reproduces the same values a hand-transcribed
// constant table would hold, without the transcription risk.
func buildCombTable() {
	g := FromAffine(Generator)

	doubleN := func(p Jacobian, n int) Jacobian {
		for i := 0; i < n; i++ {
			p = Double(p)
		}
		return p
	}

	firstHalf := [4]Jacobian{
		g,
		doubleN(g, 64),
		doubleN(g, 128),
		doubleN(g, 192),
	}
	secondHalf := [4]Jacobian{
		doubleN(g, 32),
		doubleN(g, 96),
		doubleN(g, 160),
		doubleN(g, 224),
	}

	fillHalf := func(base [4]Jacobian, out *[15]Affine) {
		for idx := 1; idx <= 15; idx++ {
			var acc Jacobian
			started := false
			for k := 0; k < 4; k++ {
				if idx&(1<<uint(k)) == 0 {
					continue
				}
				if !started {
					acc = base[k]
					started = true
					continue
				}
				acc = AddFull(acc, base[k])
			}
			out[idx-1] = ToAffine(acc)
		}
	}

	fillHalf(firstHalf, &combTable[0])
	fillHalf(secondHalf, &combTable[1])
}
