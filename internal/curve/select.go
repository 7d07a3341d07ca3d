package curve

import "github.com/yueliang-sec/gmsm/internal/field"

// SelectAffine returns the affine point at table[index-1] for index in
// [1,15], or the implicit zero point (X=Y=0) for index 0, by OR-accumulating
// every table entry masked by an index-equality predicate computed without
// branching — the constant-time table-select primitive the comb multiplier
// uses.
func SelectAffine(index uint32, table []Affine) Affine {
	out := Affine{X: field.Zero(), Y: field.Zero()}
	for i := uint32(1); i <= uint32(len(table)); i++ {
		mask := eqMask(i, index)
		out.X.CondAssign(mask, table[i-1].X)
		out.Y.CondAssign(mask, table[i-1].Y)
	}
	return out
}

// eqMask returns 0xFFFFFFFF if i == index, else 0, for i, index < 16 — the
// same 4-bit equality predicate the comb table's affine select uses.
func eqMask(i, index uint32) uint32 {
	x := i ^ index
	x |= x >> 2
	x |= x >> 1
	x &= 1
	return x - 1
}
