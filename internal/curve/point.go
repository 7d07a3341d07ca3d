package curve

import "github.com/yueliang-sec/gmsm/internal/field"

// Affine is a point (x, y) in affine coordinates, Montgomery form.
type Affine struct {
	X, Y field.Element
}

// Jacobian is a point (X, Y, Z) with affine equivalent (X/Z², Y/Z³).
// Z = 0 represents the point at infinity.
type Jacobian struct {
	X, Y, Z field.Element
}

func oneElement() field.Element { return field.One() }

// Infinity returns the Jacobian representation of the point at infinity.
func Infinity() Jacobian {
	return Jacobian{X: field.Zero(), Y: field.Zero(), Z: field.Zero()}
}

// IsInfinity reports whether p represents the point at infinity.
func (p Jacobian) IsInfinity() bool {
	return field.IsZero(p.Z)
}

// FromAffine lifts an affine point to Jacobian coordinates with Z = 1.
func FromAffine(p Affine) Jacobian {
	return Jacobian{X: p.X, Y: p.Y, Z: field.One()}
}

// Double returns 2*p, following the standard a != -3 Jacobian doubling
// formula (dbl-2009-l): alpha = Z^2, beta = Y^2, delta = 4*X*beta,
// gamma = 3*X^2 + a*alpha^2, X' = gamma^2 - 2*delta,
// Y' = gamma*(delta - X') - 8*beta^2, Z' = (Y+Z)^2 - alpha - beta.
func Double(p Jacobian) Jacobian {
	ensureParams()

	alpha := field.Square(p.Z)
	beta := field.Square(p.Y)
	delta := field.MulSmall(field.Mul(p.X, beta), 4)

	alphaSq := field.Square(alpha)
	t1 := field.Mul(a, alphaSq)
	gamma := field.Add(field.MulSmall(field.Square(p.X), 3), t1)

	t2 := field.MulSmall(field.Square(beta), 8)

	rx := field.Sub(field.Sub(field.Square(gamma), delta), delta)
	ry := field.Sub(field.Mul(field.Sub(delta, rx), gamma), t2)
	rz := field.Sub(field.Sub(field.Square(field.Add(p.Y, p.Z)), alpha), beta)

	return Jacobian{X: rx, Y: ry, Z: rz}
}

// AddMixed adds the affine point q (implicit Z=1) to the Jacobian point p,
// following the standard add-2007-bl mixed-addition formula. It does not
// handle p == q (doubling) nor either operand being the point at infinity;
// callers must guarantee those preconditions or mask the result away with
// ConditionalCopy, matching the comb-multiply driving loop.
func AddMixed(p Jacobian, q Affine) Jacobian {
	z1z1 := field.Square(p.Z)
	twoZ1 := field.Add(p.Z, p.Z)
	u2 := field.Mul(q.X, z1z1)
	z1z1z1 := field.Mul(p.Z, z1z1)
	s2 := field.Mul(q.Y, z1z1z1)
	h := field.Sub(u2, p.X)

	i := field.Square(field.Add(h, h))
	j := field.Mul(h, i)

	r := field.Sub(s2, p.Y)
	r = field.Add(r, r)

	v := field.Mul(p.X, i)

	zOut := field.Mul(twoZ1, h)
	rr := field.Square(r)

	xOut := field.Sub(field.Sub(rr, j), field.Add(v, v))
	t := field.Sub(v, xOut)

	yOut := field.Mul(t, r)
	t2 := field.Mul(p.Y, j)
	yOut = field.Sub(yOut, field.Add(t2, t2))

	return Jacobian{X: xOut, Y: yOut, Z: zOut}
}

// AddFull adds two Jacobian points without any precondition on inputs: it
// detects the case where either operand is the point at infinity (and
// returns the other operand), detects the case where the two operands
// represent the same affine point (and substitutes a doubling), and
// otherwise runs the standard add-2007-bl Jacobian+Jacobian formula. These
// branches are used by the variable-point w-NAF multiplier, whose inputs
// are not required to be constant-time at this level.
func AddFull(p, q Jacobian) Jacobian {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	z1z1 := field.Square(p.Z)
	z2z2 := field.Square(q.Z)
	u1 := field.Mul(p.X, z2z2)
	u2 := field.Mul(q.X, z1z1)
	s1 := field.Mul(field.Mul(p.Y, q.Z), z2z2)
	s2 := field.Mul(field.Mul(q.Y, p.Z), z1z1)

	if field.Equal(u1, u2) {
		if field.Equal(s1, s2) {
			return Double(p)
		}
		return Infinity()
	}

	h := field.Sub(u2, u1)
	i := field.Square(field.Add(h, h))
	j := field.Mul(h, i)
	r := field.Add(field.Sub(s2, s1), field.Sub(s2, s1))
	v := field.Mul(u1, i)

	xOut := field.Sub(field.Sub(field.Square(r), j), field.Add(v, v))
	t := field.Sub(v, xOut)
	yOut := field.Sub(field.Mul(r, t), field.Add(field.Mul(s1, j), field.Mul(s1, j)))
	zOut := field.Sub(field.Sub(field.Square(field.Add(p.Z, q.Z)), z1z1), z2z2)
	zOut = field.Mul(zOut, h)

	return Jacobian{X: xOut, Y: yOut, Z: zOut}
}

// Negate returns the point -p (same x, negated y). It is defined on
// Jacobian points since it is used while driving the signed w-NAF loop.
func Negate(p Jacobian) Jacobian {
	return Jacobian{X: p.X, Y: field.Negate(p.Y), Z: p.Z}
}

// ToAffine converts a Jacobian point to affine coordinates: x = X/Z²,
// y = Y/Z³. The point at infinity has no affine representative; callers
// must not call this on an infinite point.
func ToAffine(p Jacobian) Affine {
	zInv := field.Invert(p.Z)
	zInv2 := field.Square(zInv)
	zInv3 := field.Mul(zInv2, zInv)
	return Affine{
		X: field.Mul(p.X, zInv2),
		Y: field.Mul(p.Y, zInv3),
	}
}

// ConditionalCopy sets *p to source if mask is all-ones (0xFFFFFFFF),
// leaving *p unchanged if mask is zero, per field.Element, with no
// data-dependent branch.
func (p *Jacobian) ConditionalCopy(mask uint32, source Jacobian) {
	p.X.CondAssign(mask, source.X)
	p.Y.CondAssign(mask, source.Y)
	p.Z.CondAssign(mask, source.Z)
}

// SelectJacobian is ConditionalCopy's value-returning counterpart.
func SelectJacobian(mask uint32, self, source Jacobian) Jacobian {
	out := self
	out.ConditionalCopy(mask, source)
	return out
}

// finiteMask returns 0xFFFFFFFF if x != 0, else 0 — used by the comb
// table's index-zero check to decide whether a selected table entry is
// the implicit "zero point" (index 0).
func finiteMask(x uint32) uint32 {
	return (x-1)>>31 - 1
}
