package curve

import (
	"math/big"
	"testing"

	"github.com/yueliang-sec/gmsm/internal/field"
)

func fe(limbs [9]uint32) field.Element {
	return field.FromLimbs(limbs)
}

func assertLimbsEqual(t *testing.T, label string, got field.Element, want [9]uint32) {
	t.Helper()
	gl := got.Limbs()
	if gl != want {
		t.Fatalf("%s limbs = %v, want %v", label, gl, want)
	}
}

// Reference vectors below are taken from the curve's Jacobian point-doubling
// and mixed-addition test fixtures: concrete input/output limb arrays in
// the 9-limb Montgomery representation this package also uses, so they
// exercise Double/AddMixed/ToAffine directly.

func TestDoubleVector(t *testing.T) {
	p := Jacobian{
		X: fe([9]uint32{142920515, 258221801, 612883394, 247790219, 102162616, 256181319, 368653124, 339147441, 485647861}),
		Y: fe([9]uint32{131716495, 257805590, 847457731, 9891469, 365916039, 10897717, 75399777, 345048710, 61672909}),
		Z: fe([9]uint32{91126934, 246575011, 35050116, 166561688, 126087236, 206595946, 25361097, 132288796, 249238939}),
	}

	got := Double(p)

	assertLimbsEqual(t, "X", got.X, [9]uint32{63255407, 227631960, 723093165, 65361332, 349345715, 60584340, 225318870, 397671582, 2985142})
	assertLimbsEqual(t, "Y", got.Y, [9]uint32{109858056, 93563162, 762162539, 50265907, 127330792, 104238630, 142585591, 352255388, 504506288})
	assertLimbsEqual(t, "Z", got.Z, [9]uint32{33808385, 18870127, 959285037, 176378705, 331289063, 266887158, 195778472, 241280794, 433045898})
}

func TestToAffineVector(t *testing.T) {
	p := Jacobian{
		X: fe([9]uint32{302587400, 224711462, 627912361, 12505049, 498636470, 226242352, 402285030, 277184676, 216966475}),
		Y: fe([9]uint32{192016430, 212978101, 582317843, 172876572, 311643684, 126400666, 241514474, 362965479, 507691953}),
		Z: fe([9]uint32{186636191, 229928314, 430146881, 262724875, 500465416, 219885119, 175182585, 128499041, 217581763}),
	}

	got := ToAffine(p)

	assertLimbsEqual(t, "X", got.X, [9]uint32{194013013, 230698553, 317844872, 128801727, 111436768, 164685344, 76578606, 217356592, 311205467})
	assertLimbsEqual(t, "Y", got.Y, [9]uint32{26049626, 112805900, 275795042, 259495837, 289529507, 146296588, 220416178, 146512122, 266185762})
}

func TestAddMixedVector(t *testing.T) {
	p1 := Jacobian{
		X: fe([9]uint32{434464579, 232242225, 833663495, 95183971, 197589781, 65481707, 285356080, 397523777, 297319517}),
		Y: fe([9]uint32{105546064, 115648734, 616445926, 160673803, 382296094, 254935631, 24241561, 306433971, 112469103}),
		Z: fe([9]uint32{181993035, 232241130, 971204483, 180652253, 65532229, 175247468, 61056085, 229359646, 398806318}),
	}
	p2 := Affine{
		X: fe([9]uint32{202984782, 49108071, 232741480, 255396639, 514738327, 218206935, 297234813, 116067631, 179908071}),
		Y: fe([9]uint32{5218908, 153082273, 421504040, 11374625, 412716736, 202538972, 20283405, 71924911, 112328172}),
	}

	got := AddMixed(p1, p2)

	assertLimbsEqual(t, "X", got.X, [9]uint32{167460039, 227362747, 1005076632, 178921945, 76659602, 171371270, 426799015, 160435985, 428642590})
	assertLimbsEqual(t, "Y", got.Y, [9]uint32{464015293, 22901587, 945207532, 41039408, 413094493, 244768035, 503070920, 229068862, 132259568})
	assertLimbsEqual(t, "Z", got.Z, [9]uint32{404366665, 62541307, 262912748, 158805496, 464033083, 30021392, 180319644, 142373381, 27655256})
}

func TestDoubleMatchesAddOfEqualPoints(t *testing.T) {
	ensureInit()
	g := FromAffine(Generator)
	doubled := Double(g)
	added := AddFull(g, g)
	if !field.Equal(doubled.X, added.X) {
		t.Fatalf("Double(G).X != AddFull(G,G).X")
	}
	if !field.Equal(doubled.Y, added.Y) {
		t.Fatalf("Double(G).Y != AddFull(G,G).Y")
	}
}

func TestAddFullInfinityIdentity(t *testing.T) {
	ensureInit()
	g := FromAffine(Generator)
	inf := Infinity()

	if r := AddFull(g, inf); !field.Equal(r.X, g.X) || !field.Equal(r.Y, g.Y) {
		t.Fatalf("G + infinity != G")
	}
	if r := AddFull(inf, g); !field.Equal(r.X, g.X) || !field.Equal(r.Y, g.Y) {
		t.Fatalf("infinity + G != G")
	}
}

func TestScalarMulBaseVsVarAgreeForGenerator(t *testing.T) {
	ensureInit()
	k := big.NewInt(123456789)

	viaBase := ScalarMulBase(k)
	viaVar := ScalarMulVar(k, Generator)

	if !field.Equal(viaBase.X, viaVar.X) || !field.Equal(viaBase.Y, viaVar.Y) {
		t.Fatalf("ScalarMulBase and ScalarMulVar disagree on the base point")
	}
}

func TestScalarMulBaseOneIsGenerator(t *testing.T) {
	ensureInit()
	got := ScalarMulBase(big.NewInt(1))
	if !field.Equal(got.X, Generator.X) || !field.Equal(got.Y, Generator.Y) {
		t.Fatalf("1*G != G")
	}
}

func TestScalarMulBaseOnCurve(t *testing.T) {
	ensureInit()
	k := big.NewInt(999999937)
	p := ScalarMulBase(k)

	x := field.FromMontgomery(p.X)
	y := field.FromMontgomery(p.Y)

	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, Prime())

	rhs := new(big.Int).Exp(x, big.NewInt(3), Prime())
	ax := new(big.Int).Mul(field.FromMontgomery(A()), x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, field.FromMontgomery(B()))
	rhs.Mod(rhs, Prime())

	if lhs.Cmp(rhs) != 0 {
		t.Fatalf("point is not on the curve: y^2=%s, x^3+ax+b=%s", lhs, rhs)
	}
}

func TestSelectAffine(t *testing.T) {
	table := make([]Affine, 15)
	for i := range table {
		table[i] = Affine{
			X: field.ToMontgomery(big.NewInt(int64(i + 1))),
			Y: field.ToMontgomery(big.NewInt(int64(100 + i))),
		}
	}

	zero := SelectAffine(0, table)
	if !field.IsZero(zero.X) || !field.IsZero(zero.Y) {
		t.Fatalf("SelectAffine(0, ...) did not return the zero point")
	}

	got := SelectAffine(7, table)
	if !field.Equal(got.X, table[6].X) || !field.Equal(got.Y, table[6].Y) {
		t.Fatalf("SelectAffine(7, ...) != table[6]")
	}
}
