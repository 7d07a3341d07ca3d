package field

import (
	"crypto/rand"
	"math/big"
	"testing"
)

// bigIntOracle mirrors Add/Sub/Mul/Square/Invert using math/big directly on
// the plain (non-Montgomery) integers, independently of the limb-level
// production code. It exists purely to differentially test the production
// arithmetic across random inputs; it is never called from non-test code,
// matching the "big-integer backend retained only for correctness testing"
// role described in DESIGN.md.
type bigIntOracle struct{}

func (bigIntOracle) add(x, y *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(x, y), Prime())
}

func (bigIntOracle) sub(x, y *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(x, y), Prime())
}

func (bigIntOracle) mul(x, y *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(x, y), Prime())
}

func (bigIntOracle) square(x *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(x, x), Prime())
}

func (bigIntOracle) invert(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(x, Prime())
}

func randFieldElement(t *testing.T) *big.Int {
	t.Helper()
	n, err := rand.Int(rand.Reader, Prime())
	if err != nil {
		t.Fatalf("rand.Int: %v", err)
	}
	if n.Sign() == 0 {
		n.SetInt64(1)
	}
	return n
}

func TestLimbArithmeticMatchesBigIntOracle(t *testing.T) {
	var oracle bigIntOracle
	for i := 0; i < 200; i++ {
		x := randFieldElement(t)
		y := randFieldElement(t)
		ex := ToMontgomery(x)
		ey := ToMontgomery(y)

		if got := FromMontgomery(Add(ex, ey)); got.Cmp(oracle.add(x, y)) != 0 {
			t.Fatalf("Add(%s,%s) = %s, want %s", x, y, got, oracle.add(x, y))
		}
		if got := FromMontgomery(Sub(ex, ey)); got.Cmp(oracle.sub(x, y)) != 0 {
			t.Fatalf("Sub(%s,%s) = %s, want %s", x, y, got, oracle.sub(x, y))
		}
		if got := FromMontgomery(Mul(ex, ey)); got.Cmp(oracle.mul(x, y)) != 0 {
			t.Fatalf("Mul(%s,%s) = %s, want %s", x, y, got, oracle.mul(x, y))
		}
		if got := FromMontgomery(Square(ex)); got.Cmp(oracle.square(x)) != 0 {
			t.Fatalf("Square(%s) = %s, want %s", x, got, oracle.square(x))
		}
		if got := FromMontgomery(Invert(ex)); got.Cmp(oracle.invert(x)) != 0 {
			t.Fatalf("Invert(%s) = %s, want %s", x, got, oracle.invert(x))
		}
	}
}

func TestToFromMontgomeryRoundTrip(t *testing.T) {
	n, ok := new(big.Int).SetString("115792089210356248756420345214020892766250353991924191454421193933289684991996", 10)
	if !ok {
		t.Fatal("bad literal")
	}

	e := ToMontgomery(n)
	back := FromMontgomery(e)
	if back.Cmp(n) != 0 {
		t.Fatalf("round trip = %s, want %s", back, n)
	}
}

func TestToMontgomeryLimbShape(t *testing.T) {
	n, ok := new(big.Int).SetString("115792089210356248756420345214020892766250353991924191454421193933289684991996", 10)
	if !ok {
		t.Fatal("bad literal")
	}
	e := ToMontgomery(n)
	limbs := e.Limbs()
	for i, w := range limbs {
		bound := uint32(1) << limbWidths[i]
		if w >= bound {
			t.Fatalf("limb %d = %d exceeds its %d-bit width", i, w, limbWidths[i])
		}
	}
}

func TestAddSubInverse(t *testing.T) {
	a := ToMontgomery(big.NewInt(12345))
	b := ToMontgomery(big.NewInt(67890))

	sum := Add(a, b)
	back := Sub(sum, b)
	if !Equal(back, a) {
		t.Fatalf("(a+b)-b != a")
	}
}

func TestMulByOneIsIdentity(t *testing.T) {
	a := ToMontgomery(big.NewInt(424242))
	one := One()
	if !Equal(Mul(a, one), a) {
		t.Fatalf("a*1 != a")
	}
}

func TestMulMatchesPlainArithmetic(t *testing.T) {
	x := big.NewInt(123456789)
	y := big.NewInt(987654321)
	want := new(big.Int).Mul(x, y)
	want.Mod(want, Prime())

	a := ToMontgomery(x)
	b := ToMontgomery(y)
	got := FromMontgomery(Mul(a, b))

	if got.Cmp(want) != 0 {
		t.Fatalf("Mul = %s, want %s", got, want)
	}
}

func TestSquareMatchesMul(t *testing.T) {
	x := big.NewInt(424242)
	a := ToMontgomery(x)
	if !Equal(Square(a), Mul(a, a)) {
		t.Fatalf("Square(a) != Mul(a,a)")
	}
}

func TestInvert(t *testing.T) {
	x := big.NewInt(98765)
	a := ToMontgomery(x)
	inv := Invert(a)
	product := Mul(a, inv)
	if !Equal(product, One()) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestNegate(t *testing.T) {
	a := ToMontgomery(big.NewInt(42))
	neg := Negate(a)
	if !IsZero(Add(a, neg)) {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestMulSmall(t *testing.T) {
	x := big.NewInt(7)
	a := ToMontgomery(x)
	got := FromMontgomery(MulSmall(a, 8))
	want := new(big.Int).Mul(x, big.NewInt(8))
	want.Mod(want, Prime())
	if got.Cmp(want) != 0 {
		t.Fatalf("MulSmall = %s, want %s", got, want)
	}
}

func TestCondAssign(t *testing.T) {
	a := ToMontgomery(big.NewInt(1))
	b := ToMontgomery(big.NewInt(2))

	kept := a
	kept.CondAssign(0, b)
	if !Equal(kept, a) {
		t.Fatalf("CondAssign with zero mask changed the value")
	}

	replaced := a
	replaced.CondAssign(0xFFFFFFFF, b)
	if !Equal(replaced, b) {
		t.Fatalf("CondAssign with all-ones mask did not replace the value")
	}
}

func TestSelect(t *testing.T) {
	a := ToMontgomery(big.NewInt(10))
	b := ToMontgomery(big.NewInt(20))

	if !Equal(Select(0, a, b), a) {
		t.Fatalf("Select(0, a, b) != a")
	}
	if !Equal(Select(0xFFFFFFFF, a, b), b) {
		t.Fatalf("Select(all-ones, a, b) != b")
	}
}

func TestZeroIsZero(t *testing.T) {
	if !IsZero(Zero()) {
		t.Fatalf("Zero() is not zero")
	}
	if IsZero(One()) {
		t.Fatalf("One() reported as zero")
	}
}
