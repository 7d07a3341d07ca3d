package curve

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func randScalar(b *testing.B) *big.Int {
	b.Helper()
	n := Order()
	k, err := rand.Int(rand.Reader, n)
	if err != nil {
		b.Fatalf("rand.Int: %v", err)
	}
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return k
}

func BenchmarkScalarMulBase(b *testing.B) {
	k := randScalar(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScalarMulBase(k)
	}
}

func BenchmarkScalarMulVar(b *testing.B) {
	k := randScalar(b)
	ensureInit()
	g := Generator
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScalarMulVar(k, g)
	}
}
