package sm2

import (
	"crypto/rand"
	"math/big"

	"github.com/yueliang-sec/gmsm/gmerr"
	"github.com/yueliang-sec/gmsm/internal/curve"
	"github.com/yueliang-sec/gmsm/internal/field"
	"github.com/yueliang-sec/gmsm/sm3"
)

// Signature is a pair (r, s) of scalars, 1 <= r,s <= n-1.
type Signature struct {
	R, S *big.Int
}

// zA computes the user-identity digest binding the signer's identity and
// public key into the message hash: H256(entl||U||a||b||gx||gy||xQ||yQ),
// where entl is the two-byte big-endian bit length of U. One copy of the
// underlying source passes the field parameter a in place of b when
// building this preimage; that is a bug and this implementation passes a
// then b, in that order.
func zA(userID []byte, pub *PublicKey) [32]byte {
	entl := uint16(len(userID)) * 8
	buf := make([]byte, 0, 2+len(userID)+32*6)
	buf = append(buf, byte(entl>>8), byte(entl))
	buf = append(buf, userID...)

	aBytes := bigTo32(field.FromMontgomery(curve.A()))
	bBytes := bigTo32(field.FromMontgomery(curve.B()))
	gxBytes := bigTo32(field.FromMontgomery(curve.Generator.X))
	gyBytes := bigTo32(field.FromMontgomery(curve.Generator.Y))
	xQBytes := bigTo32(pub.X)
	yQBytes := bigTo32(pub.Y)

	buf = append(buf, aBytes[:]...)
	buf = append(buf, bBytes[:]...)
	buf = append(buf, gxBytes[:]...)
	buf = append(buf, gyBytes[:]...)
	buf = append(buf, xQBytes[:]...)
	buf = append(buf, yQBytes[:]...)

	return sm3.Sum256(buf)
}

func bigTo32(x *big.Int) [32]byte {
	var out [32]byte
	x.FillBytes(out[:])
	return out
}

// Sign produces an EC256 signature over msg by the key pair (priv, pub),
// using userID as the signer identifier (DefaultUserID if nil).
func Sign(priv *PrivateKey, pub *PublicKey, msg, userID []byte) (*Signature, error) {
	if userID == nil {
		userID = DefaultUserID
	}
	n := curve.Order()

	z := zA(userID, pub)
	eBuf := append(append([]byte{}, z[:]...), msg...)
	e := new(big.Int).SetBytes(hashToBytes(eBuf))

	onePlusD := new(big.Int).Add(big.NewInt(1), priv.D)
	onePlusDInv := new(big.Int).ModInverse(onePlusD, n)
	if onePlusDInv == nil {
		return nil, gmerr.New(gmerr.Internal, "sm2.Sign", "1+d is not invertible mod n")
	}

	for attempt := 0; attempt < maxRestarts; attempt++ {
		k, err := rand.Int(rand.Reader, new(big.Int).Sub(n, big.NewInt(1)))
		if err != nil {
			return nil, gmerr.Wrap(gmerr.Internal, "sm2.Sign", err)
		}
		k.Add(k, big.NewInt(1))

		kg := curve.ScalarMulBase(k)
		x1 := field.FromMontgomery(kg.X)

		r := new(big.Int).Add(e, x1)
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}
		rk := new(big.Int).Add(r, k)
		if rk.Cmp(n) == 0 {
			continue
		}

		// s = (1+d)^-1 * (k - r*d) mod n
		rd := new(big.Int).Mul(r, priv.D)
		s := new(big.Int).Sub(k, rd)
		s.Mul(s, onePlusDInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
	return nil, gmerr.New(gmerr.Internal, "sm2.Sign", "exceeded restart bound")
}

// Verify reports whether sig is a valid EC256 signature over msg by pub,
// using userID as the signer identifier (DefaultUserID if nil). It never
// returns an error for well-formed inputs: a malformed signature or an
// out-of-range (r, s) simply verifies as false.
func Verify(pub *PublicKey, msg []byte, sig *Signature, userID []byte) bool {
	if userID == nil {
		userID = DefaultUserID
	}
	n := curve.Order()

	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(n, one)
	if sig.R.Cmp(one) < 0 || sig.R.Cmp(nMinus1) > 0 {
		return false
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(nMinus1) > 0 {
		return false
	}

	z := zA(userID, pub)
	eBuf := append(append([]byte{}, z[:]...), msg...)
	e := new(big.Int).SetBytes(hashToBytes(eBuf))

	t := new(big.Int).Add(sig.R, sig.S)
	t.Mod(t, n)
	if t.Sign() == 0 {
		return false
	}

	sg := curve.ScalarMulBase(sig.S)
	qAffine := curve.Affine{X: field.ToMontgomery(pub.X), Y: field.ToMontgomery(pub.Y)}
	tq := curve.ScalarMulVar(t, qAffine)

	sum := curve.AddFull(curve.FromAffine(sg), curve.FromAffine(tq))
	if sum.IsInfinity() {
		return false
	}
	result := curve.ToAffine(sum)
	x1 := field.FromMontgomery(result.X)

	rPrime := new(big.Int).Add(e, x1)
	rPrime.Mod(rPrime, n)

	return rPrime.Cmp(sig.R) == 0
}

func hashToBytes(buf []byte) []byte {
	digest := sm3.Sum256(buf)
	return digest[:]
}
