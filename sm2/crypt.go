package sm2

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"math/big"

	"github.com/yueliang-sec/gmsm/gmerr"
	"github.com/yueliang-sec/gmsm/internal/curve"
	"github.com/yueliang-sec/gmsm/internal/field"
	"github.com/yueliang-sec/gmsm/sm3"
)

// Ordering selects the C1/C2/C3 concatenation order of an EC256 ciphertext.
type Ordering int

const (
	// C1C3C2 is the current standard's default ordering.
	C1C3C2 Ordering = iota
	// C1C2C3 is the legacy ordering.
	C1C2C3
)

// maxRestarts bounds the encryption/signing restart loops; exceeding it
// indicates a randomness source failure statistically impossible under
// correct operation.
const maxRestarts = 100

// Encrypt performs EC256 hybrid encryption of plaintext under the
// recipient's public key, returning lowercase hex ciphertext in the given
// ordering.
func Encrypt(pub *PublicKey, plaintext []byte, ordering Ordering) (string, error) {
	n := curve.Order()

	for attempt := 0; attempt < maxRestarts; attempt++ {
		k, err := rand.Int(rand.Reader, new(big.Int).Sub(n, big.NewInt(1)))
		if err != nil {
			return "", gmerr.Wrap(gmerr.Internal, "sm2.Encrypt", err)
		}
		k.Add(k, big.NewInt(1))

		c1Affine := curve.ScalarMulBase(k)
		c1 := serializeUncompressed(field.FromMontgomery(c1Affine.X), field.FromMontgomery(c1Affine.Y))

		qAffine := curve.Affine{X: field.ToMontgomery(pub.X), Y: field.ToMontgomery(pub.Y)}
		kq := curve.ScalarMulVar(k, qAffine)
		x2 := field.FromMontgomery(kq.X)
		y2 := field.FromMontgomery(kq.Y)

		seed := concatFixed(x2, y2)
		t := kdf(seed, len(plaintext))
		if allZero(t) {
			continue
		}

		c2 := make([]byte, len(plaintext))
		for i := range plaintext {
			c2[i] = plaintext[i] ^ t[i]
		}

		c3digest := sm3.Sum256(concat3(x2Bytes(x2), plaintext, y2Bytes(y2)))

		var out []byte
		switch ordering {
		case C1C3C2:
			out = concat3(c1, c3digest[:], c2)
		default:
			out = concat3(c1, c2, c3digest[:])
		}
		return hex.EncodeToString(out), nil
	}
	return "", gmerr.New(gmerr.Internal, "sm2.Encrypt", "exceeded restart bound")
}

// Decrypt reverses Encrypt: it parses the ciphertext by fixed lengths per
// ordering, recovers the shared point via the recipient's private key,
// recomputes the integrity tag, and rejects on mismatch.
func Decrypt(priv *PrivateKey, ciphertextHex string, ordering Ordering) ([]byte, error) {
	raw, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.Decrypt", "ciphertext is not valid hex")
	}
	if len(raw) < 65+32 {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.Decrypt", "ciphertext too short")
	}
	if raw[0] != 0x04 {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.Decrypt", "C1 missing 0x04 prefix")
	}

	c1 := raw[:65]
	var c2, c3 []byte
	switch ordering {
	case C1C3C2:
		c3 = raw[65 : 65+32]
		c2 = raw[65+32:]
	default:
		c2 = raw[65 : len(raw)-32]
		c3 = raw[len(raw)-32:]
	}

	c1x := new(big.Int).SetBytes(c1[1:33])
	c1y := new(big.Int).SetBytes(c1[33:65])
	c1Affine := curve.Affine{X: field.ToMontgomery(c1x), Y: field.ToMontgomery(c1y)}

	shared := curve.ScalarMulVar(priv.D, c1Affine)
	x2 := field.FromMontgomery(shared.X)
	y2 := field.FromMontgomery(shared.Y)

	seed := concatFixed(x2, y2)
	t := kdf(seed, len(c2))

	m := make([]byte, len(c2))
	for i := range c2 {
		m[i] = c2[i] ^ t[i]
	}

	check := sm3.Sum256(concat3(x2Bytes(x2), m, y2Bytes(y2)))
	if subtle.ConstantTimeCompare(check[:], c3) != 1 {
		return nil, gmerr.New(gmerr.IntegrityFailure, "sm2.Decrypt", "recomputed tag does not match C3")
	}
	return m, nil
}

func serializeUncompressed(x, y *big.Int) []byte {
	var xb, yb [32]byte
	x.FillBytes(xb[:])
	y.FillBytes(yb[:])
	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, xb[:]...)
	out = append(out, yb[:]...)
	return out
}

func x2Bytes(x *big.Int) []byte {
	var b [32]byte
	x.FillBytes(b[:])
	return b[:]
}

func y2Bytes(y *big.Int) []byte {
	var b [32]byte
	y.FillBytes(b[:])
	return b[:]
}

func concatFixed(x, y *big.Int) []byte {
	var xb, yb [32]byte
	x.FillBytes(xb[:])
	y.FillBytes(yb[:])
	out := make([]byte, 0, 64)
	out = append(out, xb[:]...)
	return append(out, yb[:]...)
}

func concat3(a, b, c []byte) []byte {
	out := make([]byte, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)
	return append(out, c...)
}

