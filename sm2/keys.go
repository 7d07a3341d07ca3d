// Package sm2 implements EC256, the GM/T 0003-2012 elliptic-curve scheme:
// key generation, hybrid encryption/decryption, and ECDSA-like signing and
// verification over the curve built by internal/curve and internal/field.
package sm2

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/yueliang-sec/gmsm/gmerr"
	"github.com/yueliang-sec/gmsm/internal/curve"
	"github.com/yueliang-sec/gmsm/internal/field"
)

// DefaultUserID is the 16-byte user identifier GM/T 0003.2 uses when none
// is supplied: the ASCII bytes "1234567812345678".
var DefaultUserID = []byte("1234567812345678")

// PrivateKey is a scalar d with 1 <= d <= n-2.
type PrivateKey struct {
	D *big.Int
}

// PublicKey is an affine point P = d*G.
type PublicKey struct {
	X, Y *big.Int
}

// GenerateKey draws a uniform private scalar in [1, n-2] and derives its
// public key, matching the key generation step of §4 of the underlying
// scheme.
func GenerateKey() (*PrivateKey, *PublicKey, error) {
	n := curve.Order()
	upperBound := new(big.Int).Sub(n, big.NewInt(2))

	d, err := rand.Int(rand.Reader, upperBound)
	if err != nil {
		return nil, nil, gmerr.Wrap(gmerr.Internal, "sm2.GenerateKey", err)
	}
	d.Add(d, big.NewInt(1)) // land in [1, n-2]

	priv := &PrivateKey{D: d}
	pub := PublicKeyFromPrivate(priv)
	return priv, pub, nil
}

// PublicKeyFromPrivate derives Q = d*G from a private key.
func PublicKeyFromPrivate(priv *PrivateKey) *PublicKey {
	affine := curve.ScalarMulBase(priv.D)
	return &PublicKey{
		X: field.FromMontgomery(affine.X),
		Y: field.FromMontgomery(affine.Y),
	}
}

// HexString returns the 64-hex-character, left-zero-padded big-endian
// encoding of the private scalar.
func (priv *PrivateKey) HexString() string {
	var buf [32]byte
	priv.D.FillBytes(buf[:])
	return hex.EncodeToString(buf[:])
}

// ParsePrivateKey decodes a 64-hex-character private key.
func ParsePrivateKey(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.ParsePrivateKey", "private key must be 64 hex characters")
	}
	return &PrivateKey{D: new(big.Int).SetBytes(b)}, nil
}

// HexString returns the 130-hex-character "04"||X||Y uncompressed encoding.
func (pub *PublicKey) HexString() string {
	var xb, yb [32]byte
	pub.X.FillBytes(xb[:])
	pub.Y.FillBytes(yb[:])

	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, xb[:]...)
	out = append(out, yb[:]...)
	return hex.EncodeToString(out)
}

// ParsePublicKey decodes a 130-hex-character "04"||X||Y uncompressed
// public key.
func ParsePublicKey(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 65 || b[0] != 0x04 {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.ParsePublicKey", "public key must be 130 hex characters starting with 04")
	}
	return &PublicKey{
		X: new(big.Int).SetBytes(b[1:33]),
		Y: new(big.Int).SetBytes(b[33:65]),
	}, nil
}

// DecompressPublicKey recovers a full public key from its 0x02/0x03-tagged
// 33-byte compressed form (decode-only; this package never emits the
// compressed form itself). The prefix byte's low bit selects the parity of
// y: 0x02 for even y, 0x03 for odd y.
func DecompressPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != 33 || (b[0] != 0x02 && b[0] != 0x03) {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.DecompressPublicKey", "compressed key must be 33 bytes starting with 02 or 03")
	}
	x := new(big.Int).SetBytes(b[1:])
	p := curve.Prime()
	if x.Cmp(p) >= 0 {
		return nil, gmerr.New(gmerr.OutOfRange, "sm2.DecompressPublicKey", "x is not less than p")
	}

	xm := field.ToMontgomery(x)
	rhs := field.Add(field.Add(field.Mul(field.Square(xm), xm), field.Mul(curve.A(), xm)), curve.B())
	rhsInt := field.FromMontgomery(rhs)

	y := new(big.Int).ModSqrt(rhsInt, p)
	if y == nil {
		return nil, gmerr.New(gmerr.OutOfRange, "sm2.DecompressPublicKey", "x is not on the curve")
	}
	wantOdd := b[0] == 0x03
	if y.Bit(0) == 1 != wantOdd {
		y.Sub(p, y)
	}

	return &PublicKey{X: x, Y: y}, nil
}
