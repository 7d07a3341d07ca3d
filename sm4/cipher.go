// Package sm4 implements B128, the GM/T 0002-2012 128-bit block cipher
// (a 32-round Feistel network), plus its five standard modes of operation.
package sm4

import (
	"encoding/binary"

	"github.com/yueliang-sec/gmsm/gmerr"
)

const (
	// KeySize is the required length in bytes of a B128 key.
	KeySize = 16
	// BlockSize is the size in bytes of a single B128 block.
	BlockSize = 16
)

// Cipher holds a precomputed 32-word round-key schedule derived from a
// 16-byte user key. It is built once by NewCipher and reused across every
// block the caller encrypts or decrypts, the way a constructor-built cipher
// context is reused across many operations rather than recomputing its
// schedule per call.
type Cipher struct {
	roundKeys [32]uint32
}

// NewCipher expands key into a round-key schedule. key must be exactly
// KeySize bytes.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, gmerr.New(gmerr.MalformedInput, "sm4.NewCipher", "key must be 16 bytes")
	}

	var mk [4]uint32
	for i := 0; i < 4; i++ {
		mk[i] = binary.BigEndian.Uint32(key[i*4:])
	}

	var k [36]uint32
	for i := 0; i < 4; i++ {
		k[i] = mk[i] ^ fk[i]
	}

	c := &Cipher{}
	for i := 0; i < 32; i++ {
		k[i+4] = k[i] ^ tPrime(k[i+1]^k[i+2]^k[i+3]^ck[i])
		c.roundKeys[i] = k[i+4]
	}
	return c, nil
}

// Encrypt encrypts a single BlockSize-byte block from src into dst. src and
// dst may overlap exactly.
func (c *Cipher) Encrypt(dst, src []byte) error {
	return c.crypt(dst, src, false)
}

// Decrypt decrypts a single BlockSize-byte block from src into dst. src and
// dst may overlap exactly.
func (c *Cipher) Decrypt(dst, src []byte) error {
	return c.crypt(dst, src, true)
}

func (c *Cipher) crypt(dst, src []byte, decrypt bool) error {
	if len(src) != BlockSize {
		return gmerr.New(gmerr.MalformedInput, "sm4.Cipher", "block must be 16 bytes")
	}
	if len(dst) != BlockSize {
		return gmerr.New(gmerr.MalformedInput, "sm4.Cipher", "destination must be 16 bytes")
	}

	var x [36]uint32
	for i := 0; i < 4; i++ {
		x[i] = binary.BigEndian.Uint32(src[i*4:])
	}

	for i := 0; i < 32; i++ {
		rk := c.roundKeys[i]
		if decrypt {
			rk = c.roundKeys[31-i]
		}
		x[i+4] = x[i] ^ t(x[i+1]^x[i+2]^x[i+3]^rk)
	}

	binary.BigEndian.PutUint32(dst[0:], x[35])
	binary.BigEndian.PutUint32(dst[4:], x[34])
	binary.BigEndian.PutUint32(dst[8:], x[33])
	binary.BigEndian.PutUint32(dst[12:], x[32])
	return nil
}
