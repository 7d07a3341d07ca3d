package sm4

import "github.com/yueliang-sec/gmsm/gmerr"

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// pad applies PKCS#7-style padding on a 16-byte boundary: N copies of the
// byte N, where N = 16 - (len(src) mod 16), always at least one byte.
func pad(src []byte) []byte {
	n := BlockSize - len(src)%BlockSize
	out := make([]byte, len(src)+n)
	copy(out, src)
	for i := len(src); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpad strips PKCS#7-style padding, rejecting malformed trailers.
func unpad(src []byte) ([]byte, error) {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return nil, gmerr.New(gmerr.MalformedInput, "sm4.unpad", "ciphertext is not a multiple of the block size")
	}
	n := int(src[len(src)-1])
	if n == 0 || n > BlockSize || n > len(src) {
		return nil, gmerr.New(gmerr.MalformedInput, "sm4.unpad", "invalid padding byte")
	}
	for _, b := range src[len(src)-n:] {
		if int(b) != n {
			return nil, gmerr.New(gmerr.MalformedInput, "sm4.unpad", "inconsistent padding bytes")
		}
	}
	return src[:len(src)-n], nil
}

func checkIV(iv []byte) error {
	if len(iv) != BlockSize {
		return gmerr.New(gmerr.MalformedInput, "sm4", "iv must be 16 bytes")
	}
	return nil
}

// EncryptECB encrypts plaintext under electronic-codebook mode with
// mandatory PKCS#7-style padding. No IV is used; identical plaintext blocks
// produce identical ciphertext blocks.
func EncryptECB(c *Cipher, plaintext []byte) ([]byte, error) {
	padded := pad(plaintext)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		if err := c.Encrypt(out[i:i+BlockSize], padded[i:i+BlockSize]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DecryptECB decrypts ciphertext produced by EncryptECB.
func DecryptECB(c *Cipher, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, gmerr.New(gmerr.MalformedInput, "sm4.DecryptECB", "ciphertext is not a multiple of the block size")
	}
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		if err := c.Decrypt(out[i:i+BlockSize], ciphertext[i:i+BlockSize]); err != nil {
			return nil, err
		}
	}
	return unpad(out)
}

// EncryptCBC encrypts plaintext under cipher-block-chaining mode with
// mandatory PKCS#7-style padding.
func EncryptCBC(c *Cipher, iv, plaintext []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	padded := pad(plaintext)
	out := make([]byte, len(padded))

	prev := make([]byte, BlockSize)
	copy(prev, iv)
	var block [BlockSize]byte
	for i := 0; i < len(padded); i += BlockSize {
		xorBytes(block[:], prev, padded[i:i+BlockSize])
		if err := c.Encrypt(out[i:i+BlockSize], block[:]); err != nil {
			return nil, err
		}
		prev = out[i : i+BlockSize]
	}
	return out, nil
}

// DecryptCBC decrypts ciphertext produced by EncryptCBC.
func DecryptCBC(c *Cipher, iv, ciphertext []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, gmerr.New(gmerr.MalformedInput, "sm4.DecryptCBC", "ciphertext is not a multiple of the block size")
	}
	out := make([]byte, len(ciphertext))

	prev := make([]byte, BlockSize)
	copy(prev, iv)
	var block [BlockSize]byte
	for i := 0; i < len(ciphertext); i += BlockSize {
		if err := c.Decrypt(block[:], ciphertext[i:i+BlockSize]); err != nil {
			return nil, err
		}
		xorBytes(out[i:i+BlockSize], prev, block[:])
		prev = ciphertext[i : i+BlockSize]
	}
	return unpad(out)
}

// EncryptCFB encrypts plaintext under cipher-feedback mode. No padding:
// the final partial block is XOR-only.
func EncryptCFB(c *Cipher, iv, plaintext []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))

	buf := make([]byte, BlockSize)
	copy(buf, iv)
	var ks [BlockSize]byte
	full := len(plaintext) / BlockSize
	rem := len(plaintext) % BlockSize

	for i := 0; i < full; i++ {
		if err := c.Encrypt(ks[:], buf); err != nil {
			return nil, err
		}
		off := i * BlockSize
		xorBytes(out[off:off+BlockSize], ks[:], plaintext[off:off+BlockSize])
		copy(buf, out[off:off+BlockSize])
	}
	if rem > 0 {
		if err := c.Encrypt(ks[:], buf); err != nil {
			return nil, err
		}
		off := full * BlockSize
		for i := 0; i < rem; i++ {
			out[off+i] = plaintext[off+i] ^ ks[i]
		}
	}
	return out, nil
}

// DecryptCFB decrypts ciphertext produced by EncryptCFB. The cipher
// operates in encrypt direction throughout, matching CFB's structure where
// the feedback register is always the previous ciphertext block.
func DecryptCFB(c *Cipher, iv, ciphertext []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))

	buf := make([]byte, BlockSize)
	copy(buf, iv)
	var ks [BlockSize]byte
	full := len(ciphertext) / BlockSize
	rem := len(ciphertext) % BlockSize

	for i := 0; i < full; i++ {
		if err := c.Encrypt(ks[:], buf); err != nil {
			return nil, err
		}
		off := i * BlockSize
		xorBytes(out[off:off+BlockSize], ks[:], ciphertext[off:off+BlockSize])
		copy(buf, ciphertext[off:off+BlockSize])
	}
	if rem > 0 {
		if err := c.Encrypt(ks[:], buf); err != nil {
			return nil, err
		}
		off := full * BlockSize
		for i := 0; i < rem; i++ {
			out[off+i] = ciphertext[off+i] ^ ks[i]
		}
	}
	return out, nil
}

// EncryptOFB encrypts plaintext under output-feedback mode. No padding;
// encryption and decryption are the same operation.
func EncryptOFB(c *Cipher, iv, plaintext []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))

	buf := make([]byte, BlockSize)
	copy(buf, iv)
	full := len(plaintext) / BlockSize
	rem := len(plaintext) % BlockSize

	for i := 0; i < full; i++ {
		if err := c.Encrypt(buf, buf); err != nil {
			return nil, err
		}
		off := i * BlockSize
		xorBytes(out[off:off+BlockSize], buf, plaintext[off:off+BlockSize])
	}
	if rem > 0 {
		if err := c.Encrypt(buf, buf); err != nil {
			return nil, err
		}
		off := full * BlockSize
		for i := 0; i < rem; i++ {
			out[off+i] = plaintext[off+i] ^ buf[i]
		}
	}
	return out, nil
}

// DecryptOFB decrypts ciphertext produced by EncryptOFB.
func DecryptOFB(c *Cipher, iv, ciphertext []byte) ([]byte, error) {
	return EncryptOFB(c, iv, ciphertext)
}

// incrementCounter increments a 16-byte big-endian counter in place, with
// carry propagating from the low byte.
func incrementCounter(buf []byte) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i]++
		if buf[i] != 0 {
			break
		}
	}
}

// EncryptCTR encrypts plaintext under counter mode. No padding; encryption
// and decryption are the same operation.
func EncryptCTR(c *Cipher, iv, plaintext []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))

	counter := make([]byte, BlockSize)
	copy(counter, iv)
	var ks [BlockSize]byte
	full := len(plaintext) / BlockSize
	rem := len(plaintext) % BlockSize

	for i := 0; i < full; i++ {
		if err := c.Encrypt(ks[:], counter); err != nil {
			return nil, err
		}
		off := i * BlockSize
		xorBytes(out[off:off+BlockSize], ks[:], plaintext[off:off+BlockSize])
		incrementCounter(counter)
	}
	if rem > 0 {
		if err := c.Encrypt(ks[:], counter); err != nil {
			return nil, err
		}
		off := full * BlockSize
		for i := 0; i < rem; i++ {
			out[off+i] = plaintext[off+i] ^ ks[i]
		}
	}
	return out, nil
}

// DecryptCTR decrypts ciphertext produced by EncryptCTR.
func DecryptCTR(c *Cipher, iv, ciphertext []byte) ([]byte, error) {
	return EncryptCTR(c, iv, ciphertext)
}
