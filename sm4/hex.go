package sm4

import (
	"encoding/hex"

	"github.com/yueliang-sec/gmsm/gmerr"
)

// Mode names one of the five standard B128 modes of operation.
type Mode string

const (
	ModeECB Mode = "ECB"
	ModeCBC Mode = "CBC"
	ModeCFB Mode = "CFB"
	ModeOFB Mode = "OFB"
	ModeCTR Mode = "CTR"
)

func decodeKeyIV(keyHex, ivHex string) (key, iv []byte, err error) {
	key, err = hex.DecodeString(keyHex)
	if err != nil || len(key) != KeySize {
		return nil, nil, gmerr.New(gmerr.MalformedInput, "sm4", "key must be 32 hex characters")
	}
	if ivHex == "" {
		return key, nil, nil
	}
	iv, err = hex.DecodeString(ivHex)
	if err != nil || len(iv) != BlockSize {
		return nil, nil, gmerr.New(gmerr.MalformedInput, "sm4", "iv must be 32 hex characters")
	}
	return key, iv, nil
}

// EncryptHex drives the named mode over plaintext, given a 32-hex-character
// key and (for every mode but ECB) a 32-hex-character IV. The result is
// lowercase hex.
func EncryptHex(mode Mode, keyHex, ivHex string, plaintext []byte) (string, error) {
	key, iv, err := decodeKeyIV(keyHex, ivHex)
	if err != nil {
		return "", err
	}
	c, err := NewCipher(key)
	if err != nil {
		return "", err
	}

	var out []byte
	switch mode {
	case ModeECB:
		out, err = EncryptECB(c, plaintext)
	case ModeCBC:
		out, err = EncryptCBC(c, iv, plaintext)
	case ModeCFB:
		out, err = EncryptCFB(c, iv, plaintext)
	case ModeOFB:
		out, err = EncryptOFB(c, iv, plaintext)
	case ModeCTR:
		out, err = EncryptCTR(c, iv, plaintext)
	default:
		return "", gmerr.New(gmerr.MalformedInput, "sm4.EncryptHex", "unknown mode "+string(mode))
	}
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(out), nil
}

// DecryptHex is the inverse of EncryptHex.
func DecryptHex(mode Mode, keyHex, ivHex, ciphertextHex string) ([]byte, error) {
	key, iv, err := decodeKeyIV(keyHex, ivHex)
	if err != nil {
		return nil, err
	}
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, gmerr.New(gmerr.MalformedInput, "sm4.DecryptHex", "ciphertext is not valid hex")
	}
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeECB:
		return DecryptECB(c, ciphertext)
	case ModeCBC:
		return DecryptCBC(c, iv, ciphertext)
	case ModeCFB:
		return DecryptCFB(c, iv, ciphertext)
	case ModeOFB:
		return DecryptOFB(c, iv, ciphertext)
	case ModeCTR:
		return DecryptCTR(c, iv, ciphertext)
	default:
		return nil, gmerr.New(gmerr.MalformedInput, "sm4.DecryptHex", "unknown mode "+string(mode))
	}
}
