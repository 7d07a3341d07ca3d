package sm4

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustCipher(t *testing.T, keyHex string) *Cipher {
	t.Helper()
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCBCRoundTripScenario6(t *testing.T) {
	c := mustCipher(t, "0123456789abcdeffedcba9876543210")
	iv, err := hex.DecodeString("0123456789abcdeffedcba9876543210")
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("Hello World, 哈罗，世界")
	ciphertext, err := EncryptCBC(c, iv, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	wantLen := ((len(plaintext) + 1 + BlockSize - 1) / BlockSize) * BlockSize
	if len(ciphertext) != wantLen {
		t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), wantLen)
	}

	got, err := DecryptCBC(c, iv, ciphertext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

func TestCBCRoundTripAndLength(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 16)
	iv := bytes.Repeat([]byte{0x02}, 16)
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("Hello World, 哈罗，世界")
	ciphertext, err := EncryptCBC(c, iv, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	wantLen := ((len(plaintext)+1)/BlockSize + boolToInt((len(plaintext)+1)%BlockSize != 0)) * BlockSize
	if len(ciphertext) != wantLen {
		t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), wantLen)
	}

	got, err := DecryptCBC(c, iv, ciphertext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestModeRoundTrips(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, 16)
	iv := bytes.Repeat([]byte{0xcd}, 16)
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}

	lengths := []int{0, 1, 15, 16, 17, 31, 32, 33, 100}
	for _, n := range lengths {
		plaintext := make([]byte, n)
		for i := range plaintext {
			plaintext[i] = byte(i * 7)
		}

		t.Run("ECB", func(t *testing.T) {
			if n == 0 {
				t.Skip("ECB always emits a full padding block; length 0 round trips to empty")
			}
			ct, err := EncryptECB(c, plaintext)
			if err != nil {
				t.Fatal(err)
			}
			pt, err := DecryptECB(c, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Fatalf("ECB n=%d round trip mismatch", n)
			}
		})
		t.Run("CBC", func(t *testing.T) {
			ct, err := EncryptCBC(c, iv, plaintext)
			if err != nil {
				t.Fatal(err)
			}
			pt, err := DecryptCBC(c, iv, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Fatalf("CBC n=%d round trip mismatch", n)
			}
		})
		t.Run("CFB", func(t *testing.T) {
			ct, err := EncryptCFB(c, iv, plaintext)
			if err != nil {
				t.Fatal(err)
			}
			pt, err := DecryptCFB(c, iv, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Fatalf("CFB n=%d round trip mismatch", n)
			}
			if len(ct) != n {
				t.Fatalf("CFB n=%d ciphertext length = %d, want %d (no padding)", n, len(ct), n)
			}
		})
		t.Run("OFB", func(t *testing.T) {
			ct, err := EncryptOFB(c, iv, plaintext)
			if err != nil {
				t.Fatal(err)
			}
			pt, err := DecryptOFB(c, iv, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Fatalf("OFB n=%d round trip mismatch", n)
			}
		})
		t.Run("CTR", func(t *testing.T) {
			ct, err := EncryptCTR(c, iv, plaintext)
			if err != nil {
				t.Fatal(err)
			}
			pt, err := DecryptCTR(c, iv, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Fatalf("CTR n=%d round trip mismatch", n)
			}
		})
	}
}

func TestCounterCarryPropagation(t *testing.T) {
	counter := make([]byte, BlockSize)
	for i := range counter {
		counter[i] = 0xff
	}
	incrementCounter(counter)
	for i, b := range counter {
		if b != 0x00 {
			t.Fatalf("byte %d = %#x, want 0x00 after full carry wraparound", i, b)
		}
	}

	counter2 := make([]byte, BlockSize)
	counter2[BlockSize-1] = 0xff
	incrementCounter(counter2)
	if counter2[BlockSize-1] != 0x00 || counter2[BlockSize-2] != 0x01 {
		t.Fatalf("single carry propagation failed: %x", counter2)
	}
}

func TestECBRejectsShortCiphertext(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 16)
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecryptECB(c, []byte{0x01, 0x02, 0x03}); err == nil {
		t.Fatal("expected error for non-block-sized ciphertext")
	}
}

func TestGenerateKeyAndIVShape(t *testing.T) {
	k := GenerateKey()
	if len(k) != 32 {
		t.Fatalf("GenerateKey() length = %d, want 32", len(k))
	}
	if _, err := hex.DecodeString(k); err != nil {
		t.Fatalf("GenerateKey() is not valid hex: %v", err)
	}

	iv := GenerateIV()
	if len(iv) != 32 {
		t.Fatalf("GenerateIV() length = %d, want 32", len(iv))
	}
	if iv == k {
		t.Fatalf("GenerateIV() collided with GenerateKey() (extraordinarily unlikely)")
	}
}

func TestEncryptHexDecryptHexRoundTrip(t *testing.T) {
	key := GenerateKey()
	iv := GenerateIV()
	plaintext := []byte("some plaintext data, not block aligned")

	ct, err := EncryptHex(ModeCBC, key, iv, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	pt, err := DecryptHex(ModeCBC, key, iv, ct)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("round trip = %q, want %q", pt, plaintext)
	}
}
