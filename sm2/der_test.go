package sm2

import (
	"math/big"
	"testing"
)

func TestDEREncodeParseRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		r, s *big.Int
	}{
		{"small", big.NewInt(1), big.NewInt(2)},
		{"high-bit-set", new(big.Int).SetBytes([]byte{0xff, 0x01, 0x02}), new(big.Int).SetBytes([]byte{0x80})},
		{"full-width", mustBig("6aea1ccf610488aaa7fddba3dd6d76d3bdfd50f957d847be3d453defb695f28e"), mustBig("a8af64e38eea41c254df769b5b41fbaa2d77b226b301a2636d463c52b46c777")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sig := &Signature{R: c.r, S: c.s}
			encoded := sig.EncodeDER()

			got, err := ParseDER(encoded)
			if err != nil {
				t.Fatalf("ParseDER: %v", err)
			}
			if got.R.Cmp(c.r) != 0 || got.S.Cmp(c.s) != 0 {
				t.Fatalf("round trip mismatch: got r=%x s=%x, want r=%x s=%x", got.R, got.S, c.r, c.s)
			}
		})
	}
}

func mustBig(hexStr string) *big.Int {
	v, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("bad test hex literal")
	}
	return v
}

func TestParseDERRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"00",
		"3000",
		"3003020101",
	}
	for _, c := range cases {
		if _, err := ParseDER(c); err == nil {
			t.Fatalf("ParseDER(%q) unexpectedly succeeded", c)
		}
	}
}

func TestSignProducesParsableDER(t *testing.T) {
	priv, pub := testKeyPair(t)
	msg := []byte("der encoding smoke test")

	sig, err := Sign(priv, pub, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	encoded := sig.EncodeDER()
	parsed, err := ParseDER(encoded)
	if err != nil {
		t.Fatalf("ParseDER: %v", err)
	}
	if !Verify(pub, msg, parsed, nil) {
		t.Fatalf("signature recovered from DER failed to verify")
	}
}
