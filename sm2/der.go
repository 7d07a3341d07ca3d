package sm2

import (
	"encoding/hex"
	"math/big"

	"github.com/yueliang-sec/gmsm/gmerr"
)

// EncodeDER encodes sig as a minimal ASN.1 SEQUENCE of two INTEGERs,
// returned as lowercase hex.
func (sig *Signature) EncodeDER() string {
	r := encodeASN1Integer(sig.R)
	s := encodeASN1Integer(sig.S)

	body := make([]byte, 0, len(r)+len(s))
	body = append(body, r...)
	body = append(body, s...)

	out := make([]byte, 0, len(body)+4)
	out = append(out, 0x30)
	out = append(out, encodeLength(len(body))...)
	out = append(out, body...)

	return hex.EncodeToString(out)
}

// ParseDER decodes a minimal two-INTEGER DER SEQUENCE signature. It does
// not enforce canonical length encoding; a stricter caller may want to
// reject non-minimal length octets, but the base behavior here accepts
// them.
func ParseDER(sigHex string) (*Signature, error) {
	b, err := hex.DecodeString(sigHex)
	if err != nil {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.ParseDER", "signature is not valid hex")
	}

	rest, ok := expectTag(b, 0x30)
	if !ok {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.ParseDER", "missing SEQUENCE tag")
	}
	body, _, ok := readLength(rest)
	if !ok {
		return nil, gmerr.New(gmerr.MalformedInput, "sm2.ParseDER", "bad SEQUENCE length")
	}

	r, rem, err := readInteger(body)
	if err != nil {
		return nil, err
	}
	s, _, err := readInteger(rem)
	if err != nil {
		return nil, err
	}

	return &Signature{R: r, S: s}, nil
}

func encodeASN1Integer(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	out := []byte{0x02}
	out = append(out, encodeLength(len(b))...)
	return append(out, b...)
}

func encodeLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var lenBytes []byte
	for n > 0 {
		lenBytes = append([]byte{byte(n & 0xff)}, lenBytes...)
		n >>= 8
	}
	return append([]byte{0x80 | byte(len(lenBytes))}, lenBytes...)
}

func expectTag(b []byte, tag byte) ([]byte, bool) {
	if len(b) < 1 || b[0] != tag {
		return nil, false
	}
	return b[1:], true
}

// readLength reads a DER length octet (short or long form) and returns the
// value's bytes, the bytes following the value, and success.
func readLength(b []byte) (value, rest []byte, ok bool) {
	if len(b) < 1 {
		return nil, nil, false
	}
	first := b[0]
	if first&0x80 == 0 {
		n := int(first)
		if len(b) < 1+n {
			return nil, nil, false
		}
		return b[1 : 1+n], b[1+n:], true
	}
	numLenBytes := int(first &^ 0x80)
	if numLenBytes == 0 || len(b) < 1+numLenBytes {
		return nil, nil, false
	}
	n := 0
	for _, bb := range b[1 : 1+numLenBytes] {
		n = n<<8 | int(bb)
	}
	if len(b) < 1+numLenBytes+n {
		return nil, nil, false
	}
	start := 1 + numLenBytes
	return b[start : start+n], b[start+n:], true
}

func readInteger(b []byte) (*big.Int, []byte, error) {
	rest, ok := expectTag(b, 0x02)
	if !ok {
		return nil, nil, gmerr.New(gmerr.MalformedInput, "sm2.ParseDER", "expected INTEGER tag")
	}
	value, after, ok := readLength(rest)
	if !ok {
		return nil, nil, gmerr.New(gmerr.MalformedInput, "sm2.ParseDER", "bad INTEGER length")
	}
	return new(big.Int).SetBytes(value), after, nil
}
