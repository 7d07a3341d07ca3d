package sm2

import (
	"encoding/binary"

	"github.com/yueliang-sec/gmsm/sm3"
)

// kdf derives outLen bytes from seed by concatenating H256(seed||counter)
// for counter = 1, 2, ..., ceil(outLen/32), truncated to outLen bytes. This
// follows the standard definition; the source material's length-loop
// computes its block count with an operator-precedence bug
// (data.len() + 31 / 32, due to '/' binding tighter than '+') that this
// implementation deliberately does not reproduce.
func kdf(seed []byte, outLen int) []byte {
	out := make([]byte, 0, outLen+sm3.Size)
	var ctr [4]byte
	for counter := uint32(1); len(out) < outLen; counter++ {
		binary.BigEndian.PutUint32(ctr[:], counter)
		block := append(append([]byte{}, seed...), ctr[:]...)
		digest := sm3.Sum256(block)
		out = append(out, digest[:]...)
	}
	return out[:outLen]
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
