package generator

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"
)

// RandomSeed draws a seed from crypto/rand, falling back to the wall clock
// if the system source is unavailable.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]))
}
