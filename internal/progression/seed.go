package progression

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// NewSeed returns a seed for the shuffle source, preferring the OS
// entropy pool and falling back to the wall clock if it is unavailable.
func NewSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
