//go:build 386 || arm || mips || mipsle

package mrxhash

// Accumulator constants for 32 bit words, chosen like their 64 bit
// counterparts: an L'Ecuyer lattice multiplier and the rotation
// nearest to 32/phi that is coprime to 32.
const (
	mul uint = 0x2c9277b5
	rot      = 21
)

func loadWord[B []byte | string](buf B) uint {
	if bigEndian {
		return uint(buf[3]) |
			uint(buf[2])<<8 |
			uint(buf[1])<<16 |
			uint(buf[0])<<24
	}
	return uint(buf[0]) |
		uint(buf[1])<<8 |
		uint(buf[2])<<16 |
		uint(buf[3])<<24
}

// WriteUint64 absorbs a 64 bit value as two machine words, low word
// first.
func (h *Hash) WriteUint64(i uint64) {
	h.WriteUint(uint(uint32(i)))
	h.WriteUint(uint(uint32(i >> 32)))
}
