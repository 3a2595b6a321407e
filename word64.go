//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package mrxhash

// Accumulator constants for 64 bit words. The multiplier is taken
// from L'Ecuyer's tables of multipliers with good lattice structure.
// The rotation is the integer nearest to 64/phi that is coprime to
// 64, so repeated absorbs cycle the rotation offset through all bit
// positions.
const (
	mul uint = 0x2545f4914f6cdd1d
	rot      = 41
)

// loadWord reads one machine word in native byte order.
func loadWord[B []byte | string](buf B) uint {
	if bigEndian {
		return uint(buf[7]) |
			uint(buf[6])<<8 |
			uint(buf[5])<<16 |
			uint(buf[4])<<24 |
			uint(buf[3])<<32 |
			uint(buf[2])<<40 |
			uint(buf[1])<<48 |
			uint(buf[0])<<56
	}
	// go compiler recognizes this pattern
	// and optimizes it on little endian platforms
	return uint(buf[0]) |
		uint(buf[1])<<8 |
		uint(buf[2])<<16 |
		uint(buf[3])<<24 |
		uint(buf[4])<<32 |
		uint(buf[5])<<40 |
		uint(buf[6])<<48 |
		uint(buf[7])<<56
}

// WriteUint64 absorbs a 64 bit value as one machine word.
func (h *Hash) WriteUint64(i uint64) {
	h.WriteUint(uint(i))
}
