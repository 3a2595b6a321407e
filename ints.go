package mrxhash

// Fixed width absorbs. Values narrower than a machine word are zero
// extended. Signed values absorb as their unsigned bit pattern, so a
// signed and an unsigned write of the same width and value hash
// equally.

func (h *Hash) WriteUint8(i uint8)   { h.WriteUint(uint(i)) }
func (h *Hash) WriteUint16(i uint16) { h.WriteUint(uint(i)) }
func (h *Hash) WriteUint32(i uint32) { h.WriteUint(uint(i)) }

// WriteUint128 absorbs a 128 bit value given as two 64 bit halves,
// low half first.
func (h *Hash) WriteUint128(lo, hi uint64) {
	h.WriteUint64(lo)
	h.WriteUint64(hi)
}

func (h *Hash) WriteInt8(i int8)   { h.WriteUint8(uint8(i)) }
func (h *Hash) WriteInt16(i int16) { h.WriteUint16(uint16(i)) }
func (h *Hash) WriteInt32(i int32) { h.WriteUint32(uint32(i)) }
func (h *Hash) WriteInt64(i int64) { h.WriteUint64(uint64(i)) }
func (h *Hash) WriteInt(i int)     { h.WriteUint(uint(i)) }

// WriteUintptr absorbs a pointer sized value as one machine word.
func (h *Hash) WriteUintptr(p uintptr) { h.WriteUint(uint(p)) }

// Sum64Uint returns the 64 bit hash of a single machine word.
func Sum64Uint(i uint) uint64 {
	var h Hash
	h.WriteUint(i)
	return h.Sum64()
}

// Sum64Uint64 returns the 64 bit hash of a single 64 bit value.
func Sum64Uint64(i uint64) uint64 {
	var h Hash
	h.WriteUint64(i)
	return h.Sum64()
}
