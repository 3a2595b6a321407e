// Package mrxhash provides a deterministic multiply-rotate-xor hash
// for hash table keys.
//
// The hash is not cryptographic and is deliberately not randomized:
// equal input produces an equal digest in every run of every process,
// on any target of the same word width and byte order. It must not be
// fed attacker controlled keys unless collision flooding is mitigated
// elsewhere. It is optimized for very small keys such as integers,
// pointers and short strings, where its wide multiply finalizer keeps
// digests well distributed at a fraction of the cost of a full block
// hash.
package mrxhash

import "math/bits"

// wordSize is the size of an accumulator word in bytes.
const wordSize = bits.UintSize / 8

// Hash is a hash accumulator of one machine word of state.
// The zero value is ready for use.
type Hash struct{ state uint }

// New returns a new accumulator in its initial state.
func New() Hash { return Hash{} }

// Reset restores the initial state.
func (h *Hash) Reset() { h.state = 0 }

// mix absorbs word i into state s.
//
// The input is xored in after the rotate instead of before, so the
// multiply and rotate of a known zero state on the first absorb can
// be constant folded away. The most recently absorbed word therefore
// sits in the state nearly unmixed, which Sum64 compensates for.
func mix(s, i uint) uint {
	return bits.RotateLeft(s*mul, -rot) ^ i
}

// WriteUint absorbs one machine word.
func (h *Hash) WriteUint(i uint) {
	h.state = mix(h.state, i)
}

// Write absorbs input into the hash.
//
// The input length is absorbed first as one machine word. Every full
// word of input follows in native byte order, left to right, and the
// trailing 0 to wordSize-1 bytes are zero padded to one final word
// which is absorbed even when input is empty. Inputs of different
// length therefore never collide through padding alone, and absorbing
// an empty slice still advances a non-zero state.
func Write[B []byte | string](h *Hash, input B) {
	s := mix(h.state, uint(len(input)))

	p := 0
	for n := len(input) - wordSize; p <= n; p += wordSize {
		s = mix(s, loadWord(input[p:][:wordSize]))
	}

	var tail uint
	if bigEndian {
		for i, sh := p, (wordSize-1)*8; i < len(input); i, sh = i+1, sh-8 {
			tail |= uint(input[i]) << sh
		}
	} else {
		for i, sh := p, 0; i < len(input); i, sh = i+1, sh+8 {
			tail |= uint(input[i]) << sh
		}
	}
	h.state = mix(s, tail)
}

// Sum64 returns the 64 bit hash value. It does not mutate the
// accumulator: absorbing and summing may be interleaved freely.
// On 32 bit targets the upper half of the result is zero.
func (h *Hash) Sum64() uint64 {
	hi, lo := bits.Mul(h.state, mul)
	return uint64(lo - hi)
}

// Sum64 returns the 64 bit hash of data.
func Sum64[B []byte | string](data B) uint64 {
	var h Hash
	Write(&h, data)
	return h.Sum64()
}
