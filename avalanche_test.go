package mrxhash_test

import (
	"math/bits"
	"slices"
	"testing"

	"github.com/graph-guard/mrxhash"
)

// TestWindowCollisions exhaustively checks digest dispersion for
// small keys: for every 8 bit window of the input word (all other
// bits held at zero) and every contiguous 16 bit window of the
// digest, the 256 possible inputs must produce at most one colliding
// pair of window values.
//
// Multiply-rotate accumulators without a widening finalizer fail this
// check badly for high input windows, where the multiply alone never
// propagates bits downwards.
func TestWindowCollisions(t *testing.T) {
	const inBits, outWin = 8, 16

	// On 32 bit targets the upper digest half is zero.
	outBits := 64
	if bits.UintSize == 32 {
		outBits = 32
	}

	var digests [1 << inBits]uint64
	for shift := 0; shift <= bits.UintSize-inBits; shift++ {
		for v := range digests {
			digests[v] = mrxhash.Sum64Uint(uint(v) << shift)
		}
		for out := 0; out+outWin <= outBits; out++ {
			var window [1 << inBits]uint16
			for v, d := range digests {
				window[v] = uint16(d >> out)
			}
			slices.Sort(window[:])
			collisions := 0
			for i := 1; i < len(window); i++ {
				if window[i] == window[i-1] {
					collisions++
				}
			}
			if collisions > 1 {
				t.Errorf(
					"input bits %d..%d, output bits %d..%d: "+
						"%d colliding pairs",
					shift, shift+inBits, out, out+outWin, collisions,
				)
			}
		}
	}
}
