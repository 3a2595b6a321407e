// Package quality measures digest dispersion of 64 bit hash
// functions over small keys.
package quality

import (
	"context"
	"math/bits"
	"runtime"

	"github.com/yourbasic/bit"
	"golang.org/x/sync/errgroup"
)

// Hash64 hashes one machine word to a 64 bit digest.
type Hash64 func(word uint) uint64

const (
	// InputWindowBits is the width of the sliding input bit window.
	InputWindowBits = 8
	// OutputWindowBits is the width of the sliding digest bit window.
	OutputWindowBits = 16
)

// WindowReport holds the collision count of one combination of
// input and output bit windows.
type WindowReport struct {
	// InputShift is the bit offset of the input window
	// within the machine word.
	InputShift int
	// OutputShift is the bit offset of the output window
	// within the 64 bit digest.
	OutputShift int
	// Collisions is the number of inputs whose digest window value
	// was already produced by a smaller input.
	Collisions int
}

// ScanWindows feeds every value of every 8 bit input window (all
// other input bits held at zero) through hash and counts collisions
// on every contiguous 16 bit window of the digest. A well dispersed
// hash keeps Collisions at 0 or 1 for every window combination, while
// plain multiply-rotate accumulators collide massively wherever the
// multiply cannot propagate input bits down into the output window.
//
// Input shifts are scanned concurrently by at most parallelism
// goroutines; parallelism < 1 uses one goroutine per processor.
// Reports are ordered by (InputShift, OutputShift). Output windows
// stay within the low bits.UintSize digest bits: a 32 bit
// accumulator never populates the upper digest half, so every
// window up there would report nothing but full collisions.
func ScanWindows(
	ctx context.Context,
	hash Hash64,
	parallelism int,
) ([]WindowReport, error) {
	if parallelism < 1 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	shifts := bits.UintSize - InputWindowBits + 1
	results := make([][]WindowReport, shifts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for shift := 0; shift < shifts; shift++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[shift] = scanShift(hash, shift)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]WindowReport, 0, shifts*outWindows())
	for _, r := range results {
		reports = append(reports, r...)
	}
	return reports, nil
}

// outWindows is the number of output windows per input shift.
func outWindows() int {
	return bits.UintSize - OutputWindowBits + 1
}

func scanShift(hash Hash64, shift int) []WindowReport {
	var digests [1 << InputWindowBits]uint64
	for v := range digests {
		digests[v] = hash(uint(v) << shift)
	}

	reports := make([]WindowReport, 0, outWindows())
	for out := 0; out+OutputWindowBits <= bits.UintSize; out++ {
		seen := bit.New()
		collisions := 0
		for _, d := range digests {
			w := int(uint16(d >> out))
			if seen.Contains(w) {
				collisions++
				continue
			}
			seen.Add(w)
		}
		reports = append(reports, WindowReport{
			InputShift:  shift,
			OutputShift: out,
			Collisions:  collisions,
		})
	}
	return reports
}

// Worst returns the report with the highest collision count,
// the earliest window combination on ties.
func Worst(reports []WindowReport) (worst WindowReport) {
	for _, r := range reports {
		if r.Collisions > worst.Collisions {
			worst = r
		}
	}
	return worst
}
