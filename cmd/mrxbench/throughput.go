package main

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/dustin/go-humanize"
	"github.com/graph-guard/mrxhash"
	"github.com/graph-guard/mrxhash/pkg/cli"
	"github.com/graph-guard/mrxhash/pkg/stats"
	"github.com/graph-guard/mrxhash/pkg/suite"
	"github.com/phuslu/log"
	"github.com/pierrec/xxHash/xxHash64"
	"github.com/zeebo/xxh3"
)

// sink keeps the hot loops from being optimized away.
var sink uint64

type hasher struct {
	name    string
	sum     func([]byte) uint64
	sumUint func(uint64) uint64
}

func hashers() []hasher {
	xxh64 := xxHash64.New(0)
	return []hasher{
		{
			name:    "mrx",
			sum:     mrxhash.Sum64[[]byte],
			sumUint: mrxhash.Sum64Uint64,
		},
		{
			name: "xxh64",
			sum: func(key []byte) uint64 {
				xxh64.Reset()
				_, _ = xxh64.Write(key)
				return xxh64.Sum64()
			},
			sumUint: func(key uint64) uint64 {
				var b [8]byte
				binary.NativeEndian.PutUint64(b[:], key)
				xxh64.Reset()
				_, _ = xxh64.Write(b[:])
				return xxh64.Sum64()
			},
		},
		{
			name: "xxh3",
			sum:  xxh3.Hash,
			sumUint: func(key uint64) uint64 {
				var b [8]byte
				binary.NativeEndian.PutUint64(b[:], key)
				return xxh3.Hash(b[:])
			},
		},
	}
}

// runThroughput hashes the suite's enabled shapes with every hasher
// and reports key and byte rates.
func runThroughput(w io.Writer, c cli.CommandThroughput) {
	s := ReadSuite(w, c.SuiteDirPath)
	if s == nil {
		return
	}

	l := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.IOWriter{Writer: w},
	}
	l.Context = log.NewContext(nil).Str("suite", s.Name).Value()

	hs := hashers()

	var corpus [][]byte
	for _, sh := range s.ShapesEnabled {
		if sh.Kind == suite.KindWords {
			ws, err := readWords()
			if err != nil {
				l.Error().Err(err).Msg("reading word corpus")
				return
			}
			corpus = ws
			break
		}
	}

	totalBatches := 0
	for _, sh := range s.ShapesEnabled {
		totalBatches += batchCount(sh.Keys, s.BatchSize) * len(hs)
	}

	l.Info().
		Uint64("seed", s.Seed).
		Int("batchSize", s.BatchSize).
		Int("shapes", len(s.ShapesEnabled)).
		Msg("running throughput suite")

	bar := pb.New(totalBatches)
	bar.Output = os.Stderr
	bar.ShowSpeed = true
	bar.Start()
	for _, sh := range s.ShapesEnabled {
		runShape(l, s, sh, hs, corpus, bar)
	}
	bar.Finish()
}

func runShape(
	l log.Logger,
	s *suite.Suite,
	sh *suite.Shape,
	hs []hasher,
	corpus [][]byte,
	bar *pb.ProgressBar,
) {
	rnd := rand.New(rand.NewPCG(s.Seed, s.Seed))
	gen := stats.NewShapeSync()

	switch sh.Kind {
	case suite.KindUint64:
		keys := make([]uint64, sh.Keys)
		generateBatches(len(keys), s.BatchSize, gen, func(off, end int) {
			fillUints(rnd, keys[off:end])
		})
		logGenerated(l, sh, gen)
		for i := range hs {
			run := stats.NewRunSync()
			start := time.Now()
			hashBatches(
				keys, s.BatchSize, run, bar, hs[i].sumUint,
				func(uint64) int { return 8 },
			)
			logRun(l, sh, hs[i].name, run, time.Since(start))
		}

	case suite.KindBytes, suite.KindWords:
		keys := make([][]byte, sh.Keys)
		generateBatches(len(keys), s.BatchSize, gen, func(off, end int) {
			if sh.Kind == suite.KindBytes {
				fillBytes(rnd, keys[off:end], sh.Size)
			} else {
				fillWords(rnd, keys[off:end], corpus)
			}
		})
		logGenerated(l, sh, gen)
		for i := range hs {
			run := stats.NewRunSync()
			start := time.Now()
			hashBatches(
				keys, s.BatchSize, run, bar, hs[i].sum,
				func(k []byte) int { return len(k) },
			)
			logRun(l, sh, hs[i].name, run, time.Since(start))
		}
	}
}

func generateBatches(
	n, batchSize int,
	gen *stats.ShapeSync,
	fill func(off, end int),
) {
	for off := 0; off < n; off += batchSize {
		end := min(off+batchSize, n)
		start := time.Now()
		fill(off, end)
		gen.Update(time.Since(start))
	}
}

// hashBatches feeds keys to sum in batches of batchSize,
// timing the hash loop only.
func hashBatches[K any](
	keys []K,
	batchSize int,
	run *stats.RunSync,
	bar *pb.ProgressBar,
	sum func(K) uint64,
	size func(K) int,
) {
	for off := 0; off < len(keys); off += batchSize {
		end := min(off+batchSize, len(keys))
		b := keys[off:end]
		start := time.Now()
		for i := range b {
			sink ^= sum(b[i])
		}
		batchTime := time.Since(start)
		var n int
		for i := range b {
			n += size(b[i])
		}
		run.Update(len(b), n, batchTime)
		bar.Increment()
	}
}

func batchCount(keys, batchSize int) int {
	return (keys + batchSize - 1) / batchSize
}

func logGenerated(l log.Logger, sh *suite.Shape, gen *stats.ShapeSync) {
	l.Info().
		Str("shape", sh.ID).
		Str("kind", string(sh.Kind)).
		Int64("batches", gen.GetBatches()).
		Dur("highestBatch", time.Duration(gen.GetHighestBatchTime())).
		Dur("averageBatch", time.Duration(gen.GetAverageBatchTime())).
		Msg("keys generated")
}

func logRun(
	l log.Logger,
	sh *suite.Shape,
	hasherName string,
	run *stats.RunSync,
	wall time.Duration,
) {
	keys := run.GetHashedKeys()
	hashedBytes := run.GetHashedBytes()
	keyRate := int64(float64(keys) / wall.Seconds())
	byteRate := uint64(float64(hashedBytes) / wall.Seconds())
	l.Info().
		Str("shape", sh.ID).
		Str("hasher", hasherName).
		Str("keys", humanize.Comma(keys)).
		Str("hashed", humanize.Bytes(uint64(hashedBytes))).
		Str("keyRate", humanize.Comma(keyRate)+" keys/s").
		Str("byteRate", humanize.Bytes(byteRate)+"/s").
		Dur("highestBatch", time.Duration(run.GetHighestBatchTime())).
		Dur("averageBatch", time.Duration(run.GetAverageBatchTime())).
		Msg("hashed")
}
