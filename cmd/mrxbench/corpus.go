package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"math/rand/v2"

	"github.com/klauspost/compress/zstd"
)

//go:embed words.txt.zst
var wordsZst []byte

// readWords decompresses the embedded word corpus,
// one lowercase word per line.
func readWords() ([][]byte, error) {
	d, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	raw, err := d.DecodeAll(wordsZst, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing word corpus: %w", err)
	}
	var words [][]byte
	for _, w := range bytes.Split(raw, []byte("\n")) {
		if len(w) > 0 {
			words = append(words, w)
		}
	}
	return words, nil
}

func fillUints(rnd *rand.Rand, dst []uint64) {
	for i := range dst {
		dst[i] = rnd.Uint64()
	}
}

func fillBytes(rnd *rand.Rand, dst [][]byte, size int) {
	for i := range dst {
		k := make([]byte, size)
		for j := range k {
			k[j] = byte(rnd.IntN(256))
		}
		dst[i] = k
	}
}

func fillWords(rnd *rand.Rand, dst, corpus [][]byte) {
	for i := range dst {
		dst[i] = corpus[rnd.IntN(len(corpus))]
	}
}
