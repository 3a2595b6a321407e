package mrxhash_test

import (
	"fmt"
	"testing"

	"github.com/graph-guard/mrxhash"

	"github.com/pierrec/xxHash/xxHash64"
	"github.com/zeebo/xxh3"
)

var GI uint64

func benchSizes() [][]byte {
	sizes := []int{3, 8, 16, 64, 256}
	data := make([][]byte, len(sizes))
	for i, s := range sizes {
		data[i] = make([]byte, s)
		for j := range data[i] {
			data[i][j] = byte(j*31 + 7)
		}
	}
	return data
}

func BenchmarkUint64(b *testing.B) {
	var h mrxhash.Hash
	for n := 0; n < b.N; n++ {
		h.Reset()
		h.WriteUint64(uint64(n))
		GI = h.Sum64()
	}
}

func BenchmarkBytes(b *testing.B) {
	for _, data := range benchSizes() {
		b.Run(fmt.Sprint(len(data)), func(b *testing.B) {
			var h mrxhash.Hash
			for n := 0; n < b.N; n++ {
				h.Reset()
				mrxhash.Write(&h, data)
				GI = h.Sum64()
			}
		})
	}
}

func BenchmarkBytesXXH64(b *testing.B) {
	for _, data := range benchSizes() {
		b.Run(fmt.Sprint(len(data)), func(b *testing.B) {
			h := xxHash64.New(0)
			for n := 0; n < b.N; n++ {
				h.Reset()
				_, _ = h.Write(data)
				GI = h.Sum64()
			}
		})
	}
}

func BenchmarkBytesXXH3(b *testing.B) {
	for _, data := range benchSizes() {
		b.Run(fmt.Sprint(len(data)), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				GI = xxh3.Hash(data)
			}
		})
	}
}
