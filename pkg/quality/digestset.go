package quality

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// DigestSet tracks distinct digests over a key corpus. It is backed
// by a compressed bitmap, so feeding hundreds of millions of digests
// stays within reasonable memory.
//
// A DigestSet must not be mutated concurrently.
type DigestSet struct {
	set   *roaring64.Bitmap
	total uint64
}

func NewDigestSet() *DigestSet {
	return &DigestSet{set: roaring64.New()}
}

// Add records one digest.
func (s *DigestSet) Add(digest uint64) {
	s.set.Add(digest)
	s.total++
}

// Total returns the number of recorded digests.
func (s *DigestSet) Total() uint64 {
	return s.total
}

// Distinct returns the number of distinct recorded digests.
func (s *DigestSet) Distinct() uint64 {
	return s.set.GetCardinality()
}

// Collisions returns the number of recorded digests that were
// already produced by an earlier key.
func (s *DigestSet) Collisions() uint64 {
	return s.total - s.set.GetCardinality()
}
