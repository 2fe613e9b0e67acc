package random

import (
	"crypto/sha256"
	"encoding/binary"
)

// InsecureDeterministic is a repeatable byte stream for tests and fixtures.
// It expands a seed with SHA-256 in counter mode. It is not a source of
// entropy; never use it to generate production keys.
type InsecureDeterministic struct {
	seed []byte
	ctr  uint64
	buf  []byte
}

// NewInsecureDeterministic returns a stream that replays the same bytes for
// the same seed.
func NewInsecureDeterministic(seed []byte) *InsecureDeterministic {
	s := make([]byte, len(seed))
	copy(s, seed)
	return &InsecureDeterministic{seed: s}
}

// Read implements io.Reader. It never fails.
func (r *InsecureDeterministic) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			block := make([]byte, 0, len(r.seed)+8)
			block = append(block, r.seed...)
			block = binary.BigEndian.AppendUint64(block, r.ctr)
			sum := sha256.Sum256(block)
			r.buf = sum[:]
			r.ctr++
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}
