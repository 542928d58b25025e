package feal4

import (
	"golang.org/x/crypto/blake2b"

	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"
)

// Corpus is an ordered, read-only-after-construction sequence of known
// plaintext/ciphertext pairs, all encrypted under the same unknown key.
// It replaces the global, parallel-array pair store with a single
// value-typed slice owned by whoever constructs it.
type Corpus struct {
	pairs []Pair
}

// NewCorpus wraps an already-loaded slice of pairs. The slice is not
// copied; callers must not mutate it afterwards.
func NewCorpus(pairs []Pair) *Corpus {
	return &Corpus{pairs: pairs}
}

// Count returns the number of pairs in the corpus.
func (c *Corpus) Count() int {
	return len(c.pairs)
}

// Pair returns the i'th pair. The search never calls this with an
// out-of-range index; callers that might should check Count first.
func (c *Corpus) Pair(i int) Pair {
	return c.pairs[i]
}

// PLeft, PRight, CLeft, CRight return the four 32-bit halves of pair i,
// matching the pair-store contract of spec.md §4.2.
func (c *Corpus) PLeft(i int) uint32  { return c.pairs[i].Plaintext.Left }
func (c *Corpus) PRight(i int) uint32 { return c.pairs[i].Plaintext.Right }
func (c *Corpus) CLeft(i int) uint32  { return c.pairs[i].Ciphertext.Left }
func (c *Corpus) CRight(i int) uint32 { return c.pairs[i].Ciphertext.Right }

// Fingerprint returns a BLAKE2b-256 digest of the corpus's big-endian
// byte representation. It has no bearing on search correctness; it
// exists so the startup log line can distinguish two files that happen
// to share a name but not contents.
func (c *Corpus) Fingerprint() [32]byte {
	h, _ := blake2b.New256(nil) // New256 with a nil key never errors
	for _, p := range c.pairs {
		pb := cipher.EncodeBlock(p.Plaintext)
		cb := cipher.EncodeBlock(p.Ciphertext)
		h.Write(pb[:])
		h.Write(cb[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
