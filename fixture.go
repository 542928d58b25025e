package feal4

import (
	"math/rand"

	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"
)

// GenerateCorpus builds a synthetic corpus of n known plaintext/ciphertext
// pairs encrypted under k, for use by tests and benchmarks that need a
// corpus with a known answer. Plaintexts are drawn from a seeded PRNG so
// a given seed always reproduces the same corpus.
func GenerateCorpus(k cipher.Subkeys, n int, seed int64) *Corpus {
	rng := rand.New(rand.NewSource(seed))

	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		p := cipher.Block{Left: rng.Uint32(), Right: rng.Uint32()}
		c := cipher.Encrypt(p, k)
		pairs[i] = Pair{Plaintext: p, Ciphertext: c}
	}

	return NewCorpus(pairs)
}
