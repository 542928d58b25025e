package feal4

import "github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"

// Pair is a known plaintext/ciphertext block encrypted under the same
// unknown key. Pairs are immutable once loaded.
type Pair struct {
	Plaintext  cipher.Block
	Ciphertext cipher.Block
}
