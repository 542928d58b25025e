package feal4

import "github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"

// DeriveK4K5 computes the last two round subkeys algebraically from a
// confirmed (k0, k1, k2, k3) and a single pair, per spec.md §4.5. Pair
// 0 is what the cascaded search uses; a corrupted pair 0 would derive
// the wrong k4/k5, which is exactly what the full-corpus validation
// below is for.
func DeriveK4K5(l0, r0, l4, r4, k0, k1, k2, k3 uint32) (k4, k5 uint32) {
	y0 := cipher.F(l0 ^ r0 ^ k0)
	y1 := cipher.F(l0 ^ y0 ^ k1)
	y2 := cipher.F(l0 ^ r0 ^ y1 ^ k2)
	y3 := cipher.F(l0 ^ y0 ^ y2 ^ k3)

	k4 = l0 ^ r0 ^ y1 ^ y3 ^ l4
	k5 = r0 ^ y1 ^ y3 ^ y0 ^ y2 ^ r4
	return k4, k5
}

// ValidateFull decrypts every ciphertext in the corpus under k and
// accepts only if the recovered block equals the stored plaintext for
// every pair. A candidate that only agreed on pair 0 (or on whichever
// pairs the cascaded filters happened to see) is rejected here if it
// does not hold up across the whole corpus.
func ValidateFull(c *Corpus, k cipher.Subkeys) bool {
	for i := 0; i < c.Count(); i++ {
		p := c.Pair(i)
		if !cipher.Decrypt(p.Ciphertext, k).Equal(p.Plaintext) {
			return false
		}
	}
	return true
}
