package linapprox

import (
	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"
	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/subkey"
)

// PairStore is the read-only slice of the pair-store contract the
// predicates need: the four 32-bit halves of a pair, addressed by
// index. *feal4.Corpus satisfies this without this package importing
// feal4 (feal4 imports linapprox, not the other way round).
type PairStore interface {
	PLeft(i int) uint32
	PRight(i int) uint32
	CLeft(i int) uint32
	CRight(i int) uint32
}

func halves(s PairStore, i int) (l0, r0, l4, r4 uint32) {
	return s.PLeft(i), s.PRight(i), s.CLeft(i), s.CRight(i)
}

// InnerK0 and OuterK0 are the level-K0 predicates of spec.md §4.4,
// evaluated with guess standing in for the full K0 candidate (K0 has no
// confirmed prefix).
func InnerK0(s PairStore, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, r4 := halves(s, i)
		return B3(l0^r0^l4, 5, 13, 21) ^
			B(l0^l4^r4, 15) ^
			B(cipher.F(l0^r0^guess), 15)
	}
}

func OuterK0(s PairStore, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, r4 := halves(s, i)
		return B(l0^r0^l4, 13) ^
			B4(l0^l4^r4, 7, 15, 23, 31) ^
			B4(cipher.F(l0^r0^guess), 7, 15, 23, 31)
	}
}

// InnerK1 and OuterK1 take the confirmed k0 and compute
// Y0 = F(L0 xor R0 xor k0) to feed into the K1 guess.
func InnerK1(s PairStore, k0, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, r4 := halves(s, i)
		y0 := cipher.F(l0 ^ r0 ^ k0)
		return B3(l0^l4^r4, 5, 13, 21) ^
			B(cipher.F(l0^y0^guess), 15)
	}
}

func OuterK1(s PairStore, k0, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, r4 := halves(s, i)
		y0 := cipher.F(l0 ^ r0 ^ k0)
		return B(l0^l4^r4, 13) ^
			B4(cipher.F(l0^y0^guess), 7, 15, 23, 31)
	}
}

// InnerK2 and OuterK2 take the confirmed (k0, k1) and compute
// Y0, Y1 to feed into the K2 guess.
func InnerK2(s PairStore, k0, k1, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, _ := halves(s, i)
		y0 := cipher.F(l0 ^ r0 ^ k0)
		y1 := cipher.F(l0 ^ y0 ^ k1)
		return B3(l0^r0^l4, 5, 13, 21) ^
			B(cipher.F(l0^r0^y1^guess), 15)
	}
}

func OuterK2(s PairStore, k0, k1, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, _ := halves(s, i)
		y0 := cipher.F(l0 ^ r0 ^ k0)
		y1 := cipher.F(l0 ^ y0 ^ k1)
		return B(l0^r0^l4, 13) ^
			B4(cipher.F(l0^r0^y1^guess), 7, 15, 23, 31)
	}
}

// InnerK3 and OuterK3 take the confirmed (k0, k1, k2) and compute
// Y0, Y1, Y2 to feed into the K3 guess.
func InnerK3(s PairStore, k0, k1, k2, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, r4 := halves(s, i)
		y0 := cipher.F(l0 ^ r0 ^ k0)
		y1 := cipher.F(l0 ^ y0 ^ k1)
		y2 := cipher.F(l0 ^ r0 ^ y1 ^ k2)
		return B3(l0^l4^r4, 5, 13, 21) ^
			B(l0^r0^l4, 15) ^
			B(cipher.F(l0^y0^y2^guess), 15)
	}
}

func OuterK3(s PairStore, k0, k1, k2, guess uint32) subkey.Predicate {
	return func(i int) uint8 {
		l0, r0, l4, r4 := halves(s, i)
		y0 := cipher.F(l0 ^ r0 ^ k0)
		y1 := cipher.F(l0 ^ y0 ^ k1)
		y2 := cipher.F(l0 ^ r0 ^ y1 ^ k2)
		return B(l0^l4^r4, 13) ^
			B4(l0^r0^l4, 7, 15, 23, 31) ^
			B4(cipher.F(l0^y0^y2^guess), 7, 15, 23, 31)
	}
}
