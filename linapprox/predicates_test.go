package linapprox

import (
	"math/rand"
	"testing"

	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"
)

// fixedStore is a minimal PairStore backed by plaintext/ciphertext
// halves generated directly, without going through the feal4 package
// (which imports this one).
type fixedStore struct {
	l0, r0, l4, r4 []uint32
}

func (s *fixedStore) PLeft(i int) uint32  { return s.l0[i] }
func (s *fixedStore) PRight(i int) uint32 { return s.r0[i] }
func (s *fixedStore) CLeft(i int) uint32  { return s.l4[i] }
func (s *fixedStore) CRight(i int) uint32 { return s.r4[i] }

func generateStore(k cipher.Subkeys, n int, seed int64) *fixedStore {
	rng := rand.New(rand.NewSource(seed))
	s := &fixedStore{
		l0: make([]uint32, n),
		r0: make([]uint32, n),
		l4: make([]uint32, n),
		r4: make([]uint32, n),
	}
	for i := 0; i < n; i++ {
		p := cipher.Block{Left: rng.Uint32(), Right: rng.Uint32()}
		c := cipher.Encrypt(p, k)
		s.l0[i], s.r0[i] = p.Left, p.Right
		s.l4[i], s.r4[i] = c.Left, c.Right
	}
	return s
}

// TestPredicatesAgreeUnderTrueKey checks the defining property of every
// predicate pair: evaluated with the true subkey, each returns the same
// parity bit on every pair in the store.
func TestPredicatesAgreeUnderTrueKey(t *testing.T) {
	k := cipher.Subkeys{0x01020304, 0x05060708, 0x090a0b0c, 0x0d0e0f10, 0x11121314, 0x15161718}
	store := generateStore(k, 64, 42)

	checks := []struct {
		name string
		pred func(i int) uint8
	}{
		{"InnerK0", InnerK0(store, k[0])},
		{"OuterK0", OuterK0(store, k[0])},
		{"InnerK1", InnerK1(store, k[0], k[1])},
		{"OuterK1", OuterK1(store, k[0], k[1])},
		{"InnerK2", InnerK2(store, k[0], k[1], k[2])},
		{"OuterK2", OuterK2(store, k[0], k[1], k[2])},
		{"InnerK3", InnerK3(store, k[0], k[1], k[2], k[3])},
		{"OuterK3", OuterK3(store, k[0], k[1], k[2], k[3])},
	}

	for _, c := range checks {
		want := c.pred(0)
		for i := 1; i < 64; i++ {
			if got := c.pred(i); got != want {
				t.Fatalf("%s: pair %d = %d, want %d (agreement with pair 0 under true key)", c.name, i, got, want)
			}
		}
	}
}

func TestBitHelpers(t *testing.T) {
	v := uint32(0x80000001)

	if got := B(v, 0); got != 1 {
		t.Fatalf("B(v, 0) = %d, want 1 (MSB)", got)
	}
	if got := B(v, 31); got != 1 {
		t.Fatalf("B(v, 31) = %d, want 1 (LSB)", got)
	}
	if got := B(v, 1); got != 0 {
		t.Fatalf("B(v, 1) = %d, want 0", got)
	}

	if got := B3(v, 0, 1, 31); got != 0 {
		t.Fatalf("B3(v, 0, 1, 31) = %d, want 0", got)
	}
	if got := B4(v, 0, 1, 2, 31); got != 0 {
		t.Fatalf("B4(v, 0, 1, 2, 31) = %d, want 0", got)
	}
}
