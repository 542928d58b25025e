package feal4

import (
	"context"
	"sync"

	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"
	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/linapprox"
	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/subkey"
)

const (
	innerSpace = 1 << 12 // 4096 inner candidates per level
	outerSpace = 1 << 20 // 1,048,576 outer candidates per level
)

// Candidate is a confirmed prefix (k0..k3) carried down the recursion.
// Only the first `level` entries are meaningful at any given point.
type Candidate [4]uint32

// Search runs the cascaded K0->K1->K2->K3 enumeration against corpus,
// reporting every validated 6-subkey tuple to rep. The outermost K0
// outer-candidate loop is sharded across workers goroutines; each
// worker owns its own recursion-stack-local Candidate prefix, and rep
// is the only state shared between them. Search returns once every
// shard has finished or rep's cap has been reached.
func Search(parent context.Context, corpus *Corpus, rep Reporter, workers int) {
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	n := corpus.Count()

	shardSize := (outerSpace + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * shardSize
		end := start + shardSize
		if end > outerSpace {
			end = outerSpace
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end uint32) {
			defer wg.Done()
			searchK0Shard(ctx, cancel, corpus, rep, n, start, end)
		}(uint32(start), uint32(end))
	}
	wg.Wait()
}

// searchK0Shard runs the full K0 inner filter and the worker's assigned
// slice of the K0 outer filter, descending into levels 1..3 for every
// K0 candidate that survives both.
func searchK0Shard(ctx context.Context, cancel context.CancelFunc, corpus *Corpus, rep Reporter, n int, oStart, oEnd uint32) {
	for c := uint32(0); c < innerSpace; c++ {
		if ctx.Err() != nil {
			return
		}

		inner := subkey.InnerCandidate(c)
		if !subkey.Consistent(n, linapprox.InnerK0(corpus, inner)) {
			continue
		}

		for o := oStart; o < oEnd; o++ {
			if ctx.Err() != nil {
				return
			}

			k0 := subkey.OuterCandidate(o, inner)
			if !subkey.Consistent(n, linapprox.OuterK0(corpus, k0)) {
				continue
			}

			var prefix Candidate
			prefix[0] = k0
			searchLevel(ctx, cancel, corpus, rep, n, 1, prefix)
		}
	}
}

// searchLevel performs the inner-filter -> outer-filter -> recurse step
// for level in {1,2,3}, terminating at level 4 by deriving K4/K5 and
// validating the full tuple. It is the single recursive procedure
// spec.md calls for in place of four near-duplicate per-level
// functions: level and the prefix already carried select which pair of
// linapprox predicates apply.
func searchLevel(ctx context.Context, cancel context.CancelFunc, corpus *Corpus, rep Reporter, n int, level int, prefix Candidate) {
	if level == 4 {
		finishCandidate(corpus, rep, cancel, prefix)
		return
	}

	for c := uint32(0); c < innerSpace; c++ {
		if ctx.Err() != nil {
			return
		}

		inner := subkey.InnerCandidate(c)
		if !subkey.Consistent(n, innerPredicate(level, corpus, prefix, inner)) {
			continue
		}

		for o := uint32(0); o < outerSpace; o++ {
			if ctx.Err() != nil {
				return
			}

			guess := subkey.OuterCandidate(o, inner)
			if !subkey.Consistent(n, outerPredicate(level, corpus, prefix, guess)) {
				continue
			}

			next := prefix
			next[level] = guess
			searchLevel(ctx, cancel, corpus, rep, n, level+1, next)
		}
	}
}

// finishCandidate derives K4/K5 from pair 0 and the confirmed
// (k0..k3), validates the full tuple against every pair, and reports
// it if valid. If the reporter signals its cap has been reached, it
// cancels the search so sibling workers stop promptly instead of
// grinding through the rest of their assigned range.
func finishCandidate(corpus *Corpus, rep Reporter, cancel context.CancelFunc, prefix Candidate) {
	l0, r0, l4, r4 := corpus.PLeft(0), corpus.PRight(0), corpus.CLeft(0), corpus.CRight(0)
	k4, k5 := DeriveK4K5(l0, r0, l4, r4, prefix[0], prefix[1], prefix[2], prefix[3])

	full := cipher.Subkeys{prefix[0], prefix[1], prefix[2], prefix[3], k4, k5}
	if !ValidateFull(corpus, full) {
		return
	}

	if rep.Accept(full) {
		cancel()
	}
}

// innerPredicate and outerPredicate dispatch to the level-specific
// linapprox predicate, supplying only the prefix entries that level
// actually needs.
func innerPredicate(level int, store linapprox.PairStore, prefix Candidate, guess uint32) subkey.Predicate {
	switch level {
	case 1:
		return linapprox.InnerK1(store, prefix[0], guess)
	case 2:
		return linapprox.InnerK2(store, prefix[0], prefix[1], guess)
	case 3:
		return linapprox.InnerK3(store, prefix[0], prefix[1], prefix[2], guess)
	default:
		panic("feal4: invalid search level")
	}
}

func outerPredicate(level int, store linapprox.PairStore, prefix Candidate, guess uint32) subkey.Predicate {
	switch level {
	case 1:
		return linapprox.OuterK1(store, prefix[0], guess)
	case 2:
		return linapprox.OuterK2(store, prefix[0], prefix[1], guess)
	case 3:
		return linapprox.OuterK3(store, prefix[0], prefix[1], prefix[2], guess)
	default:
		panic("feal4: invalid search level")
	}
}
