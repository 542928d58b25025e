package feal4

import (
	"fmt"
	"io"
	"sync"

	"github.com/hariof98/linear-cryptanalysis-feal-4-cipher/cipher"
)

// MaxValidKeys caps how many accepted 6-tuples a search will report
// before it halts, regardless of how much of the search space remains.
const MaxValidKeys = 256

// Reporter is the single piece of shared mutable state the search
// touches: a sink for accepted 6-tuples and the monotonically
// increasing count of how many have been accepted. Accept must be safe
// to call from multiple goroutines.
type Reporter interface {
	// Accept records a confirmed subkey tuple and reports whether the
	// search should stop (the cap has been reached).
	Accept(k cipher.Subkeys) (stop bool)
	// Count returns the number of tuples accepted so far.
	Count() int
}

// CappedReporter writes one tab-separated "0x%08x" line per accepted
// tuple to w and stops the search once its cap (MaxValidKeys by default)
// of tuples has been accepted. It serializes both the write and the cap check behind a
// mutex, since every worker in the parallel K0 sweep can accept
// concurrently.
type CappedReporter struct {
	w   io.Writer
	cap int

	mu    sync.Mutex
	count int
}

// NewCappedReporter returns a CappedReporter that stops after cap
// accepted tuples (use MaxValidKeys for the spec default).
func NewCappedReporter(w io.Writer, cap int) *CappedReporter {
	return &CappedReporter{w: w, cap: cap}
}

func (r *CappedReporter) Accept(k cipher.Subkeys) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count >= r.cap {
		return true
	}

	fmt.Fprintf(r.w, "0x%08x\t0x%08x\t0x%08x\t0x%08x\t0x%08x\t0x%08x\n",
		k[0], k[1], k[2], k[3], k[4], k[5])
	r.count++

	return r.count >= r.cap
}

func (r *CappedReporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
