// core/barcode/matcher.go
package barcode

import (
	"slices"
	"sync"

	"bcseq/core/sseq"
	"bcseq/internal/runutil"
)

// Match is the outcome of looking an observed sequence up in a whitelist.
type Match struct {
	// Exact is true when the sequence itself is whitelisted.
	Exact bool
	// Candidates are the whitelisted Hamming-1 neighbors, in enumeration
	// order. Empty when Exact is true.
	Candidates []sseq.SSeq
}

// Matcher looks observed barcodes up in a Whitelist and, on a miss, lists
// every whitelisted sequence one substitution away. It is safe for
// concurrent use when the Whitelist is.
type Matcher struct {
	wl     Whitelist
	policy sseq.HammingPolicy

	mu    sync.Mutex
	cache *runutil.LRU[sseq.SSeq, Match] // nil when disabled
}

func NewMatcher(wl Whitelist, opts ...Option) *Matcher {
	o := defaultMatcherOptions()
	for _, fn := range opts {
		fn(&o)
	}
	m := &Matcher{wl: wl, policy: o.policy}
	if o.cacheSize > 0 {
		m.cache = runutil.NewLRU[sseq.SSeq, Match](o.cacheSize)
	}
	return m
}

// Policy returns the neighbor policy in use.
func (m *Matcher) Policy() sseq.HammingPolicy { return m.policy }

// Match looks seq up. The returned Candidates slice is owned by the caller.
func (m *Matcher) Match(seq sseq.SSeq) Match {
	if m.cache != nil {
		m.mu.Lock()
		res, ok := m.cache.Get(seq)
		m.mu.Unlock()
		if ok {
			res.Candidates = slices.Clone(res.Candidates)
			return res
		}
	}

	res := m.lookup(seq)

	if m.cache != nil {
		m.mu.Lock()
		m.cache.Add(seq, Match{Exact: res.Exact, Candidates: slices.Clone(res.Candidates)})
		m.mu.Unlock()
	}
	return res
}

func (m *Matcher) lookup(seq sseq.SSeq) Match {
	if m.wl.Contains(seq) {
		return Match{Exact: true}
	}
	var out []sseq.SSeq
	for v := range seq.OneHamming(m.policy) {
		if m.wl.Contains(v) {
			out = append(out, v)
		}
	}
	return Match{Candidates: out}
}
