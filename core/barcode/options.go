package barcode

import "bcseq/core/sseq"

// Option configures a Matcher.
type Option func(*matcherOptions)

type matcherOptions struct {
	policy    sseq.HammingPolicy
	cacheSize int
}

func defaultMatcherOptions() matcherOptions {
	return matcherOptions{policy: sseq.SkipN, cacheSize: 0}
}

// WithPolicy sets how N bases are treated when generating neighbors.
// The default is sseq.SkipN.
func WithPolicy(p sseq.HammingPolicy) Option {
	return func(o *matcherOptions) { o.policy = p }
}

// WithCacheSize bounds the number of memoized results. Zero (the default)
// disables caching.
func WithCacheSize(n int) Option {
	return func(o *matcherOptions) {
		if n < 0 {
			n = 0
		}
		o.cacheSize = n
	}
}
