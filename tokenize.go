package usaddr

import (
	"regexp"
	"strings"
	"sync"
)

// HTML-entity ampersands show up in scraped and form-submitted addresses.
var ampReplacer = strings.NewReplacer("&#38;", "&", "&amp;", "&")

// A token is a maximal run of non-separator characters starting at a word
// character, keeping any leading "(" and any trailing ".,;)" or newline
// punctuation, or a standalone "#" or "&".
// ['ab. cd,ef '] -> ['ab.', 'cd,', 'ef']
var reToken = regexp.MustCompile("\\(*[\\p{L}\\p{N}_][^\\s,;#&()]*[.,;)\\n]*|[#&]")

// tokenCache memoizes Tokenize results keyed by the exact input string.
// Address strings are short and finite per process run, so the cache is
// unbounded.
var tokenCache sync.Map

// Tokenize splits an address string into ordered tokens. Trailing punctuation
// is retained as part of each token ("St." stays "St."). The result for an
// empty or unmatchable string is empty. Safe for concurrent use; callers must
// not modify the returned slice.
func Tokenize(address string) []string {
	if cached, ok := tokenCache.Load(address); ok {
		return cached.([]string)
	}

	tokens := reToken.FindAllString(ampReplacer.Replace(address), -1)
	tokenCache.Store(address, tokens)
	return tokens
}

// tokenCacheLen reports how many distinct address strings have been
// tokenized, for cache introspection.
func tokenCacheLen() int {
	n := 0
	tokenCache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
