package usaddr

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/usaddr-parse/internal/cache"
)

// FeatureSet maps feature names to their values. Values are bool, string, or
// a nested FeatureSet under the "previous" and "next" keys holding a snapshot
// of the neighboring token's features.
type FeatureSet map[string]any

var (
	// Leading characters that are not part of a word.
	reLeadingPunct = regexp.MustCompile(`^[^\p{L}\p{N}_]+`)
	// Trailing characters that are neither word characters nor periods.
	reTrailingPunct = regexp.MustCompile(`[^\p{L}\p{N}_.]+$`)
	// One or more characters followed by a non-word, non-period character.
	reEndsInPunct = regexp.MustCompile(`^.+[^.\p{L}\p{N}_]`)
)

// Cache sizes follow observed reuse: individual tokens repeat heavily across
// addresses while full token sequences vary more.
var (
	featureCache  = cache.New(1024)
	sequenceCache = cache.New(4096)
)

// TokenFeatures derives the feature set the sequence labeler sees for a
// single token. Pure and deterministic; results are memoized per distinct
// token string. Callers must not modify the returned set.
func TokenFeatures(token string) FeatureSet {
	if cached, ok := featureCache.Get(token); ok {
		return cached.(FeatureSet)
	}

	features := computeTokenFeatures(token)
	featureCache.Add(token, features)
	return features
}

func computeTokenFeatures(token string) FeatureSet {
	var tokenClean string
	switch token {
	case "&", "#", "½":
		// Significant single-character tokens pass through unstripped.
		tokenClean = token
	default:
		tokenClean = reLeadingPunct.ReplaceAllString(token, "")
		tokenClean = reTrailingPunct.ReplaceAllString(tokenClean, "")
	}

	tokenAbbrev := strings.ReplaceAll(strings.ToLower(tokenClean), ".", "")
	abbrevIsDigits := isAllDigits(tokenAbbrev)

	features := FeatureSet{
		"abbrev":      strings.HasSuffix(tokenClean, "."),
		"digits":      digitClass(tokenClean),
		"directional": directions[tokenAbbrev],
		"street_name": streetNames[tokenAbbrev],
		"has.vowels":  hasVowelsAfterFirst(tokenAbbrev),
	}

	if abbrevIsDigits {
		features["word"] = false
		features["trailing.zeros"] = trailingZeros(tokenAbbrev)
		features["length"] = "d:" + strconv.Itoa(utf8.RuneCountInString(tokenAbbrev))
	} else {
		features["word"] = tokenAbbrev
		features["trailing.zeros"] = false
		features["length"] = "w:" + strconv.Itoa(utf8.RuneCountInString(tokenAbbrev))
	}

	if reEndsInPunct.MatchString(token) {
		lastRune, _ := utf8.DecodeLastRuneInString(token)
		features["endsinpunc"] = string(lastRune)
	} else {
		features["endsinpunc"] = false
	}

	return features
}

// BuildFeatureSequence assembles per-token feature sets into the ordered
// sequence handed to the sequence labeler. Each element carries snapshots of
// its neighbors' base features under "previous" and "next", the first and
// last elements are flagged with "address.start" and "address.end", and the
// boundary flags are additionally injected one token removed from the edge
// inside the second element's "previous" and the second-to-last element's
// "next" snapshots. Memoized per exact token sequence; callers must not
// modify the result.
func BuildFeatureSequence(tokens []string) []FeatureSet {
	if len(tokens) == 0 {
		return nil
	}

	key := sequenceKey(tokens)
	if cached, ok := sequenceCache.Get(key); ok {
		return cached.([]FeatureSet)
	}

	// First pass: base features per token, shared from the memo cache.
	base := make([]FeatureSet, len(tokens))
	for i, token := range tokens {
		base[i] = TokenFeatures(token)
	}

	// Second pass: independent copies with neighbor snapshots, so boundary
	// flags never mutate a cached base set.
	sequence := make([]FeatureSet, len(tokens))
	for i := range base {
		features := copyFeatureSet(base[i])
		if i > 0 {
			features["previous"] = copyFeatureSet(base[i-1])
		}
		if i < len(base)-1 {
			features["next"] = copyFeatureSet(base[i+1])
		}
		sequence[i] = features
	}

	last := len(sequence) - 1
	sequence[0]["address.start"] = true
	sequence[last]["address.end"] = true
	if len(sequence) > 1 {
		sequence[1]["previous"].(FeatureSet)["address.start"] = true
		sequence[last-1]["next"].(FeatureSet)["address.end"] = true
	}

	sequenceCache.Add(key, sequence)
	return sequence
}

// sequenceKey builds a uniquely decodable cache key. Tokens may contain any
// byte outside whitespace and ",;#&()", so a plain separator join can collide;
// length-prefixing each token cannot.
func sequenceKey(tokens []string) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(strconv.Itoa(len(token)))
		b.WriteByte(':')
		b.WriteString(token)
	}
	return b.String()
}

func copyFeatureSet(features FeatureSet) FeatureSet {
	dup := make(FeatureSet, len(features)+2)
	for k, v := range features {
		dup[k] = v
	}
	return dup
}

// digitClass reports whether the cleaned token is entirely, partly, or not
// at all made of digits.
func digitClass(tokenClean string) string {
	switch {
	case isAllDigits(tokenClean):
		return "all_digits"
	case strings.IndexFunc(tokenClean, unicode.IsDigit) >= 0:
		return "some_digits"
	default:
		return "no_digits"
	}
}

// isAllDigits accepts decimal digits (category Nd) only; other numeric runes
// such as superscripts or vulgar fractions classify as words.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// trailingZeros returns the maximal run of "0" characters ending a numeric
// token, or the empty string if there is none.
func trailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	return s[i:]
}

// hasVowelsAfterFirst reports whether any character after the first is a
// vowel. The first character is deliberately excluded so that abbreviations
// like "e" or "ave"-initial vowels do not count for themselves.
func hasVowelsAfterFirst(s string) bool {
	first := true
	for _, r := range s {
		if first {
			first = false
			continue
		}
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			return true
		}
	}
	return false
}

// flattenFeatureSet converts a feature set into the flat feature strings a
// linear-chain model scores: boolean true becomes the bare key, strings
// become "key=value", nested neighbor sets are prefixed with their key, and
// false values are omitted. Keys are emitted in sorted order so output is
// deterministic.
func flattenFeatureSet(features FeatureSet) []string {
	return appendFlattened(nil, "", features)
}

func appendFlattened(out []string, prefix string, features FeatureSet) []string {
	keys := make([]string, 0, len(features))
	for k := range features {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := features[k].(type) {
		case bool:
			if v {
				out = append(out, prefix+k)
			}
		case string:
			out = append(out, prefix+k+"="+v)
		case FeatureSet:
			out = appendFlattened(out, prefix+k+":", v)
		default:
			out = append(out, prefix+k+"="+fmt.Sprint(v))
		}
	}
	return out
}

// CacheStats reports the number of entries held by the memoization caches.
type CacheStats struct {
	Tokenizer     int `json:"tokenizer"`
	TokenFeatures int `json:"token_features"`
	Sequences     int `json:"sequences"`
}

// Caches returns current memoization cache sizes for introspection.
func Caches() CacheStats {
	return CacheStats{
		Tokenizer:     tokenCacheLen(),
		TokenFeatures: featureCache.Len(),
		Sequences:     sequenceCache.Len(),
	}
}
