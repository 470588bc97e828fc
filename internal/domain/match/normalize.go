// Package match builds derived name indexes over a benchmark catalog and
// implements the multi-tier fuzzy lookup used to resolve free-text part names.
package match

import (
	"strings"
	"unicode"
)

// vendorPrefixes are brand tokens stripped during normalization so that
// "AMD Ryzen 7 7800X3D" and "Ryzen 7 7800X3D" resolve to the same key.
var vendorPrefixes = []string{"amd ", "intel ", "geforce ", "radeon "}

// Normalize derives the lookup key for a part name: lower-case, collapsed
// whitespace, vendor prefixes stripped, punctuation replaced with spaces.
// Normalize is idempotent.
func Normalize(name string) string {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))
	for _, prefix := range vendorPrefixes {
		name = strings.ReplaceAll(name, prefix, "")
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Compact returns the normalized name with all whitespace removed.
func Compact(name string) string {
	return strings.ReplaceAll(Normalize(name), " ", "")
}

// tokensMatch reports whether every token of one side appears among the
// tokens of the other. A short query like "ryzen 5600x" matches a longer
// catalog entry and vice versa.
func tokensMatch(query, candidate string) bool {
	queryTokens := strings.Fields(query)
	candidateTokens := strings.Fields(candidate)
	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return false
	}
	return containsAll(candidateTokens, queryTokens) || containsAll(queryTokens, candidateTokens)
}

// containsAll reports whether every needle is present in haystack.
func containsAll(haystack, needles []string) bool {
	set := make(map[string]struct{}, len(haystack))
	for _, t := range haystack {
		set[t] = struct{}{}
	}
	for _, t := range needles {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
