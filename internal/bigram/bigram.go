// Package bigram implements a token-based string similarity measure used to
// score how alike two property values are. A Bigram is the sorted,
// deduplicated set of adjacent-rune-pair tokens found in a string; two
// Bigrams are compared with a Sørensen–Dice style coefficient.
package bigram

import "sort"

// Bigram is an immutable, strictly increasing sequence of tokens, each
// encoding one adjacent rune pair from a source string.
type Bigram struct {
	tokens []uint64
}

// Empty is the zero-value Bigram, produced by New("").
var Empty = Bigram{}

// New tokenizes s into a Bigram. An empty string produces the empty Bigram.
// A single-rune string produces a single token equal to that rune's code
// point. Longer strings produce one token per adjacent rune pair, sorted
// ascending with duplicates collapsed.
func New(s string) Bigram {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return Empty
	case 1:
		return Bigram{tokens: []uint64{uint64(runes[0])}}
	}

	tokens := make([]uint64, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		tokens[i] = encode(runes[i], runes[i+1])
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	deduped := tokens[:0:0]
	for i, t := range tokens {
		if i == 0 || t != tokens[i-1] {
			deduped = append(deduped, t)
		}
	}
	return Bigram{tokens: deduped}
}

// encode packs an ordered rune pair into a single injective uint64. Runes
// are 32-bit values, so a 32-bit shift is comfortably injective and avoids
// any decimal-width bookkeeping.
func encode(a, b rune) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// IsEmpty reports whether the Bigram carries no tokens.
func (b Bigram) IsEmpty() bool {
	return len(b.tokens) == 0
}

// Len returns the number of distinct tokens in the Bigram.
func (b Bigram) Len() int {
	return len(b.tokens)
}

// Compare returns the Sørensen–Dice coefficient of a and b, normalized by
// the larger token-set size rather than the sum of both sizes:
//
//	|A ∩ B| / max(|A|, |B|)
//
// Both empty compares equal (1.0); exactly one empty compares as totally
// distinct (0.0). The result is symmetric and lies in [0,1].
func Compare(a, b Bigram) float64 {
	if a.IsEmpty() && b.IsEmpty() {
		return 1.0
	}
	if a.IsEmpty() || b.IsEmpty() {
		return 0.0
	}

	intersection := intersectionSize(a.tokens, b.tokens)
	denom := len(a.tokens)
	if len(b.tokens) > denom {
		denom = len(b.tokens)
	}
	return float64(intersection) / float64(denom)
}

// intersectionSize counts the shared elements of two sorted, deduplicated
// token slices via a linear two-pointer merge.
func intersectionSize(a, b []uint64) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return count
}
