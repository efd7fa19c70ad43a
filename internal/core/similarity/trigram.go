package similarity

import "jobguard/internal/core/normalize"

// Trigram is the Jaccard overlap of word trigram sets in the pg_trgm style
// each word is padded with two leading spaces and one trailing space
func Trigram(a, b string) float64 {
	ta, tb := trigrams(a), trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	shared := 0
	for g := range ta {
		if _, ok := tb[g]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return float64(shared) / float64(union)
}

func trigrams(s string) map[string]struct{} {
	words := normalize.Words(s)
	if len(words) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(words)*4)
	for _, w := range words {
		r := []rune("  " + w + " ")
		for i := 0; i+3 <= len(r); i++ {
			set[string(r[i:i+3])] = struct{}{}
		}
	}
	return set
}
