package normalize

import (
	"slices"
	"strings"
)

// noise phrase lists removed from titles, matched on whole words after folding
var (
	urgencyPhrases = []string{
		"urgent", "urgently", "asap", "hiring now", "immediate start", "immediately",
	}
	employmentPhrases = []string{
		"full-time", "full time", "part-time", "part time",
		"contract", "temporary", "temp", "permanent",
	}
	locationPhrases = []string{
		"remote", "onsite", "on-site", "hybrid", "work from home", "wfh",
	}
	seniorityPhrases = []string{
		"entry-level", "entry level", "senior", "sr", "junior", "jr",
		"lead", "manager", "director",
	}
)

var defaultPhrases = newPhraseSet(urgencyPhrases, employmentPhrases, locationPhrases, seniorityPhrases)

// phraseSet indexes phrases by first word, longest first
type phraseSet struct {
	byHead map[string][][]string
}

func newPhraseSet(lists ...[]string) *phraseSet {
	ps := &phraseSet{byHead: map[string][][]string{}}
	seen := map[string]bool{}
	for _, list := range lists {
		for _, p := range list {
			// fold the phrase the same way titles are folded so on-site matches on site
			words := Words(p)
			if len(words) == 0 {
				continue
			}
			key := strings.Join(words, " ")
			if seen[key] {
				continue
			}
			seen[key] = true
			ps.byHead[words[0]] = append(ps.byHead[words[0]], words)
		}
	}
	for _, cands := range ps.byHead {
		slices.SortStableFunc(cands, func(a, b []string) int { return len(b) - len(a) })
	}
	return ps
}

// strip drops every phrase occurrence in one left to right pass
func (ps *phraseSet) strip(words []string) []string {
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		if n := ps.matchAt(words, i); n > 0 {
			i += n
			continue
		}
		out = append(out, words[i])
		i++
	}
	return out
}

func (ps *phraseSet) matchAt(words []string, i int) int {
	for _, cand := range ps.byHead[words[i]] {
		if i+len(cand) > len(words) {
			continue
		}
		ok := true
		for k, w := range cand {
			if words[i+k] != w {
				ok = false
				break
			}
		}
		if ok {
			return len(cand)
		}
	}
	return 0
}
