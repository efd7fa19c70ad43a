// Package normalize turns raw job titles into canonical title patterns
// Pipeline order
// 1 drop control and invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding, then lower casing, repeated to a fixed point
// 4 Remove zero-width and combining marks
// 5 Width fold fullwidth to ASCII
// 6 Punctuation and symbols become spaces
// 7 Strip noise phrases word by word until nothing changes
// 8 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct {
	phrases *phraseSet
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Normalizer with the default noise phrase lists
func New() *Normalizer { return &Normalizer{phrases: defaultPhrases} }

// Title returns the canonical pattern for a raw job title
// Title(Title(s)) == Title(s) for every s
func (n *Normalizer) Title(raw string) string {
	words := Words(raw)
	if len(words) == 0 {
		return ""
	}
	set := n.phrases
	if set == nil {
		set = defaultPhrases
	}
	for {
		next := set.strip(words)
		if len(next) == len(words) {
			break
		}
		words = next
	}
	return strings.Join(words, " ")
}

// Fold applies steps 1 to 6 and 8, leaving noise phrases in place
func Fold(s string) string {
	return strings.Join(Words(s), " ")
}

// Words folds s and splits it on anything that is not a letter or digit
func Words(s string) []string {
	if s == "" {
		return nil
	}

	s = Sanitize(s)

	// case folding alone can flip between scripts (Cherokee folds to upper case)
	// so the chain runs until the lowered output stops changing
	ns := foldOnce(s)
	for i := 0; i < maxFoldPasses; i++ {
		next := foldOnce(ns)
		if next == ns {
			break
		}
		ns = next
	}

	return strings.FieldsFunc(ns, isSeparator)
}

const maxFoldPasses = 4

// foldOnce runs the transformer chain then lowers with the stable unicode mapping
func foldOnce(s string) string {
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transformer errors only on malformed input, sanitize already dropped it
		ns = s
	}
	return strings.Map(unicode.ToLower, ns)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
