// Package similarity scores how likely two postings describe the same job
package similarity

import (
	"strings"

	"jobguard/internal/core/normalize"
	"jobguard/internal/core/thresholds"
)

// Method names the rule that produced a score
type Method string

const (
	MethodNone                 Method = ""
	MethodTitleHash            Method = "title_hash"
	MethodCompanyLocationTitle Method = "company_location_title"
	MethodCompanyTitle         Method = "company_title"
	// MethodAIAnalysis is accepted on stored alerts but never produced here
	MethodAIAnalysis Method = "ai_analysis"
)

// Valid reports whether m is a known stored detection method
func (m Method) Valid() bool {
	switch m {
	case MethodTitleHash, MethodCompanyLocationTitle, MethodCompanyTitle, MethodAIAnalysis:
		return true
	}
	return false
}

// Posting is the slice of a job posting the scorer looks at
type Posting struct {
	Title    string
	Company  string
	Location string
}

// Result is a score in [0,1] and the rule that fired, MethodNone for 0
type Result struct {
	Score  float64
	Method Method
}

// Fuzzy compares two raw titles and returns a value in [0,1]
type Fuzzy func(a, b string) float64

// Scorer applies the tiered rules, first match wins
// safe for concurrent use
type Scorer struct {
	cfg   thresholds.Similarity
	norm  *normalize.Normalizer
	fuzzy Fuzzy
}

// Option configures a Scorer
type Option func(*Scorer)

// WithFuzzy swaps the title metric, mostly for tests
func WithFuzzy(f Fuzzy) Option {
	return func(s *Scorer) {
		if f != nil {
			s.fuzzy = f
		}
	}
}

// WithNormalizer swaps the title normalizer
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Scorer) {
		if n != nil {
			s.norm = n
		}
	}
}

// New builds a Scorer over the given tiers
func New(cfg thresholds.Similarity, opts ...Option) *Scorer {
	s := &Scorer{cfg: cfg, norm: normalize.New(), fuzzy: Trigram}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Score compares a and b
func (s *Scorer) Score(a, b Posting) Result {
	// an empty pattern means the title was all noise, it says nothing about identity
	if na := s.norm.Title(a.Title); na != "" && na == s.norm.Title(b.Title) {
		return Result{Score: s.cfg.ExactScore, Method: MethodTitleHash}
	}

	if !sameField(a.Company, b.Company) {
		return Result{}
	}

	f := s.fuzzy(a.Title, b.Title)
	if sameField(a.Location, b.Location) && f > s.cfg.LocationTitleFuzzy {
		return Result{Score: s.cfg.LocationTitleScore, Method: MethodCompanyLocationTitle}
	}
	if f > s.cfg.CompanyTitleFuzzy {
		return Result{Score: s.cfg.CompanyTitleScore, Method: MethodCompanyTitle}
	}
	return Result{}
}

func sameField(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
