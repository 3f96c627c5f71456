// Package scoring computes a catalog item's relevance against a project's
// canonical tag set.
//
// Conventions:
// - Scoring is a total, pure function: it never fails, and identical inputs
//   always produce identical results.
// - The scoring constants live in a Params bundle so every catalog kind
//   shares one algorithm instead of copy-pasted formulas.
package scoring

import (
	"math"

	"github.com/jmckinley/jumpstart/internal/domain/tags"
)

// maxScore bounds every computed score.
const maxScore = 100

// Legacy regime constants. The legacy formula scores by match ratio alone
// and is retained because existing callers still assert on its bands.
const (
	legacyUniversalScore = 60
	legacyBaseScore      = 40
	legacyRatioSpan      = 60
)

// Mode selects which scoring regime a Scorer applies.
type Mode int

const (
	// ModeImproved is the default regime: a base score plus a capped
	// per-match bonus and a specificity bonus.
	ModeImproved Mode = iota
	// ModeLegacy is the older ratio-only regime, kept for compatibility.
	ModeLegacy
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	if m == ModeLegacy {
		return "legacy"
	}
	return "improved"
}

// ParseMode maps a configuration string to a Mode. Unknown values fall back
// to the improved regime.
func ParseMode(s string) Mode {
	if s == "legacy" {
		return ModeLegacy
	}
	return ModeImproved
}

// Params bundles the constants of the improved regime. Each catalog kind
// supplies its own bundle (usually DefaultParams) rather than duplicating
// the algorithm.
type Params struct {
	UniversalScore       int
	BaseScore            int
	PerMatchBonus        int
	MatchBonusCap        int
	SpecificityThreshold float64
	SpecificityBonus     int
	RecommendThreshold   int
}

// DefaultParams returns the improved-regime constants. The resulting bands:
// no match 0, one low-specificity match 50, one exact-fit match 60, two
// matches at >=50% specificity 80, three or more matches saturate at 100.
func DefaultParams() Params {
	return Params{
		UniversalScore:       75,
		BaseScore:            30,
		PerMatchBonus:        20,
		MatchBonusCap:        60,
		SpecificityThreshold: 0.5,
		SpecificityBonus:     10,
		RecommendThreshold:   50,
	}
}

// Result is the scorer's verdict for one item. It is ephemeral: recomputed
// on every ranking call and discarded after display.
type Result struct {
	Score       int        `json:"score"`
	Recommended bool       `json:"recommended"`
	MatchedTags []tags.Tag `json:"matched_tags"`
}

// Scorer scores declared item tags against project tags under a fixed mode
// and parameter bundle. The zero configuration uses the improved regime.
type Scorer struct {
	mode   Mode
	params Params
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithMode selects the scoring regime.
func WithMode(m Mode) Option {
	return func(s *Scorer) {
		s.mode = m
	}
}

// WithParams overrides the improved-regime constant bundle.
func WithParams(p Params) Option {
	return func(s *Scorer) {
		if p.RecommendThreshold > 0 {
			s.params = p
		}
	}
}

// New creates a Scorer with the improved regime and default parameters.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		mode:   ModeImproved,
		params: DefaultParams(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode reports the regime the scorer applies.
func (s *Scorer) Mode() Mode {
	return s.mode
}

// Score computes the relevance of an item's declared tags against the
// project's tag set. Universal items short-circuit to a fixed score; all
// other items score by tag overlap. Duplicate declared tags never
// double-count. The function is total over empty tag lists on either side.
func (s *Scorer) Score(itemTags, projectTags []tags.Tag) Result {
	declared := dedupe(itemTags)

	for _, t := range declared {
		if t == tags.Universal {
			score := s.params.UniversalScore
			if s.mode == ModeLegacy {
				score = legacyUniversalScore
			}
			return Result{
				Score:       score,
				Recommended: true,
				MatchedTags: []tags.Tag{tags.Universal},
			}
		}
	}

	matched := intersect(declared, projectTags)
	if len(matched) == 0 {
		return Result{Score: 0, Recommended: false, MatchedTags: []tags.Tag{}}
	}

	ratio := float64(len(matched)) / float64(len(declared))

	var score int
	switch s.mode {
	case ModeLegacy:
		score = int(math.Round(legacyBaseScore + ratio*legacyRatioSpan))
	default:
		matchBonus := len(matched) * s.params.PerMatchBonus
		if matchBonus > s.params.MatchBonusCap {
			matchBonus = s.params.MatchBonusCap
		}
		specificityBonus := 0
		if ratio >= s.params.SpecificityThreshold {
			specificityBonus = s.params.SpecificityBonus
		}
		score = s.params.BaseScore + matchBonus + specificityBonus
	}
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	return Result{
		Score:       score,
		Recommended: score >= s.params.RecommendThreshold,
		MatchedTags: matched,
	}
}

// dedupe removes repeated tags, keeping the first occurrence in order.
func dedupe(in []tags.Tag) []tags.Tag {
	out := make([]tags.Tag, 0, len(in))
	seen := make(map[tags.Tag]struct{}, len(in))
	for _, t := range in {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// intersect returns the declared tags present in projectTags, preserving
// the declared order.
func intersect(declared, projectTags []tags.Tag) []tags.Tag {
	set := make(map[tags.Tag]struct{}, len(projectTags))
	for _, t := range projectTags {
		set[t] = struct{}{}
	}
	out := make([]tags.Tag, 0, len(declared))
	for _, t := range declared {
		if _, ok := set[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
