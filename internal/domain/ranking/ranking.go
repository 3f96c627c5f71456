// Package ranking turns one catalog plus a project profile into a final,
// display-ready ordering with a bounded recommendation count.
//
// Conventions:
// - Ranking is a stateless pipeline: extract tags once, score every item,
//   demote recommendations above the kind's cap, then sort for display.
// - Identical inputs always yield identical output; there is no hidden
//   randomness or clock dependence.
package ranking

import (
	"sort"

	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/profile"
	"github.com/jmckinley/jumpstart/internal/domain/scoring"
	"github.com/jmckinley/jumpstart/internal/domain/tags"
)

// ScoredItem annotates one catalog item with its ranking verdict. It is a
// derived view recomputed on every call; it has no lifecycle of its own.
type ScoredItem struct {
	Item        catalog.Item `json:"item"`
	Score       int          `json:"score"`
	Recommended bool         `json:"recommended"`
	MatchedTags []tags.Tag   `json:"matched_tags"`
}

// Ranker ranks catalogs of one kind. The zero cap means uncapped: every
// item above the recommendation threshold stays recommended.
type Ranker struct {
	scorer *scoring.Scorer
	cap    int
}

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithScorer replaces the default improved-regime scorer.
func WithScorer(s *scoring.Scorer) Option {
	return func(r *Ranker) {
		if s != nil {
			r.scorer = s
		}
	}
}

// WithCap bounds how many items may stay recommended. Zero disables the
// demotion pass.
func WithCap(n int) Option {
	return func(r *Ranker) {
		if n >= 0 {
			r.cap = n
		}
	}
}

// New creates a Ranker with the improved-regime scorer and no cap.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		scorer: scoring.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ForKind creates a Ranker preconfigured with the kind's recommendation cap.
func ForKind(kind catalog.Kind, opts ...Option) *Ranker {
	base := []Option{WithCap(kind.RecommendationCap())}
	return New(append(base, opts...)...)
}

// Rank scores and orders a full catalog against a project. A nil project
// scores every non-universal item at zero; an empty catalog yields an empty
// result. The returned slice is length-preserving.
func (r *Ranker) Rank(items []catalog.Item, p *profile.Profile) []ScoredItem {
	return r.RankTags(items, profile.Extract(p))
}

// RankTags is Rank with the project tags already extracted.
func (r *Ranker) RankTags(items []catalog.Item, projectTags []tags.Tag) []ScoredItem {
	scored := make([]ScoredItem, len(items))
	for i, item := range items {
		res := r.scorer.Score(item.Tags, projectTags)
		scored[i] = ScoredItem{
			Item:        item,
			Score:       res.Score,
			Recommended: res.Recommended,
			MatchedTags: res.MatchedTags,
		}
	}

	r.applyCap(scored)
	sortForDisplay(scored)
	return scored
}

// applyCap demotes recommended items beyond the cap, keeping the highest
// scorers. Ties keep catalog order. Scores are never altered, only the
// recommended flag.
func (r *Ranker) applyCap(scored []ScoredItem) {
	if r.cap <= 0 {
		return
	}

	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scored[order[a]].Score > scored[order[b]].Score
	})

	kept := 0
	for _, idx := range order {
		if !scored[idx].Recommended {
			continue
		}
		if kept >= r.cap {
			scored[idx].Recommended = false
			continue
		}
		kept++
	}
}

// sortForDisplay orders recommended items first by descending score (stable
// on ties), then non-recommended items by ascending display name.
func sortForDisplay(scored []ScoredItem) {
	sort.SliceStable(scored, func(a, b int) bool {
		ia, ib := scored[a], scored[b]
		if ia.Recommended != ib.Recommended {
			return ia.Recommended
		}
		if ia.Recommended {
			return ia.Score > ib.Score
		}
		return ia.Item.Name < ib.Item.Name
	})
}
