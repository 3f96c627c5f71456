// Package catalog models the recommendable item catalogs: single-use prompt
// templates, automation agents, and multi-agent team compositions. The
// catalogs are loaded once at startup and treated as immutable; the ranking
// engine receives them as plain slices and never owns or caches them.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jmckinley/jumpstart/internal/domain/tags"
)

// Kind identifies one catalog.
type Kind string

const (
	// KindTemplate is the single-use prompt template catalog.
	KindTemplate Kind = "template"
	// KindAgent is the automation agent catalog.
	KindAgent Kind = "agent"
	// KindTeam is the multi-agent team composition catalog.
	KindTeam Kind = "team"
)

// Recommendation caps per catalog kind. Agents are uncapped: every agent
// scoring at or above the threshold stays recommended.
const (
	TemplateRecommendationCap = 5
	TeamRecommendationCap     = 3
)

// Kinds lists all catalog kinds in a fixed order.
func Kinds() []Kind {
	return []Kind{KindTemplate, KindAgent, KindTeam}
}

// ParseKind maps a route or configuration string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindTemplate:
		return KindTemplate, nil
	case KindAgent:
		return KindAgent, nil
	case KindTeam:
		return KindTeam, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// RecommendationCap returns the kind's cap, or 0 for uncapped kinds.
func (k Kind) RecommendationCap() int {
	switch k {
	case KindTemplate:
		return TemplateRecommendationCap
	case KindTeam:
		return TeamRecommendationCap
	default:
		return 0
	}
}

// Item is one recommendable catalog entry. Slug is the stable identity;
// Tags drive relevance scoring; Body is kind-specific payload (prompt text,
// agent instructions, or a team roster) that scoring never inspects.
type Item struct {
	Slug        string     `json:"slug" koanf:"slug"`
	Name        string     `json:"name" koanf:"name"`
	Description string     `json:"description,omitempty" koanf:"description"`
	Tags        []tags.Tag `json:"tags" koanf:"tags"`
	Body        string     `json:"body,omitempty" koanf:"body"`
}

// Validate checks the invariants every catalog item must satisfy.
func (i Item) Validate() error {
	switch {
	case strings.TrimSpace(i.Slug) == "":
		return fmt.Errorf("%w: missing slug", ErrInvalidItem)
	case strings.TrimSpace(i.Name) == "":
		return fmt.Errorf("%w: %s: missing name", ErrInvalidItem, i.Slug)
	case len(i.Tags) == 0:
		return fmt.Errorf("%w: %s: missing tags", ErrInvalidItem, i.Slug)
	}
	for _, t := range i.Tags {
		if !tags.Known(t) {
			return fmt.Errorf("%w: %s: unknown tag %q", ErrInvalidItem, i.Slug, t)
		}
	}
	return nil
}
