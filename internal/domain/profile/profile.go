// Package profile models a project's declared technology stack and derives
// the canonical tag set used for catalog relevance scoring.
package profile

import "github.com/jmckinley/jumpstart/internal/domain/tags"

// Extra-service category names. Extraction visits categories in the order
// listed here so repeated calls produce identical tag lists.
const (
	ServiceAuth       = "auth"
	ServiceHosting    = "hosting"
	ServicePayments   = "payments"
	ServiceMonitoring = "monitoring"
	ServiceEmail      = "email"
	ServiceCache      = "cache"
)

// serviceOrder is the fixed visiting order for the Services map.
var serviceOrder = []string{
	ServiceAuth,
	ServiceHosting,
	ServicePayments,
	ServiceMonitoring,
	ServiceEmail,
	ServiceCache,
}

// Profile is a read-only snapshot of a project's declared stack. All fields
// except Language may be empty; the engine only reads it.
type Profile struct {
	ProjectID     string            `json:"project_id" koanf:"project_id"`
	Name          string            `json:"name" koanf:"name"`
	Language      string            `json:"language" koanf:"language"`
	Framework     string            `json:"framework,omitempty" koanf:"framework"`
	Database      string            `json:"database,omitempty" koanf:"database"`
	TestFramework string            `json:"test_framework,omitempty" koanf:"test_framework"`
	Styling       string            `json:"styling,omitempty" koanf:"styling"`
	Services      map[string]string `json:"services,omitempty" koanf:"services"`
}

// Extract returns the deduplicated canonical tags describing p. Simple stack
// fields are visited in a fixed order (language, framework, database, test
// framework, styling) followed by the extra-service categories; the first
// occurrence of a tag wins. A nil profile yields an empty list, and values
// the vocabulary does not recognize contribute nothing.
func Extract(p *Profile) []tags.Tag {
	out := make([]tags.Tag, 0, 8)
	if p == nil {
		return out
	}

	seen := make(map[tags.Tag]struct{}, 8)
	add := func(value string) {
		if value == "" {
			return
		}
		t, ok := tags.Resolve(value)
		if !ok {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	add(p.Language)
	add(p.Framework)
	add(p.Database)
	add(p.TestFramework)
	add(p.Styling)

	for _, category := range serviceOrder {
		add(p.Services[category])
	}
	return out
}
