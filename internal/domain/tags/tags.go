// Package tags defines the closed vocabulary of canonical technology tags
// and the synonym dictionary that normalizes free-text stack values.
//
// Conventions:
// - Tags are opaque string identifiers; equality is exact string match.
// - The vocabulary and synonym map are process-wide immutable constants.
// - Unknown inputs resolve to nothing; resolution never fails.
package tags

import "strings"

// Tag is a canonical technology identifier, e.g. "react" or "postgresql".
type Tag string

// Universal marks an item as applicable to any project regardless of its
// stack. It is mutually exclusive with overlap-based matching.
const Universal Tag = "universal"

// Canonical language tags.
const (
	TypeScript Tag = "typescript"
	JavaScript Tag = "javascript"
	Python     Tag = "python"
	Go         Tag = "go"
	Rust       Tag = "rust"
	Java       Tag = "java"
	Ruby       Tag = "ruby"
	PHP        Tag = "php"
	CSharp     Tag = "csharp"
)

// Canonical framework tags.
const (
	React   Tag = "react"
	NextJS  Tag = "nextjs"
	Vue     Tag = "vue"
	Nuxt    Tag = "nuxt"
	Svelte  Tag = "svelte"
	Angular Tag = "angular"
	Express Tag = "express"
	NestJS  Tag = "nestjs"
	Django  Tag = "django"
	Flask   Tag = "flask"
	FastAPI Tag = "fastapi"
	Rails   Tag = "rails"
	Laravel Tag = "laravel"
	Spring  Tag = "spring"
)

// Canonical database tags.
const (
	PostgreSQL Tag = "postgresql"
	MySQL      Tag = "mysql"
	SQLite     Tag = "sqlite"
	MongoDB    Tag = "mongodb"
	Redis      Tag = "redis"
	Supabase   Tag = "supabase"
	Firebase   Tag = "firebase"
)

// Canonical test tooling tags.
const (
	Jest       Tag = "jest"
	Vitest     Tag = "vitest"
	Playwright Tag = "playwright"
	Cypress    Tag = "cypress"
	Pytest     Tag = "pytest"
)

// Canonical styling and state tags.
const (
	Tailwind         Tag = "tailwind"
	Sass             Tag = "sass"
	CSSModules       Tag = "css-modules"
	StyledComponents Tag = "styled-components"
	Redux            Tag = "redux"
	Zustand          Tag = "zustand"
)

// Canonical service provider tags (auth, hosting, payments, monitoring,
// email, cache categories of a project's extra services).
const (
	Auth0    Tag = "auth0"
	Clerk    Tag = "clerk"
	NextAuth Tag = "nextauth"
	Vercel   Tag = "vercel"
	AWS      Tag = "aws"
	Docker   Tag = "docker"
	Stripe   Tag = "stripe"
	Sentry   Tag = "sentry"
	Resend   Tag = "resend"
	SendGrid Tag = "sendgrid"
)

// Resolve maps a free-text stack value to its canonical tag. The lookup is
// case-insensitive and exact: no partial or fuzzy matching. Unknown values
// return false.
func Resolve(value string) (Tag, bool) {
	t, ok := synonyms[strings.ToLower(strings.TrimSpace(value))]
	return t, ok
}

// Known reports whether t is part of the canonical vocabulary.
func Known(t Tag) bool {
	_, ok := canonical[t]
	return ok
}
