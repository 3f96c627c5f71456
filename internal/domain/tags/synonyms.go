package tags

// synonyms maps lower-cased free-text stack values to canonical tags.
// Many-to-one entries are expected: every spelling a user plausibly types
// for a technology lands on the same tag. Keys must be lower case.
var synonyms = map[string]Tag{
	// Languages
	"typescript": TypeScript,
	"ts":         TypeScript,
	"javascript": JavaScript,
	"js":         JavaScript,
	"node":       JavaScript,
	"node.js":    JavaScript,
	"nodejs":     JavaScript,
	"python":     Python,
	"go":         Go,
	"golang":     Go,
	"rust":       Rust,
	"java":       Java,
	"kotlin":     Java,
	"ruby":       Ruby,
	"php":        PHP,
	"c#":         CSharp,
	"csharp":     CSharp,
	".net":       CSharp,
	"dotnet":     CSharp,

	// Frameworks
	"react":       React,
	"react.js":    React,
	"reactjs":     React,
	"next":        NextJS,
	"next.js":     NextJS,
	"nextjs":      NextJS,
	"vue":         Vue,
	"vue.js":      Vue,
	"vuejs":       Vue,
	"nuxt":        Nuxt,
	"nuxt.js":     Nuxt,
	"svelte":      Svelte,
	"sveltekit":   Svelte,
	"angular":     Angular,
	"express":     Express,
	"express.js":  Express,
	"fastify":     Express,
	"nest":        NestJS,
	"nestjs":      NestJS,
	"nest.js":     NestJS,
	"django":      Django,
	"flask":       Flask,
	"fastapi":     FastAPI,
	"rails":       Rails,
	"ruby on rails": Rails,
	"laravel":     Laravel,
	"spring":      Spring,
	"spring boot": Spring,

	// Databases
	"postgresql": PostgreSQL,
	"postgres":   PostgreSQL,
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"sqlite":     SQLite,
	"mongodb":    MongoDB,
	"mongo":      MongoDB,
	"redis":      Redis,
	"supabase":   Supabase,
	"firebase":   Firebase,
	"firestore":  Firebase,

	// Test tooling
	"jest":                  Jest,
	"vitest":                Vitest,
	"testing library":       Vitest,
	"react testing library": Vitest,
	"playwright":            Playwright,
	"cypress":               Cypress,
	"pytest":                Pytest,

	// Styling and state
	"tailwind":          Tailwind,
	"tailwindcss":       Tailwind,
	"tailwind css":      Tailwind,
	"sass":              Sass,
	"scss":              Sass,
	"sass/scss":         Sass,
	"css modules":       CSSModules,
	"css-modules":       CSSModules,
	"styled-components": StyledComponents,
	"styled components": StyledComponents,
	"redux":             Redux,
	"redux toolkit":     Redux,
	"zustand":           Zustand,

	// Service providers
	"auth0":     Auth0,
	"clerk":     Clerk,
	"nextauth":  NextAuth,
	"next-auth": NextAuth,
	"auth.js":   NextAuth,
	"vercel":    Vercel,
	"aws":       AWS,
	"docker":    Docker,
	"stripe":    Stripe,
	"sentry":    Sentry,
	"resend":    Resend,
	"sendgrid":  SendGrid,

	// Sentinel
	"universal": Universal,
}

// canonical is the closed set of tags, derived once from the synonym map.
var canonical = func() map[Tag]struct{} {
	set := make(map[Tag]struct{}, len(synonyms))
	for _, t := range synonyms {
		set[t] = struct{}{}
	}
	return set
}()
