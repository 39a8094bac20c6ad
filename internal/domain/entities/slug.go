package entities

// SlugScope is the namespace a slug is unique within. A profile slug and
// a spark URL may coincide; uniqueness is never enforced across scopes.
type SlugScope string

const (
	SlugScopeProfile SlugScope = "profile"
	SlugScopeSpark   SlugScope = "spark"
)

// TempIDPrefix marks client-generated placeholder identifiers for
// sub-entities that have not been persisted yet.
const TempIDPrefix = "temp-"
