// Package classify resolves the language and category of a skill directory.
// Evidence is consulted in strict priority order: the curated symlink tree is
// authoritative, the directory-name suffix convention is the fallback, and
// skills with neither signal default to (core, general).
package classify

// Lang is the canonical language tag emitted in the skill index.
type Lang string

const (
	LangPy     Lang = "py"
	LangDotnet Lang = "dotnet"
	LangTS     Lang = "ts"
	LangJava   Lang = "java"
	LangRust   Lang = "rust"
	LangCore   Lang = "core"
)

// DefaultCategory is assigned when no curated category exists for a skill.
const DefaultCategory = "general"

// Classification is a resolved (language, category) pair.
type Classification struct {
	Lang     Lang
	Category string
}

// Classifier inspects a skill directory name and either produces a
// classification or declines.
type Classifier interface {
	Classify(dirName string) (Classification, bool)
}

// Resolver runs an ordered chain of classifiers; the first match wins.
type Resolver struct {
	chain []Classifier
}

// NewResolver creates a resolver over the given classifiers, consulted in
// argument order.
func NewResolver(classifiers ...Classifier) *Resolver {
	return &Resolver{chain: classifiers}
}

// Resolve returns the classification for a skill directory name, falling
// back to (core, general) when no classifier matches.
func (r *Resolver) Resolve(dirName string) Classification {
	for _, c := range r.chain {
		if cl, ok := c.Classify(dirName); ok {
			return cl
		}
	}
	return Classification{Lang: LangCore, Category: DefaultCategory}
}
