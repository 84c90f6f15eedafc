package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/foundrydocs/skillindex/pkg/classify"
	"github.com/foundrydocs/skillindex/pkg/frontmatter"
	"github.com/foundrydocs/skillindex/pkg/logger"
)

// Resolver fills in the language and category of a skill directory.
type Resolver interface {
	Resolve(dirName string) classify.Classification
}

// Loader scans a corpus root and produces skill records.
type Loader struct {
	resolver Resolver
}

// NewLoader creates a loader that classifies skills with the given resolver.
func NewLoader(resolver Resolver) *Loader {
	return &Loader{resolver: resolver}
}

// Load scans the immediate children of scanRoot and returns one record per
// valid skill, in directory-listing order, plus a warning for every
// directory that was skipped. Failing to list scanRoot itself is the only
// fatal condition.
func (l *Loader) Load(ctx context.Context, scanRoot string) ([]Skill, []Warning, error) {
	log := logger.G(ctx)

	entries, err := os.ReadDir(scanRoot)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to list scan root %s", scanRoot)
	}

	var records []Skill
	var warnings []Warning

	for _, entry := range entries {
		entryPath := filepath.Join(scanRoot, entry.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		skillFile := filepath.Join(entryPath, SkillFileName)
		fileInfo, err := os.Stat(skillFile)
		if err != nil || !fileInfo.Mode().IsRegular() {
			log.WithField("directory", entry.Name()).Debug("no SKILL.md, not a skill")
			continue
		}

		record, err := l.loadSkill(skillFile)
		if err != nil {
			warnings = append(warnings, Warning{Directory: entry.Name(), Reason: err.Error()})
			continue
		}

		cl := l.resolver.Resolve(entry.Name())
		record.Lang = cl.Lang
		record.Category = cl.Category

		records = append(records, *record)
	}

	return records, warnings, nil
}

// loadSkill reads and validates a single SKILL.md file.
func (l *Loader) loadSkill(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	metaData, err := frontmatter.Parse([]byte(frontmatter.Sanitize(string(content))))
	if err != nil {
		return nil, err
	}
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	if name == "" {
		return nil, errors.New("missing name in frontmatter")
	}

	description, _ := metaData["description"].(string)
	if description == "" {
		description = name
	}

	pkg, _ := metaData["package"].(string)

	return &Skill{
		Name:        name,
		Description: description,
		Package:     pkg,
	}, nil
}
