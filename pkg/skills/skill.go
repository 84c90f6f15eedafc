// Package skills discovers documented skills from a corpus directory. Each
// skill is a directory containing a SKILL.md file whose YAML frontmatter
// carries the skill's metadata; directories without one are not skills.
package skills

import "github.com/foundrydocs/skillindex/pkg/classify"

// SkillFileName is the metadata file that identifies a skill directory.
const SkillFileName = "SKILL.md"

// Skill is one classified entry of the generated index. Field order matches
// the key order of the emitted JSON.
type Skill struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Package     string        `json:"package,omitempty"`
	Lang        classify.Lang `json:"lang"`
	Category    string        `json:"category"`
}

// Warning records a skill directory that was skipped during loading. Skipped
// skills never fail the run; the caller decides where the diagnostics go.
type Warning struct {
	Directory string
	Reason    string
}

func (w Warning) String() string {
	return "skipping " + w.Directory + ": " + w.Reason
}
