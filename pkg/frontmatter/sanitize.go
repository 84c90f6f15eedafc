// Package frontmatter handles the YAML frontmatter block of SKILL.md files:
// locating it, repairing known YAML incompatibilities, and parsing it into
// metadata.
package frontmatter

import (
	"regexp"
	"strings"
)

const delimiter = "---"

// packageLine matches a "package:" entry whose value starts with a bare "@".
// YAML reserves "@" as an indicator character, so values like
// "@azure/storage-blob" fail to parse unless quoted. Only the package key is
// known to carry such values in the skill corpus, so the fix is scoped to it.
var packageLine = regexp.MustCompile(`^([ \t]*package:[ \t]*)(@.*?)(\r?)$`)

// Sanitize quotes bare @-prefixed package values inside the first
// frontmatter block. Content without a frontmatter block is returned
// unchanged; every line outside the block, and every line inside it that
// does not match, is left byte-for-byte identical.
func Sanitize(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != delimiter {
		return content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return content
	}

	for i := 1; i < end; i++ {
		if m := packageLine.FindStringSubmatch(lines[i]); m != nil {
			lines[i] = m[1] + `"` + m[2] + `"` + m[3]
		}
	}

	return strings.Join(lines, "\n")
}
