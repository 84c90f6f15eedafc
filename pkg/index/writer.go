// Package index serializes classified skill records into the JSON artifact
// consumed by the documentation site generator.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/foundrydocs/skillindex/pkg/classify"
	"github.com/foundrydocs/skillindex/pkg/skills"
)

// Marshal sorts the records by name and renders them as a pretty-printed
// JSON array with stable key order. The input slice is not modified.
func Marshal(records []skills.Skill) ([]byte, error) {
	sorted := make([]skills.Skill, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal skill index")
	}

	return append(data, '\n'), nil
}

// Write renders the records and overwrites the index file at path, creating
// the parent directory if needed.
func Write(path string, records []skills.Skill) error {
	data, err := Marshal(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write skill index %s", path)
	}

	return nil
}

// Summary describes an emitted index for operator output.
type Summary struct {
	Total  int
	ByLang map[classify.Lang]int
}

// Summarize computes the total count and per-language histogram.
func Summarize(records []skills.Skill) Summary {
	s := Summary{ByLang: make(map[classify.Lang]int)}
	for _, r := range records {
		s.Total++
		s.ByLang[r.Lang]++
	}
	return s
}

// String renders the summary as a single line, languages sorted for
// deterministic output.
func (s Summary) String() string {
	langs := make([]string, 0, len(s.ByLang))
	for lang := range s.ByLang {
		langs = append(langs, string(lang))
	}
	sort.Strings(langs)

	parts := make([]string, 0, len(langs))
	for _, lang := range langs {
		parts = append(parts, fmt.Sprintf("%s: %d", lang, s.ByLang[classify.Lang(lang)]))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("%d skills indexed", s.Total)
	}
	return fmt.Sprintf("%d skills indexed (%s)", s.Total, strings.Join(parts, ", "))
}
