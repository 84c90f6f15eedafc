package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundrydocs/skillindex/pkg/presenter"
	"github.com/foundrydocs/skillindex/pkg/skills"
)

// newRepo lays out a minimal repository: a skills-src scan root, a catalog
// symlink tree, and an output path inside a docs directory.
func newRepo(t *testing.T) *GenerateConfig {
	t.Helper()
	tmpDir := t.TempDir()

	config := &GenerateConfig{
		ScanRoot: filepath.Join(tmpDir, "skills-src"),
		LinkRoot: filepath.Join(tmpDir, "catalog"),
		Output:   filepath.Join(tmpDir, "docs", "skills-index.json"),
	}
	require.NoError(t, os.MkdirAll(config.ScanRoot, 0o755))
	require.NoError(t, os.MkdirAll(config.LinkRoot, 0o755))

	return config
}

func writeSkillFile(t *testing.T, scanRoot, dirName, content string) {
	t.Helper()
	dir := filepath.Join(scanRoot, dirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, skills.SkillFileName), []byte(content), 0o644))
}

func readIndex(t *testing.T, path string) []skills.Skill {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []skills.Skill
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}

func TestRunGenerate(t *testing.T) {
	presenter.SetQuiet(true)
	defer presenter.SetQuiet(false)

	config := newRepo(t)

	// Suffix-classified skill with description falling back to name
	writeSkillFile(t, config.ScanRoot, "foo-py", `---
name: foo
---

# Foo
`)

	// Symlink-classified skill with an @-scoped package
	writeSkillFile(t, config.ScanRoot, "bar", `---
name: bar
package: @azure/bar
---

# Bar
`)
	categoryPath := filepath.Join(config.LinkRoot, "typescript", "networking")
	require.NoError(t, os.MkdirAll(categoryPath, 0o755))
	require.NoError(t, os.Symlink(
		filepath.Join("..", "..", "..", "skills-src", "bar"),
		filepath.Join(categoryPath, "bar-link"),
	))

	// Not a skill, must not appear in the output
	require.NoError(t, os.MkdirAll(filepath.Join(config.ScanRoot, "empty"), 0o755))

	// Dropped with a warning, must not appear in the output
	writeSkillFile(t, config.ScanRoot, "broken", `---
description: no name here
---
`)

	require.NoError(t, runGenerate(context.Background(), config))

	records := readIndex(t, config.Output)
	require.Len(t, records, 2)

	// Sorted by name: bar before foo
	assert.Equal(t, "bar", records[0].Name)
	assert.Equal(t, "bar", records[0].Description)
	assert.Equal(t, "@azure/bar", records[0].Package)
	assert.Equal(t, "ts", string(records[0].Lang))
	assert.Equal(t, "networking", records[0].Category)

	assert.Equal(t, "foo", records[1].Name)
	assert.Equal(t, "foo", records[1].Description)
	assert.Empty(t, records[1].Package)
	assert.Equal(t, "py", string(records[1].Lang))
	assert.Equal(t, "general", records[1].Category)
}

func TestRunGenerateIsIdempotent(t *testing.T) {
	presenter.SetQuiet(true)
	defer presenter.SetQuiet(false)

	config := newRepo(t)
	writeSkillFile(t, config.ScanRoot, "alpha-py", `---
name: alpha
---
`)
	writeSkillFile(t, config.ScanRoot, "beta-rust", `---
name: beta
---
`)

	require.NoError(t, runGenerate(context.Background(), config))
	first, err := os.ReadFile(config.Output)
	require.NoError(t, err)

	require.NoError(t, runGenerate(context.Background(), config))
	second, err := os.ReadFile(config.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunGenerateMissingScanRoot(t *testing.T) {
	config := newRepo(t)
	require.NoError(t, os.RemoveAll(config.ScanRoot))

	assert.Error(t, runGenerate(context.Background(), config))
}

func TestRunGenerateMissingLinkRoot(t *testing.T) {
	config := newRepo(t)
	require.NoError(t, os.RemoveAll(config.LinkRoot))

	assert.Error(t, runGenerate(context.Background(), config))
}

func TestRunValidate(t *testing.T) {
	presenter.SetQuiet(true)
	defer presenter.SetQuiet(false)

	generate := newRepo(t)
	writeSkillFile(t, generate.ScanRoot, "good", `---
name: good
---
`)
	writeSkillFile(t, generate.ScanRoot, "broken", `---
description: nameless
---
`)

	config := &ValidateConfig{ScanRoot: generate.ScanRoot, LinkRoot: generate.LinkRoot}

	t.Run("lenient by default", func(t *testing.T) {
		assert.NoError(t, runValidate(context.Background(), config))
	})

	t.Run("strict fails on dropped skills", func(t *testing.T) {
		strict := &ValidateConfig{ScanRoot: generate.ScanRoot, LinkRoot: generate.LinkRoot, Strict: true}
		err := runValidate(context.Background(), strict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("validate does not write the index", func(t *testing.T) {
		_, err := os.Stat(generate.Output)
		assert.True(t, os.IsNotExist(err))
	})
}
