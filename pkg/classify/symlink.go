package classify

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// bucketLangs maps the language bucket directories of the symlink tree to
// canonical language tags. Unrecognized bucket names fall back to core.
var bucketLangs = map[string]Lang{
	"python":     LangPy,
	"dotnet":     LangDotnet,
	"typescript": LangTS,
	"java":       LangJava,
	"rust":       LangRust,
	"core":       LangCore,
}

// SymlinkIndex classifies skills from the curated symlink tree, a hierarchy
// of <langBucket>/<category>/<link> where each link's target ends in the
// skill's directory name. The tree is walked once up front into a reverse
// index from target basename to classification; the first link encountered
// for a given target wins, matching the walk order of a per-skill scan.
type SymlinkIndex struct {
	byTarget map[string]Classification
}

// BuildSymlinkIndex walks the symlink tree rooted at root. Failing to list
// the root itself is fatal; everything below it degrades gracefully — an
// unreadable bucket or category is skipped, and so is any entry that is not
// a resolvable symlink.
func BuildSymlinkIndex(root string) (*SymlinkIndex, error) {
	buckets, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list symlink root %s", root)
	}

	idx := &SymlinkIndex{byTarget: make(map[string]Classification)}

	for _, bucket := range buckets {
		if !bucket.IsDir() {
			continue
		}

		lang, ok := bucketLangs[bucket.Name()]
		if !ok {
			lang = LangCore
		}

		bucketPath := filepath.Join(root, bucket.Name())
		categories, err := os.ReadDir(bucketPath)
		if err != nil {
			continue
		}

		for _, category := range categories {
			if !category.IsDir() {
				continue
			}

			categoryPath := filepath.Join(bucketPath, category.Name())
			entries, err := os.ReadDir(categoryPath)
			if err != nil {
				continue
			}

			for _, entry := range entries {
				target, ok := resolveLink(filepath.Join(categoryPath, entry.Name()))
				if !ok {
					continue
				}

				if _, exists := idx.byTarget[target]; !exists {
					idx.byTarget[target] = Classification{
						Lang:     lang,
						Category: category.Name(),
					}
				}
			}
		}
	}

	return idx, nil
}

// resolveLink returns the basename of a symlink's resolved target. Regular
// entries, broken links, and I/O failures all report no target.
func resolveLink(path string) (string, bool) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return "", false
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}

	return filepath.Base(resolved), true
}

// Classify looks up a skill directory name in the reverse index.
func (i *SymlinkIndex) Classify(dirName string) (Classification, bool) {
	cl, ok := i.byTarget[dirName]
	return cl, ok
}

// Len returns the number of distinct targets in the index.
func (i *SymlinkIndex) Len() int {
	return len(i.byTarget)
}
