package frontmatter

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// Parse extracts the YAML frontmatter of a markdown document as a metadata
// map. It returns a nil map when the document carries no frontmatter block,
// and an error when the block exists but is not valid YAML. The body of the
// document is ignored.
func Parse(content []byte) (map[string]interface{}, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData, err := meta.TryGet(pctx)
	if err != nil {
		return nil, errors.Wrap(err, "invalid frontmatter")
	}

	return metaData, nil
}
