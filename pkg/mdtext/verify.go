package mdtext

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// outline summarizes the structural skeleton of a document as seen by a real
// Markdown parser: how many headings and pipe tables it contains.
type outline struct {
	headings int
	tables   int
}

// VerifyStructure gates formatter output: it parses the original and the
// formatted text with goldmark (GFM) and confirms that formatting did not
// lose structure. Normalization can only create headings (e.g. "##Title"
// becomes a real heading) and never removes tables, so the formatted counts
// must be at least the originals. A non-nil error means the formatted text
// should be discarded in favor of the original.
func VerifyStructure(original, formatted []byte) error {
	before := parseOutline(original)
	after := parseOutline(formatted)

	if after.headings < before.headings {
		return fmt.Errorf("formatting lost headings: %d -> %d", before.headings, after.headings)
	}
	if after.tables < before.tables {
		return fmt.Errorf("formatting lost tables: %d -> %d", before.tables, after.tables)
	}
	return nil
}

func parseOutline(content []byte) outline {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	var o outline
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			o.headings++
		case *east.Table:
			o.tables++
		}
		return ast.WalkContinue, nil
	})
	return o
}
