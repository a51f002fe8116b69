package synapsedoc

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Verify parses a generated document and checks it for structural issues.
// Returns a list of human-readable issue descriptions; an empty list means
// the document is sound.
//
// Checks include:
//   - Document must not be empty
//   - No heading marker deeper than markdown level 6
//   - Every link must have a non-empty target
func Verify(doc []byte) []string {
	var issues []string

	if len(bytes.TrimSpace(doc)) == 0 {
		return []string{"document is empty"}
	}

	// A 7+ hash prefix is not parsed as a heading, so it never shows up in
	// the AST; scan for it textually.
	for i, line := range bytes.Split(doc, []byte("\n")) {
		rest := bytes.TrimLeft(line, "#")
		depth := len(line) - len(rest)
		if depth > 6 && (len(rest) == 0 || rest[0] == ' ') {
			issues = append(issues, fmt.Sprintf("line %d: heading deeper than markdown level 6", i+1))
		}
	}

	root := goldmark.New().Parser().Parse(text.NewReader(doc))
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok && len(link.Destination) == 0 {
			issues = append(issues, fmt.Sprintf("line %d: link with an empty target", lineOf(doc, link)))
		}
		return ast.WalkContinue, nil
	})

	return issues
}

// lineOf returns the 1-based line number of a node's first text segment,
// or 0 when the node carries no segment information.
func lineOf(doc []byte, n ast.Node) int {
	var offset = -1
	if n.Type() == ast.TypeInline {
		if lines := n.Parent().Lines(); lines != nil && lines.Len() > 0 {
			offset = lines.At(0).Start
		}
	}
	if offset < 0 {
		return 0
	}
	return 1 + bytes.Count(doc[:offset], []byte("\n"))
}
