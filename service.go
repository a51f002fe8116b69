package synapsedoc

import (
	"bytes"
)

// Generator produces the final markdown document from a loaded repository.
// It is stateless and safe for reuse across calls.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// Generate groups the repository's pipelines, joins them with their
// triggers, renders the markdown body, and prepends the intro content.
// The result is deterministic: identical inputs produce byte-identical
// output.
func (g *Generator) Generate(input Input) ([]byte, error) {
	if input.Repo == nil {
		return nil, ErrNilRepo
	}

	opts := input.Options.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	renderer := &documentRenderer{opts: opts}
	renderer.renderDocument(&buf, input.Repo)

	return joinDocument(input.Intro, buf.Bytes()), nil
}

// joinDocument concatenates the intro content and the generated body,
// guaranteeing a blank line between them.
func joinDocument(intro string, body []byte) []byte {
	if intro == "" {
		return body
	}
	doc := []byte(intro)
	if !bytes.HasSuffix(doc, []byte("\n\n")) {
		if bytes.HasSuffix(doc, []byte("\n")) {
			doc = append(doc, '\n')
		} else {
			doc = append(doc, '\n', '\n')
		}
	}
	return append(doc, body...)
}
