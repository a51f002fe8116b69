// Package synapsedoc generates markdown documentation for a Synapse
// workspace repository.
//
// A workspace repository stores its workflow metadata as JSON files in two
// subdirectories: pipeline/ holds pipeline definitions (named sequences of
// activities) and trigger/ holds trigger definitions (entities that invoke
// pipelines by name, optionally passing parameters). This package loads both
// sets of files, groups pipelines by their folder attribute, joins each
// pipeline with the triggers that reference it, and renders the result as a
// single markdown document.
//
// # Quick Start
//
// Load a repository, generate the document, and write it out:
//
//	repo, err := synapsedoc.LoadRepo("./workspace")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen := synapsedoc.New()
//	doc, err := gen.Generate(synapsedoc.Input{
//	    Intro:   "# My Workspace\n",
//	    Repo:    repo,
//	    Options: synapsedoc.DefaultRenderOptions(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("readme.md", doc, 0644)
//
// # Generation Pipeline
//
// Generation follows these stages:
//
//  1. LoadRepo: read and decode pipeline/*.json and trigger/*.json (JSONC
//     comments and trailing commas are tolerated)
//  2. GroupByFolder: partition pipelines into folder groups in
//     first-seen-folder order
//  3. MatchAllTriggers: join each pipeline with the triggers that reference
//     it by exact name equality
//  4. Render: emit markdown headers, activity bullets, and trigger bullets
//     with nested parameter lists
//
// The whole model is immutable after load, and Generate is deterministic:
// identical inputs produce byte-identical output.
//
// # Verification
//
// Verify parses a generated document with Goldmark and reports structural
// issues (empty link targets, headings deeper than markdown allows). It
// backs the CLI's --verify flag.
package synapsedoc
