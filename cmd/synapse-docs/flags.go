package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sectionFlags holds section title and heading depth flags.
type sectionFlags struct {
	pipelineTitle   string
	activitiesTitle string
	triggersTitle   string
	headerLevel     int
}

// outputFlags holds output destination flags.
type outputFlags struct {
	readme    string
	intro     string
	overwrite bool
}

// generateFlags holds all flags for the generate command. String and int
// flags default to zero values so the merge step can tell "not set" apart
// from an explicit value.
type generateFlags struct {
	common   commonFlags
	sections sectionFlags
	output   outputFlags
	repo     string
	verify   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show load and render details")
}

// addSectionFlags adds section flags to a FlagSet.
func addSectionFlags(fs *flag.FlagSet, f *sectionFlags) {
	fs.StringVar(&f.pipelineTitle, "pipeline-title", "", "top-level section title (default \"Pipelines\")")
	fs.StringVar(&f.activitiesTitle, "activities-title", "", "activities sub-header title (default \"Activities\")")
	fs.StringVar(&f.triggersTitle, "triggers-title", "", "triggers sub-header title (default \"Triggers\")")
	fs.IntVar(&f.headerLevel, "header-level", 0, "heading depth of the top-level section (1-4, default 2)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.readme, "readme", "o", "", "generated document path (default ./readme.md)")
	fs.StringVar(&f.intro, "intro", "", "intro content path (default ./readme_intro.md)")
	fs.BoolVarP(&f.overwrite, "overwrite", "f", false, "allow replacing an existing readme")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.repo, "repo", "r", "", "repository root holding pipeline/ and trigger/ (default ./)")
	fs.BoolVar(&f.verify, "verify", false, "check the generated markdown structure before writing")

	addCommonFlags(fs, &f.common)
	addSectionFlags(fs, &f.sections)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
