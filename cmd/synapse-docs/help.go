package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: synapse-docs <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate markdown documentation for a workspace repository")
	fmt.Fprintln(w, "  doctor     Diagnose a workspace repository without writing anything")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'synapse-docs help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: synapse-docs generate [repo-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a markdown document describing the repository's pipelines,")
	fmt.Fprintln(w, "their activities, and the triggers that invoke them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  repo-dir   Repository root holding pipeline/ and trigger/ (default ./)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -r, --repo <dir>             Repository root (same as the positional argument)")
	fmt.Fprintln(w, "  -o, --readme <path>          Generated document path (default ./readme.md)")
	fmt.Fprintln(w, "      --intro <path>           Intro content path (default ./readme_intro.md)")
	fmt.Fprintln(w, "  -f, --overwrite              Allow replacing an existing readme")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sections:")
	fmt.Fprintln(w, "      --pipeline-title <s>     Top-level section title (default \"Pipelines\")")
	fmt.Fprintln(w, "      --activities-title <s>   Activities sub-header title (default \"Activities\")")
	fmt.Fprintln(w, "      --triggers-title <s>     Triggers sub-header title (default \"Triggers\")")
	fmt.Fprintln(w, "      --header-level <n>       Heading depth of the top-level section (1-4)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --verify                 Check the generated markdown before writing")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show load and render details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables SYNAPSEDOCS_* override config file values;")
	fmt.Fprintln(w, "CLI flags override both.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: synapse-docs doctor [repo-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnose a workspace repository: check the expected layout, parse every")
	fmt.Fprintln(w, "definition file, and report duplicate pipeline names and dangling")
	fmt.Fprintln(w, "trigger references. Writes nothing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --repo <dir>   Repository root (default ./)")
	fmt.Fprintln(w, "      --json         Emit machine-readable JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: synapse-docs version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: synapse-docs help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
