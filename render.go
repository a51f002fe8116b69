package synapsedoc

import (
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/rslavey/synapse-documentation/internal/jsonutil"
)

// documentRenderer turns grouped, joined records into markdown. It has no
// side effects and is fully deterministic given its inputs; callers own the
// writer.
type documentRenderer struct {
	opts RenderOptions
}

// renderDocument emits the full document body: the top-level section
// header, then one section per folder group.
func (r *documentRenderer) renderDocument(w io.Writer, repo *Repo) {
	fmt.Fprintf(w, "%s %s\n\n", heading(r.opts.HeaderLevel), r.opts.PipelineSectionTitle)
	matches := MatchAllTriggers(repo.Triggers)
	for _, group := range GroupByFolder(repo.Pipelines) {
		r.renderFolderGroup(w, group, matches)
	}
}

// renderFolderGroup emits the folder header and every pipeline in the
// group. Folders render with a leading slash; the empty folder renders the
// NoFolderName sentinel without one.
func (r *documentRenderer) renderFolderGroup(w io.Writer, group FolderGroup, matches map[string][]TriggerMatch) {
	if group.Name == "" {
		fmt.Fprintf(w, "%s %s\n\n", heading(r.opts.HeaderLevel), NoFolderName)
	} else {
		fmt.Fprintf(w, "%s /%s\n\n", heading(r.opts.HeaderLevel), group.Name)
	}
	for _, pipeline := range group.Pipelines {
		r.renderPipeline(w, pipeline, matches[pipeline.Name])
	}
}

// renderPipeline emits a pipeline header linking its definition file, the
// description line, the activities list, and — only when at least one
// trigger references the pipeline — the triggers list.
func (r *documentRenderer) renderPipeline(w io.Writer, pipeline *Pipeline, matches []TriggerMatch) {
	fmt.Fprintf(w, "%s [%s](%s)\n\n", heading(r.opts.HeaderLevel+1), pipeline.Name, escapePath(pipeline.Path))

	description := pipeline.Description
	if description == "" {
		description = noPipelineDescription
	}
	fmt.Fprintf(w, "%s\n\n", description)

	r.renderActivities(w, pipeline)

	if len(matches) > 0 {
		r.renderTriggers(w, matches)
	}
}

// renderActivities emits the activities sub-header and one bullet per
// activity. Activities have no file of their own, so bullets link to the
// owning pipeline's definition. The header's own blank line already
// separates an empty list from the next block.
func (r *documentRenderer) renderActivities(w io.Writer, pipeline *Pipeline) {
	fmt.Fprintf(w, "%s %s\n\n", heading(r.opts.HeaderLevel+2), r.opts.ActivitiesSectionTitle)
	if len(pipeline.Activities) == 0 {
		return
	}
	for _, activity := range pipeline.Activities {
		description := activity.Description
		if description == "" {
			description = noActivityDescription
		}
		fmt.Fprintf(w, "- [%s](%s) - %s\n", activity.Name, escapePath(pipeline.Path), description)
	}
	fmt.Fprintln(w)
}

// renderTriggers emits the triggers sub-header and one bullet per matching
// trigger. Each reference entry that carries parameters contributes a
// nested parameter list under the trigger's bullet.
func (r *documentRenderer) renderTriggers(w io.Writer, matches []TriggerMatch) {
	fmt.Fprintf(w, "%s %s\n\n", heading(r.opts.HeaderLevel+2), r.opts.TriggersSectionTitle)
	if len(matches) == 0 {
		return
	}
	for _, match := range matches {
		fmt.Fprintf(w, "- [%s](%s)\n", match.Trigger.Name, escapePath(match.Trigger.Path))
		for _, ref := range match.References {
			if len(ref.Parameters) == 0 {
				continue
			}
			fmt.Fprintln(w, "  - Parameters:")
			for _, name := range sortedKeys(ref.Parameters) {
				fmt.Fprintf(w, "    - `%s`: %s\n", name, compactValue(ref.Parameters[name]))
			}
		}
	}
	fmt.Fprintln(w)
}

// heading returns a markdown heading marker of the given level.
func heading(level int) string {
	return strings.Repeat("#", level)
}

// escapePath percent-encodes a file path as data for use in a markdown
// link target. All reserved characters are escaped, including the path
// separator, and spaces become %20 rather than '+'.
func escapePath(path string) string {
	return strings.ReplaceAll(url.QueryEscape(path), "+", "%20")
}

// sortedKeys returns the map's keys in sorted order. Parameter maps come
// from JSON objects, whose decoded iteration order is random; sorting keeps
// reruns byte-identical.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// compactValue serializes a parameter value as compact JSON.
func compactValue(v any) string {
	s, err := jsonutil.MarshalCompact(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}
