package synapsedoc

// GroupByFolder partitions pipelines into folder groups keyed by each
// record's folder attribute. Groups appear in first-seen-folder order, and
// pipelines keep their load order within a group. The empty folder name is
// a distinct group, never merged with any other. Empty input yields nil.
func GroupByFolder(pipelines []*Pipeline) []FolderGroup {
	var groups []FolderGroup
	index := make(map[string]int)

	for _, pipeline := range pipelines {
		i, ok := index[pipeline.Folder]
		if !ok {
			i = len(groups)
			index[pipeline.Folder] = i
			groups = append(groups, FolderGroup{Name: pipeline.Folder})
		}
		groups[i].Pipelines = append(groups[i].Pipelines, pipeline)
	}
	return groups
}

// IndexByName builds a lookup from pipeline name to record. When two
// pipelines share a name the first one loaded wins; use DuplicateNames to
// detect that situation.
func IndexByName(pipelines []*Pipeline) map[string]*Pipeline {
	index := make(map[string]*Pipeline, len(pipelines))
	for _, pipeline := range pipelines {
		if _, ok := index[pipeline.Name]; ok {
			continue
		}
		index[pipeline.Name] = pipeline
	}
	return index
}

// DuplicateNames returns the pipeline names that occur more than once, in
// the order their second occurrence was seen. Trigger matching joins on
// name equality, so duplicates make the join ambiguous.
func DuplicateNames(pipelines []*Pipeline) []string {
	seen := make(map[string]int)
	var duplicates []string
	for _, pipeline := range pipelines {
		seen[pipeline.Name]++
		if seen[pipeline.Name] == 2 {
			duplicates = append(duplicates, pipeline.Name)
		}
	}
	return duplicates
}
