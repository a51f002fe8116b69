package synapsedoc

// MatchTriggers finds every trigger that references the named pipeline,
// pairing each with its matching reference entries. A trigger may list the
// same pipeline more than once, so a match can carry multiple references.
// Matching is exact string equality; no case folding, no partial matches.
// Trigger enumeration order and reference order are preserved. Zero matches
// yields nil.
func MatchTriggers(pipelineName string, triggers []*Trigger) []TriggerMatch {
	var matches []TriggerMatch
	for _, trigger := range triggers {
		var refs []PipelineReference
		for _, ref := range trigger.References {
			if ref.PipelineName == pipelineName {
				refs = append(refs, ref)
			}
		}
		if len(refs) > 0 {
			matches = append(matches, TriggerMatch{Trigger: trigger, References: refs})
		}
	}
	return matches
}

// MatchAllTriggers builds the match lists for every referenced pipeline name
// in one pass over the triggers. Equivalent to calling MatchTriggers per
// name; the renderer uses this so the join runs once per document instead of
// once per pipeline.
func MatchAllTriggers(triggers []*Trigger) map[string][]TriggerMatch {
	index := make(map[string][]TriggerMatch)
	for _, trigger := range triggers {
		refsByName := make(map[string][]PipelineReference)
		var names []string
		for _, ref := range trigger.References {
			if _, ok := refsByName[ref.PipelineName]; !ok {
				names = append(names, ref.PipelineName)
			}
			refsByName[ref.PipelineName] = append(refsByName[ref.PipelineName], ref)
		}
		for _, name := range names {
			index[name] = append(index[name], TriggerMatch{Trigger: trigger, References: refsByName[name]})
		}
	}
	return index
}
