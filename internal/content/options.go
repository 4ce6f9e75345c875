// internal/content/options.go
//
// Derives the distinct value lists that populate the sidebar filters.
// Lists are sorted for stable rendering.  The "Undefined" project-type
// sentinel is suppressed here (it is noise in a picker) yet still matches
// when a caller filters on it explicitly; the filter engine never consults
// these lists.

package content

import "sort"

// FilterOptions holds the distinct values offered by the filter UI.
type FilterOptions struct {
	ProjectTypes   []string `json:"projectTypes"`
	TypeOfProjects []string `json:"typeOfProjects"`
	ProblemTypes   []string `json:"problemTypes"`
	Tags           []string `json:"tags"`
	Tools          []string `json:"tools"`
	Languages      []string `json:"languages"`
}

// OptionsFor collects distinct filterable values across the insight set.
func OptionsFor(insights []Insight) FilterOptions {
	var (
		projectTypes   = map[string]struct{}{}
		typeOfProjects = map[string]struct{}{}
		problemTypes   = map[string]struct{}{}
		tags           = map[string]struct{}{}
		tools          = map[string]struct{}{}
		languages      = map[string]struct{}{}
	)

	for i := range insights {
		ins := &insights[i]
		if ins.ProjectType != "" && ins.ProjectType != ProjectTypeUndefined {
			projectTypes[ins.ProjectType] = struct{}{}
		}
		if ins.TypeOfProject != "" {
			typeOfProjects[ins.TypeOfProject] = struct{}{}
		}
		if ins.TypeOfProblem != "" {
			problemTypes[ins.TypeOfProblem] = struct{}{}
		}
		for _, t := range ins.Tags {
			tags[t] = struct{}{}
		}
		for _, t := range ins.TechStack.Tools {
			tools[t] = struct{}{}
		}
		for _, l := range ins.TechStack.Languages {
			languages[l] = struct{}{}
		}
	}

	return FilterOptions{
		ProjectTypes:   sortedKeys(projectTypes),
		TypeOfProjects: sortedKeys(typeOfProjects),
		ProblemTypes:   sortedKeys(problemTypes),
		Tags:           sortedKeys(tags),
		Tools:          sortedKeys(tools),
		Languages:      sortedKeys(languages),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
