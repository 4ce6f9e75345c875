// internal/content/normalize.go
//
// Record normalizer: turns the nested practice arrays carried by each
// Insight into independent, listable Practice records.
//
// Contract
// --------
//   - Output order is parent order, then child order within a parent.
//     No re-sorting happens here; the sort engine owns ordering.
//   - A parent with zero children contributes zero records.
//   - Nothing is dropped, and every denormalized field is a copy, so a
//     flattened record can be filtered, sorted, and rendered without the
//     parent staying resident.

package content

// PracticeSource selects which embedded list to flatten.
type PracticeSource int

const (
	BestPractices PracticeSource = iota
	WhatNotToDo
)

// FlattenPractices flattens the chosen practice list of every insight into
// top-level records, attaching denormalized parent metadata.
func FlattenPractices(insights []Insight, src PracticeSource) []Practice {
	var out []Practice
	for i := range insights {
		ins := &insights[i]

		items := ins.BestPractices
		if src == WhatNotToDo {
			items = ins.WhatNotToDo
		}

		for _, it := range items {
			out = append(out, Practice{
				Title:       it.Title,
				Description: it.Description,
				Context:     it.Context,
				Reasoning:   it.Reasoning,
				Source:      it.Source,
				ImpactLevel: it.ImpactLevel,
				Tags:        append([]string(nil), it.Tags...),

				PostID:     ins.PostID,
				PostAuthor: ins.PostAuthor,
				PostTitle:  ins.Title,
				PostTags:   append([]string(nil), ins.Tags...),
				TechStack:  ins.TechStack.clone(),
				Ups:        ins.Ups,
				CreatedAt:  ins.CreatedAt,
			})
		}
	}
	return out
}
