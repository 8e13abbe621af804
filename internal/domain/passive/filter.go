package passive

import "github.com/KirkDiggler/passive-skills/internal/domain/skill"

// SelectionFilter hides passive skill types from manual selection
type SelectionFilter struct {
	types map[int]struct{}
}

// NewSelectionFilter creates a filter for the configured passive skill types
func NewSelectionFilter(passiveTypes []int) *SelectionFilter {
	types := make(map[int]struct{}, len(passiveTypes))
	for _, t := range passiveTypes {
		types[t] = struct{}{}
	}
	return &SelectionFilter{types: types}
}

// Excludes reports whether def must never be enabled in a skill list
func (f *SelectionFilter) Excludes(def *skill.Definition) bool {
	if def == nil {
		return true
	}
	_, passive := f.types[def.TypeID]
	return passive
}

// CommandSkillTypes drops passive types from an actor's battle command skill types
func (f *SelectionFilter) CommandSkillTypes(typeIDs []int) []int {
	out := make([]int, 0, len(typeIDs))
	for _, t := range typeIDs {
		if _, passive := f.types[t]; !passive {
			out = append(out, t)
		}
	}
	return out
}
