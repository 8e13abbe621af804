package passive

import (
	"fmt"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// Target selects which of an owner's party-trait passives a contribution change covers
type Target struct {
	specific bool
	id       skill.ID
}

// AllSkills covers every party-trait passive of the owner
func AllSkills() Target {
	return Target{}
}

// Skill covers a single party-trait passive
func Skill(id skill.ID) Target {
	return Target{specific: true, id: id}
}

// SkillID returns the id and true for a Skill target
func (t Target) SkillID() (skill.ID, bool) {
	return t.id, t.specific
}

// IsAll reports whether the target covers every skill
func (t Target) IsAll() bool {
	return !t.specific
}

func (t Target) String() string {
	if t.specific {
		return fmt.Sprintf("skill(%d)", t.id)
	}
	return "all"
}
