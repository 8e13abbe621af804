package combat

//go:generate mockgen -destination=mock/mock_engine.go -package=mockcombat -source=battler.go

import (
	"fmt"
	"reflect"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// Battler is a combat participant
type Battler interface {
	GetID() string
	GetName() string
	IsAlive() bool
	// BattlePassiveIDs lists the skills to run in the passive phase, in order
	BattlePassiveIDs() []skill.ID
}

// IsNil reports whether b is nil or holds a nil pointer
func IsNil(b Battler) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Action is one pending use of a skill
type Action struct {
	ID      string
	Actor   Battler
	SkillID skill.ID
	// Skill is nil when the catalog does not know SkillID
	Skill *skill.Definition

	// Friends and Opponents are the actor's side and the other side at queue time
	Friends   []Battler
	Opponents []Battler
}

// SkillName names the action's skill for logs
func (a *Action) SkillName() string {
	if a.Skill != nil && a.Skill.Name != "" {
		return a.Skill.Name
	}
	return fmt.Sprintf("skill #%d", a.SkillID)
}

// ActionEngine resolves actions. The passive phase drives it in this order:
// MakeTargets, StartAction, UseItem, ApplyGlobal, then Invoke per target.
type ActionEngine interface {
	// MakeTargets resolves targets with the normal targeting rules for the skill
	MakeTargets(action *Action) []Battler
	// StartAction marks action as the current action for logging
	StartAction(action *Action, targets []Battler)
	// UseItem performs the actor's cost bookkeeping
	UseItem(action *Action)
	// ApplyGlobal applies effects that do not depend on a target
	ApplyGlobal(action *Action)
	// Invoke applies action to one target
	Invoke(action *Action, target Battler)
	// ClearLog drops transient log state
	ClearLog()
}

// LogRecorder receives combat log lines
type LogRecorder interface {
	AddCombatLogEntry(entry string)
}
