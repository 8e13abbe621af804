package combat

import (
	"slices"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// Enemy is a troop member
type Enemy struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CurrentHP      int    `json:"current_hp"`
	MaxHitPoints   int    `json:"max_hp"`
	CurrentMP      int    `json:"current_mp"`
	MaxMagicPoints int    `json:"max_mp"`
	States         []int  `json:"states"`

	// Passives are battle passives the enemy runs at encounter start
	Passives []skill.ID `json:"passives,omitempty"`

	DeathStateID int `json:"death_state_id"`
}

// NewEnemy creates a living enemy at full HP
func NewEnemy(id, name string, maxHP int) *Enemy {
	return &Enemy{
		ID:           id,
		Name:         name,
		CurrentHP:    maxHP,
		MaxHitPoints: maxHP,
		States:       []int{},
		DeathStateID: 1,
	}
}

func (e *Enemy) GetID() string                { return e.ID }
func (e *Enemy) GetName() string              { return e.Name }
func (e *Enemy) BattlePassiveIDs() []skill.ID { return slices.Clone(e.Passives) }
func (e *Enemy) MaxHP() int                   { return e.MaxHitPoints }
func (e *Enemy) MaxMP() int                   { return e.MaxMagicPoints }

// IsAlive returns true if the enemy has HP left and is not marked dead
func (e *Enemy) IsAlive() bool {
	return e.CurrentHP > 0 && !e.HasState(e.DeathStateID)
}

// HasState checks if a state is applied
func (e *Enemy) HasState(id int) bool {
	return slices.Contains(e.States, id)
}

// AddState applies a state if not already present. The death state empties HP.
func (e *Enemy) AddState(id int) error {
	if e.HasState(id) {
		return nil
	}
	e.States = append(e.States, id)
	if id == e.DeathStateID {
		e.CurrentHP = 0
	}
	return nil
}

// RemoveState clears a state
func (e *Enemy) RemoveState(id int) error {
	e.States = slices.DeleteFunc(e.States, func(v int) bool { return v == id })
	return nil
}

// ApplyDamage reduces HP, adding the death state at 0
func (e *Enemy) ApplyDamage(damage int) error {
	if damage <= 0 || !e.IsAlive() {
		return nil
	}
	e.CurrentHP = max(e.CurrentHP-damage, 0)
	if e.CurrentHP == 0 {
		return e.AddState(e.DeathStateID)
	}
	return nil
}

// RecoverHP restores hit points up to the maximum
func (e *Enemy) RecoverHP(amount int) {
	if amount <= 0 || !e.IsAlive() {
		return
	}
	e.CurrentHP = min(e.CurrentHP+amount, e.MaxHitPoints)
}

// RecoverMP changes MP within [0, max]
func (e *Enemy) RecoverMP(amount int) {
	e.CurrentMP = min(max(e.CurrentMP+amount, 0), e.MaxMagicPoints)
}
