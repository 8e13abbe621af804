// Package character is the host-side actor: learned skills, states, resources and
// the lifecycle hooks that keep its passive index current.
package character

import (
	"slices"

	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	"github.com/KirkDiggler/passive-skills/internal/events"
)

// DefaultDeathStateID is the state that marks a battler as dead
const DefaultDeathStateID = 1

// Param indexes a character's growable parameters, in data file order
type Param int

const (
	ParamMaxHP Param = iota
	ParamMaxMP
	ParamAttack
	ParamDefense
	ParamMagicAttack
	ParamMagicDefense
	ParamAgility
	ParamLuck

	ParamCount
)

// Character is a party member.
//
// Mutators emit lifecycle events on the attached bus after the change is
// committed, so listeners always observe the new state. A Character is not
// safe for concurrent use.
type Character struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	HP     int             `json:"hp"`
	MP     int             `json:"mp"`
	Params [ParamCount]int `json:"params"`

	Skills     []skill.ID    `json:"skills"`
	States     []int         `json:"states"`
	BaseTraits []skill.Trait `json:"base_traits,omitempty"`

	// CommandSkillTypes are the skill types offered as battle commands
	CommandSkillTypes []int `json:"command_skill_types,omitempty"`

	bus          *events.Bus
	states       skill.StateLookup
	deathStateID int

	passives *passive.Index
	saved    *passive.Snapshot
}

// Config wires a character to its host services. Every field is optional.
type Config struct {
	Bus          *events.Bus
	States       skill.StateLookup
	DeathStateID int
}

// New creates a living character at full HP and MP
func New(id, name string, maxHP, maxMP int) *Character {
	c := &Character{
		ID:           id,
		Name:         name,
		HP:           maxHP,
		MP:           maxMP,
		Skills:       []skill.ID{},
		States:       []int{},
		deathStateID: DefaultDeathStateID,
	}
	c.Params[ParamMaxHP] = maxHP
	c.Params[ParamMaxMP] = maxMP
	return c
}

// Configure attaches the host services. Safe to call on a character loaded from storage.
func (c *Character) Configure(cfg *Config) *Character {
	if cfg == nil {
		return c
	}
	c.bus = cfg.Bus
	c.states = cfg.States
	if cfg.DeathStateID > 0 {
		c.deathStateID = cfg.DeathStateID
	}
	return c
}

func (c *Character) GetID() string   { return c.ID }
func (c *Character) GetName() string { return c.Name }
func (c *Character) MaxHP() int      { return c.Params[ParamMaxHP] }
func (c *Character) MaxMP() int      { return c.Params[ParamMaxMP] }

// IsAlive reports whether the death state is absent
func (c *Character) IsAlive() bool {
	return !c.HasState(c.deathStateID)
}

// HasSkill reports whether id is learned
func (c *Character) HasSkill(id skill.ID) bool {
	return slices.Contains(c.Skills, id)
}

// HasState reports whether state id is applied
func (c *Character) HasState(id int) bool {
	return slices.Contains(c.States, id)
}

// LearnSkill adds id to the learned skills. Learning a known skill is a no-op.
func (c *Character) LearnSkill(id skill.ID) error {
	if c.HasSkill(id) {
		return nil
	}
	c.Skills = append(c.Skills, id)
	return c.emit(events.NewSkillLearned(c.ID, id))
}

// ForgetSkill removes id from the learned skills. Forgetting an unknown skill is a no-op.
func (c *Character) ForgetSkill(id skill.ID) error {
	if !c.HasSkill(id) {
		return nil
	}
	c.Skills = slices.DeleteFunc(c.Skills, func(v skill.ID) bool { return v == id })
	return c.emit(events.NewSkillForgotten(c.ID, id))
}

// AddState applies state id. The death state also drops HP to 0.
func (c *Character) AddState(id int) error {
	if c.HasState(id) {
		return nil
	}
	c.States = append(c.States, id)

	if id != c.deathStateID {
		return nil
	}
	c.HP = 0
	return c.emit(events.NewCharacterDied(c.ID))
}

// RemoveState clears state id. Clearing the death state leaves the character at 1 HP.
func (c *Character) RemoveState(id int) error {
	if !c.HasState(id) {
		return nil
	}
	c.States = slices.DeleteFunc(c.States, func(v int) bool { return v == id })

	if id != c.deathStateID {
		return nil
	}
	if c.HP <= 0 {
		c.HP = 1
	}
	return c.emit(events.NewCharacterRevived(c.ID))
}

// Die applies the death state
func (c *Character) Die() error {
	return c.AddState(c.deathStateID)
}

// Revive removes the death state
func (c *Character) Revive() error {
	return c.RemoveState(c.deathStateID)
}

// ApplyDamage lowers HP, killing the character when it reaches 0
func (c *Character) ApplyDamage(amount int) error {
	if !c.IsAlive() || amount <= 0 {
		return nil
	}
	c.HP = max(c.HP-amount, 0)
	if c.HP == 0 {
		return c.Die()
	}
	return nil
}

// RecoverHP raises HP up to the maximum; the dead do not recover
func (c *Character) RecoverHP(amount int) {
	if !c.IsAlive() || amount <= 0 {
		return
	}
	c.HP = min(c.HP+amount, c.MaxHP())
}

// RecoverMP changes MP within [0, max]; negative amounts drain
func (c *Character) RecoverMP(amount int) {
	c.MP = min(max(c.MP+amount, 0), c.MaxMP())
}

// SpendMP pays a skill cost, reporting false when MP is short
func (c *Character) SpendMP(cost int) bool {
	if cost > c.MP {
		return false
	}
	c.MP -= cost
	return true
}

// Grow permanently raises a parameter. Unknown params are ignored.
func (c *Character) Grow(p Param, amount int) {
	if p < 0 || p >= ParamCount {
		return
	}
	c.Params[p] += amount
	c.HP = min(c.HP, c.MaxHP())
	c.MP = min(c.MP, c.MaxMP())
}

// TraitSources collects every trait source that applies to the character: innate
// traits, then states, then whatever the trait-collection listeners append.
func (c *Character) TraitSources() ([]skill.TraitSource, error) {
	base := []skill.TraitSource{&skill.TraitSet{Name: c.Name, Traits: c.BaseTraits}}
	if c.states != nil {
		for _, id := range c.States {
			if state := c.states.State(id); state != nil {
				base = append(base, state)
			}
		}
	}

	event := events.NewTraitCollection(c.ID, base)
	if err := c.emit(event); err != nil {
		return nil, err
	}
	return event.Sources, nil
}

// Traits flattens TraitSources
func (c *Character) Traits() ([]skill.Trait, error) {
	sources, err := c.TraitSources()
	if err != nil {
		return nil, err
	}
	return skill.Flatten(sources), nil
}

func (c *Character) emit(event events.Event) error {
	if c.bus == nil {
		return nil
	}
	return c.bus.Emit(event)
}
