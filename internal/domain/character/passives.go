package character

import (
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// AttachPassives gives the character its passive index. The index stays
// uninitialized until InitPassives.
func (c *Character) AttachPassives(idx *passive.Index) {
	c.passives = idx
}

// Passives returns the attached index, or nil
func (c *Character) Passives() *passive.Index {
	return c.passives
}

// RestorePassives remembers a stored snapshot; InitPassives restores it against the
// learned skills instead of partitioning them again.
func (c *Character) RestorePassives(s *passive.Snapshot) {
	c.saved = s
}

// PassiveSnapshot returns the index state to store with the character
func (c *Character) PassiveSnapshot() *passive.Snapshot {
	if c.passives == nil || !c.passives.Initialized() {
		return c.saved
	}
	return c.passives.Snapshot()
}

// InitPassives initializes the attached index once
func (c *Character) InitPassives() {
	if c.passives == nil || c.passives.Initialized() {
		return
	}
	if c.saved != nil {
		c.passives.Restore(c.saved, c.Skills)
		c.saved = nil
		return
	}
	c.passives.Init(c.Skills)
}

// PartyTraitPassives lists the character's party-trait passives
func (c *Character) PartyTraitPassives() []*skill.Definition {
	if c.passives == nil {
		return []*skill.Definition{}
	}
	return c.passives.PartyTraitPassives()
}

// TraitPassives lists the character's own trait passives
func (c *Character) TraitPassives() []*skill.Definition {
	if c.passives == nil {
		return []*skill.Definition{}
	}
	return c.passives.TraitPassives()
}

// BattlePassiveIDs lists the skills queued for the passive combat phase, in learn order
func (c *Character) BattlePassiveIDs() []skill.ID {
	if c.passives == nil {
		return nil
	}
	return c.passives.IDs(passive.CategoryBattle)
}
