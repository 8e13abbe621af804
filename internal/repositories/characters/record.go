package characters

import (
	"slices"
	"time"

	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
)

// Data is the stored form of a character
type Data struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	HP                int                       `json:"hp"`
	MP                int                       `json:"mp"`
	Params            [character.ParamCount]int `json:"params"`
	Skills            []skill.ID                `json:"skills"`
	States            []int                     `json:"states"`
	BaseTraits        []skill.Trait             `json:"base_traits,omitempty"`
	CommandSkillTypes []int                     `json:"command_skill_types,omitempty"`
	Passives          *passive.Snapshot         `json:"passives,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

func validate(c *character.Character) error {
	if c == nil {
		return passerr.InvalidArgument("character cannot be nil")
	}
	if c.Name == "" {
		return passerr.InvalidArgument("character name is required")
	}
	return nil
}

func toData(c *character.Character) *Data {
	return &Data{
		ID:                c.ID,
		Name:              c.Name,
		HP:                c.HP,
		MP:                c.MP,
		Params:            c.Params,
		Skills:            slices.Clone(c.Skills),
		States:            slices.Clone(c.States),
		BaseTraits:        slices.Clone(c.BaseTraits),
		CommandSkillTypes: slices.Clone(c.CommandSkillTypes),
		Passives:          c.PassiveSnapshot(),
	}
}

// fromData rebuilds a character. Host services are not attached; callers
// Configure it and hand it to the passive service, which restores the snapshot.
func fromData(d *Data) *character.Character {
	c := character.New(d.ID, d.Name, 0, 0)
	c.HP = d.HP
	c.MP = d.MP
	c.Params = d.Params
	if d.Skills != nil {
		c.Skills = slices.Clone(d.Skills)
	}
	if d.States != nil {
		c.States = slices.Clone(d.States)
	}
	c.BaseTraits = slices.Clone(d.BaseTraits)
	c.CommandSkillTypes = slices.Clone(d.CommandSkillTypes)
	c.RestorePassives(d.Passives)
	return c
}

func notFound(id string) error {
	return passerr.NotFoundf("character with ID '%s' not found", id).
		WithMeta("character_id", id)
}
