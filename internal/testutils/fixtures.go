package testutils

import (
	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	"github.com/KirkDiggler/passive-skills/internal/gamedata"
)

// PassiveSkillType is the skill type the fixture dataset marks as passive
const PassiveSkillType = 99

// Fixture skill ids
const (
	SkillAttack     skill.ID = 1
	SkillAmbush     skill.ID = 10
	SkillToughness  skill.ID = 11
	SkillRally      skill.ID = 12
	SkillMeditation skill.ID = 13
)

// Fixture state ids
const (
	StateDead     = 1
	StatePoison   = 4
	StateInspired = 5
)

// CreateTestDatabase returns the unclassified fixture dataset
func CreateTestDatabase() *gamedata.Database {
	return gamedata.New([]*skill.Definition{
		{
			ID: SkillAttack, Name: "Attack", TypeID: 1,
			Scope: skill.ScopeOneEnemy, Timing: skill.TimingBattle,
			Effects: []skill.Effect{{Code: skill.EffectRecoverHP, Value2: -10}},
		},
		{
			ID: SkillAmbush, Name: "Ambush", TypeID: PassiveSkillType,
			Scope: skill.ScopeOneEnemy, Timing: skill.TimingMenu,
			Effects: []skill.Effect{{Code: skill.EffectAddState, DataID: StatePoison, Value1: 1}},
		},
		{
			ID: SkillToughness, Name: "Toughness", TypeID: PassiveSkillType,
			Scope: skill.ScopeUser, Timing: skill.TimingNone,
			Effects: []skill.Effect{},
			Traits:  []skill.Trait{{Code: 21, DataID: int(character.ParamMaxHP), Value: 1.1}},
		},
		{
			ID: SkillRally, Name: "Rally", TypeID: PassiveSkillType,
			Scope: skill.ScopeAllAllies, Timing: skill.TimingNone,
			Effects: []skill.Effect{{Code: skill.EffectAddState, DataID: StateInspired, Value1: 1}},
		},
		{
			ID: SkillMeditation, Name: "Meditation", TypeID: PassiveSkillType,
			Scope: skill.ScopeOneAlly, Timing: skill.TimingNone,
			Effects: []skill.Effect{{Code: skill.EffectGrow, DataID: int(character.ParamMaxMP), Value1: 5}},
		},
	}, []*skill.State{
		{ID: StateDead, Name: "Knockout"},
		{ID: StatePoison, Name: "Poison", Traits: []skill.Trait{{Code: 22, DataID: 7, Value: -0.1}}},
		{ID: StateInspired, Name: "Inspired", Traits: []skill.Trait{
			{Code: 21, DataID: int(character.ParamAttack), Value: 1.2},
			{Code: 22, DataID: 0, Value: 0.05},
		}},
	})
}

// CreateClassifiedTestDatabase returns the fixture dataset after classification
func CreateClassifiedTestDatabase() *gamedata.Database {
	db := CreateTestDatabase()
	return db.Classify(skill.NewClassifier(&skill.ClassifierConfig{
		PassiveTypes: []int{PassiveSkillType},
		States:       db,
	}), nil)
}

// CreateTestCharacter creates a character knowing skills, with no host services attached
func CreateTestCharacter(id, name string, skills ...skill.ID) *character.Character {
	c := character.New(id, name, 100, 30)
	c.Params[character.ParamAttack] = 12
	c.Params[character.ParamDefense] = 8
	c.Skills = append(c.Skills, skills...)
	return c
}
