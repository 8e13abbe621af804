package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skillsJSON = `[
null,
{"id":1,"name":"Attack","stypeId":0,"scope":1,"occasion":1,"mpCost":0,"effects":[{"code":21,"dataId":0,"value1":1,"value2":0}],"animationId":-1},
{"id":2,"name":"War Cry","stypeId":3,"scope":8,"occasion":0,"mpCost":0,"effects":[{"code":21,"dataId":4,"value1":1,"value2":0}]},
{"id":3,"name":"Ambush","stypeId":3,"scope":2,"occasion":0,"mpCost":5,"effects":[{"code":11,"dataId":0,"value1":0,"value2":-20}]}
]`

const statesJSON = `[
null,
{"id":1,"name":"Knockout","traits":[{"code":23,"dataId":9,"value":0}]},
{"id":4,"name":"Inspired","traits":[{"code":21,"dataId":2,"value":1.15}]}
]`

func writeData(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeData(t, map[string]string{SkillsFile: skillsJSON, StatesFile: statesJSON})

	db, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, db.Skills(), 3)
	assert.Equal(t, "War Cry", db.Skill(2).Name)
	assert.Equal(t, skill.ScopeAllAllies, db.Skill(2).Scope)
	assert.Equal(t, 5, db.Skill(3).MPCost)
	assert.Equal(t, "Inspired", db.State(4).Name)
	assert.Nil(t, db.Skill(42))
	assert.False(t, db.Classified())
}

func TestLoad_StatesOptional(t *testing.T) {
	dir := writeData(t, map[string]string{SkillsFile: skillsJSON})

	db, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, db.State(1))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing skills", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.True(t, passerr.IsNotFound(err))
	})

	t.Run("malformed skills", func(t *testing.T) {
		dir := writeData(t, map[string]string{SkillsFile: `[null, {"id": "x"`})
		_, err := Load(dir)
		assert.True(t, passerr.IsInvalidArgument(err))
	})

	t.Run("malformed states", func(t *testing.T) {
		dir := writeData(t, map[string]string{SkillsFile: skillsJSON, StatesFile: `{}`})
		_, err := Load(dir)
		assert.True(t, passerr.IsInvalidArgument(err))
	})
}

func TestClassify_ProducesNewDatabase(t *testing.T) {
	dir := writeData(t, map[string]string{SkillsFile: skillsJSON, StatesFile: statesJSON})
	raw, err := Load(dir)
	require.NoError(t, err)

	classifier := skill.NewClassifier(&skill.ClassifierConfig{PassiveTypes: []int{3}, States: raw})
	classified := raw.Classify(classifier, nil)

	assert.True(t, classified.Classified())
	assert.False(t, raw.Classified())

	warCry := classified.Skill(2)
	assert.True(t, warCry.IsPassive)
	assert.Equal(t, skill.TimingMenu, warCry.Timing)
	assert.Empty(t, warCry.Effects)
	assert.Equal(t, []skill.Trait{{Code: 21, DataID: 2, Value: 1.15}}, warCry.Traits)

	ambush := classified.Skill(3)
	assert.Equal(t, skill.TimingBattle, ambush.Timing)

	assert.False(t, classified.Skill(1).IsPassive)

	// the raw table keeps its original shape
	assert.False(t, raw.Skill(2).IsPassive)
	assert.Len(t, raw.Skill(2).Effects, 1)

	// a second pass changes nothing
	again := classified.Classify(classifier, nil)
	for _, def := range classified.Skills() {
		assert.Equal(t, def, again.Skill(def.ID))
	}
}

func TestNew_SkipsNilAndOrdersByID(t *testing.T) {
	db := New([]*skill.Definition{nil, {ID: 9}, {ID: 2}, nil, {ID: 5}}, []*skill.State{nil, {ID: 3}})

	var ids []skill.ID
	for _, def := range db.Skills() {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []skill.ID{2, 5, 9}, ids)
	assert.NotNil(t, db.State(3))
}
