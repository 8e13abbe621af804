// Package gamedata holds the skill and state tables loaded from the game's data files.
package gamedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
)

const (
	SkillsFile = "Skills.json"
	StatesFile = "States.json"
)

// Database is a read-only view of the skill and state tables
type Database struct {
	skills     map[skill.ID]*skill.Definition
	order      []skill.ID
	states     map[int]*skill.State
	classified bool
}

// New builds a database from already decoded records. Nil entries are skipped.
func New(skills []*skill.Definition, states []*skill.State) *Database {
	db := &Database{
		skills: make(map[skill.ID]*skill.Definition, len(skills)),
		states: make(map[int]*skill.State, len(states)),
	}

	for _, def := range skills {
		if def == nil {
			continue
		}
		if _, dup := db.skills[def.ID]; !dup {
			db.order = append(db.order, def.ID)
		}
		db.skills[def.ID] = def
	}
	sort.Slice(db.order, func(i, j int) bool { return db.order[i] < db.order[j] })

	for _, state := range states {
		if state == nil {
			continue
		}
		db.states[state.ID] = state
	}

	return db
}

// Load reads Skills.json and, when present, States.json from dir
func Load(dir string) (*Database, error) {
	var skills []*skill.Definition
	if err := readTable(filepath.Join(dir, SkillsFile), &skills); err != nil {
		return nil, err
	}

	var states []*skill.State
	if err := readTable(filepath.Join(dir, StatesFile), &states); err != nil {
		if !passerr.IsNotFound(err) {
			return nil, err
		}
	}

	return New(skills, states), nil
}

func readTable(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return passerr.NotFoundf("data file %s not found", path).WithMeta("path", path)
		}
		return passerr.Wrapf(err, "failed to read %s", path)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return passerr.WrapWithCode(err, passerr.CodeInvalidArgument, fmt.Sprintf("failed to parse %s", path)).
			WithMeta("path", path)
	}
	return nil
}

// Skill returns the definition for id, or nil
func (db *Database) Skill(id skill.ID) *skill.Definition {
	return db.skills[id]
}

// State returns the state for id, or nil
func (db *Database) State(id int) *skill.State {
	return db.states[id]
}

// Skills returns every definition in id order
func (db *Database) Skills() []*skill.Definition {
	out := make([]*skill.Definition, 0, len(db.order))
	for _, id := range db.order {
		out = append(out, db.skills[id])
	}
	return out
}

// Classified reports whether this database came out of Classify
func (db *Database) Classified() bool {
	return db.classified
}

// Classify runs every skill through the classifier and returns a new database.
// The receiver is left untouched; states are shared since classification never writes them.
func (db *Database) Classify(classifier *skill.Classifier, logger *zap.Logger) *Database {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := &Database{
		skills:     make(map[skill.ID]*skill.Definition, len(db.skills)),
		order:      append([]skill.ID(nil), db.order...),
		states:     db.states,
		classified: true,
	}

	passives := 0
	for _, id := range db.order {
		def := classifier.Classify(db.skills[id])
		if def.IsPassive {
			passives++
		}
		out.skills[id] = def
	}

	if db.classified {
		logger.Warn("skill database classified more than once")
	}
	logger.Info("classified skill database",
		zap.Int("skills", len(out.order)),
		zap.Int("passive", passives),
		zap.Int("states", len(out.states)),
	)

	return out
}
