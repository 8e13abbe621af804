package skill

import (
	"slices"

	"go.uber.org/zap"
)

// StateLookup resolves status definitions by id
type StateLookup interface {
	State(id int) *State
}

type timingRewrite int

const (
	// timingForceBattle makes the skill fire at the start of every encounter
	timingForceBattle timingRewrite = iota
	// timingMenuUnlessFixed moves the skill to one-shot menu activation unless it is
	// already battle-only or always; only then are status effects inlined as traits
	timingMenuUnlessFixed
)

// rule rewrites one group of raw scopes. First match wins.
type rule struct {
	name         string
	scopes       []Scope
	normalize    Scope // ScopeNone keeps the raw scope
	timing       timingRewrite
	inlineStates bool
}

// Dead-ally scopes have no rule: a fallen character never holds an active passive.
var rules = []rule{
	{
		name:      "single-enemy",
		scopes:    []Scope{ScopeOneEnemy},
		normalize: ScopeRandomEnemy1,
		timing:    timingForceBattle,
	},
	{
		name:   "enemy-group",
		scopes: []Scope{ScopeAllEnemies, ScopeRandomEnemy1, ScopeRandomEnemy2, ScopeRandomEnemy3, ScopeRandomEnemy4, ScopeEveryone},
		timing: timingForceBattle,
	},
	{
		name:         "self",
		scopes:       []Scope{ScopeOneAlly, ScopeUser, ScopeOneAllyAny},
		normalize:    ScopeUser,
		timing:       timingMenuUnlessFixed,
		inlineStates: true,
	},
	{
		name:         "whole-party",
		scopes:       []Scope{ScopeAllAllies, ScopeAllAlliesAny},
		timing:       timingMenuUnlessFixed,
		inlineStates: true,
	},
}

// ClassifierConfig configures a Classifier
type ClassifierConfig struct {
	// PassiveTypes are the skill type ids treated as passive
	PassiveTypes []int
	States       StateLookup
	Logger       *zap.Logger
}

// Classifier normalizes raw skill definitions into passive shapes
type Classifier struct {
	passiveTypes map[int]struct{}
	states       StateLookup
	logger       *zap.Logger
}

// NewClassifier creates a classifier. A nil States lookup inlines no traits.
func NewClassifier(cfg *ClassifierConfig) *Classifier {
	if cfg == nil {
		cfg = &ClassifierConfig{}
	}

	types := make(map[int]struct{}, len(cfg.PassiveTypes))
	for _, t := range cfg.PassiveTypes {
		types[t] = struct{}{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Classifier{
		passiveTypes: types,
		states:       cfg.States,
		logger:       logger,
	}
}

// IsPassiveType reports whether skills of this type are passive
func (c *Classifier) IsPassiveType(typeID int) bool {
	_, ok := c.passiveTypes[typeID]
	return ok
}

// Classify returns a classified copy of def. The input is never modified.
// Running it on an already classified definition yields an equal definition.
func (c *Classifier) Classify(def *Definition) *Definition {
	if def == nil {
		return nil
	}

	out := def.Clone()
	if !c.IsPassiveType(def.TypeID) {
		return out
	}
	out.IsPassive = true

	for _, r := range rules {
		if !slices.Contains(r.scopes, out.Scope) {
			continue
		}
		c.apply(r, out)
		c.logger.Debug("classified passive skill",
			zap.Int("skill_id", int(out.ID)),
			zap.String("rule", r.name),
			zap.Stringer("scope", out.Scope),
			zap.Stringer("timing", out.Timing),
		)
		break
	}

	return out
}

func (c *Classifier) apply(r rule, def *Definition) {
	if r.normalize != ScopeNone {
		def.Scope = r.normalize
	}

	switch r.timing {
	case timingForceBattle:
		def.Timing = TimingBattle
	case timingMenuUnlessFixed:
		if def.Timing == TimingBattle || def.Timing == TimingAlways {
			return
		}
		def.Timing = TimingMenu
		if r.inlineStates {
			c.inlineStateTraits(def)
		}
	}
}

// inlineStateTraits turns "add state" effects into the state's traits
func (c *Classifier) inlineStateTraits(def *Definition) {
	kept := make([]Effect, 0, len(def.Effects))
	var stateIDs []int
	for _, effect := range def.Effects {
		if effect.Code == EffectAddState {
			stateIDs = append(stateIDs, effect.DataID)
			continue
		}
		kept = append(kept, effect)
	}
	def.Effects = kept

	if len(stateIDs) == 0 {
		return
	}

	traits := []Trait{}
	for _, id := range stateIDs {
		if c.states == nil {
			continue
		}
		if state := c.states.State(id); state != nil {
			traits = append(traits, state.Traits...)
		}
	}
	def.Traits = traits
}
