// Package action is the default action engine: targeting, cost bookkeeping and
// effect application for skills used in battle or fired from the menu.
package action

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/dice"
	"github.com/KirkDiggler/passive-skills/internal/domain/game/combat"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// Roster resolves characters outside of battle
type Roster interface {
	Battler(id string) combat.Battler
	Friends(id string) []combat.Battler
}

// CommonEventRunner runs the host's common events
type CommonEventRunner interface {
	Run(eventID int, actor combat.Battler)
}

// EngineConfig holds configuration for the engine
type EngineConfig struct {
	Skills       combat.SkillLookup
	Roller       dice.Roller
	Handlers     *HandlerRegistry
	Roster       Roster
	CommonEvents CommonEventRunner
	Logger       *zap.Logger
}

// Engine resolves actions. It is not safe for concurrent use.
type Engine struct {
	skills       combat.SkillLookup
	roller       dice.Roller
	handlers     *HandlerRegistry
	roster       Roster
	commonEvents CommonEventRunner
	logger       *zap.Logger

	current *combat.Action
	log     []string
}

var (
	_ combat.ActionEngine = (*Engine)(nil)
	_ passive.Activator   = (*Engine)(nil)
)

// NewEngine creates an engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil || cfg.Skills == nil {
		panic("skill lookup is required")
	}

	e := &Engine{
		skills:       cfg.Skills,
		roller:       cfg.Roller,
		handlers:     cfg.Handlers,
		roster:       cfg.Roster,
		commonEvents: cfg.CommonEvents,
		logger:       cfg.Logger,
	}
	if e.roller == nil {
		e.roller = dice.NewRandomRoller()
	}
	if e.handlers == nil {
		e.handlers = DefaultHandlers(e.roller)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// SetRoster sets the roster used by Activate
func (e *Engine) SetRoster(r Roster) {
	e.roster = r
}

// StartAction implements combat.ActionEngine
func (e *Engine) StartAction(a *combat.Action, targets []combat.Battler) {
	e.current = a
	e.log = append(e.log, fmt.Sprintf("%s uses %s", a.Actor.GetName(), a.SkillName()))
}

// UseItem pays the skill's MP cost
func (e *Engine) UseItem(a *combat.Action) {
	def := e.definition(a)
	if def == nil || def.MPCost <= 0 {
		return
	}
	s, ok := a.Actor.(spender)
	if !ok {
		return
	}
	if !s.SpendMP(def.MPCost) {
		e.logger.Debug("not enough mp", zap.String("actor", a.Actor.GetID()), zap.Int("cost", def.MPCost))
	}
}

// ApplyGlobal runs the skill's common events
func (e *Engine) ApplyGlobal(a *combat.Action) {
	def := e.definition(a)
	if def == nil || e.commonEvents == nil {
		return
	}
	for _, effect := range def.Effects {
		if effect.Code == skill.EffectCommonEvent {
			e.commonEvents.Run(effect.DataID, a.Actor)
		}
	}
}

// Invoke applies every target effect of the skill to target
func (e *Engine) Invoke(a *combat.Action, target combat.Battler) {
	def := e.definition(a)
	t, ok := target.(Target)
	if def == nil || !ok {
		return
	}

	for _, effect := range def.Effects {
		h, exists := e.handlers.Get(effect.Code)
		if !exists {
			continue
		}
		if err := h.Apply(t, effect); err != nil {
			e.logger.Warn("effect failed",
				zap.Error(err),
				zap.Int("skill_id", int(def.ID)),
				zap.Int("effect", int(effect.Code)),
				zap.String("target", target.GetID()),
			)
		}
	}
	e.log = append(e.log, fmt.Sprintf("%s is affected by %s", target.GetName(), def.Name))
}

// ClearLog drops the current action and its log lines
func (e *Engine) ClearLog() {
	e.current = nil
	e.log = nil
}

// Current returns the action being resolved, or nil
func (e *Engine) Current() *combat.Action {
	return e.current
}

// Log returns the transient log lines since the last ClearLog
func (e *Engine) Log() []string {
	return append([]string(nil), e.log...)
}

// Activate applies a menu passive once against its computed targets
func (e *Engine) Activate(ownerID string, skillID skill.ID) {
	if e.roster == nil {
		e.logger.Warn("no roster, menu passive skipped", zap.String("character_id", ownerID))
		return
	}
	actor := e.roster.Battler(ownerID)
	if combat.IsNil(actor) {
		e.logger.Warn("menu passive owner not found", zap.String("character_id", ownerID))
		return
	}

	a := &combat.Action{
		Actor:   actor,
		SkillID: skillID,
		Skill:   e.skills.Skill(skillID),
		Friends: e.roster.Friends(ownerID),
	}
	for _, target := range e.MakeTargets(a) {
		if !combat.IsNil(target) {
			e.Invoke(a, target)
		}
	}
	e.logger.Debug("menu passive activated",
		zap.String("character_id", ownerID),
		zap.Int("skill_id", int(skillID)),
	)
}

func (e *Engine) definition(a *combat.Action) *skill.Definition {
	if a.Skill != nil {
		return a.Skill
	}
	return e.skills.Skill(a.SkillID)
}
