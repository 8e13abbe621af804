package action

import (
	"math"

	"github.com/KirkDiggler/passive-skills/internal/dice"
	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	"github.com/KirkDiggler/passive-skills/internal/domain/game/combat"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// Target is a battler effects can be applied to
type Target interface {
	combat.Battler
	ApplyDamage(amount int) error
	RecoverHP(amount int)
	RecoverMP(amount int)
	AddState(id int) error
	RemoveState(id int) error
	MaxHP() int
	MaxMP() int
}

type grower interface {
	Grow(p character.Param, amount int)
}

type learner interface {
	LearnSkill(id skill.ID) error
}

type spender interface {
	SpendMP(cost int) bool
}

// EffectHandler applies one kind of effect to a target
type EffectHandler interface {
	// Code returns the effect code this handler handles
	Code() skill.EffectCode

	// Apply applies effect to target
	Apply(target Target, effect skill.Effect) error
}

// HandlerRegistry manages effect handlers
type HandlerRegistry struct {
	handlers map[skill.EffectCode]EffectHandler
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[skill.EffectCode]EffectHandler),
	}
}

// DefaultHandlers registers the target effects of the data format
func DefaultHandlers(roller dice.Roller) *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(recoverHP{})
	r.Register(recoverMP{})
	r.Register(&addState{roller: roller})
	r.Register(&removeState{roller: roller})
	r.Register(grow{})
	r.Register(learnSkill{})
	return r
}

// Register adds a handler, replacing any handler for the same code
func (r *HandlerRegistry) Register(h EffectHandler) {
	r.handlers[h.Code()] = h
}

// Get returns the handler for code
func (r *HandlerRegistry) Get(code skill.EffectCode) (EffectHandler, bool) {
	h, exists := r.handlers[code]
	return h, exists
}

// amount is rate * max + flat, rounded toward zero
func amount(rate, flat float64, maxValue int) int {
	return int(math.Trunc(rate*float64(maxValue) + flat))
}

type recoverHP struct{}

func (recoverHP) Code() skill.EffectCode { return skill.EffectRecoverHP }

func (recoverHP) Apply(t Target, e skill.Effect) error {
	n := amount(e.Value1, e.Value2, t.MaxHP())
	if n < 0 {
		return t.ApplyDamage(-n)
	}
	t.RecoverHP(n)
	return nil
}

type recoverMP struct{}

func (recoverMP) Code() skill.EffectCode { return skill.EffectRecoverMP }

func (recoverMP) Apply(t Target, e skill.Effect) error {
	t.RecoverMP(amount(e.Value1, e.Value2, t.MaxMP()))
	return nil
}

type addState struct {
	roller dice.Roller
}

func (*addState) Code() skill.EffectCode { return skill.EffectAddState }

func (h *addState) Apply(t Target, e skill.Effect) error {
	if e.DataID <= 0 {
		return nil
	}
	ok, err := chance(h.roller, e.Value1)
	if err != nil || !ok {
		return err
	}
	return t.AddState(e.DataID)
}

type removeState struct {
	roller dice.Roller
}

func (*removeState) Code() skill.EffectCode { return skill.EffectRemoveState }

func (h *removeState) Apply(t Target, e skill.Effect) error {
	ok, err := chance(h.roller, e.Value1)
	if err != nil || !ok {
		return err
	}
	return t.RemoveState(e.DataID)
}

type grow struct{}

func (grow) Code() skill.EffectCode { return skill.EffectGrow }

func (grow) Apply(t Target, e skill.Effect) error {
	if g, ok := t.(grower); ok {
		g.Grow(character.Param(e.DataID), int(e.Value1))
	}
	return nil
}

type learnSkill struct{}

func (learnSkill) Code() skill.EffectCode { return skill.EffectLearnSkill }

func (learnSkill) Apply(t Target, e skill.Effect) error {
	if l, ok := t.(learner); ok {
		return l.LearnSkill(skill.ID(e.DataID))
	}
	return nil
}

// chance succeeds outright at rates >= 1 and otherwise rolls a d100
func chance(roller dice.Roller, rate float64) (bool, error) {
	if rate >= 1 {
		return true, nil
	}
	if rate <= 0 || roller == nil {
		return false, nil
	}
	result, err := roller.Roll(1, 100, 0)
	if err != nil {
		return false, err
	}
	return float64(result.Total) <= rate*100, nil
}
