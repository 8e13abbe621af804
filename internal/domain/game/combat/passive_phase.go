package combat

import (
	"context"
	"fmt"
	"strings"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
	"github.com/KirkDiggler/passive-skills/internal/uuid"
)

// Passive phase states
const (
	PhaseIdle      = "idle"
	PhaseBuilding  = "building"
	PhaseExecuting = "executing"
)

const (
	eventBuild   = "build"
	eventExecute = "execute"
	eventFinish  = "finish"
)

// SkillLookup resolves skill definitions by id
type SkillLookup interface {
	Skill(id skill.ID) *skill.Definition
}

// PassivePhaseConfig configures a PassivePhase
type PassivePhaseConfig struct {
	Engine        ActionEngine
	Skills        SkillLookup
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// PassivePhase runs battle passives before the first turn of an encounter.
//
// Begin queues one action per battle passive of every living participant;
// each Tick then applies exactly one action. The queue is never rebuilt
// mid-phase: actions of a participant who dies keep their place.
type PassivePhase struct {
	machine *fsm.FSM
	engine  ActionEngine
	skills  SkillLookup
	uuid    uuid.Generator
	logger  *zap.Logger

	queue    []*Action
	executed int
}

// NewPassivePhase creates an idle phase
func NewPassivePhase(cfg *PassivePhaseConfig) *PassivePhase {
	if cfg == nil || cfg.Engine == nil {
		panic("action engine is required")
	}

	p := &PassivePhase{
		engine: cfg.Engine,
		skills: cfg.Skills,
		uuid:   cfg.UUIDGenerator,
		logger: cfg.Logger,
	}
	if p.uuid == nil {
		p.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}

	p.machine = fsm.NewFSM(
		PhaseIdle,
		fsm.Events{
			{Name: eventBuild, Src: []string{PhaseIdle}, Dst: PhaseBuilding},
			{Name: eventExecute, Src: []string{PhaseBuilding}, Dst: PhaseExecuting},
			{Name: eventFinish, Src: []string{PhaseExecuting}, Dst: PhaseIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				p.logger.Debug("passive phase transition",
					zap.String("event", e.Event),
					zap.String("from", e.Src),
					zap.String("to", e.Dst),
				)
			},
		},
	)

	return p
}

// State returns the current phase state
func (p *PassivePhase) State() string {
	return p.machine.Current()
}

// Running reports whether actions are being executed
func (p *PassivePhase) Running() bool {
	return p.machine.Is(PhaseExecuting)
}

// Pending returns how many actions are still queued
func (p *PassivePhase) Pending() int {
	return len(p.queue)
}

// Queue returns a copy of the pending actions, front first
func (p *PassivePhase) Queue() []*Action {
	out := make([]*Action, len(p.queue))
	copy(out, p.queue)
	return out
}

// Begin builds the queue from the living participants of both sides, allies first,
// and starts executing. Each participant's battle passives keep their own order.
func (p *PassivePhase) Begin(ctx context.Context, allies, enemies []Battler) error {
	if !p.machine.Is(PhaseIdle) {
		return passerr.FailedPreconditionf("passive phase already %s", p.machine.Current())
	}

	if err := p.machine.Event(ctx, eventBuild); err != nil {
		return passerr.Wrap(err, "failed to start passive queue")
	}

	p.queue = p.queue[:0]
	p.executed = 0
	p.enqueue(allies, enemies)
	p.enqueue(enemies, allies)

	if err := p.machine.Event(ctx, eventExecute); err != nil {
		return passerr.Wrap(err, "failed to execute passive queue")
	}

	p.logger.Info("passive phase started", zap.Int("actions", len(p.queue)))
	return nil
}

func (p *PassivePhase) enqueue(side, others []Battler) {
	for _, b := range side {
		if IsNil(b) || !b.IsAlive() {
			continue
		}
		for _, id := range b.BattlePassiveIDs() {
			action := &Action{
				ID:        p.uuid.New(),
				Actor:     b,
				SkillID:   id,
				Friends:   side,
				Opponents: others,
			}
			if p.skills != nil {
				action.Skill = p.skills.Skill(id)
			}
			p.queue = append(p.queue, action)
		}
	}
}

// Tick applies the front action, or ends the phase when the queue is empty.
// It reports true once the phase is over. rec may be nil. Nil targets, including
// nil pointers, are skipped.
func (p *PassivePhase) Tick(ctx context.Context, rec LogRecorder) (bool, error) {
	if !p.machine.Is(PhaseExecuting) {
		return false, passerr.FailedPreconditionf("passive phase is %s", p.machine.Current())
	}

	if len(p.queue) == 0 {
		p.engine.ClearLog()
		if err := p.machine.Event(ctx, eventFinish); err != nil {
			return false, passerr.Wrap(err, "failed to finish passive phase")
		}
		p.logger.Info("passive phase finished", zap.Int("executed", p.executed))
		return true, nil
	}

	action := p.queue[0]
	p.run(action, rec)
	p.queue[0] = nil
	p.queue = p.queue[1:]
	p.executed++

	return false, nil
}

func (p *PassivePhase) run(action *Action, rec LogRecorder) {
	targets := p.engine.MakeTargets(action)

	p.engine.StartAction(action, targets)
	p.engine.UseItem(action)
	p.engine.ApplyGlobal(action)

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		if IsNil(target) {
			continue
		}
		p.engine.Invoke(action, target)
		names = append(names, target.GetName())
	}

	p.logger.Debug("passive action applied",
		zap.String("action_id", action.ID),
		zap.String("actor", action.Actor.GetID()),
		zap.Int("skill_id", int(action.SkillID)),
		zap.Int("targets", len(names)),
	)

	if rec != nil {
		entry := fmt.Sprintf("%s uses %s", action.Actor.GetName(), action.SkillName())
		if len(names) > 0 {
			entry += " on " + strings.Join(names, ", ")
		}
		rec.AddCombatLogEntry(entry)
	}
}
