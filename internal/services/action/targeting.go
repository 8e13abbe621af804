package action

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/dice"
	"github.com/KirkDiggler/passive-skills/internal/domain/game/combat"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// MakeTargets resolves the targets of a by the skill's scope
func (e *Engine) MakeTargets(a *combat.Action) []combat.Battler {
	def := e.definition(a)
	if def == nil || combat.IsNil(a.Actor) {
		return nil
	}

	friends := a.Friends
	if len(friends) == 0 {
		friends = []combat.Battler{a.Actor}
	}

	switch scope := def.Scope; {
	case scope == skill.ScopeEveryone:
		return append(filter(friends, true), filter(a.Opponents, true)...)
	case scope == skill.ScopeOneEnemy:
		return e.random(filter(a.Opponents, true), 1)
	case scope == skill.ScopeAllEnemies:
		return filter(a.Opponents, true)
	case scope.RandomCount() > 0:
		return e.random(filter(a.Opponents, true), scope.RandomCount())
	case scope == skill.ScopeOneAlly:
		return e.random(filter(friends, true), 1)
	case scope == skill.ScopeAllAllies:
		return filter(friends, true)
	case scope == skill.ScopeOneDeadAlly:
		return e.random(filter(friends, false), 1)
	case scope == skill.ScopeAllDeadAllies:
		return filter(friends, false)
	case scope == skill.ScopeUser, scope == skill.ScopeOneAllyAny:
		return []combat.Battler{a.Actor}
	case scope == skill.ScopeAllAlliesAny:
		return append([]combat.Battler(nil), friends...)
	}
	return nil
}

// random picks n targets from pool with repeats allowed
func (e *Engine) random(pool []combat.Battler, n int) []combat.Battler {
	if len(pool) == 0 {
		return nil
	}
	targets := make([]combat.Battler, 0, n)
	for i := 0; i < n; i++ {
		idx, err := dice.Pick(e.roller, len(pool))
		if err != nil {
			e.logger.Warn("target roll failed", zap.Error(err))
			idx = 0
		}
		targets = append(targets, pool[idx])
	}
	return targets
}

func filter(side []combat.Battler, alive bool) []combat.Battler {
	out := make([]combat.Battler, 0, len(side))
	for _, b := range side {
		if !combat.IsNil(b) && b.IsAlive() == alive {
			out = append(out, b)
		}
	}
	return out
}
