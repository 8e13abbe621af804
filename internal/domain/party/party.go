// Package party keeps a party's membership and the pool of party-trait passives
// contributed by its living members.
package party

import (
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// Member is a party member as the pool sees it
type Member interface {
	GetID() string
	IsAlive() bool
	// InitPassives builds the member's passive index; repeated calls are no-ops
	InitPassives()
	// PartyTraitPassives lists the member's party-trait passives in its own id order
	PartyTraitPassives() []*skill.Definition
}

// Config configures a Party
type Config struct {
	Logger *zap.Logger
}

// Party holds members in membership order and the contribution pool.
//
// The pool always equals the concatenation, over living members in membership
// order, of their party-trait passives. Pool operations are no-ops until Form.
// A Party is not safe for concurrent use.
type Party struct {
	members []Member
	pool    []*skill.Definition
	formed  bool
	logger  *zap.Logger
}

// New creates an unformed party
func New(cfg *Config) *Party {
	logger := zap.NewNop()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}
	return &Party{logger: logger}
}

var _ passive.PartyNotifier = (*Party)(nil)

// Form initializes every member's passive index and then builds the pool.
// Forming an already formed party only rebuilds.
func (p *Party) Form() {
	if !p.formed {
		for _, m := range p.members {
			m.InitPassives()
		}
		p.formed = true
	}
	p.Rebuild()
	p.logger.Info("party formed",
		zap.Int("members", len(p.members)),
		zap.Int("contributions", len(p.pool)),
	)
}

// Formed reports whether Form has run
func (p *Party) Formed() bool {
	return p.formed
}

// Rebuild recomputes the pool from scratch
func (p *Party) Rebuild() {
	if !p.formed {
		return
	}

	pool := make([]*skill.Definition, 0, len(p.pool))
	for _, m := range p.members {
		if !m.IsAlive() {
			continue
		}
		pool = append(pool, m.PartyTraitPassives()...)
	}
	p.pool = pool
}

// AddMember appends m and adds its whole contribution. Adding a current member is a no-op.
func (p *Party) AddMember(m Member) {
	if m == nil || p.Member(m.GetID()) != nil {
		return
	}
	p.members = append(p.members, m)
	p.logger.Debug("member added", zap.String("character_id", m.GetID()))

	if p.formed {
		m.InitPassives()
		p.AddContribution(m.GetID(), passive.AllSkills())
	}
}

// RemoveMember withdraws the member's contribution and removes it from the party
func (p *Party) RemoveMember(id string) {
	idx := slices.IndexFunc(p.members, func(m Member) bool { return m.GetID() == id })
	if idx < 0 {
		return
	}

	p.RemoveContribution(id, passive.AllSkills())
	p.members = slices.Delete(p.members, idx, idx+1)
	p.Rebuild()
	p.logger.Debug("member removed", zap.String("character_id", id))
}

// Member returns the member with the given id or nil
func (p *Party) Member(id string) Member {
	for _, m := range p.members {
		if m.GetID() == id {
			return m
		}
	}
	return nil
}

// Members returns the members in membership order
func (p *Party) Members() []Member {
	return slices.Clone(p.members)
}

// AliveMembers returns the living members in membership order
func (p *Party) AliveMembers() []Member {
	alive := make([]Member, 0, len(p.members))
	for _, m := range p.members {
		if m.IsAlive() {
			alive = append(alive, m)
		}
	}
	return alive
}

// AddContribution appends the member's party-trait passives covered by target, then
// rebuilds so the pool keeps membership order. Entries held by other members are not
// deduplicated.
func (p *Party) AddContribution(ownerID string, target passive.Target) {
	m := p.contributor(ownerID)
	if m == nil {
		return
	}

	defs := covered(m, target)
	p.pool = append(p.pool, defs...)
	p.Rebuild()
	p.logger.Debug("contribution added",
		zap.String("character_id", ownerID),
		zap.Stringer("target", target),
		zap.Int("entries", len(defs)),
	)
}

// RemoveContribution removes the first pool entry per covered skill id, then rebuilds
func (p *Party) RemoveContribution(ownerID string, target passive.Target) {
	if !p.formed {
		return
	}

	if m := p.contributor(ownerID); m != nil {
		var ids []skill.ID
		if id, ok := target.SkillID(); ok {
			ids = []skill.ID{id}
		} else {
			for _, def := range m.PartyTraitPassives() {
				ids = append(ids, def.ID)
			}
		}

		for _, id := range ids {
			if i := slices.IndexFunc(p.pool, func(d *skill.Definition) bool { return d.ID == id }); i >= 0 {
				p.pool = slices.Delete(p.pool, i, i+1)
			}
		}
	}

	p.Rebuild()
	p.logger.Debug("contribution removed",
		zap.String("character_id", ownerID),
		zap.Stringer("target", target),
		zap.Int("pool", len(p.pool)),
	)
}

// Contributions returns a copy of the pool
func (p *Party) Contributions() []*skill.Definition {
	out := make([]*skill.Definition, len(p.pool))
	copy(out, p.pool)
	return out
}

// ContributionIDs returns the skill ids in the pool, in pool order
func (p *Party) ContributionIDs() []skill.ID {
	ids := make([]skill.ID, 0, len(p.pool))
	for _, def := range p.pool {
		ids = append(ids, def.ID)
	}
	return ids
}

// contributor returns the member when the party is formed and the member is alive
func (p *Party) contributor(id string) Member {
	if !p.formed {
		return nil
	}
	m := p.Member(id)
	if m == nil || !m.IsAlive() {
		return nil
	}
	return m
}

func covered(m Member, target passive.Target) []*skill.Definition {
	defs := m.PartyTraitPassives()
	id, ok := target.SkillID()
	if !ok {
		return defs
	}
	for _, def := range defs {
		if def.ID == id {
			return []*skill.Definition{def}
		}
	}
	return nil
}
