package passive

//go:generate mockgen -destination=mock/mock.go -package=mockpassive -source=interfaces.go

import "github.com/KirkDiggler/passive-skills/internal/domain/skill"

// Catalog resolves classified skill definitions by id
type Catalog interface {
	Skill(id skill.ID) *skill.Definition
}

// Activator applies a menu passive once, against the targets its scope computes for the owner
type Activator interface {
	Activate(ownerID string, skillID skill.ID)
}

// PartyNotifier receives changes to an owner's party-wide contributions
type PartyNotifier interface {
	AddContribution(ownerID string, target Target)
	RemoveContribution(ownerID string, target Target)
}
