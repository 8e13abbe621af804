// Package passive registers the passive-skill hooks on the character lifecycle
// bus and owns the parties whose pools those hooks maintain.
package passive

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	"github.com/KirkDiggler/passive-skills/internal/domain/game/combat"
	"github.com/KirkDiggler/passive-skills/internal/domain/party"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/events"
)

// ListenerID identifies the service on the bus
const ListenerID = "passive-skills"

// Service defines the passive skill service interface
type Service interface {
	events.EventListener

	// Attach gives c a passive index wired to the catalog and activator.
	// The index initializes when the character's party forms.
	Attach(c *character.Character)

	// FormParty builds a party from members in order, initializes their indices and the pool
	FormParty(members ...*character.Character) *party.Party

	// JoinParty adds c to the party of an existing member
	JoinParty(memberID string, c *character.Character)

	// LeaveParty removes the character from its party
	LeaveParty(characterID string)

	// Character returns an attached character
	Character(id string) *character.Character

	// PartyOf returns the party a character belongs to
	PartyOf(characterID string) *party.Party

	// Battler and Friends resolve menu passive targets
	Battler(id string) combat.Battler
	Friends(id string) []combat.Battler
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Bus       *events.Bus
	Catalog   passive.Catalog
	Activator passive.Activator
	Logger    *zap.Logger
}

type service struct {
	catalog   passive.Catalog
	activator passive.Activator
	logger    *zap.Logger

	characters map[string]*character.Character
	parties    map[string]*party.Party
}

// NewService creates the service and subscribes it to every lifecycle event
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Bus == nil {
		panic("event bus is required")
	}
	if cfg.Catalog == nil {
		panic("skill catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	svc := &service{
		catalog:    cfg.Catalog,
		activator:  cfg.Activator,
		logger:     logger,
		characters: make(map[string]*character.Character),
		parties:    make(map[string]*party.Party),
	}

	for _, t := range events.LifecycleEvents {
		cfg.Bus.Subscribe(t, svc)
	}

	return svc
}

func (s *service) ID() string    { return ListenerID }
func (s *service) Priority() int { return events.PriorityPassives }

// HandleEvent dispatches lifecycle events to the character's index and party
func (s *service) HandleEvent(event events.Event) error {
	c := s.characters[event.GetCharacterID()]
	if c == nil {
		return nil
	}
	idx := c.Passives()

	switch e := event.(type) {
	case *events.SkillLearnedEvent:
		idx.Learn(e.SkillID)
	case *events.SkillForgottenEvent:
		idx.Forget(e.SkillID)
	case *events.CharacterDiedEvent:
		idx.OnDeath()
	case *events.CharacterRevivedEvent:
		idx.OnRevive()
	case *events.TraitCollectionEvent:
		for _, def := range c.TraitPassives() {
			e.Sources = append(e.Sources, def)
		}
		if p := s.parties[c.ID]; p != nil {
			for _, def := range p.Contributions() {
				e.Sources = append(e.Sources, def)
			}
		}
	}
	return nil
}

func (s *service) Attach(c *character.Character) {
	if c == nil {
		return
	}
	if _, attached := s.characters[c.ID]; attached {
		return
	}

	c.AttachPassives(passive.NewIndex(&passive.IndexConfig{
		OwnerID:   c.ID,
		Catalog:   s.catalog,
		Activator: s.activator,
		Logger:    s.logger,
	}))
	s.characters[c.ID] = c
}

func (s *service) FormParty(members ...*character.Character) *party.Party {
	p := party.New(&party.Config{Logger: s.logger})
	for _, m := range members {
		s.join(p, m)
	}
	p.Form()
	return p
}

func (s *service) JoinParty(memberID string, c *character.Character) {
	p := s.parties[memberID]
	if p == nil {
		s.logger.Warn("join skipped, member has no party", zap.String("member_id", memberID))
		return
	}
	s.join(p, c)
}

func (s *service) join(p *party.Party, c *character.Character) {
	if c == nil {
		return
	}
	if current := s.parties[c.ID]; current != nil && current != p {
		s.LeaveParty(c.ID)
	}

	s.Attach(c)
	c.Passives().SetNotifier(p)
	s.parties[c.ID] = p
	p.AddMember(c)
}

func (s *service) LeaveParty(characterID string) {
	p := s.parties[characterID]
	if p == nil {
		return
	}
	p.RemoveMember(characterID)
	delete(s.parties, characterID)
	if c := s.characters[characterID]; c != nil {
		c.Passives().SetNotifier(nil)
	}
}

func (s *service) Character(id string) *character.Character {
	return s.characters[id]
}

func (s *service) PartyOf(characterID string) *party.Party {
	return s.parties[characterID]
}

func (s *service) Battler(id string) combat.Battler {
	if c := s.characters[id]; c != nil {
		return c
	}
	return nil
}

func (s *service) Friends(id string) []combat.Battler {
	p := s.parties[id]
	if p == nil {
		if c := s.characters[id]; c != nil {
			return []combat.Battler{c}
		}
		return nil
	}

	members := p.Members()
	friends := make([]combat.Battler, 0, len(members))
	for _, m := range members {
		if b, ok := m.(combat.Battler); ok {
			friends = append(friends, b)
		}
	}
	return friends
}
