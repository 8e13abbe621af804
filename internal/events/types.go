package events

import "github.com/KirkDiggler/passive-skills/internal/domain/skill"

// EventType represents the type of character lifecycle event
type EventType string

// Event is the base interface for all events
type Event interface {
	GetType() EventType
	GetCharacterID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType
	CharacterID string
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetCharacterID() string { return e.CharacterID }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// SkillLearnedEvent fires after a skill was added to a character's learned list
type SkillLearnedEvent struct {
	BaseEvent
	SkillID skill.ID
}

// SkillForgottenEvent fires after a skill was removed from a character's learned list
type SkillForgottenEvent struct {
	BaseEvent
	SkillID skill.ID
}

// CharacterDiedEvent fires once the death state is committed
type CharacterDiedEvent struct {
	BaseEvent
}

// CharacterRevivedEvent fires once the death state is removed
type CharacterRevivedEvent struct {
	BaseEvent
}

// TraitCollectionEvent gathers a character's trait sources. Listeners append to Sources.
type TraitCollectionEvent struct {
	BaseEvent
	Sources []skill.TraitSource
}

func NewSkillLearned(characterID string, id skill.ID) *SkillLearnedEvent {
	return &SkillLearnedEvent{
		BaseEvent: BaseEvent{Type: EventTypeSkillLearned, CharacterID: characterID},
		SkillID:   id,
	}
}

func NewSkillForgotten(characterID string, id skill.ID) *SkillForgottenEvent {
	return &SkillForgottenEvent{
		BaseEvent: BaseEvent{Type: EventTypeSkillForgotten, CharacterID: characterID},
		SkillID:   id,
	}
}

func NewCharacterDied(characterID string) *CharacterDiedEvent {
	return &CharacterDiedEvent{BaseEvent: BaseEvent{Type: EventTypeCharacterDied, CharacterID: characterID}}
}

func NewCharacterRevived(characterID string) *CharacterRevivedEvent {
	return &CharacterRevivedEvent{BaseEvent: BaseEvent{Type: EventTypeCharacterRevived, CharacterID: characterID}}
}

// NewTraitCollection starts a collection seeded with the character's base sources
func NewTraitCollection(characterID string, base []skill.TraitSource) *TraitCollectionEvent {
	return &TraitCollectionEvent{
		BaseEvent: BaseEvent{Type: EventTypeTraitCollection, CharacterID: characterID},
		Sources:   base,
	}
}
