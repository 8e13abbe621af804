package events

// Event type constants
const (
	// Skill list
	EventTypeSkillLearned   EventType = "skill_learned"
	EventTypeSkillForgotten EventType = "skill_forgotten"

	// Liveness
	EventTypeCharacterDied    EventType = "character_died"
	EventTypeCharacterRevived EventType = "character_revived"

	// Trait aggregation
	EventTypeTraitCollection EventType = "trait_collection"
)

// LifecycleEvents lists every event a passive listener needs
var LifecycleEvents = []EventType{
	EventTypeSkillLearned,
	EventTypeSkillForgotten,
	EventTypeCharacterDied,
	EventTypeCharacterRevived,
	EventTypeTraitCollection,
}

// Priority levels for listener order
const (
	PriorityHost     = 0   // Host bookkeeping
	PriorityPassives = 100 // Passive indices and party pool
	PriorityLate     = 500 // Observers
)
