package combat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
)

// EncounterStatus represents the current state of an encounter
type EncounterStatus string

const (
	EncounterStatusSetup     EncounterStatus = "setup"     // Adding participants
	EncounterStatusPassive   EncounterStatus = "passive"   // Battle passives resolving
	EncounterStatusActive    EncounterStatus = "active"    // Turn order running
	EncounterStatusCompleted EncounterStatus = "completed" // Encounter finished
)

// maxCombatLog bounds the stored log
const maxCombatLog = 50

// Encounter is one battle between the party and a troop
type Encounter struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    EncounterStatus `json:"status"`
	Round     int             `json:"round"`
	CreatedAt time.Time       `json:"created_at"`
	StartedAt *time.Time      `json:"started_at"`
	EndedAt   *time.Time      `json:"ended_at"`
	CombatLog []string        `json:"combat_log"`

	Allies  []Battler `json:"-"`
	Enemies []Battler `json:"-"`

	passives *PassivePhase
}

// NewEncounter creates an encounter in setup
func NewEncounter(id, name string, passives *PassivePhase) *Encounter {
	return &Encounter{
		ID:        id,
		Name:      name,
		Status:    EncounterStatusSetup,
		CreatedAt: time.Now(),
		CombatLog: []string{},
		passives:  passives,
	}
}

// AddAlly adds a party-side participant
func (e *Encounter) AddAlly(b Battler) {
	e.Allies = append(e.Allies, b)
}

// AddEnemy adds a troop-side participant
func (e *Encounter) AddEnemy(b Battler) {
	e.Enemies = append(e.Enemies, b)
}

// Start is the combat-start hook: it queues battle passives and enters the passive status
func (e *Encounter) Start(ctx context.Context) error {
	if e.Status != EncounterStatusSetup {
		return passerr.FailedPreconditionf("encounter %s is %s", e.ID, e.Status)
	}
	if len(e.Allies) == 0 || len(e.Enemies) == 0 {
		return passerr.FailedPreconditionf("encounter %s needs both sides", e.ID).
			WithMeta("allies", len(e.Allies)).
			WithMeta("enemies", len(e.Enemies))
	}

	now := time.Now()
	e.StartedAt = &now

	if e.passives == nil {
		e.beginTurns()
		return nil
	}

	if err := e.passives.Begin(ctx, e.Allies, e.Enemies); err != nil {
		return err
	}
	e.Status = EncounterStatusPassive
	return nil
}

// Update is the phase-dispatch hook called once per frame. During the passive
// status it advances the passive phase by one action.
func (e *Encounter) Update(ctx context.Context) error {
	if e.Status != EncounterStatusPassive {
		return nil
	}

	done, err := e.passives.Tick(ctx, e)
	if err != nil {
		return err
	}
	if done {
		e.beginTurns()
	}
	return nil
}

// RunPassives ticks until the passive status is over and returns the tick count
func (e *Encounter) RunPassives(ctx context.Context) (int, error) {
	ticks := 0
	for e.Status == EncounterStatusPassive {
		if err := e.Update(ctx); err != nil {
			return ticks, err
		}
		ticks++
	}
	return ticks, nil
}

func (e *Encounter) beginTurns() {
	e.Status = EncounterStatusActive
	e.Round = 1

	if shouldEnd, _ := e.CheckCombatEnd(); shouldEnd {
		e.End()
	}
}

// End concludes the encounter
func (e *Encounter) End() {
	now := time.Now()
	e.Status = EncounterStatusCompleted
	e.EndedAt = &now
}

// CheckCombatEnd checks if either side has no living participant
func (e *Encounter) CheckCombatEnd() (shouldEnd, alliesWon bool) {
	alliesAlive := countAlive(e.Allies)
	enemiesAlive := countAlive(e.Enemies)

	if enemiesAlive == 0 && alliesAlive > 0 {
		return true, true
	} else if alliesAlive == 0 {
		return true, false
	}

	return false, false
}

func countAlive(side []Battler) int {
	n := 0
	for _, b := range side {
		if !IsNil(b) && b.IsAlive() {
			n++
		}
	}
	return n
}

// AddCombatLogEntry adds an entry to the combat log
func (e *Encounter) AddCombatLogEntry(entry string) {
	if e.CombatLog == nil {
		e.CombatLog = []string{}
	}

	label := "Passives"
	if e.Round > 0 {
		label = fmt.Sprintf("Round %d", e.Round)
	}
	e.CombatLog = append(e.CombatLog, fmt.Sprintf("%s: %s", label, entry))

	// Keep only the latest entries to prevent unbounded growth
	if len(e.CombatLog) > maxCombatLog {
		e.CombatLog = e.CombatLog[len(e.CombatLog)-maxCombatLog:]
	}
}

// MarshalJSON implements json.Marshaler
func (e *Encounter) MarshalJSON() ([]byte, error) {
	type Alias Encounter
	return json.Marshal((*Alias)(e))
}
