package skill

import "slices"

// ID identifies a skill in the database
type ID int

// Scope is the targeting classification of a skill. Values follow the data file numbering.
type Scope int

const (
	ScopeNone          Scope = 0
	ScopeOneEnemy      Scope = 1
	ScopeAllEnemies    Scope = 2
	ScopeRandomEnemy1  Scope = 3
	ScopeRandomEnemy2  Scope = 4
	ScopeRandomEnemy3  Scope = 5
	ScopeRandomEnemy4  Scope = 6
	ScopeOneAlly       Scope = 7
	ScopeAllAllies     Scope = 8
	ScopeOneDeadAlly   Scope = 9
	ScopeAllDeadAllies Scope = 10
	ScopeUser          Scope = 11
	ScopeOneAllyAny    Scope = 12
	ScopeAllAlliesAny  Scope = 13
	ScopeEveryone      Scope = 14
)

var scopeNames = map[Scope]string{
	ScopeNone:          "none",
	ScopeOneEnemy:      "single-enemy",
	ScopeAllEnemies:    "all-enemies",
	ScopeRandomEnemy1:  "random-enemy-group(1)",
	ScopeRandomEnemy2:  "random-enemy-group(2)",
	ScopeRandomEnemy3:  "random-enemy-group(3)",
	ScopeRandomEnemy4:  "random-enemy-group(4)",
	ScopeOneAlly:       "single-living-ally",
	ScopeAllAllies:     "all-living-allies",
	ScopeOneDeadAlly:   "single-dead-ally",
	ScopeAllDeadAllies: "all-dead-allies",
	ScopeUser:          "user",
	ScopeOneAllyAny:    "single-ally-any",
	ScopeAllAlliesAny:  "all-allies-any",
	ScopeEveryone:      "everyone",
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return "unknown"
}

// RandomCount returns n for random-enemy-group(n) scopes and 0 otherwise
func (s Scope) RandomCount() int {
	if s >= ScopeRandomEnemy1 && s <= ScopeRandomEnemy4 {
		return int(s-ScopeRandomEnemy1) + 1
	}
	return 0
}

// ForOpponents reports whether the scope targets the other side
func (s Scope) ForOpponents() bool {
	return (s >= ScopeOneEnemy && s <= ScopeRandomEnemy4) || s == ScopeEveryone
}

// ForFriends reports whether the scope targets the user's side
func (s Scope) ForFriends() bool {
	return (s >= ScopeOneAlly && s <= ScopeAllAlliesAny) || s == ScopeEveryone
}

// ForDeadFriends reports whether the scope only targets fallen allies
func (s Scope) ForDeadFriends() bool {
	return s == ScopeOneDeadAlly || s == ScopeAllDeadAllies
}

// ForAll reports whether the scope hits every unit on the targeted side(s)
func (s Scope) ForAll() bool {
	switch s {
	case ScopeAllEnemies, ScopeAllAllies, ScopeAllDeadAllies, ScopeAllAlliesAny, ScopeEveryone:
		return true
	}
	return false
}

// Timing is when a skill may be used. Values follow the data file "occasion" field.
type Timing int

const (
	TimingNone   Timing = 0
	TimingBattle Timing = 1
	TimingMenu   Timing = 2
	TimingAlways Timing = 3
)

func (t Timing) String() string {
	switch t {
	case TimingNone:
		return "none"
	case TimingBattle:
		return "battle-only"
	case TimingMenu:
		return "menu-only"
	case TimingAlways:
		return "always"
	}
	return "unknown"
}

// EffectCode tags the kind of an effect record
type EffectCode int

const (
	EffectRecoverHP   EffectCode = 11
	EffectRecoverMP   EffectCode = 12
	EffectAddState    EffectCode = 21
	EffectRemoveState EffectCode = 22
	EffectGrow        EffectCode = 42
	EffectLearnSkill  EffectCode = 43
	EffectCommonEvent EffectCode = 44
)

// Effect is one entry of a skill's effect list
type Effect struct {
	Code   EffectCode `json:"code"`
	DataID int        `json:"dataId"`
	Value1 float64    `json:"value1"`
	Value2 float64    `json:"value2"`
}

// Trait is a permanent modifier contributed by a trait source
type Trait struct {
	Code   int     `json:"code"`
	DataID int     `json:"dataId"`
	Value  float64 `json:"value"`
}

// TraitSource is anything whose traits apply to a character: a state, a passive skill, base traits
type TraitSource interface {
	SourceName() string
	TraitList() []Trait
}

// Definition is a skill record as loaded from the database
type Definition struct {
	ID        ID       `json:"id"`
	Name      string   `json:"name"`
	TypeID    int      `json:"stypeId"`
	Scope     Scope    `json:"scope"`
	Timing    Timing   `json:"occasion"`
	MPCost    int      `json:"mpCost"`
	Effects   []Effect `json:"effects"`
	Traits    []Trait  `json:"traits,omitempty"`
	IsPassive bool     `json:"isPassive,omitempty"`
}

func (d *Definition) SourceName() string { return d.Name }
func (d *Definition) TraitList() []Trait { return d.Traits }

// Clone returns a deep copy
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	clone := *d
	clone.Effects = slices.Clone(d.Effects)
	clone.Traits = slices.Clone(d.Traits)
	return &clone
}

// State is a status definition. Only its traits matter to passive classification.
type State struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Traits []Trait `json:"traits"`
}

func (s *State) SourceName() string { return s.Name }
func (s *State) TraitList() []Trait { return s.Traits }

// TraitSet is a named bag of traits, used for a character's innate traits
type TraitSet struct {
	Name   string
	Traits []Trait
}

func (t *TraitSet) SourceName() string { return t.Name }
func (t *TraitSet) TraitList() []Trait { return t.Traits }

// Flatten concatenates the traits of every source in order
func Flatten(sources []TraitSource) []Trait {
	var traits []Trait
	for _, source := range sources {
		if source == nil {
			continue
		}
		traits = append(traits, source.TraitList()...)
	}
	return traits
}
