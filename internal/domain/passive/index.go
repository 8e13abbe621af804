package passive

import (
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// IndexConfig wires an Index to its collaborators. Activator and Notifier may be nil.
type IndexConfig struct {
	OwnerID   string
	Catalog   Catalog
	Activator Activator
	Notifier  PartyNotifier
	Logger    *zap.Logger
}

// Index keeps the derived passive sets of one character.
//
// Every id in a set is a learned skill of the owner. Until Init (or Restore) runs
// all mutations are no-ops and queries return nothing, so hosts may learn and
// forget skills while a character is still being set up.
//
// An Index is not safe for concurrent use.
type Index struct {
	ownerID   string
	catalog   Catalog
	activator Activator
	notifier  PartyNotifier
	logger    *zap.Logger

	initialized bool
	sets        [len(categoryNames)][]skill.ID
	activated   []skill.ID
}

// NewIndex creates an uninitialized index
func NewIndex(cfg *IndexConfig) *Index {
	if cfg == nil {
		cfg = &IndexConfig{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Index{
		ownerID:   cfg.OwnerID,
		catalog:   cfg.Catalog,
		activator: cfg.Activator,
		notifier:  cfg.Notifier,
		logger:    logger.With(zap.String("character_id", cfg.OwnerID)),
	}
}

// SetNotifier points party notifications at n (nil stops them)
func (x *Index) SetNotifier(n PartyNotifier) {
	x.notifier = n
}

// Initialized reports whether Init or Restore has run
func (x *Index) Initialized() bool {
	return x.initialized
}

// Init partitions the learned skills into the four sets and fires every menu passive once.
// Calling it again is a no-op.
func (x *Index) Init(learned []skill.ID) {
	if x.initialized {
		x.logger.Debug("passive index already initialized")
		return
	}

	for _, id := range learned {
		def := x.lookup(id)
		for _, c := range Categories {
			if Matches(c, def) && !slices.Contains(x.sets[c], id) {
				x.sets[c] = append(x.sets[c], id)
			}
		}
	}
	x.initialized = true

	for _, id := range x.sets[CategoryMenu] {
		x.activate(id)
	}

	x.logger.Debug("passive index initialized",
		zap.Int("trait", len(x.sets[CategoryTrait])),
		zap.Int("party_trait", len(x.sets[CategoryPartyTrait])),
		zap.Int("menu", len(x.sets[CategoryMenu])),
		zap.Int("battle", len(x.sets[CategoryBattle])),
	)
}

// Learn adds a newly learned skill to every set it qualifies for.
// A new party-trait passive is reported to the party; a new menu passive fires once.
func (x *Index) Learn(id skill.ID) {
	if !x.initialized {
		return
	}

	def := x.lookup(id)
	for _, c := range Categories {
		if !Matches(c, def) || slices.Contains(x.sets[c], id) {
			continue
		}
		x.sets[c] = append(x.sets[c], id)
		x.logger.Debug("passive added", zap.Int("skill_id", int(id)), zap.Stringer("category", c))

		switch c {
		case CategoryPartyTrait:
			if x.notifier != nil {
				x.notifier.AddContribution(x.ownerID, Skill(id))
			}
		case CategoryMenu:
			x.activate(id)
		}
	}
}

// Forget drops id from every set and from the activated set, whatever it was classified as
func (x *Index) Forget(id skill.ID) {
	if !x.initialized {
		return
	}

	wasPartyTrait := slices.Contains(x.sets[CategoryPartyTrait], id)
	for _, c := range Categories {
		x.sets[c] = slices.DeleteFunc(x.sets[c], func(v skill.ID) bool { return v == id })
	}
	x.activated = slices.DeleteFunc(x.activated, func(v skill.ID) bool { return v == id })

	// The pool must not keep a contribution its holder no longer has
	if wasPartyTrait && x.notifier != nil {
		x.notifier.RemoveContribution(x.ownerID, Skill(id))
	}
}

// OnDeath withdraws the owner's party contributions. The index itself is untouched.
func (x *Index) OnDeath() {
	if !x.initialized || x.notifier == nil {
		return
	}
	x.notifier.RemoveContribution(x.ownerID, AllSkills())
}

// OnRevive restores the owner's party contributions
func (x *Index) OnRevive() {
	if !x.initialized || x.notifier == nil {
		return
	}
	x.notifier.AddContribution(x.ownerID, AllSkills())
}

// TraitPassives returns the definitions of the owner's trait passives
func (x *Index) TraitPassives() []*skill.Definition {
	return x.definitions(CategoryTrait)
}

// PartyTraitPassives returns the definitions of the owner's party-trait passives
func (x *Index) PartyTraitPassives() []*skill.Definition {
	return x.definitions(CategoryPartyTrait)
}

// BattlePassives returns the definitions of the owner's battle passives
func (x *Index) BattlePassives() []*skill.Definition {
	return x.definitions(CategoryBattle)
}

// IDs returns a copy of one set, in the order the skills were added
func (x *Index) IDs(c Category) []skill.ID {
	if !x.initialized || int(c) >= len(x.sets) {
		return nil
	}
	return slices.Clone(x.sets[c])
}

// Has reports whether id is in the given set
func (x *Index) Has(c Category, id skill.ID) bool {
	if !x.initialized || int(c) >= len(x.sets) {
		return false
	}
	return slices.Contains(x.sets[c], id)
}

// Activated returns the menu passives already fired since they were gained
func (x *Index) Activated() []skill.ID {
	return slices.Clone(x.activated)
}

// IsActivated reports whether menu passive id already fired
func (x *Index) IsActivated(id skill.ID) bool {
	return slices.Contains(x.activated, id)
}

func (x *Index) activate(id skill.ID) {
	if !slices.Contains(x.sets[CategoryMenu], id) || slices.Contains(x.activated, id) {
		return
	}
	if x.activator != nil {
		x.activator.Activate(x.ownerID, id)
	}
	x.activated = append(x.activated, id)
	x.logger.Debug("menu passive activated", zap.Int("skill_id", int(id)))
}

func (x *Index) definitions(c Category) []*skill.Definition {
	if !x.initialized {
		return []*skill.Definition{}
	}

	defs := make([]*skill.Definition, 0, len(x.sets[c]))
	for _, id := range x.sets[c] {
		if def := x.lookup(id); def != nil {
			defs = append(defs, def)
		}
	}
	return defs
}

func (x *Index) lookup(id skill.ID) *skill.Definition {
	if x.catalog == nil {
		return nil
	}
	return x.catalog.Skill(id)
}
