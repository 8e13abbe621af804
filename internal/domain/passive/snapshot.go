package passive

import (
	"slices"

	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
)

// Snapshot is the persisted form of an initialized Index
type Snapshot struct {
	Traits      []skill.ID `json:"traits"`
	PartyTraits []skill.ID `json:"party_traits"`
	Menu        []skill.ID `json:"menu"`
	Battle      []skill.ID `json:"battle"`
	Activated   []skill.ID `json:"activated"`
}

// Snapshot captures the index, or returns nil while it is uninitialized
func (x *Index) Snapshot() *Snapshot {
	if !x.initialized {
		return nil
	}
	return &Snapshot{
		Traits:      slices.Clone(x.sets[CategoryTrait]),
		PartyTraits: slices.Clone(x.sets[CategoryPartyTrait]),
		Menu:        slices.Clone(x.sets[CategoryMenu]),
		Battle:      slices.Clone(x.sets[CategoryBattle]),
		Activated:   slices.Clone(x.activated),
	}
}

// Restore loads a snapshot against the owner's current learned skills and marks
// the index initialized. Stored ids no longer learned are dropped; learned skills
// the snapshot lacks are sorted into their sets. Only menu passives not recorded
// as activated fire.
func (x *Index) Restore(s *Snapshot, learned []skill.ID) {
	if s == nil || x.initialized {
		return
	}

	keep := func(ids []skill.ID) []skill.ID {
		var out []skill.ID
		for _, id := range ids {
			if slices.Contains(learned, id) && !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
		return out
	}
	x.sets[CategoryTrait] = keep(s.Traits)
	x.sets[CategoryPartyTrait] = keep(s.PartyTraits)
	x.sets[CategoryMenu] = keep(s.Menu)
	x.sets[CategoryBattle] = keep(s.Battle)
	x.activated = slices.DeleteFunc(keep(s.Activated), func(id skill.ID) bool {
		return !slices.Contains(x.sets[CategoryMenu], id)
	})

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
}
