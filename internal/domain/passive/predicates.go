package passive

import "github.com/KirkDiggler/passive-skills/internal/domain/skill"

// Category is one of the derived passive sets an Index keeps
type Category int

const (
	CategoryTrait Category = iota
	CategoryPartyTrait
	CategoryMenu
	CategoryBattle
)

var categoryNames = [...]string{"trait", "party-trait", "menu", "battle"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories lists every category in index order
var Categories = []Category{CategoryTrait, CategoryPartyTrait, CategoryMenu, CategoryBattle}

// IsTraitPassive: a passive granting its traits to its holder
func IsTraitPassive(def *skill.Definition) bool {
	return def != nil && def.IsPassive && len(def.Traits) > 0 && def.Scope == skill.ScopeUser
}

// IsPartyTraitPassive: a passive granting its traits to the whole party while the holder lives
func IsPartyTraitPassive(def *skill.Definition) bool {
	return def != nil && def.IsPassive && len(def.Traits) > 0 &&
		(def.Scope == skill.ScopeAllAllies || def.Scope == skill.ScopeAllAlliesAny)
}

// IsMenuPassive: a passive whose effects fire once when gained
func IsMenuPassive(def *skill.Definition) bool {
	return def != nil && def.IsPassive && len(def.Effects) > 0 && def.Timing == skill.TimingMenu
}

// IsBattlePassive: a passive whose effects fire at the start of every encounter
func IsBattlePassive(def *skill.Definition) bool {
	return def != nil && def.IsPassive && len(def.Effects) > 0 && def.Timing == skill.TimingBattle
}

// Matches reports whether def belongs in category c
func Matches(c Category, def *skill.Definition) bool {
	switch c {
	case CategoryTrait:
		return IsTraitPassive(def)
	case CategoryPartyTrait:
		return IsPartyTraitPassive(def)
	case CategoryMenu:
		return IsMenuPassive(def)
	case CategoryBattle:
		return IsBattlePassive(def)
	}
	return false
}
