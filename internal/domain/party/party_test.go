package party_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/passive-skills/internal/domain/party"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	"github.com/KirkDiggler/passive-skills/internal/gamedata"
)

const (
	skillBanner   skill.ID = 20
	skillAnthem   skill.ID = 21
	skillAegis    skill.ID = 22
	skillGuard    skill.ID = 23 // user-scoped, never in the pool
	skillFireball skill.ID = 24
)

func catalog() *gamedata.Database {
	buff := []skill.Trait{{Code: 21, DataID: 2, Value: 1.1}}
	return gamedata.New([]*skill.Definition{
		{ID: skillBanner, Name: "Banner", IsPassive: true, Scope: skill.ScopeAllAllies, Timing: skill.TimingMenu, Effects: []skill.Effect{}, Traits: buff},
		{ID: skillAnthem, Name: "Anthem", IsPassive: true, Scope: skill.ScopeAllAlliesAny, Timing: skill.TimingMenu, Effects: []skill.Effect{}, Traits: buff},
		{ID: skillAegis, Name: "Aegis", IsPassive: true, Scope: skill.ScopeAllAllies, Timing: skill.TimingAlways, Effects: []skill.Effect{}, Traits: buff},
		{ID: skillGuard, Name: "Guard", IsPassive: true, Scope: skill.ScopeUser, Timing: skill.TimingMenu, Effects: []skill.Effect{}, Traits: buff},
		{ID: skillFireball, Name: "Fireball", Scope: skill.ScopeAllEnemies, Timing: skill.TimingBattle, Effects: []skill.Effect{{Code: skill.EffectRecoverHP, Value2: -30}}},
	}, nil)
}

// member is a minimal host character: learned skills, liveness and an index
type member struct {
	id      string
	alive   bool
	learned []skill.ID
	index   *passive.Index
}

func newMember(id string, learned ...skill.ID) *member {
	return &member{
		id:      id,
		alive:   true,
		learned: learned,
		index:   passive.NewIndex(&passive.IndexConfig{OwnerID: id, Catalog: catalog()}),
	}
}

func (m *member) GetID() string { return m.id }
func (m *member) IsAlive() bool { return m.alive }
func (m *member) InitPassives() { m.index.Init(m.learned) }
func (m *member) PartyTraitPassives() []*skill.Definition {
	return m.index.PartyTraitPassives()
}

func (m *member) learn(id skill.ID) {
	if !slices.Contains(m.learned, id) {
		m.learned = append(m.learned, id)
	}
	m.index.Learn(id)
}

func (m *member) forget(id skill.ID) {
	m.learned = slices.DeleteFunc(m.learned, func(v skill.ID) bool { return v == id })
	m.index.Forget(id)
}

func (m *member) die() {
	if !m.alive {
		return
	}
	m.alive = false
	m.index.OnDeath()
}

func (m *member) revive() {
	if m.alive {
		return
	}
	m.alive = true
	m.index.OnRevive()
}

// expected recomputes the pool invariant independently of the pool itself
func expected(p *party.Party) []skill.ID {
	ids := []skill.ID{}
	for _, m := range p.Members() {
		if !m.IsAlive() {
			continue
		}
		ids = append(ids, m.(*member).index.IDs(passive.CategoryPartyTrait)...)
	}
	return ids
}

type PartyTestSuite struct {
	suite.Suite
	party *party.Party
	alice *member
	bob   *member
}

func (s *PartyTestSuite) SetupTest() {
	s.party = party.New(nil)
	s.alice = newMember("alice", skillBanner, skillGuard, skillFireball)
	s.bob = newMember("bob", skillAnthem, skillBanner)

	for _, m := range []*member{s.alice, s.bob} {
		m.index.SetNotifier(s.party)
		s.party.AddMember(m)
	}
}

func TestPartyTestSuite(t *testing.T) {
	suite.Run(t, new(PartyTestSuite))
}

func (s *PartyTestSuite) TestUnformed_PoolIsEmpty() {
	s.party.AddContribution("alice", passive.AllSkills())
	s.party.RemoveContribution("alice", passive.AllSkills())
	s.party.Rebuild()

	s.False(s.party.Formed())
	s.NotNil(s.party.Contributions())
	s.Empty(s.party.Contributions())
	s.False(s.alice.index.Initialized())
}

func (s *PartyTestSuite) TestForm_BuildsPoolInMembershipOrder() {
	s.party.Form()

	s.True(s.alice.index.Initialized())
	s.True(s.bob.index.Initialized())
	s.Equal([]skill.ID{skillBanner, skillAnthem, skillBanner}, s.party.ContributionIDs())
	s.Len(s.party.AliveMembers(), 2)
}

func (s *PartyTestSuite) TestLearnAndForget_UpdatePool() {
	s.party.Form()

	s.alice.learn(skillAegis)
	s.Equal([]skill.ID{skillBanner, skillAegis, skillAnthem, skillBanner}, s.party.ContributionIDs())

	s.alice.learn(skillGuard)
	s.alice.learn(skillFireball)
	s.Len(s.party.Contributions(), 4)

	s.alice.forget(skillBanner)
	s.Equal([]skill.ID{skillAegis, skillAnthem, skillBanner}, s.party.ContributionIDs())
}

// Scenario D
func (s *PartyTestSuite) TestDeathAndRevive_RestoreMembershipOrder() {
	s.party.Form()
	before := s.party.ContributionIDs()

	s.bob.die()
	s.Equal([]skill.ID{skillBanner}, s.party.ContributionIDs())
	s.Len(s.party.AliveMembers(), 1)

	// dead members contribute nothing, even when asked directly
	s.party.AddContribution("bob", passive.AllSkills())
	s.Equal([]skill.ID{skillBanner}, s.party.ContributionIDs())

	s.bob.revive()
	s.Equal(before, s.party.ContributionIDs())

	// an earlier member reviving goes back ahead of later ones
	s.alice.die()
	s.Equal([]skill.ID{skillAnthem, skillBanner}, s.party.ContributionIDs())
	s.alice.revive()
	s.Equal([]skill.ID{skillBanner, skillAnthem, skillBanner}, s.party.ContributionIDs())
}

func (s *PartyTestSuite) TestAddContribution_SpecificSkill() {
	s.party.Form()
	s.party.Rebuild()

	// only skills in the member's party-trait set are added
	s.party.AddContribution("alice", passive.Skill(skillGuard))
	s.party.AddContribution("ghost", passive.AllSkills())
	s.Equal([]skill.ID{skillBanner, skillAnthem, skillBanner}, s.party.ContributionIDs())

	// a repeated add cannot push the pool past what the members hold
	s.party.AddContribution("alice", passive.Skill(skillBanner))
	s.party.AddContribution("bob", passive.AllSkills())
	s.Equal([]skill.ID{skillBanner, skillAnthem, skillBanner}, s.party.ContributionIDs())
}

func (s *PartyTestSuite) TestRemoveContribution_RebuildsAfterUnderRemoval() {
	s.party.Form()

	// alice learns Aegis while the party is not listening, so the pool lags behind
	s.alice.index.SetNotifier(nil)
	s.alice.learn(skillAegis)
	s.alice.index.SetNotifier(s.party)
	s.Equal([]skill.ID{skillBanner, skillAnthem, skillBanner}, s.party.ContributionIDs())

	// nothing to remove for Aegis, the rebuild still catches the pool up
	s.party.RemoveContribution("alice", passive.Skill(skillAegis))
	s.Equal([]skill.ID{skillBanner, skillAegis, skillAnthem, skillBanner}, s.party.ContributionIDs())
}

func (s *PartyTestSuite) TestMembership() {
	s.party.Form()

	carol := newMember("carol", skillAegis)
	carol.index.SetNotifier(s.party)
	s.party.AddMember(carol)
	s.party.AddMember(carol)

	s.True(carol.index.Initialized())
	s.Len(s.party.Members(), 3)
	s.Equal([]skill.ID{skillBanner, skillAnthem, skillBanner, skillAegis}, s.party.ContributionIDs())

	s.party.RemoveMember("bob")
	s.Nil(s.party.Member("bob"))
	s.Equal([]skill.ID{skillBanner, skillAegis}, s.party.ContributionIDs())

	s.party.RemoveMember("bob")
	s.Len(s.party.Members(), 2)
}

func (s *PartyTestSuite) TestContributions_ReturnsCopy() {
	s.party.Form()

	got := s.party.Contributions()
	got[0] = nil

	s.NotNil(s.party.Contributions()[0])
}

func TestParty_IncrementalMatchesRebuild(t *testing.T) {
	p := party.New(nil)
	members := []*member{
		newMember("a", skillBanner, skillAnthem),
		newMember("b", skillBanner),
		newMember("c", skillAegis, skillGuard),
		newMember("d"),
	}
	inParty := map[string]bool{}
	for _, m := range members[:3] {
		m.index.SetNotifier(p)
		p.AddMember(m)
		inParty[m.id] = true
	}
	members[3].index.SetNotifier(p)
	p.Form()

	skills := []skill.ID{skillBanner, skillAnthem, skillAegis, skillGuard, skillFireball}
	rng := rand.New(rand.NewSource(42))

	for step := 0; step < 1000; step++ {
		m := members[rng.Intn(len(members))]
		id := skills[rng.Intn(len(skills))]

		switch rng.Intn(6) {
		case 0:
			m.learn(id)
		case 1:
			m.forget(id)
		case 2:
			m.die()
		case 3:
			m.revive()
		case 4:
			if !inParty[m.id] {
				inParty[m.id] = true
				p.AddMember(m)
			}
		case 5:
			if inParty[m.id] {
				inParty[m.id] = false
				p.RemoveMember(m.id)
			}
		}

		incremental := p.ContributionIDs()
		require.Equal(t, expected(p), incremental, "step %d", step)

		p.Rebuild()
		require.Equal(t, incremental, p.ContributionIDs(), "step %d", step)
	}
}

func TestParty_FormTwiceOnlyRebuilds(t *testing.T) {
	p := party.New(nil)
	m := newMember("solo", skillBanner)
	m.index.SetNotifier(p)
	p.AddMember(m)

	p.Form()
	p.Form()

	assert.True(t, p.Formed())
	assert.Equal(t, []skill.ID{skillBanner}, p.ContributionIDs())
}
