package passive_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	"github.com/KirkDiggler/passive-skills/internal/domain/game/combat"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	mockpassive "github.com/KirkDiggler/passive-skills/internal/domain/passive/mock"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	"github.com/KirkDiggler/passive-skills/internal/events"
	"github.com/KirkDiggler/passive-skills/internal/gamedata"
	passivesvc "github.com/KirkDiggler/passive-skills/internal/services/passive"
)

const (
	passiveType = 99

	skillFocus    skill.ID = 20 // self, traits only
	skillWarcry   skill.ID = 21 // whole party, adds state 5
	skillMeditate skill.ID = 22 // self, recovery effect
	skillStrike   skill.ID = 23 // ordinary attack
)

var (
	focusTrait = skill.Trait{Code: 21, DataID: 2, Value: 1.1}
	t1         = skill.Trait{Code: 22, DataID: 0, Value: 0.05}
	t2         = skill.Trait{Code: 23, DataID: 1, Value: 1.5}
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	activator *mockpassive.MockActivator
	bus       *events.Bus
	db        *gamedata.Database
	service   passivesvc.Service

	hero, mage *character.Character
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.activator = mockpassive.NewMockActivator(s.ctrl)
	s.bus = events.NewBus(nil)

	raw := gamedata.New([]*skill.Definition{
		{ID: skillFocus, Name: "Focus", TypeID: passiveType, Scope: skill.ScopeUser,
			Effects: []skill.Effect{}, Traits: []skill.Trait{focusTrait}},
		{ID: skillWarcry, Name: "Warcry", TypeID: passiveType, Scope: skill.ScopeAllAllies,
			Effects: []skill.Effect{{Code: skill.EffectAddState, DataID: 5, Value1: 1}}},
		{ID: skillMeditate, Name: "Meditate", TypeID: passiveType, Scope: skill.ScopeOneAlly,
			Effects: []skill.Effect{{Code: skill.EffectRecoverHP, Value1: 0.1}}},
		{ID: skillStrike, Name: "Strike", TypeID: 1, Scope: skill.ScopeOneEnemy, Timing: skill.TimingBattle,
			Effects: []skill.Effect{{Code: skill.EffectRecoverHP, Value2: -10}}},
	}, []*skill.State{
		{ID: 5, Name: "Inspired", Traits: []skill.Trait{t1, t2}},
	})
	s.db = raw.Classify(skill.NewClassifier(&skill.ClassifierConfig{
		PassiveTypes: []int{passiveType},
		States:       raw,
	}), nil)

	s.service = passivesvc.NewService(&passivesvc.ServiceConfig{
		Bus:       s.bus,
		Catalog:   s.db,
		Activator: s.activator,
	})

	cfg := &character.Config{Bus: s.bus, States: s.db}
	s.hero = character.New("hero", "Harold", 100, 20).Configure(cfg)
	s.mage = character.New("mage", "Mira", 60, 80).Configure(cfg)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) sourceNames(c *character.Character) []string {
	sources, err := c.TraitSources()
	s.Require().NoError(err)

	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.SourceName())
	}
	return names
}

func (s *ServiceTestSuite) TestClassification() {
	focus := s.db.Skill(skillFocus)
	s.Equal(skill.ScopeUser, focus.Scope)
	s.Equal([]skill.Trait{focusTrait}, focus.Traits)

	warcry := s.db.Skill(skillWarcry)
	s.Empty(warcry.Effects)
	s.Equal([]skill.Trait{t1, t2}, warcry.Traits)
	s.Equal(skill.TimingMenu, warcry.Timing)
	s.Equal(skill.ScopeAllAllies, warcry.Scope)

	meditate := s.db.Skill(skillMeditate)
	s.Equal(skill.ScopeUser, meditate.Scope)
	s.Equal(skill.TimingMenu, meditate.Timing)

	s.False(s.db.Skill(skillStrike).IsPassive)
}

func (s *ServiceTestSuite) TestFormParty_InitializesFromLearnedSkills() {
	// learned before the party forms; the index picks them up at formation
	s.Require().NoError(s.hero.LearnSkill(skillMeditate))
	s.Require().NoError(s.hero.LearnSkill(skillWarcry))
	s.Require().NoError(s.hero.LearnSkill(skillStrike))

	s.activator.EXPECT().Activate("hero", skillMeditate)

	p := s.service.FormParty(s.hero, s.mage)

	s.True(p.Formed())
	s.Same(p, s.service.PartyOf("mage"))
	s.Same(s.hero, s.service.Character("hero"))
	s.Equal([]skill.ID{skillWarcry}, p.ContributionIDs())
	s.Equal([]string{"Mira", "Warcry"}, s.sourceNames(s.mage))
}

func (s *ServiceTestSuite) TestFormParty_ReconcilesStoredSnapshot() {
	// loaded from storage holding Warcry, then changed before the party forms
	s.hero.Skills = []skill.ID{skillWarcry}
	s.hero.RestorePassives(&passive.Snapshot{PartyTraits: []skill.ID{skillWarcry}})
	s.service.Attach(s.hero)

	s.Require().NoError(s.hero.ForgetSkill(skillWarcry))
	s.Require().NoError(s.hero.LearnSkill(skillFocus))

	p := s.service.FormParty(s.hero, s.mage)

	s.Empty(p.ContributionIDs())
	s.Empty(s.hero.Passives().IDs(passive.CategoryPartyTrait))
	s.Equal([]skill.ID{skillFocus}, s.hero.Passives().IDs(passive.CategoryTrait))
	s.Equal([]string{"Harold", "Focus"}, s.sourceNames(s.hero))
	s.Equal([]string{"Mira"}, s.sourceNames(s.mage))
}

func (s *ServiceTestSuite) TestTraitPassiveAppliesToHolderOnly() {
	s.service.FormParty(s.hero, s.mage)
	s.Require().NoError(s.hero.LearnSkill(skillFocus))

	s.Equal([]string{"Harold", "Focus"}, s.sourceNames(s.hero))
	s.Equal([]string{"Mira"}, s.sourceNames(s.mage))

	traits, err := s.hero.Traits()
	s.Require().NoError(err)
	s.Equal([]skill.Trait{focusTrait}, traits)

	s.Require().NoError(s.hero.ForgetSkill(skillFocus))
	s.Equal([]string{"Harold"}, s.sourceNames(s.hero))
}

func (s *ServiceTestSuite) TestPartyTraitPassiveFollowsHolderLife() {
	s.service.FormParty(s.hero, s.mage)
	s.Require().NoError(s.hero.LearnSkill(skillWarcry))

	mageTraits, err := s.mage.Traits()
	s.Require().NoError(err)
	s.Equal([]skill.Trait{t1, t2}, mageTraits)
	s.Equal([]string{"Harold", "Warcry"}, s.sourceNames(s.hero))

	before := s.service.PartyOf("hero").ContributionIDs()

	s.Require().NoError(s.hero.Die())
	s.Empty(s.service.PartyOf("hero").ContributionIDs())
	s.Equal([]string{"Mira"}, s.sourceNames(s.mage))

	s.Require().NoError(s.hero.Revive())
	s.Equal(before, s.service.PartyOf("hero").ContributionIDs())
	s.Equal([]string{"Mira", "Warcry"}, s.sourceNames(s.mage))

	s.Require().NoError(s.hero.ForgetSkill(skillWarcry))
	s.Empty(s.service.PartyOf("hero").ContributionIDs())
}

func (s *ServiceTestSuite) TestMenuPassiveFiresOnLearn() {
	s.service.FormParty(s.hero)

	s.activator.EXPECT().Activate("hero", skillMeditate)
	s.Require().NoError(s.hero.LearnSkill(skillMeditate))

	// relearning after a forget fires again
	s.Require().NoError(s.hero.ForgetSkill(skillMeditate))
	s.activator.EXPECT().Activate("hero", skillMeditate)
	s.Require().NoError(s.hero.LearnSkill(skillMeditate))
}

func (s *ServiceTestSuite) TestJoinAndLeave() {
	s.service.FormParty(s.hero)
	s.Require().NoError(s.mage.LearnSkill(skillWarcry))

	s.service.JoinParty("hero", s.mage)
	p := s.service.PartyOf("hero")
	s.Same(p, s.service.PartyOf("mage"))
	s.Equal([]skill.ID{skillWarcry}, p.ContributionIDs())
	s.Equal([]string{"Harold", "Warcry"}, s.sourceNames(s.hero))

	s.service.LeaveParty("mage")
	s.Nil(s.service.PartyOf("mage"))
	s.Empty(p.ContributionIDs())
	s.Equal([]string{"Harold"}, s.sourceNames(s.hero))

	// no party means no pool, but the holder's own index keeps working
	s.Require().NoError(s.mage.Die())
	s.Require().NoError(s.mage.Revive())
	s.Empty(p.ContributionIDs())

	s.service.JoinParty("nobody", s.mage)
	s.Nil(s.service.PartyOf("mage"))
}

func (s *ServiceTestSuite) TestUnattachedCharacterIsIgnored() {
	stranger := character.New("stranger", "Sam", 10, 0).Configure(&character.Config{Bus: s.bus})
	s.Require().NoError(stranger.LearnSkill(skillFocus))
	s.Require().NoError(stranger.Die())

	s.Nil(s.service.Character("stranger"))
	s.Equal([]string{"Sam"}, s.sourceNames(stranger))
}

func (s *ServiceTestSuite) TestRoster() {
	s.service.FormParty(s.hero, s.mage)

	s.Equal(combat.Battler(s.hero), s.service.Battler("hero"))
	s.Nil(s.service.Battler("ghost"))
	s.Equal([]combat.Battler{s.hero, s.mage}, s.service.Friends("mage"))
	s.Nil(s.service.Friends("ghost"))

	loner := character.New("loner", "Lou", 10, 0)
	s.service.Attach(loner)
	s.Equal([]combat.Battler{loner}, s.service.Friends("loner"))
}

func TestNewService_RequiresBusAndCatalog(t *testing.T) {
	for _, cfg := range []*passivesvc.ServiceConfig{
		nil,
		{Catalog: gamedata.New(nil, nil)},
		{Bus: events.NewBus(nil)},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			passivesvc.NewService(cfg)
		}()
	}
}
