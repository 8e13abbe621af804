package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	mockpassive "github.com/KirkDiggler/passive-skills/internal/domain/passive/mock"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
	"github.com/KirkDiggler/passive-skills/internal/repositories/characters"
	"github.com/KirkDiggler/passive-skills/internal/testutils"
	"github.com/KirkDiggler/passive-skills/internal/uuid"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo characters.Repository
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = characters.NewInMemoryRepository()
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) TestCreateAndGet() {
	hero := testutils.CreateTestCharacter("hero", "Harold", testutils.SkillAttack)
	s.Require().NoError(s.repo.Create(s.ctx, hero))

	got, err := s.repo.Get(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal("Harold", got.Name)
	s.Equal(hero.Params, got.Params)
	s.Equal([]skill.ID{testutils.SkillAttack}, got.Skills)
	s.True(got.IsAlive())

	// stored records are copies
	got.Skills[0] = 999
	hero.Name = "Changed"
	again, err := s.repo.Get(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal([]skill.ID{testutils.SkillAttack}, again.Skills)
	s.Equal("Harold", again.Name)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_AssignsID() {
	c := testutils.CreateTestCharacter("", "Nameless")
	s.Require().NoError(s.repo.Create(s.ctx, c))
	s.True(uuid.IsValid(c.ID))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Validation() {
	s.True(passerr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(passerr.IsInvalidArgument(s.repo.Create(s.ctx, testutils.CreateTestCharacter("x", ""))))

	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestCharacter("hero", "Harold")))
	err := s.repo.Create(s.ctx, testutils.CreateTestCharacter("hero", "Harold"))
	s.True(passerr.IsAlreadyExists(err))
	s.Equal("hero", passerr.GetMeta(err)["character_id"])
}

func (s *InMemoryRepositoryTestSuite) TestUpdate() {
	hero := testutils.CreateTestCharacter("hero", "Harold")
	s.True(passerr.IsNotFound(s.repo.Update(s.ctx, hero)))
	s.Require().NoError(s.repo.Create(s.ctx, hero))

	hero.HP = 40
	hero.Skills = append(hero.Skills, testutils.SkillRally)
	s.Require().NoError(s.repo.Update(s.ctx, hero))

	got, err := s.repo.Get(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal(40, got.HP)
	s.Equal([]skill.ID{testutils.SkillRally}, got.Skills)
}

func (s *InMemoryRepositoryTestSuite) TestPassiveSnapshotSurvivesReload() {
	ctrl := gomock.NewController(s.T())
	catalog := testutils.CreateClassifiedTestDatabase()

	hero := testutils.CreateTestCharacter("hero", "Harold",
		testutils.SkillToughness, testutils.SkillRally, testutils.SkillMeditation)
	hero.AttachPassives(passive.NewIndex(&passive.IndexConfig{OwnerID: "hero", Catalog: catalog}))
	hero.InitPassives()
	s.Require().NoError(s.repo.Create(s.ctx, hero))

	loaded, err := s.repo.Get(s.ctx, "hero")
	s.Require().NoError(err)

	// no activation is expected: the menu passive already fired before saving
	loaded.AttachPassives(passive.NewIndex(&passive.IndexConfig{
		OwnerID:   "hero",
		Catalog:   catalog,
		Activator: mockpassive.NewMockActivator(ctrl),
	}))
	loaded.InitPassives()

	s.Equal(hero.PassiveSnapshot(), loaded.PassiveSnapshot())
	s.True(loaded.Passives().IsActivated(testutils.SkillMeditation))
	s.Equal([]skill.ID{testutils.SkillRally}, loaded.Passives().IDs(passive.CategoryPartyTrait))
}

func (s *InMemoryRepositoryTestSuite) TestGetManyAndList() {
	for _, id := range []string{"c", "a", "b"} {
		s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestCharacter(id, "member "+id)))
	}

	ids, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, ids)

	members, err := s.repo.GetMany(s.ctx, []string{"b", "c"})
	s.Require().NoError(err)
	s.Len(members, 2)
	s.Equal("b", members[0].ID)
	s.Equal("c", members[1].ID)

	_, err = s.repo.GetMany(s.ctx, []string{"a", "ghost"})
	s.True(passerr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestCharacter("hero", "Harold")))
	s.Require().NoError(s.repo.Delete(s.ctx, "hero"))

	_, err := s.repo.Get(s.ctx, "hero")
	s.True(passerr.IsNotFound(err))
	s.True(passerr.IsNotFound(s.repo.Delete(s.ctx, "hero")))
	s.True(passerr.IsInvalidArgument(s.repo.Delete(s.ctx, "")))
}
