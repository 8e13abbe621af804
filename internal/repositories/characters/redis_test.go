package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
	"github.com/KirkDiggler/passive-skills/internal/testutils"
	"github.com/KirkDiggler/passive-skills/internal/uuid"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type RedisRepoTestSuite struct {
	suite.Suite
	ctx  context.Context
	mock redismock.ClientMock
	repo Repository
	now  time.Time
	hero *character.Character
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewSequenceGenerator("char"),
		TimeProvider:  fixedClock{now: s.now},
	})

	s.hero = testutils.CreateTestCharacter("hero", "Harold", testutils.SkillToughness, testutils.SkillMeditation)
	s.hero.AttachPassives(passive.NewIndex(&passive.IndexConfig{
		OwnerID: "hero",
		Catalog: testutils.CreateClassifiedTestDatabase(),
	}))
	s.hero.InitPassives()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) record(c *character.Character, created, updated time.Time) string {
	data := toData(c)
	data.CreatedAt = created
	data.UpdatedAt = updated
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisRepoTestSuite) TestCreate() {
	s.mock.ExpectExists("character:hero").SetVal(0)
	s.mock.ExpectSet("character:hero", s.record(s.hero, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "hero").SetVal(1)

	s.NoError(s.repo.Create(s.ctx, s.hero))
}

func (s *RedisRepoTestSuite) TestCreate_AssignsID() {
	c := testutils.CreateTestCharacter("char-1", "Nameless")
	expected := s.record(c, s.now, s.now)
	c.ID = ""

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", expected, 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "char-1").SetVal(1)

	s.Require().NoError(s.repo.Create(s.ctx, c))
	s.Equal("char-1", c.ID)
}

func (s *RedisRepoTestSuite) TestCreate_Errors() {
	s.True(passerr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))

	s.mock.ExpectExists("character:hero").SetVal(1)
	s.True(passerr.IsAlreadyExists(s.repo.Create(s.ctx, s.hero)))

	s.mock.ExpectExists("character:hero").SetErr(errors.New("redis error"))
	err := s.repo.Create(s.ctx, s.hero)
	s.Error(err)
	s.False(passerr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	s.mock.ExpectGet("character:hero").SetVal(s.record(s.hero, s.now, s.now))

	got, err := s.repo.Get(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal("Harold", got.Name)
	s.Equal(s.hero.Skills, got.Skills)
	s.Equal(s.hero.Params, got.Params)
	s.Equal(s.hero.PassiveSnapshot(), got.PassiveSnapshot())

	s.mock.ExpectGet("character:ghost").RedisNil()
	_, err = s.repo.Get(s.ctx, "ghost")
	s.True(passerr.IsNotFound(err))

	s.mock.ExpectGet("character:hero").SetErr(errors.New("redis error"))
	_, err = s.repo.Get(s.ctx, "hero")
	s.Error(err)

	_, err = s.repo.Get(s.ctx, "")
	s.True(passerr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGetMany() {
	s.mock.ExpectGet("character:hero").SetVal(s.record(s.hero, s.now, s.now))

	got, err := s.repo.GetMany(s.ctx, []string{"hero"})
	s.Require().NoError(err)
	s.Len(got, 1)
	s.Equal("hero", got[0].ID)

	s.mock.ExpectGet("character:ghost").RedisNil()
	_, err = s.repo.GetMany(s.ctx, []string{"ghost"})
	s.True(passerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate_KeepsCreatedAt() {
	created := s.now.Add(-time.Hour)
	s.mock.ExpectGet("character:hero").SetVal(s.record(s.hero, created, created))

	s.hero.HP = 12
	s.mock.ExpectSet("character:hero", s.record(s.hero, created, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "hero").SetVal(0)

	s.NoError(s.repo.Update(s.ctx, s.hero))

	s.mock.ExpectGet("character:hero").RedisNil()
	s.True(passerr.IsNotFound(s.repo.Update(s.ctx, s.hero)))
}

func (s *RedisRepoTestSuite) TestList() {
	s.mock.ExpectSMembers("characters").SetVal([]string{"mage", "hero"})

	ids, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"hero", "mage"}, ids)
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("character:hero").SetVal(1)
	s.mock.ExpectSRem("characters", "hero").SetVal(1)
	s.NoError(s.repo.Delete(s.ctx, "hero"))

	s.mock.ExpectDel("character:hero").SetVal(0)
	s.mock.ExpectSRem("characters", "hero").SetVal(0)
	s.True(passerr.IsNotFound(s.repo.Delete(s.ctx, "hero")))

	s.True(passerr.IsInvalidArgument(s.repo.Delete(s.ctx, "")))
}

func TestNewRedisRepository_RequiresClient(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewRedisRepository(&RedisRepoConfig{})
}
