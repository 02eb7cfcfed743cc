package wizardsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/clock"
	wizardsession "github.com/KirkDiggler/rpg-character-forge/internal/repositories/wizard_session"
	"github.com/KirkDiggler/rpg-character-forge/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	clock   *clock.Fixed
	repo    wizardsession.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.clock = &clock.Fixed{At: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	var err error
	s.repo, err = wizardsession.NewRedisRepository(&wizardsession.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newSession(id string) *entities.WizardSession {
	return &entities.WizardSession{
		ID:         id,
		Step:       entities.StepRace,
		Character:  dnd5e.DefaultCharacter(),
		Allocation: &dnd5e.AllocationState{Method: dnd5e.AllocationMethodPointBuy, PointsSpent: 12},
	}
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := wizardsession.NewRedisRepository(&wizardsession.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	out, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: s.newSession("sess_1"), TTL: time.Hour})
	s.Require().NoError(err)
	s.Equal(s.clock.At.Add(time.Hour), out.Session.ExpiresAt)
	s.Equal(time.Hour, s.mr.TTL("wizard_session:sess_1"))

	got, err := s.repo.Get(s.ctx, wizardsession.GetInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.Equal(out.Session.Character, got.Session.Character)
	s.Equal(12, got.Session.Allocation.PointsSpent)
	s.True(out.Session.ExpiresAt.Equal(got.Session.ExpiresAt))
}

func (s *RedisRepositoryTestSuite) TestCreateDefaultsTTL() {
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: s.newSession("sess_1")})
	s.Require().NoError(err)
	s.Equal(wizardsession.DefaultTTL, s.mr.TTL("wizard_session:sess_1"))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: s.newSession("sess_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, wizardsession.CreateInput{Session: s.newSession("sess_1")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, wizardsession.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, wizardsession.UpdateInput{Session: &entities.WizardSession{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, wizardsession.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, wizardsession.GetInput{ID: "ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: s.newSession("sess_1"), TTL: time.Minute})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, wizardsession.GetInput{ID: "sess_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsExpiry() {
	created, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: s.newSession("sess_1"), TTL: time.Hour})
	s.Require().NoError(err)

	s.clock.At = s.clock.At.Add(20 * time.Minute)
	session := created.Session
	session.Step = entities.StepClass
	session.Character.Name = "Brom"

	out, err := s.repo.Update(s.ctx, wizardsession.UpdateInput{Session: session})
	s.Require().NoError(err)
	s.Equal(s.clock.At, out.Session.UpdatedAt)
	s.Equal(40*time.Minute, s.mr.TTL("wizard_session:sess_1"))

	got, err := s.repo.Get(s.ctx, wizardsession.GetInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.Equal(entities.StepClass, got.Session.Step)
	s.Equal("Brom", got.Session.Character.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingOrExpired() {
	session := s.newSession("sess_1")
	session.ExpiresAt = s.clock.At.Add(time.Hour)

	_, err := s.repo.Update(s.ctx, wizardsession.UpdateInput{Session: session})
	s.True(errors.IsNotFound(err))

	session.ExpiresAt = s.clock.At.Add(-time.Second)
	_, err = s.repo.Update(s.ctx, wizardsession.UpdateInput{Session: session})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: s.newSession("sess_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, wizardsession.DeleteInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("wizard_session:sess_1"))

	_, err = s.repo.Delete(s.ctx, wizardsession.DeleteInput{ID: "sess_1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
