package dicehistory_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	dicehistory "github.com/KirkDiggler/rpg-character-forge/internal/repositories/dice_history"
	"github.com/KirkDiggler/rpg-character-forge/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	repo    dicehistory.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup

	var err error
	s.repo, err = dicehistory.NewRedisRepository(&dicehistory.Config{Client: client})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func roll(id string, total int) entities.DiceRoll {
	return entities.DiceRoll{ID: id, Notation: "1d20", Sides: 20, Dice: []int{total}, Total: total}
}

func (s *RedisRepositoryTestSuite) TestAppendKeepsNewestFive() {
	var out *dicehistory.AppendOutput
	var err error
	for i := 1; i <= 7; i++ {
		out, err = s.repo.Append(s.ctx, dicehistory.AppendInput{
			SessionID: "sess_1",
			Roll:      roll(string(rune('a'+i-1)), i),
		})
		s.Require().NoError(err)
	}

	s.Require().Len(out.Rolls, dicehistory.HistoryLimit)
	totals := []int{}
	for _, r := range out.Rolls {
		totals = append(totals, r.Total)
	}
	s.Equal([]int{7, 6, 5, 4, 3}, totals)

	list, err := s.repo.List(s.ctx, dicehistory.ListInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Equal(out.Rolls, list.Rolls)
}

func (s *RedisRepositoryTestSuite) TestAppendRefreshesTTL() {
	_, err := s.repo.Append(s.ctx, dicehistory.AppendInput{SessionID: "sess_1", Roll: roll("a", 3), TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL("dice_history:sess_1"))

	_, err = s.repo.Append(s.ctx, dicehistory.AppendInput{SessionID: "sess_1", Roll: roll("b", 4)})
	s.Require().NoError(err)
	s.Equal(dicehistory.DefaultTTL, s.mr.TTL("dice_history:sess_1"))
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	list, err := s.repo.List(s.ctx, dicehistory.ListInput{SessionID: "nobody"})
	s.Require().NoError(err)
	s.NotNil(list.Rolls)
	s.Empty(list.Rolls)
}

func (s *RedisRepositoryTestSuite) TestClear() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.Append(s.ctx, dicehistory.AppendInput{SessionID: "sess_1", Roll: roll("x", i+1)})
		s.Require().NoError(err)
	}

	out, err := s.repo.Clear(s.ctx, dicehistory.ClearInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Equal(3, out.RollsDeleted)
	s.False(s.mr.Exists("dice_history:sess_1"))
}

func (s *RedisRepositoryTestSuite) TestRequiresSessionID() {
	_, err := s.repo.Append(s.ctx, dicehistory.AppendInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.List(s.ctx, dicehistory.ListInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Clear(s.ctx, dicehistory.ClearInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptEntry() {
	s.Require().NoError(func() error {
		_, err := s.mr.Lpush("dice_history:sess_1", "not json")
		return err
	}())

	_, err := s.repo.List(s.ctx, dicehistory.ListInput{SessionID: "sess_1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
