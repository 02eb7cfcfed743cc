package record_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/record"
)

type RecordTestSuite struct {
	suite.Suite
	ctx      context.Context
	bus      events.EventBus
	record   *record.Record
	received []*dnd5e.Character
	mu       sync.Mutex
}

func (s *RecordTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.received = nil

	s.bus.SubscribeFunc(record.EventCharacterChanged, 0, func(_ context.Context, e events.Event) error {
		v, ok := e.Context().Get(record.ContextKeyCharacter)
		s.Require().True(ok)
		s.Equal("sess_1", e.Source().GetID())

		s.mu.Lock()
		defer s.mu.Unlock()
		s.received = append(s.received, v.(*dnd5e.Character))
		return nil
	})

	var err error
	s.record, err = record.New(&record.Config{OwnerID: "sess_1", EventBus: s.bus})
	s.Require().NoError(err)
}

func (s *RecordTestSuite) TestNewRequiresOwner() {
	_, err := record.New(&record.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RecordTestSuite) TestStartsFromTemplate() {
	s.Equal(dnd5e.DefaultCharacter(), s.record.Snapshot())
}

func (s *RecordTestSuite) TestEmptyUpdateIsIdempotent() {
	before := s.record.Snapshot()

	after, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{})
	s.Require().NoError(err)
	s.Equal(before, after)

	after, err = s.record.Update(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(before, after)
	s.Empty(s.received)
}

func (s *RecordTestSuite) TestUpdateOverwritesOnlyProvidedKeys() {
	after, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{
		Name:      dnd5e.Ptr("Brom"),
		Languages: []string{"Common", "Dwarvish"},
	})
	s.Require().NoError(err)

	s.Equal("Brom", after.Name)
	s.Equal([]string{"Common", "Dwarvish"}, after.Languages)
	s.Equal(dnd5e.RaceHuman, after.Race)
	s.Equal(dnd5e.FullHitPoints(10), after.HitPoints)
	s.Len(s.received, 1)
	s.Equal(after, s.received[0])
}

func (s *RecordTestSuite) TestRaceChangeRecomputesSpeed() {
	after, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{Race: dnd5e.Ptr(dnd5e.RaceDwarf)})
	s.Require().NoError(err)
	s.Equal(25, after.Speed)
}

func (s *RecordTestSuite) TestScoreChangeRecomputesDerivedStats() {
	scores := dnd5e.UniformScores(10)
	scores.Constitution = 14
	scores.Dexterity = 16

	after, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{AbilityScores: &scores})
	s.Require().NoError(err)

	s.Equal(dnd5e.FullHitPoints(12), after.HitPoints)
	s.Equal(13, after.ArmorClass)
	s.Equal(3, after.Initiative)
	s.Equal(30, after.Speed)
}

func (s *RecordTestSuite) TestOverrideInSameUpdateWins() {
	scores := dnd5e.UniformScores(16)

	after, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{
		AbilityScores: &scores,
		ArmorClass:    dnd5e.Ptr(18),
	})
	s.Require().NoError(err)

	s.Equal(18, after.ArmorClass)
	s.Equal(3, after.Initiative)
}

func (s *RecordTestSuite) TestManualOverrideSurvivesUnrelatedUpdates() {
	_, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{ArmorClass: dnd5e.Ptr(16)})
	s.Require().NoError(err)

	after, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{Backstory: dnd5e.Ptr("Raised by wolves.")})
	s.Require().NoError(err)
	s.Equal(16, after.ArmorClass)

	// a later class change is a full recompute
	after, err = s.record.Update(s.ctx, &dnd5e.CharacterUpdate{Class: dnd5e.Ptr(dnd5e.ClassWizard)})
	s.Require().NoError(err)
	s.Equal(10, after.ArmorClass)
	s.Equal(dnd5e.FullHitPoints(6), after.HitPoints)
}

func (s *RecordTestSuite) TestHitPointsAreClamped() {
	after, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{
		HitPoints: &dnd5e.HitPoints{Current: 20, Maximum: 12, Pair: true},
	})
	s.Require().NoError(err)
	s.Equal(dnd5e.FullHitPoints(12), after.HitPoints)
}

func (s *RecordTestSuite) TestSnapshotsAreIsolated() {
	snapshot := s.record.Snapshot()
	snapshot.Languages = append(snapshot.Languages, "Elvish")
	snapshot.Name = "Mutated"

	current := s.record.Snapshot()
	s.Empty(current.Languages)
	s.Empty(current.Name)
}

func (s *RecordTestSuite) TestReset() {
	_, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{
		Name:  dnd5e.Ptr("Brom"),
		Class: dnd5e.Ptr(dnd5e.ClassBarbarian),
	})
	s.Require().NoError(err)

	after, err := s.record.Reset(s.ctx)
	s.Require().NoError(err)
	s.Equal(dnd5e.DefaultCharacter(), after)
	s.Len(s.received, 2)
}

func (s *RecordTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.record.Update(ctx, &dnd5e.CharacterUpdate{Name: dnd5e.Ptr("Late")})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.Empty(s.record.Snapshot().Name)
}

func (s *RecordTestSuite) TestConcurrentUpdatesSerialize() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(level int) {
			defer wg.Done()
			_, err := s.record.Update(s.ctx, &dnd5e.CharacterUpdate{Level: dnd5e.Ptr(level)})
			s.NoError(err)
		}(i + 1)
	}
	wg.Wait()

	s.Len(s.received, 50)
}

func TestRecordTestSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func TestNilBusIsAllowed(t *testing.T) {
	r, err := record.New(&record.Config{OwnerID: "sess_2", Character: &dnd5e.Character{Name: "Seeded"}})
	if err != nil {
		t.Fatal(err)
	}
	after, err := r.Update(context.Background(), &dnd5e.CharacterUpdate{Level: dnd5e.Ptr(2)})
	if err != nil {
		t.Fatal(err)
	}
	if after.Name != "Seeded" || after.Level != 2 {
		t.Fatalf("unexpected character: %+v", after)
	}
}
