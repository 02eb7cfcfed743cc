package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/normalizer"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/idgen"
)

const fullPayload = `{
  "name": "Thorin Oakenshield",
  "race": "dwarf",
  "class": "Fighter",
  "level": 1,
  "background": "folk_hero",
  "alignment": "lawful good",
  "experiencePoints": 900,
  "experience": 900,
  "abilityScores": {"strength": 16, "dexterity": 12, "constitution": 14, "intelligence": 10, "wisdom": 13, "charisma": 8},
  "personalityTraits": "Stubborn.",
  "ideals": "Honor.",
  "bonds": "The mountain.",
  "flaws": "Greed.",
  "backstory": "Exiled prince.",
  "appearance": "Braided beard.",
  "equipment": ["Longsword", {"name": "Shield"}, {"name": "Chain Mail", "category": "Armor", "description": "Heavy"}],
  "proficiencies": ["All armor", 7],
  "languages": ["Common", "Dwarvish"],
  "features": ["Second Wind", {"name": "Darkvision", "description": "See in the dark", "source": "race"}]
}`

type NormalizerTestSuite struct {
	suite.Suite
	normalizer *normalizer.Normalizer
}

func (s *NormalizerTestSuite) SetupTest() {
	var err error
	s.normalizer, err = normalizer.New(&normalizer.Config{IDGenerator: idgen.NewSequential("char")})
	s.Require().NoError(err)
}

func (s *NormalizerTestSuite) normalize(raw string) *normalizer.NormalizeOutput {
	out, err := s.normalizer.Normalize(&normalizer.NormalizeInput{Raw: []byte(raw)})
	s.Require().NoError(err)
	return out
}

func (s *NormalizerTestSuite) TestFullPayload() {
	out := s.normalize(fullPayload)
	u := out.Update

	s.Empty(out.Warnings)
	s.Equal("char_1", *u.ID)
	s.Equal("Thorin Oakenshield", *u.Name)
	s.Equal(dnd5e.RaceDwarf, *u.Race)
	s.Equal(dnd5e.ClassFighter, *u.Class)
	s.Equal(dnd5e.BackgroundFolkHero, *u.Background)
	s.Equal(dnd5e.AlignmentLawfulGood, *u.Alignment)
	s.Equal(1, *u.Level)
	s.Equal(0, *u.Experience)
	s.Equal(14, u.AbilityScores.Constitution)

	// Fighter d10 + CON 14 (+2)
	s.Equal(dnd5e.HitPoints{Current: 12, Maximum: 12, Pair: true}, *u.HitPoints)
	s.Equal(11, *u.ArmorClass)
	s.Equal(1, *u.Initiative)
	s.Equal(25, *u.Speed)

	s.Equal([]dnd5e.EquipmentItem{
		{Name: "Longsword", Category: "Gear"},
		{Name: "Shield", Category: "Gear"},
		{Name: "Chain Mail", Category: "Armor", Description: "Heavy"},
	}, u.Equipment)
	s.Equal([]string{"All armor"}, u.Proficiencies)
	s.Equal([]string{"Common", "Dwarvish"}, u.Languages)
	s.Equal([]dnd5e.Feature{
		{Name: "Second Wind"},
		{Name: "Darkvision", Description: "See in the dark", Source: dnd5e.FeatureSourceRace},
	}, u.Features)
	s.Equal("Exiled prince.", *u.Backstory)
}

func (s *NormalizerTestSuite) TestEquipmentNormalization() {
	out := s.normalize(`{"abilityScores": {}, "equipment": ["Longsword", {"name": "Shield"}]}`)
	s.Equal([]dnd5e.EquipmentItem{
		{Name: "Longsword", Category: "Gear", Description: ""},
		{Name: "Shield", Category: "Gear", Description: ""},
	}, out.Update.Equipment)
}

func (s *NormalizerTestSuite) TestObjectWithoutNameGetsDefaults() {
	out := s.normalize(`{"abilityScores": {}, "equipment": [{"category": 3}, 42, {"name": "Shield", "category": ""}, {"name": "", "description": ""}]}`)
	s.Equal([]dnd5e.EquipmentItem{
		{Name: "", Category: "Gear"},
		{Name: "Shield", Category: "Gear"},
		{Name: "", Category: "Gear", Description: ""},
	}, out.Update.Equipment)
	s.Contains(out.Warnings, "equipment[1] 42 ignored")
}

func (s *NormalizerTestSuite) TestMissingCollectionsDefaultEmpty() {
	out := s.normalize(`{"abilityScores": {}, "languages": "Common", "features": null}`)
	u := out.Update

	s.NotNil(u.Proficiencies)
	s.Empty(u.Proficiencies)
	s.NotNil(u.Languages)
	s.Empty(u.Languages)
	s.NotNil(u.Features)
	s.Empty(u.Features)
	s.Nil(u.Equipment)
	s.Nil(u.Spells)
}

func (s *NormalizerTestSuite) TestMissingScoresDefaultWithWarnings() {
	out := s.normalize(`{"abilityScores": {"strength": "15", "dexterity": 25, "constitution": 1}}`)
	scores := out.Update.AbilityScores

	s.Equal(15, scores.Strength)
	s.Equal(20, scores.Dexterity)
	s.Equal(3, scores.Constitution)
	s.Equal(10, scores.Wisdom)
	s.Len(out.Warnings, 5)
}

func (s *NormalizerTestSuite) TestLevelFallsBack() {
	s.Equal(1, *s.normalize(`{"abilityScores": {}}`).Update.Level)
	s.Equal(1, *s.normalize(`{"abilityScores": {}, "level": "high"}`).Update.Level)
	s.Equal(1, *s.normalize(`{"abilityScores": {}, "level": 0}`).Update.Level)
	s.Equal(3, *s.normalize(`{"abilityScores": {}, "level": 3}`).Update.Level)
	s.Equal(20, *s.normalize(`{"abilityScores": {}, "level": 40}`).Update.Level)
}

func (s *NormalizerTestSuite) TestUnknownEnumsAreDropped() {
	out := s.normalize(`{"abilityScores": {"constitution": 12}, "race": "Goliath", "class": "Artificer", "alignment": 5}`)
	u := out.Update

	s.Nil(u.Race)
	s.Nil(u.Class)
	s.Nil(u.Alignment)
	s.Len(out.Warnings, 8)
	// derivation falls back to the template's Human Fighter
	s.Equal(11, u.HitPoints.Maximum)
	s.Equal(30, *u.Speed)
}

func (s *NormalizerTestSuite) TestDerivationFallsBackToCurrent() {
	current := dnd5e.DefaultCharacter()
	current.Race = dnd5e.RaceGnome
	current.Class = dnd5e.ClassWizard

	out, err := s.normalizer.Normalize(&normalizer.NormalizeInput{
		Raw:     []byte(`{"abilityScores": {"constitution": 8}, "race": "Goliath"}`),
		Current: current,
	})
	s.Require().NoError(err)
	s.Equal(5, out.Update.HitPoints.Maximum)
	s.Equal(25, *out.Update.Speed)
}

func (s *NormalizerTestSuite) TestFreshIDPerCall() {
	first := s.normalize(`{"abilityScores": {}}`)
	second := s.normalize(`{"abilityScores": {}}`)
	s.NotEqual(*first.Update.ID, *second.Update.ID)
}

func (s *NormalizerTestSuite) TestSpells() {
	out := s.normalize(`{"abilityScores": {}, "spells": [{"name": "Fire Bolt", "level": 0, "school": "Evocation", "ritual": false}, "Shield"]}`)
	s.Equal([]dnd5e.Spell{{Name: "Fire Bolt", School: "Evocation"}}, out.Update.Spells)
}

func (s *NormalizerTestSuite) TestRejectsMalformedInput() {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "prose", raw: "Here is your character: Thorin"},
		{name: "truncated", raw: `{"abilityScores": {`},
		{name: "array", raw: `[{"abilityScores": {}}]`},
		{name: "missing scores", raw: `{"name": "Thorin"}`},
		{name: "scores not object", raw: `{"abilityScores": [16, 12]}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.normalizer.Normalize(&normalizer.NormalizeInput{Raw: []byte(tc.raw)})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func TestCoercion(t *testing.T) {
	testCases := []struct {
		raw  string
		want dnd5e.Race
		ok   bool
	}{
		{raw: "half orc", want: dnd5e.RaceHalfOrc, ok: true},
		{raw: "HALF_ELF", want: dnd5e.RaceHalfElf, ok: true},
		{raw: "  Dragonborn ", want: dnd5e.RaceDragonborn, ok: true},
		{raw: "half-orc", want: dnd5e.RaceHalfOrc, ok: true},
		{raw: "orc", ok: false},
		{raw: "", ok: false},
	}

	for _, tc := range testCases {
		got, ok := normalizer.CoerceRace(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}

	a, ok := normalizer.CoerceAlignment("Neutral")
	assert.True(t, ok)
	assert.Equal(t, dnd5e.AlignmentTrueNeutral, a)

	b, ok := normalizer.CoerceBackground("guild-artisan")
	assert.True(t, ok)
	assert.Equal(t, dnd5e.BackgroundGuildArtisan, b)

	c, ok := normalizer.CoerceClass("wizard")
	assert.True(t, ok)
	assert.Equal(t, dnd5e.ClassWizard, c)
}
