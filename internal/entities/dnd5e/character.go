package dnd5e

// Character is the canonical record assembled by the wizard. During the
// wizard it is partial; it is complete once the wizard reaches Complete.
type Character struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Race       Race       `json:"race"`
	Class      Class      `json:"class"`
	Level      int        `json:"level"`
	Background Background `json:"background"`
	Alignment  Alignment  `json:"alignment"`
	Experience int        `json:"experience"`

	AbilityScores AbilityScores `json:"abilityScores"`

	ArmorClass int       `json:"armorClass"`
	HitPoints  HitPoints `json:"hitPoints"`
	Speed      int       `json:"speed"`
	Initiative int       `json:"initiative"`

	PersonalityTraits string `json:"personalityTraits"`
	Ideals            string `json:"ideals"`
	Bonds             string `json:"bonds"`
	Flaws             string `json:"flaws"`
	Backstory         string `json:"backstory"`
	Appearance        string `json:"appearance"`

	Equipment     []EquipmentItem `json:"equipment"`
	Features      []Feature       `json:"features"`
	Proficiencies []string        `json:"proficiencies"`
	Languages     []string        `json:"languages"`
	Spells        []Spell         `json:"spells,omitempty"`
}

// DefaultCharacter returns the template a new wizard session starts from.
// Its combat stats are the level-1 values for a Human Fighter with all
// scores at 10.
func DefaultCharacter() *Character {
	return &Character{
		Race:          RaceHuman,
		Class:         ClassFighter,
		Level:         1,
		Background:    BackgroundSoldier,
		Alignment:     AlignmentTrueNeutral,
		AbilityScores: UniformScores(DefaultScore),
		ArmorClass:    10,
		HitPoints:     FullHitPoints(10),
		Speed:         30,
		Initiative:    0,
		Equipment:     []EquipmentItem{},
		Features:      []Feature{},
		Proficiencies: []string{},
		Languages:     []string{},
	}
}

// Clone returns a deep copy so collections are never shared between
// snapshots.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Equipment = cloneSlice(c.Equipment)
	out.Features = cloneSlice(c.Features)
	out.Proficiencies = cloneSlice(c.Proficiencies)
	out.Languages = cloneSlice(c.Languages)
	out.Spells = cloneSlice(c.Spells)
	return &out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
