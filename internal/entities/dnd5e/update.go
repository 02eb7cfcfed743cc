package dnd5e

// CharacterUpdate is a partial character. Nil fields are left untouched by
// a merge; non-nil fields overwrite the record wholesale, collections
// included.
type CharacterUpdate struct {
	ID         *string     `json:"id,omitempty"`
	Name       *string     `json:"name,omitempty"`
	Race       *Race       `json:"race,omitempty"`
	Class      *Class      `json:"class,omitempty"`
	Level      *int        `json:"level,omitempty"`
	Background *Background `json:"background,omitempty"`
	Alignment  *Alignment  `json:"alignment,omitempty"`
	Experience *int        `json:"experience,omitempty"`

	AbilityScores *AbilityScores `json:"abilityScores,omitempty"`

	ArmorClass *int       `json:"armorClass,omitempty"`
	HitPoints  *HitPoints `json:"hitPoints,omitempty"`
	Speed      *int       `json:"speed,omitempty"`
	Initiative *int       `json:"initiative,omitempty"`

	PersonalityTraits *string `json:"personalityTraits,omitempty"`
	Ideals            *string `json:"ideals,omitempty"`
	Bonds             *string `json:"bonds,omitempty"`
	Flaws             *string `json:"flaws,omitempty"`
	Backstory         *string `json:"backstory,omitempty"`
	Appearance        *string `json:"appearance,omitempty"`

	Equipment     []EquipmentItem `json:"equipment"`
	Features      []Feature       `json:"features"`
	Proficiencies []string        `json:"proficiencies"`
	Languages     []string        `json:"languages"`
	Spells        []Spell         `json:"spells"`
}

// IsEmpty reports whether the update sets nothing.
func (u *CharacterUpdate) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.ID == nil && u.Name == nil && u.Race == nil && u.Class == nil &&
		u.Level == nil && u.Background == nil && u.Alignment == nil &&
		u.Experience == nil && u.AbilityScores == nil && u.ArmorClass == nil &&
		u.HitPoints == nil && u.Speed == nil && u.Initiative == nil &&
		u.PersonalityTraits == nil && u.Ideals == nil && u.Bonds == nil &&
		u.Flaws == nil && u.Backstory == nil && u.Appearance == nil &&
		u.Equipment == nil && u.Features == nil && u.Proficiencies == nil &&
		u.Languages == nil && u.Spells == nil
}

// TouchesDerivationInputs reports whether the update changes a value combat
// stats are derived from.
func (u *CharacterUpdate) TouchesDerivationInputs() bool {
	return u != nil && (u.AbilityScores != nil || u.Race != nil || u.Class != nil)
}

// Ptr returns a pointer to v; convenient for building updates.
func Ptr[T any](v T) *T {
	return &v
}
