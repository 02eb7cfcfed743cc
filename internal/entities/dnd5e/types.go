package dnd5e

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AbilityScores holds the six ability values.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// UniformScores returns scores with every ability set to v.
func UniformScores(v int) AbilityScores {
	return AbilityScores{
		Strength:     v,
		Dexterity:    v,
		Constitution: v,
		Intelligence: v,
		Wisdom:       v,
		Charisma:     v,
	}
}

// Get returns the value for an ability. Unknown abilities return 0.
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	}
	return 0
}

// Set assigns the value for an ability. Unknown abilities are ignored.
func (s *AbilityScores) Set(a Ability, v int) {
	switch a {
	case AbilityStrength:
		s.Strength = v
	case AbilityDexterity:
		s.Dexterity = v
	case AbilityConstitution:
		s.Constitution = v
	case AbilityIntelligence:
		s.Intelligence = v
	case AbilityWisdom:
		s.Wisdom = v
	case AbilityCharisma:
		s.Charisma = v
	}
}

// HitPoints is either a bare value or a current/maximum pair. Pair records
// which form the value came in so it serializes back the same way.
type HitPoints struct {
	Current int
	Maximum int
	Pair    bool
}

// FullHitPoints returns the pair form with current equal to maximum.
func FullHitPoints(maximum int) HitPoints {
	return HitPoints{Current: maximum, Maximum: maximum, Pair: true}
}

// Value is the number shown on a sheet: the maximum for a pair, otherwise
// the bare value.
func (h HitPoints) Value() int {
	if h.Pair {
		return h.Maximum
	}
	return h.Current
}

// Clamp enforces current <= maximum for the pair form.
func (h HitPoints) Clamp() HitPoints {
	if h.Pair && h.Current > h.Maximum {
		h.Current = h.Maximum
	}
	return h
}

type hitPointPair struct {
	Current int `json:"current"`
	Maximum int `json:"maximum"`
}

// MarshalJSON writes a number for the bare form and an object for the pair.
func (h HitPoints) MarshalJSON() ([]byte, error) {
	if h.Pair {
		return json.Marshal(hitPointPair{Current: h.Current, Maximum: h.Maximum})
	}
	return json.Marshal(h.Current)
}

// UnmarshalJSON accepts either form.
func (h *HitPoints) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var p hitPointPair
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*h = HitPoints{Current: p.Current, Maximum: p.Maximum, Pair: true}
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("hit points must be a number or {current, maximum}: %w", err)
	}
	*h = HitPoints{Current: v}
	return nil
}

// Equipment categories
const (
	EquipmentCategoryGear    = "Gear"
	EquipmentCategoryWeapon  = "Weapon"
	EquipmentCategoryArmor   = "Armor"
	EquipmentCategoryMagical = "Magical"
)

// EquipmentItem is an owned piece of gear.
type EquipmentItem struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// FeatureSource records where a feature came from
type FeatureSource string

// Feature sources
const (
	FeatureSourceRace       FeatureSource = "race"
	FeatureSourceClass      FeatureSource = "class"
	FeatureSourceBackground FeatureSource = "background"
	FeatureSourceOther      FeatureSource = "other"
)

// Feature is a named trait or class feature.
type Feature struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Source      FeatureSource `json:"source,omitempty"`
}

// Spell is a known spell. Spells are optional on a character.
type Spell struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	School      string `json:"school"`
	CastingTime string `json:"castingTime"`
	Range       string `json:"range"`
	Components  string `json:"components"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Ritual      bool   `json:"ritual,omitempty"`
}
