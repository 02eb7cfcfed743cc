// Package normalizer turns a free-form generated character payload into a
// typed update that is safe to merge into a record.
package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-character-forge/internal/rules"
)

// Level bounds for generated characters
const (
	MinLevel = dnd5e.MinLevel
	MaxLevel = dnd5e.MaxLevel
)

// Config holds the dependencies for the normalizer
type Config struct {
	// IDGenerator issues character ids. Defaults to base-36.
	IDGenerator idgen.Generator
}

// Normalizer validates generated payloads.
type Normalizer struct {
	idGen idgen.Generator
}

// New creates a normalizer
func New(cfg *Config) (*Normalizer, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewBase36(idgen.DefaultBase36Length)
	}

	return &Normalizer{idGen: idGen}, nil
}

// NormalizeInput is the payload plus the character it will be merged into.
type NormalizeInput struct {
	Raw []byte
	// Current supplies race and class for derivation when the payload's
	// values are missing or rejected. Nil means the default template.
	Current *dnd5e.Character
}

// NormalizeOutput is the update to merge and what was repaired on the way.
type NormalizeOutput struct {
	Update   *dnd5e.CharacterUpdate
	Warnings []string
}

// Normalize validates and coerces a generated character. Invalid JSON, a
// non-object payload or a missing abilityScores object are errors; every
// other defect is repaired and reported as a warning.
func (n *Normalizer) Normalize(input *NormalizeInput) (*NormalizeOutput, error) {
	if input == nil || len(input.Raw) == 0 {
		return nil, errors.InvalidArgument("generated payload is empty")
	}
	if !gjson.ValidBytes(input.Raw) {
		return nil, errors.InvalidArgument("generated payload is not valid JSON")
	}

	root := gjson.ParseBytes(input.Raw)
	if !root.IsObject() {
		return nil, errors.InvalidArgumentf("generated payload must be an object, got %s", root.Type)
	}

	scoresNode := root.Get("abilityScores")
	if !scoresNode.IsObject() {
		return nil, errors.InvalidArgument("generated payload is missing abilityScores")
	}

	current := input.Current
	if current == nil {
		current = dnd5e.DefaultCharacter()
	}

	w := &warnings{}
	u := &dnd5e.CharacterUpdate{
		ID:         dnd5e.Ptr(n.idGen.Generate()),
		Experience: dnd5e.Ptr(0),
		Level:      dnd5e.Ptr(level(root.Get("level"), w)),
	}

	scores := abilityScores(scoresNode, w)
	u.AbilityScores = &scores

	u.Name = stringField(root, "name")
	u.PersonalityTraits = stringField(root, "personalityTraits")
	u.Ideals = stringField(root, "ideals")
	u.Bonds = stringField(root, "bonds")
	u.Flaws = stringField(root, "flaws")
	u.Backstory = stringField(root, "backstory")
	u.Appearance = stringField(root, "appearance")

	u.Race = enumField(root, "race", CoerceRace, w)
	u.Class = enumField(root, "class", CoerceClass, w)
	u.Background = enumField(root, "background", CoerceBackground, w)
	u.Alignment = enumField(root, "alignment", CoerceAlignment, w)

	race, class := current.Race, current.Class
	if u.Race != nil {
		race = *u.Race
	}
	if u.Class != nil {
		class = *u.Class
	}
	stats := rules.Derive(scores, race, class)
	u.HitPoints = &stats.HitPoints
	u.ArmorClass = dnd5e.Ptr(stats.ArmorClass)
	u.Initiative = dnd5e.Ptr(stats.Initiative)
	u.Speed = dnd5e.Ptr(stats.Speed)

	if eq := root.Get("equipment"); eq.IsArray() {
		u.Equipment = equipment(eq, w)
	}
	u.Proficiencies = stringList(root.Get("proficiencies"))
	u.Languages = stringList(root.Get("languages"))
	u.Features = features(root.Get("features"), w)
	if sp := root.Get("spells"); sp.IsArray() {
		u.Spells = spells(sp)
	}

	return &NormalizeOutput{Update: u, Warnings: w.list}, nil
}

type warnings struct {
	list []string
}

func (w *warnings) add(format string, args ...any) {
	w.list = append(w.list, fmt.Sprintf(format, args...))
}

// intValue reads a JSON number or a numeric string.
func intValue(r gjson.Result) (int, bool) {
	switch r.Type {
	case gjson.Number:
		return int(r.Int()), true
	case gjson.String:
		v, err := strconv.Atoi(strings.TrimSpace(r.Str))
		return v, err == nil
	}
	return 0, false
}

func level(r gjson.Result, w *warnings) int {
	if !r.Exists() {
		return MinLevel
	}
	v, ok := intValue(r)
	switch {
	case !ok:
		w.add("level %q is not a number, using %d", r.Raw, MinLevel)
		return MinLevel
	case v < MinLevel:
		w.add("level %d raised to %d", v, MinLevel)
		return MinLevel
	case v > MaxLevel:
		w.add("level %d lowered to %d", v, MaxLevel)
		return MaxLevel
	}
	return v
}

func abilityScores(node gjson.Result, w *warnings) dnd5e.AbilityScores {
	var scores dnd5e.AbilityScores
	for _, ability := range dnd5e.Abilities {
		r := node.Get(string(ability))
		v, ok := intValue(r)
		switch {
		case !ok:
			w.add("%s missing or not a number, using %d", ability, dnd5e.DefaultScore)
			v = dnd5e.DefaultScore
		case v < dnd5e.MinAbilityScore:
			w.add("%s %d raised to %d", ability, v, dnd5e.MinAbilityScore)
			v = dnd5e.MinAbilityScore
		case v > dnd5e.MaxAbilityScore:
			w.add("%s %d lowered to %d", ability, v, dnd5e.MaxAbilityScore)
			v = dnd5e.MaxAbilityScore
		}
		scores.Set(ability, v)
	}
	return scores
}

func stringField(root gjson.Result, path string) *string {
	r := root.Get(path)
	if r.Type != gjson.String {
		return nil
	}
	return dnd5e.Ptr(r.Str)
}

// enumField coerces an enum. Absent fields stay absent; values that cannot
// be coerced are dropped so the record keeps what it had.
func enumField[T ~string](root gjson.Result, path string, coerceFn func(string) (T, bool), w *warnings) *T {
	r := root.Get(path)
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	if r.Type != gjson.String {
		w.add("%s %s is not text, ignored", path, r.Raw)
		return nil
	}
	v, ok := coerceFn(r.Str)
	if !ok {
		w.add("%s %q is not recognized, ignored", path, r.Str)
		return nil
	}
	return &v
}

func objectString(obj gjson.Result, path, fallback string) string {
	r := obj.Get(path)
	if r.Type != gjson.String {
		return fallback
	}
	return r.Str
}

// nonEmpty returns fallback for an empty s.
func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func equipment(arr gjson.Result, w *warnings) []dnd5e.EquipmentItem {
	items := []dnd5e.EquipmentItem{}
	for i, r := range arr.Array() {
		switch {
		case r.Type == gjson.String:
			items = append(items, dnd5e.EquipmentItem{
				Name:     r.Str,
				Category: dnd5e.EquipmentCategoryGear,
			})
		case r.IsObject():
			items = append(items, dnd5e.EquipmentItem{
				Name:        objectString(r, "name", ""),
				Category:    nonEmpty(objectString(r, "category", ""), dnd5e.EquipmentCategoryGear),
				Description: objectString(r, "description", ""),
			})
		default:
			w.add("equipment[%d] %s ignored", i, r.Raw)
		}
	}
	return items
}

// stringList keeps the string entries of an array; anything else yields
// an empty list.
func stringList(r gjson.Result) []string {
	out := []string{}
	if !r.IsArray() {
		return out
	}
	for _, item := range r.Array() {
		if item.Type == gjson.String {
			out = append(out, item.Str)
		}
	}
	return out
}

func features(r gjson.Result, w *warnings) []dnd5e.Feature {
	out := []dnd5e.Feature{}
	if !r.IsArray() {
		return out
	}
	for i, item := range r.Array() {
		switch {
		case item.Type == gjson.String:
			out = append(out, dnd5e.Feature{Name: item.Str})
		case item.IsObject():
			out = append(out, dnd5e.Feature{
				Name:        objectString(item, "name", ""),
				Description: objectString(item, "description", ""),
				Source:      dnd5e.FeatureSource(objectString(item, "source", "")),
			})
		default:
			w.add("features[%d] %s ignored", i, item.Raw)
		}
	}
	return out
}

func spells(r gjson.Result) []dnd5e.Spell {
	out := []dnd5e.Spell{}
	for _, item := range r.Array() {
		if !item.IsObject() {
			continue
		}
		lvl, _ := intValue(item.Get("level"))
		out = append(out, dnd5e.Spell{
			Name:        objectString(item, "name", ""),
			Level:       lvl,
			School:      objectString(item, "school", ""),
			CastingTime: objectString(item, "castingTime", ""),
			Range:       objectString(item, "range", ""),
			Components:  objectString(item, "components", ""),
			Duration:    objectString(item, "duration", ""),
			Description: objectString(item, "description", ""),
			Ritual:      item.Get("ritual").Bool(),
		})
	}
	return out
}
