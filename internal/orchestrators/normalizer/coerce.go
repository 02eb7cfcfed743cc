package normalizer

import (
	"strings"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
)

var alignmentAliases = map[string]dnd5e.Alignment{
	"neutral":         dnd5e.AlignmentTrueNeutral,
	"neutral neutral": dnd5e.AlignmentTrueNeutral,
}

// enumKey folds case, separators and spacing so "half_orc", "Half-Orc" and
// " half  orc " compare equal.
func enumKey(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func coerce[T ~string](raw string, values []T) (T, bool) {
	key := enumKey(raw)
	if key == "" {
		return "", false
	}
	for _, v := range values {
		if enumKey(string(v)) == key {
			return v, true
		}
	}
	return "", false
}

// CoerceRace maps free text onto a race.
func CoerceRace(raw string) (dnd5e.Race, bool) {
	return coerce(raw, dnd5e.Races)
}

// CoerceClass maps free text onto a class.
func CoerceClass(raw string) (dnd5e.Class, bool) {
	return coerce(raw, dnd5e.Classes)
}

// CoerceBackground maps free text onto a background.
func CoerceBackground(raw string) (dnd5e.Background, bool) {
	return coerce(raw, dnd5e.Backgrounds)
}

// CoerceAlignment maps free text onto an alignment. A bare "neutral" is
// read as True Neutral.
func CoerceAlignment(raw string) (dnd5e.Alignment, bool) {
	if a, ok := coerce(raw, dnd5e.Alignments); ok {
		return a, true
	}
	a, ok := alignmentAliases[enumKey(raw)]
	return a, ok
}
