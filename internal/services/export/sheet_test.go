package export

import (
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
)

func TestNewSheetDefaults(t *testing.T) {
	sh := newSheet(&dnd5e.Character{Race: dnd5e.RaceGnome})

	assert.Equal(t, "Unnamed Character", sh.name)
	assert.Equal(t, "Gnome", sh.race)
	assert.Equal(t, unknown, sh.class)
	assert.Equal(t, unknown, sh.background)
	assert.Equal(t, unknown, sh.alignment)
	assert.Equal(t, 1, sh.level)
	assert.Equal(t, 10, sh.armorClass)
	assert.Equal(t, 25, sh.speed)
	assert.Equal(t, dnd5e.UniformScores(dnd5e.DefaultScore), sh.scores)
	assert.Empty(t, sh.features)
	assert.Equal(t, 10, sh.hitPoints)
	assert.Equal(t, "No backstory provided.", sh.backstory)
}

func TestNewSheetEmptyCharacter(t *testing.T) {
	sh := newSheet(&dnd5e.Character{Backstory: "   "})

	assert.Equal(t, "Unnamed Character", sh.name)
	assert.Equal(t, "Unknown Race", sh.race)
	assert.Equal(t, 10, sh.hitPoints)
	assert.Equal(t, 10, sh.armorClass)
	assert.Equal(t, 30, sh.speed)
	assert.Equal(t, "No backstory provided.", sh.backstory)
}

func TestNewSheetKeepsHitPoints(t *testing.T) {
	c := dnd5e.DefaultCharacter()
	c.HitPoints = dnd5e.FullHitPoints(13)

	assert.Equal(t, 13, newSheet(c).hitPoints)
}

func TestNewSheetCapsFeatures(t *testing.T) {
	c := dnd5e.DefaultCharacter()
	for i := 0; i < 11; i++ {
		c.Features = append(c.Features, dnd5e.Feature{Name: "Feature " + string(rune('A'+i))})
	}

	sh := newSheet(c)
	assert.Len(t, sh.features, MaxFeatures)
	assert.Equal(t, "Feature A", sh.features[0])
}

func TestBackstoryLinesAreCapped(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Times", "", 10)

	assert.Nil(t, backstoryLines(pdf, ""))

	short := backstoryLines(pdf, "A short tale.")
	assert.Equal(t, []string{"A short tale."}, short)

	long := backstoryLines(pdf, strings.Repeat("The road goes ever on and on. ", 200))
	assert.Len(t, long, MaxBackstoryLines)
	for _, line := range long {
		assert.LessOrEqual(t, pdf.GetStringWidth(line), BackstoryWidth)
	}
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+0", signed(0))
	assert.Equal(t, "+3", signed(3))
	assert.Equal(t, "-1", signed(-1))
}
