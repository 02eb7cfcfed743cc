// Package export renders a character as a printable PDF sheet
package export

//go:generate mockgen -destination=mock/mock_service.go -package=exportmock github.com/KirkDiggler/rpg-character-forge/internal/services/export Service

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/rules"
)

const (
	// ContentType of rendered sheets
	ContentType = "application/pdf"

	// MaxFeatures is how many features fit in the features box.
	MaxFeatures = 8
	// MaxBackstoryLines is how many wrapped backstory lines fit.
	MaxBackstoryLines = 12
	// BackstoryWidth is the wrap width of the backstory in millimeters.
	BackstoryWidth = 170.0

	defaultName      = "Unnamed Character"
	defaultRace      = "Unknown Race"
	defaultHitPoints = 10
	defaultBackstory = "No backstory provided."
	unknown          = "Unknown"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sheet colors
var (
	colorPrimary   = [3]int{0x7b, 0x1f, 0x18}
	colorSecondary = [3]int{0xd4, 0xa5, 0x4a}
	colorLight     = [3]int{0xf2, 0xe8, 0xd4}
	colorDark      = [3]int{0x16, 0x16, 0x18}
)

// Service defines the interface for character sheet export
type Service interface {
	RenderCharacterSheet(ctx context.Context, input *RenderCharacterSheetInput) (*RenderCharacterSheetOutput, error)
}

// RenderCharacterSheetInput defines the request for a character sheet
type RenderCharacterSheetInput struct {
	Character *dnd5e.Character
}

// RenderCharacterSheetOutput defines the rendered sheet
type RenderCharacterSheetOutput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Config holds the options for the export service
type Config struct {
	// Now stamps the document; defaults to time.Now.
	Now func() time.Time
}

type service struct {
	now func() time.Time
}

// NewService creates an export service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &service{now: now}, nil
}

// Filename turns a character name into the sheet's file name. Runs of
// whitespace become a single underscore.
func Filename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}
	return whitespaceRun.ReplaceAllString(name, "_") + "_character_sheet.pdf"
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func signed(v int) string {
	if v >= 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// sheet is the character with every blank replaced by what gets printed.
type sheet struct {
	name       string
	race       string
	class      string
	level      int
	background string
	alignment  string
	experience int
	hitPoints  int
	armorClass int
	speed      int
	scores     dnd5e.AbilityScores
	features   []string
	backstory  string
}

func newSheet(c *dnd5e.Character) sheet {
	s := sheet{
		name:       orDefault(c.Name, defaultName),
		race:       orDefault(string(c.Race), defaultRace),
		class:      orDefault(string(c.Class), unknown),
		level:      c.Level,
		background: orDefault(string(c.Background), unknown),
		alignment:  orDefault(string(c.Alignment), unknown),
		experience: c.Experience,
		hitPoints:  c.HitPoints.Value(),
		armorClass: c.ArmorClass,
		speed:      c.Speed,
		scores:     c.AbilityScores,
		backstory:  orDefault(strings.TrimSpace(c.Backstory), defaultBackstory),
	}
	if s.hitPoints <= 0 {
		s.hitPoints = defaultHitPoints
	}
	if s.level <= 0 {
		s.level = 1
	}
	if s.armorClass <= 0 {
		s.armorClass = 10
	}
	if s.speed <= 0 {
		s.speed = rules.Speed(c.Race)
	}
	for _, ability := range dnd5e.Abilities {
		if s.scores.Get(ability) == 0 {
			s.scores.Set(ability, dnd5e.DefaultScore)
		}
	}
	for _, f := range c.Features {
		if len(s.features) == MaxFeatures {
			break
		}
		if f.Name != "" {
			s.features = append(s.features, f.Name)
		}
	}
	return s
}

// RenderCharacterSheet draws a one-page A4 sheet
func (s *service) RenderCharacterSheet(ctx context.Context, input *RenderCharacterSheetInput) (*RenderCharacterSheetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "render canceled")
	}

	sh := newSheet(input.Character)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(sh.name+" - Character Sheet", true)
	pdf.SetCreator("character-forge", false)
	pdf.SetCreationDate(s.now())
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawHeader(pdf, tr, sh)
	drawIdentity(pdf, tr, sh)
	drawAbilities(pdf, sh)
	drawCombat(pdf, sh)
	drawFeatures(pdf, tr, sh)
	drawBackstory(pdf, tr, sh)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render character sheet")
	}

	return &RenderCharacterSheetOutput{
		Filename:    Filename(input.Character.Name),
		ContentType: ContentType,
		Content:     buf.Bytes(),
	}, nil
}

func setText(pdf *fpdf.Fpdf, c [3]int, size float64) {
	pdf.SetTextColor(c[0], c[1], c[2])
	pdf.SetFont("Times", "", size)
}

func centered(pdf *fpdf.Fpdf, x, y, w float64, text string) {
	pdf.SetXY(x, y)
	pdf.CellFormat(w, 8, text, "", 0, "C", false, 0, "")
}

func box(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetFillColor(colorLight[0], colorLight[1], colorLight[2])
	pdf.SetDrawColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.RoundedRect(x, y, w, h, 3, "1234", "FD")
}

func label(pdf *fpdf.Fpdf, x, y float64, name, value string) {
	setText(pdf, colorDark, 10)
	pdf.Text(x, y, name)
	pdf.SetFontSize(12)
	pdf.Text(x+30, y, value)
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, sh sheet) {
	pdf.SetDrawColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.SetLineWidth(0.5)
	pdf.Rect(10, 10, 190, 277, "D")

	setText(pdf, colorPrimary, 24)
	centered(pdf, 10, 9, 190, "D&D CHARACTER SHEET")
	setText(pdf, colorDark, 20)
	centered(pdf, 10, 19, 190, tr(sh.name))
}

func drawIdentity(pdf *fpdf.Fpdf, tr func(string) string, sh sheet) {
	box(pdf, 15, 30, 180, 50)

	label(pdf, 20, 40, "Race:", tr(sh.race))
	label(pdf, 20, 50, "Alignment:", tr(sh.alignment))
	label(pdf, 20, 70, "Experience:", strconv.Itoa(sh.experience))

	label(pdf, 100, 40, "Class:", tr(sh.class))
	label(pdf, 100, 50, "Level:", strconv.Itoa(sh.level))
	label(pdf, 100, 60, "Background:", tr(sh.background))
	label(pdf, 100, 70, "Hit Points:", strconv.Itoa(sh.hitPoints))
}

func drawAbilities(pdf *fpdf.Fpdf, sh sheet) {
	box(pdf, 15, 85, 50, 120)
	setText(pdf, colorPrimary, 14)
	centered(pdf, 15, 89, 50, "ABILITY SCORES")

	y := 110.0
	for _, ability := range dnd5e.Abilities {
		score := sh.scores.Get(ability)
		setText(pdf, colorDark, 10)
		pdf.Text(20, y, ability.Title())
		pdf.SetFontSize(14)
		pdf.Text(45, y, strconv.Itoa(score))
		pdf.SetFontSize(12)
		pdf.Text(53, y, "("+signed(rules.Modifier(score))+")")
		y += 15
	}
}

func drawCombat(pdf *fpdf.Fpdf, sh sheet) {
	box(pdf, 70, 85, 125, 50)
	setText(pdf, colorPrimary, 14)
	centered(pdf, 70, 89, 125, "COMBAT STATS")

	label(pdf, 75, 110, "Armor Class:", strconv.Itoa(sh.armorClass))
	label(pdf, 135, 110, "Initiative:", signed(rules.Initiative(sh.scores.Dexterity)))
	label(pdf, 75, 125, "Speed:", fmt.Sprintf("%d ft.", sh.speed))
}

func drawFeatures(pdf *fpdf.Fpdf, tr func(string) string, sh sheet) {
	box(pdf, 70, 140, 125, 65)
	setText(pdf, colorPrimary, 14)
	centered(pdf, 70, 144, 125, "FEATURES & TRAITS")

	setText(pdf, colorDark, 10)
	y := 160.0
	for _, name := range sh.features {
		pdf.Text(75, y, tr("- "+name))
		y += 7
	}
}

// backstoryLines wraps the backstory at BackstoryWidth and keeps the first
// MaxBackstoryLines lines.
func backstoryLines(pdf *fpdf.Fpdf, text string) []string {
	if text == "" {
		return nil
	}
	lines := pdf.SplitText(text, BackstoryWidth)
	if len(lines) > MaxBackstoryLines {
		lines = lines[:MaxBackstoryLines]
	}
	return lines
}

func drawBackstory(pdf *fpdf.Fpdf, tr func(string) string, sh sheet) {
	box(pdf, 15, 210, 180, 67)
	setText(pdf, colorPrimary, 14)
	centered(pdf, 15, 214, 180, "PERSONALITY & BACKSTORY")

	setText(pdf, colorDark, 10)
	y := 230.0
	for _, line := range backstoryLines(pdf, tr(sh.backstory)) {
		pdf.Text(20, y, line)
		y += 4
	}
}
