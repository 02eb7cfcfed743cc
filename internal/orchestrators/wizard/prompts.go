package wizard

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
)

const (
	characterSystemPrompt = "You are a Dungeons & Dragons character creation assistant. " +
		"You help players create detailed and interesting characters for 5th Edition D&D."

	backstorySystemPrompt = "You are a creative and engaging Dungeons & Dragons storyteller. " +
		"You craft compelling character backstories that fit the character's race, class, " +
		"and other attributes while conforming to D&D lore and worldbuilding."

	backstoryTemperature = 0.8
	backstoryMaxTokens   = 1000
)

// Seeds are the optional values a generated character must honor.
type Seeds struct {
	Name       string
	Race       dnd5e.Race
	Class      dnd5e.Class
	Level      int
	Background dnd5e.Background
	Alignment  dnd5e.Alignment
}

func seedLine(b *strings.Builder, label, value, fallback string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
		return
	}
	b.WriteString(fallback)
	b.WriteString("\n")
}

const characterResponseShape = `{
  "name": string,
  "race": string,
  "class": string,
  "level": number,
  "background": string,
  "alignment": string,
  "abilityScores": {
    "strength": number,
    "dexterity": number,
    "constitution": number,
    "intelligence": number,
    "wisdom": number,
    "charisma": number
  },
  "personalityTraits": string,
  "ideals": string,
  "bonds": string,
  "flaws": string,
  "backstory": string,
  "appearance": string,
  "equipment": [{"name": string, "category": string, "description": string}],
  "proficiencies": string[],
  "languages": string[],
  "features": string[]
}`

// characterPrompt asks for a full character as a JSON object.
func characterPrompt(seeds Seeds) string {
	var b strings.Builder
	b.WriteString("Generate a Dungeons & Dragons 5th Edition character with the following details:\n")
	seedLine(&b, "Name", seeds.Name, "Generate a fitting fantasy name")
	seedLine(&b, "Race", string(seeds.Race), "Choose an appropriate race")
	seedLine(&b, "Class", string(seeds.Class), "Choose an appropriate class")
	if seeds.Level > 0 {
		fmt.Fprintf(&b, "Level: %d\n", seeds.Level)
	} else {
		b.WriteString("Level: 1\n")
	}
	seedLine(&b, "Background", string(seeds.Background), "Generate an appropriate background")
	seedLine(&b, "Alignment", string(seeds.Alignment), "Choose an appropriate alignment")

	b.WriteString(`
Please provide:
1. Basic character details (name, race, class, level, background, alignment)
2. A set of ability scores (strength, dexterity, constitution, intelligence, wisdom, charisma)
3. Personality traits, ideals, bonds, and flaws
4. A brief backstory (2-3 paragraphs)
5. Physical appearance description
6. Starting equipment appropriate for the class and background
7. Proficiencies and languages

Format the response as a JSON object with the following structure:
`)
	b.WriteString(characterResponseShape)
	return b.String()
}

// backstoryPrompt describes the character and lists only the personality
// fields that are filled in.
func backstoryPrompt(c *dnd5e.Character) string {
	var b strings.Builder
	b.WriteString("Create a compelling and detailed backstory for a D&D character with the following attributes:\n\n")
	fmt.Fprintf(&b, "- Name: %s\n", c.Name)
	fmt.Fprintf(&b, "- Race: %s\n", c.Race)
	fmt.Fprintf(&b, "- Class: %s\n", c.Class)
	fmt.Fprintf(&b, "- Background: %s\n", c.Background)
	fmt.Fprintf(&b, "- Alignment: %s\n", c.Alignment)

	for _, f := range []struct{ label, value string }{
		{"Personality Traits", c.PersonalityTraits},
		{"Ideals", c.Ideals},
		{"Bonds", c.Bonds},
		{"Flaws", c.Flaws},
	} {
		if strings.TrimSpace(f.value) != "" {
			fmt.Fprintf(&b, "- %s: %s\n", f.label, f.value)
		}
	}

	fmt.Fprintf(&b, `
The backstory should:
1. Explain how the character became a %s
2. Include key events and relationships that shaped the character
3. Provide motivation for why the character is adventuring
4. Connect to the character's background as a %s
5. Be consistent with the character's alignment (%s)
6. Be about 3-4 paragraphs in length
7. Have an engaging narrative style
8. Include some interesting hooks that could be developed in a campaign

The backstory should read like a compelling short story that gives insight into who this character is and why they've chosen their path.`,
		c.Class, c.Background, c.Alignment)

	return b.String()
}
