package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

// MaxDiceCount bounds a single notation roll.
const MaxDiceCount = 100

var (
	// Regex for parsing dice notation like "d20", "2d6", "3d8+2" or "1d4-1"
	diceNotationRegex = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(\d+))?$`)

	supportedSides = []int{4, 6, 8, 10, 12, 20, 100}
)

// SupportedSides lists the dice the roller accepts.
func SupportedSides() []int {
	out := make([]int, len(supportedSides))
	copy(out, supportedSides)
	return out
}

func isSupported(sides int) bool {
	for _, s := range supportedSides {
		if s == sides {
			return true
		}
	}
	return false
}

// Notation is a parsed dice expression.
type Notation struct {
	Count    int
	Sides    int
	Modifier int
}

// String renders the canonical form, e.g. "2d6+3".
func (n Notation) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(n.Count))
	b.WriteString("d")
	b.WriteString(strconv.Itoa(n.Sides))
	switch {
	case n.Modifier > 0:
		b.WriteString("+")
		b.WriteString(strconv.Itoa(n.Modifier))
	case n.Modifier < 0:
		b.WriteString(strconv.Itoa(n.Modifier))
	}
	return b.String()
}

// ParseNotation parses dice notation. A missing count means one die.
func ParseNotation(notation string) (Notation, error) {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(notation)), " ", "")
	matches := diceNotationRegex.FindStringSubmatch(cleaned)
	if matches == nil {
		return Notation{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY+Z)", notation)
	}

	n := Notation{Count: 1}
	if matches[1] != "" {
		count, err := strconv.Atoi(matches[1])
		if err != nil {
			return Notation{}, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
		}
		n.Count = count
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return Notation{}, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	n.Sides = sides

	if matches[4] != "" {
		mod, err := strconv.Atoi(matches[4])
		if err != nil {
			return Notation{}, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
		if matches[3] == "-" {
			mod = -mod
		}
		n.Modifier = mod
	}

	if n.Count <= 0 || n.Count > MaxDiceCount {
		return Notation{}, errors.InvalidArgumentf("dice count must be between 1 and %d: %s", MaxDiceCount, notation)
	}
	if !isSupported(n.Sides) {
		return Notation{}, errors.InvalidArgumentf("unsupported die d%d", n.Sides)
	}

	return n, nil
}
