package entities

import "time"

// DiceRoll is one committed roll kept in a session's history.
type DiceRoll struct {
	ID       string    `json:"id"`
	Notation string    `json:"notation"`
	Sides    int       `json:"sides"`
	Dice     []int     `json:"dice"`
	Modifier int       `json:"modifier"`
	Total    int       `json:"total"`
	Critical bool      `json:"critical"`
	RolledAt time.Time `json:"rolledAt"`
}
