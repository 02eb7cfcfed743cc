// Package dicehistory keeps the most recent dice rolls per session
package dicehistory

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicehistorymock github.com/KirkDiggler/rpg-character-forge/internal/repositories/dice_history Repository

// HistoryLimit is how many rolls are kept per session.
const HistoryLimit = 5

// AppendInput contains parameters for recording a roll
type AppendInput struct {
	SessionID string
	Roll      entities.DiceRoll
	// TTL refreshes the history's lifetime; zero means DefaultTTL.
	TTL time.Duration
}

// AppendOutput contains the history after the append, newest first
type AppendOutput struct {
	Rolls []entities.DiceRoll
}

// ListInput contains parameters for reading history
type ListInput struct {
	SessionID string
}

// ListOutput contains the history, newest first
type ListOutput struct {
	Rolls []entities.DiceRoll
}

// ClearInput contains parameters for dropping history
type ClearInput struct {
	SessionID string
}

// ClearOutput reports how many rolls were dropped
type ClearOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice history storage
type Repository interface {
	// Append records a roll and trims the history to HistoryLimit.
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the history; a session with no rolls is an empty list.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear drops the history
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
