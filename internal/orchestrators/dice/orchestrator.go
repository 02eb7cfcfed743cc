// Package dice implements the dice roller with an animated reveal and a
// short per-session history
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/idgen"
	dicehistory "github.com/KirkDiggler/rpg-character-forge/internal/repositories/dice_history"
)

const (
	// DefaultFrames is how many intermediate values an animated roll shows.
	DefaultFrames = 10

	// DefaultFrameInterval is the cadence of the intermediate values.
	DefaultFrameInterval = 100 * time.Millisecond
)

// Service defines the interface for dice operations
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	HistoryRepo dicehistory.Repository
	IDGenerator idgen.Generator
	Roller      dice.Roller
	Clock       clock.Clock

	// Frames and FrameInterval shape the animation; zero means the default.
	Frames        int
	FrameInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Frames < 0 {
		vb.InvalidField("Frames", "must not be negative")
	}
	if c.FrameInterval < 0 {
		vb.InvalidField("FrameInterval", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	historyRepo   dicehistory.Repository
	idGen         idgen.Generator
	roller        dice.Roller
	clock         clock.Clock
	frames        int
	frameInterval time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		historyRepo:   cfg.HistoryRepo,
		idGen:         cfg.IDGenerator,
		roller:        cfg.Roller,
		clock:         cfg.Clock,
		frames:        cfg.Frames,
		frameInterval: cfg.FrameInterval,
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.frames == 0 {
		o.frames = DefaultFrames
	}
	if o.frameInterval == 0 {
		o.frameInterval = DefaultFrameInterval
	}

	return o, nil
}

// throw rolls every die of n and returns the faces and the total.
func (o *orchestrator) throw(n Notation) ([]int, int, error) {
	faces, err := o.roller.RollN(n.Count, n.Sides)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to roll %s", n)
	}

	total := n.Modifier
	for _, f := range faces {
		total += f
	}
	return faces, total, nil
}

// animate produces the intermediate values. A canceled context stops the
// animation and nothing is committed.
func (o *orchestrator) animate(ctx context.Context, n Notation, onTick TickFunc) ([]int, error) {
	frames := make([]int, 0, o.frames)
	for i := 0; i < o.frames; i++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "roll interrupted")
		case <-o.clock.After(o.frameInterval):
		}

		_, value, err := o.throw(n)
		if err != nil {
			return nil, err
		}
		frames = append(frames, value)
		if onTick != nil {
			onTick(i, value)
		}
	}
	return frames, nil
}

// RollDice animates a roll, commits the final value and records it in the
// session's history
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	n, err := ParseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	frames, err := o.animate(ctx, n, input.OnTick)
	if err != nil {
		return nil, err
	}

	faces, total, err := o.throw(n)
	if err != nil {
		return nil, err
	}

	roll := entities.DiceRoll{
		ID:       o.idGen.Generate(),
		Notation: n.String(),
		Sides:    n.Sides,
		Dice:     faces,
		Modifier: n.Modifier,
		Total:    total,
		// Only a single die can crit; the modifier does not count.
		Critical: n.Count == 1 && faces[0] == n.Sides,
		RolledAt: o.clock.Now(),
	}

	appendOutput, err := o.historyRepo.Append(ctx, dicehistory.AppendInput{
		SessionID: input.SessionID,
		Roll:      roll,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record roll")
	}

	slog.Debug("dice rolled",
		"session_id", input.SessionID,
		"notation", roll.Notation,
		"total", roll.Total,
		"critical", roll.Critical)

	return &RollDiceOutput{
		Roll:    roll,
		Frames:  frames,
		History: appendOutput.Rolls,
	}, nil
}

// GetHistory returns the most recent rolls, newest first
func (o *orchestrator) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.historyRepo.List(ctx, dicehistory.ListInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rolls")
	}

	return &GetHistoryOutput{Rolls: out.Rolls}, nil
}

// ClearHistory drops the session's rolls
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.historyRepo.Clear(ctx, dicehistory.ClearInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear rolls")
	}

	return &ClearHistoryOutput{RollsDeleted: out.RollsDeleted}, nil
}
