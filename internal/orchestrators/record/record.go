// Package record holds the canonical character for a wizard session and
// its single mutation primitive.
package record

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

const (
	// EventCharacterChanged is published once per applied change with the
	// full character under ContextKeyCharacter.
	EventCharacterChanged = "character.changed"

	// ContextKeyCharacter holds a *dnd5e.Character snapshot.
	ContextKeyCharacter = "character"

	// EntityTypeCharacter is the entity type carried on change events.
	EntityTypeCharacter = "character"
)

// Entity identifies a record on the event bus.
type Entity struct {
	ID string
}

// GetID returns the owning session id.
func (e *Entity) GetID() string { return e.ID }

// GetType returns EntityTypeCharacter.
func (e *Entity) GetType() string { return EntityTypeCharacter }

var _ core.Entity = (*Entity)(nil)

// Config holds the dependencies for a record
type Config struct {
	// OwnerID identifies the record on published events; usually the
	// session id.
	OwnerID string
	// Character seeds the record. Nil means the default template.
	Character *dnd5e.Character
	// EventBus receives change events. Optional.
	EventBus events.EventBus
}

// Validate ensures all required fields are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.OwnerID == "" {
		vb.RequiredField("OwnerID")
	}

	return vb.Build()
}

// Record serializes all access to one character. Update and Reset are the
// only ways to change it.
type Record struct {
	mu        sync.Mutex
	entity    *Entity
	character *dnd5e.Character
	bus       events.EventBus
}

// New creates a record
func New(cfg *Config) (*Record, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	character := cfg.Character.Clone()
	if character == nil {
		character = dnd5e.DefaultCharacter()
	}

	return &Record{
		entity:    &Entity{ID: cfg.OwnerID},
		character: character,
		bus:       cfg.EventBus,
	}, nil
}

// Snapshot returns a copy of the current character.
func (r *Record) Snapshot() *dnd5e.Character {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.character.Clone()
}

// Update merges u into the record and returns the new snapshot. An empty
// update changes nothing and publishes nothing.
func (r *Record) Update(ctx context.Context, u *dnd5e.CharacterUpdate) (*dnd5e.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "update canceled")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if u.IsEmpty() {
		return r.character.Clone(), nil
	}

	r.character = Apply(r.character, u)
	snapshot := r.character.Clone()
	r.publish(ctx, snapshot)

	return snapshot, nil
}

// Reset restores the default template.
func (r *Record) Reset(ctx context.Context) (*dnd5e.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "reset canceled")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.character = dnd5e.DefaultCharacter()
	snapshot := r.character.Clone()
	r.publish(ctx, snapshot)

	return snapshot, nil
}

// publish must be called with r.mu held. Subscribers get their own copy.
func (r *Record) publish(ctx context.Context, snapshot *dnd5e.Character) {
	if r.bus == nil {
		return
	}

	event := events.NewGameEvent(EventCharacterChanged, r.entity, nil)
	event.Context().Set(ContextKeyCharacter, snapshot.Clone())

	if err := r.bus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish character change",
			"owner_id", r.entity.ID,
			"error", err)
	}
}
