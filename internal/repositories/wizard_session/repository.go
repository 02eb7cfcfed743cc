// Package wizardsession stores wizard sessions
package wizardsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=wizardsessionmock github.com/KirkDiggler/rpg-character-forge/internal/repositories/wizard_session Repository

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Session *entities.WizardSession
	// TTL is how long the session lives; zero means DefaultTTL.
	TTL time.Duration
}

// CreateOutput contains the stored session with its timestamps set
type CreateOutput struct {
	Session *entities.WizardSession
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *entities.WizardSession
}

// UpdateInput contains the session to replace
type UpdateInput struct {
	Session *entities.WizardSession
}

// UpdateOutput contains the stored session
type UpdateOutput struct {
	Session *entities.WizardSession
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; a missing session is NotFound
type DeleteOutput struct{}

// Repository defines the interface for wizard session storage
type Repository interface {
	// Create stores a new session. An existing id is AlreadyExists.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns the session or NotFound once it has expired.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a live session, keeping its expiry.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
