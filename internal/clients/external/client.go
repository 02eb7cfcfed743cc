// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-character-forge/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

// RaceData is what the API adds to the static race reference
type RaceData struct {
	Name      string
	Speed     int
	Traits    []string
	Languages []string
}

// ClassData is what the API adds to the static class reference
type ClassData struct {
	Name         string
	HitDie       int
	SavingThrows []string
}

// Client defines the interface for external API interactions
type Client interface {
	// GetRaceData fetches race information from external source
	GetRaceData(ctx context.Context, race internalDnd5e.Race) (*RaceData, error)

	// GetClassData fetches class information from external source
	GetClassData(ctx context.Context, class internalDnd5e.Class) (*ClassData, error)
}

// Source is the part of the dnd5e-api client we read from.
type Source interface {
	GetRace(key string) (*entities.Race, error)
	GetClass(key string) (*entities.Class, error)
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Source replaces the HTTP client; used in tests.
	Source Source
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must be positive")
	}
	if cfg.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must be positive")
	}
	return vb.Build()
}

type client struct {
	source Source
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if cfg.Source != nil {
		return &client{source: cfg.Source}, nil
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create D&D 5e API client")
	}

	// Reference data rarely changes; cache it for the process lifetime
	// bounded by CacheTTL.
	return &client{
		source: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

// apiKey converts a display name to the API index, e.g. "Half-Orc" ->
// "half-orc" and "Folk Hero" -> "folk-hero".
func apiKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (c *client) GetRaceData(ctx context.Context, race internalDnd5e.Race) (*RaceData, error) {
	if !race.Valid() {
		return nil, errors.InvalidArgumentf("unknown race: %s", race)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "race lookup canceled")
	}

	key := apiKey(string(race))
	apiRace, err := c.source.GetRace(key)
	if err != nil {
		slog.Debug("race lookup failed", "race", race, "api_key", key, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get race "+key)
	}
	if apiRace == nil {
		return nil, errors.NotFoundf("race %s not found", key)
	}

	data := &RaceData{
		Name:      apiRace.Name,
		Speed:     int(apiRace.Speed),
		Traits:    make([]string, 0, len(apiRace.Traits)),
		Languages: make([]string, 0, len(apiRace.Languages)),
	}
	for _, trait := range apiRace.Traits {
		data.Traits = append(data.Traits, trait.Name)
	}
	for _, lang := range apiRace.Languages {
		data.Languages = append(data.Languages, lang.Name)
	}

	return data, nil
}

func (c *client) GetClassData(ctx context.Context, class internalDnd5e.Class) (*ClassData, error) {
	if !class.Valid() {
		return nil, errors.InvalidArgumentf("unknown class: %s", class)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "class lookup canceled")
	}

	key := apiKey(string(class))
	apiClass, err := c.source.GetClass(key)
	if err != nil {
		slog.Debug("class lookup failed", "class", class, "api_key", key, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get class "+key)
	}
	if apiClass == nil {
		return nil, errors.NotFoundf("class %s not found", key)
	}

	data := &ClassData{
		Name:         apiClass.Name,
		HitDie:       int(apiClass.HitDie),
		SavingThrows: make([]string, 0, len(apiClass.SavingThrows)),
	}
	for _, st := range apiClass.SavingThrows {
		data.SavingThrows = append(data.SavingThrows, st.Name)
	}

	return data, nil
}
