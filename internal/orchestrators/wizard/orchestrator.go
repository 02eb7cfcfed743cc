// Package wizard implements the character creation wizard: the step
// sequencer, ability score allocation, merges into the character record and
// text generation.
package wizard

//go:generate mockgen -destination=mock/mock_service.go -package=wizardmock github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/wizard Service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/rpg-character-forge/internal/clients/external"
	"github.com/KirkDiggler/rpg-character-forge/internal/clients/textgen"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/normalizer"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/record"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/idgen"
	wizardsession "github.com/KirkDiggler/rpg-character-forge/internal/repositories/wizard_session"
)

// Service defines the interface for the character creation wizard
type Service interface {
	// Session lifecycle
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	StartOver(ctx context.Context, input *StartOverInput) (*StartOverOutput, error)

	// Character changes
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	Navigate(ctx context.Context, input *NavigateInput) (*NavigateOutput, error)

	// Ability score allocation
	SetAllocationMethod(ctx context.Context, input *SetAllocationMethodInput) (*SetAllocationMethodOutput, error)
	SetAbilityScore(ctx context.Context, input *SetAbilityScoreInput) (*SetAbilityScoreOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// Text generation
	GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error)
	GenerateBackstory(ctx context.Context, input *GenerateBackstoryInput) (*GenerateBackstoryOutput, error)

	// Reference data and status
	GetReference(ctx context.Context, input *GetReferenceInput) (*GetReferenceOutput, error)
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)
}

// Config holds the dependencies for the wizard orchestrator
type Config struct {
	SessionRepo wizardsession.Repository
	IDGenerator idgen.Generator
	Allocator   *allocation.Allocator
	Normalizer  *normalizer.Normalizer
	TextGen     textgen.Client

	// EventBus receives character change events. Optional.
	EventBus events.EventBus
	// External enriches the reference catalog. Optional.
	External external.Client
	// SessionTTL is the lifetime of new sessions; zero means the
	// repository default.
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Allocator == nil {
		vb.RequiredField("Allocator")
	}
	if c.Normalizer == nil {
		vb.RequiredField("Normalizer")
	}
	if c.TextGen == nil {
		vb.RequiredField("TextGen")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

// sessionLock serializes one session and tracks its in-flight
// generations. epoch moves on every navigation; a generation that started
// under an older epoch is discarded. refs is guarded by orchestrator.mu and
// counts callers and generations holding the lock; the last release drops
// it from the map.
type sessionLock struct {
	sync.Mutex
	refs    int
	epoch   uint64
	pending map[uint64]context.CancelFunc
}

type orchestrator struct {
	sessionRepo wizardsession.Repository
	idGen       idgen.Generator
	allocator   *allocation.Allocator
	normalizer  *normalizer.Normalizer
	textGen     textgen.Client
	bus         events.EventBus
	external    external.Client
	sessionTTL  time.Duration

	mu     sync.Mutex
	locks  map[string]*sessionLock
	flight singleflight.Group
	tokens atomic.Uint64
}

// NewOrchestrator creates a new wizard orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		sessionRepo: cfg.SessionRepo,
		idGen:       cfg.IDGenerator,
		allocator:   cfg.Allocator,
		normalizer:  cfg.Normalizer,
		textGen:     cfg.TextGen,
		bus:         cfg.EventBus,
		external:    cfg.External,
		sessionTTL:  cfg.SessionTTL,
		locks:       make(map[string]*sessionLock),
	}

	if o.bus != nil {
		o.bus.SubscribeFunc(record.EventCharacterChanged, 0, o.onCharacterChanged)
	}

	return o, nil
}

func (o *orchestrator) onCharacterChanged(_ context.Context, event events.Event) error {
	v, ok := event.Context().Get(record.ContextKeyCharacter)
	if !ok {
		return nil
	}
	if c, ok := v.(*dnd5e.Character); ok {
		slog.Debug("character changed",
			"session_id", event.Source().GetID(),
			"race", c.Race,
			"class", c.Class,
			"hit_points", c.HitPoints.Value())
	}
	return nil
}

// acquire returns the lock for sessionID with a reference held. Every
// acquire must be paired with a release.
func (o *orchestrator) acquire(sessionID string) *sessionLock {
	o.mu.Lock()
	defer o.mu.Unlock()

	l, ok := o.locks[sessionID]
	if !ok {
		l = &sessionLock{pending: make(map[uint64]context.CancelFunc)}
		o.locks[sessionID] = l
	}
	l.refs++
	return l
}

// release drops a reference taken by acquire.
func (o *orchestrator) release(sessionID string, l *sessionLock) {
	o.mu.Lock()
	defer o.mu.Unlock()

	l.refs--
	if l.refs == 0 && o.locks[sessionID] == l {
		delete(o.locks, sessionID)
	}
}

// lock acquires and locks the session; the returned func undoes both.
func (o *orchestrator) lock(sessionID string) (*sessionLock, func()) {
	l := o.acquire(sessionID)
	l.Lock()
	return l, func() {
		l.Unlock()
		o.release(sessionID, l)
	}
}

// cancelPending must be called with l held. It returns how many
// generations were superseded.
func (l *sessionLock) cancelPending() int {
	l.epoch++
	n := len(l.pending)
	for token, cancel := range l.pending {
		cancel()
		delete(l.pending, token)
	}
	return n
}

// load must be called with the session's lock held.
func (o *orchestrator) load(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	out, err := o.sessionRepo.Get(ctx, wizardsession.GetInput{ID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session %s", sessionID)
	}

	session := out.Session
	if session.Character == nil {
		session.Character = dnd5e.DefaultCharacter()
	}
	if session.Allocation == nil {
		state, err := allocation.NewState(allocation.MethodPointBuy, session.Character.AbilityScores)
		if err != nil {
			return nil, err
		}
		session.Allocation = state
	}
	return session, nil
}

// save must be called with the session's lock held.
func (o *orchestrator) save(ctx context.Context, session *entities.WizardSession) (*entities.WizardSession, error) {
	out, err := o.sessionRepo.Update(ctx, wizardsession.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save session %s", session.ID)
	}
	return out.Session, nil
}

// mutate loads a session under its lock, applies fn and saves the result.
// fn returning false skips the save.
func (o *orchestrator) mutate(ctx context.Context, sessionID string, fn func(*entities.WizardSession, *sessionLock) (bool, error)) (*entities.WizardSession, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	l, unlock := o.lock(sessionID)
	defer unlock()

	session, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	changed, err := fn(session, l)
	if err != nil {
		return nil, err
	}
	if !changed {
		return session, nil
	}

	return o.save(ctx, session)
}

// merge applies u to the session's character through a record so the
// merge rules and change events are the same everywhere.
func (o *orchestrator) merge(ctx context.Context, session *entities.WizardSession, u *dnd5e.CharacterUpdate) error {
	rec, err := record.New(&record.Config{
		OwnerID:   session.ID,
		Character: session.Character,
		EventBus:  o.bus,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open character record")
	}

	snapshot, err := rec.Update(ctx, u)
	if err != nil {
		return err
	}
	session.Character = snapshot
	return nil
}

func allocationView(state *allocation.State, scores dnd5e.AbilityScores) *AllocationView {
	if state == nil {
		return nil
	}
	clone := state.Clone()
	return &AllocationView{
		Method:          clone.Method,
		PointsSpent:     clone.PointsSpent,
		RemainingPoints: allocation.RemainingPoints(clone),
		Assigned:        clone.Assigned,
		Violations:      allocation.Violations(clone, scores),
	}
}

// StartSession creates a session holding the default character at step Race
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		input = &StartSessionInput{}
	}

	method := input.Method
	if method == "" {
		method = allocation.MethodPointBuy
	}

	character := dnd5e.DefaultCharacter()
	state, err := allocation.NewState(method, character.AbilityScores)
	if err != nil {
		return nil, err
	}

	session := &entities.WizardSession{
		ID:         o.idGen.Generate(),
		Step:       entities.StepRace,
		Character:  character,
		Allocation: state,
	}

	out, err := o.sessionRepo.Create(ctx, wizardsession.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("wizard session started", "session_id", out.Session.ID, "method", method)

	return &StartSessionOutput{
		Session:    out.Session,
		Allocation: allocationView(out.Session.Allocation, out.Session.Character.AbilityScores),
	}, nil
}

// GetSession returns the session as stored
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	_, unlock := o.lock(input.SessionID)
	defer unlock()

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session:    session,
		Allocation: allocationView(session.Allocation, session.Character.AbilityScores),
	}, nil
}

// UpdateCharacter validates a partial character and merges it into the
// session. A rejected update changes nothing.
func (o *orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Update == nil {
		return nil, errors.InvalidArgument("update is required")
	}

	session, err := o.mutate(ctx, input.SessionID, func(s *entities.WizardSession, _ *sessionLock) (bool, error) {
		if input.Update.IsEmpty() {
			return false, nil
		}
		if err := validateUpdate(input.Update, s.Allocation.Method); err != nil {
			return false, err
		}
		if err := o.merge(ctx, s, input.Update); err != nil {
			return false, err
		}
		if input.Update.AbilityScores != nil {
			if err := allocationSwitch(s); err != nil {
				return false, err
			}
		}
		s.LastError = ""
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateCharacterOutput{Session: session}, nil
}

// Navigate moves through the wizard. Any move supersedes in-flight
// generations for the session.
func (o *orchestrator) Navigate(ctx context.Context, input *NavigateInput) (*NavigateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var canceled int
	session, err := o.mutate(ctx, input.SessionID, func(s *entities.WizardSession, l *sessionLock) (bool, error) {
		next, err := Move(s.Step, input.Action, s.Generated)
		if err != nil {
			return false, err
		}

		canceled = l.cancelPending()
		if canceled > 0 {
			slog.Info("navigation superseded generation",
				"session_id", s.ID,
				"action", input.Action,
				"canceled", canceled)
		}

		s.Step = next
		s.LastError = ""
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &NavigateOutput{Session: session, CanceledGenerations: canceled}, nil
}

// StartOver resets the character to the template and the wizard to Race
func (o *orchestrator) StartOver(ctx context.Context, input *StartOverInput) (*StartOverOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.mutate(ctx, input.SessionID, func(s *entities.WizardSession, l *sessionLock) (bool, error) {
		l.cancelPending()

		rec, err := record.New(&record.Config{
			OwnerID:   s.ID,
			Character: s.Character,
			EventBus:  o.bus,
		})
		if err != nil {
			return false, errors.Wrap(err, "failed to open character record")
		}
		snapshot, err := rec.Reset(ctx)
		if err != nil {
			return false, err
		}

		state, err := allocation.NewState(s.Allocation.Method, snapshot.AbilityScores)
		if err != nil {
			return false, err
		}

		s.Character = snapshot
		s.Allocation = state
		s.Step = entities.StepRace
		s.Generated = false
		s.LastError = ""
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &StartOverOutput{
		Session:    session,
		Allocation: allocationView(session.Allocation, session.Character.AbilityScores),
	}, nil
}

// Status reports whether text generation is available
func (o *orchestrator) Status(_ context.Context, _ *StatusInput) (*StatusOutput, error) {
	return &StatusOutput{
		AIEnabled: o.textGen.Configured(),
		Model:     o.textGen.Model(),
	}, nil
}
