package wizard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-character-forge/internal/clients/textgen"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/normalizer"
)

// generation is one registered in-flight call for a session. It holds a
// reference on the session lock until end.
type generation struct {
	sessionID string
	lock      *sessionLock
	token     uint64
	epoch     uint64
	ctx       context.Context
}

// begin registers a generation so navigation can cancel it. The session
// must exist; its current character is returned for prompting.
func (o *orchestrator) begin(ctx context.Context, sessionID string) (*generation, *entities.WizardSession, error) {
	l := o.acquire(sessionID)
	l.Lock()
	defer l.Unlock()

	session, err := o.load(ctx, sessionID)
	if err != nil {
		o.release(sessionID, l)
		return nil, nil, err
	}

	genCtx, cancel := context.WithCancel(ctx)
	g := &generation{
		sessionID: sessionID,
		lock:      l,
		token:     o.tokens.Add(1),
		epoch:     l.epoch,
		ctx:       genCtx,
	}
	l.pending[g.token] = cancel

	return g, session, nil
}

// end releases the generation's context and its lock reference.
func (o *orchestrator) end(g *generation) {
	g.lock.Lock()
	cancel, ok := g.lock.pending[g.token]
	delete(g.lock.pending, g.token)
	g.lock.Unlock()

	if ok {
		cancel()
	}
	o.release(g.sessionID, g.lock)
}

// finish commits a generation result under the session lock. A generation
// superseded by navigation is discarded without touching the session. A
// failed call is recorded on the session with no change to the character.
func (o *orchestrator) finish(ctx context.Context, g *generation, sessionID string, callErr error,
	apply func(*entities.WizardSession) error) (*entities.WizardSession, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.lock.epoch != g.epoch {
		slog.Info("discarding superseded generation", "session_id", sessionID)
		return nil, errors.Aborted("generation was superseded by navigation")
	}

	session, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if callErr == nil {
		callErr = apply(session)
	}
	if callErr != nil {
		session.LastError = callErr.Error()
		// The failure is kept even when the caller has gone away.
		if _, err := o.save(context.WithoutCancel(ctx), session); err != nil {
			slog.Warn("failed to record generation failure",
				"session_id", sessionID,
				"error", err)
		}
		return nil, callErr
	}

	session.LastError = ""
	return o.save(ctx, session)
}

func (o *orchestrator) requireTextGen() error {
	if !o.textGen.Configured() {
		return errors.FailedPrecondition("text generation is not configured")
	}
	return nil
}

// GenerateCharacter asks for a full character, normalizes it and merges it
// into the session. One call per session is in flight at a time; a second
// caller shares the first call's result.
func (o *orchestrator) GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if err := o.requireTextGen(); err != nil {
		return nil, err
	}

	v, err, shared := o.flight.Do("character:"+input.SessionID, func() (any, error) {
		return o.generateCharacter(ctx, input)
	})
	if shared {
		slog.Debug("joined in-flight character generation", "session_id", input.SessionID)
	}
	if err != nil {
		return nil, err
	}
	return v.(*GenerateCharacterOutput), nil
}

func (o *orchestrator) generateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error) {
	g, _, err := o.begin(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer o.end(g)

	slog.Info("generating character", "session_id", input.SessionID, "model", o.textGen.Model())

	out, callErr := o.textGen.Complete(g.ctx, &textgen.CompleteInput{
		System: characterSystemPrompt,
		Prompt: characterPrompt(input.Seeds),
		JSON:   true,
	})

	var warnings []string
	session, err := o.finish(ctx, g, input.SessionID, callErr, func(s *entities.WizardSession) error {
		normalized, err := o.normalizer.Normalize(&normalizer.NormalizeInput{
			Raw:     []byte(out.Text),
			Current: s.Character,
		})
		if err != nil {
			return errors.Wrap(err, "generated character was malformed")
		}
		if err := o.merge(ctx, s, normalized.Update); err != nil {
			return err
		}

		// Generated scores replace whatever the allocator had.
		if err := allocationSwitch(s); err != nil {
			return err
		}
		s.Generated = true
		warnings = normalized.Warnings
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		slog.Warn("repaired generated character", "session_id", input.SessionID, "warning", w)
	}

	return &GenerateCharacterOutput{Session: session, Warnings: warnings}, nil
}

// GenerateBackstory writes a backstory for the current character and
// merges only the backstory field.
func (o *orchestrator) GenerateBackstory(ctx context.Context, input *GenerateBackstoryInput) (*GenerateBackstoryOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if err := o.requireTextGen(); err != nil {
		return nil, err
	}

	v, err, _ := o.flight.Do("backstory:"+input.SessionID, func() (any, error) {
		return o.generateBackstory(ctx, input)
	})
	if err != nil {
		return nil, err
	}
	return v.(*GenerateBackstoryOutput), nil
}

func (o *orchestrator) generateBackstory(ctx context.Context, input *GenerateBackstoryInput) (*GenerateBackstoryOutput, error) {
	g, current, err := o.begin(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer o.end(g)

	out, callErr := o.textGen.Complete(g.ctx, &textgen.CompleteInput{
		System:      backstorySystemPrompt,
		Prompt:      backstoryPrompt(current.Character),
		Temperature: dnd5e.Ptr(backstoryTemperature),
		MaxTokens:   backstoryMaxTokens,
	})

	var backstory string
	session, err := o.finish(ctx, g, input.SessionID, callErr, func(s *entities.WizardSession) error {
		backstory = strings.TrimSpace(out.Text)
		if backstory == "" {
			return errors.Unavailable("failed to generate backstory")
		}
		return o.merge(ctx, s, &dnd5e.CharacterUpdate{Backstory: &backstory})
	})
	if err != nil {
		return nil, err
	}

	return &GenerateBackstoryOutput{Session: session, Backstory: backstory}, nil
}
