// Package v1alpha1 handles the character forge grpc service interface
package v1alpha1

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/wizard"
	"github.com/KirkDiggler/rpg-character-forge/internal/services/export"
)

// HandlerConfig holds dependencies for the forge handler
type HandlerConfig struct {
	WizardService wizard.Service
	DiceService   dice.Service
	ExportService export.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.WizardService == nil {
		vb.RequiredField("WizardService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.ExportService == nil {
		vb.RequiredField("ExportService")
	}
	return vb.Build()
}

// Handler implements CharacterForgeServiceServer
type Handler struct {
	wizardService wizard.Service
	diceService   dice.Service
	exportService export.Service
}

var _ CharacterForgeServiceServer = (*Handler)(nil)

// NewHandler creates a new forge handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		wizardService: cfg.WizardService,
		diceService:   cfg.DiceService,
		exportService: cfg.ExportService,
	}, nil
}

func requireSession(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	return nil
}

// StartSession creates a session at the race step
func (h *Handler) StartSession(ctx context.Context, req *StartSessionRequest) (*SessionResponse, error) {
	out, err := h.wizardService.StartSession(ctx, &wizard.StartSessionInput{
		Method: dnd5e.AllocationMethod(req.Method),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SessionResponse{
		Session:    toSession(out.Session),
		Allocation: toAllocation(out.Allocation),
	}, nil
}

// GetSession returns the session snapshot
func (h *Handler) GetSession(ctx context.Context, req *GetSessionRequest) (*SessionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.GetSession(ctx, &wizard.GetSessionInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SessionResponse{
		Session:    toSession(out.Session),
		Allocation: toAllocation(out.Allocation),
	}, nil
}

// UpdateCharacter merges changes into the character
func (h *Handler) UpdateCharacter(ctx context.Context, req *UpdateCharacterRequest) (*SessionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.UpdateCharacter(ctx, &wizard.UpdateCharacterInput{
		SessionID: req.SessionID,
		Update:    req.Update,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SessionResponse{Session: toSession(out.Session)}, nil
}

// Navigate moves through the wizard
func (h *Handler) Navigate(ctx context.Context, req *NavigateRequest) (*NavigateResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}
	if req.Action == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("action is required"))
	}

	out, err := h.wizardService.Navigate(ctx, &wizard.NavigateInput{
		SessionID: req.SessionID,
		Action:    wizard.NavigateAction(strings.ToLower(req.Action)),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &NavigateResponse{
		Session:             toSession(out.Session),
		CanceledGenerations: out.CanceledGenerations,
	}, nil
}

// StartOver resets the session to the template
func (h *Handler) StartOver(ctx context.Context, req *StartOverRequest) (*SessionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.StartOver(ctx, &wizard.StartOverInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SessionResponse{
		Session:    toSession(out.Session),
		Allocation: toAllocation(out.Allocation),
	}, nil
}

// SetAllocationMethod switches the allocation method
func (h *Handler) SetAllocationMethod(ctx context.Context, req *SetAllocationMethodRequest) (*SessionResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.SetAllocationMethod(ctx, &wizard.SetAllocationMethodInput{
		SessionID:   req.SessionID,
		Method:      dnd5e.AllocationMethod(req.Method),
		ResetScores: req.ResetScores,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SessionResponse{
		Session:    toSession(out.Session),
		Allocation: toAllocation(out.Allocation),
	}, nil
}

// SetAbilityScore sets a point-buy value or assigns a standard array value
func (h *Handler) SetAbilityScore(ctx context.Context, req *SetAbilityScoreRequest) (*ApplyResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.SetAbilityScore(ctx, &wizard.SetAbilityScoreInput{
		SessionID: req.SessionID,
		Ability:   dnd5e.Ability(strings.ToLower(req.Ability)),
		Value:     req.Value,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ApplyResponse{
		Applied:    out.Applied,
		Session:    toSession(out.Session),
		Allocation: toAllocation(out.Allocation),
	}, nil
}

// RollAbilityScores rolls scores or auto-assigns the standard array
func (h *Handler) RollAbilityScores(ctx context.Context, req *RollAbilityScoresRequest) (*ApplyResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.RollAbilityScores(ctx, &wizard.RollAbilityScoresInput{
		SessionID: req.SessionID,
		Ability:   dnd5e.Ability(strings.ToLower(req.Ability)),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ApplyResponse{
		Applied:    out.Applied,
		Session:    toSession(out.Session),
		Allocation: toAllocation(out.Allocation),
	}, nil
}

// GenerateCharacter asks the model for a complete character
func (h *Handler) GenerateCharacter(ctx context.Context, req *GenerateCharacterRequest) (*GenerateCharacterResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.GenerateCharacter(ctx, &wizard.GenerateCharacterInput{
		SessionID: req.SessionID,
		Seeds: wizard.Seeds{
			Name:       req.Name,
			Race:       dnd5e.Race(req.Race),
			Class:      dnd5e.Class(req.Class),
			Level:      req.Level,
			Background: dnd5e.Background(req.Background),
			Alignment:  dnd5e.Alignment(req.Alignment),
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GenerateCharacterResponse{
		Session:  toSession(out.Session),
		Warnings: out.Warnings,
	}, nil
}

// GenerateBackstory asks the model for a backstory
func (h *Handler) GenerateBackstory(ctx context.Context, req *GenerateBackstoryRequest) (*GenerateBackstoryResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.wizardService.GenerateBackstory(ctx, &wizard.GenerateBackstoryInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GenerateBackstoryResponse{
		Session:   toSession(out.Session),
		Backstory: out.Backstory,
	}, nil
}

// GetReference returns the race, class and background catalog
func (h *Handler) GetReference(ctx context.Context, req *GetReferenceRequest) (*GetReferenceResponse, error) {
	out, err := h.wizardService.GetReference(ctx, &wizard.GetReferenceInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toReference(out), nil
}

// RollDice rolls with the animated reveal and records the result
func (h *Handler) RollDice(ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}
	if req.Notation == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	out, err := h.diceService.RollDice(ctx, &dice.RollDiceInput{
		SessionID: req.SessionID,
		Notation:  req.Notation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollDiceResponse{
		Roll:    out.Roll,
		Frames:  out.Frames,
		History: nonNilRolls(out.History),
	}, nil
}

// GetDiceHistory lists the session's recent rolls
func (h *Handler) GetDiceHistory(ctx context.Context, req *DiceHistoryRequest) (*GetDiceHistoryResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.diceService.GetHistory(ctx, &dice.GetHistoryInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetDiceHistoryResponse{Rolls: nonNilRolls(out.Rolls)}, nil
}

// ClearDiceHistory drops the session's rolls
func (h *Handler) ClearDiceHistory(ctx context.Context, req *DiceHistoryRequest) (*ClearDiceHistoryResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	out, err := h.diceService.ClearHistory(ctx, &dice.ClearHistoryInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearDiceHistoryResponse{RollsDeleted: out.RollsDeleted}, nil
}

// ExportCharacterSheet renders the session's character as a PDF
func (h *Handler) ExportCharacterSheet(ctx context.Context, req *ExportCharacterSheetRequest) (*ExportCharacterSheetResponse, error) {
	if err := requireSession(req.SessionID); err != nil {
		return nil, err
	}

	session, err := h.wizardService.GetSession(ctx, &wizard.GetSessionInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.exportService.RenderCharacterSheet(ctx, &export.RenderCharacterSheetInput{
		Character: session.Session.Character,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ExportCharacterSheetResponse{
		Filename:    out.Filename,
		ContentType: out.ContentType,
		Content:     out.Content,
	}, nil
}

// Status reports whether text generation is configured
func (h *Handler) Status(ctx context.Context, _ *StatusRequest) (*StatusResponse, error) {
	out, err := h.wizardService.Status(ctx, &wizard.StatusInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StatusResponse{
		AIEnabled: out.AIEnabled,
		Model:     out.Model,
	}, nil
}

func nonNilRolls(rolls []entities.DiceRoll) []entities.DiceRoll {
	if rolls == nil {
		return []entities.DiceRoll{}
	}
	return rolls
}
