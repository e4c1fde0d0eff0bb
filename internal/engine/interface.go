// Package engine defines the rules engine interface the wizard flow is
// built against. Implementations validate wizard steps and compute
// derived character statistics; they never mutate the draft.
package engine

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/forgelight/charbuilder/internal/engine Engine

// Engine validates character drafts step by step and materializes the
// finished character sheet. Validation failures are data on the output,
// not errors; the error return is reserved for misuse (nil input).
type Engine interface {
	// ValidateSpeciesChoice checks the species step, including the
	// subspecies requirement.
	ValidateSpeciesChoice(ctx context.Context, input *ValidateSpeciesChoiceInput) (*ValidateSpeciesChoiceOutput, error)

	// ValidateClassChoice checks the class step.
	ValidateClassChoice(ctx context.Context, input *ValidateClassChoiceInput) (*ValidateClassChoiceOutput, error)

	// ValidateAbilityScores checks the ability scores step against the
	// chosen generation method.
	ValidateAbilityScores(ctx context.Context, input *ValidateAbilityScoresInput) (*ValidateAbilityScoresOutput, error)

	// ValidateBackgroundChoice checks the background step, including
	// skill-conflict resolution.
	ValidateBackgroundChoice(ctx context.Context, input *ValidateBackgroundChoiceInput) (*ValidateBackgroundChoiceOutput, error)

	// ValidateEquipmentChoice checks the equipment step.
	ValidateEquipmentChoice(ctx context.Context, input *ValidateEquipmentChoiceInput) (*ValidateEquipmentChoiceOutput, error)

	// ValidateDraft runs every step validator and concatenates their
	// findings.
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)

	// CalculateSheet computes all derived statistics for the draft.
	CalculateSheet(ctx context.Context, input *CalculateSheetInput) (*CalculateSheetOutput, error)
}
