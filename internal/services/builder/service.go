// Package builder defines the interface for the character building flow
package builder

//go:generate mockgen -destination=mock/mock_service.go -package=buildermock github.com/forgelight/charbuilder/internal/services/builder Service

import (
	"context"

	"github.com/forgelight/charbuilder/internal/engine"
	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/rulebook/content"
)

// Service drives a draft through the wizard steps. Step updates persist
// the change and report the step's validation findings as data; a
// non-nil error means the operation itself failed (bad input, storage).
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	GetDraftByOwner(ctx context.Context, input *GetDraftByOwnerInput) (*GetDraftByOwnerOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Step updates
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)
	SetSpecies(ctx context.Context, input *SetSpeciesInput) (*SetSpeciesOutput, error)
	SetClass(ctx context.Context, input *SetClassInput) (*SetClassOutput, error)
	SetAbilityScores(ctx context.Context, input *SetAbilityScoresInput) (*SetAbilityScoresOutput, error)
	SetBackground(ctx context.Context, input *SetBackgroundInput) (*SetBackgroundOutput, error)
	SetSkills(ctx context.Context, input *SetSkillsInput) (*SetSkillsOutput, error)
	SetEquipment(ctx context.Context, input *SetEquipmentInput) (*SetEquipmentOutput, error)

	// Content availability
	GetAvailableContent(ctx context.Context, input *GetAvailableContentInput) (*GetAvailableContentOutput, error)
	SetEnabledPacks(ctx context.Context, input *SetEnabledPacksInput) (*SetEnabledPacksOutput, error)

	// Validation and finalization
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)

	// File exchange
	ExportDraft(ctx context.Context, input *ExportDraftInput) (*ExportDraftOutput, error)
	ImportDraft(ctx context.Context, input *ImportDraftInput) (*ImportDraftOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	OwnerID string
	Name    string // Optional
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *entities.CharacterDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *entities.CharacterDraft
}

// GetDraftByOwnerInput defines the request for getting an owner's draft
type GetDraftByOwnerInput struct {
	OwnerID string
}

// GetDraftByOwnerOutput defines the response for getting an owner's draft
type GetDraftByOwnerOutput struct {
	Draft *entities.CharacterDraft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct {
	Message string
}

// Step update types

// UpdateNameInput defines the request for renaming a draft
type UpdateNameInput struct {
	DraftID string
	Name    string
}

// UpdateNameOutput defines the response for renaming a draft
type UpdateNameOutput struct {
	Draft *entities.CharacterDraft
}

// SetSpeciesInput carries the selected species record. SubspeciesName
// picks one of the species' subspecies; empty means none selected.
type SetSpeciesInput struct {
	DraftID        string
	Species        *entities.Species
	SubspeciesName string
}

// SetSpeciesOutput holds the updated draft and the step findings
type SetSpeciesOutput struct {
	Draft  *entities.CharacterDraft
	Result engine.StepResult
}

// SetClassInput carries the selected class record. SubclassName picks
// one of the class's subclasses; empty means none selected.
type SetClassInput struct {
	DraftID      string
	Class        *entities.CharacterClass
	SubclassName string
}

// SetClassOutput holds the updated draft and the step findings
type SetClassOutput struct {
	Draft  *entities.CharacterDraft
	Result engine.StepResult
}

// SetAbilityScoresInput carries the generation method and the scores
type SetAbilityScoresInput struct {
	DraftID string
	Method  entities.ScoreMethod
	Scores  entities.AbilityScores
}

// SetAbilityScoresOutput holds the updated draft and the step findings
type SetAbilityScoresOutput struct {
	Draft  *entities.CharacterDraft
	Result engine.StepResult
}

// SetBackgroundInput carries the selected background record and any
// conflict replacements the player picked.
type SetBackgroundInput struct {
	DraftID      string
	Background   *entities.Background
	Replacements map[entities.Skill]entities.Skill
}

// SetBackgroundOutput holds the updated draft and the step findings
type SetBackgroundOutput struct {
	Draft  *entities.CharacterDraft
	Result engine.StepResult
}

// SetSkillsInput carries the full skill proficiency selection: class
// picks, background grants, and replacements together.
type SetSkillsInput struct {
	DraftID string
	Skills  []entities.Skill
}

// SetSkillsOutput holds the updated draft and the step findings
type SetSkillsOutput struct {
	Draft  *entities.CharacterDraft
	Result engine.StepResult
}

// SetEquipmentInput carries the chosen starting equipment
type SetEquipmentInput struct {
	DraftID   string
	Equipment []entities.EquipmentRef
}

// SetEquipmentOutput holds the updated draft and the step findings
type SetEquipmentOutput struct {
	Draft  *entities.CharacterDraft
	Result engine.StepResult
}

// Content availability types

// GetAvailableContentInput lists the enabled expansion packs
type GetAvailableContentInput struct {
	EnabledPackIDs []string
}

// GetAvailableContentOutput holds the merged catalog snapshot
type GetAvailableContentOutput struct {
	Available entities.AvailableContent
}

// SetEnabledPacksInput applies a pack toggle to a draft
type SetEnabledPacksInput struct {
	DraftID        string
	EnabledPackIDs []string
}

// SetEnabledPacksOutput reports the new catalog snapshot and which of
// the draft's selections were cleared because they went stale.
type SetEnabledPacksOutput struct {
	Draft     *entities.CharacterDraft
	Available entities.AvailableContent
	Cleared   content.StaleResult
}

// Validation and finalization types

// ValidateDraftInput identifies the draft to validate
type ValidateDraftInput struct {
	DraftID string
}

// ValidateDraftOutput aggregates all step findings in step order
type ValidateDraftOutput struct {
	Result engine.StepResult
}

// FinalizeDraftInput identifies the draft to finalize
type FinalizeDraftInput struct {
	DraftID string
}

// FinalizeDraftOutput carries the materialized sheet when the draft is
// valid; on an invalid draft Sheet is nil and Result lists the errors.
type FinalizeDraftOutput struct {
	Sheet  *engine.CharacterSheet
	Result engine.StepResult
}

// File exchange types

// ExportDraftInput identifies the draft to export
type ExportDraftInput struct {
	DraftID string
}

// ExportDraftOutput carries the serialized draft and the suggested
// download filename.
type ExportDraftOutput struct {
	Data     []byte
	Filename string
}

// ImportDraftInput carries a previously exported draft file
type ImportDraftInput struct {
	OwnerID string
	Data    []byte
}

// ImportDraftOutput holds the imported draft stored under a fresh ID
type ImportDraftOutput struct {
	Draft *entities.CharacterDraft
}
