// Package builder implements the character building orchestrator
package builder

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/forgelight/charbuilder/internal/catalog"
	"github.com/forgelight/charbuilder/internal/codec"
	"github.com/forgelight/charbuilder/internal/engine"
	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/errors"
	"github.com/forgelight/charbuilder/internal/events"
	"github.com/forgelight/charbuilder/internal/pkg/clock"
	"github.com/forgelight/charbuilder/internal/pkg/idgen"
	draftrepo "github.com/forgelight/charbuilder/internal/repositories/draft"
	"github.com/forgelight/charbuilder/internal/rulebook/content"
	speciesrules "github.com/forgelight/charbuilder/internal/rulebook/species"
	"github.com/forgelight/charbuilder/internal/services/builder"
)

// Config holds the dependencies for the builder orchestrator
type Config struct {
	DraftRepo   draftrepo.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Publisher is optional; nil disables event publication.
	Publisher *events.Publisher

	// BaseContent and Packs override the built-in catalog. Zero values
	// fall back to the embedded catalog.
	BaseContent *entities.BaseContent
	Packs       []entities.ExpansionPack
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the builder.Service interface
type Orchestrator struct {
	draftRepo draftrepo.Repository
	engine    engine.Engine
	idGen     idgen.Generator
	clock     clock.Clock
	publisher *events.Publisher
	log       *slog.Logger

	base  entities.BaseContent
	packs []entities.ExpansionPack
}

// New creates a new builder orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	base := catalog.BaseContent()
	if cfg.BaseContent != nil {
		base = *cfg.BaseContent
	}
	packs := cfg.Packs
	if packs == nil {
		packs = catalog.Packs()
	}

	return &Orchestrator{
		draftRepo: cfg.DraftRepo,
		engine:    cfg.Engine,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		publisher: cfg.Publisher,
		log:       slog.Default().With("component", "builder"),
		base:      base,
		packs:     packs,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ builder.Service = (*Orchestrator)(nil)

// Draft lifecycle

// CreateDraft starts a new draft for the owner, replacing any draft the
// owner already had.
func (o *Orchestrator) CreateDraft(ctx context.Context, input *builder.CreateDraftInput) (*builder.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.OwnerID == "" {
		vb.RequiredField("OwnerID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	draft := &entities.CharacterDraft{
		ID:        o.idGen.Generate(),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft}); err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "created draft", "draft_id", draft.ID, "owner_id", draft.OwnerID)
	return &builder.CreateDraftOutput{Draft: draft}, nil
}

// GetDraft retrieves a draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *builder.GetDraftInput) (*builder.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	return &builder.GetDraftOutput{Draft: draft}, nil
}

// GetDraftByOwner retrieves the owner's draft
func (o *Orchestrator) GetDraftByOwner(ctx context.Context, input *builder.GetDraftByOwnerInput) (*builder.GetDraftByOwnerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("OwnerID is required")
	}

	output, err := o.draftRepo.GetByOwnerID(ctx, draftrepo.GetByOwnerIDInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	return &builder.GetDraftByOwnerOutput{Draft: output.Draft}, nil
}

// DeleteDraft removes a draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *builder.DeleteDraftInput) (*builder.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("DraftID is required")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, err
	}
	return &builder.DeleteDraftOutput{Message: "draft deleted"}, nil
}

// Step updates

// UpdateName renames the draft. Names are free-form; sanitization only
// happens at export time.
func (o *Orchestrator) UpdateName(ctx context.Context, input *builder.UpdateNameInput) (*builder.UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Name = input.Name
	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &builder.UpdateNameOutput{Draft: draft}, nil
}

// SetSpecies records the species selection. An unknown subspecies name
// leaves the subspecies unset, which the step validation reports.
func (o *Orchestrator) SetSpecies(ctx context.Context, input *builder.SetSpeciesInput) (*builder.SetSpeciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Species = input.Species
	draft.Subspecies = speciesrules.SubspeciesOf(input.Species, input.SubspeciesName)

	result, err := o.engine.ValidateSpeciesChoice(ctx, &engine.ValidateSpeciesChoiceInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	o.publisher.PublishStepCompleted(ctx, draft, entities.StepSpecies, result.Result.Valid)

	return &builder.SetSpeciesOutput{Draft: draft, Result: result.Result}, nil
}

// SetClass records the class selection. Skill, spell, and equipment
// choices depend on the class, so changing it clears them.
func (o *Orchestrator) SetClass(ctx context.Context, input *builder.SetClassInput) (*builder.SetClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	changed := draft.Class == nil || input.Class == nil || draft.Class.Name != input.Class.Name
	draft.Class = input.Class
	draft.Subclass = subclassOf(input.Class, input.SubclassName)
	if changed {
		draft.SkillProficiencies = nil
		draft.CantripsKnown = nil
		draft.SpellsKnown = nil
		draft.Equipment = nil
	}

	result, err := o.engine.ValidateClassChoice(ctx, &engine.ValidateClassChoiceInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	o.publisher.PublishStepCompleted(ctx, draft, entities.StepClass, result.Result.Valid)

	return &builder.SetClassOutput{Draft: draft, Result: result.Result}, nil
}

// SetAbilityScores records the generation method and the scores
func (o *Orchestrator) SetAbilityScores(ctx context.Context, input *builder.SetAbilityScoresInput) (*builder.SetAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.AbilityScoreMethod = input.Method
	draft.BaseAbilityScores = input.Scores

	result, err := o.engine.ValidateAbilityScores(ctx, &engine.ValidateAbilityScoresInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	o.publisher.PublishStepCompleted(ctx, draft, entities.StepAbilityScores, result.Result.Valid)

	return &builder.SetAbilityScoresOutput{Draft: draft, Result: result.Result}, nil
}

// SetBackground records the background selection, its origin feat, and
// any conflict replacements the player picked.
func (o *Orchestrator) SetBackground(ctx context.Context, input *builder.SetBackgroundInput) (*builder.SetBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Background = input.Background
	draft.BackgroundSkillReplacements = input.Replacements
	draft.OriginFeat = ""
	if input.Background != nil {
		draft.OriginFeat = input.Background.OriginFeat
	}

	result, err := o.engine.ValidateBackgroundChoice(ctx, &engine.ValidateBackgroundChoiceInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	o.publisher.PublishStepCompleted(ctx, draft, entities.StepBackground, result.Result.Valid)

	return &builder.SetBackgroundOutput{Draft: draft, Result: result.Result}, nil
}

// SetSkills records the full skill proficiency selection. It re-checks
// the background step, which owns skill conflicts.
func (o *Orchestrator) SetSkills(ctx context.Context, input *builder.SetSkillsInput) (*builder.SetSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.SkillProficiencies = input.Skills

	result, err := o.engine.ValidateBackgroundChoice(ctx, &engine.ValidateBackgroundChoiceInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	o.publisher.PublishStepCompleted(ctx, draft, entities.StepBackground, result.Result.Valid)

	return &builder.SetSkillsOutput{Draft: draft, Result: result.Result}, nil
}

// SetEquipment records the chosen starting equipment
func (o *Orchestrator) SetEquipment(ctx context.Context, input *builder.SetEquipmentInput) (*builder.SetEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Equipment = input.Equipment

	result, err := o.engine.ValidateEquipmentChoice(ctx, &engine.ValidateEquipmentChoiceInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	o.publisher.PublishStepCompleted(ctx, draft, entities.StepEquipment, result.Result.Valid)

	return &builder.SetEquipmentOutput{Draft: draft, Result: result.Result}, nil
}

// Content availability

// GetAvailableContent merges the base catalog with the enabled packs
func (o *Orchestrator) GetAvailableContent(_ context.Context, input *builder.GetAvailableContentInput) (*builder.GetAvailableContentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	available := content.ComputeAvailableContent(input.EnabledPackIDs, o.packs, o.base)
	return &builder.GetAvailableContentOutput{Available: available}, nil
}

// SetEnabledPacks applies a pack toggle to the draft: selections that
// reference content no longer available are cleared together with their
// dependents, and the cleared set is reported to the caller.
func (o *Orchestrator) SetEnabledPacks(ctx context.Context, input *builder.SetEnabledPacksInput) (*builder.SetEnabledPacksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	available := content.ComputeAvailableContent(input.EnabledPackIDs, o.packs, o.base)
	cleared := content.FindStaleSelections(draft, available)
	cleared.Apply(draft)

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	if cleared.Any() {
		o.log.InfoContext(ctx, "cleared stale selections",
			"draft_id", draft.ID,
			"species", cleared.SpeciesCleared,
			"class", cleared.ClassCleared,
			"background", cleared.BackgroundCleared,
		)
	}

	return &builder.SetEnabledPacksOutput{
		Draft:     draft,
		Available: available,
		Cleared:   cleared,
	}, nil
}

// Validation and finalization

// ValidateDraft runs every step validator and aggregates the findings
func (o *Orchestrator) ValidateDraft(ctx context.Context, input *builder.ValidateDraftInput) (*builder.ValidateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.ValidateDraft(ctx, &engine.ValidateDraftInput{Draft: draft})
	if err != nil {
		return nil, err
	}
	return &builder.ValidateDraftOutput{Result: result.Result}, nil
}

// FinalizeDraft validates the whole draft and, when valid, materializes
// the character sheet. An invalid draft returns the findings without a
// sheet and is not an error.
func (o *Orchestrator) FinalizeDraft(ctx context.Context, input *builder.FinalizeDraftInput) (*builder.FinalizeDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	validation, err := o.engine.ValidateDraft(ctx, &engine.ValidateDraftInput{Draft: draft})
	if err != nil {
		return nil, err
	}
	if !validation.Result.Valid {
		return &builder.FinalizeDraftOutput{Result: validation.Result}, nil
	}

	sheet, err := o.engine.CalculateSheet(ctx, &engine.CalculateSheetInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	o.publisher.PublishDraftFinalized(ctx, draft)
	o.log.InfoContext(ctx, "finalized draft", "draft_id", draft.ID, "name", draft.Name)

	return &builder.FinalizeDraftOutput{
		Sheet:  sheet.Sheet,
		Result: validation.Result,
	}, nil
}

// File exchange

// ExportDraft serializes the draft into the versioned envelope and
// suggests a download filename stamped with the current time.
func (o *Orchestrator) ExportDraft(ctx context.Context, input *builder.ExportDraftInput) (*builder.ExportDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	data, err := codec.Serialize(draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize draft")
	}

	return &builder.ExportDraftOutput{
		Data:     data,
		Filename: codec.ExportFilename(draft.Name, o.clock.Now().UnixMilli()),
	}, nil
}

// ImportDraft decodes a previously exported file and stores it as the
// owner's draft under a fresh ID. Decode failures surface the decoder's
// message as an invalid-argument error.
func (o *Orchestrator) ImportDraft(ctx context.Context, input *builder.ImportDraftInput) (*builder.ImportDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.OwnerID == "" {
		vb.RequiredField("OwnerID")
	}
	if len(input.Data) == 0 {
		vb.RequiredField("Data")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := codec.Deserialize(input.Data)
	if !result.Success {
		return nil, errors.InvalidArgument(result.Error)
	}

	var draft entities.CharacterDraft
	if err := json.Unmarshal(result.Character, &draft); err != nil {
		return nil, errors.Wrap(err, "failed to decode character payload")
	}

	now := o.clock.Now().Unix()
	draft.ID = o.idGen.Generate()
	draft.OwnerID = input.OwnerID
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if _, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: &draft}); err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "imported draft", "draft_id", draft.ID, "owner_id", draft.OwnerID)
	return &builder.ImportDraftOutput{Draft: &draft}, nil
}

// helpers

func (o *Orchestrator) loadDraft(ctx context.Context, draftID string) (*entities.CharacterDraft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("DraftID is required")
	}

	output, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, err
	}
	return output.Draft, nil
}

func (o *Orchestrator) saveDraft(ctx context.Context, draft *entities.CharacterDraft) error {
	draft.UpdatedAt = o.clock.Now().Unix()
	_, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	return err
}

func subclassOf(class *entities.CharacterClass, name string) *entities.Subclass {
	if class == nil || name == "" {
		return nil
	}
	for i := range class.Subclasses {
		if class.Subclasses[i].Name == name {
			return &class.Subclasses[i]
		}
	}
	return nil
}
