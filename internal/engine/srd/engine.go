// Package srd implements the rules engine with the SRD 5e rule set,
// built on the pure rulebook packages.
package srd

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgelight/charbuilder/internal/engine"
	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/errors"
	"github.com/forgelight/charbuilder/internal/rulebook/abilities"
	"github.com/forgelight/charbuilder/internal/rulebook/backgrounds"
	"github.com/forgelight/charbuilder/internal/rulebook/classes"
)

// Step validation messages, surfaced verbatim to the user.
const (
	msgSpeciesRequired    = "Species must be selected."
	msgSubspeciesRequired = "Subspecies must be selected for this species."
	msgClassRequired      = "Class must be selected."
	msgMethodRequired     = "Ability score method must be selected."
	msgScoresRequired     = "Ability scores must be assigned."
	msgPointBuyInvalid    = "Point buy scores are invalid. All scores must be 8–15 and total cost must not exceed 27 points."
	msgStandardInvalid    = "Standard array values must be exactly 15, 14, 13, 12, 10, and 8 (in any order)."
	msgBackgroundRequired = "Background must be selected."
	msgConflictsUnsolved  = "Skill conflicts between class and background must be resolved."
	msgSkillsRequired     = "Skill proficiencies must be selected."
	msgClassBeforeEquip   = "Class must be selected before choosing equipment."
	msgEquipmentRequired  = "Starting equipment must be selected."
)

// Engine is the SRD implementation of engine.Engine.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New creates a new SRD rules engine
func New() *Engine {
	return &Engine{}
}

func stepResult(errs []string) engine.StepResult {
	return engine.StepResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// ValidateSpeciesChoice checks that a species is selected and, when the
// species has subspecies, that one of them is too.
func (e *Engine) ValidateSpeciesChoice(_ context.Context, input *engine.ValidateSpeciesChoiceInput) (*engine.ValidateSpeciesChoiceOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	draft := input.Draft

	var errs []string
	if draft.Species == nil {
		errs = append(errs, msgSpeciesRequired)
	} else if draft.Species.RequiresSubspecies() && draft.Subspecies == nil {
		errs = append(errs, msgSubspeciesRequired)
	}

	return &engine.ValidateSpeciesChoiceOutput{Result: stepResult(errs)}, nil
}

// ValidateClassChoice checks that a class is selected.
func (e *Engine) ValidateClassChoice(_ context.Context, input *engine.ValidateClassChoiceInput) (*engine.ValidateClassChoiceOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}

	var errs []string
	if input.Draft.Class == nil {
		errs = append(errs, msgClassRequired)
	}

	return &engine.ValidateClassChoiceOutput{Result: stepResult(errs)}, nil
}

// ValidateAbilityScores checks the method and score assignment. A missing
// method accumulates with score problems, but a missing or partial score
// set stops further checks since the method rules have nothing to
// evaluate.
func (e *Engine) ValidateAbilityScores(_ context.Context, input *engine.ValidateAbilityScoresInput) (*engine.ValidateAbilityScoresOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	draft := input.Draft

	var errs []string
	if draft.AbilityScoreMethod == "" {
		errs = append(errs, msgMethodRequired)
	}

	if draft.BaseAbilityScores == nil {
		errs = append(errs, msgScoresRequired)
		return &engine.ValidateAbilityScoresOutput{Result: stepResult(errs)}, nil
	}

	var missing []string
	for _, a := range entities.Abilities {
		if _, ok := draft.BaseAbilityScores[a]; !ok {
			missing = append(missing, string(a))
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("Missing ability scores: %s.", strings.Join(missing, ", ")))
		return &engine.ValidateAbilityScoresOutput{Result: stepResult(errs)}, nil
	}

	switch draft.AbilityScoreMethod {
	case entities.MethodPointBuy:
		if !abilities.IsValidPointBuy(draft.BaseAbilityScores) {
			errs = append(errs, msgPointBuyInvalid)
		}
	case entities.MethodStandardArray:
		if !abilities.IsValidStandardArray(draft.BaseAbilityScores) {
			errs = append(errs, msgStandardInvalid)
		}
	case entities.MethodManual:
		// any values accepted
	}

	return &engine.ValidateAbilityScoresOutput{Result: stepResult(errs)}, nil
}

// ValidateBackgroundChoice checks that a background is selected and, when
// a class is also chosen, that skill proficiencies exist and any overlap
// between background and class skills has been resolved with
// replacements.
func (e *Engine) ValidateBackgroundChoice(_ context.Context, input *engine.ValidateBackgroundChoiceInput) (*engine.ValidateBackgroundChoiceOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	draft := input.Draft

	var errs []string
	if draft.Background == nil {
		errs = append(errs, msgBackgroundRequired)
		return &engine.ValidateBackgroundChoiceOutput{Result: stepResult(errs)}, nil
	}

	if draft.Class != nil {
		if draft.SkillProficiencies == nil {
			errs = append(errs, msgSkillsRequired)
			return &engine.ValidateBackgroundChoiceOutput{Result: stepResult(errs)}, nil
		}

		bgSkills := backgrounds.Skills(draft.Background)
		conflicts := backgrounds.SkillConflicts(bgSkills, draft.SkillProficiencies)
		if len(conflicts) > 0 {
			// Resolved when the list has grown past the class-only skills
			// plus every background skill, i.e. replacements were added.
			nonBackground := 0
			for _, s := range draft.SkillProficiencies {
				if !skillIn(bgSkills, s) {
					nonBackground++
				}
			}
			if len(draft.SkillProficiencies) < nonBackground+len(bgSkills) {
				errs = append(errs, msgConflictsUnsolved)
			}
		}
	}

	return &engine.ValidateBackgroundChoiceOutput{Result: stepResult(errs)}, nil
}

// ValidateEquipmentChoice checks that equipment has been chosen for
// classes that offer equipment choices. A class without choice groups
// always validates.
func (e *Engine) ValidateEquipmentChoice(_ context.Context, input *engine.ValidateEquipmentChoiceInput) (*engine.ValidateEquipmentChoiceOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	draft := input.Draft

	var errs []string
	if draft.Class == nil {
		errs = append(errs, msgClassBeforeEquip)
		return &engine.ValidateEquipmentChoiceOutput{Result: stepResult(errs)}, nil
	}

	if len(classes.EquipmentChoices(draft.Class)) > 0 && len(draft.Equipment) == 0 {
		errs = append(errs, msgEquipmentRequired)
	}

	return &engine.ValidateEquipmentChoiceOutput{Result: stepResult(errs)}, nil
}

// ValidateDraft runs all five step validators and concatenates their
// errors in step order. No step short-circuits another.
func (e *Engine) ValidateDraft(ctx context.Context, input *engine.ValidateDraftInput) (*engine.ValidateDraftOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}

	var errs []string

	species, err := e.ValidateSpeciesChoice(ctx, &engine.ValidateSpeciesChoiceInput{Draft: input.Draft})
	if err != nil {
		return nil, err
	}
	errs = append(errs, species.Result.Errors...)

	class, err := e.ValidateClassChoice(ctx, &engine.ValidateClassChoiceInput{Draft: input.Draft})
	if err != nil {
		return nil, err
	}
	errs = append(errs, class.Result.Errors...)

	scores, err := e.ValidateAbilityScores(ctx, &engine.ValidateAbilityScoresInput{Draft: input.Draft})
	if err != nil {
		return nil, err
	}
	errs = append(errs, scores.Result.Errors...)

	background, err := e.ValidateBackgroundChoice(ctx, &engine.ValidateBackgroundChoiceInput{Draft: input.Draft})
	if err != nil {
		return nil, err
	}
	errs = append(errs, background.Result.Errors...)

	equipment, err := e.ValidateEquipmentChoice(ctx, &engine.ValidateEquipmentChoiceInput{Draft: input.Draft})
	if err != nil {
		return nil, err
	}
	errs = append(errs, equipment.Result.Errors...)

	return &engine.ValidateDraftOutput{Result: stepResult(errs)}, nil
}

func skillIn(skills []entities.Skill, s entities.Skill) bool {
	for _, held := range skills {
		if held == s {
			return true
		}
	}
	return false
}
