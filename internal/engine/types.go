package engine

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

// StepResult is the outcome of validating one wizard step. Errors are
// human-readable and ordered; Valid is true iff Errors is empty.
type StepResult struct {
	Valid  bool
	Errors []string
}

// ValidateSpeciesChoiceInput holds the draft to check
type ValidateSpeciesChoiceInput struct {
	Draft *entities.CharacterDraft
}

// ValidateSpeciesChoiceOutput holds the species step result
type ValidateSpeciesChoiceOutput struct {
	Result StepResult
}

// ValidateClassChoiceInput holds the draft to check
type ValidateClassChoiceInput struct {
	Draft *entities.CharacterDraft
}

// ValidateClassChoiceOutput holds the class step result
type ValidateClassChoiceOutput struct {
	Result StepResult
}

// ValidateAbilityScoresInput holds the draft to check
type ValidateAbilityScoresInput struct {
	Draft *entities.CharacterDraft
}

// ValidateAbilityScoresOutput holds the ability scores step result
type ValidateAbilityScoresOutput struct {
	Result StepResult
}

// ValidateBackgroundChoiceInput holds the draft to check
type ValidateBackgroundChoiceInput struct {
	Draft *entities.CharacterDraft
}

// ValidateBackgroundChoiceOutput holds the background step result
type ValidateBackgroundChoiceOutput struct {
	Result StepResult
}

// ValidateEquipmentChoiceInput holds the draft to check
type ValidateEquipmentChoiceInput struct {
	Draft *entities.CharacterDraft
}

// ValidateEquipmentChoiceOutput holds the equipment step result
type ValidateEquipmentChoiceOutput struct {
	Result StepResult
}

// ValidateDraftInput holds the draft to check
type ValidateDraftInput struct {
	Draft *entities.CharacterDraft
}

// ValidateDraftOutput aggregates every step's findings in step order.
type ValidateDraftOutput struct {
	Result StepResult
}

// CalculateSheetInput holds the draft to materialize
type CalculateSheetInput struct {
	Draft *entities.CharacterDraft
}

// CalculateSheetOutput holds the computed sheet
type CalculateSheetOutput struct {
	Sheet *CharacterSheet
}

// SpellcastingStats are the derived casting numbers for a spellcasting
// class.
type SpellcastingStats struct {
	Ability        entities.Ability
	SaveDC         int
	AttackModifier int
}

// CharacterSheet is the fully derived view of a draft. Nothing on it is
// ever persisted; it is recomputed from the draft on demand.
type CharacterSheet struct {
	Name           string
	SpeciesName    string
	SubspeciesName string
	ClassName      string
	BackgroundName string
	Level          int32

	AbilityScores    entities.AbilityScores
	AbilityModifiers map[entities.Ability]int

	ProficiencyBonus  int
	HitPoints         int
	ArmorClass        int
	Initiative        int
	Speed             int32
	PassivePerception int

	SavingThrows   map[entities.Ability]int
	SkillModifiers map[entities.Skill]int

	Spellcasting *SpellcastingStats
}
