// Package classes exposes read-only projections of a class record. All
// accessors normalize absent optional fields to empty values so callers
// never branch on presence.
package classes

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

// ProficiencyBundle groups a class's proficiency grants for display and
// validation.
type ProficiencyBundle struct {
	Armor        []string
	Weapons      []string
	SavingThrows []entities.Ability
}

// HitDie returns the class hit die, or 0 when no class is given.
func HitDie(class *entities.CharacterClass) int32 {
	if class == nil {
		return 0
	}
	return class.HitDie
}

// Proficiencies returns the class's armor, weapon, and saving throw
// proficiencies with nil slices normalized to empty.
func Proficiencies(class *entities.CharacterClass) ProficiencyBundle {
	bundle := ProficiencyBundle{
		Armor:        []string{},
		Weapons:      []string{},
		SavingThrows: []entities.Ability{},
	}
	if class == nil {
		return bundle
	}
	if len(class.ArmorProficiencies) > 0 {
		bundle.Armor = class.ArmorProficiencies
	}
	if len(class.WeaponProficiencies) > 0 {
		bundle.Weapons = class.WeaponProficiencies
	}
	if len(class.SavingThrows) > 0 {
		bundle.SavingThrows = class.SavingThrows
	}
	return bundle
}

// SkillChoices returns the class's skill-choice descriptor with a nil
// options slice normalized to empty.
func SkillChoices(class *entities.CharacterClass) entities.SkillChoice {
	if class == nil {
		return entities.SkillChoice{Options: []entities.Skill{}}
	}
	choice := class.SkillChoices
	if choice.Options == nil {
		choice.Options = []entities.Skill{}
	}
	return choice
}

// EquipmentChoices returns the class's starting-equipment choice groups,
// empty when unconfigured.
func EquipmentChoices(class *entities.CharacterClass) []entities.EquipmentChoice {
	if class == nil || class.StartingEquipment == nil || class.StartingEquipment.Choices == nil {
		return []entities.EquipmentChoice{}
	}
	return class.StartingEquipment.Choices
}

// FixedEquipment returns the class's fixed starting equipment, empty when
// unconfigured.
func FixedEquipment(class *entities.CharacterClass) []entities.EquipmentRef {
	if class == nil || class.StartingEquipment == nil || class.StartingEquipment.Fixed == nil {
		return []entities.EquipmentRef{}
	}
	return class.StartingEquipment.Fixed
}

// SavingThrowProficient reports whether the class grants proficiency in
// the given saving throw.
func SavingThrowProficient(class *entities.CharacterClass, ability entities.Ability) bool {
	if class == nil {
		return false
	}
	for _, save := range class.SavingThrows {
		if save == ability {
			return true
		}
	}
	return false
}
