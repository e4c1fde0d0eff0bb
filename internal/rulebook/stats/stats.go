// Package stats computes derived character statistics from raw
// selections. Nothing here is stored; callers recompute on demand.
package stats

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

// SkillAbilities maps each of the 18 skills to its governing ability.
var SkillAbilities = map[entities.Skill]entities.Ability{
	entities.SkillAthletics:      entities.AbilityStrength,
	entities.SkillAcrobatics:     entities.AbilityDexterity,
	entities.SkillSleightOfHand:  entities.AbilityDexterity,
	entities.SkillStealth:        entities.AbilityDexterity,
	entities.SkillArcana:         entities.AbilityIntelligence,
	entities.SkillHistory:        entities.AbilityIntelligence,
	entities.SkillInvestigation:  entities.AbilityIntelligence,
	entities.SkillNature:         entities.AbilityIntelligence,
	entities.SkillReligion:       entities.AbilityIntelligence,
	entities.SkillAnimalHandling: entities.AbilityWisdom,
	entities.SkillInsight:        entities.AbilityWisdom,
	entities.SkillMedicine:       entities.AbilityWisdom,
	entities.SkillPerception:     entities.AbilityWisdom,
	entities.SkillSurvival:       entities.AbilityWisdom,
	entities.SkillDeception:      entities.AbilityCharisma,
	entities.SkillIntimidation:   entities.AbilityCharisma,
	entities.SkillPerformance:    entities.AbilityCharisma,
	entities.SkillPersuasion:     entities.AbilityCharisma,
}

// ProficiencyBonus returns the level-scaled proficiency bonus. Levels at
// or below zero are treated as level 1.
func ProficiencyBonus(level int32) int {
	if level < 1 {
		level = 1
	}
	return int((level-1)/4) + 2
}

// HitPoints returns level-1 hit points: hit die plus Constitution
// modifier, floored at 1.
func HitPoints(hitDie int32, conModifier int) int {
	hp := int(hitDie) + conModifier
	if hp < 1 {
		return 1
	}
	return hp
}

// AllSkillModifiers computes the modifier for every skill: the governing
// ability's modifier plus the proficiency bonus when proficient.
func AllSkillModifiers(abilityMods map[entities.Ability]int, proficientSkills []entities.Skill, proficiencyBonus int) map[entities.Skill]int {
	proficient := make(map[entities.Skill]bool, len(proficientSkills))
	for _, s := range proficientSkills {
		proficient[s] = true
	}

	mods := make(map[entities.Skill]int, len(entities.Skills))
	for _, skill := range entities.Skills {
		mod := abilityMods[SkillAbilities[skill]]
		if proficient[skill] {
			mod += proficiencyBonus
		}
		mods[skill] = mod
	}
	return mods
}

// SavingThrowModifier returns the save modifier for one ability, adding
// the proficiency bonus when the class grants that save.
func SavingThrowModifier(abilityMod int, proficient bool, proficiencyBonus int) int {
	if proficient {
		return abilityMod + proficiencyBonus
	}
	return abilityMod
}

// SpellSaveDC returns 8 plus the casting ability modifier plus the
// proficiency bonus.
func SpellSaveDC(castingAbilityMod, proficiencyBonus int) int {
	return 8 + castingAbilityMod + proficiencyBonus
}

// SpellAttackModifier returns the casting ability modifier plus the
// proficiency bonus.
func SpellAttackModifier(castingAbilityMod, proficiencyBonus int) int {
	return castingAbilityMod + proficiencyBonus
}

// PassivePerception returns 10 plus the Wisdom modifier, plus the
// proficiency bonus when proficient in Perception.
func PassivePerception(wisMod int, proficient bool, proficiencyBonus int) int {
	pp := 10 + wisMod
	if proficient {
		pp += proficiencyBonus
	}
	return pp
}

// Initiative returns the Dexterity modifier. Kept as a named function so
// house rules have a single place to hook.
func Initiative(dexMod int) int {
	return dexMod
}
