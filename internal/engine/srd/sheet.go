package srd

import (
	"context"

	"github.com/forgelight/charbuilder/internal/engine"
	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/errors"
	"github.com/forgelight/charbuilder/internal/rulebook/abilities"
	"github.com/forgelight/charbuilder/internal/rulebook/classes"
	"github.com/forgelight/charbuilder/internal/rulebook/species"
	"github.com/forgelight/charbuilder/internal/rulebook/stats"
)

// CalculateSheet materializes every derived statistic from the draft's
// raw selections. Partial drafts are fine; absent selections simply
// contribute their zero values.
func (e *Engine) CalculateSheet(_ context.Context, input *engine.CalculateSheetInput) (*engine.CalculateSheetOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	draft := input.Draft

	bonuses := species.EffectiveBonuses(draft.Species, draft.Subspecies)
	effective := abilities.ApplyBonuses(draft.BaseAbilityScores, bonuses)
	mods := abilities.AllModifiers(effective)

	level := draft.EffectiveLevel()
	pb := stats.ProficiencyBonus(level)

	sheet := &engine.CharacterSheet{
		Name:             draft.Name,
		Level:            level,
		AbilityScores:    effective,
		AbilityModifiers: mods,
		ProficiencyBonus: pb,
		Initiative:       stats.Initiative(mods[entities.AbilityDexterity]),
		Speed:            species.EffectiveSpeed(draft.Species, draft.Subspecies),
	}

	if draft.Species != nil {
		sheet.SpeciesName = draft.Species.Name
	}
	if draft.Subspecies != nil {
		sheet.SubspeciesName = draft.Subspecies.Name
	}
	if draft.Background != nil {
		sheet.BackgroundName = draft.Background.Name
	}

	className := ""
	if draft.Class != nil {
		className = draft.Class.Name
		sheet.ClassName = className
		sheet.HitPoints = stats.HitPoints(classes.HitDie(draft.Class), mods[entities.AbilityConstitution])
	}

	sheet.SavingThrows = make(map[entities.Ability]int, len(entities.Abilities))
	for _, a := range entities.Abilities {
		proficient := classes.SavingThrowProficient(draft.Class, a)
		sheet.SavingThrows[a] = stats.SavingThrowModifier(mods[a], proficient, pb)
	}

	sheet.SkillModifiers = stats.AllSkillModifiers(mods, draft.SkillProficiencies, pb)
	sheet.PassivePerception = stats.PassivePerception(
		mods[entities.AbilityWisdom], draft.HasSkill(entities.SkillPerception), pb)

	sheet.ArmorClass = stats.ArmorClass(stats.ArmorClassOptions{
		Armor:            equippedArmor(draft.Equipment),
		Shield:           hasShield(draft.Equipment),
		ClassName:        className,
		AbilityModifiers: mods,
	})

	if draft.Class != nil && draft.Class.Spellcasting != nil {
		casting := draft.Class.Spellcasting.Ability
		sheet.Spellcasting = &engine.SpellcastingStats{
			Ability:        casting,
			SaveDC:         stats.SpellSaveDC(mods[casting], pb),
			AttackModifier: stats.SpellAttackModifier(mods[casting], pb),
		}
	}

	return &engine.CalculateSheetOutput{Sheet: sheet}, nil
}

// equippedArmor returns the first equipment item with a known armor
// profile. Shields are not armor.
func equippedArmor(equipment []entities.EquipmentRef) *stats.EquippedArmor {
	for _, item := range equipment {
		if profile, ok := stats.ArmorByName(item.Name); ok {
			return &profile
		}
	}
	return nil
}

func hasShield(equipment []entities.EquipmentRef) bool {
	for _, item := range equipment {
		if item.Name == "Shield" {
			return true
		}
	}
	return false
}
