package srd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/forgelight/charbuilder/internal/engine"
	"github.com/forgelight/charbuilder/internal/engine/srd"
	"github.com/forgelight/charbuilder/internal/entities"
)

type SheetTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine *srd.Engine
}

func (s *SheetTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.engine = srd.New()
}

func TestSheetTestSuite(t *testing.T) {
	suite.Run(t, new(SheetTestSuite))
}

func (s *SheetTestSuite) fighterDraft() *entities.CharacterDraft {
	return &entities.CharacterDraft{
		Name:    "Bruenor",
		Species: &entities.Species{Name: "Human", Speed: 30, Size: entities.SizeMedium},
		Class: &entities.CharacterClass{
			Name:         "Fighter",
			HitDie:       10,
			SavingThrows: []entities.Ability{entities.AbilityStrength, entities.AbilityConstitution},
		},
		Background:         &entities.Background{Name: "Soldier"},
		AbilityScoreMethod: entities.MethodStandardArray,
		BaseAbilityScores: entities.AbilityScores{
			entities.AbilityStrength:     15,
			entities.AbilityDexterity:    14,
			entities.AbilityConstitution: 13,
			entities.AbilityIntelligence: 12,
			entities.AbilityWisdom:       10,
			entities.AbilityCharisma:     8,
		},
		Level: 1,
	}
}

func (s *SheetTestSuite) TestFighterLevel1() {
	output, err := s.engine.CalculateSheet(s.ctx, &engine.CalculateSheetInput{Draft: s.fighterDraft()})
	s.Require().NoError(err)
	sheet := output.Sheet
	s.Require().NotNil(sheet)

	s.Equal("Bruenor", sheet.Name)
	s.Equal("Human", sheet.SpeciesName)
	s.Equal("Fighter", sheet.ClassName)
	s.Equal("Soldier", sheet.BackgroundName)
	s.Equal(int32(1), sheet.Level)

	s.Equal(2, sheet.AbilityModifiers[entities.AbilityStrength])
	s.Equal(2, sheet.AbilityModifiers[entities.AbilityDexterity])
	s.Equal(1, sheet.AbilityModifiers[entities.AbilityConstitution])
	s.Equal(-1, sheet.AbilityModifiers[entities.AbilityCharisma])

	s.Equal(2, sheet.ProficiencyBonus)
	s.Equal(11, sheet.HitPoints)
	s.Equal(int32(30), sheet.Speed)
	s.Equal(2, sheet.Initiative)
	s.Equal(10, sheet.PassivePerception)

	// proficient saves add the proficiency bonus
	s.Equal(4, sheet.SavingThrows[entities.AbilityStrength])
	s.Equal(4, sheet.SavingThrows[entities.AbilityConstitution])
	s.Equal(2, sheet.SavingThrows[entities.AbilityDexterity])

	// unarmored fighter
	s.Equal(12, sheet.ArmorClass)
	s.Nil(sheet.Spellcasting)
}

func (s *SheetTestSuite) TestSpeciesBonusesApply() {
	draft := s.fighterDraft()
	draft.Species = &entities.Species{
		Name:  "Elf",
		Speed: 30,
		AbilityBonuses: entities.AbilityBonuses{
			entities.AbilityDexterity: 2,
		},
		Subspecies: []entities.Subspecies{
			{
				Name:           "Wood Elf",
				AbilityBonuses: entities.AbilityBonuses{entities.AbilityWisdom: 1},
				Speed:          35,
			},
		},
	}
	draft.Subspecies = &draft.Species.Subspecies[0]

	output, err := s.engine.CalculateSheet(s.ctx, &engine.CalculateSheetInput{Draft: draft})
	s.Require().NoError(err)
	sheet := output.Sheet

	s.Equal(16, sheet.AbilityScores[entities.AbilityDexterity])
	s.Equal(3, sheet.AbilityModifiers[entities.AbilityDexterity])
	s.Equal(11, sheet.AbilityScores[entities.AbilityWisdom])
	s.Equal(int32(35), sheet.Speed)
	s.Equal("Wood Elf", sheet.SubspeciesName)
}

func (s *SheetTestSuite) TestArmorAndShieldFromEquipment() {
	draft := s.fighterDraft()
	draft.Equipment = []entities.EquipmentRef{
		{Name: "Chain Mail", Quantity: 1},
		{Name: "Shield", Quantity: 1},
	}

	output, err := s.engine.CalculateSheet(s.ctx, &engine.CalculateSheetInput{Draft: draft})
	s.Require().NoError(err)

	s.Equal(18, output.Sheet.ArmorClass)
}

func (s *SheetTestSuite) TestSkillProficienciesAndPassivePerception() {
	draft := s.fighterDraft()
	draft.SkillProficiencies = []entities.Skill{
		entities.SkillAthletics,
		entities.SkillPerception,
	}

	output, err := s.engine.CalculateSheet(s.ctx, &engine.CalculateSheetInput{Draft: draft})
	s.Require().NoError(err)
	sheet := output.Sheet

	s.Equal(4, sheet.SkillModifiers[entities.SkillAthletics])
	s.Equal(2, sheet.SkillModifiers[entities.SkillPerception])
	s.Equal(2, sheet.SkillModifiers[entities.SkillStealth])
	s.Equal(12, sheet.PassivePerception)
}

func (s *SheetTestSuite) TestSpellcasterStats() {
	draft := s.fighterDraft()
	draft.Class = &entities.CharacterClass{
		Name:         "Wizard",
		HitDie:       6,
		SavingThrows: []entities.Ability{entities.AbilityIntelligence, entities.AbilityWisdom},
		Spellcasting: &entities.Spellcasting{
			Ability:       entities.AbilityIntelligence,
			CantripsKnown: 3,
		},
	}

	output, err := s.engine.CalculateSheet(s.ctx, &engine.CalculateSheetInput{Draft: draft})
	s.Require().NoError(err)
	sheet := output.Sheet

	s.Require().NotNil(sheet.Spellcasting)
	s.Equal(entities.AbilityIntelligence, sheet.Spellcasting.Ability)
	s.Equal(11, sheet.Spellcasting.SaveDC)
	s.Equal(3, sheet.Spellcasting.AttackModifier)
	s.Equal(7, sheet.HitPoints)
}

func (s *SheetTestSuite) TestPartialDraft() {
	output, err := s.engine.CalculateSheet(s.ctx, &engine.CalculateSheetInput{
		Draft: &entities.CharacterDraft{Name: "Nameless"},
	})
	s.Require().NoError(err)
	sheet := output.Sheet

	s.Equal("Nameless", sheet.Name)
	s.Equal(int32(1), sheet.Level)
	s.Equal(2, sheet.ProficiencyBonus)
	s.Zero(sheet.HitPoints)
	s.Empty(sheet.SpeciesName)
}

func (s *SheetTestSuite) TestNilInput() {
	_, err := s.engine.CalculateSheet(s.ctx, nil)
	s.Error(err)

	_, err = s.engine.CalculateSheet(s.ctx, &engine.CalculateSheetInput{})
	s.Error(err)
}
