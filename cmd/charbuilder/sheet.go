package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelight/charbuilder/internal/engine"
	"github.com/forgelight/charbuilder/internal/engine/srd"
	"github.com/forgelight/charbuilder/internal/entities"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet <file>",
	Short: "Print the derived character sheet for an exported file",
	Long:  `Decode an exported character file and print every derived statistic: modifiers, hit points, armor class, saves, and skills.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSheet,
}

func runSheet(cmd *cobra.Command, args []string) error {
	draft, err := loadDraftFile(args[0])
	if err != nil {
		return err
	}

	eng := srd.New()
	output, err := eng.CalculateSheet(context.Background(), &engine.CalculateSheetInput{Draft: draft})
	if err != nil {
		return err
	}
	sheet := output.Sheet

	fmt.Printf("%s\n", displayName(draft))
	fmt.Printf("  %s", sheet.SpeciesName)
	if sheet.SubspeciesName != "" {
		fmt.Printf(" (%s)", sheet.SubspeciesName)
	}
	fmt.Printf(" %s %d, %s\n\n", sheet.ClassName, sheet.Level, sheet.BackgroundName)

	for _, ability := range entities.Abilities {
		fmt.Printf("  %s %2d (%+d)  save %+d\n",
			ability,
			sheet.AbilityScores[ability],
			sheet.AbilityModifiers[ability],
			sheet.SavingThrows[ability],
		)
	}

	fmt.Printf("\n  Proficiency Bonus  %+d\n", sheet.ProficiencyBonus)
	fmt.Printf("  Hit Points         %d\n", sheet.HitPoints)
	fmt.Printf("  Armor Class        %d\n", sheet.ArmorClass)
	fmt.Printf("  Initiative         %+d\n", sheet.Initiative)
	fmt.Printf("  Speed              %d ft.\n", sheet.Speed)
	fmt.Printf("  Passive Perception %d\n", sheet.PassivePerception)

	if sheet.Spellcasting != nil {
		fmt.Printf("\n  Spellcasting (%s): save DC %d, attack %+d\n",
			sheet.Spellcasting.Ability,
			sheet.Spellcasting.SaveDC,
			sheet.Spellcasting.AttackModifier,
		)
	}

	fmt.Println("\n  Skills:")
	for _, skill := range entities.Skills {
		fmt.Printf("    %-16s %+d\n", skill, sheet.SkillModifiers[skill])
	}
	return nil
}
