package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelight/charbuilder/internal/dice"
)

var rollMethod string

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a set of six ability scores",
	Long:  `Roll six ability scores for the manual generation method. Methods: 4d6_drop_lowest (default), 3d6.`,
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollMethod, "method", dice.MethodStandard, "rolling method")
}

func runRoll(cmd *cobra.Command, _ []string) error {
	rolls, err := dice.RollAbilityScores(rollMethod)
	if err != nil {
		return err
	}

	for i, roll := range rolls {
		if len(roll.Dropped) > 0 {
			fmt.Printf("Score %d: %2d  (rolled %v, dropped %v)\n", i+1, roll.Total, roll.Dice, roll.Dropped)
			continue
		}
		fmt.Printf("Score %d: %2d  (rolled %v)\n", i+1, roll.Total, roll.Dice)
	}
	return nil
}
