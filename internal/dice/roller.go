// Package dice rolls ability score sets for the manual generation
// method.
package dice

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/forgelight/charbuilder/internal/errors"
)

// Rolling methods
const (
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"
)

// AbilityRoll is one rolled ability score with its kept and dropped dice.
type AbilityRoll struct {
	Dice    []int32
	Dropped []int32
	Total   int32
}

// RollAbilityScores rolls six ability scores with the given method.
func RollAbilityScores(method string) ([]AbilityRoll, error) {
	rolls := make([]AbilityRoll, 0, 6)
	for i := 0; i < 6; i++ {
		var (
			roll AbilityRoll
			err  error
		)
		switch method {
		case MethodStandard:
			roll, err = rollOnce(4, 6, 1)
		case MethodClassic:
			roll, err = rollOnce(3, 6, 0)
		default:
			return nil, errors.InvalidArgumentf("unknown rolling method: %s", method)
		}
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

// rollOnce rolls count dice of the given size and drops the lowest
// dropLowest of them.
func rollOnce(count, size, dropLowest int) (AbilityRoll, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return AbilityRoll{}, errors.Wrapf(err, "failed to create dice roll")
	}

	total := roll.GetValue()
	values := parseDiceValues(roll.GetDescription())

	if dropLowest <= 0 || len(values) <= dropLowest {
		return AbilityRoll{Dice: values, Total: int32(total)}, nil
	}

	sorted := make([]int32, len(values))
	copy(sorted, values)
	for i := 0; i < len(sorted); i++ {
		minIdx := i
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[minIdx] {
				minIdx = j
			}
		}
		sorted[i], sorted[minIdx] = sorted[minIdx], sorted[i]
	}

	dropped := sorted[:dropLowest]
	kept := sorted[dropLowest:]

	keptTotal := int32(0)
	for _, d := range kept {
		keptTotal += d
	}

	return AbilityRoll{Dice: kept, Dropped: dropped, Total: keptTotal}, nil
}

// parseDiceValues extracts the individual dice from a toolkit roll
// description, which looks like "+4d6[3,4,1,6]=14". The toolkit does not
// expose the individual values directly.
func parseDiceValues(description string) []int32 {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var values []int32
	for _, part := range strings.Split(description[start+1:end], ",") {
		if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			values = append(values, int32(v))
		}
	}
	return values
}
