// Package abilities implements ability score math: modifiers, point-buy
// costing and validation, the standard array, and bonus application.
package abilities

import (
	"sort"

	"github.com/forgelight/charbuilder/internal/entities"
)

// Point-buy constants
const (
	PointBuyBudget   = 27
	PointBuyMinScore = 8
	PointBuyMaxScore = 15

	// InvalidCost is the sentinel cost for a score outside the point-buy
	// range. Totals that include it are meaningless; validity is always a
	// separate range check.
	InvalidCost = -1
)

// pointBuyCosts is the fixed 5e point-buy cost table over [8,15].
var pointBuyCosts = map[int]int{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
}

// standardArray is the fixed multiset of scores for the standard-array
// method.
var standardArray = [6]int{15, 14, 13, 12, 10, 8}

// Modifier returns floor((score-10)/2) for any integer score. Inputs are
// not range-checked; only effective scores are clamped, and that happens
// in ApplyBonuses.
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// AllModifiers maps each of the six abilities through Modifier. Missing
// keys read as a score of zero.
func AllModifiers(scores entities.AbilityScores) map[entities.Ability]int {
	mods := make(map[entities.Ability]int, len(entities.Abilities))
	for _, a := range entities.Abilities {
		mods[a] = Modifier(scores[a])
	}
	return mods
}

// PointBuyCost returns the cost of a single score, or InvalidCost for
// scores outside [8,15].
func PointBuyCost(score int) int {
	if cost, ok := pointBuyCosts[score]; ok {
		return cost
	}
	return InvalidCost
}

// TotalPointsSpent sums the point-buy cost of all six scores. Invalid
// scores contribute InvalidCost, so the total of an invalid allocation can
// look affordable or even negative; callers must not infer validity from
// the total alone.
func TotalPointsSpent(scores entities.AbilityScores) int {
	total := 0
	for _, a := range entities.Abilities {
		total += PointBuyCost(scores[a])
	}
	return total
}

// IsValidPointBuy reports whether all six scores are within [8,15] and the
// total cost fits the 27-point budget.
func IsValidPointBuy(scores entities.AbilityScores) bool {
	for _, a := range entities.Abilities {
		score := scores[a]
		if score < PointBuyMinScore || score > PointBuyMaxScore {
			return false
		}
	}
	total := TotalPointsSpent(scores)
	return total >= 0 && total <= PointBuyBudget
}

// StandardArray returns the fixed standard-array scores, highest first.
func StandardArray() []int {
	arr := make([]int, len(standardArray))
	copy(arr, standardArray[:])
	return arr
}

// IsValidStandardArray reports whether the six scores form exactly the
// standard-array multiset, in any assignment order.
func IsValidStandardArray(scores entities.AbilityScores) bool {
	assigned := make([]int, 0, len(entities.Abilities))
	for _, a := range entities.Abilities {
		assigned = append(assigned, scores[a])
	}
	sort.Ints(assigned)

	expected := StandardArray()
	sort.Ints(expected)

	for i := range expected {
		if assigned[i] != expected[i] {
			return false
		}
	}
	return true
}

// ApplyBonuses adds each bonus to its base score and clamps the result to
// [1,20]. Absent bonuses count as zero.
func ApplyBonuses(base entities.AbilityScores, bonuses entities.AbilityBonuses) entities.AbilityScores {
	result := make(entities.AbilityScores, len(entities.Abilities))
	for _, a := range entities.Abilities {
		score := base[a] + bonuses[a]
		if score > 20 {
			score = 20
		}
		if score < 1 {
			score = 1
		}
		result[a] = score
	}
	return result
}
