package abilities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/rulebook/abilities"
)

func TestModifier(t *testing.T) {
	cases := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{3, -4},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{13, 1},
		{14, 2},
		{15, 2},
		{16, 3},
		{18, 4},
		{20, 5},
		{30, 10},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, abilities.Modifier(tc.score), "score %d", tc.score)
	}
}

func TestAllModifiers(t *testing.T) {
	scores := entities.AbilityScores{
		entities.AbilityStrength:     15,
		entities.AbilityDexterity:    14,
		entities.AbilityConstitution: 13,
		entities.AbilityIntelligence: 12,
		entities.AbilityWisdom:       10,
		entities.AbilityCharisma:     8,
	}

	mods := abilities.AllModifiers(scores)

	require.Len(t, mods, 6)
	assert.Equal(t, 2, mods[entities.AbilityStrength])
	assert.Equal(t, 2, mods[entities.AbilityDexterity])
	assert.Equal(t, 1, mods[entities.AbilityConstitution])
	assert.Equal(t, 1, mods[entities.AbilityIntelligence])
	assert.Equal(t, 0, mods[entities.AbilityWisdom])
	assert.Equal(t, -1, mods[entities.AbilityCharisma])
}

func TestPointBuyCost(t *testing.T) {
	costs := map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}
	for score, expected := range costs {
		assert.Equal(t, expected, abilities.PointBuyCost(score), "score %d", score)
	}

	assert.Equal(t, abilities.InvalidCost, abilities.PointBuyCost(7))
	assert.Equal(t, abilities.InvalidCost, abilities.PointBuyCost(16))
	assert.Equal(t, abilities.InvalidCost, abilities.PointBuyCost(0))
}

func TestIsValidPointBuy(t *testing.T) {
	t.Run("exact budget", func(t *testing.T) {
		// 9+7+5+4+2+0 = 27
		scores := entities.AbilityScores{
			entities.AbilityStrength:     15,
			entities.AbilityDexterity:    14,
			entities.AbilityConstitution: 13,
			entities.AbilityIntelligence: 12,
			entities.AbilityWisdom:       10,
			entities.AbilityCharisma:     8,
		}
		assert.True(t, abilities.IsValidPointBuy(scores))
		assert.Equal(t, 27, abilities.TotalPointsSpent(scores))
	})

	t.Run("under budget", func(t *testing.T) {
		scores := entities.AbilityScores{
			entities.AbilityStrength:     8,
			entities.AbilityDexterity:    8,
			entities.AbilityConstitution: 8,
			entities.AbilityIntelligence: 8,
			entities.AbilityWisdom:       8,
			entities.AbilityCharisma:     8,
		}
		assert.True(t, abilities.IsValidPointBuy(scores))
		assert.Equal(t, 0, abilities.TotalPointsSpent(scores))
	})

	t.Run("over budget", func(t *testing.T) {
		// all 15s: 6*9 = 54
		scores := entities.AbilityScores{
			entities.AbilityStrength:     15,
			entities.AbilityDexterity:    15,
			entities.AbilityConstitution: 15,
			entities.AbilityIntelligence: 15,
			entities.AbilityWisdom:       15,
			entities.AbilityCharisma:     15,
		}
		assert.False(t, abilities.IsValidPointBuy(scores))
	})

	t.Run("score below range", func(t *testing.T) {
		scores := entities.AbilityScores{
			entities.AbilityStrength:     7,
			entities.AbilityDexterity:    14,
			entities.AbilityConstitution: 13,
			entities.AbilityIntelligence: 12,
			entities.AbilityWisdom:       10,
			entities.AbilityCharisma:     8,
		}
		assert.False(t, abilities.IsValidPointBuy(scores))
	})

	t.Run("score above range", func(t *testing.T) {
		scores := entities.AbilityScores{
			entities.AbilityStrength:     16,
			entities.AbilityDexterity:    8,
			entities.AbilityConstitution: 8,
			entities.AbilityIntelligence: 8,
			entities.AbilityWisdom:       8,
			entities.AbilityCharisma:     8,
		}
		assert.False(t, abilities.IsValidPointBuy(scores))
	})
}

func TestStandardArray(t *testing.T) {
	assert.Equal(t, []int{15, 14, 13, 12, 10, 8}, abilities.StandardArray())

	// callers must not be able to corrupt the array
	arr := abilities.StandardArray()
	arr[0] = 99
	assert.Equal(t, []int{15, 14, 13, 12, 10, 8}, abilities.StandardArray())
}

func TestIsValidStandardArray(t *testing.T) {
	t.Run("any assignment order", func(t *testing.T) {
		scores := entities.AbilityScores{
			entities.AbilityStrength:     8,
			entities.AbilityDexterity:    10,
			entities.AbilityConstitution: 12,
			entities.AbilityIntelligence: 13,
			entities.AbilityWisdom:       14,
			entities.AbilityCharisma:     15,
		}
		assert.True(t, abilities.IsValidStandardArray(scores))
	})

	t.Run("duplicate value", func(t *testing.T) {
		scores := entities.AbilityScores{
			entities.AbilityStrength:     15,
			entities.AbilityDexterity:    15,
			entities.AbilityConstitution: 13,
			entities.AbilityIntelligence: 12,
			entities.AbilityWisdom:       10,
			entities.AbilityCharisma:     8,
		}
		assert.False(t, abilities.IsValidStandardArray(scores))
	})

	t.Run("wrong value", func(t *testing.T) {
		scores := entities.AbilityScores{
			entities.AbilityStrength:     15,
			entities.AbilityDexterity:    14,
			entities.AbilityConstitution: 13,
			entities.AbilityIntelligence: 12,
			entities.AbilityWisdom:       10,
			entities.AbilityCharisma:     9,
		}
		assert.False(t, abilities.IsValidStandardArray(scores))
	})
}

func TestApplyBonuses(t *testing.T) {
	base := entities.AbilityScores{
		entities.AbilityStrength:     15,
		entities.AbilityDexterity:    14,
		entities.AbilityConstitution: 13,
		entities.AbilityIntelligence: 12,
		entities.AbilityWisdom:       10,
		entities.AbilityCharisma:     8,
	}
	bonuses := entities.AbilityBonuses{
		entities.AbilityStrength:     2,
		entities.AbilityConstitution: 1,
	}

	result := abilities.ApplyBonuses(base, bonuses)

	assert.Equal(t, 17, result[entities.AbilityStrength])
	assert.Equal(t, 14, result[entities.AbilityDexterity])
	assert.Equal(t, 14, result[entities.AbilityConstitution])
	assert.Equal(t, 8, result[entities.AbilityCharisma])

	// base map untouched
	assert.Equal(t, 15, base[entities.AbilityStrength])
}

func TestApplyBonusesClamps(t *testing.T) {
	base := entities.AbilityScores{
		entities.AbilityStrength:     20,
		entities.AbilityDexterity:    1,
		entities.AbilityConstitution: 10,
		entities.AbilityIntelligence: 10,
		entities.AbilityWisdom:       10,
		entities.AbilityCharisma:     10,
	}
	bonuses := entities.AbilityBonuses{
		entities.AbilityStrength:  2,
		entities.AbilityDexterity: -3,
	}

	result := abilities.ApplyBonuses(base, bonuses)

	assert.Equal(t, 20, result[entities.AbilityStrength])
	assert.Equal(t, 1, result[entities.AbilityDexterity])
}
