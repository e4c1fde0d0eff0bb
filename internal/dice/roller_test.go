package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelight/charbuilder/internal/dice"
	"github.com/forgelight/charbuilder/internal/errors"
)

func TestRollAbilityScoresStandard(t *testing.T) {
	rolls, err := dice.RollAbilityScores(dice.MethodStandard)
	require.NoError(t, err)
	require.Len(t, rolls, 6)

	for _, roll := range rolls {
		assert.Len(t, roll.Dice, 3)
		assert.Len(t, roll.Dropped, 1)
		assert.GreaterOrEqual(t, roll.Total, int32(3))
		assert.LessOrEqual(t, roll.Total, int32(18))

		sum := int32(0)
		for _, d := range roll.Dice {
			assert.GreaterOrEqual(t, d, int32(1))
			assert.LessOrEqual(t, d, int32(6))
			sum += d
		}
		assert.Equal(t, sum, roll.Total)

		// the dropped die is never higher than any kept die
		for _, kept := range roll.Dice {
			assert.LessOrEqual(t, roll.Dropped[0], kept)
		}
	}
}

func TestRollAbilityScoresClassic(t *testing.T) {
	rolls, err := dice.RollAbilityScores(dice.MethodClassic)
	require.NoError(t, err)
	require.Len(t, rolls, 6)

	for _, roll := range rolls {
		assert.Len(t, roll.Dice, 3)
		assert.Empty(t, roll.Dropped)
		assert.GreaterOrEqual(t, roll.Total, int32(3))
		assert.LessOrEqual(t, roll.Total, int32(18))
	}
}

func TestRollAbilityScoresUnknownMethod(t *testing.T) {
	_, err := dice.RollAbilityScores("2d10_plus_hope")
	assert.True(t, errors.IsInvalidArgument(err))
}
