package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/rulebook/stats"
)

func TestProficiencyBonus(t *testing.T) {
	cases := []struct {
		level    int32
		expected int
	}{
		{-3, 2},
		{0, 2},
		{1, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{12, 4},
		{13, 5},
		{16, 5},
		{17, 6},
		{20, 6},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, stats.ProficiencyBonus(tc.level), "level %d", tc.level)
	}
}

func TestHitPoints(t *testing.T) {
	assert.Equal(t, 11, stats.HitPoints(10, 1))
	assert.Equal(t, 6, stats.HitPoints(6, 0))
	assert.Equal(t, 4, stats.HitPoints(6, -2))
	assert.Equal(t, 1, stats.HitPoints(6, -10))
}

func TestSkillAbilities(t *testing.T) {
	require.Len(t, stats.SkillAbilities, 18)

	assert.Equal(t, entities.AbilityStrength, stats.SkillAbilities[entities.SkillAthletics])
	assert.Equal(t, entities.AbilityDexterity, stats.SkillAbilities[entities.SkillStealth])
	assert.Equal(t, entities.AbilityIntelligence, stats.SkillAbilities[entities.SkillArcana])
	assert.Equal(t, entities.AbilityWisdom, stats.SkillAbilities[entities.SkillPerception])
	assert.Equal(t, entities.AbilityCharisma, stats.SkillAbilities[entities.SkillPersuasion])

	// every known skill has a governing ability
	for _, skill := range entities.Skills {
		_, ok := stats.SkillAbilities[skill]
		assert.True(t, ok, "skill %s", skill)
	}
}

func TestAllSkillModifiers(t *testing.T) {
	mods := map[entities.Ability]int{
		entities.AbilityStrength:     2,
		entities.AbilityDexterity:    2,
		entities.AbilityConstitution: 1,
		entities.AbilityIntelligence: 1,
		entities.AbilityWisdom:       0,
		entities.AbilityCharisma:     -1,
	}
	proficient := []entities.Skill{entities.SkillAthletics, entities.SkillStealth}

	skillMods := stats.AllSkillModifiers(mods, proficient, 2)

	require.Len(t, skillMods, 18)
	assert.Equal(t, 4, skillMods[entities.SkillAthletics])
	assert.Equal(t, 4, skillMods[entities.SkillStealth])
	assert.Equal(t, 2, skillMods[entities.SkillAcrobatics])
	assert.Equal(t, 0, skillMods[entities.SkillPerception])
	assert.Equal(t, -1, skillMods[entities.SkillDeception])
}

func TestSavingThrowModifier(t *testing.T) {
	assert.Equal(t, 4, stats.SavingThrowModifier(2, true, 2))
	assert.Equal(t, 2, stats.SavingThrowModifier(2, false, 2))
	assert.Equal(t, 1, stats.SavingThrowModifier(-1, true, 2))
}

func TestSpellcastingStats(t *testing.T) {
	assert.Equal(t, 13, stats.SpellSaveDC(3, 2))
	assert.Equal(t, 5, stats.SpellAttackModifier(3, 2))
}

func TestPassivePerception(t *testing.T) {
	assert.Equal(t, 10, stats.PassivePerception(0, false, 2))
	assert.Equal(t, 13, stats.PassivePerception(1, true, 2))
	assert.Equal(t, 8, stats.PassivePerception(-2, false, 2))
}

func TestInitiative(t *testing.T) {
	assert.Equal(t, 3, stats.Initiative(3))
	assert.Equal(t, -1, stats.Initiative(-1))
}

func TestArmorClassUnarmored(t *testing.T) {
	mods := map[entities.Ability]int{
		entities.AbilityDexterity:    2,
		entities.AbilityConstitution: 3,
		entities.AbilityWisdom:       1,
	}

	t.Run("plain", func(t *testing.T) {
		ac := stats.ArmorClass(stats.ArmorClassOptions{ClassName: "Fighter", AbilityModifiers: mods})
		assert.Equal(t, 12, ac)
	})

	t.Run("barbarian adds constitution", func(t *testing.T) {
		ac := stats.ArmorClass(stats.ArmorClassOptions{ClassName: "Barbarian", AbilityModifiers: mods})
		assert.Equal(t, 15, ac)
	})

	t.Run("monk adds wisdom", func(t *testing.T) {
		ac := stats.ArmorClass(stats.ArmorClassOptions{ClassName: "Monk", AbilityModifiers: mods})
		assert.Equal(t, 13, ac)
	})

	t.Run("shield", func(t *testing.T) {
		ac := stats.ArmorClass(stats.ArmorClassOptions{ClassName: "Fighter", AbilityModifiers: mods, Shield: true})
		assert.Equal(t, 14, ac)
	})
}

func TestArmorClassArmored(t *testing.T) {
	mods := map[entities.Ability]int{entities.AbilityDexterity: 3}

	t.Run("light armor uses full dex", func(t *testing.T) {
		armor := &stats.EquippedArmor{Name: "Leather Armor", BaseAC: 11, DexApplies: true}
		ac := stats.ArmorClass(stats.ArmorClassOptions{Armor: armor, AbilityModifiers: mods})
		assert.Equal(t, 14, ac)
	})

	t.Run("medium armor caps dex", func(t *testing.T) {
		armor := &stats.EquippedArmor{Name: "Scale Mail", BaseAC: 14, DexApplies: true, MaxDexBonus: 2}
		ac := stats.ArmorClass(stats.ArmorClassOptions{Armor: armor, AbilityModifiers: mods})
		assert.Equal(t, 16, ac)
	})

	t.Run("heavy armor ignores dex", func(t *testing.T) {
		armor := &stats.EquippedArmor{Name: "Chain Mail", BaseAC: 16}
		ac := stats.ArmorClass(stats.ArmorClassOptions{Armor: armor, AbilityModifiers: mods})
		assert.Equal(t, 16, ac)
	})

	t.Run("name-only armor resolves from table", func(t *testing.T) {
		armor := &stats.EquippedArmor{Name: "Half Plate"}
		ac := stats.ArmorClass(stats.ArmorClassOptions{Armor: armor, AbilityModifiers: mods})
		assert.Equal(t, 17, ac)
	})

	t.Run("unknown armor defaults to 10 plus dex", func(t *testing.T) {
		armor := &stats.EquippedArmor{Name: "Ceremonial Robes"}
		ac := stats.ArmorClass(stats.ArmorClassOptions{Armor: armor, AbilityModifiers: mods})
		assert.Equal(t, 13, ac)
	})

	t.Run("armor and shield", func(t *testing.T) {
		armor := &stats.EquippedArmor{Name: "Chain Mail", BaseAC: 16}
		ac := stats.ArmorClass(stats.ArmorClassOptions{Armor: armor, Shield: true, AbilityModifiers: mods})
		assert.Equal(t, 18, ac)
	})
}

func TestArmorByName(t *testing.T) {
	profile, ok := stats.ArmorByName("Chain Shirt")
	require.True(t, ok)
	assert.Equal(t, 13, profile.BaseAC)
	assert.True(t, profile.DexApplies)
	assert.Equal(t, 2, profile.MaxDexBonus)

	_, ok = stats.ArmorByName("Cardboard Box")
	assert.False(t, ok)
}
