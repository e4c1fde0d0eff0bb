package stats

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

// EquippedArmor describes the armor a character is wearing for AC
// purposes.
type EquippedArmor struct {
	Name   string
	BaseAC int
	// DexApplies controls whether the Dexterity modifier is added at all;
	// MaxDexBonus caps it when positive.
	DexApplies  bool
	MaxDexBonus int
}

// ArmorClassOptions bundles everything the AC computation needs. A nil
// Armor means unarmored; ClassName selects an unarmored-defense formula
// when the class has one.
type ArmorClassOptions struct {
	Armor            *EquippedArmor
	Shield           bool
	ClassName        string
	AbilityModifiers map[entities.Ability]int
}

// unarmoredDefense maps class names to the secondary ability added on top
// of 10 + DEX when wearing no armor.
var unarmoredDefense = map[string]entities.Ability{
	"Barbarian": entities.AbilityConstitution,
	"Monk":      entities.AbilityWisdom,
}

// armorTable holds AC profiles for armor known only by name, used when
// the equipped item carries no explicit base AC.
var armorTable = map[string]EquippedArmor{
	"Leather Armor":   {BaseAC: 11, DexApplies: true},
	"Studded Leather": {BaseAC: 12, DexApplies: true},
	"Hide Armor":      {BaseAC: 12, DexApplies: true, MaxDexBonus: 2},
	"Chain Shirt":     {BaseAC: 13, DexApplies: true, MaxDexBonus: 2},
	"Scale Mail":      {BaseAC: 14, DexApplies: true, MaxDexBonus: 2},
	"Breastplate":     {BaseAC: 14, DexApplies: true, MaxDexBonus: 2},
	"Half Plate":      {BaseAC: 15, DexApplies: true, MaxDexBonus: 2},
	"Chain Mail":      {BaseAC: 16},
	"Plate Armor":     {BaseAC: 18},
}

// ArmorByName returns the AC profile for a named armor, matching the item
// name exactly.
func ArmorByName(name string) (EquippedArmor, bool) {
	profile, ok := armorTable[name]
	if ok {
		profile.Name = name
	}
	return profile, ok
}

// ArmorClass computes armor class from the given options.
//
// Unarmored: 10 + DEX mod, plus the class's unarmored-defense secondary
// ability modifier when it has one. Armored: the armor's base AC plus the
// DEX modifier when it applies, capped by MaxDexBonus. A shield adds 2
// either way.
func ArmorClass(opts ArmorClassOptions) int {
	mods := opts.AbilityModifiers
	dexMod := mods[entities.AbilityDexterity]

	ac := 0
	if opts.Armor == nil {
		ac = 10 + dexMod
		if secondary, ok := unarmoredDefense[opts.ClassName]; ok {
			ac += mods[secondary]
		}
	} else {
		armor := *opts.Armor
		if armor.BaseAC == 0 {
			if profile, ok := ArmorByName(armor.Name); ok {
				profile.Name = armor.Name
				armor = profile
			} else {
				armor.BaseAC = 10
				armor.DexApplies = true
			}
		}

		ac = armor.BaseAC
		if armor.DexApplies {
			applied := dexMod
			if armor.MaxDexBonus > 0 && applied > armor.MaxDexBonus {
				applied = armor.MaxDexBonus
			}
			ac += applied
		}
	}

	if opts.Shield {
		ac += 2
	}
	return ac
}
