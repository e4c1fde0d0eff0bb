// Package catalog holds the built-in content the wizard offers when no
// live catalog source is configured: a small SRD subset plus the
// optional expansion packs that can be toggled on.
package catalog

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

// BaseContent returns the always-available catalog. Callers get a fresh
// value each time; catalog records are treated as immutable by
// convention.
func BaseContent() entities.BaseContent {
	return entities.BaseContent{
		Species:     baseSpecies(),
		Classes:     baseClasses(),
		Backgrounds: baseBackgrounds(),
	}
}

// Packs returns the expansion packs known to this build.
func Packs() []entities.ExpansionPack {
	return []entities.ExpansionPack{
		{
			ID:          "forgotten-bloodlines",
			Name:        "Forgotten Bloodlines",
			Description: "Rare ancestries from the frontier.",
			Species: []entities.Species{
				{
					Name:  "Orc",
					Speed: 30,
					Size:  entities.SizeMedium,
					Traits: []entities.Trait{
						{Name: "Relentless Endurance", Description: "When reduced to 0 hit points but not killed outright, you drop to 1 hit point instead. Once per long rest."},
						{Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
					},
					Languages: []string{"Common", "Orc"},
					AbilityBonuses: entities.AbilityBonuses{
						entities.AbilityStrength:     2,
						entities.AbilityConstitution: 1,
					},
				},
			},
		},
		{
			ID:          "gloaming-trades",
			Name:        "Gloaming Trades",
			Description: "Backgrounds from the night markets.",
			Backgrounds: []entities.Background{
				{
					Name:               "Smuggler",
					AbilityOptions:     []entities.Ability{entities.AbilityDexterity, entities.AbilityCharisma, entities.AbilityWisdom},
					SkillProficiencies: []entities.Skill{entities.SkillDeception, entities.SkillStealth},
					ToolProficiency:    "Vehicles (Water)",
					Equipment: []entities.EquipmentRef{
						{Name: "Fine Clothes", Quantity: 1},
						{Name: "Forged Papers", Quantity: 1},
						{Name: "Gold Pieces", Quantity: 15},
					},
					Feature: entities.Feature{
						Name:        "Down Low",
						Description: "You can always find someone willing to move goods or people without questions.",
					},
					OriginFeat: "Skilled",
				},
			},
			Equipment: []entities.EquipmentRef{
				{Name: "Smuggler's Cache", Quantity: 1},
			},
		},
	}
}

func baseSpecies() []entities.Species {
	return []entities.Species{
		{
			Name:  "Human",
			Speed: 30,
			Size:  entities.SizeMedium,
			Traits: []entities.Trait{
				{Name: "Versatile", Description: "Humans adapt quickly, gaining broad aptitude rather than specialized gifts."},
			},
			Languages: []string{"Common", "One extra language of your choice"},
		},
		{
			Name:  "Elf",
			Speed: 30,
			Size:  entities.SizeMedium,
			Traits: []entities.Trait{
				{Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
				{Name: "Keen Senses", Description: "You have proficiency in the Perception skill."},
				{Name: "Fey Ancestry", Description: "You have advantage on saving throws against being charmed, and magic cannot put you to sleep."},
				{Name: "Trance", Description: "You do not need to sleep; you meditate deeply for 4 hours a day instead."},
			},
			Languages: []string{"Common", "Elvish"},
			AbilityBonuses: entities.AbilityBonuses{
				entities.AbilityDexterity: 2,
			},
			Subspecies: []entities.Subspecies{
				{
					Name: "High Elf",
					Traits: []entities.Trait{
						{Name: "Cantrip", Description: "You know one cantrip of your choice from the wizard spell list. Intelligence is your spellcasting ability for it."},
						{Name: "Extra Language", Description: "You can speak, read, and write one extra language of your choice."},
					},
					AbilityBonuses: entities.AbilityBonuses{
						entities.AbilityIntelligence: 1,
					},
				},
				{
					Name: "Wood Elf",
					Traits: []entities.Trait{
						{Name: "Fleet of Foot", Description: "Your base walking speed increases to 35 feet."},
						{Name: "Mask of the Wild", Description: "You can attempt to hide even when only lightly obscured by natural phenomena."},
					},
					AbilityBonuses: entities.AbilityBonuses{
						entities.AbilityWisdom: 1,
					},
					Speed: 35,
				},
			},
		},
		{
			Name:  "Dwarf",
			Speed: 25,
			Size:  entities.SizeMedium,
			Traits: []entities.Trait{
				{Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
				{Name: "Dwarven Resilience", Description: "You have advantage on saving throws against poison and resistance against poison damage."},
				{Name: "Stonecunning", Description: "You add double your proficiency bonus to History checks related to stonework."},
			},
			Languages: []string{"Common", "Dwarvish"},
			AbilityBonuses: entities.AbilityBonuses{
				entities.AbilityConstitution: 2,
			},
			Subspecies: []entities.Subspecies{
				{
					Name: "Hill Dwarf",
					Traits: []entities.Trait{
						{Name: "Dwarven Toughness", Description: "Your hit point maximum increases by 1, and it increases by 1 every time you gain a level."},
					},
					AbilityBonuses: entities.AbilityBonuses{
						entities.AbilityWisdom: 1,
					},
				},
				{
					Name: "Mountain Dwarf",
					Traits: []entities.Trait{
						{Name: "Dwarven Armor Training", Description: "You have proficiency with light and medium armor."},
					},
					AbilityBonuses: entities.AbilityBonuses{
						entities.AbilityStrength: 2,
					},
				},
			},
		},
		{
			Name:  "Halfling",
			Speed: 25,
			Size:  entities.SizeSmall,
			Traits: []entities.Trait{
				{Name: "Lucky", Description: "When you roll a 1 on an attack roll, ability check, or saving throw, you can reroll and must use the new roll."},
				{Name: "Brave", Description: "You have advantage on saving throws against being frightened."},
				{Name: "Halfling Nimbleness", Description: "You can move through the space of any creature that is of a size larger than yours."},
			},
			Languages: []string{"Common", "Halfling"},
			AbilityBonuses: entities.AbilityBonuses{
				entities.AbilityDexterity: 2,
			},
		},
	}
}
