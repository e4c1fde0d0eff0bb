package catalog

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

func baseClasses() []entities.CharacterClass {
	return []entities.CharacterClass{
		{
			Name:           "Fighter",
			HitDie:         10,
			PrimaryAbility: []entities.Ability{entities.AbilityStrength, entities.AbilityDexterity},
			SavingThrows:   []entities.Ability{entities.AbilityStrength, entities.AbilityConstitution},
			ArmorProficiencies: []string{
				"Light armor", "Medium armor", "Heavy armor", "Shields",
			},
			WeaponProficiencies: []string{"Simple weapons", "Martial weapons"},
			SkillChoices: entities.SkillChoice{
				Options: []entities.Skill{
					entities.SkillAcrobatics,
					entities.SkillAnimalHandling,
					entities.SkillAthletics,
					entities.SkillHistory,
					entities.SkillInsight,
					entities.SkillIntimidation,
					entities.SkillPerception,
					entities.SkillSurvival,
				},
				Count: 2,
			},
			StartingEquipment: &entities.StartingEquipment{
				Choices: []entities.EquipmentChoice{
					{
						Description: "(a) chain mail or (b) leather armor, longbow, and 20 arrows",
						Options: [][]entities.EquipmentRef{
							{{Name: "Chain Mail", Quantity: 1}},
							{{Name: "Leather Armor", Quantity: 1}, {Name: "Longbow", Quantity: 1}, {Name: "Arrows", Quantity: 20}},
						},
					},
					{
						Description: "(a) a martial weapon and a shield or (b) two martial weapons",
						Options: [][]entities.EquipmentRef{
							{{Name: "Longsword", Quantity: 1}, {Name: "Shield", Quantity: 1}},
							{{Name: "Longsword", Quantity: 2}},
						},
					},
					{
						Description: "(a) a light crossbow and 20 bolts or (b) two handaxes",
						Options: [][]entities.EquipmentRef{
							{{Name: "Light Crossbow", Quantity: 1}, {Name: "Crossbow Bolts", Quantity: 20}},
							{{Name: "Handaxe", Quantity: 2}},
						},
					},
				},
				Fixed: []entities.EquipmentRef{
					{Name: "Explorer's Pack", Quantity: 1},
				},
			},
			Features: []entities.Feature{
				{Name: "Fighting Style", Description: "You adopt a particular style of fighting as your specialty."},
				{Name: "Second Wind", Description: "On your turn, you can use a bonus action to regain 1d10 + your fighter level hit points. Once per rest."},
			},
			Subclasses: []entities.Subclass{
				{
					Name: "Champion",
					Features: []entities.Feature{
						{Name: "Improved Critical", Description: "Your weapon attacks score a critical hit on a roll of 19 or 20."},
					},
				},
			},
		},
		{
			Name:           "Wizard",
			HitDie:         6,
			PrimaryAbility: []entities.Ability{entities.AbilityIntelligence},
			SavingThrows:   []entities.Ability{entities.AbilityIntelligence, entities.AbilityWisdom},
			WeaponProficiencies: []string{
				"Daggers", "Darts", "Slings", "Quarterstaffs", "Light crossbows",
			},
			SkillChoices: entities.SkillChoice{
				Options: []entities.Skill{
					entities.SkillArcana,
					entities.SkillHistory,
					entities.SkillInsight,
					entities.SkillInvestigation,
					entities.SkillMedicine,
					entities.SkillReligion,
				},
				Count: 2,
			},
			StartingEquipment: &entities.StartingEquipment{
				Choices: []entities.EquipmentChoice{
					{
						Description: "(a) a quarterstaff or (b) a dagger",
						Options: [][]entities.EquipmentRef{
							{{Name: "Quarterstaff", Quantity: 1}},
							{{Name: "Dagger", Quantity: 1}},
						},
					},
					{
						Description: "(a) a scholar's pack or (b) an explorer's pack",
						Options: [][]entities.EquipmentRef{
							{{Name: "Scholar's Pack", Quantity: 1}},
							{{Name: "Explorer's Pack", Quantity: 1}},
						},
					},
				},
				Fixed: []entities.EquipmentRef{
					{Name: "Spellbook", Quantity: 1},
				},
			},
			Features: []entities.Feature{
				{Name: "Arcane Recovery", Description: "Once per day when you finish a short rest, you can recover expended spell slots."},
			},
			Spellcasting: &entities.Spellcasting{
				Ability:        entities.AbilityIntelligence,
				CantripsKnown:  3,
				SpellSlots:     map[int32]int32{1: 2},
				SpellsPrepared: 1,
			},
			Subclasses: []entities.Subclass{
				{
					Name: "School of Evocation",
					Features: []entities.Feature{
						{Name: "Sculpt Spells", Description: "You can create pockets of relative safety within the effects of your evocation spells."},
					},
				},
			},
		},
		{
			Name:           "Rogue",
			HitDie:         8,
			PrimaryAbility: []entities.Ability{entities.AbilityDexterity},
			SavingThrows:   []entities.Ability{entities.AbilityDexterity, entities.AbilityIntelligence},
			ArmorProficiencies: []string{
				"Light armor",
			},
			WeaponProficiencies: []string{
				"Simple weapons", "Hand crossbows", "Longswords", "Rapiers", "Shortswords",
			},
			SkillChoices: entities.SkillChoice{
				Options: []entities.Skill{
					entities.SkillAcrobatics,
					entities.SkillAthletics,
					entities.SkillDeception,
					entities.SkillInsight,
					entities.SkillIntimidation,
					entities.SkillInvestigation,
					entities.SkillPerception,
					entities.SkillPerformance,
					entities.SkillPersuasion,
					entities.SkillSleightOfHand,
					entities.SkillStealth,
				},
				Count: 4,
			},
			StartingEquipment: &entities.StartingEquipment{
				Choices: []entities.EquipmentChoice{
					{
						Description: "(a) a rapier or (b) a shortsword",
						Options: [][]entities.EquipmentRef{
							{{Name: "Rapier", Quantity: 1}},
							{{Name: "Shortsword", Quantity: 1}},
						},
					},
					{
						Description: "(a) a shortbow and quiver of 20 arrows or (b) a shortsword",
						Options: [][]entities.EquipmentRef{
							{{Name: "Shortbow", Quantity: 1}, {Name: "Arrows", Quantity: 20}},
							{{Name: "Shortsword", Quantity: 1}},
						},
					},
				},
				Fixed: []entities.EquipmentRef{
					{Name: "Leather Armor", Quantity: 1},
					{Name: "Dagger", Quantity: 2},
					{Name: "Thieves' Tools", Quantity: 1},
				},
			},
			Features: []entities.Feature{
				{Name: "Expertise", Description: "Choose two of your skill proficiencies; your proficiency bonus is doubled for checks using them."},
				{Name: "Sneak Attack", Description: "Once per turn, deal an extra 1d6 damage to one creature you hit with advantage."},
				{Name: "Thieves' Cant", Description: "You know the secret mix of dialect, jargon, and code of the criminal underworld."},
			},
		},
	}
}

func baseBackgrounds() []entities.Background {
	return []entities.Background{
		{
			Name:               "Criminal",
			AbilityOptions:     []entities.Ability{entities.AbilityDexterity, entities.AbilityConstitution, entities.AbilityIntelligence},
			SkillProficiencies: []entities.Skill{entities.SkillSleightOfHand, entities.SkillStealth},
			ToolProficiency:    "Thieves' Tools",
			Equipment: []entities.EquipmentRef{
				{Name: "Crowbar", Quantity: 1},
				{Name: "Dark Common Clothes", Quantity: 1},
				{Name: "Gold Pieces", Quantity: 15},
			},
			Feature: entities.Feature{
				Name:        "Criminal Contact",
				Description: "You have a reliable and trustworthy contact who acts as your liaison to a network of other criminals.",
			},
			OriginFeat: "Alert",
			PersonalityTraits: []string{
				"I always have a plan for what to do when things go wrong.",
				"The best way to get me to do something is to tell me I can't do it.",
			},
			Ideals: []string{"Freedom. Chains are meant to be broken, as are those who would forge them."},
			Bonds:  []string{"I'm trying to pay off an old debt I owe to a generous benefactor."},
			Flaws:  []string{"When I see something valuable, I can't think about anything but how to steal it."},
		},
		{
			Name:               "Sage",
			AbilityOptions:     []entities.Ability{entities.AbilityConstitution, entities.AbilityIntelligence, entities.AbilityWisdom},
			SkillProficiencies: []entities.Skill{entities.SkillArcana, entities.SkillHistory},
			ToolProficiency:    entities.ToolProficiencyNone,
			Equipment: []entities.EquipmentRef{
				{Name: "Bottle of Ink", Quantity: 1},
				{Name: "Quill", Quantity: 1},
				{Name: "Parchment", Quantity: 10},
				{Name: "Gold Pieces", Quantity: 10},
			},
			Feature: entities.Feature{
				Name:        "Researcher",
				Description: "When you attempt to recall a piece of lore, you often know where and from whom you can obtain it.",
			},
			OriginFeat: "Magic Initiate",
			PersonalityTraits: []string{
				"I use polysyllabic words that convey the impression of great erudition.",
			},
			Ideals: []string{"Knowledge. The path to power and self-improvement is through knowledge."},
			Bonds:  []string{"I have an ancient text that holds terrible secrets that must not fall into the wrong hands."},
			Flaws:  []string{"I am easily distracted by the promise of information."},
		},
		{
			Name:               "Soldier",
			AbilityOptions:     []entities.Ability{entities.AbilityStrength, entities.AbilityDexterity, entities.AbilityConstitution},
			SkillProficiencies: []entities.Skill{entities.SkillAthletics, entities.SkillIntimidation},
			ToolProficiency:    "Gaming Set",
			Equipment: []entities.EquipmentRef{
				{Name: "Insignia of Rank", Quantity: 1},
				{Name: "Deck of Cards", Quantity: 1},
				{Name: "Common Clothes", Quantity: 1},
				{Name: "Gold Pieces", Quantity: 10},
			},
			Feature: entities.Feature{
				Name:        "Military Rank",
				Description: "Soldiers loyal to your former military organization still recognize your authority and influence.",
			},
			OriginFeat: "Savage Attacker",
			PersonalityTraits: []string{
				"I'm always polite and respectful.",
				"I can stare down a hell hound without flinching.",
			},
			Ideals: []string{"Responsibility. I do what I must and obey just authority."},
			Bonds:  []string{"Those who fight beside me are those worth dying for."},
			Flaws:  []string{"I made a terrible mistake in battle that cost many lives, and I would do anything to keep that mistake secret."},
		},
	}
}
