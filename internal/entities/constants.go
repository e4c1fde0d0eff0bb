package entities

// Ability identifies one of the six core ability scores.
type Ability string

// The six abilities. This set is closed and never extended.
const (
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Abilities lists all six abilities in display order. Validation and
// derived-stat code iterates this slice so output ordering stays stable.
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Skill identifies one of the 18 SRD skills by display name.
type Skill string

// Skill constants
const (
	SkillAcrobatics     Skill = "Acrobatics"
	SkillAnimalHandling Skill = "Animal Handling"
	SkillArcana         Skill = "Arcana"
	SkillAthletics      Skill = "Athletics"
	SkillDeception      Skill = "Deception"
	SkillHistory        Skill = "History"
	SkillInsight        Skill = "Insight"
	SkillIntimidation   Skill = "Intimidation"
	SkillInvestigation  Skill = "Investigation"
	SkillMedicine       Skill = "Medicine"
	SkillNature         Skill = "Nature"
	SkillPerception     Skill = "Perception"
	SkillPerformance    Skill = "Performance"
	SkillPersuasion     Skill = "Persuasion"
	SkillReligion       Skill = "Religion"
	SkillSleightOfHand  Skill = "Sleight of Hand"
	SkillStealth        Skill = "Stealth"
	SkillSurvival       Skill = "Survival"
)

// Skills lists all 18 skills in alphabetical display order.
var Skills = []Skill{
	SkillAcrobatics,
	SkillAnimalHandling,
	SkillArcana,
	SkillAthletics,
	SkillDeception,
	SkillHistory,
	SkillInsight,
	SkillIntimidation,
	SkillInvestigation,
	SkillMedicine,
	SkillNature,
	SkillPerception,
	SkillPerformance,
	SkillPersuasion,
	SkillReligion,
	SkillSleightOfHand,
	SkillStealth,
	SkillSurvival,
}

// IsKnownSkill reports whether s is one of the 18 SRD skills.
func IsKnownSkill(s Skill) bool {
	for _, known := range Skills {
		if known == s {
			return true
		}
	}
	return false
}

// ScoreMethod is the ability score generation method chosen during the
// ability scores step.
type ScoreMethod string

// Ability score generation methods
const (
	MethodStandardArray ScoreMethod = "standard-array"
	MethodPointBuy      ScoreMethod = "point-buy"
	MethodManual        ScoreMethod = "manual"
)

// Size categories for species
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
)

// ToolProficiencyNone is the sentinel a background uses when it grants no
// tool proficiency.
const ToolProficiencyNone = "None"

// Creation step identifiers
const (
	StepSpecies       = "species"
	StepClass         = "class"
	StepAbilityScores = "ability-scores"
	StepBackground    = "background"
	StepEquipment     = "equipment"
)
