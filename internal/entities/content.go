package entities

// AbilityScores is the full set of raw ability scores keyed by ability.
// A draft may hold a partial map mid-edit; validators check that all six
// keys are present before applying method-specific rules.
type AbilityScores map[Ability]int

// AbilityBonuses is a partial set of ability score deltas. Absent keys
// mean a bonus of zero.
type AbilityBonuses map[Ability]int

// Trait is a named species or subspecies feature.
type Trait struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Subspecies is a finer-grained variant of a species. Its traits append to
// the parent's, its ability bonuses stack with the parent's, and its speed
// (when non-zero) overrides the parent's.
type Subspecies struct {
	Name           string         `json:"name"`
	Traits         []Trait        `json:"traits,omitempty"`
	AbilityBonuses AbilityBonuses `json:"abilityBonuses,omitempty"`
	// Speed overrides the parent species speed when greater than zero.
	Speed int32 `json:"speed,omitempty"`
}

// Species is a selectable ancestry from the base catalog or an expansion
// pack. Catalog records are immutable once loaded; drafts reference them.
type Species struct {
	Name           string         `json:"name"`
	Speed          int32          `json:"speed"`
	Size           string         `json:"size"`
	Traits         []Trait        `json:"traits,omitempty"`
	Languages      []string       `json:"languages,omitempty"`
	Subspecies     []Subspecies   `json:"subspecies,omitempty"`
	AbilityBonuses AbilityBonuses `json:"abilityBonuses,omitempty"`
}

// RequiresSubspecies reports whether selecting this species also requires
// selecting one of its subspecies.
func (s *Species) RequiresSubspecies() bool {
	return s != nil && len(s.Subspecies) > 0
}

// EquipmentRef is a concrete equipment item with a quantity.
type EquipmentRef struct {
	Name     string `json:"name"`
	Quantity int32  `json:"quantity"`
}

// EquipmentChoice is one starting-equipment decision a class offers, e.g.
// "(a) a greataxe or (b) any martial melee weapon".
type EquipmentChoice struct {
	Description string           `json:"description"`
	Options     [][]EquipmentRef `json:"options"`
}

// StartingEquipment is a class's starting equipment configuration.
type StartingEquipment struct {
	Choices []EquipmentChoice `json:"choices,omitempty"`
	Fixed   []EquipmentRef    `json:"fixed,omitempty"`
}

// SkillChoice describes the skill proficiency menu a class offers.
type SkillChoice struct {
	Options []Skill `json:"options"`
	Count   int32   `json:"count"`
}

// Feature is a named class or background feature.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Spellcasting holds a class's level-1 spellcasting parameters.
type Spellcasting struct {
	Ability        Ability         `json:"ability"`
	CantripsKnown  int32           `json:"cantripsKnown"`
	SpellSlots     map[int32]int32 `json:"spellSlots,omitempty"`
	SpellsPrepared int32           `json:"spellsPrepared,omitempty"`
	PactMagic      bool            `json:"isPactMagic,omitempty"`
}

// Subclass is a specialization of a class with its own features and,
// for some classes, its own spellcasting.
type Subclass struct {
	Name         string        `json:"name"`
	Features     []Feature     `json:"features,omitempty"`
	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`
}

// CharacterClass is a selectable class from the base catalog or an
// expansion pack.
type CharacterClass struct {
	Name                string             `json:"name"`
	HitDie              int32              `json:"hitDie"`
	PrimaryAbility      []Ability          `json:"primaryAbility,omitempty"`
	SavingThrows        []Ability          `json:"savingThrows"`
	ArmorProficiencies  []string           `json:"armorProficiencies,omitempty"`
	WeaponProficiencies []string           `json:"weaponProficiencies,omitempty"`
	SkillChoices        SkillChoice        `json:"skillChoices"`
	StartingEquipment   *StartingEquipment `json:"startingEquipment,omitempty"`
	Features            []Feature          `json:"features,omitempty"`
	Spellcasting        *Spellcasting      `json:"spellcasting,omitempty"`
	Subclasses          []Subclass         `json:"subclasses,omitempty"`
}

// Background is a selectable background from the base catalog or an
// expansion pack. It always grants exactly two skill proficiencies.
type Background struct {
	Name               string         `json:"name"`
	AbilityOptions     []Ability      `json:"abilityOptions,omitempty"`
	SkillProficiencies []Skill        `json:"skillProficiencies"`
	ToolProficiency    string         `json:"toolProficiency,omitempty"`
	Equipment          []EquipmentRef `json:"equipment,omitempty"`
	Feature            Feature        `json:"feature"`
	OriginFeat         string         `json:"originFeat,omitempty"`
	PersonalityTraits  []string       `json:"personalityTraits,omitempty"`
	Ideals             []string       `json:"ideals,omitempty"`
	Bonds              []string       `json:"bonds,omitempty"`
	Flaws              []string       `json:"flaws,omitempty"`
}

// ExpansionPack is an optional bundle of extra catalog content that can be
// toggled on by ID.
type ExpansionPack struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Species     []Species        `json:"species,omitempty"`
	Classes     []CharacterClass `json:"classes,omitempty"`
	Backgrounds []Background     `json:"backgrounds,omitempty"`
	Equipment   []EquipmentRef   `json:"equipment,omitempty"`
}

// BaseContent is the always-available catalog the resolver layers packs on
// top of.
type BaseContent struct {
	Species     []Species        `json:"species"`
	Classes     []CharacterClass `json:"classes"`
	Backgrounds []Background     `json:"backgrounds"`
}

// BaseContentSource labels the first group of every content category.
const BaseContentSource = "Base Content"

// ContentGroup is a source-labelled bundle of catalog items, used to
// render grouped selection menus.
type ContentGroup[T any] struct {
	Source string `json:"source"`
	Items  []T    `json:"items"`
}

// AvailableContent is the merged catalog snapshot a wizard session works
// against: base content first, then one group per enabled pack that
// contributed to the category.
type AvailableContent struct {
	Species     []ContentGroup[Species]        `json:"species"`
	Classes     []ContentGroup[CharacterClass] `json:"classes"`
	Backgrounds []ContentGroup[Background]     `json:"backgrounds"`
}
