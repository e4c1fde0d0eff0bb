// Package entities holds the data-only types for the character builder.
// All rules calculations (modifiers, HP, AC, proficiency bonus) live in
// the rulebook packages; nothing derived is ever stored on a draft.
package entities

// CharacterDraft is a progressively-filled character under construction.
// Selected catalog records (species, class, background) are embedded whole
// so a draft can be validated and exported without access to the catalog
// it was built from; staleness against the current catalog is detected by
// name.
type CharacterDraft struct {
	ID      string `json:"id,omitempty"`
	OwnerID string `json:"ownerId,omitempty"`

	Name       string          `json:"name,omitempty"`
	Species    *Species        `json:"species,omitempty"`
	Subspecies *Subspecies     `json:"subspecies,omitempty"`
	Class      *CharacterClass `json:"class,omitempty"`
	Subclass   *Subclass       `json:"subclass,omitempty"`
	Background *Background     `json:"background,omitempty"`

	AbilityScoreMethod ScoreMethod   `json:"abilityScoreMethod,omitempty"`
	BaseAbilityScores  AbilityScores `json:"baseAbilityScores,omitempty"`

	OriginFeat string `json:"originFeat,omitempty"`
	// Level defaults to 1 when zero.
	Level int32 `json:"level,omitempty"`

	// SkillProficiencies is the union of class-chosen skills, background
	// granted skills, and any conflict replacements.
	SkillProficiencies []Skill `json:"skillProficiencies,omitempty"`
	// BackgroundSkillReplacements maps a background skill that conflicted
	// with a class skill to the replacement the player picked.
	BackgroundSkillReplacements map[Skill]Skill `json:"backgroundSkillReplacements,omitempty"`

	Equipment []EquipmentRef `json:"equipment,omitempty"`

	CantripsKnown     []string `json:"cantripsKnown,omitempty"`
	SpellsKnown       []string `json:"spellsKnown,omitempty"`
	SelectedLanguages []string `json:"selectedLanguages,omitempty"`

	PersonalityTrait string `json:"personalityTrait,omitempty"`
	Ideal            string `json:"ideal,omitempty"`
	Bond             string `json:"bond,omitempty"`
	Flaw             string `json:"flaw,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// EffectiveLevel returns the draft's level, treating an unset or
// non-positive level as 1.
func (d *CharacterDraft) EffectiveLevel() int32 {
	if d == nil || d.Level <= 0 {
		return 1
	}
	return d.Level
}

// HasSkill reports whether the draft already holds the given skill
// proficiency.
func (d *CharacterDraft) HasSkill(s Skill) bool {
	if d == nil {
		return false
	}
	for _, held := range d.SkillProficiencies {
		if held == s {
			return true
		}
	}
	return false
}
