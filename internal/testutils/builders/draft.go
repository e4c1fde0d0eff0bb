// Package builders provides fluent test-data builders.
package builders

import (
	"time"

	"github.com/forgelight/charbuilder/internal/entities"
)

// DraftBuilder assembles CharacterDraft fixtures step by step.
type DraftBuilder struct {
	draft *entities.CharacterDraft
}

// NewDraftBuilder creates a builder with minimal defaults.
func NewDraftBuilder() *DraftBuilder {
	now := time.Now().Unix()
	return &DraftBuilder{
		draft: &entities.CharacterDraft{
			ID:        "draft-test-1",
			OwnerID:   "owner-test-1",
			Level:     1,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the draft ID
func (b *DraftBuilder) WithID(id string) *DraftBuilder {
	b.draft.ID = id
	return b
}

// WithOwnerID sets the owner ID
func (b *DraftBuilder) WithOwnerID(ownerID string) *DraftBuilder {
	b.draft.OwnerID = ownerID
	return b
}

// WithName sets the character name
func (b *DraftBuilder) WithName(name string) *DraftBuilder {
	b.draft.Name = name
	return b
}

// WithSpecies sets the species and optionally a subspecies
func (b *DraftBuilder) WithSpecies(sp *entities.Species, sub *entities.Subspecies) *DraftBuilder {
	b.draft.Species = sp
	b.draft.Subspecies = sub
	return b
}

// WithClass sets the class
func (b *DraftBuilder) WithClass(class *entities.CharacterClass) *DraftBuilder {
	b.draft.Class = class
	return b
}

// WithBackground sets the background
func (b *DraftBuilder) WithBackground(bg *entities.Background) *DraftBuilder {
	b.draft.Background = bg
	return b
}

// WithAbilityScores sets the score method and the six base scores
func (b *DraftBuilder) WithAbilityScores(method entities.ScoreMethod, str, dex, con, intel, wis, cha int) *DraftBuilder {
	b.draft.AbilityScoreMethod = method
	b.draft.BaseAbilityScores = entities.AbilityScores{
		entities.AbilityStrength:     str,
		entities.AbilityDexterity:    dex,
		entities.AbilityConstitution: con,
		entities.AbilityIntelligence: intel,
		entities.AbilityWisdom:       wis,
		entities.AbilityCharisma:     cha,
	}
	return b
}

// WithSkills sets the skill proficiencies
func (b *DraftBuilder) WithSkills(skills ...entities.Skill) *DraftBuilder {
	b.draft.SkillProficiencies = skills
	return b
}

// WithEquipment sets the resolved equipment list
func (b *DraftBuilder) WithEquipment(items ...entities.EquipmentRef) *DraftBuilder {
	b.draft.Equipment = items
	return b
}

// WithExpiresAt sets the expiry timestamp
func (b *DraftBuilder) WithExpiresAt(expiresAt int64) *DraftBuilder {
	b.draft.ExpiresAt = expiresAt
	return b
}

// AsComplete fills every wizard step with a valid Fighter build.
func (b *DraftBuilder) AsComplete() *DraftBuilder {
	return b.
		WithName("Test Fighter").
		WithSpecies(&entities.Species{Name: "Human", Speed: 30, Size: entities.SizeMedium}, nil).
		WithClass(&entities.CharacterClass{
			Name:         "Fighter",
			HitDie:       10,
			SavingThrows: []entities.Ability{entities.AbilityStrength, entities.AbilityConstitution},
			SkillChoices: entities.SkillChoice{
				Options: []entities.Skill{entities.SkillAthletics, entities.SkillPerception},
				Count:   2,
			},
			StartingEquipment: &entities.StartingEquipment{
				Choices: []entities.EquipmentChoice{
					{
						Description: "(a) chain mail or (b) leather armor",
						Options: [][]entities.EquipmentRef{
							{{Name: "Chain Mail", Quantity: 1}},
							{{Name: "Leather Armor", Quantity: 1}},
						},
					},
				},
			},
		}).
		WithBackground(&entities.Background{
			Name:               "Soldier",
			SkillProficiencies: []entities.Skill{entities.SkillAthletics, entities.SkillIntimidation},
		}).
		WithAbilityScores(entities.MethodStandardArray, 15, 14, 13, 12, 10, 8).
		WithSkills(entities.SkillAthletics, entities.SkillPerception, entities.SkillIntimidation, entities.SkillInsight).
		WithEquipment(entities.EquipmentRef{Name: "Chain Mail", Quantity: 1})
}

// Build returns the constructed draft
func (b *DraftBuilder) Build() *entities.CharacterDraft {
	return b.draft
}
