// Package species resolves effective species traits, ability bonuses, and
// speed for a species plus optional subspecies selection.
package species

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

// EffectiveBonuses merges species and subspecies ability bonuses. Bonuses
// to the same ability stack additively. A nil subspecies contributes
// nothing.
func EffectiveBonuses(sp *entities.Species, sub *entities.Subspecies) entities.AbilityBonuses {
	merged := make(entities.AbilityBonuses)
	if sp != nil {
		for ability, bonus := range sp.AbilityBonuses {
			merged[ability] += bonus
		}
	}
	if sub != nil {
		for ability, bonus := range sub.AbilityBonuses {
			merged[ability] += bonus
		}
	}
	return merged
}

// EffectiveTraits returns the species traits followed by the subspecies
// traits. Same-named traits are kept as-is; nothing is deduplicated.
func EffectiveTraits(sp *entities.Species, sub *entities.Subspecies) []entities.Trait {
	var traits []entities.Trait
	if sp != nil {
		traits = append(traits, sp.Traits...)
	}
	if sub != nil {
		traits = append(traits, sub.Traits...)
	}
	return traits
}

// EffectiveSpeed returns the subspecies speed when it sets one, otherwise
// the species speed.
func EffectiveSpeed(sp *entities.Species, sub *entities.Subspecies) int32 {
	if sub != nil && sub.Speed > 0 {
		return sub.Speed
	}
	if sp == nil {
		return 0
	}
	return sp.Speed
}

// SubspeciesOf finds the named subspecies on the given species. Returns
// nil when the species has no subspecies of that name.
func SubspeciesOf(sp *entities.Species, name string) *entities.Subspecies {
	if sp == nil {
		return nil
	}
	for i := range sp.Subspecies {
		if sp.Subspecies[i].Name == name {
			return &sp.Subspecies[i]
		}
	}
	return nil
}
