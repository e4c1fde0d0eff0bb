// Package content merges expansion packs with the base catalog and
// detects draft selections that reference content no longer available.
package content

import (
	"github.com/forgelight/charbuilder/internal/entities"
)

// ComputeAvailableContent builds the grouped catalog snapshot: base
// content first, then one group per enabled pack that contributes a
// non-empty list for the category. Packs are visited in the order of
// enabledPackIDs; IDs not present in allPacks are skipped.
func ComputeAvailableContent(enabledPackIDs []string, allPacks []entities.ExpansionPack, base entities.BaseContent) entities.AvailableContent {
	available := entities.AvailableContent{
		Species: []entities.ContentGroup[entities.Species]{
			{Source: entities.BaseContentSource, Items: base.Species},
		},
		Classes: []entities.ContentGroup[entities.CharacterClass]{
			{Source: entities.BaseContentSource, Items: base.Classes},
		},
		Backgrounds: []entities.ContentGroup[entities.Background]{
			{Source: entities.BaseContentSource, Items: base.Backgrounds},
		},
	}

	packsByID := make(map[string]*entities.ExpansionPack, len(allPacks))
	for i := range allPacks {
		packsByID[allPacks[i].ID] = &allPacks[i]
	}

	for _, id := range enabledPackIDs {
		pack, ok := packsByID[id]
		if !ok {
			continue
		}
		if len(pack.Species) > 0 {
			available.Species = append(available.Species, entities.ContentGroup[entities.Species]{
				Source: pack.Name, Items: pack.Species,
			})
		}
		if len(pack.Classes) > 0 {
			available.Classes = append(available.Classes, entities.ContentGroup[entities.CharacterClass]{
				Source: pack.Name, Items: pack.Classes,
			})
		}
		if len(pack.Backgrounds) > 0 {
			available.Backgrounds = append(available.Backgrounds, entities.ContentGroup[entities.Background]{
				Source: pack.Name, Items: pack.Backgrounds,
			})
		}
	}

	return available
}

// StaleResult records which of a draft's selections reference content
// absent from the current catalog. Each flag means the selection and its
// dependents must be cleared.
type StaleResult struct {
	SpeciesCleared    bool
	ClassCleared      bool
	BackgroundCleared bool
}

// Any reports whether any selection went stale.
func (r StaleResult) Any() bool {
	return r.SpeciesCleared || r.ClassCleared || r.BackgroundCleared
}

// Apply clears the stale selections and everything that depended on them.
// A stale species also clears the subspecies; a stale class clears the
// subclass, skill proficiencies, and known spells; a stale background
// clears the replacement map, origin feat, and skill proficiencies. Both
// class and background staleness clearing skill proficiencies is
// idempotent.
func (r StaleResult) Apply(d *entities.CharacterDraft) {
	if d == nil {
		return
	}
	if r.SpeciesCleared {
		d.Species = nil
		d.Subspecies = nil
	}
	if r.ClassCleared {
		d.Class = nil
		d.Subclass = nil
		d.SkillProficiencies = nil
		d.CantripsKnown = nil
		d.SpellsKnown = nil
	}
	if r.BackgroundCleared {
		d.Background = nil
		d.BackgroundSkillReplacements = nil
		d.OriginFeat = ""
		d.SkillProficiencies = nil
	}
}

// FindStaleSelections checks the draft's species, class, and background
// independently against the available content, matching by name. A
// selection found in any group of its category is not stale.
func FindStaleSelections(d *entities.CharacterDraft, available entities.AvailableContent) StaleResult {
	var result StaleResult
	if d == nil {
		return result
	}

	if d.Species != nil && !speciesAvailable(d.Species.Name, available.Species) {
		result.SpeciesCleared = true
	}
	if d.Class != nil && !classAvailable(d.Class.Name, available.Classes) {
		result.ClassCleared = true
	}
	if d.Background != nil && !backgroundAvailable(d.Background.Name, available.Backgrounds) {
		result.BackgroundCleared = true
	}
	return result
}

func speciesAvailable(name string, groups []entities.ContentGroup[entities.Species]) bool {
	for _, group := range groups {
		for _, item := range group.Items {
			if item.Name == name {
				return true
			}
		}
	}
	return false
}

func classAvailable(name string, groups []entities.ContentGroup[entities.CharacterClass]) bool {
	for _, group := range groups {
		for _, item := range group.Items {
			if item.Name == name {
				return true
			}
		}
	}
	return false
}

func backgroundAvailable(name string, groups []entities.ContentGroup[entities.Background]) bool {
	for _, group := range groups {
		for _, item := range group.Items {
			if item.Name == name {
				return true
			}
		}
	}
	return false
}
