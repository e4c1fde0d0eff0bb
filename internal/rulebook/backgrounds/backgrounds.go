// Package backgrounds exposes read-only projections of a background
// record and detects skill overlap with class-granted skills.
package backgrounds

import (
	"fmt"

	"github.com/forgelight/charbuilder/internal/entities"
)

// Skills returns the background's granted skill proficiencies, empty when
// no background is given.
func Skills(bg *entities.Background) []entities.Skill {
	if bg == nil || bg.SkillProficiencies == nil {
		return []entities.Skill{}
	}
	return bg.SkillProficiencies
}

// EquipmentLines formats the background's equipment for display, one line
// per item: "Name" when quantity is 1, "Name (xN)" otherwise.
func EquipmentLines(bg *entities.Background) []string {
	if bg == nil {
		return []string{}
	}
	lines := make([]string, 0, len(bg.Equipment))
	for _, item := range bg.Equipment {
		if item.Quantity == 1 {
			lines = append(lines, item.Name)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return lines
}

// SkillConflicts returns the background skills that also appear in
// classSkills, in background order. Duplicates in classSkills do not
// duplicate a conflict entry.
func SkillConflicts(backgroundSkills, classSkills []entities.Skill) []entities.Skill {
	conflicts := []entities.Skill{}
	if len(backgroundSkills) == 0 || len(classSkills) == 0 {
		return conflicts
	}

	held := make(map[entities.Skill]bool, len(classSkills))
	for _, s := range classSkills {
		held[s] = true
	}

	for _, s := range backgroundSkills {
		if held[s] {
			conflicts = append(conflicts, s)
		}
	}
	return conflicts
}

// HasToolProficiency reports whether the background grants a real tool
// proficiency, treating the "None" sentinel and empty string as none.
func HasToolProficiency(bg *entities.Background) bool {
	if bg == nil {
		return false
	}
	return bg.ToolProficiency != "" && bg.ToolProficiency != entities.ToolProficiencyNone
}
