// Package srd5e is a live catalog source backed by the D&D 5e SRD API.
// It converts API races and classes into the catalog entities the wizard
// consumes. The API publishes no backgrounds, so that listing is
// unimplemented and callers fall back to the built-in catalog.
package srd5e

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/errors"
)

// Client fetches selectable catalog content from the SRD API.
type Client interface {
	// ListSpecies returns all playable species with full details.
	ListSpecies(ctx context.Context) ([]entities.Species, error)

	// ListClasses returns all playable classes with full details.
	ListClasses(ctx context.Context) ([]entities.CharacterClass, error)

	// ListBackgrounds returns errors.Unimplemented; the SRD API has no
	// background data.
	ListBackgrounds(ctx context.Context) ([]entities.Background, error)
}

// srdAPI is the slice of the dnd5e-api client surface this package uses.
type srdAPI interface {
	ListRaces() ([]*apientities.ReferenceItem, error)
	GetRace(key string) (*apientities.Race, error)
	ListClasses() ([]*apientities.ReferenceItem, error)
	GetClass(key string) (*apientities.Class, error)
}

type client struct {
	api srdAPI
}

var _ Client = (*client)(nil)

// Config holds the connection settings for the SRD API client.
type Config struct {
	// BaseURL is the API base URL. Defaults to the public API.
	BaseURL string

	// HTTPTimeout is the timeout for individual HTTP requests.
	// Defaults to 30 seconds.
	HTTPTimeout time.Duration

	// CacheTTL is how long fetched data is cached. Defaults to 24 hours.
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new SRD API client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create SRD API client: %w", err)
	}

	return &client{
		api: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) ListSpecies(_ context.Context) ([]entities.Species, error) {
	refs, err := c.api.ListRaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list races: %w", err)
	}

	// Load full details concurrently; the cached client makes repeat
	// listings cheap.
	species := make([]entities.Species, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			race, err := c.api.GetRace(key)
			if err != nil {
				errChan <- fmt.Errorf("failed to get race %s: %w", key, err)
				return
			}
			species[idx] = convertRace(race)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return species, nil
}

func (c *client) ListClasses(_ context.Context) ([]entities.CharacterClass, error) {
	refs, err := c.api.ListClasses()
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	classes := make([]entities.CharacterClass, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			class, err := c.api.GetClass(key)
			if err != nil {
				errChan <- fmt.Errorf("failed to get class %s: %w", key, err)
				return
			}
			classes[idx] = convertClass(class)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return classes, nil
}

func (c *client) ListBackgrounds(_ context.Context) ([]entities.Background, error) {
	return nil, errors.Unimplemented("the SRD API does not publish backgrounds")
}

// abilityFromKey maps an API ability key ("str", "dex", ...) to the
// catalog constant. Unknown keys map to the empty ability.
func abilityFromKey(key string) entities.Ability {
	switch strings.ToLower(key) {
	case "str":
		return entities.AbilityStrength
	case "dex":
		return entities.AbilityDexterity
	case "con":
		return entities.AbilityConstitution
	case "int":
		return entities.AbilityIntelligence
	case "wis":
		return entities.AbilityWisdom
	case "cha":
		return entities.AbilityCharisma
	default:
		return ""
	}
}

func convertRace(race *apientities.Race) entities.Species {
	if race == nil {
		return entities.Species{}
	}

	sp := entities.Species{
		Name:  race.Name,
		Speed: int32(race.Speed),
		Size:  race.Size,
	}

	if len(race.AbilityBonuses) > 0 {
		sp.AbilityBonuses = make(entities.AbilityBonuses, len(race.AbilityBonuses))
		for _, bonus := range race.AbilityBonuses {
			if bonus == nil || bonus.AbilityScore == nil {
				continue
			}
			if ability := abilityFromKey(bonus.AbilityScore.Key); ability != "" {
				sp.AbilityBonuses[ability] = bonus.Bonus
			}
		}
	}

	// Trait and subrace listings carry names only; full descriptions
	// would need per-trait fetches.
	for _, trait := range race.Traits {
		if trait == nil {
			continue
		}
		sp.Traits = append(sp.Traits, entities.Trait{Name: trait.Name})
	}
	for _, sub := range race.SubRaces {
		if sub == nil {
			continue
		}
		sp.Subspecies = append(sp.Subspecies, entities.Subspecies{Name: sub.Name})
	}
	for _, lang := range race.Languages {
		if lang == nil {
			continue
		}
		sp.Languages = append(sp.Languages, lang.Name)
	}

	return sp
}

func convertClass(class *apientities.Class) entities.CharacterClass {
	if class == nil {
		return entities.CharacterClass{}
	}

	cc := entities.CharacterClass{
		Name:   class.Name,
		HitDie: int32(class.HitDie),
	}

	for _, st := range class.SavingThrows {
		if st == nil {
			continue
		}
		if ability := abilityFromKey(st.Key); ability != "" {
			cc.SavingThrows = append(cc.SavingThrows, ability)
		}
	}

	for _, armor := range class.ArmorProficiencies {
		if armor != nil {
			cc.ArmorProficiencies = append(cc.ArmorProficiencies, armor.Name)
		}
	}
	for _, weapon := range class.WeaponProficiencies {
		if weapon != nil {
			cc.WeaponProficiencies = append(cc.WeaponProficiencies, weapon.Name)
		}
	}

	cc.SkillChoices = convertSkillChoices(class.ProficiencyChoices)

	if equipment := convertStartingEquipment(class); equipment != nil {
		cc.StartingEquipment = equipment
	}

	return cc
}

func convertSkillChoices(choices []*apientities.ChoiceOption) entities.SkillChoice {
	for _, choice := range choices {
		if choice == nil || choice.ChoiceType != "skills" {
			continue
		}
		skillChoice := entities.SkillChoice{Count: int32(choice.ChoiceCount)}
		if choice.OptionList != nil {
			for _, option := range choice.OptionList.Options {
				refOpt, ok := option.(*apientities.ReferenceOption)
				if !ok || refOpt.Reference == nil {
					continue
				}
				name := strings.TrimPrefix(refOpt.Reference.Name, "Skill: ")
				if skill := entities.Skill(name); entities.IsKnownSkill(skill) {
					skillChoice.Options = append(skillChoice.Options, skill)
				}
			}
		}
		return skillChoice
	}
	return entities.SkillChoice{}
}

func convertStartingEquipment(class *apientities.Class) *entities.StartingEquipment {
	equipment := &entities.StartingEquipment{}

	for _, eq := range class.StartingEquipment {
		if eq == nil || eq.Equipment == nil {
			continue
		}
		equipment.Fixed = append(equipment.Fixed, entities.EquipmentRef{
			Name:     eq.Equipment.Name,
			Quantity: int32(eq.Quantity),
		})
	}

	for _, choice := range class.StartingEquipmentOptions {
		if choice == nil || choice.OptionList == nil {
			continue
		}
		converted := entities.EquipmentChoice{Description: choice.Description}
		for _, option := range choice.OptionList.Options {
			if refs := convertEquipmentOption(option); len(refs) > 0 {
				converted.Options = append(converted.Options, refs)
			}
		}
		if len(converted.Options) > 0 {
			equipment.Choices = append(equipment.Choices, converted)
		}
	}

	if len(equipment.Fixed) == 0 && len(equipment.Choices) == 0 {
		return nil
	}
	return equipment
}

// convertEquipmentOption flattens one API option into concrete items.
// Nested choice options ("any martial weapon") have no concrete items
// and convert to nothing.
func convertEquipmentOption(option apientities.Option) []entities.EquipmentRef {
	switch opt := option.(type) {
	case *apientities.ReferenceOption:
		if opt.Reference == nil {
			return nil
		}
		return []entities.EquipmentRef{{Name: opt.Reference.Name, Quantity: 1}}
	case *apientities.CountedReferenceOption:
		if opt.Reference == nil {
			return nil
		}
		return []entities.EquipmentRef{{Name: opt.Reference.Name, Quantity: int32(opt.Count)}}
	case *apientities.MultipleOption:
		var refs []entities.EquipmentRef
		for _, item := range opt.Items {
			refs = append(refs, convertEquipmentOption(item)...)
		}
		return refs
	default:
		return nil
	}
}
