package builder_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/forgelight/charbuilder/internal/codec"
	"github.com/forgelight/charbuilder/internal/engine"
	enginemock "github.com/forgelight/charbuilder/internal/engine/mock"
	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/errors"
	"github.com/forgelight/charbuilder/internal/orchestrators/builder"
	"github.com/forgelight/charbuilder/internal/pkg/clock"
	"github.com/forgelight/charbuilder/internal/pkg/idgen"
	draftrepo "github.com/forgelight/charbuilder/internal/repositories/draft"
	draftrepomock "github.com/forgelight/charbuilder/internal/repositories/draft/mock"
	builderservice "github.com/forgelight/charbuilder/internal/services/builder"
	"github.com/forgelight/charbuilder/internal/testutils/builders"
)

var fixedTime = time.Unix(1700000000, 0)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockDraftRepo *draftrepomock.MockRepository
	mockEngine    *enginemock.MockEngine
	orchestrator  *builder.Orchestrator
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDraftRepo = draftrepomock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := builder.New(&builder.Config{
		DraftRepo:   s.mockDraftRepo,
		Engine:      s.mockEngine,
		IDGenerator: idgen.NewSequential("draft"),
		Clock:       clock.NewFixed(fixedTime),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectGet(draft *entities.CharacterDraft) {
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, draftrepo.GetInput{ID: draft.ID}).
		Return(&draftrepo.GetOutput{Draft: draft}, nil)
}

func (s *OrchestratorTestSuite) expectUpdate() *entities.CharacterDraft {
	saved := &entities.CharacterDraft{}
	s.mockDraftRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.UpdateInput) (*draftrepo.UpdateOutput, error) {
			*saved = *input.Draft
			return &draftrepo.UpdateOutput{}, nil
		})
	return saved
}

func (s *OrchestratorTestSuite) TestCreateDraft() {
	var created entities.CharacterDraft
	s.mockDraftRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.CreateInput) (*draftrepo.CreateOutput, error) {
			created = *input.Draft
			return &draftrepo.CreateOutput{}, nil
		})

	output, err := s.orchestrator.CreateDraft(s.ctx, &builderservice.CreateDraftInput{
		OwnerID: "owner-1",
		Name:    "Mordenkainen",
	})
	s.Require().NoError(err)

	s.Equal("draft_1", output.Draft.ID)
	s.Equal("owner-1", created.OwnerID)
	s.Equal("Mordenkainen", created.Name)
	s.Equal(int32(1), created.Level)
	s.Equal(fixedTime.Unix(), created.CreatedAt)
}

func (s *OrchestratorTestSuite) TestCreateDraft_MissingOwner() {
	_, err := s.orchestrator.CreateDraft(s.ctx, &builderservice.CreateDraftInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetDraft_NotFound() {
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, draftrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("draft not found"))

	_, err := s.orchestrator.GetDraft(s.ctx, &builderservice.GetDraftInput{DraftID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSetSpecies() {
	draft := builders.NewDraftBuilder().WithID("draft-1").Build()
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateSpeciesChoice(s.ctx, gomock.Any()).
		Return(&engine.ValidateSpeciesChoiceOutput{Result: engine.StepResult{Valid: true}}, nil)
	saved := s.expectUpdate()

	elf := &entities.Species{
		Name: "Elf",
		Subspecies: []entities.Subspecies{
			{Name: "High Elf"},
			{Name: "Wood Elf"},
		},
	}
	output, err := s.orchestrator.SetSpecies(s.ctx, &builderservice.SetSpeciesInput{
		DraftID:        "draft-1",
		Species:        elf,
		SubspeciesName: "Wood Elf",
	})
	s.Require().NoError(err)

	s.True(output.Result.Valid)
	s.Equal("Elf", saved.Species.Name)
	s.Require().NotNil(saved.Subspecies)
	s.Equal("Wood Elf", saved.Subspecies.Name)
	s.Equal(fixedTime.Unix(), saved.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestSetSpecies_ReportsInvalidWithoutFailing() {
	draft := builders.NewDraftBuilder().WithID("draft-1").Build()
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateSpeciesChoice(s.ctx, gomock.Any()).
		Return(&engine.ValidateSpeciesChoiceOutput{Result: engine.StepResult{
			Errors: []string{"Subspecies must be selected for this species."},
		}}, nil)
	s.expectUpdate()

	output, err := s.orchestrator.SetSpecies(s.ctx, &builderservice.SetSpeciesInput{
		DraftID: "draft-1",
		Species: &entities.Species{Name: "Elf", Subspecies: []entities.Subspecies{{Name: "High Elf"}}},
	})
	s.Require().NoError(err)

	s.False(output.Result.Valid)
	s.Len(output.Result.Errors, 1)
}

func (s *OrchestratorTestSuite) TestSetClass_ClearsDependentSelections() {
	draft := builders.NewDraftBuilder().
		WithID("draft-1").
		AsComplete().
		Build()
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateClassChoice(s.ctx, gomock.Any()).
		Return(&engine.ValidateClassChoiceOutput{Result: engine.StepResult{Valid: true}}, nil)
	saved := s.expectUpdate()

	output, err := s.orchestrator.SetClass(s.ctx, &builderservice.SetClassInput{
		DraftID: "draft-1",
		Class:   &entities.CharacterClass{Name: "Wizard", HitDie: 6},
	})
	s.Require().NoError(err)

	s.True(output.Result.Valid)
	s.Equal("Wizard", saved.Class.Name)
	s.Empty(saved.SkillProficiencies)
	s.Empty(saved.Equipment)
}

func (s *OrchestratorTestSuite) TestSetClass_SameClassKeepsSelections() {
	draft := builders.NewDraftBuilder().
		WithID("draft-1").
		AsComplete().
		Build()
	class := draft.Class
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateClassChoice(s.ctx, gomock.Any()).
		Return(&engine.ValidateClassChoiceOutput{Result: engine.StepResult{Valid: true}}, nil)
	saved := s.expectUpdate()

	_, err := s.orchestrator.SetClass(s.ctx, &builderservice.SetClassInput{
		DraftID: "draft-1",
		Class:   class,
	})
	s.Require().NoError(err)

	s.NotEmpty(saved.SkillProficiencies)
	s.NotEmpty(saved.Equipment)
}

func (s *OrchestratorTestSuite) TestSetAbilityScores() {
	draft := builders.NewDraftBuilder().WithID("draft-1").Build()
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateAbilityScores(s.ctx, gomock.Any()).
		Return(&engine.ValidateAbilityScoresOutput{Result: engine.StepResult{Valid: true}}, nil)
	saved := s.expectUpdate()

	scores := entities.AbilityScores{
		entities.AbilityStrength:     15,
		entities.AbilityDexterity:    14,
		entities.AbilityConstitution: 13,
		entities.AbilityIntelligence: 12,
		entities.AbilityWisdom:       10,
		entities.AbilityCharisma:     8,
	}
	_, err := s.orchestrator.SetAbilityScores(s.ctx, &builderservice.SetAbilityScoresInput{
		DraftID: "draft-1",
		Method:  entities.MethodStandardArray,
		Scores:  scores,
	})
	s.Require().NoError(err)

	s.Equal(entities.MethodStandardArray, saved.AbilityScoreMethod)
	s.Equal(scores, saved.BaseAbilityScores)
}

func (s *OrchestratorTestSuite) TestSetBackground_RecordsOriginFeat() {
	draft := builders.NewDraftBuilder().WithID("draft-1").Build()
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateBackgroundChoice(s.ctx, gomock.Any()).
		Return(&engine.ValidateBackgroundChoiceOutput{Result: engine.StepResult{Valid: true}}, nil)
	saved := s.expectUpdate()

	_, err := s.orchestrator.SetBackground(s.ctx, &builderservice.SetBackgroundInput{
		DraftID: "draft-1",
		Background: &entities.Background{
			Name:       "Soldier",
			OriginFeat: "Savage Attacker",
		},
	})
	s.Require().NoError(err)

	s.Equal("Soldier", saved.Background.Name)
	s.Equal("Savage Attacker", saved.OriginFeat)
}

func (s *OrchestratorTestSuite) TestSetEnabledPacks_ClearsStaleSpecies() {
	orcPack := entities.ExpansionPack{
		ID:      "orc-pack",
		Name:    "Orc Pack",
		Species: []entities.Species{{Name: "Orc", Speed: 30, Size: entities.SizeMedium}},
	}
	orchestrator, err := builder.New(&builder.Config{
		DraftRepo:   s.mockDraftRepo,
		Engine:      s.mockEngine,
		IDGenerator: idgen.NewSequential("draft"),
		Clock:       clock.NewFixed(fixedTime),
		BaseContent: &entities.BaseContent{Species: []entities.Species{{Name: "Human", Speed: 30}}},
		Packs:       []entities.ExpansionPack{orcPack},
	})
	s.Require().NoError(err)

	draft := builders.NewDraftBuilder().
		WithID("draft-1").
		WithSpecies(&entities.Species{Name: "Orc", Speed: 30}, nil).
		Build()
	s.expectGet(draft)
	saved := s.expectUpdate()

	// Disabling every pack makes the Orc selection stale
	output, err := orchestrator.SetEnabledPacks(s.ctx, &builderservice.SetEnabledPacksInput{
		DraftID:        "draft-1",
		EnabledPackIDs: nil,
	})
	s.Require().NoError(err)

	s.True(output.Cleared.SpeciesCleared)
	s.Nil(saved.Species)
	s.Len(output.Available.Species, 1)
}

func (s *OrchestratorTestSuite) TestFinalizeDraft_InvalidReturnsFindings() {
	draft := builders.NewDraftBuilder().WithID("draft-1").Build()
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateDraft(s.ctx, gomock.Any()).
		Return(&engine.ValidateDraftOutput{Result: engine.StepResult{
			Errors: []string{"Species must be selected.", "Class must be selected."},
		}}, nil)

	output, err := s.orchestrator.FinalizeDraft(s.ctx, &builderservice.FinalizeDraftInput{DraftID: "draft-1"})
	s.Require().NoError(err)

	s.Nil(output.Sheet)
	s.Len(output.Result.Errors, 2)
}

func (s *OrchestratorTestSuite) TestFinalizeDraft_Valid() {
	draft := builders.NewDraftBuilder().WithID("draft-1").AsComplete().Build()
	s.expectGet(draft)
	s.mockEngine.EXPECT().
		ValidateDraft(s.ctx, gomock.Any()).
		Return(&engine.ValidateDraftOutput{Result: engine.StepResult{Valid: true}}, nil)
	s.mockEngine.EXPECT().
		CalculateSheet(s.ctx, gomock.Any()).
		Return(&engine.CalculateSheetOutput{Sheet: &engine.CharacterSheet{Name: draft.Name, HitPoints: 11}}, nil)

	output, err := s.orchestrator.FinalizeDraft(s.ctx, &builderservice.FinalizeDraftInput{DraftID: "draft-1"})
	s.Require().NoError(err)

	s.Require().NotNil(output.Sheet)
	s.Equal(11, output.Sheet.HitPoints)
	s.True(output.Result.Valid)
}

func (s *OrchestratorTestSuite) TestExportDraft() {
	draft := builders.NewDraftBuilder().
		WithID("draft-1").
		WithName("Sir Reginald").
		Build()
	s.expectGet(draft)

	output, err := s.orchestrator.ExportDraft(s.ctx, &builderservice.ExportDraftInput{DraftID: "draft-1"})
	s.Require().NoError(err)

	s.Equal(codec.ExportFilename("Sir Reginald", fixedTime.UnixMilli()), output.Filename)

	result := codec.Deserialize(output.Data)
	s.True(result.Success)
}

func (s *OrchestratorTestSuite) TestImportDraft_RoundTrip() {
	original := builders.NewDraftBuilder().
		WithID("old-id").
		WithOwnerID("old-owner").
		WithName("Sir Reginald").
		AsComplete().
		Build()
	data, err := codec.Serialize(original)
	s.Require().NoError(err)

	var created entities.CharacterDraft
	s.mockDraftRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.CreateInput) (*draftrepo.CreateOutput, error) {
			created = *input.Draft
			return &draftrepo.CreateOutput{}, nil
		})

	output, err := s.orchestrator.ImportDraft(s.ctx, &builderservice.ImportDraftInput{
		OwnerID: "new-owner",
		Data:    data,
	})
	s.Require().NoError(err)

	s.Equal("draft_1", output.Draft.ID)
	s.Equal("new-owner", created.OwnerID)
	s.Equal("Sir Reginald", created.Name)
	s.Equal(original.Class.Name, created.Class.Name)
}

func (s *OrchestratorTestSuite) TestImportDraft_BadData() {
	_, err := s.orchestrator.ImportDraft(s.ctx, &builderservice.ImportDraftInput{
		OwnerID: "owner-1",
		Data:    []byte("{not json"),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("Invalid JSON format.", errors.GetMessage(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
