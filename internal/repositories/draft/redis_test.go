package draft_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/errors"
	"github.com/forgelight/charbuilder/internal/repositories/draft"
	"github.com/forgelight/charbuilder/internal/testutils"
	"github.com/forgelight/charbuilder/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    draft.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = draft.NewRedisRepository(client)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	d := builders.NewDraftBuilder().AsComplete().Build()

	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, draft.GetInput{ID: d.ID})
	s.Require().NoError(err)
	s.Equal(d.Name, output.Draft.Name)
	s.Equal(d.OwnerID, output.Draft.OwnerID)
	s.Require().NotNil(output.Draft.Class)
	s.Equal("Fighter", output.Draft.Class.Name)
	s.Equal(d.BaseAbilityScores, output.Draft.BaseAbilityScores)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, draft.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, draft.CreateInput{
		Draft: builders.NewDraftBuilder().WithID("").Build(),
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, draft.CreateInput{
		Draft: builders.NewDraftBuilder().WithOwnerID("").Build(),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsExpiredDraft() {
	d := builders.NewDraftBuilder().
		WithExpiresAt(time.Now().Add(-time.Hour).Unix()).
		Build()

	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesOwnersDraft() {
	first := builders.NewDraftBuilder().WithID("draft-1").WithOwnerID("owner-1").Build()
	second := builders.NewDraftBuilder().WithID("draft-2").WithOwnerID("owner-1").Build()

	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: first})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, draft.CreateInput{Draft: second})
	s.Require().NoError(err)

	// old draft is gone, owner mapping points at the new one
	_, err = s.repo.Get(s.ctx, draft.GetInput{ID: "draft-1"})
	s.True(errors.IsNotFound(err))

	output, err := s.repo.GetByOwnerID(s.ctx, draft.GetByOwnerIDInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Equal("draft-2", output.Draft.ID)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, draft.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByOwnerIDNotFound() {
	_, err := s.repo.GetByOwnerID(s.ctx, draft.GetByOwnerIDInput{OwnerID: "nobody"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	d := builders.NewDraftBuilder().Build()
	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
	s.Require().NoError(err)

	d.Name = "Renamed"
	d.AbilityScoreMethod = entities.MethodPointBuy
	_, err = s.repo.Update(s.ctx, draft.UpdateInput{Draft: d})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, draft.GetInput{ID: d.ID})
	s.Require().NoError(err)
	s.Equal("Renamed", output.Draft.Name)
	s.Equal(entities.MethodPointBuy, output.Draft.AbilityScoreMethod)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	d := builders.NewDraftBuilder().WithID("never-created").Build()
	_, err := s.repo.Update(s.ctx, draft.UpdateInput{Draft: d})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	d := builders.NewDraftBuilder().Build()
	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, draft.DeleteInput{ID: d.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, draft.GetInput{ID: d.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetByOwnerID(s.ctx, draft.GetByOwnerIDInput{OwnerID: d.OwnerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, draft.DeleteInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}
