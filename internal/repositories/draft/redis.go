package draft

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/forgelight/charbuilder/internal/codec"
	"github.com/forgelight/charbuilder/internal/entities"
	"github.com/forgelight/charbuilder/internal/errors"
	redisclient "github.com/forgelight/charbuilder/internal/redis"
)

const (
	draftKeyPrefix     = "draft:"
	ownerMappingPrefix = "draft:owner:"
	defaultTTL         = 24 * time.Hour

	errDraftNil     = "draft cannot be nil"
	errDraftIDEmpty = "draft ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
	errDraftExpired = "draft has already expired"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed draft repository. Drafts are
// stored as the versioned export envelope so storage and file export
// share one format.
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}
	if input.Draft.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ttl, err := draftTTL(input.Draft)
	if err != nil {
		return nil, err
	}

	// Replace the owner's existing draft if any
	ownerKey := ownerMappingPrefix + input.Draft.OwnerID
	existingID, err := r.client.Get(ctx, ownerKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing draft")
	}

	data, err := codec.Serialize(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode draft")
	}

	pipe := r.client.TxPipeline()
	if existingID != "" {
		pipe.Del(ctx, draftKeyPrefix+existingID)
	}
	pipe.Set(ctx, draftKeyPrefix+input.Draft.ID, data, ttl)
	pipe.Set(ctx, ownerKey, input.Draft.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}

	return &CreateOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	decoded := codec.Deserialize([]byte(result))
	if !decoded.Success {
		return nil, errors.Internalf("stored draft %s is corrupt: %s", input.ID, decoded.Error)
	}

	var d entities.CharacterDraft
	if err := json.Unmarshal(decoded.Character, &d); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &d}, nil
}

func (r *redisRepository) GetByOwnerID(ctx context.Context, input GetByOwnerIDInput) (*GetByOwnerIDOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ownerKey := ownerMappingPrefix + input.OwnerID
	draftID, err := r.client.Get(ctx, ownerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no draft found for owner %s", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get owner draft mapping")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: draftID})
	if err != nil {
		// Mapping points at an expired draft; clean it up.
		if errors.IsNotFound(err) {
			r.client.Del(ctx, ownerKey)
		}
		return nil, err
	}

	return &GetByOwnerIDOutput{Draft: getOutput.Draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	key := draftKeyPrefix + input.Draft.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}

	ttl, err := draftTTL(input.Draft)
	if err != nil {
		return nil, err
	}

	data, err := codec.Serialize(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode draft")
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &UpdateOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKeyPrefix+input.ID)
	if getOutput.Draft.OwnerID != "" {
		pipe.Del(ctx, ownerMappingPrefix+getOutput.Draft.OwnerID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}

// draftTTL derives the storage TTL from the draft's expiry, defaulting
// when unset and rejecting drafts already past it.
func draftTTL(d *entities.CharacterDraft) (time.Duration, error) {
	if d.ExpiresAt <= 0 {
		return defaultTTL, nil
	}
	ttl := time.Until(time.Unix(d.ExpiresAt, 0))
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired)
	}
	return ttl, nil
}
