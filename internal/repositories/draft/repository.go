// Package draft defines the interface for character draft persistence.
package draft

//go:generate mockgen -destination=mock/mock_repository.go -package=draftmock github.com/forgelight/charbuilder/internal/repositories/draft Repository

import (
	"context"

	"github.com/forgelight/charbuilder/internal/entities"
)

// Repository persists character drafts. One draft per owner: creating a
// new draft replaces the owner's previous one.
type Repository interface {
	// Create stores a draft, replacing any existing draft for the owner.
	// Returns errors.InvalidArgument for bad input, errors.Internal for
	// storage failures.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID. Returns errors.NotFound when absent.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByOwnerID retrieves the owner's draft. Returns errors.NotFound
	// when the owner has none.
	GetByOwnerID(ctx context.Context, input GetByOwnerIDInput) (*GetByOwnerIDOutput, error)

	// Update rewrites an existing draft. Returns errors.NotFound when the
	// draft does not exist.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft and its owner mapping. Returns
	// errors.NotFound when the draft does not exist.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput holds the draft to store
type CreateInput struct {
	Draft *entities.CharacterDraft
}

// CreateOutput is empty; the stored draft is the input draft
type CreateOutput struct{}

// GetInput identifies a draft by ID
type GetInput struct {
	ID string
}

// GetOutput holds the retrieved draft
type GetOutput struct {
	Draft *entities.CharacterDraft
}

// GetByOwnerIDInput identifies a draft by its owner
type GetByOwnerIDInput struct {
	OwnerID string
}

// GetByOwnerIDOutput holds the retrieved draft
type GetByOwnerIDOutput struct {
	Draft *entities.CharacterDraft
}

// UpdateInput holds the draft to rewrite
type UpdateInput struct {
	Draft *entities.CharacterDraft
}

// UpdateOutput is empty
type UpdateOutput struct{}

// DeleteInput identifies a draft by ID
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}
