// Package events publishes wizard step-completion events on the
// rpg-toolkit event bus. Publication is fire-and-forget; listeners are
// outside collaborators (analytics, session sync) and never gate the
// wizard flow.
package events

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/forgelight/charbuilder/internal/entities"
)

// Event types published by the wizard flow.
const (
	EventStepCompleted = "charbuilder.step.completed"
	EventDraftFinal    = "charbuilder.draft.finalized"
)

// Context keys set on published events.
const (
	ContextKeyStep    = "step"
	ContextKeyOwnerID = "owner_id"
	ContextKeyValid   = "valid"
)

// draftEntity adapts a CharacterDraft to the toolkit's entity contract.
type draftEntity struct {
	draft *entities.CharacterDraft
}

// GetID returns the draft ID
func (e *draftEntity) GetID() string {
	return e.draft.ID
}

// GetType returns the entity type
func (e *draftEntity) GetType() string {
	return "character_draft"
}

var _ core.Entity = (*draftEntity)(nil)

// WrapDraft exposes a draft as a toolkit entity for event sourcing.
func WrapDraft(d *entities.CharacterDraft) core.Entity {
	return &draftEntity{draft: d}
}

// Publisher emits wizard lifecycle events.
type Publisher struct {
	bus rpgevents.EventBus
	log *slog.Logger
}

// NewPublisher creates a publisher on the given bus. A nil bus yields a
// publisher whose publish calls are no-ops.
func NewPublisher(bus rpgevents.EventBus) *Publisher {
	return &Publisher{
		bus: bus,
		log: slog.Default().With("component", "events"),
	}
}

// PublishStepCompleted emits a step-completion event for the draft.
// Failures are logged and swallowed.
func (p *Publisher) PublishStepCompleted(ctx context.Context, d *entities.CharacterDraft, step string, valid bool) {
	if p == nil || p.bus == nil || d == nil {
		return
	}

	event := rpgevents.NewGameEvent(EventStepCompleted, WrapDraft(d), nil)
	event.Context().Set(ContextKeyStep, step)
	event.Context().Set(ContextKeyOwnerID, d.OwnerID)
	event.Context().Set(ContextKeyValid, valid)

	if err := p.bus.Publish(ctx, event); err != nil {
		p.log.WarnContext(ctx, "failed to publish step event",
			"step", step,
			"draft_id", d.ID,
			"error", err,
		)
	}
}

// PublishDraftFinalized emits a finalization event for the draft.
func (p *Publisher) PublishDraftFinalized(ctx context.Context, d *entities.CharacterDraft) {
	if p == nil || p.bus == nil || d == nil {
		return
	}

	event := rpgevents.NewGameEvent(EventDraftFinal, WrapDraft(d), nil)
	event.Context().Set(ContextKeyOwnerID, d.OwnerID)

	if err := p.bus.Publish(ctx, event); err != nil {
		p.log.WarnContext(ctx, "failed to publish finalize event",
			"draft_id", d.ID,
			"error", err,
		)
	}
}
