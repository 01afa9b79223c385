package content

import (
	"time"

	"github.com/google/uuid"
)

// AuditStamper applies ownership and publication provenance to a
// content item as part of a mutation. Stamping happens explicitly in
// the mutation coordinator, inside the same transaction as the
// persisted write - never as an implicit save hook.
//
// The publish stamp is idempotent and monotonic: only the first
// transition to published sets PublishedAt, and nothing in this core
// ever clears it or moves it backwards.
type AuditStamper struct {
	now func() time.Time
}

// NewAuditStamper creates a stamper using the wall clock.
func NewAuditStamper() *AuditStamper {
	return &AuditStamper{now: time.Now}
}

// NewAuditStamperWithClock creates a stamper with a fixed clock source.
func NewAuditStamperWithClock(now func() time.Time) *AuditStamper {
	return &AuditStamper{now: now}
}

// StampCreate records provenance for a newly created item. With an
// authenticated actor it sets CreatedBy and UpdatedBy, and attributes
// the item to the actor when no owner was given. If the item is being
// created directly as published, PublishedAt is stamped now.
func (a *AuditStamper) StampCreate(item *ContentItem, actor *Actor) {
	ts := a.now()
	item.CreatedAt = ts
	item.UpdatedAt = ts

	if actor != nil {
		id := actor.ID
		item.CreatedBy = &id
		item.UpdatedBy = &id
		if item.AuthorOwnerID == uuid.Nil {
			item.AuthorOwnerID = actor.ID
		}
	}

	if item.Status == StatusPublished && item.PublishedAt == nil {
		item.PublishedAt = &ts
	}
}

// StampUpdate records provenance for an update. UpdatedBy is re-stamped
// on every authenticated mutation; PublishedAt only when this update is
// the item's first arrival at published. A non-nil PublishedAt is never
// overwritten.
func (a *AuditStamper) StampUpdate(item *ContentItem, actor *Actor) {
	ts := a.now()
	item.UpdatedAt = ts

	if actor != nil {
		id := actor.ID
		item.UpdatedBy = &id
	}

	if item.Status == StatusPublished && item.PublishedAt == nil {
		item.PublishedAt = &ts
	}
}
