package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cms-backend/internal/domains/content"
	"cms-backend/internal/shared/utils"
	"cms-backend/pkg/cache"
	"cms-backend/pkg/logger"
)

// ContentService is the mutation coordinator: it runs every create and
// update through the authorization policy, the transition engine and
// the audit stamper, persists the result, and keeps the read cache
// consistent with the write. The decision components are pure; all
// I/O happens here.
type ContentService struct {
	repo    content.Repository
	cache   cache.Cache
	policy  *content.Policy
	engine  *content.TransitionEngine
	stamper *content.AuditStamper
}

// NewContentService wires the coordinator. The stamper is injected so
// tests can pin the clock.
func NewContentService(repo content.Repository, c cache.Cache, stamper *content.AuditStamper) content.Service {
	return &ContentService{
		repo:    repo,
		cache:   c,
		policy:  content.NewPolicy(),
		engine:  content.NewTransitionEngine(),
		stamper: stamper,
	}
}

// Create creates a new governed item on behalf of actor.
func (s *ContentService) Create(ctx context.Context, actor *content.Actor, req content.CreateRequest) (*content.ContentItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, content.ErrNoActor
	}

	// Resolve the initial status. An explicit status must pass the
	// policy gate (moderators can never start at published); an absent
	// one gets the role default.
	var status content.Status
	if req.Status != nil {
		if !s.policy.CanSetStatus(actor, *req.Status) {
			return nil, content.ErrUnauthorized
		}
		status = *req.Status
	} else {
		status = s.policy.DefaultStatus(actor)
	}

	item := &content.ContentItem{
		ID:         uuid.New(),
		Kind:       req.Kind,
		Title:      req.Title,
		Slug:       utils.GenerateSlug(req.Title),
		Body:       req.Body,
		Tags:       req.Tags,
		CategoryID: req.CategoryID,
		VideoURL:   req.VideoURL,
		Price:      req.Price,
		Status:     status,
	}

	// Attribution to another user is an admin-only operation;
	// moderators always own what they create.
	if req.AuthorOwnerID != nil && actor.Role == content.RoleAdmin {
		item.AuthorOwnerID = *req.AuthorOwnerID
	}

	// Stamp ownership and publication provenance, then persist in one
	// write. The stamper fills AuthorOwnerID from the actor when no
	// owner was set above.
	s.stamper.StampCreate(item, actor)

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	// Invalidate after commit, never before: a concurrent reader must
	// not be able to re-fill the cache with pre-write state after we
	// already invalidated.
	s.invalidate(ctx, created)

	return created, nil
}

// Update mutates an existing item on behalf of actor.
func (s *ContentService) Update(ctx context.Context, actor *content.Actor, id uuid.UUID, req content.UpdateRequest) (*content.ContentItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Mutation decisions are made against storage, not the cache.
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor == nil {
		return nil, content.ErrNoActor
	}
	if !s.policy.CanModify(actor, current) {
		return nil, content.ErrUnauthorized
	}

	// The transition rules depend on whether this request edits
	// substantive fields or only flips the status.
	contentChanged := current.ContentChanged(req.Fields)

	requested := current.Status
	if req.Status != nil {
		requested = *req.Status
	}

	if err := s.engine.Check(actor, current.Status, requested, contentChanged); err != nil {
		return nil, err
	}

	req.Fields.Apply(current)
	if req.Fields.Title != nil {
		current.Slug = utils.GenerateSlug(*req.Fields.Title)
	}
	current.Status = requested

	s.stamper.StampUpdate(current, actor)

	// Version-checked write: the stamp and the status move land
	// atomically, and a concurrent editor's stale version is rejected
	// instead of clobbering the row.
	updated, err := s.repo.Update(ctx, current, req.Version)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, updated)

	return updated, nil
}

// GetByID is the cached single-item read path (exact key, 10 min TTL).
func (s *ContentService) GetByID(ctx context.Context, id uuid.UUID) (*content.ContentItem, error) {
	key := content.ItemCacheKey(id)

	var cached content.ContentItem
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("content item cache get failed", err)
	}
	if found {
		return &cached, nil
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, item, content.ItemCacheTTL); err != nil {
		logger.Error("content item cache set failed", err)
	}

	return item, nil
}

// List is the cached list read path. Keys embed the current generation
// counter for the filtered kind, so any mutation of that kind makes
// every previously cached page unreachable without enumerating keys.
func (s *ContentService) List(ctx context.Context, filter content.ListFilter) ([]content.ContentItem, *content.PaginationMeta, error) {
	filter.Normalize()

	genKey := content.ListGenKey(kindOf(filter))
	gen, err := s.cache.GetInt64(ctx, genKey)
	if err != nil {
		logger.Error("content list generation read failed", err)
	}

	type listCache struct {
		Data       []content.ContentItem  `json:"data"`
		Pagination content.PaginationMeta `json:"pagination"`
	}

	key := content.ListCacheKey(gen, filter)

	var cached listCache
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("content list cache get failed", err)
	}
	if found {
		return cached.Data, &cached.Pagination, nil
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("list content: %w", err)
	}

	totalPages := (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	meta := &content.PaginationMeta{
		Page:      filter.Page,
		PageSize:  filter.Limit,
		Total:     total,
		TotalPage: totalPages,
	}

	if err := s.cache.Set(ctx, key, listCache{Data: items, Pagination: *meta}, content.ListCacheTTL); err != nil {
		logger.Error("content list cache set failed", err)
	}

	return items, meta, nil
}

// invalidate retires every cache entry that could contain item: the
// exact single-item key is deleted, and the list generation counters
// for the item's kind (and the unfiltered family) are bumped so all
// parameterized list keys become unreachable in O(1). Cache errors are
// logged, not returned - storage already holds the committed truth.
func (s *ContentService) invalidate(ctx context.Context, item *content.ContentItem) {
	if err := s.cache.Delete(ctx, content.ItemCacheKey(item.ID)); err != nil {
		logger.Error("content item cache invalidation failed", err)
	}
	for _, genKey := range content.GenKeysFor(item.Kind) {
		if _, err := s.cache.Increment(ctx, genKey); err != nil {
			logger.Error("content list generation bump failed", err)
		}
	}
}

func kindOf(filter content.ListFilter) content.Kind {
	if filter.Kind == nil {
		return ""
	}
	return *filter.Kind
}
