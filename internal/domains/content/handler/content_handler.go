package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cms-backend/internal/domains/content"
	"cms-backend/internal/shared/response"
)

type ContentHandler struct {
	service content.Service
}

func NewContentHandler(svc content.Service) *ContentHandler {
	return &ContentHandler{service: svc}
}

// actorFrom rebuilds the acting user from what the auth middleware put
// in the context. Returns nil for anonymous requests - the core treats
// nil as "no actor", it never reads the session itself.
func actorFrom(c *gin.Context) *content.Actor {
	idVal, ok := c.Get("userID")
	if !ok {
		return nil
	}
	id, ok := idVal.(uuid.UUID)
	if !ok {
		return nil
	}
	role := content.Role(c.GetString("role"))
	return &content.Actor{ID: id, Role: role}
}

// Create - POST /api/v1/content
func (h *ContentHandler) Create(c *gin.Context) {
	var req content.CreateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// Update - PUT /api/v1/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req content.UpdateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// GetByID - GET /api/v1/content/:id
func (h *ContentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// List - GET /api/v1/content
func (h *ContentHandler) List(c *gin.Context) {
	var filter content.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, meta, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Page:      meta.Page,
		PageSize:  meta.PageSize,
		Total:     meta.Total,
		TotalPage: meta.TotalPage,
	})
}

// respondError maps domain errors to the HTTP layer without the
// handler knowing individual rules. Transition rejections carry their
// attempted edge as details so clients can see what was refused.
func respondError(c *gin.Context, err error) {
	code := content.ToErrorCode(err)
	status := content.ToHTTPStatus(err)

	if te, ok := asTransitionError(err); ok {
		response.ErrorWithDetails(c, status, code, err.Error(), gin.H{
			"from":            te.From,
			"to":              te.To,
			"content_changed": te.ContentChanged,
		})
		return
	}
	response.ErrorResponse(c, status, code, err.Error())
}

func asTransitionError(err error) (*content.TransitionError, bool) {
	var te *content.TransitionError
	ok := errors.As(err, &te)
	return te, ok
}
