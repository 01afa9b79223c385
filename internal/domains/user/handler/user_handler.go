package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cms-backend/internal/domains/user"
	"cms-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "REGISTER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Login - POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "LOGIN_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh - POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "REFRESH_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetProfile - GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	idVal, ok := c.Get("userID")
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	id, ok := idVal.(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "USER_NOT_FOUND", err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}
