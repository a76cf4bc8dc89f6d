package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/studytrack/studytrack-backend/internal/middleware"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
	"github.com/studytrack/studytrack-backend/internal/validator"
)

// UserHandler handles admin-side account management.
type UserHandler struct {
	userService  *service.UserService
	auditService *service.AuditService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, auditService *service.AuditService) *UserHandler {
	return &UserHandler{userService: userService, auditService: auditService}
}

// List godoc
// GET /api/v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// Create godoc
// POST /api/v1/admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if violations := service.ValidatePassword(req.Password); len(violations) > 0 {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrPasswordPolicy,
			map[string]string{"password": strings.Join(violations, " ")})
		return
	}

	user := &model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsAdmin:   req.IsAdmin,
	}

	if err := h.userService.Create(c.Request.Context(), user, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.recordAudit(c, model.AuditActionCreate, user.ID.String(), user.Email)
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// Update godoc
// PUT /api/v1/admin/users/:user_id
// Profile fields always update; the password only changes when new_password
// is supplied together with a valid current_password.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"current_password": "current_password is required to change the password"})
			return
		}
		if violations := service.ValidatePassword(req.NewPassword); len(violations) > 0 {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrPasswordPolicy,
				map[string]string{"new_password": strings.Join(violations, " ")})
			return
		}
	}

	user := &model.User{
		ID:        id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsAdmin:   req.IsAdmin,
	}

	if err := h.userService.Update(c.Request.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidCredentials)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.recordAudit(c, model.AuditActionUpdate, id.String(), user.Email)
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// ToggleLock godoc
// POST /api/v1/admin/users/:user_id/lock
func (h *UserHandler) ToggleLock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ToggleLockRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.userService.ToggleLock(c.Request.Context(), id, *req.IsLocked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	action := model.AuditActionUnlock
	if *req.IsLocked {
		action = model.AuditActionLock
	}
	h.recordAudit(c, action, id.String(), "")

	response.Success(c, http.StatusOK, gin.H{"is_locked": *req.IsLocked})
}

// Delete godoc
// DELETE /api/v1/admin/users/:user_id
// Admin accounts are refused.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminUndeletable):
			response.Fail(c, http.StatusForbidden, response.ErrAdminUndeletable)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.recordAudit(c, model.AuditActionDelete, id.String(), "")
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *UserHandler) recordAudit(c *gin.Context, action, entityID, detail string) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return
	}
	h.auditService.Record(c.Request.Context(), &model.AuditEvent{
		ActorID:  claims.UserID,
		Action:   action,
		Entity:   "user",
		EntityID: entityID,
		Detail:   detail,
	})
}
