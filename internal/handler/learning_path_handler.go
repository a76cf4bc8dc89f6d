package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/studytrack/studytrack-backend/internal/middleware"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
	"github.com/studytrack/studytrack-backend/internal/validator"
)

// LearningPathHandler handles the per-student learning track.
type LearningPathHandler struct {
	pathService  *service.LearningPathService
	auditService *service.AuditService
}

// NewLearningPathHandler creates a new LearningPathHandler.
func NewLearningPathHandler(pathService *service.LearningPathService, auditService *service.AuditService) *LearningPathHandler {
	return &LearningPathHandler{pathService: pathService, auditService: auditService}
}

// ListByStudent godoc
// GET /api/v1/students/:student_id/learning-paths
func (h *LearningPathHandler) ListByStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	paths, err := h.pathService.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"learning_paths": paths})
}

// Create godoc
// POST /api/v1/admin/students/:student_id/learning-paths
func (h *LearningPathHandler) Create(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.LearningPathRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	path, err := h.pathService.Create(c.Request.Context(), studentID, &req)
	if err != nil {
		if h.failDateError(c, err) {
			return
		}
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.recordAudit(c, model.AuditActionCreate, path.ID, path.TaskName)
	response.Success(c, http.StatusCreated, gin.H{"learning_path": path})
}

// Update godoc
// PUT /api/v1/admin/learning-paths/:path_id
func (h *LearningPathHandler) Update(c *gin.Context) {
	pathID, err := strconv.Atoi(c.Param("path_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.LearningPathRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	path, err := h.pathService.Update(c.Request.Context(), pathID, &req)
	if err != nil {
		if h.failDateError(c, err) {
			return
		}
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.recordAudit(c, model.AuditActionUpdate, pathID, path.TaskName)
	response.Success(c, http.StatusOK, gin.H{"learning_path": path})
}

// Complete godoc
// POST /api/v1/admin/learning-paths/:path_id/complete
func (h *LearningPathHandler) Complete(c *gin.Context) {
	pathID, err := strconv.Atoi(c.Param("path_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.pathService.Complete(c.Request.Context(), pathID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.recordAudit(c, model.AuditActionComplete, pathID, "")
	response.Success(c, http.StatusOK, gin.H{"is_completed": true})
}

// Delete godoc
// DELETE /api/v1/admin/learning-paths/:path_id
func (h *LearningPathHandler) Delete(c *gin.Context) {
	pathID, err := strconv.Atoi(c.Param("path_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.pathService.Delete(c.Request.Context(), pathID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.recordAudit(c, model.AuditActionDelete, pathID, "")
	response.Success(c, http.StatusOK, gin.H{})
}

// failDateError maps scheduling violations to a 400 with field details.
// Reports whether it wrote a response.
func (h *LearningPathHandler) failDateError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrDateRangeInvalid):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrDateRange,
			map[string]string{"start_date": service.ErrDateRangeInvalid.Error()})
		return true
	case errors.Is(err, service.ErrStartInPast):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrDateRange,
			map[string]string{"start_date": service.ErrStartInPast.Error()})
		return true
	}
	return false
}

func (h *LearningPathHandler) recordAudit(c *gin.Context, action string, pathID int, detail string) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return
	}
	h.auditService.Record(c.Request.Context(), &model.AuditEvent{
		ActorID:  claims.UserID,
		Action:   action,
		Entity:   "learning_path",
		EntityID: strconv.Itoa(pathID),
		Detail:   detail,
	})
}
