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
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
	"github.com/studytrack/studytrack-backend/internal/validator"
)

// StudentHandler handles student CRUD and roster import/export.
type StudentHandler struct {
	studentService *service.StudentService
	rosterService  *service.RosterService
	auditService   *service.AuditService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService, rosterService *service.RosterService, auditService *service.AuditService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		rosterService:  rosterService,
		auditService:   auditService,
	}
}

// List godoc
// GET /api/v1/students?page=1&per_page=10&level=çözmez
func (h *StudentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	var level *model.Level
	if raw := c.Query("level"); raw != "" {
		l := model.Level(raw)
		if l != model.LevelCozmez && l != model.LevelKidemli {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"level": "level must be one of: çözmez, kıdemli"})
			return
		}
		level = &l
	}

	students, pagination, err := h.studentService.ListStudents(c.Request.Context(), level, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, pagination)
}

// Get godoc
// GET /api/v1/students/:student_id
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Create godoc
// POST /api/v1/admin/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Photo:         req.Photo,
		Level:         req.Level,
	}

	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudentNumber) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.recordAudit(c, model.AuditActionCreate, student.ID.String(), student.StudentNumber)
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// Update godoc
// PUT /api/v1/admin/students/:student_id
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		ID:            id,
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Photo:         req.Photo,
		Level:         req.Level,
	}

	if err := h.studentService.Update(c.Request.Context(), student); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateStudentNumber):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.recordAudit(c, model.AuditActionUpdate, id.String(), student.StudentNumber)
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Delete godoc
// DELETE /api/v1/admin/students/:student_id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.recordAudit(c, model.AuditActionDelete, id.String(), "")
	response.Success(c, http.StatusOK, gin.H{})
}

// ImportRoster godoc
// POST /api/v1/admin/students/import
// Accepts a multipart xlsx file under the "file" field.
func (h *StudentHandler) ImportRoster(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		return
	}
	defer file.Close()

	result, err := h.rosterService.ImportXLSX(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyRoster):
			response.Fail(c, http.StatusBadRequest, response.ErrEmptyRoster)
		case errors.Is(err, service.ErrInvalidRoster):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		default:
			// Storage failure mid-import, not a problem with the upload.
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.recordAudit(c, model.AuditActionImport, "roster", strconv.Itoa(result.Imported)+" imported")
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// ExportRoster godoc
// GET /api/v1/admin/students/export
// Streams the full roster as an xlsx attachment.
func (h *StudentHandler) ExportRoster(c *gin.Context) {
	f, err := h.rosterService.ExportXLSX(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="students.xlsx"`)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing left to do but abort.
		c.Abort()
	}
}

func (h *StudentHandler) recordAudit(c *gin.Context, action, entityID, detail string) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return
	}
	h.auditService.Record(c.Request.Context(), &model.AuditEvent{
		ActorID:  claims.UserID,
		Action:   action,
		Entity:   "student",
		EntityID: entityID,
		Detail:   detail,
	})
}
