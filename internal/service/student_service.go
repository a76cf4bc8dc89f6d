package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/studytrack/studytrack-backend/internal/response"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo  *repository.StudentRepository
	mediaService *MediaService
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, mediaService *MediaService) *StudentService {
	return &StudentService{studentRepo: studentRepo, mediaService: mediaService}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves students with pagination and an optional level filter.
func (s *StudentService) ListStudents(ctx context.Context, level *model.Level, page, perPage int) ([]model.Student, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	limit := perPage
	offset := (page - 1) * perPage

	students, total, err := s.studentRepo.ListPaginated(ctx, level, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	if students == nil {
		students = []model.Student{}
	}

	totalPages := (total + perPage - 1) / perPage

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}

	return students, pagination, nil
}

// Create inserts a new student.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// Update modifies a student's details. When the photo changes, the previous
// file is removed from storage.
func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	existing, err := s.studentRepo.GetByID(ctx, student.ID)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return err
	}
	student.CreatedAt = existing.CreatedAt

	if existing.Photo != nil && photoChanged(existing.Photo, student.Photo) {
		// Storage cleanup is best-effort; the record is already updated.
		_ = s.mediaService.RemoveUpload(*existing.Photo)
	}
	return nil
}

// Delete removes a student and their stored photo. Learning paths cascade
// at the database level.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Photo != nil {
		_ = s.mediaService.RemoveUpload(*existing.Photo)
	}
	return nil
}

// photoChanged reports whether the stored photo path differs from the new one.
func photoChanged(old, new *string) bool {
	if old == nil {
		return new != nil
	}
	if new == nil {
		return true
	}
	return *old != *new
}
