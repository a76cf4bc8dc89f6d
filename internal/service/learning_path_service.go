package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// Learning path validation errors.
var (
	ErrDateRangeInvalid = errors.New("start date cannot be later than the estimated end date")
	ErrStartInPast      = errors.New("start date cannot be in the past for new learning paths")
)

// ValidatePathDates checks the scheduling rules for a learning path.
// The past-date rule only applies to new paths; "past" means before the
// start of today, so a path starting later today is fine.
func ValidatePathDates(start, estimatedEnd time.Time, isNew bool, now time.Time) error {
	if start.After(estimatedEnd) {
		return ErrDateRangeInvalid
	}
	if isNew {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if start.Before(today) {
			return ErrStartInPast
		}
	}
	return nil
}

// LearningPathService handles learning path business logic.
type LearningPathService struct {
	pathRepo    *repository.LearningPathRepository
	studentRepo *repository.StudentRepository
}

// NewLearningPathService creates a new LearningPathService.
func NewLearningPathService(pathRepo *repository.LearningPathRepository, studentRepo *repository.StudentRepository) *LearningPathService {
	return &LearningPathService{pathRepo: pathRepo, studentRepo: studentRepo}
}

// GetByID retrieves a learning path by ID.
func (s *LearningPathService) GetByID(ctx context.Context, id int) (*model.LearningPath, error) {
	return s.pathRepo.GetByID(ctx, id)
}

// ListByStudent retrieves a student's learning paths in stage order.
// Returns the student's repository error when the student does not exist,
// so a missing student is distinguishable from an empty path list.
func (s *LearningPathService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.LearningPath, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	paths, err := s.pathRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if paths == nil {
		paths = []model.LearningPath{}
	}
	return paths, nil
}

// Create adds a new stage to a student's track. The stage order is assigned
// as the student's current maximum plus one.
func (s *LearningPathService) Create(ctx context.Context, studentID uuid.UUID, req *model.LearningPathRequest) (*model.LearningPath, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	if err := ValidatePathDates(req.StartDate, req.EstimatedEndDate, true, time.Now()); err != nil {
		return nil, err
	}

	path := &model.LearningPath{
		StudentID:        studentID,
		TaskName:         req.TaskName,
		StartDate:        req.StartDate,
		EstimatedEndDate: req.EstimatedEndDate,
		UsedLeave:        trimOptional(req.UsedLeave),
		Notes:            trimOptional(req.Notes),
		RequiredDuration: strings.TrimSpace(req.RequiredDuration),
	}

	if err := s.pathRepo.Create(ctx, path); err != nil {
		return nil, err
	}
	return path, nil
}

// Update modifies an existing stage's editable fields.
func (s *LearningPathService) Update(ctx context.Context, id int, req *model.LearningPathRequest) (*model.LearningPath, error) {
	existing, err := s.pathRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ValidatePathDates(req.StartDate, req.EstimatedEndDate, false, time.Now()); err != nil {
		return nil, err
	}

	existing.TaskName = req.TaskName
	existing.StartDate = req.StartDate
	existing.EstimatedEndDate = req.EstimatedEndDate
	existing.UsedLeave = trimOptional(req.UsedLeave)
	existing.Notes = trimOptional(req.Notes)
	existing.RequiredDuration = strings.TrimSpace(req.RequiredDuration)

	if err := s.pathRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Complete marks a stage as completed.
func (s *LearningPathService) Complete(ctx context.Context, id int) error {
	return s.pathRepo.MarkCompleted(ctx, id)
}

// Delete removes a stage.
func (s *LearningPathService) Delete(ctx context.Context, id int) error {
	return s.pathRepo.Delete(ctx, id)
}

// trimOptional trims an optional string and collapses blanks to nil.
func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
