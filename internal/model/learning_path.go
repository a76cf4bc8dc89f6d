package model

import (
	"time"

	"github.com/google/uuid"
)

// LearningPath represents one ordered task stage on a student's track.
// SortOrder is assigned automatically (max per student + 1) on creation.
type LearningPath struct {
	ID               int       `json:"id"`
	StudentID        uuid.UUID `json:"student_id"`
	TaskName         string    `json:"task_name"`
	StartDate        time.Time `json:"start_date"`
	EstimatedEndDate time.Time `json:"estimated_end_date"`
	UsedLeave        *string   `json:"used_leave,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	RequiredDuration string    `json:"required_duration"`
	IsCompleted      bool      `json:"is_completed"`
	SortOrder        int       `json:"sort_order"`
}

// LearningPathRequest is the payload for creating or updating a path stage.
type LearningPathRequest struct {
	TaskName         string    `json:"task_name" binding:"required,min=2,max=100"`
	StartDate        time.Time `json:"start_date" binding:"required"`
	EstimatedEndDate time.Time `json:"estimated_end_date" binding:"required"`
	UsedLeave        *string   `json:"used_leave" binding:"omitempty,max=50"`
	Notes            *string   `json:"notes"`
	RequiredDuration string    `json:"required_duration" binding:"required,max=50"`
}
