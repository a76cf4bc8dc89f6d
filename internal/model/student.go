package model

import (
	"time"

	"github.com/google/uuid"
)

// Level represents the student's seniority level.
type Level string

const (
	LevelCozmez  Level = "çözmez"
	LevelKidemli Level = "kıdemli"
)

// Student represents one tracked student record.
type Student struct {
	ID            uuid.UUID `json:"id"`
	StudentNumber string    `json:"student_number"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Photo         *string   `json:"photo,omitempty"`
	Level         Level     `json:"level"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateStudentRequest is the payload for creating a new student.
type CreateStudentRequest struct {
	StudentNumber string  `json:"student_number" binding:"required,min=2,max=20"`
	FirstName     string  `json:"first_name" binding:"required,min=2,max=50"`
	LastName      string  `json:"last_name" binding:"required,min=2,max=50"`
	Photo         *string `json:"photo" binding:"omitempty,max=100"`
	Level         Level   `json:"level" binding:"required,oneof=çözmez kıdemli"`
}

// UpdateStudentRequest is the payload for updating an existing student.
type UpdateStudentRequest struct {
	StudentNumber string  `json:"student_number" binding:"required,min=2,max=20"`
	FirstName     string  `json:"first_name" binding:"required,min=2,max=50"`
	LastName      string  `json:"last_name" binding:"required,min=2,max=50"`
	Photo         *string `json:"photo" binding:"omitempty,max=100"`
	Level         Level   `json:"level" binding:"required,oneof=çözmez kıdemli"`
}
