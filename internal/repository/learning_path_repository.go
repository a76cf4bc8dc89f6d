package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// LearningPathRepository handles learning path data access.
type LearningPathRepository struct {
	pool *pgxpool.Pool
}

// NewLearningPathRepository creates a new LearningPathRepository.
func NewLearningPathRepository(pool *pgxpool.Pool) *LearningPathRepository {
	return &LearningPathRepository{pool: pool}
}

// GetByID retrieves a learning path by ID.
func (r *LearningPathRepository) GetByID(ctx context.Context, id int) (*model.LearningPath, error) {
	p := &model.LearningPath{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_id, task_name, start_date, estimated_end_date, used_leave, notes,
		        required_duration, is_completed, sort_order
		 FROM learning_paths WHERE id = $1`, id,
	).Scan(&p.ID, &p.StudentID, &p.TaskName, &p.StartDate, &p.EstimatedEndDate, &p.UsedLeave,
		&p.Notes, &p.RequiredDuration, &p.IsCompleted, &p.SortOrder)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByStudent retrieves a student's learning paths in stage order.
func (r *LearningPathRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.LearningPath, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, task_name, start_date, estimated_end_date, used_leave, notes,
		        required_duration, is_completed, sort_order
		 FROM learning_paths WHERE student_id = $1 ORDER BY sort_order`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []model.LearningPath
	for rows.Next() {
		var p model.LearningPath
		if err := rows.Scan(&p.ID, &p.StudentID, &p.TaskName, &p.StartDate, &p.EstimatedEndDate,
			&p.UsedLeave, &p.Notes, &p.RequiredDuration, &p.IsCompleted, &p.SortOrder); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Create inserts a new learning path. The stage order is assigned inside the
// statement as the student's current maximum plus one.
func (r *LearningPathRepository) Create(ctx context.Context, p *model.LearningPath) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO learning_paths
		   (student_id, task_name, start_date, estimated_end_date, used_leave, notes, required_duration, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7,
		   (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM learning_paths WHERE student_id = $1))
		 RETURNING id, sort_order`,
		p.StudentID, p.TaskName, p.StartDate, p.EstimatedEndDate, p.UsedLeave, p.Notes, p.RequiredDuration,
	).Scan(&p.ID, &p.SortOrder)
}

// Update modifies a learning path's editable fields. The stage order and
// completion flag are managed by their own operations.
func (r *LearningPathRepository) Update(ctx context.Context, p *model.LearningPath) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE learning_paths
		 SET task_name = $1, start_date = $2, estimated_end_date = $3, used_leave = $4,
		     notes = $5, required_duration = $6
		 WHERE id = $7`,
		p.TaskName, p.StartDate, p.EstimatedEndDate, p.UsedLeave, p.Notes, p.RequiredDuration, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MarkCompleted sets the completion flag on a learning path.
func (r *LearningPathRepository) MarkCompleted(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE learning_paths SET is_completed = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a learning path by ID.
func (r *LearningPathRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM learning_paths WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
