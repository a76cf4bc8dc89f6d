package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

var ErrDuplicateStudentNumber = errors.New("student with this student number already exists")

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_number, first_name, last_name, photo, level, created_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Photo, &s.Level, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByNumber retrieves a student by their unique student number.
func (r *StudentRepository) GetByNumber(ctx context.Context, number string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_number, first_name, last_name, photo, level, created_at
		 FROM students WHERE student_number = $1`, number,
	).Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Photo, &s.Level, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListPaginated retrieves students newest-first with pagination and an
// optional level filter.
func (r *StudentRepository) ListPaginated(ctx context.Context, level *model.Level, limit, offset int) ([]model.Student, int, error) {
	// 1. Get total count
	countQuery := `SELECT COUNT(*) FROM students`
	var countArgs []interface{}
	if level != nil {
		countQuery += ` WHERE level = $1`
		countArgs = append(countArgs, *level)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// 2. Get paginated data
	query := `SELECT id, student_number, first_name, last_name, photo, level, created_at FROM students`
	var args []interface{}
	argIdx := 1

	if level != nil {
		query += ` WHERE level = $1`
		args = append(args, *level)
		argIdx++
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Photo, &s.Level, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// ListByLevel retrieves all students of one level, newest-first.
func (r *StudentRepository) ListByLevel(ctx context.Context, level model.Level) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_number, first_name, last_name, photo, level, created_at
		 FROM students WHERE level = $1 ORDER BY created_at DESC`, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Photo, &s.Level, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// ListAll retrieves every student, newest-first. Used by the roster export.
func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_number, first_name, last_name, photo, level, created_at
		 FROM students ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Photo, &s.Level, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (student_number, first_name, last_name, photo, level)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.StudentNumber, s.FirstName, s.LastName, s.Photo, s.Level,
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentNumber
		}
		return err
	}
	return nil
}

// CreateIgnoreDuplicate inserts a student, skipping rows whose student number
// already exists. Returns true when a row was actually inserted.
func (r *StudentRepository) CreateIgnoreDuplicate(ctx context.Context, s *model.Student) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO students (student_number, first_name, last_name, photo, level)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (student_number) DO NOTHING`,
		s.StudentNumber, s.FirstName, s.LastName, s.Photo, s.Level,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Update modifies a student's details.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET student_number = $1, first_name = $2, last_name = $3, photo = $4, level = $5
		 WHERE id = $6`,
		s.StudentNumber, s.FirstName, s.LastName, s.Photo, s.Level, s.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentNumber
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a student by ID. Learning paths cascade.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
