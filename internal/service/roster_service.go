package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/xuri/excelize/v2"
)

// Roster import errors. ErrInvalidRoster marks files that cannot be parsed
// as xlsx; storage failures pass through unwrapped so callers can tell a bad
// upload apart from a database problem.
var (
	ErrEmptyRoster   = errors.New("roster contains no importable rows")
	ErrInvalidRoster = errors.New("roster file cannot be read")
)

// RosterImportResult summarizes one roster import run.
type RosterImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// RosterService imports and exports the student roster as xlsx.
// Import layout: header row, then column A = student number,
// B = first name, C = last name, D = level (optional).
type RosterService struct {
	studentRepo *repository.StudentRepository
	log         zerolog.Logger
}

// NewRosterService creates a new RosterService.
func NewRosterService(studentRepo *repository.StudentRepository, log zerolog.Logger) *RosterService {
	return &RosterService{
		studentRepo: studentRepo,
		log:         log.With().Str("component", "roster_service").Logger(),
	}
}

// ImportXLSX reads an xlsx roster and inserts the students it lists.
// Rows missing a student number or name are skipped; rows whose student
// number already exists count as duplicates.
func (s *RosterService) ImportXLSX(ctx context.Context, file io.Reader) (*RosterImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn().Err(err).Msg("Close xlsx")
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyRoster
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrInvalidRoster, sheetName, err)
	}

	result := &RosterImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // Header row.
		}

		student, ok := rosterRowToStudent(row)
		if !ok {
			s.log.Debug().Int("row", i+1).Msg("Skipping incomplete roster row")
			result.Skipped++
			continue
		}

		inserted, err := s.studentRepo.CreateIgnoreDuplicate(ctx, student)
		if err != nil {
			return nil, fmt.Errorf("insert row %d: %w", i+1, err)
		}
		if inserted {
			result.Imported++
		} else {
			result.Duplicates++
		}
	}

	if result.Imported == 0 && result.Duplicates == 0 {
		return nil, ErrEmptyRoster
	}

	s.log.Info().
		Int("imported", result.Imported).
		Int("duplicates", result.Duplicates).
		Int("skipped", result.Skipped).
		Msg("Roster import finished")

	return result, nil
}

// rosterRowToStudent maps one sheet row to a student. Returns false when
// required cells are missing or the level value is unknown.
func rosterRowToStudent(row []string) (*model.Student, bool) {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	number := cell(0)
	firstName := cell(1)
	lastName := cell(2)
	if number == "" || firstName == "" || lastName == "" {
		return nil, false
	}

	level := model.LevelCozmez
	if raw := cell(3); raw != "" {
		switch model.Level(raw) {
		case model.LevelCozmez, model.LevelKidemli:
			level = model.Level(raw)
		default:
			return nil, false
		}
	}

	return &model.Student{
		StudentNumber: number,
		FirstName:     firstName,
		LastName:      lastName,
		Level:         level,
	}, true
}

// ExportXLSX renders the full roster as an xlsx workbook.
func (s *RosterService) ExportXLSX(ctx context.Context) (*excelize.File, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Student Number", "First Name", "Last Name", "Level", "Created At"}
	for col, h := range headers {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, h); err != nil {
			return nil, err
		}
	}

	for i, st := range students {
		values := []interface{}{
			st.StudentNumber,
			st.FirstName,
			st.LastName,
			string(st.Level),
			st.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cellName, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
