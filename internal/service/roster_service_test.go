package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestRosterRowToStudent(t *testing.T) {
	tests := []struct {
		name      string
		row       []string
		wantOK    bool
		wantLevel model.Level
	}{
		{"full row", []string{"ST0001", "Ayşe", "Demir", "kıdemli"}, true, model.LevelKidemli},
		{"level defaults", []string{"ST0002", "Mehmet", "Kaya"}, true, model.LevelCozmez},
		{"whitespace trimmed", []string{" ST0003 ", " Elif ", " Çetin ", " çözmez "}, true, model.LevelCozmez},
		{"missing number", []string{"", "Ali", "Aydın"}, false, ""},
		{"missing first name", []string{"ST0004", "", "Aydın"}, false, ""},
		{"missing last name", []string{"ST0005", "Ali", ""}, false, ""},
		{"unknown level", []string{"ST0006", "Ali", "Aydın", "senior"}, false, ""},
		{"short row", []string{"ST0007"}, false, ""},
		{"empty row", nil, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student, ok := rosterRowToStudent(tt.row)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, student)
				return
			}
			assert.Equal(t, tt.wantLevel, student.Level)
			assert.NotEmpty(t, student.StudentNumber)
			assert.NotContains(t, student.StudentNumber, " ")
		})
	}
}

func TestRosterRowToStudent_Fields(t *testing.T) {
	student, ok := rosterRowToStudent([]string{"ST1234", "Zeynep", "Arslan", "kıdemli"})
	assert.True(t, ok)
	assert.Equal(t, "ST1234", student.StudentNumber)
	assert.Equal(t, "Zeynep", student.FirstName)
	assert.Equal(t, "Arslan", student.LastName)
	assert.Equal(t, model.LevelKidemli, student.Level)
}

func TestImportXLSX_UnreadableFile(t *testing.T) {
	svc := NewRosterService(nil, zerolog.Nop())

	_, err := svc.ImportXLSX(context.Background(), strings.NewReader("not an xlsx file"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoster)
	assert.NotErrorIs(t, err, ErrEmptyRoster)
}

func TestImportXLSX_HeaderOnlySheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Student Number", "First Name", "Last Name", "Level"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	svc := NewRosterService(nil, zerolog.Nop())

	_, err := svc.ImportXLSX(context.Background(), &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyRoster)
	assert.NotErrorIs(t, err, ErrInvalidRoster)
}
