package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePathDates(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2026, time.March, 10+offset, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		isNew   bool
		wantErr error
	}{
		{"valid future range", day(1), day(5), true, nil},
		{"starts today", day(0), day(3), true, nil},
		{"single day", day(2), day(2), true, nil},
		{"start after end", day(5), day(1), true, ErrDateRangeInvalid},
		{"start in past for new", day(-1), day(5), true, ErrStartInPast},
		{"start in past for existing", day(-10), day(5), false, nil},
		{"start after end for existing", day(5), day(1), false, ErrDateRangeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathDates(tt.start, tt.end, tt.isNew, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePathDates_RangeCheckedBeforePastCheck(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -5)
	end := now.AddDate(0, 0, -10)

	assert.ErrorIs(t, ValidatePathDates(start, end, true, now), ErrDateRangeInvalid)
}

func TestTrimOptional(t *testing.T) {
	assert.Nil(t, trimOptional(nil))

	blank := "   "
	assert.Nil(t, trimOptional(&blank))

	padded := "  two days  "
	got := trimOptional(&padded)
	assert.NotNil(t, got)
	assert.Equal(t, "two days", *got)
}
