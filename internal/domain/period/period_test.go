package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/types"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name  string
		month string
		start string
		end   string
	}{
		{"january", "2025-01", "2025-01-01", "2025-01-31"},
		{"february", "2025-02", "2025-02-01", "2025-02-28"},
		{"february leap year", "2024-02", "2024-02-01", "2024-02-29"},
		{"april", "2025-04", "2025-04-01", "2025-04-30"},
		{"december wraps year", "2025-12", "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := MonthRange(tt.month)
			require.NoError(t, err)
			require.NotNil(t, rng)
			assert.Equal(t, tt.start, rng.Start.String())
			assert.Equal(t, tt.end, rng.End.String())
		})
	}
}

func TestMonthRange_EmptyMeansNoFilter(t *testing.T) {
	rng, err := MonthRange("")
	require.NoError(t, err)
	assert.Nil(t, rng)
}

func TestMonthRange_Invalid(t *testing.T) {
	for _, month := range []string{"2025", "2025-13", "02-2025", "garbage"} {
		_, err := MonthRange(month)
		require.Error(t, err, month)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestRange_ContainsBoundariesInclusive(t *testing.T) {
	rng, err := MonthRange("2025-06")
	require.NoError(t, err)

	assert.True(t, rng.Contains(types.NewDate(2025, time.June, 1)), "first day included")
	assert.True(t, rng.Contains(types.NewDate(2025, time.June, 30)), "last day included")
	assert.True(t, rng.Contains(types.NewDate(2025, time.June, 15)))
	assert.False(t, rng.Contains(types.NewDate(2025, time.May, 31)))
	assert.False(t, rng.Contains(types.NewDate(2025, time.July, 1)))
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03", CurrentMonth(now))
}
