package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		expected int
	}{
		{
			name:     "Mesmo dia - zero dias",
			start:    time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "45 dias atrás",
			start:    time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
			expected: 45,
		},
		{
			name:     "Fração de dia é truncada",
			start:    time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Data futura não fica negativa",
			start:    time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysSince(tt.start, now))
		})
	}
}

func TestParseAdTime(t *testing.T) {
	parsed, err := ParseAdTime("2024-01-15T10:30:00+0000")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Unix(), parsed.UTC().Unix())

	parsed, err = ParseAdTime("2024-01-15")
	assert.NoError(t, err)
	assert.Equal(t, 15, parsed.Day())

	parsed, err = ParseAdTime("")
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = ParseAdTime("not-a-date")
	assert.Error(t, err)
}

func TestMeanToNearestInt(t *testing.T) {
	assert.Equal(t, 0, MeanToNearestInt(nil))
	assert.Equal(t, 0, MeanToNearestInt([]int{}))
	assert.Equal(t, 5, MeanToNearestInt([]int{5}))
	assert.Equal(t, 3, MeanToNearestInt([]int{2, 3, 4}))
	// 2 + 3 = 5 / 2 = 2.5, arredonda para 3
	assert.Equal(t, 3, MeanToNearestInt([]int{2, 3}))
}
