package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{
			name:    "valid RFC3339",
			dateStr: "2026-09-10T08:00:00Z",
		},
		{
			name:    "valid RFC3339 with timezone",
			dateStr: "2026-09-10T08:00:00+02:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
		})
	}
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2026-09-10",
			wantYear:  2026,
			wantMonth: time.September,
			wantDay:   10,
		},
		{
			name:      "leap year date",
			dateStr:   "2028-02-29",
			wantYear:  2028,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestFutureDate(t *testing.T) {
	got := FutureDate(7)

	parsed, err := time.Parse("2006-01-02", got)
	assert.NoError(t, err)
	assert.True(t, parsed.After(time.Now().AddDate(0, 0, 5)))
}

func TestPtr(t *testing.T) {
	i := Ptr(42)
	assert.Equal(t, 42, *i)

	s := Ptr("hello")
	assert.Equal(t, "hello", *s)
}
