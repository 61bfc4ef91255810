package devapi

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 17, 10, 0, 0, 0, time.UTC)
}

func TestLedger_Summary(t *testing.T) {
	t.Parallel()

	l := NewLedger(fixedNow)
	s := l.Summary(uuid.New())

	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, int64(480000), s.Income)
	assert.Equal(t, int64(208685), s.Expenses)
	assert.Equal(t, int64(271315), s.Balance)
	assert.Equal(t, 8, s.Entries)
}

func TestLedger_Entries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter EntryFilter
		want   int
	}{
		{name: "all", want: 8},
		{name: "income only", filter: EntryFilter{Kind: kindIncome}, want: 2},
		{name: "expense category", filter: EntryFilter{Kind: kindExpense, Category: "groceries"}, want: 2},
		{name: "unknown category", filter: EntryFilter{Category: "travel"}, want: 0},
	}

	l := NewLedger(fixedNow)
	userID := uuid.New()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries := l.Entries(userID, tt.filter)
			assert.Len(t, entries, tt.want)
			for _, e := range entries {
				assert.Contains(t, e.Date, "2025-03-")
			}
		})
	}
}

func TestLedger_Forecast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		months    int
		wantLen   int
		wantFirst string
	}{
		{name: "default horizon", months: 0, wantLen: defaultForecastMonths, wantFirst: "2025-04"},
		{name: "explicit horizon", months: 3, wantLen: 3, wantFirst: "2025-04"},
		{name: "capped horizon", months: 100, wantLen: maxForecastMonths, wantFirst: "2025-04"},
	}

	l := NewLedger(fixedNow)
	userID := uuid.New()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := l.Forecast(userID, tt.months)
			require.Len(t, f.Months, tt.wantLen)
			assert.Equal(t, tt.wantFirst, f.Months[0].Month)
			assert.Equal(t, int64(271315), f.MonthlyNet)
			assert.Equal(t, int64(271315*2), f.Months[0].ProjectedBalance)
		})
	}
}
