package devapi

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	kindIncome  = "income"
	kindExpense = "expense"

	defaultForecastMonths = 6
	maxForecastMonths     = 24
)

type Entry struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	Description string `json:"description"`
	// Amount is in minor units.
	Amount int64 `json:"amount"`
}

type Summary struct {
	Currency string `json:"currency"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Balance  int64  `json:"balance"`
	Entries  int    `json:"entries"`
}

type ForecastMonth struct {
	Month            string `json:"month"`
	ProjectedBalance int64  `json:"projectedBalance"`
}

type Forecast struct {
	Currency   string          `json:"currency"`
	MonthlyNet int64           `json:"monthlyNet"`
	Months     []ForecastMonth `json:"months"`
}

type EntryFilter struct {
	Kind     string
	Category string
}

// Ledger holds demo entries per user, seeded on first access.
type Ledger struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]Entry
	now     func() time.Time
}

func NewLedger(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{entries: make(map[uuid.UUID][]Entry), now: now}
}

func (l *Ledger) Entries(userID uuid.UUID, filter EntryFilter) []Entry {
	all := l.load(userID)

	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (l *Ledger) Summary(userID uuid.UUID) Summary {
	s := Summary{Currency: "USD"}
	for _, e := range l.load(userID) {
		switch e.Kind {
		case kindIncome:
			s.Income += e.Amount
		case kindExpense:
			s.Expenses += e.Amount
		}
		s.Entries++
	}
	s.Balance = s.Income - s.Expenses
	return s
}

// Forecast projects the balance forward assuming the current net repeats monthly.
func (l *Ledger) Forecast(userID uuid.UUID, months int) Forecast {
	if months <= 0 {
		months = defaultForecastMonths
	}
	if months > maxForecastMonths {
		months = maxForecastMonths
	}

	s := l.Summary(userID)
	f := Forecast{Currency: s.Currency, MonthlyNet: s.Balance, Months: make([]ForecastMonth, 0, months)}

	start := firstOfMonth(l.now())
	for i := 1; i <= months; i++ {
		f.Months = append(f.Months, ForecastMonth{
			Month:            start.AddDate(0, i, 0).Format("2006-01"),
			ProjectedBalance: s.Balance * int64(i+1),
		})
	}
	return f
}

func (l *Ledger) load(userID uuid.UUID) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, ok := l.entries[userID]
	if !ok {
		entries = seed(firstOfMonth(l.now()))
		l.entries[userID] = entries
	}
	return entries
}

func seed(month time.Time) []Entry {
	demo := []struct {
		day         int
		kind        string
		category    string
		description string
		amount      int64
	}{
		{1, kindIncome, "salary", "Monthly salary", 420000},
		{2, kindExpense, "housing", "Rent", 150000},
		{5, kindExpense, "groceries", "Supermarket", 23550},
		{9, kindExpense, "transport", "Transit pass", 8900},
		{14, kindExpense, "groceries", "Farmers market", 6420},
		{18, kindIncome, "freelance", "Side project", 60000},
		{21, kindExpense, "utilities", "Electricity", 7815},
		{27, kindExpense, "leisure", "Concert tickets", 12000},
	}

	out := make([]Entry, 0, len(demo))
	for i, d := range demo {
		out = append(out, Entry{
			ID:          strconv.Itoa(i + 1),
			Date:        month.AddDate(0, 0, d.day-1).Format(time.DateOnly),
			Kind:        d.kind,
			Category:    d.category,
			Description: d.description,
			Amount:      d.amount,
		})
	}
	return out
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
