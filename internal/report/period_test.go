package report

import (
	"testing"
	"time"

	"go-sari-pos/internal/model"
)

// Wednesday 2025-06-18 15:30 local.
var now = time.Date(2025, 6, 18, 15, 30, 0, 0, time.Local)

func TestStart(t *testing.T) {
	cases := []struct {
		period Period
		want   time.Time
	}{
		{PeriodToday, time.Date(2025, 6, 18, 0, 0, 0, 0, time.Local)},
		{PeriodWeek, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)}, // most recent Sunday
		{PeriodMonth, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)},
		{PeriodYear, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)},
	}
	for _, c := range cases {
		if got := Start(c.period, now); !got.Equal(c.want) {
			t.Errorf("Start(%s) = %v, want %v", c.period, got, c.want)
		}
	}
}

func TestStartOnSunday(t *testing.T) {
	sunday := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if got := Start(PeriodWeek, sunday); !got.Equal(want) {
		t.Errorf("Start(week) on a Sunday = %v, want %v", got, want)
	}
}

func TestInWindowBoundaryInclusive(t *testing.T) {
	weekStart := Start(PeriodWeek, now)
	if !InWindow(weekStart, PeriodWeek, now) {
		t.Error("record exactly at week start must be included")
	}
	if InWindow(weekStart.Add(-time.Second), PeriodWeek, now) {
		t.Error("record one second before week start must be excluded")
	}
	if !InWindow(now, PeriodWeek, now) {
		t.Error("record at now must be included")
	}
}

func tx(service model.ServiceType, amount, fee float64, at time.Time) model.ServiceTransaction {
	t := model.ServiceTransaction{Service: service, Amount: amount, Fee: fee}
	t.CreatedAt = at
	return t
}

func TestSummarizeServiceTransactions(t *testing.T) {
	records := []model.ServiceTransaction{
		tx(model.ServiceLoad, 100, 5, now.Add(-time.Hour)),            // today
		tx(model.ServiceLoad, 50, 3, now.AddDate(0, 0, -2)),           // this week
		tx(model.ServiceLoad, 200, 10, now.AddDate(0, 0, -10)),        // this month only
		tx(model.ServiceLoad, 300, 15, now.AddDate(0, -3, 0)),         // this year only
		tx(model.ServiceLoad, 400, 25, now.AddDate(-1, 0, 0)),         // last year
	}

	today := SummarizeServiceTransactions(records, PeriodToday, now)
	if today.Gross != 100 || today.Fees != 5 || today.Count != 1 {
		t.Errorf("today = %+v", today)
	}

	week := SummarizeServiceTransactions(records, PeriodWeek, now)
	if week.Gross != 150 || week.Fees != 8 || week.Count != 2 {
		t.Errorf("week = %+v", week)
	}

	month := SummarizeServiceTransactions(records, PeriodMonth, now)
	if month.Fees != 18 || month.Count != 3 {
		t.Errorf("month = %+v", month)
	}

	year := SummarizeServiceTransactions(records, PeriodYear, now)
	if year.Fees != 33 || year.Count != 4 {
		t.Errorf("year = %+v", year)
	}
}

// Calling the aggregator twice over an unchanged record set must return
// identical totals.
func TestSummarizeIdempotent(t *testing.T) {
	records := []model.ServiceTransaction{
		tx(model.ServiceBills, 600, 20, now.Add(-time.Minute)),
		tx(model.ServiceBills, 100, 10, now.AddDate(0, 0, -1)),
	}
	a := SummarizeServiceTransactions(records, PeriodWeek, now)
	b := SummarizeServiceTransactions(records, PeriodWeek, now)
	if a != b {
		t.Errorf("aggregator not idempotent: %+v vs %+v", a, b)
	}
}

// today's fees plus the fees of the earlier week days partition the week
// total when the records span exactly those days.
func TestWeekPartition(t *testing.T) {
	// Saturday, so the week covers Sunday..Saturday entirely.
	saturday := time.Date(2025, 6, 21, 20, 0, 0, 0, time.Local)
	var records []model.ServiceTransaction
	for d := 0; d < 7; d++ {
		records = append(records, tx(model.ServiceEwallet, 600, 20, saturday.AddDate(0, 0, -d)))
	}

	today := SummarizeServiceTransactions(records, PeriodToday, saturday).Fees
	week := SummarizeServiceTransactions(records, PeriodWeek, saturday).Fees

	var earlier float64
	start := Start(PeriodWeek, saturday)
	todayStart := Start(PeriodToday, saturday)
	for _, r := range records {
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(todayStart) {
			earlier += r.Fee
		}
	}

	if today+earlier != week {
		t.Errorf("today (%v) + earlier days (%v) != week (%v)", today, earlier, week)
	}
	if week != 140 {
		t.Errorf("week total = %v, want 140", week)
	}
}

func TestBuildStatement(t *testing.T) {
	sale := model.Sale{Quantity: 5, UnitPrice: 10, TotalAmount: 50, ProfitPerUnit: 2}
	sale.CreatedAt = now.Add(-time.Hour)

	services := []model.ServiceTransaction{
		tx(model.ServiceLoad, 100, 10, now.Add(-time.Hour)),
		tx(model.ServiceEwallet, 600, 20, now.Add(-2*time.Hour)),
	}

	expense := model.Expense{Category: "kuryente", Amount: 50}
	expense.CreatedAt = now.Add(-time.Hour)

	st := BuildStatement(PeriodToday, now, []model.Sale{sale}, services, []model.Expense{expense})
	if st.Retail != 10 {
		t.Errorf("retail = %v, want 10", st.Retail)
	}
	if st.Load != 10 || st.Ewallet != 20 || st.Bills != 0 {
		t.Errorf("services = %v/%v/%v", st.Load, st.Ewallet, st.Bills)
	}
	if st.GrossProfit != 40 {
		t.Errorf("gross = %v, want 40", st.GrossProfit)
	}
	if st.Expenses != 50 {
		t.Errorf("expenses = %v, want 50", st.Expenses)
	}
	if st.NetProfit != -10 {
		t.Errorf("net = %v, want -10", st.NetProfit)
	}
}
