// Package report derives profit figures from full record sets. Totals are
// recomputed from scratch on every call against the current wall clock;
// nothing here maintains running counters.
package report

import (
	"time"

	"go-sari-pos/internal/model"
)

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ValidPeriod reports whether p is one of the four supported windows.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Start returns the inclusive lower bound of the period window relative to
// now, in now's location. Week starts on the most recent Sunday 00:00.
func Start(p Period, now time.Time) time.Time {
	switch p {
	case PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return midnight.AddDate(0, 0, -int(now.Weekday()))
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	}
	return now
}

// InWindow reports whether ts falls inside the period window ending at now.
// The lower bound is inclusive, the upper bound is now itself.
func InWindow(ts time.Time, p Period, now time.Time) bool {
	start := Start(p, now)
	return !ts.Before(start) && !ts.After(now)
}

// ServiceSummary is the per-service rollup for one window.
type ServiceSummary struct {
	Gross float64 `json:"gross"`
	Fees  float64 `json:"fees"`
	Count int     `json:"count"`
}

// SummarizeServiceTransactions folds the records of one service that fall in
// the window. O(n) over the full record set.
func SummarizeServiceTransactions(records []model.ServiceTransaction, p Period, now time.Time) ServiceSummary {
	var s ServiceSummary
	for _, r := range records {
		if !InWindow(r.CreatedAt, p, now) {
			continue
		}
		s.Gross += r.Amount
		s.Fees += r.Fee
		s.Count++
	}
	return s
}

// SalesSummary is the retail rollup for one window. Profit uses the tubo
// snapshot stored on each sale line, not the product's current margin.
type SalesSummary struct {
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Count   int     `json:"count"`
}

func SummarizeSales(sales []model.Sale, p Period, now time.Time) SalesSummary {
	var s SalesSummary
	for _, sale := range sales {
		if !InWindow(sale.CreatedAt, p, now) {
			continue
		}
		s.Revenue += sale.TotalAmount
		s.Profit += sale.Profit()
		s.Count++
	}
	return s
}

// SummarizeExpenses returns the gastos total for the window.
func SummarizeExpenses(expenses []model.Expense, p Period, now time.Time) float64 {
	var total float64
	for _, e := range expenses {
		if InWindow(e.CreatedAt, p, now) {
			total += e.Amount
		}
	}
	return total
}

// Statement is the unified kita report for one window:
// gross profit minus expenses equals net profit.
type Statement struct {
	Period      Period  `json:"period"`
	Retail      float64 `json:"retail"`
	Load        float64 `json:"load"`
	Ewallet     float64 `json:"ewallet"`
	Bills       float64 `json:"bills"`
	GrossProfit float64 `json:"gross_profit"`
	Expenses    float64 `json:"expenses"`
	NetProfit   float64 `json:"net_profit"`
}

// BuildStatement combines per-service fee totals with the expense total.
func BuildStatement(p Period, now time.Time, sales []model.Sale, services []model.ServiceTransaction, expenses []model.Expense) Statement {
	st := Statement{Period: p}
	st.Retail = SummarizeSales(sales, p, now).Profit

	for _, svc := range []model.ServiceType{model.ServiceLoad, model.ServiceEwallet, model.ServiceBills} {
		var fees float64
		for _, r := range services {
			if r.Service == svc && InWindow(r.CreatedAt, p, now) {
				fees += r.Fee
			}
		}
		switch svc {
		case model.ServiceLoad:
			st.Load = fees
		case model.ServiceEwallet:
			st.Ewallet = fees
		case model.ServiceBills:
			st.Bills = fees
		}
	}

	st.GrossProfit = st.Retail + st.Load + st.Ewallet + st.Bills
	st.Expenses = SummarizeExpenses(expenses, p, now)
	st.NetProfit = st.GrossProfit - st.Expenses
	return st
}
