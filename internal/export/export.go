// Package export projects records and statements into a flat tabular form
// (ordered headers plus row values) for a generic CSV/text writer. It does
// no file or network I/O itself.
package export

import (
	"strconv"
	"time"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/report"
)

// Table is the flat projection handed to a CSV writer.
type Table struct {
	Headers []string
	Rows    [][]string
}

func peso(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func stamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// Statement projects a profit statement as a two-column table.
func Statement(st report.Statement) Table {
	return Table{
		Headers: []string{"field", "value"},
		Rows: [][]string{
			{"period", string(st.Period)},
			{"retail_profit", peso(st.Retail)},
			{"load_fees", peso(st.Load)},
			{"ewallet_fees", peso(st.Ewallet)},
			{"bills_fees", peso(st.Bills)},
			{"gross_profit", peso(st.GrossProfit)},
			{"expenses", peso(st.Expenses)},
			{"net_profit", peso(st.NetProfit)},
		},
	}
}

// Sales projects the raw sales list, newest first as fetched.
func Sales(sales []model.Sale) Table {
	t := Table{
		Headers: []string{"id", "product", "quantity", "unit_price", "total_amount", "profit", "payment_method", "created_at"},
	}
	for _, s := range sales {
		productName := ""
		if s.Product != nil {
			productName = s.Product.Name
		}
		t.Rows = append(t.Rows, []string{
			s.ID.String(),
			productName,
			strconv.Itoa(s.Quantity),
			peso(s.UnitPrice),
			peso(s.TotalAmount),
			peso(s.Profit()),
			string(s.PaymentMethod),
			stamp(s.CreatedAt),
		})
	}
	return t
}

// ServiceTransactions projects the sub-agent transaction list.
func ServiceTransactions(records []model.ServiceTransaction) Table {
	t := Table{
		Headers: []string{"id", "service", "subtype", "amount", "fee", "created_at"},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.ID.String(),
			string(r.Service),
			r.Subtype,
			peso(r.Amount),
			peso(r.Fee),
			stamp(r.CreatedAt),
		})
	}
	return t
}

// Expenses projects the gastos list.
func Expenses(expenses []model.Expense) Table {
	t := Table{
		Headers: []string{"id", "category", "amount", "description", "created_at"},
	}
	for _, e := range expenses {
		t.Rows = append(t.Rows, []string{
			e.ID.String(),
			e.Category,
			peso(e.Amount),
			e.Description,
			stamp(e.CreatedAt),
		})
	}
	return t
}
