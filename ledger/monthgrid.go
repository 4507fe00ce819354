package ledger

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/katanacash/katana/journal"
)

// MonthYear identifies one calendar month. It is the row key of the
// balance-changes grid.
type MonthYear struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month a date falls in.
func MonthOf(d journal.Date) MonthYear {
	return MonthYear{Year: d.Year(), Month: d.Month()}
}

// Next returns the following month, rolling over at year end.
func (m MonthYear) Next() MonthYear {
	if m.Month == time.December {
		return MonthYear{Year: m.Year + 1, Month: time.January}
	}
	return MonthYear{Year: m.Year, Month: m.Month + 1}
}

// Before reports whether m is strictly earlier than other.
func (m MonthYear) Before(other MonthYear) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// String renders the month as "2023-04".
func (m MonthYear) String() string {
	return fmt.Sprintf("%d-%02d", m.Year, int(m.Month))
}

type gridKey struct {
	account journal.Account
	month   MonthYear
}

// MonthGrid holds per-account, per-month amounts over a contiguous span of
// months. Cells with no postings read as zero.
type MonthGrid struct {
	first, last MonthYear
	cells       map[gridKey]journal.Amount
	accounts    map[journal.Account]struct{}
}

// NewMonthGrid creates an empty grid spanning first through last inclusive.
func NewMonthGrid(first, last MonthYear) *MonthGrid {
	return &MonthGrid{
		first:    first,
		last:     last,
		cells:    make(map[gridKey]journal.Amount),
		accounts: make(map[journal.Account]struct{}),
	}
}

// Add accumulates an amount into the cell for the account and month.
func (g *MonthGrid) Add(account journal.Account, month MonthYear, amount journal.Amount) {
	key := gridKey{account: account, month: month}
	g.cells[key] = g.cells[key].Add(amount)
	g.accounts[account] = struct{}{}
}

// Get returns the accumulated amount for the account and month, zero when
// the cell is empty.
func (g *MonthGrid) Get(account journal.Account, month MonthYear) journal.Amount {
	return g.cells[gridKey{account: account, month: month}]
}

// Empty reports whether the grid holds no cells at all.
func (g *MonthGrid) Empty() bool {
	return len(g.cells) == 0
}

// Months returns the full span of months from first through last, including
// months with no postings.
func (g *MonthGrid) Months() []MonthYear {
	if g.Empty() {
		return nil
	}

	var months []MonthYear
	for m := g.first; !g.last.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}

// Accounts returns all accounts present in the grid, sorted alphabetically.
func (g *MonthGrid) Accounts() []journal.Account {
	accounts := make([]journal.Account, 0, len(g.accounts))
	for a := range g.accounts {
		accounts = append(accounts, a)
	}

	slices.SortFunc(accounts, func(a, b journal.Account) int {
		return strings.Compare(string(a), string(b))
	})
	return accounts
}

// BalanceChanges aggregates the ledger into a month grid of per-account net
// changes: each cell is the sum of all posting amounts to that account in
// that month. The grid spans from the earliest to the latest transaction
// month, regardless of input order.
func (l *Ledger) BalanceChanges() *MonthGrid {
	if len(l.transactions) == 0 {
		return NewMonthGrid(MonthYear{}, MonthYear{})
	}

	first := MonthOf(l.transactions[0].Date)
	last := first
	for _, txn := range l.transactions[1:] {
		m := MonthOf(txn.Date)
		if m.Before(first) {
			first = m
		}
		if last.Before(m) {
			last = m
		}
	}

	grid := NewMonthGrid(first, last)
	for _, txn := range l.transactions {
		month := MonthOf(txn.Date)
		for _, p := range txn.Postings {
			grid.Add(p.Account, month, p.Amount)
		}
	}

	return grid
}
