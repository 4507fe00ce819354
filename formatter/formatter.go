// Package formatter renders a parsed journal back to canonical text.
//
// Output uses one blank line between transactions, four-space posting
// indentation, and amount tokens aligned in a single column across the
// whole journal. Postings whose amount was omitted in the source stay
// omitted; formatting happens on the parse result, before balancing.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katanacash/katana/journal"
)

// Formatter formats journals with configurable layout.
type Formatter struct {
	indentation  int
	amountColumn int // 0 means auto-calculate from content
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithIndentation sets the number of spaces postings are indented by.
func WithIndentation(n int) Option {
	return func(f *Formatter) {
		f.indentation = n
	}
}

// WithAmountColumn pins the column amounts start at instead of
// auto-calculating it from the widest account path.
func WithAmountColumn(n int) Option {
	return func(f *Formatter) {
		f.amountColumn = n
	}
}

// New creates a formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{indentation: 4}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format writes the whole journal to w with a blank line between
// transactions.
func (f *Formatter) Format(j *journal.Journal, w io.Writer) error {
	column := f.amountColumn
	if column == 0 {
		column = f.autoColumn(j)
	}

	for i, txn := range j.Transactions {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := f.formatTransaction(txn, column, w); err != nil {
			return err
		}
	}

	return nil
}

// FormatTransaction writes a single transaction to w, aligning its amounts
// against its own widest account path.
func (f *Formatter) FormatTransaction(txn *journal.Transaction, w io.Writer) error {
	column := f.amountColumn
	if column == 0 {
		column = f.autoColumn(&journal.Journal{Transactions: []*journal.Transaction{txn}})
	}
	return f.formatTransaction(txn, column, w)
}

func (f *Formatter) formatTransaction(txn *journal.Transaction, column int, w io.Writer) error {
	header := txn.Date.String()
	if txn.Description != "" {
		header += " " + txn.Description
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	indent := strings.Repeat(" ", f.indentation)
	for _, p := range txn.Postings {
		if p.Elided() {
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, p.Account); err != nil {
				return err
			}
			continue
		}

		padding := column - f.indentation - runewidth.StringWidth(string(p.Account))
		if padding < 2 {
			padding = 2
		}
		if _, err := fmt.Fprintf(w, "%s%s%s%s\n", indent, p.Account, strings.Repeat(" ", padding), p.Amount); err != nil {
			return err
		}
	}

	return nil
}

// autoColumn computes the amount column from the widest account path that
// carries an amount, leaving a two-space gutter.
func (f *Formatter) autoColumn(j *journal.Journal) int {
	widest := 0
	for _, txn := range j.Transactions {
		for _, p := range txn.Postings {
			if p.Elided() {
				continue
			}
			if w := runewidth.StringWidth(string(p.Account)); w > widest {
				widest = w
			}
		}
	}
	return f.indentation + widest + 2
}
