// Package ledger turns parsed journal transactions into a validated,
// queryable ledger.
//
// The ledger enforces the double-entry invariant: every transaction's
// postings sum to exactly zero. A transaction may omit the amount on at most
// one posting; the balancer infers it as the negation of the sum of the
// others, which balances the transaction by construction. Fully specified
// transactions whose amounts do not sum to zero are rejected with the
// non-zero residual.
//
// Once built, the ledger is immutable and safe for concurrent reads; reports
// (register, balance changes) are projections that never mutate it. There is
// no removal or in-place edit: callers replace the whole ledger by
// re-parsing the journal.
//
// Example usage:
//
//	j, err := journal.Parse(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	l := ledger.New()
//	if err := l.Process(ctx, j); err != nil {
//	    // first unbalanced or ambiguous transaction
//	}
//
//	entries := l.Register("assets:savings", nil)
package ledger

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katanacash/katana/journal"
	"github.com/katanacash/katana/telemetry"
)

// Posting is one fully specified account movement within a validated
// transaction.
type Posting struct {
	Account journal.Account
	Amount  journal.Amount
}

// Transaction is a validated, immutable transaction whose postings sum to
// exactly zero. The posting whose amount was inferred appears in its
// original input position with its concrete amount filled in.
type Transaction struct {
	Pos         journal.Position
	Date        journal.Date
	Description string
	Postings    []Posting
}

// Sum returns the exact sum of all posting amounts. It is zero for every
// transaction the balancer admits.
func (t *Transaction) Sum() journal.Amount {
	var sum journal.Amount
	for _, p := range t.Postings {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Ledger is the append-only ordered collection of validated transactions.
// Order is input-file order; the ledger does not sort by date.
type Ledger struct {
	transactions []*Transaction
}

// New creates a new empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Process balances every candidate transaction in the journal and appends
// it to the ledger. The first transaction that cannot be balanced aborts
// processing; the ledger should then be discarded.
func (l *Ledger) Process(ctx context.Context, j *journal.Journal) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("ledger.process (%d transactions)", len(j.Transactions)))
	defer timer.End()

	for _, txn := range j.Transactions {
		balanced, err := balance(txn)
		if err != nil {
			return err
		}
		if err := l.Add(balanced); err != nil {
			return err
		}
	}

	return nil
}

// Add appends a transaction to the ledger. The balancer guarantees the
// invariants hold for everything it produces, so the checks here are a
// defensive re-check for manually constructed transactions.
func (l *Ledger) Add(t *Transaction) error {
	if len(t.Postings) < 2 {
		return fmt.Errorf("transaction needs at least two postings, got %d", len(t.Postings))
	}
	if sum := t.Sum(); !sum.IsZero() {
		return fmt.Errorf("transaction does not sum to zero: %s", sum)
	}

	l.transactions = append(l.transactions, t)
	return nil
}

// Transactions returns the ordered transactions. The returned slice is a
// read-only view; callers must not modify it.
func (l *Ledger) Transactions() []*Transaction {
	return l.transactions
}

// TransactionCount returns the number of transactions in the ledger.
func (l *Ledger) TransactionCount() int {
	return len(l.transactions)
}

// AccountTransactionCount returns the number of distinct transactions that
// contain at least one posting to the given account.
func (l *Ledger) AccountTransactionCount(account string) int {
	count := 0
	for _, txn := range l.transactions {
		for _, p := range txn.Postings {
			if string(p.Account) == account {
				count++
				break
			}
		}
	}
	return count
}

// MatchedPosting pairs a posting with the transaction it belongs to.
type MatchedPosting struct {
	Transaction *Transaction
	Posting     Posting
}

// PostingsFor returns all postings whose account satisfies the predicate,
// in ledger order. Reports use exact matching today; the predicate form
// leaves room for prefix matching without changing the store.
func (l *Ledger) PostingsFor(match func(journal.Account) bool) []MatchedPosting {
	var matched []MatchedPosting
	for _, txn := range l.transactions {
		for _, p := range txn.Postings {
			if match(p.Account) {
				matched = append(matched, MatchedPosting{Transaction: txn, Posting: p})
			}
		}
	}
	return matched
}

// Accounts returns all account paths posted to, sorted alphabetically.
func (l *Ledger) Accounts() []string {
	seen := make(map[string]struct{})
	var accounts []string
	for _, txn := range l.transactions {
		for _, p := range txn.Postings {
			name := string(p.Account)
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				accounts = append(accounts, name)
			}
		}
	}

	slices.SortFunc(accounts, strings.Compare)
	return accounts
}
