package ledger

import "github.com/katanacash/katana/journal"

// RegisterEntry is one line of the register report: a matched posting
// annotated with the running balance after applying it. Entries are
// read-only projections built fresh per report call.
type RegisterEntry struct {
	Date        journal.Date
	Description string
	Account     journal.Account
	Amount      journal.Amount

	// Balance is the cumulative balance after this entry.
	Balance journal.Amount

	// First reports whether this is the transaction's first matching
	// posting. Renderers show the date and description once per
	// transaction and leave the other lines blank.
	First bool
}

// Register produces the register report for one account: every posting to
// the account, in ledger (input) order, with a running cumulative balance.
//
// The running balance starts at the opening balance when one is supplied,
// otherwise at zero. An account with no postings yields an empty report,
// not an error.
func (l *Ledger) Register(account string, opening *journal.Amount) []RegisterEntry {
	running := journal.Amount{}
	if opening != nil {
		running = *opening
	}

	var entries []RegisterEntry
	for _, txn := range l.transactions {
		first := true
		for _, p := range txn.Postings {
			if string(p.Account) != account {
				continue
			}

			running = running.Add(p.Amount)
			entries = append(entries, RegisterEntry{
				Date:        txn.Date,
				Description: txn.Description,
				Account:     p.Account,
				Amount:      p.Amount,
				Balance:     running,
				First:       first,
			})
			first = false
		}
	}

	return entries
}
