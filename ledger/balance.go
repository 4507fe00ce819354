package ledger

import "github.com/katanacash/katana/journal"

// balance validates one candidate transaction and produces its fully
// specified form.
//
// With no elided amount the postings must already sum to exactly zero.
// With exactly one elided amount the missing value is the negation of the
// sum of the others, which makes the transaction balance by construction;
// no further check is needed on that branch. All arithmetic is exact
// fixed-point, so inference never rounds.
func balance(txn *journal.Transaction) (*Transaction, error) {
	var sum journal.Amount
	elided := -1

	for i, p := range txn.Postings {
		if p.Elided() {
			if elided >= 0 {
				// The parser rejects this already; re-check in case the
				// candidate was constructed by hand.
				return nil, &journal.AmbiguousBalanceError{
					Pos:    p.Pos,
					First:  txn.Postings[elided].Account,
					Second: p.Account,
				}
			}
			elided = i
			continue
		}
		sum = sum.Add(*p.Amount)
	}

	if elided < 0 && !sum.IsZero() {
		return nil, &UnbalancedTransactionError{
			Pos:         txn.Pos,
			Date:        txn.Date,
			Description: txn.Description,
			Residual:    sum,
		}
	}

	balanced := &Transaction{
		Pos:         txn.Pos,
		Date:        txn.Date,
		Description: txn.Description,
		Postings:    make([]Posting, len(txn.Postings)),
	}

	for i, p := range txn.Postings {
		amount := sum.Neg()
		if i != elided {
			amount = *p.Amount
		}
		balanced.Postings[i] = Posting{Account: p.Account, Amount: amount}
	}

	return balanced, nil
}
