package ledger

import (
	"fmt"

	"github.com/katanacash/katana/journal"
)

// UnbalancedTransactionError is returned when a fully specified transaction
// does not sum to zero. Residual carries the non-zero remainder for
// diagnostics.
type UnbalancedTransactionError struct {
	Pos         journal.Position
	Date        journal.Date
	Description string
	Residual    journal.Amount
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("%s: transaction does not balance: residual %s", e.Pos, e.Residual)
}

func (e *UnbalancedTransactionError) GetPosition() journal.Position {
	return e.Pos
}
