// Package journal parses plain-text, double-entry journal files into a
// structured transaction log.
//
// The journal grammar is line-structured and forgiving:
//
//	2023/03/15 Sandwich
//	    assets:savings             $-6.76
//	    assets:cash                $-1.00
//	    expenses:tips              $1.00
//	    expenses:food:tim-hortons
//
// A line starting with a digit opens a transaction header (date and
// description). Indented lines are postings: an account path, optionally
// followed by a dollar amount. A blank line or end of input terminates the
// block. Lines starting with ';' or '#' are comments and never break a
// block; a trailing ';' comment may follow any line.
//
// At most one posting per transaction may omit its amount. The parser only
// enforces the syntactic invariants (block structure, date and amount
// formats, the single omitted amount); inferring the omitted amount and
// validating that the transaction sums to zero is the ledger package's job.
//
// Numeric invariants are strict even though the grammar is not: amounts are
// exact fixed-point values (see Amount) and any malformed input aborts the
// whole parse with a positioned error.
package journal

// Journal is the parse result: the ordered sequence of candidate
// transactions exactly as they appear in the input. Transactions here are
// syntactically valid but not yet balanced.
type Journal struct {
	Filename     string
	Transactions []*Transaction
}

// Transaction is a candidate transaction parsed from one header line plus
// its posting lines. Postings preserve input order.
type Transaction struct {
	Pos         Position
	Date        Date
	Description string
	Postings    []*Posting
}

// Posting is one account line within a transaction. A nil Amount means the
// amount was omitted in the source and must be inferred during balancing;
// it is distinct from an explicit zero amount.
type Posting struct {
	Pos     Position
	Account Account
	Amount  *Amount
}

// Elided reports whether the posting's amount was omitted in the source.
func (p *Posting) Elided() bool {
	return p.Amount == nil
}
