package journal

import "fmt"

// Error types for journal parsing. All parse errors abort the parse of the
// entire journal; there is no partial recovery of a malformed transaction.
// Each error carries the position of the offending line.

// Positioned is implemented by all journal errors, allowing callers to
// render source context without knowing the concrete error type.
type Positioned interface {
	GetPosition() Position
	Error() string
}

// StructureError is returned for malformed block structure: a posting line
// outside any transaction, a transaction with fewer than two postings, or a
// line that cannot start a journal construct at all.
type StructureError struct {
	Pos     Position
	Message string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *StructureError) GetPosition() Position {
	return e.Pos
}

// DateFormatError is returned when a transaction header date cannot be
// parsed as YYYY/MM/DD.
type DateFormatError struct {
	Pos   Position
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("%s: invalid date: expected YYYY/MM/DD, got %q", e.Pos, e.Value)
}

func (e *DateFormatError) GetPosition() Position {
	return e.Pos
}

// AmountFormatError is returned when a posting carries an amount token that
// cannot be parsed. An absent amount is legal and is not this error.
type AmountFormatError struct {
	Pos    Position
	Token  string
	Reason error
}

func (e *AmountFormatError) Error() string {
	return fmt.Sprintf("%s: invalid amount: %v", e.Pos, e.Reason)
}

func (e *AmountFormatError) GetPosition() Position {
	return e.Pos
}

func (e *AmountFormatError) Unwrap() error {
	return e.Reason
}

// AmbiguousBalanceError is returned when more than one posting in a
// transaction omits its amount, making balance inference ambiguous.
type AmbiguousBalanceError struct {
	Pos    Position
	First  Account
	Second Account
}

func (e *AmbiguousBalanceError) Error() string {
	return fmt.Sprintf("%s: more than one posting without an amount (%s, %s)",
		e.Pos, e.First, e.Second)
}

func (e *AmbiguousBalanceError) GetPosition() Position {
	return e.Pos
}
