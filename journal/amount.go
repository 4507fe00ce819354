package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is an exact dollar amount with a fixed two-digit minor-unit scale
// (cents). Amounts are backed by decimal arithmetic so that summing
// arbitrarily many postings never drifts; no float is involved anywhere.
//
// The zero value is $0.00. An Amount is distinct from an absent amount: a
// posting without an amount token carries a nil *Amount, not a zero one.
type Amount struct {
	d decimal.Decimal
}

// AmountFromCents constructs an Amount from an integer number of cents.
func AmountFromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -2)}
}

// ParseAmount parses an amount token from a posting line. The token must
// start with the currency symbol, followed by an optionally signed decimal
// number with at most two fractional digits:
//
//	$50  $1000.00  $-6.76  $+1.5
func ParseAmount(token string) (Amount, error) {
	if token == "" || token[0] != '$' {
		return Amount{}, fmt.Errorf("amount must start with '$', got %q", token)
	}

	num := token[1:]
	i := 0

	// Optional single sign
	if i < len(num) && (num[i] == '-' || num[i] == '+') {
		i++
	}

	// Integer part (required)
	start := i
	for i < len(num) && num[i] >= '0' && num[i] <= '9' {
		i++
	}
	if i == start {
		return Amount{}, fmt.Errorf("malformed amount %q", token)
	}

	// Optional fractional part, at most two digits
	if i < len(num) && num[i] == '.' {
		i++
		fracStart := i
		for i < len(num) && num[i] >= '0' && num[i] <= '9' {
			i++
		}
		if i == fracStart {
			return Amount{}, fmt.Errorf("malformed amount %q", token)
		}
		if i-fracStart > 2 {
			return Amount{}, fmt.Errorf("amount %q has more than two fractional digits", token)
		}
	}

	if i != len(num) {
		return Amount{}, fmt.Errorf("malformed amount %q", token)
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return Amount{}, fmt.Errorf("malformed amount %q", token)
	}

	return Amount{d: d}, nil
}

// MustParseAmount parses an amount token and panics on error.
// Use only in tests or when the token is known to be valid.
func MustParseAmount(token string) Amount {
	a, err := ParseAmount(token)
	if err != nil {
		panic(err)
	}
	return a
}

// Add returns the exact sum of two amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Neg returns the arithmetic negation of the amount.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// Equal reports whether two amounts are exactly equal.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// Cents returns the amount as an integer number of cents.
func (a Amount) Cents() int64 {
	return a.d.Shift(2).IntPart()
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String renders the amount in journal format with two fractional digits,
// sign after the currency symbol: "$-56.78".
func (a Amount) String() string {
	return "$" + a.d.StringFixed(2)
}
