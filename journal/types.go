package journal

import (
	"fmt"
	"strings"
	"time"
)

// Date represents a calendar date in journal format (YYYY/MM/DD). Every
// transaction header carries a date. The ledger preserves input order and
// does not sort by date; chronological ordering is the journal author's
// responsibility.
type Date struct {
	time.Time
}

// dateLayout is the journal date format.
const dateLayout = "2006/01/02"

// ParseDate parses a YYYY/MM/DD date token.
func ParseDate(value string) (Date, error) {
	// time.Parse alone would accept some malformed segment counts, so check
	// the shape first to give a precise error.
	if strings.Count(value, "/") != 2 {
		return Date{}, fmt.Errorf("expected YYYY/MM/DD, got %q", value)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("expected YYYY/MM/DD, got %q", value)
	}
	return Date{Time: t}, nil
}

// String returns the date in journal format.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Account represents a hierarchical account path with colon-separated
// segments, e.g. "assets:savings" or "expenses:food:tim-hortons". The path
// is kept as an opaque string key; Segments exposes the parsed hierarchy for
// reports that need it.
type Account string

// Segments returns the colon-separated path segments.
func (a Account) Segments() []string {
	return strings.Split(string(a), ":")
}

// HasPrefix reports whether prefix is a segment-wise ancestor of this
// account, or equal to it. "assets" is a prefix of "assets:savings", but
// "asset" is not.
func (a Account) HasPrefix(prefix Account) bool {
	if a == prefix {
		return true
	}
	return strings.HasPrefix(string(a), string(prefix)+":")
}

func (a Account) String() string {
	return string(a)
}
