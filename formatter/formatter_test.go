package formatter

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/katanacash/katana/journal"
)

func TestFormatter_Format(t *testing.T) {
	input := `; comments are not preserved
2023/03/01   Opening Balance
  assets:savings $1000.00
  equity:opening-balances

2023/03/05 Lunch
        expenses:food   $12.50
        assets:cash     $-12.50
`

	j, err := journal.Parse(input)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, New().Format(j, &buf))

	want := `2023/03/01 Opening Balance
    assets:savings  $1000.00
    equity:opening-balances

2023/03/05 Lunch
    expenses:food   $12.50
    assets:cash     $-12.50
`
	assert.Equal(t, want, buf.String())
}

func TestFormatter_FormatWithOptions(t *testing.T) {
	input := `2023/03/05 Lunch
    expenses:food  $12.50
    assets:cash    $-12.50
`

	j, err := journal.Parse(input)
	assert.NoError(t, err)

	var buf bytes.Buffer
	f := New(WithIndentation(2), WithAmountColumn(30))
	assert.NoError(t, f.Format(j, &buf))

	want := `2023/03/05 Lunch
  expenses:food               $12.50
  assets:cash                 $-12.50
`
	assert.Equal(t, want, buf.String())
}

func TestFormatter_FormatTransaction(t *testing.T) {
	j, err := journal.Parse(`2023/03/05
    expenses:coffee  $4.50
    assets:cash
`)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, New().FormatTransaction(j.Transactions[0], &buf))

	want := `2023/03/05
    expenses:coffee  $4.50
    assets:cash
`
	assert.Equal(t, want, buf.String())
}

func TestFormatter_FormatIsIdempotent(t *testing.T) {
	input := `2023/03/01 Opening Balance
    assets:savings  $1000.00
    equity:opening-balances
`

	j, err := journal.Parse(input)
	assert.NoError(t, err)

	var once bytes.Buffer
	assert.NoError(t, New().Format(j, &once))

	reparsed, err := journal.Parse(once.String())
	assert.NoError(t, err)

	var twice bytes.Buffer
	assert.NoError(t, New().Format(reparsed, &twice))

	assert.Equal(t, once.String(), twice.String())
}
