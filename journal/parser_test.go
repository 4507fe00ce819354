package journal

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseJournal(t *testing.T) {
	input := `; personal journal
2023/03/01 Opening Balance
    assets:savings      $1000.00
    equity:opening-balances

# march expenses
2023/03/05 Lunch
    expenses:food       $12.50 ; tim hortons
    assets:cash         $-12.50
`

	j, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(j.Transactions))

	first := j.Transactions[0]
	assert.Equal(t, "2023/03/01", first.Date.String())
	assert.Equal(t, "Opening Balance", first.Description)
	assert.Equal(t, 2, len(first.Postings))
	assert.Equal(t, Account("assets:savings"), first.Postings[0].Account)
	assert.Equal(t, "$1000.00", first.Postings[0].Amount.String())
	assert.Equal(t, Account("equity:opening-balances"), first.Postings[1].Account)
	assert.True(t, first.Postings[1].Elided())

	second := j.Transactions[1]
	assert.Equal(t, "Lunch", second.Description)
	assert.Equal(t, "$12.50", second.Postings[0].Amount.String())
	assert.Equal(t, "$-12.50", second.Postings[1].Amount.String())
	assert.Equal(t, 7, second.Pos.Line)
}

func TestParseLastTransactionAtEOF(t *testing.T) {
	// No trailing blank line; end of input closes the block.
	input := "2023/03/05 Coffee\n    expenses:coffee  $4.50\n    assets:cash  $-4.50"

	j, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(j.Transactions))
	assert.Equal(t, 2, len(j.Transactions[0].Postings))
}

func TestParseHeaderWithoutDescription(t *testing.T) {
	input := "2023/03/05\n    expenses:coffee  $4.50\n    assets:cash  $-4.50\n"

	j, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, "", j.Transactions[0].Description)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  int
		checkFunc func(*testing.T, error)
	}{
		{
			name:     "malformed date",
			input:    "2023-03-05 Coffee\n    expenses:coffee  $4.50\n    assets:cash\n",
			wantLine: 1,
			checkFunc: func(t *testing.T, err error) {
				e, ok := err.(*DateFormatError)
				assert.True(t, ok, "want DateFormatError, got %T", err)
				assert.Equal(t, "2023-03-05", e.Value)
			},
		},
		{
			name:     "malformed amount",
			input:    "2023/03/05 Coffee\n    expenses:coffee  $4.505\n    assets:cash\n",
			wantLine: 2,
			checkFunc: func(t *testing.T, err error) {
				e, ok := err.(*AmountFormatError)
				assert.True(t, ok, "want AmountFormatError, got %T", err)
				assert.Equal(t, "$4.505", e.Token)
				assert.Equal(t, 22, e.Pos.Column)
			},
		},
		{
			name:     "two elided amounts",
			input:    "2023/03/05 Coffee\n    expenses:coffee\n    assets:cash\n",
			wantLine: 3,
			checkFunc: func(t *testing.T, err error) {
				e, ok := err.(*AmbiguousBalanceError)
				assert.True(t, ok, "want AmbiguousBalanceError, got %T", err)
				assert.Equal(t, Account("expenses:coffee"), e.First)
				assert.Equal(t, Account("assets:cash"), e.Second)
			},
		},
		{
			name:     "single posting",
			input:    "2023/03/05 Coffee\n    expenses:coffee  $4.50\n",
			wantLine: 1,
			checkFunc: func(t *testing.T, err error) {
				_, ok := err.(*StructureError)
				assert.True(t, ok, "want StructureError, got %T", err)
			},
		},
		{
			name:     "posting outside a transaction",
			input:    "    expenses:coffee  $4.50\n",
			wantLine: 1,
			checkFunc: func(t *testing.T, err error) {
				_, ok := err.(*StructureError)
				assert.True(t, ok, "want StructureError, got %T", err)
			},
		},
		{
			name:     "unindented non-header line",
			input:    "2023/03/05 Coffee\nexpenses:coffee  $4.50\n    assets:cash\n",
			wantLine: 2,
			checkFunc: func(t *testing.T, err error) {
				_, ok := err.(*StructureError)
				assert.True(t, ok, "want StructureError, got %T", err)
			},
		},
		{
			name:     "posting with amount but no account",
			input:    "2023/03/05 Coffee\n     $4.50\n    assets:cash\n",
			wantLine: 2,
			checkFunc: func(t *testing.T, err error) {
				_, ok := err.(*StructureError)
				assert.True(t, ok, "want StructureError, got %T", err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)

			positioned, ok := err.(Positioned)
			assert.True(t, ok, "error should carry a position")
			assert.Equal(t, tt.wantLine, positioned.GetPosition().Line)

			tt.checkFunc(t, err)
		})
	}
}

func TestParseAbortsOnFirstError(t *testing.T) {
	// The malformed second transaction aborts the parse even though the
	// third one is fine.
	input := `2023/03/01 Fine
    assets:cash  $1.00
    equity:opening-balances

2023/03/02 Broken
    assets:cash  $bad
    expenses:misc

2023/03/03 Also Fine
    assets:cash  $1.00
    expenses:misc  $-1.00
`

	j, err := Parse(input)
	assert.Error(t, err)
	assert.True(t, j == nil)
}

func TestParseBytesWithFilename(t *testing.T) {
	input := "2023-03-05 Coffee\n    a  $1\n    b\n"

	_, err := ParseBytesWithFilename(context.Background(), "main.journal", []byte(input))
	assert.Error(t, err)

	positioned, ok := err.(Positioned)
	assert.True(t, ok)
	assert.Equal(t, "main.journal", positioned.GetPosition().Filename)
	assert.Equal(t, "main.journal:1", positioned.GetPosition().String())
}

func TestParseEmptyInput(t *testing.T) {
	j, err := Parse("")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(j.Transactions))

	j, err = Parse("; only comments\n\n# and blanks\n")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(j.Transactions))
}

func TestParseCommentInsideTransaction(t *testing.T) {
	input := `2023/03/05 Coffee
    expenses:coffee  $4.50
; still inside the block
    assets:cash  $-4.50
`

	j, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(j.Transactions))
	assert.Equal(t, 2, len(j.Transactions[0].Postings))
}

func TestParseIndentedCommentInsideTransaction(t *testing.T) {
	// An indented comment line is a comment, not a blank line; it must not
	// terminate the open block.
	input := `2023/03/05 Lunch
    expenses:food  $12.50
   ; midway note
    assets:cash  $-12.50
`

	j, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(j.Transactions))
	assert.Equal(t, 2, len(j.Transactions[0].Postings))
	assert.Equal(t, Account("assets:cash"), j.Transactions[0].Postings[1].Account)
}

func TestParseSingleSpaceBeforeAmount(t *testing.T) {
	input := "2023/03/05 Coffee\n    assets:cash $50\n    equity:opening-balances\n"

	j, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, "$50.00", j.Transactions[0].Postings[0].Amount.String())
}

func TestParseAccountWithSpacesBeforeAmount(t *testing.T) {
	// Everything before the amount token belongs to the account path.
	input := "2023/03/05 Rent\n    expenses:home:rent  $850.00\n    assets:chequing  $-850.00\n"

	j, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, Account("expenses:home:rent"), j.Transactions[0].Postings[0].Account)
}
