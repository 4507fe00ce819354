package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/katanacash/katana/telemetry"
)

// Parser groups classified lines into candidate transactions. It is a small
// explicit state machine: the current field is nil outside a transaction
// block and non-nil inside one, and a blank line (or end of input) closes
// the open block.
type parser struct {
	filename string
	journal  *Journal

	current *Transaction
	elided  *Posting // the one posting without an amount in the open block
}

// Parse parses journal source text into a Journal. The first malformed line
// aborts the whole parse.
func Parse(text string) (*Journal, error) {
	return ParseBytes(context.Background(), []byte(text))
}

// ParseBytes parses journal source without an associated filename.
func ParseBytes(ctx context.Context, data []byte) (*Journal, error) {
	return ParseBytesWithFilename(ctx, "", data)
}

// ParseBytesWithFilename parses journal source, attributing error positions
// to the given filename.
func ParseBytesWithFilename(ctx context.Context, filename string, data []byte) (*Journal, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("journal.parse (%d bytes)", len(data)))
	defer timer.End()

	p := &parser{
		filename: filename,
		journal:  &Journal{Filename: filename},
	}

	lines := NewClassifier(data, filename)
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		var err error
		switch line.Kind {
		case LineComment:
			// Comments never break a transaction block.
		case LineBlank:
			err = p.finishTransaction()
		case LineHeader:
			err = p.startTransaction(line)
		case LinePosting:
			err = p.addPosting(line)
		case LineIllegal:
			err = &StructureError{
				Pos:     p.position(line.Number, 1),
				Message: "posting lines must begin with whitespace",
			}
		}
		if err != nil {
			return nil, err
		}
	}

	// Close the final block at end of input.
	if err := p.finishTransaction(); err != nil {
		return nil, err
	}

	return p.journal, nil
}

func (p *parser) position(line, column int) Position {
	return Position{Filename: p.filename, Line: line, Column: column}
}

// startTransaction parses a header line and opens a new block, closing any
// previous one first.
func (p *parser) startTransaction(line Line) error {
	if err := p.finishTransaction(); err != nil {
		return err
	}

	text := strings.TrimRight(line.Text, " \t")

	dateToken := text
	description := ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		dateToken = text[:i]
		description = strings.TrimSpace(text[i+1:])
	}

	date, err := ParseDate(dateToken)
	if err != nil {
		return &DateFormatError{Pos: p.position(line.Number, 1), Value: dateToken}
	}

	p.current = &Transaction{
		Pos:         p.position(line.Number, 1),
		Date:        date,
		Description: description,
	}
	return nil
}

// addPosting parses an indented posting line into the open block.
//
// The account path runs up to the amount token; the amount token is the
// first '$'-prefixed token preceded by whitespace. The conventional layout
// separates the two with at least two spaces, but a single space is
// accepted. A posting with no amount token is legal and marks the one
// amount the balancer may infer.
func (p *parser) addPosting(line Line) error {
	if p.current == nil {
		return &StructureError{
			Pos:     p.position(line.Number, 1),
			Message: "posting outside of a transaction",
		}
	}

	text := line.Text

	split := -1
	for i := 1; i < len(text); i++ {
		if text[i] == '$' && (text[i-1] == ' ' || text[i-1] == '\t') {
			split = i
			break
		}
	}

	var accountText, amountToken string
	if split >= 0 {
		accountText = strings.TrimSpace(text[:split])
		amountToken = strings.TrimSpace(text[split:])
	} else {
		accountText = strings.TrimSpace(text)
	}

	if accountText == "" {
		return &StructureError{
			Pos:     p.position(line.Number, 1),
			Message: "posting is missing an account",
		}
	}

	posting := &Posting{
		Pos:     p.position(line.Number, 1),
		Account: Account(accountText),
	}

	if split >= 0 {
		amount, err := ParseAmount(amountToken)
		if err != nil {
			return &AmountFormatError{
				Pos:    p.position(line.Number, split+1),
				Token:  amountToken,
				Reason: err,
			}
		}
		posting.Amount = &amount
	} else {
		if p.elided != nil {
			return &AmbiguousBalanceError{
				Pos:    p.position(line.Number, 1),
				First:  p.elided.Account,
				Second: posting.Account,
			}
		}
		p.elided = posting
	}

	p.current.Postings = append(p.current.Postings, posting)
	return nil
}

// finishTransaction closes the open block, if any, and appends it to the
// journal.
func (p *parser) finishTransaction() error {
	if p.current == nil {
		return nil
	}

	txn := p.current
	p.current = nil
	p.elided = nil

	if len(txn.Postings) < 2 {
		return &StructureError{
			Pos:     txn.Pos,
			Message: "transaction needs at least two postings",
		}
	}

	p.journal.Transactions = append(p.journal.Transactions, txn)
	return nil
}
