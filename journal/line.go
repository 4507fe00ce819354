package journal

import "strings"

// Classifier implements the line-level lexer for journal files.
//
// It splits the source into logical lines and classifies each one without
// interpreting its contents; grouping lines into transaction blocks is the
// parser's job. Classification is single-pass with no backtracking, and the
// sequence is restarted by constructing a new Classifier over the same
// source.

// LineKind classifies a logical line of journal input.
type LineKind uint8

const (
	// LineBlank is an empty or all-whitespace line. Blank lines terminate
	// the current transaction block.
	LineBlank LineKind = iota

	// LineComment is a full-line comment starting with ';' or '#'.
	// Comments never break a transaction block.
	LineComment

	// LineHeader starts a new transaction: the line begins with a digit
	// (the date of "YYYY/MM/DD description").
	LineHeader

	// LinePosting is an indented account line within a transaction.
	LinePosting

	// LineIllegal is a non-blank line that starts with neither a digit,
	// whitespace, nor a comment marker.
	LineIllegal
)

var lineKindNames = map[LineKind]string{
	LineBlank:   "blank",
	LineComment: "comment",
	LineHeader:  "header",
	LinePosting: "posting",
	LineIllegal: "illegal",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Line is one classified logical line. Text has any trailing ';' comment
// stripped but keeps its indentation.
type Line struct {
	Kind   LineKind
	Text   string
	Number int // Line number (1-indexed)
}

// Classifier scans journal source line by line.
type Classifier struct {
	source   []byte
	filename string
	pos      int
	line     int
}

// NewClassifier creates a classifier over the given source.
func NewClassifier(source []byte, filename string) *Classifier {
	return &Classifier{source: source, filename: filename, line: 1}
}

// Next returns the next classified line. The second result is false once
// the source is exhausted.
func (c *Classifier) Next() (Line, bool) {
	if c.pos >= len(c.source) {
		return Line{}, false
	}

	start := c.pos
	for c.pos < len(c.source) && c.source[c.pos] != '\n' {
		c.pos++
	}
	raw := string(c.source[start:c.pos])
	if c.pos < len(c.source) {
		c.pos++ // consume the newline
	}

	number := c.line
	c.line++

	// Strip carriage return from CRLF input.
	raw = strings.TrimSuffix(raw, "\r")

	return classify(raw, number), true
}

// classify determines the kind of a single raw line.
func classify(raw string, number int) Line {
	// Full-line comments, indented or not, are recognized before trailing
	// comment stripping so that a line consisting only of a comment is not
	// misread as blank (which would terminate an open transaction block).
	trimmed := strings.TrimLeft(raw, " \t")
	if len(trimmed) > 0 && (trimmed[0] == ';' || trimmed[0] == '#') {
		return Line{Kind: LineComment, Text: raw, Number: number}
	}

	// A trailing comment starts at the first ';' and runs to end of line.
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}

	switch {
	case strings.TrimSpace(raw) == "":
		return Line{Kind: LineBlank, Text: raw, Number: number}
	case raw[0] >= '0' && raw[0] <= '9':
		return Line{Kind: LineHeader, Text: raw, Number: number}
	case raw[0] == ' ' || raw[0] == '\t':
		return Line{Kind: LinePosting, Text: raw, Number: number}
	default:
		return Line{Kind: LineIllegal, Text: raw, Number: number}
	}
}
