package journal

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind LineKind
		wantText string
	}{
		{name: "blank", raw: "", wantKind: LineBlank, wantText: ""},
		{name: "whitespace only", raw: "   \t", wantKind: LineBlank, wantText: "   \t"},
		{name: "semicolon comment", raw: "; a comment", wantKind: LineComment, wantText: "; a comment"},
		{name: "hash comment", raw: "# a comment", wantKind: LineComment, wantText: "# a comment"},
		{name: "header", raw: "2023/04/07 Opening Balance", wantKind: LineHeader, wantText: "2023/04/07 Opening Balance"},
		{name: "posting with spaces", raw: "    assets:cash  $50", wantKind: LinePosting, wantText: "    assets:cash  $50"},
		{name: "posting with tab", raw: "\tassets:cash  $50", wantKind: LinePosting, wantText: "\tassets:cash  $50"},
		{name: "illegal", raw: "assets:cash  $50", wantKind: LineIllegal, wantText: "assets:cash  $50"},
		{name: "trailing comment stripped", raw: "    assets:cash  $50 ; lunch money", wantKind: LinePosting, wantText: "    assets:cash  $50 "},
		{name: "indented semicolon comment", raw: "    ; note", wantKind: LineComment, wantText: "    ; note"},
		{name: "indented hash comment", raw: "  # note", wantKind: LineComment, wantText: "  # note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := classify(tt.raw, 1)
			assert.Equal(t, tt.wantKind, line.Kind)
			assert.Equal(t, tt.wantText, line.Text)
		})
	}
}

func TestClassifierNumbersLines(t *testing.T) {
	source := "2023/04/07 Coffee\n    expenses:coffee  $4.50\n    assets:cash\n"

	c := NewClassifier([]byte(source), "test.journal")

	var kinds []LineKind
	var numbers []int
	for {
		line, ok := c.Next()
		if !ok {
			break
		}
		kinds = append(kinds, line.Kind)
		numbers = append(numbers, line.Number)
	}

	assert.Equal(t, []LineKind{LineHeader, LinePosting, LinePosting}, kinds)
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestClassifierHandlesCRLF(t *testing.T) {
	source := "2023/04/07 Coffee\r\n    expenses:coffee  $4.50\r\n"

	c := NewClassifier([]byte(source), "")

	line, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, LineHeader, line.Kind)
	assert.Equal(t, "2023/04/07 Coffee", line.Text)

	line, ok = c.Next()
	assert.True(t, ok)
	assert.Equal(t, LinePosting, line.Kind)
	assert.Equal(t, "    expenses:coffee  $4.50", line.Text)
}

func TestClassifierNoTrailingNewline(t *testing.T) {
	c := NewClassifier([]byte("2023/04/07 Coffee"), "")

	line, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, LineHeader, line.Kind)

	_, ok = c.Next()
	assert.False(t, ok)
}
