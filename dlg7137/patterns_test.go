package dlg7137

import (
	"testing"

	"gotest.tools/v3/assert"
)

// the table as the display sees it, one row per block
var wantPatterns = [PatternCount]Mask{
	0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F,
	0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F,
	0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F,
	0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5A, 0x5B, 0x5C, 0x5D, 0x5E, 0x5F,
	0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F,
	0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7A, 0x7B, 0x7C, 0x7D, 0x7E, 0x7F,
}

func TestPatternTable(t *testing.T) {
	for i := 0; i < PatternCount; i++ {
		assert.Equal(t, Pattern(i), wantPatterns[i], "index %d", i)
	}
	assert.Equal(t, Patterns(), wantPatterns)
}

func TestComposeMatchesTable(t *testing.T) {
	for i := 0; i < PatternCount; i++ {
		assert.Equal(t, Compose(i), Pattern(i), "index %d", i)
	}
}

func TestPatternsIsACopy(t *testing.T) {
	table := Patterns()
	table[0] = 0
	assert.Equal(t, Pattern(0), D5)
}

func TestNoUnusedLines(t *testing.T) {
	for i := 0; i < PatternCount; i++ {
		assert.Assert(t, Pattern(i).Valid(), "index %d sets an unused bit", i)
	}
	assert.Assert(t, !Mask(0x80).Valid())
}

func TestEndpoints(t *testing.T) {
	// blank only has the block base
	assert.Equal(t, Pattern(0), D5)
	assert.Equal(t, Name(0), "blank")

	all := D0 | D1 | D2 | D3 | D4 | D5 | D6
	assert.Equal(t, Pattern(LastIndex), all)
	assert.Equal(t, Name(LastIndex), "all on")
	for _, on := range Pattern(LastIndex).Lines() {
		assert.Assert(t, on)
	}
}

func TestSymbols(t *testing.T) {
	for i := 0; i < PatternCount; i++ {
		assert.Equal(t, Symbol(i), byte(Pattern(i)))
	}
	assert.Equal(t, Symbol(33), byte('A'))
	assert.Equal(t, Name(16), "0")
	assert.Equal(t, Name(65), "a")
}

func TestMaskFormatting(t *testing.T) {
	m := Pattern(33) // A
	assert.Equal(t, m.String(), "1000001")
	assert.Equal(t, m.Lines(), [LineCount]bool{true, false, false, false, false, false, true})
}
