// Package dlg7137 holds the symbol table for a DLG7137 alphanumeric display
// wired with its seven data lines straight to GPIO outputs.
package dlg7137

import "strings"

// Mask is the level of each data line, bit n drives Dn
type Mask uint8

// data lines
const (
	D0 Mask = 0x01
	D1 Mask = 0x02
	D2 Mask = 0x04
	D3 Mask = 0x08
	D4 Mask = 0x10
	D5 Mask = 0x20
	D6 Mask = 0x40
)

// LineCount is the number of wired data lines
const LineCount = 7

// anything above D6 has no line behind it
const unusedMask = ^(D0 | D1 | D2 | D3 | D4 | D5 | D6)

// Valid is false if a bit without a data line is set
func (m Mask) Valid() bool {
	return m&unusedMask == 0
}

// Lines returns the level of D0..D6, in that order
func (m Mask) Lines() [LineCount]bool {
	var lines [LineCount]bool
	for i := 0; i < LineCount; i++ {
		lines[i] = m&(1<<uint(i)) != 0
	}
	return lines
}

// String is the D6..D0 levels, most significant line first
func (m Mask) String() string {
	var b strings.Builder
	for i := LineCount - 1; i >= 0; i-- {
		if m&(1<<uint(i)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
