package dlg7137

// PatternCount is the size of the symbol table
const PatternCount = 96

// LastIndex is the highest valid table index
const LastIndex = PatternCount - 1

// 16 entries per block, each block has a fixed set of lines always on
// and D0..D3 count up in binary
const blockSize = 16

var blockBases = [PatternCount / blockSize]Mask{
	D5,
	D5 | D4,
	D6,
	D6 | D4,
	D6 | D5,
	D6 | D5 | D4,
}

var patterns = [PatternCount]Mask{
	// only D5 on
	D5,                     // blank
	D0 | D5,                // !
	D1 | D5,                // "
	D0 | D1 | D5,           // #
	D2 | D5,                // $
	D0 | D2 | D5,           // %
	D1 | D2 | D5,           // &
	D0 | D1 | D2 | D5,      // '
	D3 | D5,                // (
	D0 | D3 | D5,           // )
	D1 | D3 | D5,           // *
	D0 | D1 | D3 | D5,      // +
	D2 | D3 | D5,           // ,
	D0 | D2 | D3 | D5,      // -
	D1 | D2 | D3 | D5,      // .
	D0 | D1 | D2 | D3 | D5, // /
	// D5+D4
	D5 | D4,                     // 0
	D0 | D5 | D4,                // 1
	D1 | D5 | D4,                // 2
	D0 | D1 | D5 | D4,           // 3
	D2 | D5 | D4,                // 4
	D0 | D2 | D5 | D4,           // 5
	D1 | D2 | D5 | D4,           // 6
	D0 | D1 | D2 | D5 | D4,      // 7
	D3 | D5 | D4,                // 8
	D0 | D3 | D5 | D4,           // 9
	D1 | D3 | D5 | D4,           // :
	D0 | D1 | D3 | D5 | D4,      // ;
	D2 | D3 | D5 | D4,           // <
	D0 | D2 | D3 | D5 | D4,      // =
	D1 | D2 | D3 | D5 | D4,      // >
	D0 | D1 | D2 | D3 | D5 | D4, // ?
	// D6
	D6,                     // @
	D0 | D6,                // A
	D1 | D6,                // B
	D0 | D1 | D6,           // C
	D2 | D6,                // D
	D0 | D2 | D6,           // E
	D1 | D2 | D6,           // F
	D0 | D1 | D2 | D6,      // G
	D3 | D6,                // H
	D0 | D3 | D6,           // I
	D1 | D3 | D6,           // J
	D0 | D1 | D3 | D6,      // K
	D2 | D3 | D6,           // L
	D0 | D2 | D3 | D6,      // M
	D1 | D2 | D3 | D6,      // N
	D0 | D1 | D2 | D3 | D6, // O
	// D6+D4
	D6 | D4,                     // P
	D0 | D6 | D4,                // Q
	D1 | D6 | D4,                // R
	D0 | D1 | D6 | D4,           // S
	D2 | D6 | D4,                // T
	D0 | D2 | D6 | D4,           // U
	D1 | D2 | D6 | D4,           // V
	D0 | D1 | D2 | D6 | D4,      // W
	D3 | D6 | D4,                // X
	D0 | D3 | D6 | D4,           // Y
	D1 | D3 | D6 | D4,           // Z
	D0 | D1 | D3 | D6 | D4,      // [
	D2 | D3 | D6 | D4,           // backslash
	D0 | D2 | D3 | D6 | D4,      // ]
	D1 | D2 | D3 | D6 | D4,      // ^
	D0 | D1 | D2 | D3 | D6 | D4, // _
	// D6+D5
	D6 | D5,                     // `
	D0 | D6 | D5,                // a
	D1 | D6 | D5,                // b
	D0 | D1 | D6 | D5,           // c
	D2 | D6 | D5,                // d
	D0 | D2 | D6 | D5,           // e
	D1 | D2 | D6 | D5,           // f
	D0 | D1 | D2 | D6 | D5,      // g
	D3 | D6 | D5,                // h
	D0 | D3 | D6 | D5,           // i
	D1 | D3 | D6 | D5,           // j
	D0 | D1 | D3 | D6 | D5,      // k
	D2 | D3 | D6 | D5,           // l
	D0 | D2 | D3 | D6 | D5,      // m
	D1 | D2 | D3 | D6 | D5,      // n
	D0 | D1 | D2 | D3 | D6 | D5, // o
	// D6+D5+D4
	D6 | D5 | D4,                     // p
	D0 | D6 | D5 | D4,                // q
	D1 | D6 | D5 | D4,                // r
	D0 | D1 | D6 | D5 | D4,           // s
	D2 | D6 | D5 | D4,                // t
	D0 | D2 | D6 | D5 | D4,           // u
	D1 | D2 | D6 | D5 | D4,           // v
	D0 | D1 | D2 | D6 | D5 | D4,      // w
	D3 | D6 | D5 | D4,                // x
	D0 | D3 | D6 | D5 | D4,           // y
	D1 | D3 | D6 | D5 | D4,           // z
	D0 | D1 | D3 | D6 | D5 | D4,      // {
	D2 | D3 | D6 | D5 | D4,           // |
	D0 | D2 | D3 | D6 | D5 | D4,      // }
	D1 | D2 | D3 | D6 | D5 | D4,      // ~
	D0 | D1 | D2 | D3 | D6 | D5 | D4, // all on, test pattern
}

// Pattern returns the mask for table entry i, i must be in [0, LastIndex]
func Pattern(i int) Mask {
	return patterns[i]
}

// Patterns returns a copy of the whole table
func Patterns() [PatternCount]Mask {
	return patterns
}

// Compose builds entry i from its block base and the low 4 bits of the index.
// It yields the same masks as Pattern.
func Compose(i int) Mask {
	return blockBases[i/blockSize] | Mask(i%blockSize)
}

// Symbol is the character the display shows for entry i.
// The DLG7137 decodes its data lines as ASCII, so the table starts at space.
func Symbol(i int) byte {
	return byte(' ' + i)
}

// Name is a printable label for entry i
func Name(i int) string {
	switch i {
	case 0:
		return "blank"
	case LastIndex:
		return "all on"
	}
	return string(Symbol(i))
}
