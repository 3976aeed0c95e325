package main

import (
	"fmt"
	"os"
	"strings"

	"dscheirer.com/alphadisplay/dlg7137"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// termPort draws the data lines in the terminal, for running off the pi
type termPort struct {
}

//  code 0x41 'A'
//  D6 D5 D4 D3 D2 D1 D0
//   #  .  .  .  .  .  #
func renderMask(m dlg7137.Mask) []string {
	lines := m.Lines()
	var names, levels strings.Builder
	for i := dlg7137.LineCount - 1; i >= 0; i-- {
		names.WriteString(fmt.Sprintf("D%d ", i))
		if lines[i] {
			levels.WriteString(" # ")
		} else {
			levels.WriteString(" . ")
		}
	}
	return []string{
		fmt.Sprintf("code 0x%02X %q", uint8(m), rune(m)),
		strings.TrimRight(names.String(), " "),
		strings.TrimRight(levels.String(), " "),
	}
}

func (tp *termPort) OpenPort(settings configSettings) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "starting terminal")
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	go tp.watchKeys()
	return termbox.Flush()
}

// the terminal is in raw mode, so ctrl-c never becomes a signal
func (tp *termPort) watchKeys() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventKey && ev.Key == termbox.KeyCtrlC {
			termbox.Close()
			os.Exit(0)
		}
	}
}

func (tp *termPort) WriteMask(m dlg7137.Mask) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y, line := range renderMask(m) {
		for x, ch := range line {
			fg := termbox.ColorDefault
			if ch == '#' {
				fg = termbox.ColorRed | termbox.AttrBold
			}
			termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
		}
	}
	return termbox.Flush()
}

func (tp *termPort) ClosePort() error {
	termbox.Close()
	return nil
}
