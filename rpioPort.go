package main

import (
	"log"

	"dscheirer.com/alphadisplay/dlg7137"
	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio"
)

type rpioPort struct {
	pins [dlg7137.LineCount]rpio.Pin
}

func (rp *rpioPort) OpenPort(settings configSettings) error {
	ids, err := parsePins(settings.GetString(sPins))
	if err != nil {
		return err
	}
	for i, id := range ids {
		n, err := bcmNumber(id)
		if err != nil {
			return err
		}
		rp.pins[i] = rpio.Pin(n)
	}

	if err := rpio.Open(); err != nil {
		return errors.Wrap(err, "opening gpio")
	}

	for i, pin := range rp.pins {
		pin.Output()
		pin.Low()
		log.Printf("D%d on gpio %d", i, pin)
	}
	return nil
}

func (rp *rpioPort) WriteMask(m dlg7137.Mask) error {
	for i, on := range m.Lines() {
		if on {
			rp.pins[i].High()
		} else {
			rp.pins[i].Low()
		}
	}
	return nil
}

func (rp *rpioPort) ClosePort() error {
	return rpio.Close()
}
