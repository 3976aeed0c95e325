package main

import (
	"log"

	"dscheirer.com/alphadisplay/dlg7137"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type periphPort struct {
	pins [dlg7137.LineCount]gpio.PinIO
}

func (pp *periphPort) OpenPort(settings configSettings) error {
	ids, err := parsePins(settings.GetString(sPins))
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return errors.Wrap(err, "initializing periph.io")
	}

	for i, id := range ids {
		pin := gpioreg.ByName(periphName(id))
		if pin == nil {
			return errors.Errorf("gpio pin %s not found", id)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return errors.Wrapf(err, "setting D%d (%s) to output", i, pin.Name())
		}
		pp.pins[i] = pin
		log.Printf("D%d on %s", i, pin.Name())
	}
	return nil
}

func (pp *periphPort) WriteMask(m dlg7137.Mask) error {
	for i, on := range m.Lines() {
		if err := pp.pins[i].Out(gpio.Level(on)); err != nil {
			return errors.Wrapf(err, "setting D%d", i)
		}
	}
	return nil
}

func (pp *periphPort) ClosePort() error {
	var first error
	for _, pin := range pp.pins {
		if pin == nil {
			continue
		}
		if err := pin.Halt(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
