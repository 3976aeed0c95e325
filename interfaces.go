package main

import "dscheirer.com/alphadisplay/dlg7137"

// the output boundary, one line per bit of the mask
type segmentPort interface {
	// configure every line as an output, called once
	OpenPort(settings configSettings) error
	WriteMask(m dlg7137.Mask) error
	ClosePort() error
}

type statusService interface {
	launch(handler *statusHandler, addr string)
	stop()
}
