package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

// port backends
const (
	portRPIO   = "rpio"
	portPeriph = "periph"
	portLog    = "log"
	portTerm   = "term"
)

var portKinds = map[string]func(clock clockwork.Clock) segmentPort{
	portRPIO:   func(clockwork.Clock) segmentPort { return &rpioPort{} },
	portPeriph: func(clockwork.Clock) segmentPort { return &periphPort{} },
	portLog:    func(clock clockwork.Clock) segmentPort { return &logPort{clock: clock} },
	portTerm:   func(clockwork.Clock) segmentPort { return &termPort{} },
}

func newPort(kind string, clock clockwork.Clock) (segmentPort, error) {
	mk, ok := portKinds[kind]
	if !ok {
		return nil, errors.Errorf("unknown port %q", kind)
	}
	return mk(clock), nil
}
