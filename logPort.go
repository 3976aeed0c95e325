package main

import (
	"log"
	"strings"
	"sync"
	"time"

	"dscheirer.com/alphadisplay/dlg7137"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

type portWrite struct {
	mask dlg7137.Mask
	at   time.Time
}

// logPort keeps an audit of every write instead of driving pins
type logPort struct {
	mu         sync.Mutex
	clock      clockwork.Clock
	open       bool
	debugDump  bool
	disableLog bool
	audit      []portWrite
}

func (lp *logPort) OpenPort(settings configSettings) error {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if lp.clock == nil {
		lp.clock = clockwork.NewRealClock()
	}
	lp.open = true
	lp.debugDump = settings.GetBool(sDebug)
	lp.audit = []portWrite{}
	return nil
}

func (lp *logPort) WriteMask(m dlg7137.Mask) error {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if !lp.open {
		return errors.New("log port is not open")
	}
	lp.audit = append(lp.audit, portWrite{mask: m, at: lp.clock.Now()})
	if !lp.disableLog {
		log.Printf("Lines %s (0x%02x)", m, uint8(m))
	}
	if lp.debugDump {
		log.Println("\n" + strings.Join(renderMask(m), "\n"))
	}
	return nil
}

func (lp *logPort) ClosePort() error {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	lp.open = false
	return nil
}

func (lp *logPort) writes() []portWrite {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return append([]portWrite(nil), lp.audit...)
}

func (lp *logPort) last() (portWrite, bool) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if len(lp.audit) == 0 {
		return portWrite{}, false
	}
	return lp.audit[len(lp.audit)-1], true
}
