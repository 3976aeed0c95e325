package main

import (
	"sync"
	"time"

	"dscheirer.com/alphadisplay/dlg7137"
)

// index into the pattern table, only the driver moves it
type cursor int

func (c cursor) next() cursor {
	c++
	if c > dlg7137.LastIndex {
		c = 0
	}
	return c
}

// what the display shows right now
type displayState struct {
	mu        sync.Mutex
	index     cursor
	writes    int
	lastWrite time.Time
}

type displaySnapshot struct {
	Index     int       `json:"index"`
	Mask      uint8     `json:"mask"`
	Lines     string    `json:"lines"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Writes    int       `json:"writes"`
	LastWrite time.Time `json:"lastWrite"`
}

func (ds *displayState) set(c cursor, at time.Time) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.index = c
	ds.writes++
	ds.lastWrite = at
}

func (ds *displayState) snapshot() displaySnapshot {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	i := int(ds.index)
	mask := dlg7137.Pattern(i)
	return displaySnapshot{
		Index:     i,
		Mask:      uint8(mask),
		Lines:     mask.String(),
		Symbol:    string(dlg7137.Symbol(i)),
		Name:      dlg7137.Name(i),
		Writes:    ds.writes,
		LastWrite: ds.lastWrite,
	}
}

func startDriver(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Driver"}
	wg.Add(1)
	go func() {
		defer wg.Done()
		runDriver(rt)
	}()
}

// show every table entry in order, one per dwell, forever
func runDriver(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("Exiting runDriver")
	}()

	dwell := rt.settings.GetDuration(sDwell)
	rt.logger.Printf("Cycling %d patterns every %v", dlg7137.PatternCount, dwell)

	var cur cursor
	for {
		mask := dlg7137.Pattern(int(cur))
		if err := rt.port.WriteMask(mask); err != nil {
			// nobody to tell, keep going
			rt.logger.Printf("Writing %s (%s) failed: %v", mask, dlg7137.Name(int(cur)), err)
		}
		rt.state.set(cur, rt.clock.Now())

		rt.clock.Sleep(dwell)

		select {
		case <-rt.comms.quit:
			rt.logger.Println("Got a quit signal in runDriver")
			return
		default:
		}

		cur = cur.next()
	}
}
