// utility functions
package main

import (
	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	// closed to stop every loop, nothing closes it outside of tests
	quit chan struct{}
}

type runtimeConfig struct {
	comms    commChannels
	clock    clockwork.Clock
	port     segmentPort
	state    *displayState
	settings configSettings
	logger   flogger
}

func initCommChannels() commChannels {
	return commChannels{quit: make(chan struct{})}
}

func initRuntime(settings configSettings, clock clockwork.Clock, port segmentPort) runtimeConfig {
	return runtimeConfig{
		comms:    initCommChannels(),
		clock:    clock,
		port:     port,
		state:    &displayState{},
		settings: settings,
		logger:   &ThreadLogger{name: "main"},
	}
}
