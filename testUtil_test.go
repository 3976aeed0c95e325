package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var testSettings configSettings
var testlog io.Closer
var cfgFile = "./test/config.conf"

func TestMain(m *testing.M) {
	var err error
	testSettings, err = initSettings(cfgFile, "")
	if err != nil {
		log.Fatalf("test settings: %v", err)
	}
	testlog, err = setupLogging(testSettings, false)
	if err != nil {
		log.Fatalf("test logging: %v", err)
	}

	// run the tests
	code := m.Run()
	testlog.Close()

	os.Exit(code)
}

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

func initTestRuntime(settings configSettings) runtimeConfig {
	clock := clockwork.NewFakeClock()
	port := &logPort{clock: clock}
	port.OpenPort(settings)
	port.disableLog = true
	return initRuntime(settings, clock, port)
}

func testRuntime() (runtimeConfig, clockwork.FakeClock, *logPort) {
	// make rt for test, log the start of the test
	logCaller(runtime.Caller(1))
	rt := initTestRuntime(testSettings)
	return rt, rt.clock.(clockwork.FakeClock), rt.port.(*logPort)
}

// wait for the loop to sleep, then move the clock until total has passed
func testBlockDuration(clock clockwork.FakeClock, step time.Duration, total time.Duration) {
	for moved := time.Duration(0); moved < total; moved += step {
		clock.BlockUntil(1)
		clock.Advance(step)
	}
}

// start runDriver, the returned channel closes when it exits
func testStartDriver(rt runtimeConfig) chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		runDriver(rt)
	}()
	return done
}

// stop every loop on rt and wait for the driver to go
func testQuit(rt runtimeConfig, clock clockwork.FakeClock, done chan struct{}) {
	// the driver only looks at quit after a sleep
	clock.BlockUntil(1)
	close(rt.comms.quit)
	clock.Advance(rt.settings.GetDuration(sDwell))
	<-done
}
