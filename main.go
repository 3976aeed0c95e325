package main

import (
	"flag"
	"log"
	"sync"

	"github.com/jonboulle/clockwork"
)

var wg sync.WaitGroup

// alphadisplay -config={config file} -env={env file}

func main() {
	configFile := flag.String("config", "/etc/default/alphadisplay/alphadisplay.conf", "config file path")
	envFile := flag.String("env", "/etc/default/alphadisplay/alphadisplay.env", "optional env file with setting overrides")
	toStdout := flag.Bool("stdout", false, "log to stdout as well as the log file")
	flag.Parse()

	settings, err := initSettings(*configFile, *envFile)
	if err != nil {
		log.Fatalf("Bad settings: %v", err)
	}

	// the terminal simulator owns stdout
	logFile, err := setupLogging(settings, *toStdout && settings.GetString(sPort) != portTerm)
	if err != nil {
		log.Fatalf("Could not set up logging: %v", err)
	}
	defer logFile.Close()

	log.Println(">>> Settings <<<")
	settings.Dump()

	clock := clockwork.NewRealClock()
	port, err := newPort(settings.GetString(sPort), clock)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := port.OpenPort(settings); err != nil {
		log.Fatalf("Could not open %s port: %v", settings.GetString(sPort), err)
	}

	rt := initRuntime(settings, clock, port)

	startDriver(rt)
	if addr := settings.GetString(sStatusAddr); addr != "" {
		startStatusService(rt, &httpStatusService{}, addr)
	}

	// runs until the power goes
	wg.Wait()
}
