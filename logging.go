package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ThreadLogger tags every line with the name of the goroutine it came from
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("["+tl.name+"] "+format, v...)
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Println(append([]interface{}{"[" + tl.name + "]"}, v...)...)
}

// send the std logger to a rotating file, and maybe stdout too
func setupLogging(settings configSettings, toStdout bool) (io.Closer, error) {
	logFile := settings.GetString(sLogFile)
	if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
		return nil, errors.Wrapf(err, "log directory for '%s'", logFile)
	}

	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	var w io.Writer = lj
	if toStdout {
		w = io.MultiWriter(os.Stdout, lj)
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Printf("Logging to %s", logFile)
	return lj, nil
}
