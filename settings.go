package main

import (
	"io/ioutil"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// setting keys
const (
	sDwell      = "dwellTime"
	sPort       = "port"
	sPins       = "pins"
	sLogFile    = "logFile"
	sStatusAddr = "statusAddr"
	sDebug      = "debug_dump"
)

// env file and environment overrides use this prefix plus the upper-cased key
const envPrefix = "ALPHADISPLAY_"

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sDwell] = 3000 * time.Millisecond
	s[sPins] = "5,6,13,19,26,20,21" // D0 -> D6, BCM numbering
	s[sLogFile] = "/var/log/alphadisplay.log"
	s[sStatusAddr] = ""
	s[sDebug] = false

	// off the pi there are no pins to drive
	port := portRPIO
	if runtime.GOARCH != "arm" && runtime.GOARCH != "arm64" {
		port = portLog
	}
	s[sPort] = port

	return configSettings{settings: s}
}

func convertSetting(initVal interface{}, raw string) (interface{}, error) {
	switch initVal.(type) {
	case bool:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "1", "on":
			return true, nil
		case "false", "0", "off":
			return false, nil
		}
		return nil, errors.Errorf("bad bool: %q", raw)
	case time.Duration:
		return time.ParseDuration(strings.TrimSpace(raw))
	case string:
		return raw, nil
	}
	return nil, errors.Errorf("bad type: %T", initVal)
}

func (s configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		value, dataType, _, err := jsonparser.Get(data, k)
		if err == jsonparser.KeyPathNotFoundError {
			// ignore missing fields
			log.Printf("Skipping key %s", k)
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s", k)
		}

		var val interface{}
		switch dataType {
		case jsonparser.Boolean:
			if _, ok := initVal.(bool); !ok {
				return errors.Errorf("%s: unexpected boolean", k)
			}
			val, err = jsonparser.ParseBoolean(value)
		case jsonparser.String:
			var str string
			str, err = jsonparser.ParseString(value)
			if err == nil {
				val, err = convertSetting(initVal, str)
			}
		default:
			err = errors.Errorf("unexpected %s", dataType)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
		s.settings[k] = val
	}
	return nil
}

func envKey(key string) string {
	return envPrefix + strings.ToUpper(key)
}

// overrides from an env map, keys not in the defaults are ignored
func (s configSettings) settingsFromEnv(env map[string]string) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		raw, ok := env[envKey(k)]
		if !ok {
			continue
		}
		val, err := convertSetting(initVal, raw)
		if err != nil {
			return errors.Wrapf(err, "env %s", envKey(k))
		}
		s.settings[k] = val
	}
	return nil
}

func processEnv() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			env[parts[0]] = parts[1]
		}
	}
	return env
}

func (s configSettings) validate() error {
	if s.GetDuration(sDwell) <= 0 {
		return errors.Errorf("%s must be positive, got %v", sDwell, s.settings[sDwell])
	}
	if _, ok := portKinds[s.GetString(sPort)]; !ok {
		return errors.Errorf("unknown %s %q", sPort, s.GetString(sPort))
	}
	if _, err := parsePins(s.GetString(sPins)); err != nil {
		return err
	}
	return nil
}

// defaults, then the config file, then the env file, then the environment
func initSettings(configFile string, envFile string) (configSettings, error) {
	log.Println("initSettings")

	s := defaultSettings()

	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		return s, errors.Wrapf(err, "could not load conf file '%s'", configFile)
	}

	log.Printf("Reading configuration from '%s'", configFile)
	if err := s.settingsFromJSON(data); err != nil {
		return s, err
	}

	if envFile != "" {
		env, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			log.Printf("Reading overrides from '%s'", envFile)
			if err := s.settingsFromEnv(env); err != nil {
				return s, err
			}
		case os.IsNotExist(errors.Cause(err)):
			// optional
		default:
			return s, errors.Wrapf(err, "could not load env file '%s'", envFile)
		}
	}

	if err := s.settingsFromEnv(processEnv()); err != nil {
		return s, err
	}

	return s, s.validate()
}

func (s configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s configSettings) Dump() {
	for k, v := range s.settings {
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
