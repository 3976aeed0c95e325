package main

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, s.GetDuration(sDwell), 3*time.Second)
	assert.Equal(t, s.GetString(sStatusAddr), "")
	assert.Equal(t, s.GetBool(sDebug), false)
	assert.NilError(t, s.validate())
}

func TestTestConfigLoads(t *testing.T) {
	assert.Equal(t, testSettings.GetString(sPort), portLog)
	assert.Equal(t, testSettings.GetDuration(sDwell), 3000*time.Millisecond)
}

func TestSettingsFromJSON(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromJSON([]byte(`{
		"dwellTime": "250ms",
		"port": "periph",
		"debug_dump": "true",
		"statusAddr": ":8080",
		"unknown": 12
	}`))
	assert.NilError(t, err)
	assert.Equal(t, s.GetDuration(sDwell), 250*time.Millisecond)
	assert.Equal(t, s.GetString(sPort), portPeriph)
	assert.Equal(t, s.GetBool(sDebug), true)
	assert.Equal(t, s.GetString(sStatusAddr), ":8080")
	// untouched
	assert.Equal(t, s.GetString(sPins), defaultSettings().GetString(sPins))
}

func TestSettingsFromJSONBadValues(t *testing.T) {
	s := defaultSettings()
	assert.ErrorContains(t, s.settingsFromJSON([]byte(`{"dwellTime": "soon"}`)), "dwellTime")

	s = defaultSettings()
	assert.ErrorContains(t, s.settingsFromJSON([]byte(`{"dwellTime": 3000}`)), "dwellTime")

	s = defaultSettings()
	assert.ErrorContains(t, s.settingsFromJSON([]byte(`{"port": true}`)), "port")
}

func TestSettingsFromEnv(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromEnv(map[string]string{
		"ALPHADISPLAY_DWELLTIME":  "1s",
		"ALPHADISPLAY_DEBUG_DUMP": "on",
		"OTHER_THING":             "ignored",
	})
	assert.NilError(t, err)
	assert.Equal(t, s.GetDuration(sDwell), time.Second)
	assert.Equal(t, s.GetBool(sDebug), true)

	err = s.settingsFromEnv(map[string]string{"ALPHADISPLAY_DEBUG_DUMP": "maybe"})
	assert.ErrorContains(t, err, "ALPHADISPLAY_DEBUG_DUMP")
}

func TestInitSettingsWithEnvFile(t *testing.T) {
	conf := fs.NewFile(t, "alphadisplay-conf", fs.WithContent(`{"port": "log", "dwellTime": "2s"}`))
	defer conf.Remove()
	env := fs.NewFile(t, "alphadisplay-env", fs.WithContent("ALPHADISPLAY_DWELLTIME=500ms\nALPHADISPLAY_PINS=GPIO2,3,4,17,27,22,10\n"))
	defer env.Remove()

	s, err := initSettings(conf.Path(), env.Path())
	assert.NilError(t, err)
	assert.Equal(t, s.GetString(sPort), portLog)
	assert.Equal(t, s.GetDuration(sDwell), 500*time.Millisecond)
	assert.Equal(t, s.GetString(sPins), "GPIO2,3,4,17,27,22,10")
}

func TestInitSettingsMissingEnvFileIsFine(t *testing.T) {
	conf := fs.NewFile(t, "alphadisplay-conf", fs.WithContent(`{"port": "log"}`))
	defer conf.Remove()

	s, err := initSettings(conf.Path(), "/nonexistent/alphadisplay.env")
	assert.NilError(t, err)
	assert.Equal(t, s.GetDuration(sDwell), 3*time.Second)
}

func TestInitSettingsErrors(t *testing.T) {
	_, err := initSettings("/nonexistent/alphadisplay.conf", "")
	assert.ErrorContains(t, err, "could not load conf file")

	zero := fs.NewFile(t, "alphadisplay-conf", fs.WithContent(`{"port": "log", "dwellTime": "0s"}`))
	defer zero.Remove()
	_, err = initSettings(zero.Path(), "")
	assert.ErrorContains(t, err, "must be positive")

	badPort := fs.NewFile(t, "alphadisplay-conf", fs.WithContent(`{"port": "spi"}`))
	defer badPort.Remove()
	_, err = initSettings(badPort.Path(), "")
	assert.ErrorContains(t, err, "unknown port")

	badPins := fs.NewFile(t, "alphadisplay-conf", fs.WithContent(`{"port": "log", "pins": "1,2,3"}`))
	defer badPins.Remove()
	_, err = initSettings(badPins.Path(), "")
	assert.ErrorContains(t, err, "need 7 pins")
}
