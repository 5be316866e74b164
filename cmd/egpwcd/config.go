package main

import (
	"encoding/json"
	"os"

	"github.com/stratux/egpwc/internal/egpwc"
	"github.com/stratux/egpwc/internal/egpwclog"
)

const configLocation = "/etc/egpwcd/egpwcd.json"

const (
	defaultSelfTestSeconds = 60
	defaultTickMillis      = 50
	defaultMetricsAddr     = ":9110"
)

// daemonConfig is read once at startup and falls back to in-code defaults
// when the file is absent.
type daemonConfig struct {
	SelfTestSeconds       int    `json:"selfTestSeconds"`
	TickMillis            int    `json:"tickMillis"`
	MetricsAddr           string `json:"metricsAddr"`
	SerialPort            string `json:"serialPort"`
	AudioDeclutterDisable bool   `json:"audioDeclutterDisable"`
	AlternateLampFormat   bool   `json:"alternateLampFormat"`
	Debug                 bool   `json:"debug"`
}

var globalConfig = daemonConfig{
	SelfTestSeconds: defaultSelfTestSeconds,
	TickMillis:      defaultTickMillis,
	MetricsAddr:     defaultMetricsAddr,
	SerialPort:      "/dev/ttyAMA0",
}

func readConfig() {
	f, err := os.Open(configLocation)
	if err != nil {
		egpwclog.Inf("no config at %s, using defaults", configLocation)
		return
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&globalConfig); err != nil {
		egpwclog.Err("failed to parse %s: %s, using defaults", configLocation, err)
		globalConfig = daemonConfig{
			SelfTestSeconds: defaultSelfTestSeconds,
			TickMillis:      defaultTickMillis,
			MetricsAddr:     defaultMetricsAddr,
			SerialPort:      "/dev/ttyAMA0",
		}
	}
}

func (c daemonConfig) pinPrograms() egpwc.PinProgramConfig {
	return egpwc.PinProgramConfig{
		AudioDeclutterDisable: c.AudioDeclutterDisable,
		AlternateLampFormat:   c.AlternateLampFormat,
	}
}
