package constants

import (
	"os"
	"strconv"
)

const DefaultPort = 8080

func GetPort() int {
	port := os.Getenv("PORT")
	if port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			return p
		}
	}
	return DefaultPort
}

// GetLogLevel is one of debug, info, warn, error.
func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetTemperamentName is "equal" or "just".
func GetTemperamentName() string {
	name := os.Getenv("TEMPERAMENT")
	if name != "" {
		return name
	}
	return "equal"
}

// default root for commands that are not given one: A4
const DefaultRootFrequency = 440.0

const (
	DefaultMidiChannel  = 0
	DefaultMidiVelocity = 100
)
