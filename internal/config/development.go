package config

import "os"

const DevelopmentEnv = "MINESWEEPER_DEVELOPMENT"

// Development reports whether development mode is forced from the
// environment.
func Development() bool {
	development, ok := os.LookupEnv(DevelopmentEnv)
	if !ok {
		return false
	}
	return development != "0"
}
