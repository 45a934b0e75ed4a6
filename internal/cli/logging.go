package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func initLogger(level string, verbose bool) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
