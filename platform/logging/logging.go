package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Init configures the global logrus logger.
func Init(level string) {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.WithField("level", level).Warn("unknown log level, using info")
		return
	}
	log.SetLevel(lvl)
}
