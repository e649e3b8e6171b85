package internal

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.ErrorLevel)
}

// EnableDebug turns on debug tracing for the whole pipeline
func EnableDebug() {
	log.SetLevel(logrus.DebugLevel)
}
