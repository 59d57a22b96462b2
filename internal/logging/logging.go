package logging

import "github.com/sirupsen/logrus"

// New builds the application logger with the configured level.
// Unknown levels fall back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}
