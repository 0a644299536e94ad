package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Set log level from environment
	switch os.Getenv("DBTOOLS_LOG_LEVEL") {
	case "DEBUG", "debug":
		log.SetLevel(logrus.DebugLevel)
	case "WARN", "warn", "WARNING", "warning":
		log.SetLevel(logrus.WarnLevel)
	case "ERROR", "error":
		log.SetLevel(logrus.ErrorLevel)
	case "FATAL", "fatal":
		log.SetLevel(logrus.FatalLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// SetLevel sets the logging level
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

// Debugf logs a debug message with formatting
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs an info message with formatting
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs a warning message with formatting
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs an error message with formatting
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Fatalf logs a fatal message with formatting and exits
func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
