package logger

import (
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init inicjalizuje globalny logger strukturalny.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// JSON w produkcji, format tekstowy podczas developmentu
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter przełącza logi na format tekstowy (development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}
