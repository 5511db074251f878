package logger

import "go.uber.org/zap"

// Log is the shared logger. It is a no-op until Init runs.
var Log = zap.NewNop()

// Init replaces Log with a real logger. Debug mode uses the development
// config with human-readable output.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}
