// Package logger holds the process-global zap logger. Domain packages never
// log; only adapters and the CLI do.
package logger

import "go.uber.org/zap"

var global *zap.SugaredLogger

// Init sets the global logger once, from the CLI entry point.
func Init(z *zap.SugaredLogger) { global = z }

// Logger returns the global logger, or a no-op logger before Init runs, so
// adapters can log unconditionally.
func Logger() *zap.SugaredLogger {
	if global == nil {
		return zap.NewNop().Sugar()
	}
	return global
}

// Setup builds and installs a console logger. Verbose enables debug output.
func Setup(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		return err
	}
	Init(z.Sugar())
	return nil
}
