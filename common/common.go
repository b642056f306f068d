// Package common holds process-wide helpers shared by the commands.
package common

import (
	"log/slog"
	"os"
)

var (
	// PackageName is used as the default service tag for logs.
	PackageName = "embedded-signing-demo"

	// Version is set at build time with -ldflags "-X .../common.Version=...".
	Version = "dev"
)

// LoggingOpts configures SetupLogger.
type LoggingOpts struct {
	Debug   bool
	JSON    bool
	Service string
	Version string
}

// SetupLogger returns a slog logger writing to stdout, tagged with service and
// version when they are set.
func SetupLogger(opts *LoggingOpts) (log *slog.Logger) {
	logLevel := slog.LevelInfo
	if opts.Debug {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	if opts.JSON {
		log = slog.New(slog.NewJSONHandler(os.Stdout, handlerOpts))
	} else {
		log = slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	}

	if opts.Service != "" {
		log = log.With("service", opts.Service)
	}
	if opts.Version != "" {
		log = log.With("version", opts.Version)
	}
	return log
}
