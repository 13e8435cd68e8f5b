package cli

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/handiism/gallery-exporter/internal/config"
	"github.com/handiism/gallery-exporter/internal/gallery"
)

// NewLogger builds a logger writing to w in the configured format.
// Verbose settings enable debug output.
func NewLogger(settings *config.Settings, w io.Writer) *log.Logger {
	var handler log.Handler
	switch settings.LogFormat {
	case config.LogFormatJSON:
		handler = json.New(w)
	default:
		handler = text.New(w)
	}

	level := log.InfoLevel
	if settings.Verbose {
		level = log.DebugLevel
	}

	return &log.Logger{Handler: handler, Level: level}
}

// LogProgress forwards gallery progress events to logger.
func LogProgress(logger log.Interface) func(gallery.ProgressEvent) {
	return func(event gallery.ProgressEvent) {
		fields := log.Fields{"event": event.Level.String()}
		if event.Path != "" {
			fields["path"] = event.Path
		}
		entry := logger.WithFields(fields)

		switch event.Level {
		case gallery.LevelVerbose:
			entry.Debug(event.Message)
		case gallery.LevelWarning:
			entry.Warn(event.Message)
		case gallery.LevelError:
			entry.Error(event.Message)
		default:
			entry.Info(event.Message)
		}
	}
}
