// Package app provides logger initialization.
package app

import (
	"io"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger from cfg. The returned closer is
// the rolling log file, or nil when logging goes to stderr only.
func InitializeLogger(cfg config.LogConfig) io.Closer {
	return logger.Init(logger.Options{
		Level:      cfg.Level,
		Pretty:     cfg.Pretty,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
	})
}
