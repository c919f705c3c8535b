package bootstrap

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/sarf/internal/config"
	"github.com/bnema/sarf/internal/logging"
)

// NewFileLogger builds the logger used while the terminal window owns the
// screen. Output goes to the rotating log file named by cfg.
func NewFileLogger(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		var err error
		if path, err = config.GetLogFile(); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("resolve log file: %w", err)
		}
	}

	w, err := logging.NewFileWriter(logging.FileConfig{
		Path:       path,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Level)
	if cfg.Format == "json" || cfg.Format == "console" {
		logCfg.Format = cfg.Format
	}
	return logging.NewWithWriter(logCfg, w), w, nil
}
