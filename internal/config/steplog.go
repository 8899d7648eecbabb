package config

import (
	"os"
	"strconv"

	"github.com/ashabalin/autosweeper/internal/steplog"
)

// NewSteplogOptions reads the solver step log settings. The log is
// optional: without STEPLOG_FILE the logger is a no-op.
func NewSteplogOptions() steplog.Options {
	opts := steplog.Options{
		Filename:   os.Getenv("STEPLOG_FILE"),
		MaxSizeMb:  10,
		MaxBackups: 5,
		MaxAgeDays: 28,
	}
	if v, err := strconv.Atoi(os.Getenv("STEPLOG_MAX_SIZE_MB")); err == nil {
		opts.MaxSizeMb = v
	}
	if v, err := strconv.Atoi(os.Getenv("STEPLOG_MAX_BACKUPS")); err == nil {
		opts.MaxBackups = v
	}
	if v, err := strconv.Atoi(os.Getenv("STEPLOG_MAX_AGE_DAYS")); err == nil {
		opts.MaxAgeDays = v
	}
	return opts
}
