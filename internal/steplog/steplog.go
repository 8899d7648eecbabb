// Package steplog keeps a rotating on-disk audit trail of solver steps,
// one JSON line per applied move.
package steplog

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/ashabalin/autosweeper/internal/mines"
	"github.com/ashabalin/autosweeper/internal/solver"
)

type Logger struct {
	log       *logrus.Logger
	sessionId int64
}

type Options struct {
	Filename   string
	MaxSizeMb  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a step logger writing rotated JSON lines to opts.Filename.
// With an empty filename the logger discards everything, which keeps
// call sites free of nil checks.
func New(opts Options) (*Logger, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	if opts.Filename == "" {
		return &Logger{log: log}, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSizeMb,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, err
	}
	log.AddHook(hook)

	return &Logger{log: log}, nil
}

// ForSession returns a logger that stamps every step with a game session
// id.
func (l *Logger) ForSession(sessionId int64) *Logger {
	return &Logger{log: l.log, sessionId: sessionId}
}

// Record implements [solver.Recorder].
func (l *Logger) Record(move solver.Move, grid mines.Grid) {
	l.log.WithFields(logrus.Fields{
		"game_session_id": l.sessionId,
		"x":               move.X,
		"y":               move.Y,
		"kind":            move.Kind.String(),
		"guess":           move.Guess,
		"covered":         countCovered(grid),
	}).Info("auto step")
}

func countCovered(grid mines.Grid) (count int) {
	for _, c := range grid {
		if c.Status() != mines.Revealed {
			count++
		}
	}
	return
}
