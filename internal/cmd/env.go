package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/gravitrone/nebula-notes/internal/config"
	"github.com/gravitrone/nebula-notes/internal/store"
)

// BindFlags registers the flags every command shares.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP("file", "f", "", "note file (default from config, then "+config.DefaultNotesFile+")")
	fs.Bool("debug", false, "write debug logs to the configured log file")
}

// Env is the config, logger and store a command runs against.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	Store  *store.Store

	logFile *os.File
}

// OpenEnv loads config from file, env and flags, then opens the logger and store.
func OpenEnv(flags *pflag.FlagSet) (*Env, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}

	env := &Env{Config: cfg}
	env.Logger, env.logFile, err = openLogger(cfg)
	if err != nil {
		return nil, err
	}
	env.Store = store.New(cfg.NotesFile, env.Logger)
	env.Logger.Debug("env ready", "notes_file", cfg.NotesFile)
	return env, nil
}

// Close releases the log file, if one was opened.
func (e *Env) Close() error {
	if e == nil || e.logFile == nil {
		return nil
	}
	return e.logFile.Close()
}

// openLogger logs to the configured file in debug mode and nowhere otherwise,
// since the TUI owns the terminal.
func openLogger(cfg *config.Config) (*slog.Logger, *os.File, error) {
	if !cfg.Debug || cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, f, nil
}
