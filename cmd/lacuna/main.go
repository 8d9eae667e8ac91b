// Command lacuna is a terminal text editor built around a gap buffer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/lacuna/internal/config"
	"github.com/xonecas/lacuna/internal/filesearch"
	"github.com/xonecas/lacuna/internal/session"
	"github.com/xonecas/lacuna/internal/store"
	"github.com/xonecas/lacuna/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/lacuna/config.toml)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lacuna - a gap buffer text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lacuna [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacuna: %v\n", err)
		return 1
	}

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacuna: %v\n", err)
		return 1
	}

	// Logging goes to a file; the terminal belongs to the TUI.
	closeLog, err := setupLogging(cfg, dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacuna: %v\n", err)
		return 1
	}
	defer closeLog()

	// The recent-files store is a convenience. A broken database means a
	// degraded session, not a failed one: every store method tolerates a
	// nil receiver.
	st, err := store.Open(filepath.Join(dataDir, "lacuna.db"))
	if err != nil {
		log.Warn().Err(err).Msg("recent-files store unavailable")
	}
	defer st.Close()

	searcher, err := filesearch.New(".")
	if err != nil {
		log.Warn().Err(err).Msg("file search unavailable")
	}

	sess, err := openInitialSession(flag.Arg(0), cfg, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacuna: %v\n", err)
		return 1
	}

	p := tea.NewProgram(
		tui.New(sess, cfg, st, searcher),
		tea.WithFilter(tui.MouseEventFilter),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lacuna: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging points the global zerolog logger at the configured file
// and returns the cleanup that closes it.
func setupLogging(cfg *config.Config, dataDir string) (func(), error) {
	level, err := zerolog.ParseLevel(cfg.Log.LevelOrDefault())
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(dataDir, "lacuna.log")
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

// openInitialSession opens the file named on the command line, or a
// scratch session when there is none. File paths are made absolute so
// the store keys stay stable across working directories.
func openInitialSession(path string, cfg *config.Config, st *store.Store) (*session.Session, error) {
	if path == "" {
		seed := ""
		if cfg.Editor.Welcome {
			seed = tui.WelcomeText
		}
		return session.New(seed, cfg.Editor.ExtraCapacity)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	sess, err := session.Open(abs, cfg.Editor.ExtraCapacity)
	if err != nil {
		return nil, err
	}
	if cur, ok := st.Cursor(abs); ok {
		sess.RestoreCursor(cur)
	}
	st.Touch(abs, sess.Cursor())
	log.Info().Str("path", abs).Int("length", sess.Len()).Msg("opened file")
	return sess, nil
}
