// hashgait is a terminal demo of a gait-biometric banking sign-in. Every
// credential is accepted and every figure is mock data.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/jask/hashgait/internal/clipboard"
	"github.com/jask/hashgait/internal/config"
	"github.com/jask/hashgait/internal/mock"
	"github.com/jask/hashgait/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("hashgait", pflag.ContinueOnError)
	config.Flags(flagSet)
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.Load(flagSet)
	if err != nil {
		return err
	}

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	tuiHandler := tui.NewLogHandler(level)
	var handler slog.Handler = tuiHandler
	if cfg.Log.File != "" {
		fileHandler, closeFile, err := openFileLogHandler(cfg.Log.File)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer closeFile()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := tui.New(ctx, tui.Options{
		Config:    cfg,
		Clipboard: clipboard.NewOSC52(),
		Logger:    logger,
		Generator: mock.New(cfg.Mock.Randomize, cfg.Mock.Seed),
		Dark:      darkTheme(cfg.UI.Theme),
	})
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	tuiHandler.SetProgram(program)

	logger.Debug("starting", "theme", app.Theme(), "random", cfg.Mock.Randomize)
	_, err = program.Run()
	return err
}

// darkTheme resolves "auto" against the terminal background.
func darkTheme(theme string) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return termenv.NewOutput(os.Stdout).HasDarkBackground()
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `hashgait: gait biometric sign-in demo for the terminal.

Any username and password are accepted. After sign in a simulated gait
capture runs, then the mock banking dashboard opens. No data is sent or
stored.

Settings are read from $HOME/.config/hashgait/config.toml, then
HASHGAIT_* environment variables (HASHGAIT_TIMING_CAPTURE_SECONDS=3),
then flags.

Usage:
  hashgait [flags]

Flags:
%s`, flagSet.FlagUsages())
}
