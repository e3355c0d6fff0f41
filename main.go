package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"go-sweep/internal/config"
	"go-sweep/internal/scoring"
	"go-sweep/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     uint64
	flagVerify   bool
	flagNoSound  bool
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "go-sweep",
	Short: "Minesweeper in your terminal",
	Long: `go-sweep is a 10x10 minesweeper with ten mines.

Move with the arrow keys or hjkl, open a cell with space, enter or a left
click, and flag it with f or a right click. Your first open is always safe.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a config file")
	pf.Uint64Var(&flagSeed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	pf.BoolVar(&flagVerify, "verify", false, "Check every generated board and abort on an inconsistency")
	pf.BoolVar(&flagNoSound, "no-sound", false, "Never ring the terminal bell")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies any flags given on the
// command line on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("verify") {
		cfg.Verify = flagVerify
	}
	if flagNoSound {
		cfg.Sound = false
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the game logger. Without a log file everything is
// discarded, since the terminal belongs to the board.
func newLogger(lc config.LogConfig) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}

	var w io.Writer = io.Discard
	closer := func() error { return nil }
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "go-sweep",
		Level:           level,
	})
	return logger, closer, nil
}

func runPlay(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close log file: %w", cerr)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "seed", seed, "verify", cfg.Verify, "sound", cfg.Sound)

	model := initialModel(cfg, rand.New(rand.NewPCG(seed, seed)), logger, os.Stderr)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}

	fmt.Print(summary(model.Session.Score))
	return nil
}

// summary describes the games finished before the program exits.
func summary(score *scoring.Scoring) string {
	last := score.GetLast()
	if last == nil {
		return ""
	}

	out := fmt.Sprintf("Played %d, won %d, lost %d.", score.GetPlayed(), score.Wins, score.Losses)
	if best, ok := score.GetBestTime(); ok {
		out += fmt.Sprintf(" Best time %ss.", state.FormatElapsed(best))
	}
	if last.Won {
		out += fmt.Sprintf("\nLast game: cleared in %ss.", state.FormatElapsed(last.Seconds))
	} else {
		out += fmt.Sprintf("\nLast game: lost after %ss.", state.FormatElapsed(last.Seconds))
	}
	return out + "\n"
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
