// shooter is a vertical arcade space shooter for the terminal, a desktop window
// or remote play over SSH.
//
// Usage:
//
//	shooter                  - Play in the terminal
//	shooter play             - Play in the terminal
//	shooter window           - Play in a desktop window
//	shooter serve            - Start SSH server for remote play
//	shooter defaults         - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (also $SHOOTER_CONFIG)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--mute              - Disable sound effects
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// envConfig names the environment variable that may point at a config file.
const envConfig = "SHOOTER_CONFIG"

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - shoot down falling enemies",
	Long: `Space Shooter is an arcade game: steer your craft along the bottom of
the screen and shoot down enemies before they reach you or slip past.
Every spawn makes the next enemies fall faster and arrive sooner.

Available commands:
  play      - Play in the terminal (default)
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  defaults  - Print the default configuration

Examples:
  shooter
  shooter window --mute
  shooter serve --ssh :2222
  shooter defaults > ~/.shooter/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: $"+envConfig+", ~/.shooter/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the process logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           lvl,
	})
	return logger, nil
}

// openLogger returns a logger for the --log-file flag, falling back to
// fallback when no file is set. The close function is always safe to call.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger, err := newLogger(w, flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// configPath resolves the config file: the flag wins over the environment.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envConfig)
}

// loadConfig loads and validates the game settings and applies --mute.
func loadConfig(logger *log.Logger) (config.ShooterConfig, error) {
	cfg, source, err := config.LoadShooter(configPath(flagConfig))
	if err != nil {
		return config.ShooterConfig{}, err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	logger.Debug("config loaded", "source", source, "audio", cfg.Audio.Enabled)
	return cfg, nil
}
