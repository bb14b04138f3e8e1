package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window titled "Space Shooter" and play there.

Controls are the same as in the terminal; direction keys report real
key-up events here. Closing the window quits.

Examples:
  shooter window
  shooter window --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	sound, closeSound, err := openSound(cfg.Audio)
	if err != nil {
		return err
	}
	defer closeSound()

	game := shooter.New(cfg, flagSeed)
	logger.Info("starting", "game", game.ID(), "mode", "window")

	return window.Run(game, window.Options{
		Sound:  sound,
		Logger: logger,
	})
}
