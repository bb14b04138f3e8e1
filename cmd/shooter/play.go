package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play the shooter in the current terminal.

Controls:
  Left/A, Right/D  - Move
  Enter/Space      - Fire
  R                - Retry (after game over)
  Esc/Q/Ctrl+C     - Quit

Terminals do not report key releases, so a direction stays held for a
few ticks after its last key event (input.hold_ticks in the config).
Logs are discarded unless --log-file is set.

Examples:
  shooter play
  shooter play --seed 42 --mute
  shooter play --config ./my-shooter.yaml --log-file shooter.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(io.Discard)
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

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game := shooter.New(cfg, flagSeed)
	logger.Info("starting", "game", game.ID(), "mode", "terminal", "size", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(game, tui.Options{
		Width:     width,
		Height:    height,
		TickRate:  cfg.TickRate,
		HoldTicks: cfg.Input.HoldTicks,
		Sound:     sound,
		Logger:    logger,
	})
}

// openSound starts audio output. Device failures are fatal and point at --mute.
func openSound(cfg config.AudioConfig) (audio.Sink, func(), error) {
	sink, closeFn, err := audio.NewSink(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (use --mute to play without sound)", err)
	}
	return sink, closeFn, nil
}
