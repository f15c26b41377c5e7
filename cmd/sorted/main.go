package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/sorted/app"
	"github.com/lixenwraith/sorted/audio"
	"github.com/lixenwraith/sorted/config"
	"github.com/lixenwraith/sorted/constants"
)

// options holds raw flag values; only flags the user set are applied over the config
type options struct {
	ConfigPath string
	Size       int
	Min        int
	Max        int
	Delay      time.Duration
	FPS        int
	Volume     float64
	Mute       bool
	Debug      bool
	Seed       uint64
}

type runFunc func(ctx context.Context, cfg config.Config) error

func main() {
	if err := newRootCmd(run).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(runFn runFunc) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "sorted [flags]",
		Short: "Terminal sorting algorithm visualizer",
		Long: `sorted animates six classic sorting algorithms over an array of bars.
Click a button or press 1-6 to run an algorithm, n for a new array, q to quit.`,
		Example: `  # Run with defaults
  sorted

  # Larger array, slower animation, no sound
  sorted --size 120 --delay 20ms --mute

  # Load settings from a file and log to logs/sorted.log
  sorted --config sorted.toml --debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "sorted: %v\n", err)
				return err
			}

			if logFile := setupLogging(opts.Debug); logFile != nil {
				defer logFile.Close()
			}

			if err := runFn(cmd.Context(), cfg); err != nil {
				logrus.WithError(err).Error("exited with error")
				fmt.Fprintf(os.Stderr, "sorted: %v\n", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a TOML config file")
	flags.IntVarP(&opts.Size, "size", "s", 0, "Number of bars")
	flags.IntVar(&opts.Min, "min", 0, "Smallest generated value")
	flags.IntVar(&opts.Max, "max", 0, "Largest generated value")
	flags.DurationVar(&opts.Delay, "delay", 0, "Pause after each sort step")
	flags.IntVar(&opts.FPS, "fps", 0, "Idle redraw rate")
	flags.Float64Var(&opts.Volume, "volume", 0, "Sound volume within [0,1]")
	flags.BoolVarP(&opts.Mute, "mute", "m", false, "Disable sound")
	flags.BoolVarP(&opts.Debug, "debug", "d", false, "Write a debug log to logs/sorted.log")
	flags.Uint64Var(&opts.Seed, "seed", 0, "Seed for deterministic arrays (0 picks a random seed)")

	return cmd
}

// resolveConfig layers defaults, the optional config file and changed flags, then validates
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, errors.Wrap(err, "load config")
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.ArraySize = opts.Size
	}
	if flags.Changed("min") {
		cfg.MinValue = opts.Min
	}
	if flags.Changed("max") {
		cfg.MaxValue = opts.Max
	}
	if flags.Changed("delay") {
		cfg.StepDelay = config.Duration{Duration: opts.Delay}
	}
	if flags.Changed("fps") {
		cfg.FPS = opts.FPS
	}
	if flags.Changed("volume") {
		cfg.Volume = opts.Volume
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if opts.Mute {
		cfg.Sound = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// run owns the terminal for the lifetime of the visualizer
func run(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize screen")
	}

	// Restore the terminal before reporting a crash
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSORTED CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, constants.EventQueueSize)
	go pumpEvents(screen, events, done, crash)

	log := logrus.StandardLogger()
	appOpts := []app.Option{app.WithLogger(log)}

	if cfg.Sound {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("audio initialization failed, continuing without audio")
		} else {
			defer sm.Cleanup()
			appOpts = append(appOpts, app.WithSound(sm))
		}
	}

	log.WithFields(logrus.Fields{
		"size":  cfg.ArraySize,
		"min":   cfg.MinValue,
		"max":   cfg.MaxValue,
		"delay": cfg.StepDelay.Duration,
		"sound": cfg.Sound,
	}).Info("starting")

	return app.New(cfg, screen, events, appOpts...).Run(ctx)
}

// pumpEvents forwards terminal events until the screen is finalized or done closes.
// The channel is closed on return, which the app treats as an exit request.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}, crash func(any)) {
	defer close(events)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
