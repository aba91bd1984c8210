package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go-sparkles/internal/config"
	"go-sparkles/internal/defs"
	"go-sparkles/internal/host"
	"go-sparkles/internal/logging"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sparkles",
		Short: "Sparkle trail overlay for the mouse pointer",
		Long: `sparkles draws a trail of short-lived coloured particles behind the
pointer in a transparent, click-through window. Particle volume and spread
follow pointer speed; each sparkle fades and shifts hue as it ages.

Press F9 to pause. Use "sparkles simulate" for a headless run.`,
		SilenceUsage: true,
		RunE:         runOverlay,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML config file layered over the preset")
	rootCmd.PersistentFlags().String("preset", defs.DefaultPreset, "Built-in or loaded preset name")
	rootCmd.PersistentFlags().String("presets-file", "", "Extra presets file (YAML or JSON list)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (0 = time based)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace")

	rootCmd.Flags().String("backend", host.BackendEbiten, "Window backend: ebiten or raylib")
	rootCmd.Flags().String("pointer", host.PointerGlobal, "Pointer source: global (OS cursor) or window")
	rootCmd.Flags().String("pprof-addr", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	rootCmd.Flags().String("profile", "", "Write a profile for the whole run: cpu or mem")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newPresetsCmd(),
		newSimulateCmd(),
	)
	return rootCmd
}

// loadPresets returns the built-in presets plus --presets-file.
func loadPresets(cmd *cobra.Command) (defs.Library, error) {
	lib, err := defs.Builtin()
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("presets-file"); path != "" {
		if err := lib.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// resolveConfig layers preset, config file, SPARKLES_* environment and
// command-line flags, in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	lib, err := loadPresets(cmd)
	if err != nil {
		return nil, err
	}
	preset, _ := cmd.Flags().GetString("preset")
	base, err := lib.Config(preset)
	if err != nil {
		return nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(base, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}

func runOverlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	if addr, _ := cmd.Flags().GetString("pprof-addr"); addr != "" {
		go func() {
			logger.Info("pprof listening", "addr", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Error("pprof server stopped", "error", err)
			}
		}()
	}

	mode, _ := cmd.Flags().GetString("profile")
	switch mode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q (valid: cpu, mem)", mode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, _ := cmd.Flags().GetString("backend")
	pointer, _ := cmd.Flags().GetString("pointer")
	return host.Run(ctx, host.Options{
		Config:  cfg,
		Backend: backend,
		Pointer: pointer,
		Logger:  logger,
	})
}
