package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Yamashou/methodgen/config"
	"github.com/Yamashou/methodgen/plugins"
)

type options struct {
	configFile   string
	skipToString bool
	verbose      bool
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) (err error) {
	cfgFile := opts.configFile
	if cfgFile == "" {
		cfgFile, err = config.FindConfigFile(".", config.DefaultConfigFilenames)
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	// the flag can only turn toString generation off
	if opts.skipToString {
		cfg.ObjectMethods.SkipToString = true
	}

	unit, err := cfg.LoadModel()
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	out := stdout
	if cfg.Output != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		out = f
	}

	if err := plugins.GenerateCode(ctx, cfg, unit, out, logger); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
