// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/mattn/go-isatty"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/config"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/logger"
	"github.com/urfave/cli/v2"
)

var commonFlags = []cli.Flag{
	CpuProfileFlag,
	ConfigFlag,
	VerboseFlag,
}

// AddCommonFlags extends the given command by the flags shared by all
// commands. The wrapped action finds the loaded configuration and a logger in
// the context, see ConfigFromContext and logger.FromContext.
func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, commonFlags...)

	action := command.Action
	command.Action = func(ctx *cli.Context) (err error) {

		if cpuprofileFilename := CpuProfileFlag.Fetch(ctx); cpuprofileFilename != "" {
			f, err := os.Create(cpuprofileFilename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		cfg, err := LoadConfig(ctx)
		if err != nil {
			return err
		}

		log := logger.NewLoggerWithOptions(logger.Options{
			Verbose: cfg.Verbose,
			Writer:  ctx.App.ErrWriter,
			NoColor: !isTerminal(ctx.App.ErrWriter),
		})
		defer log.Sync() //nolint:errcheck
		ctx.Context = logger.WithLogger(ctx.Context, log)
		ctx.Context = context.WithValue(ctx.Context, configKey, cfg)

		return action(ctx)
	}
	return command
}

// isTerminal reports whether the writer is a console able to show colors.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

type ctxKey string

const configKey ctxKey = "config"

// ConfigFromContext returns the configuration loaded for the running
// command, or the defaults outside of a command.
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// LoadConfig reads the configuration file named by the config flag, or the
// defaults if there is none, and applies the flags set on the command line.
func LoadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := ConfigFlag.Fetch(ctx); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ctx.IsSet(FunctionNameFlag.Name) {
		cfg.Transcoder.FunctionName = FunctionNameFlag.Fetch(ctx)
	}
	if ctx.IsSet(FilterCallFlag.Name) {
		cfg.Transcoder.FilteredCalls = FilterCallFlag.Fetch(ctx)
	}
	if ctx.IsSet(CacheSizeFlag.Name) {
		cfg.CacheSize = CacheSizeFlag.Fetch(ctx)
	}
	if ctx.IsSet(OutputDirFlag.Name) {
		cfg.OutputDir = OutputDirFlag.Fetch(ctx)
	}
	if ctx.IsSet(VerboseFlag.Name) {
		cfg.Verbose = VerboseFlag.Fetch(ctx)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
