// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sherlock-audit/2025-01-peapods-finance/go/logger"
	cliUtils "github.com/sherlock-audit/2025-01-peapods-finance/go/replay/driver/cli"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/replay/gen"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"pgregory.net/rand"
)

var GenerateCmd = cliUtils.AddCommonFlags(cli.Command{
	Action: doGenerate,
	Name:   "generate",
	Usage:  "Generates random call-sequence logs",
	Flags: []cli.Flag{
		cliUtils.SeedFlag,
		cliUtils.LengthFlag,
		cliUtils.CountFlag,
		cliUtils.OutputDirFlag,
	},
})

func doGenerate(context *cli.Context) error {
	log := logger.FromContext(context.Context)
	cfg := cliUtils.ConfigFromContext(context.Context)

	seed := cliUtils.SeedFlag.Fetch(context)
	if !context.IsSet(cliUtils.SeedFlag.Name) {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("Generating call sequences", zap.Uint64("seed", seed))

	count := cliUtils.CountFlag.Fetch(context)
	if count < 0 {
		return fmt.Errorf("invalid count %d", count)
	}

	generator := gen.NewSequenceGenerator()
	if length := cliUtils.LengthFlag.Fetch(context); length != 0 {
		generator.SetLength(length)
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	rnd := rand.New(seed)
	for i := 0; i < count; i++ {
		entries, err := generator.Generate(rnd)
		if err != nil {
			return err
		}
		text := gen.Render(entries, rnd)

		if cfg.OutputDir == "" {
			if count > 1 {
				fmt.Fprintf(context.App.Writer, "// sequence %d\n", i)
			}
			fmt.Fprintln(context.App.Writer, text)
			continue
		}

		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("sequence_%04d.log", i))
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write call sequence: %w", err)
		}
		log.Debug("Wrote call sequence", zap.String("output", path), zap.Int("lines", len(entries)))
	}
	return nil
}
