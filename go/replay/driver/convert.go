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
	"strings"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/logger"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/replay"
	cliUtils "github.com/sherlock-audit/2025-01-peapods-finance/go/replay/driver/cli"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var ConvertCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doConvert,
	Name:      "convert",
	Usage:     "Convert fuzzer call sequences into Foundry replay tests",
	ArgsUsage: "[<file or directory>...]",
	Flags: []cli.Flag{
		cliUtils.InputFlag,
		cliUtils.OutputDirFlag,
		cliUtils.FunctionNameFlag,
		cliUtils.FilterCallFlag,
		cliUtils.CacheSizeFlag,
		cliUtils.SkipDuplicatesFlag,
		cliUtils.SaveConfigFlag,
	},
})

func doConvert(context *cli.Context) error {
	log := logger.FromContext(context.Context)
	cfg := cliUtils.ConfigFromContext(context.Context)

	if path := cliUtils.SaveConfigFlag.Fetch(context); path != "" {
		if err := cfg.Save(path); err != nil {
			return err
		}
		log.Debug("Saved configuration", zap.String("path", path))
	}

	inputs, err := readInputs(cliUtils.InputFlag.Fetch(context), context.App.Reader)
	if err != nil {
		return err
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	cache, err := replay.NewCache(replay.NewTranscoder(cfg.Transcoder), cfg.CacheSize)
	if err != nil {
		return err
	}
	skipDuplicates := cliUtils.SkipDuplicatesFlag.Fetch(context)

	start := time.Now()
	usedNames := map[string]int{}
	var lines, duplicates, written int
	for _, input := range inputs {
		code, duplicate := cache.Convert(input.text)
		lines += strings.Count(strings.TrimSpace(input.text), "\n") + 1
		if duplicate {
			duplicates++
			log.Warn("Duplicate call sequence", zap.String("input", input.name))
			if skipDuplicates {
				continue
			}
		}

		if cfg.OutputDir == "" {
			if len(inputs) > 1 {
				fmt.Fprintf(context.App.Writer, "// %s\n", input.name)
			}
			fmt.Fprint(context.App.Writer, code)
			written++
			continue
		}

		name := uniqueName(replayFileName(input.name), usedNames)
		path := filepath.Join(cfg.OutputDir, name)
		if err := os.WriteFile(path, []byte(code), 0644); err != nil {
			return fmt.Errorf("failed to write replay of %s: %w", input.name, err)
		}
		written++
		log.Debug("Wrote replay", zap.String("input", input.name), zap.String("output", path))
	}

	elapsed := time.Since(start)
	log.Title(fmt.Sprintf("Converted %d call sequences", len(inputs)))
	summary := []zap.Field{
		zap.Int("written", written),
		zap.Int("duplicates", duplicates),
		zap.Duration("elapsed", elapsed),
	}
	if rate, ok := throughput(lines, elapsed); ok {
		summary = append(summary, zap.String("rate", rate))
	}
	log.Info("Summary", summary...)
	return nil
}

// throughput formats the number of lines converted per second. Small inputs
// finish before the clock advances; no rate is reported for them.
func throughput(lines int, elapsed time.Duration) (string, bool) {
	if elapsed <= 0 {
		return "", false
	}
	rate := float64(lines) / elapsed.Seconds()
	return fmt.Sprintf("~%s lines/s", unitconv.FormatPrefix(rate, unitconv.SI, 0)), true
}

// uniqueName returns name, or a numbered variant of it if the name was
// returned before.
func uniqueName(name string, used map[string]int) string {
	count := used[name]
	used[name] = count + 1
	if count == 0 {
		return name
	}
	base, _ := strings.CutSuffix(name, ".t.sol")
	return uniqueName(fmt.Sprintf("%s_%d.t.sol", base, count), used)
}
