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
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/replay"
	cliUtils "github.com/sherlock-audit/2025-01-peapods-finance/go/replay/driver/cli"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/seq"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var StatsCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doStats,
	Name:      "stats",
	Usage:     "Summarizes call sequences and how they are replayed",
	ArgsUsage: "[<file or directory>...]",
	Flags: []cli.Flag{
		cliUtils.InputFlag,
		cliUtils.FilterCallFlag,
		cliUtils.FormatFlag,
	},
})

type statsPrinter func(io.Writer, []namedReport) error

var statsPrinters = map[string]statsPrinter{
	"table": printStatsTable,
	"csv":   printStatsCsv,
	"json":  printStatsJson,
	"yaml":  printStatsYaml,
}

type namedReport struct {
	Input string        `json:"input" yaml:"input"`
	Stats replay.Report `json:"stats" yaml:"stats"`
}

func doStats(context *cli.Context) error {
	cfg := cliUtils.ConfigFromContext(context.Context)

	format := cliUtils.FormatFlag.Fetch(context)
	printer, ok := statsPrinters[format]
	if !ok {
		formats := maps.Keys(statsPrinters)
		slices.Sort(formats)
		return fmt.Errorf("invalid format %q, use one of: %v", format, formats)
	}

	inputs, err := readInputs(cliUtils.InputFlag.Fetch(context), context.App.Reader)
	if err != nil {
		return err
	}

	reports := make([]namedReport, 0, len(inputs))
	for _, input := range inputs {
		stats := replay.Analyze(seq.Parse(input.text), cfg.Transcoder)
		reports = append(reports, namedReport{Input: input.name, Stats: stats.Report()})
	}
	return printer(context.App.Writer, reports)
}

func printStatsTable(out io.Writer, reports []namedReport) error {
	for _, report := range reports {
		fmt.Fprintf(out, "%s\n", report.Input)
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Statistic", "Value"})
		table.SetAutoWrapText(false)
		table.AppendBulk(report.Stats.Rows())
		table.Render()
	}
	return nil
}

func printStatsCsv(out io.Writer, reports []namedReport) error {
	fmt.Fprintln(out, "input,statistic,value")
	for _, report := range reports {
		for _, row := range report.Stats.Rows() {
			fmt.Fprintf(out, "%s,%s,%s\n", report.Input, row[0], row[1])
		}
	}
	return nil
}

func printStatsJson(out io.Writer, reports []namedReport) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reports)
}

func printStatsYaml(out io.Writer, reports []namedReport) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(reports); err != nil {
		return err
	}
	return encoder.Close()
}
