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
	"github.com/urfave/cli/v2"
)

type inputFlagType struct {
	cli.StringSliceFlag
}

var InputFlag = &inputFlagType{
	cli.StringSliceFlag{
		Name:      "input",
		Aliases:   []string{"i"},
		Usage:     "read given call-sequence file, or all files in the given directory (recursively); stdin if omitted",
		TakesFile: true,
	},
}

func (f *inputFlagType) Fetch(context *cli.Context) []string {
	return append(context.StringSlice(f.Name), context.Args().Slice()...)
}

type outputDirFlagType struct {
	cli.StringFlag
}

var OutputDirFlag = &outputDirFlagType{
	cli.StringFlag{
		Name:      "output-dir",
		Aliases:   []string{"o"},
		Usage:     "write one replay file per input into the given directory instead of stdout",
		TakesFile: true,
	},
}

func (f *outputDirFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type functionNameFlagType struct {
	cli.StringFlag
}

var FunctionNameFlag = &functionNameFlagType{
	cli.StringFlag{
		Name:  "function-name",
		Usage: "name of the generated test function",
	},
}

func (f *functionNameFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type filterCallFlagType struct {
	cli.StringSliceFlag
}

var FilterCallFlag = &filterCallFlagType{
	cli.StringSliceFlag{
		Name:  "filter-call",
		Usage: "do not replay calls containing the given text (replaces the configured list)",
	},
}

func (f *filterCallFlagType) Fetch(context *cli.Context) []string {
	return context.StringSlice(f.Name)
}

type cacheSizeFlagType struct {
	cli.IntFlag
}

var CacheSizeFlag = &cacheSizeFlagType{
	cli.IntFlag{
		Name:  "cache-size",
		Usage: "number of converted sequences remembered for duplicate detection",
	},
}

func (f *cacheSizeFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type skipDuplicatesFlagType struct {
	cli.BoolFlag
}

var SkipDuplicatesFlag = &skipDuplicatesFlagType{
	cli.BoolFlag{
		Name:  "skip-duplicates",
		Usage: "if enabled, sequences identical to an already converted one are not written again",
	},
}

func (f *skipDuplicatesFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type formatFlagType struct {
	cli.StringFlag
}

var FormatFlag = &formatFlagType{
	cli.StringFlag{
		Name:  "format",
		Usage: "output format, one of table, csv, json, yaml",
		Value: "table",
	},
}

func (f *formatFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type seedFlagType struct {
	cli.Uint64Flag
}

var SeedFlag = &seedFlagType{
	cli.Uint64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "seed for the random number generator",
	},
}

func (f *seedFlagType) Fetch(context *cli.Context) uint64 {
	return context.Uint64(f.Name)
}

type lengthFlagType struct {
	cli.IntFlag
}

var LengthFlag = &lengthFlagType{
	cli.IntFlag{
		Name:    "length",
		Aliases: []string{"l"},
		Usage:   "number of lines per generated sequence, random if 0",
	},
}

func (f *lengthFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type countFlagType struct {
	cli.IntFlag
}

var CountFlag = &countFlagType{
	cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of sequences to generate",
		Value:   1,
	},
}

func (f *countFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type configFlagType struct {
	cli.StringFlag
}

var ConfigFlag = &configFlagType{
	cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "load settings from the given YAML file",
		TakesFile: true,
	},
}

func (f *configFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type saveConfigFlagType struct {
	cli.StringFlag
}

var SaveConfigFlag = &saveConfigFlagType{
	cli.StringFlag{
		Name:      "save-config",
		Usage:     "store the effective settings as YAML in the given file",
		TakesFile: true,
	},
}

func (f *saveConfigFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type verboseFlagType struct {
	cli.BoolFlag
}

var VerboseFlag = &verboseFlagType{
	cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "enable debug logging",
	},
}

func (f *verboseFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type cpuProfileType struct {
	cli.StringFlag
}

var CpuProfileFlag = &cpuProfileType{
	cli.StringFlag{
		Name:      "cpuprofile",
		Usage:     "store CPU profile in the provided filename",
		TakesFile: true,
	},
}

func (f *cpuProfileType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}
