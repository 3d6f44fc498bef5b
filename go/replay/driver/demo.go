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

	"github.com/sherlock-audit/2025-01-peapods-finance/go/examples"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/replay"
	cliUtils "github.com/sherlock-audit/2025-01-peapods-finance/go/replay/driver/cli"
	"github.com/urfave/cli/v2"
)

var DemoCmd = cliUtils.AddCommonFlags(cli.Command{
	Action: doDemo,
	Name:   "demo",
	Usage:  "Converts the built-in sample call sequence and prints the result",
	Flags: []cli.Flag{
		cliUtils.FunctionNameFlag,
		cliUtils.FilterCallFlag,
	},
})

func doDemo(context *cli.Context) error {
	cfg := cliUtils.ConfigFromContext(context.Context)

	example, err := examples.Get(examples.DemoName)
	if err != nil {
		return err
	}
	fmt.Fprint(context.App.Writer, replay.NewTranscoder(cfg.Transcoder).Convert(example.Sequence))
	return nil
}
