// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed sequences
var sequences embed.FS

const (
	sequenceDir     = "sequences"
	logExtension    = ".log"
	replayExtension = ".sol"
)

// DemoName is the name of the example shown by the demo command.
const DemoName = "peapods"

// Example is a call-sequence log paired with the replay it converts to.
type Example struct {
	Name     string
	Sequence string // the fuzzer log
	Replay   string // the expected test function
}

// All returns all examples, sorted by name.
func All() []Example {
	entries, err := sequences.ReadDir(sequenceDir)
	if err != nil {
		panic(fmt.Sprintf("failed to list embedded sequences: %v", err))
	}
	var res []Example
	for _, entry := range entries {
		name, isLog := strings.CutSuffix(entry.Name(), logExtension)
		if !isLog {
			continue
		}
		example, err := Get(name)
		if err != nil {
			panic(err)
		}
		res = append(res, example)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Get returns the example with the given name.
func Get(name string) (Example, error) {
	sequence, err := sequences.ReadFile(path.Join(sequenceDir, name+logExtension))
	if err != nil {
		return Example{}, fmt.Errorf("unknown example %q", name)
	}
	replay, err := sequences.ReadFile(path.Join(sequenceDir, name+replayExtension))
	if err != nil {
		return Example{}, fmt.Errorf("example %q has no replay: %w", name, err)
	}
	return Example{
		Name:     name,
		Sequence: string(sequence),
		Replay:   string(replay),
	}, nil
}
