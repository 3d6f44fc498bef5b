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
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// stdinName is the name reported for a sequence read from standard input.
const stdinName = "-"

type sequenceInput struct {
	name string // file path, or stdinName
	text string
}

// enumerateInputs resolves the given files and directories into a sorted list
// of files. Directories are searched recursively.
func enumerateInputs(inputs []string) ([]string, error) {
	var inputFiles []string

	for _, input := range inputs {
		path, err := filepath.Abs(input)
		if err != nil {
			return nil, err
		}

		stat, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			inputFiles = append(inputFiles, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			filePath := filepath.Join(path, entry.Name())
			if entry.IsDir() {
				recInputs, err := enumerateInputs([]string{filePath})
				if err != nil {
					return nil, err
				}
				inputFiles = append(inputFiles, recInputs...)
			} else {
				inputFiles = append(inputFiles, filePath)
			}
		}
	}

	sort.Strings(inputFiles)
	return inputFiles, nil
}

// readInputs loads all sequences named by the given inputs, or a single
// sequence from stdin if there are no inputs.
func readInputs(inputs []string, stdin io.Reader) ([]sequenceInput, error) {
	if len(inputs) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read call sequence from stdin: %w", err)
		}
		return []sequenceInput{{name: stdinName, text: string(data)}}, nil
	}

	files, err := enumerateInputs(inputs)
	if err != nil {
		return nil, err
	}
	res := make([]sequenceInput, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read call sequence: %w", err)
		}
		res = append(res, sequenceInput{name: file, text: string(data)})
	}
	return res, nil
}

// replayFileName derives the name of the generated file for an input.
func replayFileName(input string) string {
	if input == stdinName {
		return "replay.t.sol"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".t.sol"
}
