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
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/exp/slices"
)

func TestEnumerateInputs_DirectoriesAreSearchedRecursively(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.log", "")
	a := writeFile(t, dir, "a.log", "")
	nested := writeFile(t, dir, filepath.Join("nested", "c.log"), "")

	files, err := enumerateInputs([]string{dir})
	if err != nil {
		t.Fatalf("failed to enumerate inputs: %v", err)
	}
	if want, got := []string{a, b, nested}, files; !slices.Equal(want, got) {
		t.Errorf("unexpected files, wanted %v, got %v", want, got)
	}
}

func TestEnumerateInputs_MissingFileIsReported(t *testing.T) {
	if _, err := enumerateInputs([]string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Errorf("expected missing file to be reported")
	}
}

func TestReadInputs_StdinIsUsedWithoutInputs(t *testing.T) {
	inputs, err := readInputs(nil, strings.NewReader("deposit(1)"))
	if err != nil {
		t.Fatalf("failed to read inputs: %v", err)
	}
	if want, got := []sequenceInput{{name: stdinName, text: "deposit(1)"}}, inputs; !slices.Equal(want, got) {
		t.Errorf("unexpected inputs, wanted %v, got %v", want, got)
	}
}

func TestReadInputs_FilesAreRead(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.log", "deposit(1)")

	inputs, err := readInputs([]string{path}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("failed to read inputs: %v", err)
	}
	if want, got := []sequenceInput{{name: path, text: "deposit(1)"}}, inputs; !slices.Equal(want, got) {
		t.Errorf("unexpected inputs, wanted %v, got %v", want, got)
	}
}

func TestReplayFileName(t *testing.T) {
	tests := map[string]string{
		stdinName:               "replay.t.sol",
		"/tmp/sequences/a.log":  "a.t.sol",
		"relative/run.2024.txt": "run.2024.t.sol",
		"no_extension":          "no_extension.t.sol",
	}
	for input, want := range tests {
		if got := replayFileName(input); want != got {
			t.Errorf("unexpected name for %s, wanted %s, got %s", input, want, got)
		}
	}
}

func TestUniqueName_RepeatedNamesAreNumbered(t *testing.T) {
	used := map[string]int{}
	names := []string{}
	for _, name := range []string{"a.t.sol", "a.t.sol", "b.t.sol", "a.t.sol", "a_1.t.sol"} {
		names = append(names, uniqueName(name, used))
	}
	want := []string{"a.t.sol", "a_1.t.sol", "b.t.sol", "a_2.t.sol", "a_1_1.t.sol"}
	if !slices.Equal(want, names) {
		t.Errorf("unexpected names, wanted %v, got %v", want, names)
	}
}

func TestThroughput_NoRateWithoutElapsedTime(t *testing.T) {
	if rate, ok := throughput(10, 0); ok {
		t.Errorf("unexpected rate %q for zero elapsed time", rate)
	}
	rate, ok := throughput(2000, time.Second)
	if !ok {
		t.Fatalf("expected a rate for positive elapsed time")
	}
	if !strings.HasSuffix(rate, " lines/s") || strings.Contains(rate, "Inf") {
		t.Errorf("unexpected rate %q", rate)
	}
}
