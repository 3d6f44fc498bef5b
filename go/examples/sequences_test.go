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
	"testing"

	"github.com/sherlock-audit/2025-01-peapods-finance/go/replay"
)

func TestExamples_AllAreListed(t *testing.T) {
	examples := All()
	want := []string{"lending", "peapods", "trailing_wait"}
	if len(want) != len(examples) {
		t.Fatalf("unexpected number of examples, wanted %d, got %d", len(want), len(examples))
	}
	for i, example := range examples {
		if want[i] != example.Name {
			t.Errorf("unexpected example at %d, wanted %s, got %s", i, want[i], example.Name)
		}
	}
}

func TestExamples_ConvertToTheirReplay(t *testing.T) {
	for _, example := range All() {
		t.Run(example.Name, func(t *testing.T) {
			if want, got := example.Replay, replay.ConvertToSolidity(example.Sequence); want != got {
				t.Errorf("unexpected replay\nwanted:\n%s\ngot:\n%s", want, got)
			}
		})
	}
}

func TestExamples_DemoExists(t *testing.T) {
	if _, err := Get(DemoName); err != nil {
		t.Errorf("demo example is missing: %v", err)
	}
}

func TestExamples_UnknownNameIsReported(t *testing.T) {
	if _, err := Get("no-such-example"); err == nil {
		t.Errorf("expected an error for an unknown example")
	}
}
