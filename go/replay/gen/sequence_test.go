// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gen

import (
	"errors"
	"testing"

	"github.com/sherlock-audit/2025-01-peapods-finance/go/seq"
	"pgregory.net/rand"
)

func TestSequenceGenerator_UnconstrainedGeneratorCanProduceSequences(t *testing.T) {
	rnd := rand.New(0)
	generator := NewSequenceGenerator()
	for i := 0; i < 100; i++ {
		entries, err := generator.Generate(rnd)
		if err != nil {
			t.Fatalf("unexpected error during generation: %v", err)
		}
		if len(entries) < 1 || len(entries) > MaxLength {
			t.Errorf("unexpected sequence length %d", len(entries))
		}
	}
}

func TestSequenceGenerator_SetLengthIsEnforced(t *testing.T) {
	rnd := rand.New(0)
	for _, length := range []int{1, 2, 5, 100} {
		generator := NewSequenceGenerator()
		generator.SetLength(length)
		entries, err := generator.Generate(rnd)
		if err != nil {
			t.Fatalf("unexpected error during generation: %v", err)
		}
		if want, got := length, len(entries); want != got {
			t.Errorf("unexpected sequence length, wanted %d, got %d", want, got)
		}
	}
}

func TestSequenceGenerator_SetLastKindIsEnforced(t *testing.T) {
	rnd := rand.New(0)
	for _, kind := range []seq.Kind{seq.Unrecognized, seq.Call, seq.Wait} {
		generator := NewSequenceGenerator()
		generator.SetLastKind(kind)
		for i := 0; i < 10; i++ {
			entries, err := generator.Generate(rnd)
			if err != nil {
				t.Fatalf("unexpected error during generation: %v", err)
			}
			if want, got := kind, entries[len(entries)-1].Kind; want != got {
				t.Errorf("unexpected kind of last entry, wanted %v, got %v", want, got)
			}
		}
	}
}

func TestSequenceGenerator_UnsatisfiableConstraintsAreDetected(t *testing.T) {
	tests := map[string]func(*SequenceGenerator){
		"zero length": func(g *SequenceGenerator) {
			g.SetLength(0)
		},
		"negative length": func(g *SequenceGenerator) {
			g.SetLength(-3)
		},
		"conflicting lengths": func(g *SequenceGenerator) {
			g.SetLength(3)
			g.SetLength(4)
		},
		"conflicting kinds": func(g *SequenceGenerator) {
			g.SetLastKind(seq.Call)
			g.SetLastKind(seq.Wait)
		},
		"invalid kind": func(g *SequenceGenerator) {
			g.SetLastKind(seq.Kind(12))
		},
	}

	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			generator := NewSequenceGenerator()
			setup(generator)
			if _, err := generator.Generate(rand.New(0)); !errors.Is(err, ErrUnsatisfiable) {
				t.Errorf("unsatisfiable constraint not detected, got %v", err)
			}
		})
	}
}

func TestSequenceGenerator_NonConflictingConstraintsAreAccepted(t *testing.T) {
	generator := NewSequenceGenerator()
	generator.SetLength(12)
	generator.SetLength(12)
	generator.SetLastKind(seq.Call)
	generator.SetLastKind(seq.Call)
	if _, err := generator.Generate(rand.New(0)); err != nil {
		t.Errorf("generation failed: %v", err)
	}
}

func TestRender_RenderedSequencesParseIntoGeneratedEntries(t *testing.T) {
	rnd := rand.New(0)
	generator := NewSequenceGenerator()
	for i := 0; i < 200; i++ {
		entries, err := generator.Generate(rnd)
		if err != nil {
			t.Fatalf("unexpected error during generation: %v", err)
		}
		log := Render(entries, rnd)
		parsed := seq.Parse(log)
		if want, got := len(entries), len(parsed); want != got {
			t.Fatalf("unexpected number of lines in\n%s\nwanted %d, got %d", log, want, got)
		}
		for j := range entries {
			want, got := entries[j], parsed[j]
			want.Text, got.Text = "", ""
			if want != got {
				t.Errorf("line %d of\n%s\nparsed to %+v, wanted %+v", j, log, got, want)
			}
		}
	}
}
