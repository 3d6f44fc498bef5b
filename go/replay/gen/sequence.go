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
	"fmt"
	"strings"

	"github.com/sherlock-audit/2025-01-peapods-finance/go/seq"
	"pgregory.net/rand"
)

type constErr string

func (e constErr) Error() string {
	return string(e)
}

// ErrUnsatisfiable is an error returned by generators if constraints
// are not satisfiable.
const ErrUnsatisfiable = constErr("unsatisfiable constraints")

// MaxLength is the maximum number of lines of a sequence generated without
// a length constraint.
const MaxLength = 16

var functionNames = []string{
	"deposit",
	"withdraw",
	"pod_bond",
	"pod_debond",
	"pod_addLiquidityV2",
	"stakingPool_stake",
	"aspTKN_deposit",
	"aspTKN_withdraw",
	"collateralToMarketId",
}

var contractPrefixes = []string{"", "Fuzz.", "PeapodsInvariant.", "CryticTester."}

// Lines a fuzzer prints around a call sequence. None of them is a call or a
// wait line.
var noise = []string{
	"Call sequence:",
	"echidna_invariant: failed!",
	"[FAILED] Assertion Test: Tester.check_solvency",
	"Traces:",
	"Unique instructions: 31337",
}

// SequenceGenerator is a utility class for generating random call-sequence
// logs. Constraints are added using its setters; conflicting constraints are
// reported by Generate.
type SequenceGenerator struct {
	lengths   []int
	lastKinds []seq.Kind
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// SetLength fixes the number of lines of the generated sequence.
func (g *SequenceGenerator) SetLength(length int) {
	g.lengths = append(g.lengths, length)
}

// SetLastKind fixes the kind of the last line of the generated sequence.
func (g *SequenceGenerator) SetLastKind(kind seq.Kind) {
	g.lastKinds = append(g.lastKinds, kind)
}

// Generate produces a random sequence satisfying all constraints. Entry
// positions are set; the text of call and wait entries is left empty, use
// Render to obtain the log.
func (g *SequenceGenerator) Generate(rnd *rand.Rand) ([]seq.Entry, error) {
	length := 1 + rnd.Intn(MaxLength)
	if len(g.lengths) > 0 {
		length = g.lengths[0]
		for _, cur := range g.lengths[1:] {
			if cur != length {
				return nil, fmt.Errorf("%w, conflicting lengths %v", ErrUnsatisfiable, g.lengths)
			}
		}
		// Any log, even an empty one, consists of at least one line.
		if length <= 0 {
			return nil, fmt.Errorf("%w, invalid length %d", ErrUnsatisfiable, length)
		}
	}

	var lastKind *seq.Kind
	if len(g.lastKinds) > 0 {
		kind := g.lastKinds[0]
		for _, cur := range g.lastKinds[1:] {
			if cur != kind {
				return nil, fmt.Errorf("%w, conflicting last kinds %v", ErrUnsatisfiable, g.lastKinds)
			}
		}
		if kind < seq.Unrecognized || kind > seq.Wait {
			return nil, fmt.Errorf("%w, invalid kind %v", ErrUnsatisfiable, kind)
		}
		lastKind = &kind
	}

	entries := make([]seq.Entry, length)
	for i := range entries {
		kind := randomKind(rnd)
		if i == length-1 && lastKind != nil {
			kind = *lastKind
		}

		entry := seq.Entry{Kind: kind}
		switch kind {
		case seq.Call:
			entry.Call = randomCall(rnd)
		case seq.Wait:
			entry.Wait = seq.WaitRecord{Delays: randomDelays(rnd)}
		default:
			// Blank lines at the borders of a log are trimmed away.
			if i != 0 && i != length-1 && rnd.Intn(3) == 0 {
				entry.Text = ""
			} else {
				entry.Text = noise[rnd.Intn(len(noise))]
			}
		}
		entry.Index = i
		entry.FromEnd = length - 1 - i
		entries[i] = entry
	}
	return entries, nil
}

// Render produces the log text of the given entries, adding random contract
// prefixes to calls and random indentation.
func Render(entries []seq.Entry, rnd *rand.Rand) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		line := entry.String()
		if entry.Kind == seq.Call {
			line = contractPrefixes[rnd.Intn(len(contractPrefixes))] + line
		}
		if entry.Kind != seq.Unrecognized || entry.Text != "" {
			line = strings.Repeat("    ", rnd.Intn(3)) + line
		}
		lines = append(lines, line)
	}
	return "\n" + strings.Join(lines, "\n") + "\n    "
}

func randomKind(rnd *rand.Rand) seq.Kind {
	switch n := rnd.Intn(20); {
	case n < 12:
		return seq.Call
	case n < 17:
		return seq.Wait
	}
	return seq.Unrecognized
}

func randomCall(rnd *rand.Rand) seq.CallRecord {
	args := make([]string, rnd.Intn(5))
	for i := range args {
		args[i] = fmt.Sprint(rnd.Uint64())
	}
	record := seq.CallRecord{
		Call:   fmt.Sprintf("%s(%s)", functionNames[rnd.Intn(len(functionNames))], strings.Join(args, ",")),
		Delays: randomDelays(rnd),
	}
	if rnd.Intn(2) == 0 {
		record.Sender = randomAddress(rnd)
	}
	if rnd.Intn(4) == 0 {
		record.Gas = fmt.Sprint(21000 + rnd.Uint64n(30_000_000))
	}
	return record
}

func randomDelays(rnd *rand.Rand) seq.Delays {
	var delays seq.Delays
	if rnd.Intn(2) == 0 {
		delays.Time = fmt.Sprint(rnd.Uint64n(1 << 20))
	}
	if rnd.Intn(2) == 0 {
		delays.Block = fmt.Sprint(rnd.Uint64n(1 << 16))
	}
	return delays
}

func randomAddress(rnd *rand.Rand) string {
	const digits = "0123456789abcdefABCDEF"
	var builder strings.Builder
	builder.WriteString("0x")
	for i := 0; i < 40; i++ {
		builder.WriteByte(digits[rnd.Intn(len(digits))])
	}
	return builder.String()
}
