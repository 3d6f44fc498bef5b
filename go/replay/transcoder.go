// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package replay turns fuzzer call-sequence logs into Foundry test functions
// replaying the same calls, senders and time/block advances.
package replay

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sherlock-audit/2025-01-peapods-finance/go/seq"
)

const (
	DefaultFunctionName = "test_replay"
	// Read-only helper showing up in fuzz logs; replaying it is useless.
	DefaultFilteredCall = "collateralToMarketId"
)

// Config controls the shape of the generated test function.
type Config struct {
	// FunctionName is the name of the generated test function.
	FunctionName string `yaml:"functionName,omitempty" json:"functionName,omitempty"`
	// FilteredCalls lists substrings of call expressions which are not
	// replayed. The pranks and advances of filtered lines are kept.
	// An empty list disables filtering and is kept when saved.
	FilteredCalls []string `yaml:"filteredCalls" json:"filteredCalls"`
}

func DefaultConfig() Config {
	return Config{
		FunctionName:  DefaultFunctionName,
		FilteredCalls: []string{DefaultFilteredCall},
	}
}

var (
	ErrInvalidFunctionName = errors.New("invalid function name")
	ErrEmptyFilter         = errors.New("empty call filter")
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks that the configuration produces compilable code.
func (c Config) Validate() error {
	if c.FunctionName != "" && !identifierPattern.MatchString(c.FunctionName) {
		return fmt.Errorf("%w: %q", ErrInvalidFunctionName, c.FunctionName)
	}
	// An empty filter would match, and drop, every call.
	for i, filter := range c.FilteredCalls {
		if filter == "" {
			return fmt.Errorf("%w at position %d", ErrEmptyFilter, i)
		}
	}
	return nil
}

func (c Config) functionName() string {
	if c.FunctionName == "" {
		return DefaultFunctionName
	}
	return c.FunctionName
}

func (c Config) filteredCalls() []string {
	if c.FilteredCalls == nil {
		return []string{DefaultFilteredCall}
	}
	return c.FilteredCalls
}

// Emission describes what the replay does with a single log line.
type Emission int

const (
	Skipped  Emission = iota // line not recognized, nothing emitted
	Filtered                 // call dropped, pranks and advances kept
	Wrapped                  // call wrapped in try/catch
	Direct                   // call performed directly
	Advance                  // wait line, only advances emitted
)

func (e Emission) String() string {
	switch e {
	case Skipped:
		return "skipped"
	case Filtered:
		return "filtered"
	case Wrapped:
		return "wrapped"
	case Direct:
		return "direct"
	case Advance:
		return "advance"
	}
	return fmt.Sprintf("Emission(%d)", int(e))
}

// Transcoder converts parsed call sequences into replay statements. It holds
// no mutable state and may be used concurrently.
type Transcoder struct {
	config Config
}

func NewTranscoder(config Config) *Transcoder {
	return &Transcoder{config: config}
}

// ConvertToSolidity converts a call-sequence log into a Foundry test function
// using the default configuration.
func ConvertToSolidity(callSequence string) string {
	return NewTranscoder(DefaultConfig()).Convert(callSequence)
}

// Convert parses the given log and renders it as a Foundry test function.
// Lines that are neither calls nor waits are dropped.
func (t *Transcoder) Convert(callSequence string) string {
	writer := NewSolidityWriter()
	t.Emit(seq.Parse(callSequence), writer)
	return writer.String()
}

// Classify decides how the given entry is replayed.
//
// Only a call on the very last line of the log is performed directly. If the
// log ends with any other line, all calls are wrapped.
func (t *Transcoder) Classify(entry seq.Entry) Emission {
	switch entry.Kind {
	case seq.Wait:
		return Advance
	case seq.Call:
		for _, filtered := range t.config.filteredCalls() {
			if strings.Contains(entry.Call.Call, filtered) {
				return Filtered
			}
		}
		if entry.IsLast() {
			return Direct
		}
		return Wrapped
	}
	return Skipped
}

// Emit writes the replay of the given entries, framed as a single function,
// to the writer.
func (t *Transcoder) Emit(entries []seq.Entry, writer StatementWriter) {
	writer.BeginFunction(t.config.functionName())
	for _, entry := range entries {
		emission := t.Classify(entry)
		if emission == Skipped {
			continue
		}

		if entry.Kind == seq.Call && entry.Call.HasSender() {
			writer.Prank(entry.Call.Sender)
		}
		delays := entry.Delays()
		if delays.HasTime() {
			writer.Warp(delays.Time)
		}
		if delays.HasBlock() {
			writer.Roll(delays.Block)
		}

		switch emission {
		case Filtered:
			continue
		case Direct:
			writer.Call(entry.Call.Call)
		case Wrapped:
			writer.TryCall(entry.Call.Call)
		}
		writer.EndEntry()
	}
	writer.EndFunction()
}
