// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package replay

//go:generate mockgen -source writer.go -destination writer_mock.go -package replay

import (
	"fmt"
	"strings"
)

// StatementWriter receives the statements of a replay in the order they are
// to appear in the generated test function.
type StatementWriter interface {
	// BeginFunction opens a test function with the given name.
	BeginFunction(name string)
	// Prank makes the next call originate from the given sender.
	Prank(sender string)
	// Warp advances the block timestamp by the given number of seconds.
	Warp(seconds string)
	// Roll advances the block number by the given number of blocks.
	Roll(blocks string)
	// TryCall performs a call whose failure does not abort the replay.
	TryCall(call string)
	// Call performs a call that must succeed.
	Call(call string)
	// EndEntry separates the statements of one log line from the next.
	EndEntry()
	// EndFunction closes the test function.
	EndFunction()
}

const indent = "    "

// SolidityWriter renders statements as a Foundry test function.
type SolidityWriter struct {
	builder strings.Builder
}

func NewSolidityWriter() *SolidityWriter {
	return &SolidityWriter{}
}

func (w *SolidityWriter) BeginFunction(name string) {
	fmt.Fprintf(&w.builder, "function %s() public {\n", name)
}

func (w *SolidityWriter) Prank(sender string) {
	w.statement("vm.prank(%s);", sender)
}

func (w *SolidityWriter) Warp(seconds string) {
	w.statement("vm.warp(block.timestamp + %s);", seconds)
}

func (w *SolidityWriter) Roll(blocks string) {
	w.statement("vm.roll(block.number + %s);", blocks)
}

func (w *SolidityWriter) TryCall(call string) {
	w.statement("try this.%s {} catch {}", call)
}

func (w *SolidityWriter) Call(call string) {
	w.statement("%s;", call)
}

func (w *SolidityWriter) EndEntry() {
	w.builder.WriteString("\n")
}

func (w *SolidityWriter) EndFunction() {
	w.builder.WriteString("}\n")
}

// String returns everything written so far.
func (w *SolidityWriter) String() string {
	return w.builder.String()
}

func (w *SolidityWriter) statement(format string, args ...any) {
	w.builder.WriteString(indent)
	fmt.Fprintf(&w.builder, format, args...)
	w.builder.WriteString("\n")
}
