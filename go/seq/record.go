// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package seq

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Kind classifies a single line of a call-sequence log.
type Kind int

const (
	Unrecognized Kind = iota
	Call
	Wait
)

func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "unrecognized"
	case Call:
		return "call"
	case Wait:
		return "wait"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Line is a single line of a call-sequence log together with its position.
type Line struct {
	Text    string
	Index   int // position within the sequence, starting at 0
	FromEnd int // distance to the last line of the sequence
}

// IsLast reports whether this is the last line of the sequence.
func (l Line) IsLast() bool {
	return l.FromEnd == 0
}

// Delays holds the optional time and block advances of a log line. Values
// are kept as the decimal text found in the log; empty means absent.
type Delays struct {
	Time  string // seconds
	Block string // number of blocks
}

func (d Delays) HasTime() bool  { return d.Time != "" }
func (d Delays) HasBlock() bool { return d.Block != "" }

// TimeValue parses the time delay. Absent delays are reported as zero.
func (d Delays) TimeValue() (*uint256.Int, error) {
	return parseDecimal(d.Time)
}

// BlockValue parses the block delay. Absent delays are reported as zero.
func (d Delays) BlockValue() (*uint256.Int, error) {
	return parseDecimal(d.Block)
}

func (d Delays) String() string {
	var builder strings.Builder
	if d.HasTime() {
		fmt.Fprintf(&builder, " Time delay: %s seconds", d.Time)
	}
	if d.HasBlock() {
		fmt.Fprintf(&builder, " Block delay: %s", d.Block)
	}
	return builder.String()
}

// CallRecord is the content of a call line. The call expression is the
// function name followed by its parenthesized argument text, kept verbatim.
type CallRecord struct {
	Call   string
	Sender string // 0x-prefixed, 40 hex digits; empty if absent
	Gas    string // empty if absent
	Delays
}

func (c CallRecord) HasSender() bool { return c.Sender != "" }
func (c CallRecord) HasGas() bool    { return c.Gas != "" }

// SenderAddress returns the sender as an address, or the zero address if the
// call has no sender clause.
func (c CallRecord) SenderAddress() common.Address {
	return common.HexToAddress(c.Sender)
}

// GasValue parses the gas clause. An absent clause is reported as zero.
func (c CallRecord) GasValue() (*uint256.Int, error) {
	return parseDecimal(c.Gas)
}

// FunctionName returns the part of the call expression before the argument
// list.
func (c CallRecord) FunctionName() string {
	name, _, _ := strings.Cut(c.Call, "(")
	return name
}

// String renders the record in the log format it was parsed from, without
// any contract prefix.
func (c CallRecord) String() string {
	var builder strings.Builder
	builder.WriteString(c.Call)
	if c.HasSender() {
		builder.WriteString(" from: ")
		builder.WriteString(c.Sender)
	}
	if c.HasGas() {
		builder.WriteString(" Gas: ")
		builder.WriteString(c.Gas)
	}
	builder.WriteString(c.Delays.String())
	return builder.String()
}

// WaitRecord is the content of a wait line, advancing time and/or blocks
// without a call.
type WaitRecord struct {
	Delays
}

func (w WaitRecord) String() string {
	return waitMarker + w.Delays.String()
}

// Entry is a classified log line. Call is only meaningful for Kind Call and
// Wait only for Kind Wait.
type Entry struct {
	Line
	Kind Kind
	Call CallRecord
	Wait WaitRecord
}

// Delays returns the time and block advances of the entry, regardless of its
// kind.
func (e Entry) Delays() Delays {
	switch e.Kind {
	case Call:
		return e.Call.Delays
	case Wait:
		return e.Wait.Delays
	}
	return Delays{}
}

// String renders the entry as a log line. Unrecognized entries render their
// original text.
func (e Entry) String() string {
	switch e.Kind {
	case Call:
		return e.Call.String()
	case Wait:
		return e.Wait.String()
	}
	return e.Text
}

func parseDecimal(text string) (*uint256.Int, error) {
	if text == "" {
		return new(uint256.Int), nil
	}
	value, err := uint256.FromDecimal(text)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", text, err)
	}
	return value, nil
}
