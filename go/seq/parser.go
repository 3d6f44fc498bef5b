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
	"regexp"
	"strings"
)

const waitMarker = "*wait*"

const delayClauses = `(?: Time delay: (\d+) seconds)?(?: Block delay: (\d+))?`

var (
	// The call expression starts at the first `name(`, which drops any
	// `Contract.` prefix in front of it.
	callPattern = regexp.MustCompile(
		`(?:Fuzz\.)?(\w+\([^\)]*\))(?: from: (0x[0-9a-fA-F]{40}))?(?: Gas: (\d+))?` + delayClauses,
	)
	waitPattern = regexp.MustCompile(regexp.QuoteMeta(waitMarker) + delayClauses)
)

// Parse splits a call-sequence log into lines and classifies each of them.
// Surrounding whitespace of the log is ignored; every remaining line,
// including blank ones, produces exactly one entry.
func Parse(log string) []Entry {
	lines := strings.Split(strings.TrimSpace(log), "\n")
	entries := make([]Entry, 0, len(lines))
	for i, text := range lines {
		entry := ParseLine(text)
		entry.Index = i
		entry.FromEnd = len(lines) - 1 - i
		entries = append(entries, entry)
	}
	return entries
}

// ParseLine classifies a single line. The call shape takes precedence over
// the wait shape; lines matching neither are Unrecognized. The position of
// the returned entry is left at zero.
func ParseLine(text string) Entry {
	entry := Entry{Line: Line{Text: text}}
	if match := callPattern.FindStringSubmatch(text); match != nil {
		entry.Kind = Call
		entry.Call = CallRecord{
			Call:   match[1],
			Sender: match[2],
			Gas:    match[3],
			Delays: Delays{Time: match[4], Block: match[5]},
		}
		return entry
	}
	if match := waitPattern.FindStringSubmatch(text); match != nil {
		entry.Kind = Wait
		entry.Wait = WaitRecord{Delays{Time: match[1], Block: match[2]}}
	}
	return entry
}
