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

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sherlock-audit/2025-01-peapods-finance/go/seq"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Statistics summarizes a call sequence and how it is replayed.
type Statistics struct {
	Lines        int
	Calls        int
	Waits        int
	Unrecognized int // non-blank lines which are neither calls nor waits
	Filtered     int
	Wrapped      int
	Direct       int
	TimeAdvance  *uint256.Int
	BlockAdvance *uint256.Int
	Gas          *uint256.Int
	Senders      []common.Address // sorted, without duplicates
	// Clauses with values which could not be summed up, e.g. because they
	// exceed 256 bits.
	Invalid int
}

// Report is the serializable form of Statistics.
type Report struct {
	Lines        int      `json:"lines" yaml:"lines"`
	Calls        int      `json:"calls" yaml:"calls"`
	Waits        int      `json:"waits" yaml:"waits"`
	Unrecognized int      `json:"unrecognized" yaml:"unrecognized"`
	Filtered     int      `json:"filtered" yaml:"filtered"`
	Wrapped      int      `json:"wrapped" yaml:"wrapped"`
	Direct       int      `json:"direct" yaml:"direct"`
	TimeAdvance  string   `json:"timeAdvance" yaml:"timeAdvance"`
	BlockAdvance string   `json:"blockAdvance" yaml:"blockAdvance"`
	Gas          string   `json:"gas" yaml:"gas"`
	Senders      []string `json:"senders" yaml:"senders"`
	Invalid      int      `json:"invalid" yaml:"invalid"`
}

// Analyze computes the statistics of the given entries under the policy of
// the given configuration.
func Analyze(entries []seq.Entry, config Config) *Statistics {
	transcoder := NewTranscoder(config)
	stats := &Statistics{
		Lines:        len(entries),
		TimeAdvance:  new(uint256.Int),
		BlockAdvance: new(uint256.Int),
		Gas:          new(uint256.Int),
	}
	senders := map[common.Address]struct{}{}

	for _, entry := range entries {
		switch transcoder.Classify(entry) {
		case Skipped:
			if strings.TrimSpace(entry.Text) != "" {
				stats.Unrecognized++
			}
			continue
		case Advance:
			stats.Waits++
		case Filtered:
			stats.Filtered++
		case Wrapped:
			stats.Wrapped++
		case Direct:
			stats.Direct++
		}

		if entry.Kind == seq.Call {
			stats.Calls++
			if entry.Call.HasSender() {
				senders[entry.Call.SenderAddress()] = struct{}{}
			}
			stats.add(stats.Gas, entry.Call.GasValue)
		}
		delays := entry.Delays()
		stats.add(stats.TimeAdvance, delays.TimeValue)
		stats.add(stats.BlockAdvance, delays.BlockValue)
	}

	stats.Senders = maps.Keys(senders)
	slices.SortFunc(stats.Senders, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return stats
}

func (s *Statistics) add(total *uint256.Int, value func() (*uint256.Int, error)) {
	v, err := value()
	if err != nil {
		s.Invalid++
		return
	}
	sum, overflow := new(uint256.Int).AddOverflow(total, v)
	if overflow {
		s.Invalid++
		return
	}
	total.Set(sum)
}

func (s *Statistics) Report() Report {
	senders := make([]string, 0, len(s.Senders))
	for _, sender := range s.Senders {
		senders = append(senders, sender.Hex())
	}
	return Report{
		Lines:        s.Lines,
		Calls:        s.Calls,
		Waits:        s.Waits,
		Unrecognized: s.Unrecognized,
		Filtered:     s.Filtered,
		Wrapped:      s.Wrapped,
		Direct:       s.Direct,
		TimeAdvance:  s.TimeAdvance.Dec(),
		BlockAdvance: s.BlockAdvance.Dec(),
		Gas:          s.Gas.Dec(),
		Senders:      senders,
		Invalid:      s.Invalid,
	}
}

// Rows lists the statistics as name/value pairs in a fixed order.
func (r Report) Rows() [][]string {
	return [][]string{
		{"lines", fmt.Sprint(r.Lines)},
		{"calls", fmt.Sprint(r.Calls)},
		{"waits", fmt.Sprint(r.Waits)},
		{"unrecognized", fmt.Sprint(r.Unrecognized)},
		{"filtered", fmt.Sprint(r.Filtered)},
		{"wrapped", fmt.Sprint(r.Wrapped)},
		{"direct", fmt.Sprint(r.Direct)},
		{"time_advance", r.TimeAdvance},
		{"block_advance", r.BlockAdvance},
		{"gas", r.Gas},
		{"senders", strings.Join(r.Senders, " ")},
		{"invalid", fmt.Sprint(r.Invalid)},
	}
}

func (s *Statistics) String() string {
	builder := strings.Builder{}
	builder.WriteString("statistic,value\n")
	for _, row := range s.Report().Rows() {
		builder.WriteString(fmt.Sprintf("%s,%s\n", row[0], row[1]))
	}
	return builder.String()
}
