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
	"testing"
)

const sender = "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func TestParseLine_ClassifiesLines(t *testing.T) {
	tests := map[string]struct {
		text string
		want Entry
	}{
		"empty": {
			text: "",
			want: Entry{},
		},
		"garbage": {
			text: "Property violated after 12 calls",
			want: Entry{},
		},
		"plain call": {
			text: "bar()",
			want: Entry{Kind: Call, Call: CallRecord{Call: "bar()"}},
		},
		"prefixed call": {
			text: "Foo.bar(1,2)",
			want: Entry{Kind: Call, Call: CallRecord{Call: "bar(1,2)"}},
		},
		"fuzz prefix": {
			text: "Fuzz.bar(1)",
			want: Entry{Kind: Call, Call: CallRecord{Call: "bar(1)"}},
		},
		"indented call": {
			text: "        Foo.bar(7)",
			want: Entry{Kind: Call, Call: CallRecord{Call: "bar(7)"}},
		},
		"all clauses": {
			text: "Foo.bar(1,2) from: " + sender + " Gas: 300 Time delay: 5 seconds Block delay: 2",
			want: Entry{Kind: Call, Call: CallRecord{
				Call:   "bar(1,2)",
				Sender: sender,
				Gas:    "300",
				Delays: Delays{Time: "5", Block: "2"},
			}},
		},
		"sender and time": {
			text: "Foo.bar(1,2) from: " + sender + " Time delay: 5 seconds",
			want: Entry{Kind: Call, Call: CallRecord{
				Call:   "bar(1,2)",
				Sender: sender,
				Delays: Delays{Time: "5"},
			}},
		},
		"block only": {
			text: "Foo.bar() Block delay: 9",
			want: Entry{Kind: Call, Call: CallRecord{
				Call:   "bar()",
				Delays: Delays{Block: "9"},
			}},
		},
		"short sender is ignored": {
			text: "Foo.bar() from: 0x1234 Gas: 5",
			want: Entry{Kind: Call, Call: CallRecord{Call: "bar()"}},
		},
		"out of order clauses are ignored": {
			text: "Foo.bar() Time delay: 5 seconds from: " + sender,
			want: Entry{Kind: Call, Call: CallRecord{
				Call:   "bar()",
				Delays: Delays{Time: "5"},
			}},
		},
		"wait": {
			text: "*wait* Time delay: 21 seconds Block delay: 1",
			want: Entry{Kind: Wait, Wait: WaitRecord{Delays{Time: "21", Block: "1"}}},
		},
		"bare wait": {
			text: "    *wait*",
			want: Entry{Kind: Wait},
		},
		"wait with block only": {
			text: "*wait* Block delay: 3",
			want: Entry{Kind: Wait, Wait: WaitRecord{Delays{Block: "3"}}},
		},
		"non-ascii function name is not a call": {
			text: "Foo.café(1)",
			want: Entry{},
		},
		"non-ascii digits are no delay": {
			text: "Foo.bar(1) Time delay: ١٢ seconds",
			want: Entry{Kind: Call, Call: CallRecord{Call: "bar(1)"}},
		},
		"call takes precedence over wait": {
			text: "*wait* Foo.bar(1)",
			want: Entry{Kind: Call, Call: CallRecord{Call: "bar(1)"}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test.want.Text = test.text
			if want, got := test.want, ParseLine(test.text); want != got {
				t.Errorf("unexpected entry, wanted %+v, got %+v", want, got)
			}
		})
	}
}

func TestParse_EmptyLogProducesSingleBlankLine(t *testing.T) {
	for _, log := range []string{"", "   ", "\n\n\t\n"} {
		entries := Parse(log)
		if want, got := 1, len(entries); want != got {
			t.Fatalf("unexpected number of entries for %q, wanted %d, got %d", log, want, got)
		}
		if want, got := Unrecognized, entries[0].Kind; want != got {
			t.Errorf("unexpected kind, wanted %v, got %v", want, got)
		}
		if !entries[0].IsLast() {
			t.Errorf("single entry should be the last one")
		}
	}
}

func TestParse_PositionsAreCountedOverAllLines(t *testing.T) {
	log := `
		Foo.a()

		garbage
		*wait* Time delay: 1 seconds
		Foo.b()
	`
	entries := Parse(log)
	kinds := []Kind{Call, Unrecognized, Unrecognized, Wait, Call}
	if want, got := len(kinds), len(entries); want != got {
		t.Fatalf("unexpected number of entries, wanted %d, got %d", want, got)
	}
	for i, entry := range entries {
		if want, got := kinds[i], entry.Kind; want != got {
			t.Errorf("entry %d: unexpected kind, wanted %v, got %v", i, want, got)
		}
		if want, got := i, entry.Index; want != got {
			t.Errorf("unexpected index, wanted %d, got %d", want, got)
		}
		if want, got := len(kinds)-1-i, entry.FromEnd; want != got {
			t.Errorf("entry %d: unexpected distance to end, wanted %d, got %d", i, want, got)
		}
	}
	if !entries[4].IsLast() || entries[3].IsLast() {
		t.Errorf("only the final line should be last")
	}
}

func TestParse_CallTextIsPassedThroughVerbatim(t *testing.T) {
	call := "f(0x00ff, -1,  [1,2], \"a b\")"
	entries := Parse("C." + call)
	if want, got := call, entries[0].Call.Call; want != got {
		t.Errorf("unexpected call text, wanted %q, got %q", want, got)
	}
}

func TestParse_InformationSeparatorsAreNotTrimmed(t *testing.T) {
	entries := Parse("C.a()\n\x1c")
	if want, got := 2, len(entries); want != got {
		t.Fatalf("unexpected number of entries, wanted %d, got %d", want, got)
	}
	if entries[0].IsLast() {
		t.Errorf("call followed by a separator line should not be last")
	}
	if want, got := Unrecognized, entries[1].Kind; want != got {
		t.Errorf("unexpected kind, wanted %v, got %v", want, got)
	}
}
