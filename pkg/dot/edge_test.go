package dot

import "testing"

func TestQuoteEdge(t *testing.T) {
	tests := []struct {
		input string
		exp   string
	}{
		{"spam", "spam"},
		{"spam:eggs:s", "spam:eggs:s"},
		{"spam spam:eggs eggs", `"spam spam":"eggs eggs"`},
		{"spam:", "spam"},
		{"spam:eggs:", "spam:eggs"},
		{"spam::s", `spam:"":s`},
		{"spam::", `spam:""`},
		{":eggs", `"":eggs`},
		{"", `""`},
		{"spam:eggs:bogus compass", "spam:eggs:bogus compass"},
		{"spam:eggs:s:extra", "spam:eggs:s:extra"},
		{"node:graph", `"node":"graph"`},
		{"<<b>x</b>>:p", "<<b>x</b>>:p"},
		{"1.5:2:n", "1.5:2:n"},
	}

	for _, test := range tests {
		got := QuoteEdge(test.input)
		if got != test.exp {
			t.Errorf("\nquote edge %q\n\texp:%v\n\tgot:%v", test.input, test.exp, got)
		}
	}
}

func TestSplitEdge(t *testing.T) {
	tests := []struct {
		input string
		exp   Endpoint
	}{
		{"spam", Endpoint{Node: "spam"}},
		{"spam:eggs", Endpoint{Node: "spam", Port: "eggs", HasPort: true}},
		{"spam:eggs:ne", Endpoint{Node: "spam", Port: "eggs", Compass: "ne", HasPort: true}},
		{"spam:", Endpoint{Node: "spam"}},
		{"spam::", Endpoint{Node: "spam", HasPort: true}},
		{"spam::c", Endpoint{Node: "spam", Compass: "c", HasPort: true}},
		{"a:b:c:d", Endpoint{Node: "a", Port: "b", Compass: "c:d", HasPort: true}},
	}

	for _, test := range tests {
		got := SplitEdge(test.input)
		if got != test.exp {
			t.Errorf("\nsplit %q\n\texp:%+v\n\tgot:%+v", test.input, test.exp, got)
			continue
		}
		if got.String() != QuoteEdge(test.input) {
			t.Errorf("\nsplit %q\n\tstring:%v\n\tquote edge:%v", test.input, got.String(), QuoteEdge(test.input))
		}
	}
}
