package dpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		p, delim string
		want     []Segment
	}{
		{p: "a.b", delim: ".", want: []Segment{Key("a"), Key("b")}},
		{p: "a.0", delim: "", want: []Segment{{Key: "a"}, {Key: "0", Index: 0, IsIndex: true}}},
		{p: "a/12/b.c", delim: "/", want: []Segment{Key("a"), Index(12), Key("b.c")}},
		{p: "a..b", delim: ".", want: []Segment{Key("a"), Key(""), Key("b")}},
		{p: "", delim: ".", want: []Segment{Key("")}},
		{p: "-1.+2", delim: ".", want: []Segment{{Key: "-1"}, {Key: "+2"}}},
		{p: "x::y", delim: "::", want: []Segment{Key("x"), Key("y")}},
	}
	for _, tc := range tests {
		got := Split(tc.p, tc.delim)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("split %q: (-want +got)\n%s", tc.p, diff)
		}
		if j := Join(got, tc.delim); j != tc.p {
			t.Errorf("join %q: got %q", tc.p, j)
		}
	}
}

func TestIsIndex(t *testing.T) {
	for s, want := range map[string]bool{
		"0": true, "10": true, "007": true,
		"": false, "-1": false, "1e3": false, " 1": false, "99999999999999999999999": false,
	} {
		if _, got := IsIndex(s); got != want {
			t.Errorf("%q: got %t", s, got)
		}
	}
}

func TestAppend(t *testing.T) {
	if got := Append("", "a", "."); got != "a" {
		t.Errorf("got %q", got)
	}
	if got := Append("a", "b", "/"); got != "a/b" {
		t.Errorf("got %q", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		path, entry string
		want        bool
	}{
		{path: "a.b", entry: "a.b", want: true},
		{path: "a.b.c", entry: "a.b", want: true},
		{path: "a.bc", entry: "a.b", want: false},
		{path: "a", entry: "a.b", want: false},
		{path: "a.b", entry: "a.b.", want: false},
		{path: "a.b.c", entry: "a.b.", want: true},
		{path: "b", entry: ".b", want: true},
		{path: "x.y.b", entry: ".b", want: true},
		{path: "x.b.z", entry: ".b", want: true},
		{path: "x.bb", entry: ".b", want: false},
		{path: "x.b", entry: ".b.", want: false},
		{path: "x.b.z", entry: ".b.", want: true},
		{path: "b.q.b", entry: ".b.", want: true},
		{path: "x.y", entry: ".x.y", want: true},
		{path: "a", entry: "", want: false},
	}
	for _, tc := range tests {
		if got := Match(tc.path, tc.entry, "."); got != tc.want {
			t.Errorf("match %q %q: got %t", tc.path, tc.entry, got)
		}
	}
	if !Match("a/b/c", "a/b/", "/") || Match("a.b", "a/b", "/") {
		t.Errorf("delimiter ignored")
	}
	if !MatchAny("q.r", []string{"x", "q"}, ".") || MatchAny("q", nil, ".") {
		t.Errorf("match any")
	}
}
