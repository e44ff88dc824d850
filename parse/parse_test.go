package parse

import (
	"errors"
	"testing"

	"github.com/signadot/objpath/ir"
)

func TestParseOK(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{in: `null`, want: ir.Null()},
		{in: ``, want: ir.Null()},
		{in: `true`, want: ir.FromBool(true)},
		{in: `22`, want: ir.FromInt(22)},
		{in: `-3`, want: ir.FromInt(-3)},
		{in: `1.5`, want: ir.FromFloat(1.5)},
		{in: `"hello"`, want: ir.FromString("hello")},
		{in: `hello`, want: ir.FromString("hello")},
		{in: `[a,b]`, want: ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")})},
		{in: `[[]]`, want: ir.FromSlice([]*ir.Node{ir.Array()})},
		{in: `{}`, want: ir.Object()},
		{
			in: "b: 1\na: 2",
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "b", Val: ir.FromInt(1)},
				{Key: "a", Val: ir.FromInt(2)},
			}),
		},
		{
			in: `{"z": [1, {"y": null}], "a": "x"}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "z", Val: ir.FromSlice([]*ir.Node{
					ir.FromInt(1),
					ir.FromKeyVals([]ir.KeyVal{{Key: "y", Val: ir.Null()}}),
				})},
				{Key: "a", Val: ir.FromString("x")},
			}),
		},
		{
			in: "a:\n  - b: c\n  - d\n",
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromSlice([]*ir.Node{
					ir.FromKeyVals([]ir.KeyVal{{Key: "b", Val: ir.FromString("c")}}),
					ir.FromString("d"),
				})},
			}),
		},
	}
	for _, tc := range tests {
		got, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", tc.in, err)
			continue
		}
		if !ir.Equal(got, tc.want) {
			t.Errorf("# doc\n%s\n# got %s want %s", tc.in, got.Type, tc.want.Type)
		}
	}
}

func TestParseKeepsParents(t *testing.T) {
	node, err := Parse([]byte(`{"a": {"b": [1, 2]}}`))
	if err != nil {
		t.Fatal(err)
	}
	leaf := node.Values[0].Values[0].Values[1]
	if got := leaf.Path("."); got != "a.b.1" {
		t.Errorf("got path %q", got)
	}
}

func TestBadParse(t *testing.T) {
	for _, in := range []string{
		"{a: b",
		"a: b: c",
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", in, err)
		}
	}
	for _, in := range []string{
		"a: b",
		"",
		"{'a': 1}",
	} {
		if _, err := Parse([]byte(in), ParseJSON()); !errors.Is(err, ErrParse) {
			t.Errorf("json %q: expected ErrParse, got %v", in, err)
		}
	}
}
