package objpath

import "testing"

type deleteTest struct {
	Doc  string
	Path string
	Opts []Option
	Res  string
}

var deleteTests = []deleteTest{
	{Doc: `{"a":{"b":1},"c":2}`, Path: "a.b", Res: `{"c":2}`},
	{Doc: `{"a":{"b":1},"c":2}`, Path: "a.b", Opts: []Option{CleanAncestors(false)}, Res: `{"a":{},"c":2}`},
	{Doc: `{"a":{"b":1,"x":0},"c":2}`, Path: "a.b", Res: `{"a":{"x":0},"c":2}`},
	{Doc: `{"a":[1,2,3]}`, Path: "a.1", Res: `{"a":[1,3]}`},
	{Doc: `{"a":{"b":[{"c":1}]},"d":1}`, Path: "a.b.0.c", Res: `{"d":1}`},
	{Doc: `{"a":{"b":[{"c":1}]},"d":1}`, Path: "a.b.0.c", Opts: []Option{CleanAncestors(false)}, Res: `{"a":{"b":[{}]},"d":1}`},
	{Doc: `{"a":1}`, Path: "a", Res: `{}`},
	{Doc: `[[1]]`, Path: "0.0", Res: `[]`},
	{Doc: `{"a":1}`, Path: "b", Res: `{"a":1}`},
	{Doc: `{"a":1}`, Path: "a.b", Res: `{"a":1}`},
	{Doc: `{"a":[1]}`, Path: "a.x", Res: `{"a":[1]}`},
	{Doc: `{"a":{"b":1}}`, Path: "a/b", Opts: []Option{Delim("/")}, Res: `{}`},
}

func TestDelete(t *testing.T) {
	for _, tc := range deleteTests {
		node := mustParse(t, tc.Doc)
		got := Delete(node, tc.Path, tc.Opts...)
		if w := wire(got); w != tc.Res {
			t.Errorf("delete %q in %s: got %s want %s", tc.Path, tc.Doc, w, tc.Res)
		}
		if w := wire(node); w != tc.Doc {
			t.Errorf("delete %q modified input: %s", tc.Path, w)
		}
	}
}

func TestDeleteNil(t *testing.T) {
	if got := Delete(nil, "a"); got != nil {
		t.Errorf("got %v want nil", got)
	}
}

func TestDeleteKeepsIndices(t *testing.T) {
	got := Delete(mustParse(t, `{"a":[1,2,3],"b":0}`), "a.0")
	a := got.Values[0]
	for i, v := range a.Values {
		if v.ParentIndex != i || v.Parent != a {
			t.Errorf("element %d: parent index %d", i, v.ParentIndex)
		}
	}
}
