package objpath

import (
	"errors"
	"testing"

	"github.com/signadot/objpath/encode"
	"github.com/signadot/objpath/format"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/parse"
)

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	if doc == "" {
		return nil
	}
	node, err := parse.Parse([]byte(doc), parse.ParseJSON())
	if err != nil {
		t.Fatalf("parse %q: %v", doc, err)
	}
	return node
}

func wire(node *ir.Node) string {
	return encode.MustString(node, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
}

type getTest struct {
	Doc     string
	Path    string
	Opts    []Option
	Res     string
	Missing bool
}

var getTests = []getTest{
	{Doc: `{"a":{"b":{"c":1}}}`, Path: "a.b.c", Res: `1`},
	{Doc: `{"a":{"b":{"c":1}}}`, Path: "a.b", Res: `{"c":1}`},
	{Doc: `{"a":[1,{"b":2}]}`, Path: "a.1.b", Res: `2`},
	{Doc: `{"a":[1,{"b":2}]}`, Path: "a.0", Res: `1`},
	{Doc: `[[1,2],[3]]`, Path: "1.0", Res: `3`},
	{Doc: `{"a":null}`, Path: "a", Res: `null`},
	{Doc: `{"a":{"b":1}}`, Path: "a/b", Opts: []Option{Delim("/")}, Res: `1`},
	{Doc: `{"a.b":1}`, Path: "a.b", Opts: []Option{Delim("/")}, Res: `1`},
	{Doc: `{"a":{"b":1}}`, Path: "a.c", Missing: true},
	{Doc: `{"a":[1]}`, Path: "a.1", Missing: true},
	{Doc: `{"a":[1]}`, Path: "a.x", Missing: true},
	{Doc: `{"a":1}`, Path: "a.b", Missing: true},
	{Doc: `{"a":null}`, Path: "a.b", Missing: true},
	{Doc: `{}`, Path: "x.y", Missing: true},
	{Doc: ``, Path: "x", Missing: true},
}

func TestGet(t *testing.T) {
	for _, tc := range getTests {
		node := mustParse(t, tc.Doc)
		got, err := Get(node, tc.Path, tc.Opts...)
		if err != nil {
			t.Errorf("get %q in %s: %v", tc.Path, tc.Doc, err)
			continue
		}
		if tc.Missing {
			if got != nil {
				t.Errorf("get %q in %s: got %s want nil", tc.Path, tc.Doc, wire(got))
			}
			continue
		}
		if got == nil {
			t.Errorf("get %q in %s: got nil want %s", tc.Path, tc.Doc, tc.Res)
			continue
		}
		if w := wire(got); w != tc.Res {
			t.Errorf("get %q in %s: got %s want %s", tc.Path, tc.Doc, w, tc.Res)
		}
	}
}

func TestGetStrict(t *testing.T) {
	tests := []struct {
		doc, path, errPath string
	}{
		{doc: `{}`, path: "x.y", errPath: "x"},
		{doc: `{"a":{"b":1}}`, path: "a.c.d", errPath: "a.c"},
		{doc: `{"a":[1]}`, path: "a.4", errPath: "a.4"},
		{doc: `{"a":1}`, path: "a.b", errPath: "a.b"},
	}
	for _, tc := range tests {
		_, err := Get(mustParse(t, tc.doc), tc.path, Strict(true))
		if !errors.Is(err, ErrPathNotFound) {
			t.Errorf("get %q in %s: got %v want not found", tc.path, tc.doc, err)
			continue
		}
		var nf *PathNotFoundError
		if !errors.As(err, &nf) || nf.Path != tc.errPath {
			t.Errorf("get %q in %s: got %v want path %q", tc.path, tc.doc, err, tc.errPath)
		}
	}
}

func TestGetCopies(t *testing.T) {
	node := mustParse(t, `{"a":{"b":1}}`)
	got, _ := Get(node, "a")
	got.Put("b", ir.FromInt(2))
	if w := wire(node); w != `{"a":{"b":1}}` {
		t.Errorf("input modified: %s", w)
	}
	if got.Parent != nil {
		t.Errorf("copy still attached")
	}
	shared, _ := Get(node, "a", Shared(true))
	if shared != node.Values[0] {
		t.Errorf("shared get copied")
	}
}
