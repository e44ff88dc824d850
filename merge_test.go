package objpath

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		a, b, res string
	}{
		{
			a:   `{"a":{"b":1,"c":[1,2]},"d":1}`,
			b:   `{"a":{"c":[3],"e":2},"d":{"x":1}}`,
			res: `{"a":{"b":1,"c":[3],"e":2},"d":{"x":1}}`,
		},
		{a: `{"a":1}`, b: `{"a":null}`, res: `{"a":null}`},
		{a: `{"a":{"b":1}}`, b: `{"a":"s"}`, res: `{"a":"s"}`},
		{a: `{"a":1}`, b: ``, res: `{"a":1}`},
		{a: `{"a":1}`, b: `[1]`, res: `[1]`},
		{a: `[1,2]`, b: `{"a":1}`, res: `{"a":1}`},
		{a: ``, b: `{"a":1}`, res: `{"a":1}`},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		got := Merge(a, b)
		if w := wire(got); w != tc.res {
			t.Errorf("merge %s %s: got %s want %s", tc.a, tc.b, w, tc.res)
		}
		if a != nil && wire(a) != tc.a {
			t.Errorf("merge modified a: %s", wire(a))
		}
		if b != nil && wire(b) != tc.b {
			t.Errorf("merge modified b: %s", wire(b))
		}
	}
}

func TestCopy(t *testing.T) {
	node := mustParse(t, `{"a":[{"b":1}]}`)
	cp := Copy(node)
	cp.Values[0].Values[0].Put("b", nil)
	if w := wire(node); w != `{"a":[{"b":1}]}` {
		t.Errorf("copy shares: %s", w)
	}
	if Copy(nil) != nil {
		t.Errorf("copy nil")
	}
}
