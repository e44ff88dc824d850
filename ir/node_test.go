package ir

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func checkLinks(t *testing.T, y *Node) {
	t.Helper()
	for i, v := range y.Values {
		if v.Parent != y || v.ParentIndex != i {
			t.Errorf("value %d of %s: bad back link", i, y.Type)
		}
		if y.Type == ObjectType && v.ParentField != y.Fields[i].String {
			t.Errorf("value %d: parent field %q want %q", i, v.ParentField, y.Fields[i].String)
		}
		checkLinks(t, v)
	}
}

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "b", Val: FromInt(1)},
		{Key: "a", Val: FromSlice([]*Node{FromString("x"), FromFloat(1.5), nil})},
		{Key: "c", Val: FromKeyVals([]KeyVal{{Key: "d", Val: FromBool(true)}})},
	})
}

func TestClone(t *testing.T) {
	y := sample()
	c := y.Values[1].Clone()
	if c.Parent != nil || c.ParentField != "" || c.ParentIndex != 0 {
		t.Errorf("clone attached")
	}
	checkLinks(t, c)
	c.Values[0].String = "changed"
	if y.Values[1].Values[0].String != "x" {
		t.Errorf("clone shares values")
	}
	*c.Values[1].Float64 = 3
	if *y.Values[1].Values[1].Float64 != 1.5 {
		t.Errorf("clone shares floats")
	}
	if (*Node)(nil).Clone() != nil {
		t.Errorf("nil clone")
	}
	if !Equal(y.Clone(), y) {
		t.Errorf("clone differs")
	}
}

func TestPutAppendSetIndex(t *testing.T) {
	y := sample()
	y.Put("a", FromInt(2))
	y.Put("z", nil)
	keys := []string{}
	for _, f := range y.Fields {
		keys = append(keys, f.String)
	}
	if diff := cmp.Diff([]string{"b", "a", "c", "z"}, keys); diff != "" {
		t.Errorf("keys (-want +got)\n%s", diff)
	}
	if Get(y, "z").Type != NullType || Get(y, "a").Type != NumberType {
		t.Errorf("bad values")
	}
	arr := Array()
	arr.Append(FromInt(0))
	arr.SetIndex(3, FromInt(3))
	arr.SetIndex(1, FromInt(1))
	if arr.Len() != 4 || arr.Values[2].Type != NullType || *arr.Values[1].Int64 != 1 {
		t.Errorf("bad array %v", arr.Values)
	}
	y.Put("arr", arr)
	checkLinks(t, y)
}

func TestRemoveAt(t *testing.T) {
	y := sample()
	y.RemoveAt(0)
	if y.Len() != 2 || y.Fields[0].String != "a" {
		t.Errorf("bad removal")
	}
	y.Values[0].RemoveAt(1)
	if y.Values[0].Len() != 2 || y.Values[0].Values[1].Type != NullType {
		t.Errorf("bad array removal")
	}
	checkLinks(t, y)
}

func TestPath(t *testing.T) {
	y := sample()
	if p := y.Values[1].Values[2].Path("."); p != "a.2" {
		t.Errorf("got %q", p)
	}
	if p := Get(Get(y, "c"), "d").Path("/"); p != "c/d" {
		t.Errorf("got %q", p)
	}
	if p := y.Path("."); p != "" {
		t.Errorf("root path %q", p)
	}
	if y.Values[2].Values[0].Root() != y {
		t.Errorf("bad root")
	}
}

func TestVisit(t *testing.T) {
	var pre, post int
	err := sample().Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return y.Type != ArrayType, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre %d post %d", pre, post)
	}
}

func TestCompare(t *testing.T) {
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(-1),
		FromFloat(0.5),
		FromInt(2),
		FromNumber("2.5"),
		FromString("a"),
		FromString("b"),
		Array(),
		FromSlice([]*Node{FromInt(1)}),
		Object(),
		FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
		FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
		FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(0)}}),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := Compare(ordered[i], ordered[j]); got != want {
				t.Errorf("compare %d %d: got %d want %d", i, j, got, want)
			}
		}
	}
	if Compare(nil, Null()) != -1 || !Equal(nil, nil) {
		t.Errorf("nil ordering")
	}
	if !Equal(FromInt(1), FromFloat(1.0)) || !Equal(FromNumber("1e0"), FromInt(1)) {
		t.Errorf("1 and 1.0 should be equal")
	}
	if Equal(FromInt(1), FromFloat(1.5)) {
		t.Errorf("1 and 1.5 should differ")
	}
}

func TestTruth(t *testing.T) {
	truthy := []*Node{FromBool(true), FromInt(1), FromFloat(0.1), FromString("x"), sample(), FromSlice([]*Node{nil})}
	falsy := []*Node{nil, Null(), FromBool(false), FromInt(0), FromFloat(0), FromString(""), Object(), Array()}
	for _, y := range truthy {
		if !Truth(y) {
			t.Errorf("%v should be true", ToAny(y))
		}
	}
	for _, y := range falsy {
		if Truth(y) {
			t.Errorf("%v should be false", ToAny(y))
		}
	}
}

func TestFromAny(t *testing.T) {
	var v any
	if err := json.Unmarshal([]byte(`{"b":[1,2.5,"s",null,true],"a":{}}`), &v); err != nil {
		t.Fatal(err)
	}
	y, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if y.Fields[0].String != "a" || y.Fields[1].String != "b" {
		t.Errorf("keys not sorted")
	}
	checkLinks(t, y)
	want := map[string]any{"a": map[string]any{}, "b": []any{1.0, 2.5, "s", nil, true}}
	if diff := cmp.Diff(want, ToAny(y)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	big, _ := FromAny(uint64(math.MaxUint64))
	if big.Number != "18446744073709551615" {
		t.Errorf("got %q", big.Number)
	}
	if n, _ := FromAny(json.Number("12")); n.Int64 == nil || *n.Int64 != 12 {
		t.Errorf("json number not int")
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected unsupported")
	}
}

func TestIRJSON(t *testing.T) {
	y := sample()
	d, err := json.Marshal(y)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(y, back) {
		t.Errorf("ir json round trip: %s", d)
	}
	checkLinks(t, back)
	bad := `{"type":"Object","fields":[{"type":"String","string":"a"}],"values":[]}`
	if err := json.Unmarshal([]byte(bad), &Node{}); err == nil {
		t.Errorf("expected malformed")
	}
}
