package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromNumber(t *testing.T) {
	tests := []struct {
		lit     string
		wantInt *int64
		wantF   *float64
	}{
		{lit: "100", wantInt: ptr(int64(100))},
		{lit: "-7", wantInt: ptr(int64(-7))},
		{lit: "10.0", wantF: ptr(10.0)},
		{lit: "1e3", wantF: ptr(1000.0)},
		{lit: "123456789012345678901234567890", wantF: ptr(1.2345678901234568e29)},
		{lit: "1e999"},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			n := FromNumber(tt.lit)
			if n.Number != tt.lit {
				t.Errorf("literal %q not kept, got %q", tt.lit, n.Number)
			}
			if diff := cmp.Diff(tt.wantInt, n.Int64); diff != "" {
				t.Errorf("Int64 (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantF, n.Float64); diff != "" {
				t.Errorf("Float64 (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetFirstOccurrence(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "id", Val: FromString("1")},
		{Key: "id", Val: FromString("2")},
		{Key: "name", Val: Null()},
	})
	if got := obj.Get("id"); got == nil || got.String != "1" {
		t.Fatalf("Get(id) = %v, want first occurrence", got)
	}
	if got := ToMap(obj)["id"]; got.String != "1" {
		t.Errorf("ToMap(id) = %q, want 1", got.String)
	}
	if got := obj.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if !obj.Get("name").IsNull() {
		t.Errorf("name should be null")
	}
	if FromString("x").Get("id") != nil {
		t.Errorf("Get on a non-object should be nil")
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{"b": FromInt(2), "a": FromInt(1), "c": FromInt(3)})
	var keys []string
	for _, f := range obj.Fields {
		keys = append(keys, f.String)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestToAny(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "id", Val: FromNumber("10")},
		{Key: "x", Val: FromFloat(1.5)},
		{Key: "tags", Val: FromSlice([]*Node{FromString("a"), FromBool(true), Null()})},
	})
	want := map[string]any{
		"id":   int64(10),
		"x":    1.5,
		"tags": []any{"a", true, nil},
	}
	if diff := cmp.Diff(want, ToAny(obj)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	orig := FromMap(map[string]*Node{"a": FromSlice([]*Node{FromInt(1)})})
	c := orig.Clone()
	c.Values[0].Values[0] = FromInt(2)
	if Compare(orig, c) == 0 {
		t.Errorf("clone shares structure with original")
	}
}

func ptr[T any](v T) *T { return &v }
