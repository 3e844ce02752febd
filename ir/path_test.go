package ir

import (
	"errors"
	"testing"
)

func TestPath(t *testing.T) {
	photo := FromKeyVals([]KeyVal{
		{Key: "id", Val: FromString("20")},
		{Key: "tags", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "x", Val: FromFloat(10)}}),
		})},
		{Key: "a.b", Val: FromInt(1)},
	})
	x := photo.Values[1].Values[0].Values[0]
	if got := x.Path(); got != "$.tags[0].x" {
		t.Errorf("Path() = %q", got)
	}
	if got := photo.Values[2].Path(); got != "$.'a.b'" {
		t.Errorf("Path() = %q", got)
	}

	got, err := photo.GetPath("$.tags[0].x")
	if err != nil {
		t.Fatal(err)
	}
	if got != x {
		t.Errorf("GetPath returned %v", got)
	}
	got, err = photo.GetPath("$.'a.b'")
	if err != nil || got.Int64 == nil || *got.Int64 != 1 {
		t.Errorf("GetPath quoted = %v, %v", got, err)
	}

	if _, err := photo.GetPath("$.tags[3]"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := photo.GetPath("$.nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := photo.GetPath("tags"); !errors.Is(err, ErrPath) {
		t.Errorf("expected ErrPath, got %v", err)
	}
}
