package filter

import (
	"errors"
	"testing"

	"github.com/signadot/graphmap/gomap"
	"github.com/signadot/graphmap/graph"
	"github.com/signadot/graphmap/ir"
)

func photoSnapshot(t *testing.T, in string) *ir.Node {
	t.Helper()
	p, err := gomap.DecodeJSON([]byte(in), graph.PhotoTable)
	if err != nil {
		t.Fatal(err)
	}
	return graph.PhotoTable.Snapshot(p)
}

func TestMatch(t *testing.T) {
	doc := photoSnapshot(t, `{"id":"20","width":100,"height":50,"created_time":"2012-01-01T00:00:00+0000",
		"from":{"id":"1","name":"Ann"},"tags":[{"id":"5","x":10.0,"y":20.0}]}`)
	tests := []struct {
		src  string
		want bool
	}{
		{`doc.width >= 100 && doc.height < 100`, true},
		{`len(doc.tags) == 1 && doc.tags[0].x == 10`, true},
		{`len(doc.likes) > 0`, false},
		{`getpath("$.from.name") == "Ann"`, true},
		{`getpath("$.nope") == nil`, true},
		{`haspath("$.from")`, true},
		{`haspath("$.place")`, false},
		{`longtime(doc.createdTime).Year() == 2012`, true},
		{`longtime(doc.updatedTime).IsZero()`, true},
		{`doc.id == "20"`, true},
	}
	for _, tt := range tests {
		f, err := Compile(tt.src)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		got, err := f.Match(doc)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.src, got, tt.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`doc.width >`, `"x"`, `1 + 2`} {
		if _, err := Compile(src); !errors.Is(err, ErrFilter) {
			t.Errorf("%s: expected ErrFilter, got %v", src, err)
		}
	}
}

func TestMatchNonBool(t *testing.T) {
	f, err := Compile(`getpath("$.width")`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Match(photoSnapshot(t, `{"width":3}`))
	if !errors.Is(err, ErrFilter) {
		t.Errorf("expected ErrFilter, got %v", err)
	}
}
