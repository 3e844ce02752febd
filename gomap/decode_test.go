package gomap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/signadot/graphmap/ir"
	"github.com/signadot/graphmap/parse"

	"github.com/google/go-cmp/cmp"
)

type ident struct {
	id string
}

type point struct {
	ident
	label string
	x, y  float64
}

type pic struct {
	ident
	width, height int
	public        bool
	takenTime     string
	owner         *ident
	points        []point
	rank          int
}

var identTable = NewTable("Ident",
	String("id", func(i *ident) *string { return &i.id }),
)

var pointTable = NewTable("Point",
	Embed(identTable, func(p *point) *ident { return &p.ident }),
	String("label", func(p *point) *string { return &p.label }).As("name"),
	Float("x", func(p *point) *float64 { return &p.x }),
	Float("y", func(p *point) *float64 { return &p.y }),
)

var picTable = NewTable("Pic",
	Embed(identTable, func(p *pic) *ident { return &p.ident }),
	Int("width", func(p *pic) *int { return &p.width }),
	Int("height", func(p *pic) *int { return &p.height }),
	Bool("public", func(p *pic) *bool { return &p.public }),
	String("takenTime", func(p *pic) *string { return &p.takenTime }),
	Object("owner", identTable, func(p *pic) **ident { return &p.owner }).As("from"),
	Slice("points", pointTable, func(p *pic) *[]point { return &p.points }).
		Tolerate(ir.ObjectType).
		Unwrap(DataKey),
	Int("rank", func(p *pic) *int { return &p.rank }).Deprecated(),
)

var allow = cmp.AllowUnexported(pic{}, point{}, ident{})

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return node
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *pic
	}{
		{
			name: "all fields",
			in: `{"id":"20","width":100,"height":50,"public":true,"taken_time":"2012-01-01T00:00:00+0000",
				"from":{"id":"7"},"points":[{"id":"5","name":"a","x":10.0,"y":20.0}],"rank":3}`,
			want: &pic{
				ident:     ident{id: "20"},
				width:     100,
				height:    50,
				public:    true,
				takenTime: "2012-01-01T00:00:00+0000",
				owner:     &ident{id: "7"},
				points:    []point{{ident: ident{id: "5"}, label: "a", x: 10, y: 20}},
				rank:      3,
			},
		},
		{
			name: "empty object",
			in:   `{}`,
			want: &pic{},
		},
		{
			name: "nulls",
			in:   `{"id":null,"width":null,"from":null,"points":null}`,
			want: &pic{},
		},
		{
			name: "unknown keys",
			in:   `{"id":"1","album":{"id":"2"},"extra":[1,2,3]}`,
			want: &pic{ident: ident{id: "1"}},
		},
		{
			name: "numeric id",
			in:   `{"id":12345678901234567890}`,
			want: &pic{ident: ident{id: "12345678901234567890"}},
		},
		{
			name: "coerced scalars",
			in:   `{"width":"100","height":50.0,"public":"true","taken_time":1325376000}`,
			want: &pic{width: 100, height: 50, public: true, takenTime: "1325376000"},
		},
		{
			name: "tolerated placeholder",
			in:   `{"id":"1","points":{"count":0},"width":3}`,
			want: &pic{ident: ident{id: "1"}, width: 3},
		},
		{
			name: "envelope",
			in:   `{"points":{"data":[{"x":1},{"x":2}],"paging":{}}}`,
			want: &pic{points: []point{{x: 1}, {x: 2}}},
		},
		{
			name: "empty list",
			in:   `{"points":[]}`,
			want: &pic{points: []point{}},
		},
		{
			name: "bad elements skipped",
			in:   `{"points":[1,{"x":1},null,"s",{"x":2}]}`,
			want: &pic{points: []point{{x: 1}, {x: 2}}},
		},
		{
			name: "mismatches leave zero values",
			in:   `{"id":{"nested":true},"width":1.5,"height":"tall","public":"maybe","from":"7","points":"none","rank":[1]}`,
			want: &pic{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(mustParse(t, tt.in), picTable)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, allow); diff != "" {
				t.Errorf("Decode() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeStructural(t *testing.T) {
	for _, in := range []string{`[]`, `"x"`, `1`, `null`, `true`} {
		t.Run(in, func(t *testing.T) {
			_, err := Decode(mustParse(t, in), picTable)
			if !errors.Is(err, ErrStructure) {
				t.Fatalf("expected ErrStructure, got %v", err)
			}
			var ue *UnmarshalError
			if !errors.As(err, &ue) || ue.Type != "Pic" || ue.Path != "$" {
				t.Errorf("unexpected error %#v", err)
			}
		})
	}
	if _, err := Decode(nil, picTable); !errors.Is(err, ErrStructure) {
		t.Errorf("nil node: expected ErrStructure, got %v", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	got, err := DecodeJSON([]byte(`{"id":"1","width":2}`), picTable)
	if err != nil {
		t.Fatal(err)
	}
	if got.id != "1" || got.width != 2 {
		t.Errorf("got %+v", got)
	}

	_, err = DecodeJSON([]byte(`{"id":`), picTable)
	if !errors.Is(err, ErrStructure) || !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected ErrStructure and ErrParse, got %v", err)
	}

	got, err = DecodeJSON([]byte("id: \"3\"\nwidth: 4\n"), picTable, WithParseOptions(parse.ParseYAML()))
	if err != nil {
		t.Fatal(err)
	}
	if got.id != "3" || got.width != 4 {
		t.Errorf("yaml got %+v", got)
	}
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []point
		wantErr bool
	}{
		{name: "array", in: `[{"x":1},{"x":2}]`, want: []point{{x: 1}, {x: 2}}},
		{name: "empty object", in: `{}`, want: []point{}},
		{name: "envelope", in: `{"data":[{"x":1}],"paging":{"next":"n"}}`, want: []point{{x: 1}}},
		{name: "non-object elements", in: `[{"x":1},3]`, want: []point{{x: 1}}},
		{name: "object without data", in: `{"id":"1"}`, wantErr: true},
		{name: "scalar", in: `"x"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeList(mustParse(t, tt.in), pointTable)
			if tt.wantErr {
				if !errors.Is(err, ErrStructure) {
					t.Fatalf("expected ErrStructure, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, allow); diff != "" {
				t.Errorf("DecodeList() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeJSONList(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      []point
		wantParse bool
		wantErr   bool
	}{
		{name: "array", in: `[{"x":1},{"name":"b"}]`, want: []point{{x: 1}, {label: "b"}}},
		{name: "envelope", in: `{"data":[{"y":2}]}`, want: []point{{y: 2}}},
		{name: "truncated", in: `[{"x":1}`, wantErr: true, wantParse: true},
		{name: "empty input", in: ``, wantErr: true, wantParse: true},
		{name: "scalar root", in: `7`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSONList([]byte(tt.in), pointTable)
			if tt.wantErr {
				if !errors.Is(err, ErrStructure) {
					t.Fatalf("expected ErrStructure, got %v", err)
				}
				if tt.wantParse && !errors.Is(err, parse.ErrParse) && !errors.Is(err, parse.ErrEmpty) {
					t.Errorf("expected a parse error, got %v", err)
				}
				var ue *UnmarshalError
				if !errors.As(err, &ue) || ue.Type != "Point" {
					t.Errorf("unexpected error %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, allow); diff != "" {
				t.Errorf("DecodeJSONList() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeIsolatesFields(t *testing.T) {
	// a drifting field must not disturb its neighbours
	base := `{"id":"1","width":10,"height":20,"from":{"id":"2"},"points":%s}`
	for _, points := range []string{`[]`, `{"count":0}`, `"x"`, `7`, `true`} {
		got, err := Decode(mustParse(t, fmt.Sprintf(base, points)), picTable)
		if err != nil {
			t.Fatal(err)
		}
		want := &pic{ident: ident{id: "1"}, width: 10, height: 20, owner: &ident{id: "2"}}
		if points == `[]` {
			want.points = []point{}
		}
		if diff := cmp.Diff(want, got, allow); diff != "" {
			t.Errorf("points=%s (-want +got):\n%s", points, diff)
		}
	}
}

func TestMismatchHook(t *testing.T) {
	var got []Mismatch
	hook := WithMismatchHook(func(m Mismatch) { got = append(got, m) })
	in := `{"id":"1","points":{"count":0},"width":"wide","from":[1]}`
	if _, err := Decode(mustParse(t, in), picTable, hook); err != nil {
		t.Fatal(err)
	}
	in = `{"points":[{"x":"left"}, 4]}`
	if _, err := Decode(mustParse(t, in), picTable, hook); err != nil {
		t.Fatal(err)
	}
	want := []Mismatch{
		{Type: "Pic", Attr: "width", Wire: "width", Path: "$.width", Expected: ShapeNumber, Got: ir.StringType},
		{Type: "Pic", Attr: "owner", Wire: "from", Path: "$.from", Expected: ShapeObject, Got: ir.ArrayType},
		{Type: "Pic", Attr: "points", Wire: "points", Path: "$.points", Expected: ShapeSequence, Got: ir.ObjectType, Tolerated: true},
		{Type: "Point", Attr: "x", Wire: "x", Path: "$.points[0].x", Expected: ShapeNumber, Got: ir.StringType},
		{Type: "Pic", Attr: "points", Wire: "points", Path: "$.points[1]", Expected: ShapeObject, Got: ir.NumberType},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatches (-want +got):\n%s", diff)
	}
}

func TestTableBindings(t *testing.T) {
	var attrs, wires []string
	for _, b := range picTable.Bindings() {
		attrs = append(attrs, b.Attr)
		wires = append(wires, b.Wire)
	}
	if diff := cmp.Diff([]string{"id", "width", "height", "public", "takenTime", "owner", "points", "rank"}, attrs); diff != "" {
		t.Errorf("attrs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"id", "width", "height", "public", "taken_time", "from", "points", "rank"}, wires); diff != "" {
		t.Errorf("wires (-want +got):\n%s", diff)
	}
	bs := picTable.Bindings()
	if !bs[7].Deprecated || bs[0].Deprecated {
		t.Errorf("deprecation flags wrong: %+v", bs)
	}
	if bs[6].Shape != ShapeSequence || bs[6].Envelope != DataKey || len(bs[6].Tolerated) != 1 {
		t.Errorf("points binding = %+v", bs[6])
	}
}

func TestDuplicateAttrPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	NewTable("Dup",
		Embed(identTable, func(p *point) *ident { return &p.ident }),
		String("id", func(p *point) *string { return &p.label }),
	)
}
