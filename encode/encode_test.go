package encode

import (
	"bytes"
	"testing"

	"github.com/signadot/graphmap/ir"
)

func TestEncode(t *testing.T) {
	img := ir.FromKeyVals([]ir.KeyVal{
		{Key: "height", Val: ir.FromInt(100)},
		{Key: "width", Val: ir.FromInt(50)},
		{Key: "source", Val: ir.FromString("http://x/y.jpg")},
	})
	tests := []struct {
		name string
		node *ir.Node
		opts []EncodeOption
		want string
	}{
		{"null", ir.Null(), nil, "null"},
		{"nil", nil, nil, "null"},
		{"float", ir.FromFloat(10.5), nil, "10.5"},
		{"literal", ir.FromNumber("12345678901234567890"), nil, "12345678901234567890"},
		{"array", ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.FromString("a")}), nil, `[true "a"]`},
		{"named", img, []EncodeOption{EncodeName("Image")}, `Image{height=100 width=50 source="http://x/y.jpg"}`},
		{"lines", img, []EncodeOption{EncodeLines(true)}, "{\n  height=100\n  width=50\n  source=\"http://x/y.jpg\"\n}\n"},
		{"empty lines", ir.FromKeyVals(nil), []EncodeOption{EncodeLines(true)}, "{}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tt.node, buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeColorsKeepsText(t *testing.T) {
	c := NewColors()
	c.Default = colorDefault
	got := String(ir.FromString("100%"), EncodeColors(c))
	if !bytes.Contains([]byte(got), []byte(`"100%"`)) {
		t.Errorf("colored output lost text: %q", got)
	}
}
