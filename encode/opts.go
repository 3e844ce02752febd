package encode

type EncodeOption func(*EncState)

// EncodeName prefixes the root object with a type name, as in
// Image{height=100 width=50}.
func EncodeName(name string) EncodeOption {
	return func(es *EncState) { es.name = name }
}

// EncodeLines puts each attribute of the root object on its own line.
func EncodeLines(v bool) EncodeOption {
	return func(es *EncState) { es.lines = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
