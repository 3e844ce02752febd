// Package encode renders IR nodes as compact, human-readable attribute
// listings, optionally in color.
//
// # Usage
//
//	fmt.Println(encode.String(node, encode.EncodeName("Photo")))
//	err := encode.Encode(node, os.Stdout, encode.EncodeLines(true), encode.EncodeColors(encode.NewColors()))
package encode
