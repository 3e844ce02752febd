// Package gomap decodes IR trees into typed Go values through explicit
// binding tables.
//
// # Usage
//
//	var imageTable = gomap.NewTable[Image]("Image",
//	    gomap.Int[Image]("height", func(i *Image) *int { return &i.height }),
//	    gomap.Int[Image]("width", func(i *Image) *int { return &i.width }),
//	    gomap.String[Image]("source", func(i *Image) *string { return &i.source }),
//	)
//
//	img, err := gomap.Decode(node, imageTable)
//
// Each binding pairs an attribute name with a wire name (the snake_case form
// of the attribute unless aliased with As) and an expected shape. Decoding
// never fails on a single field: absent, null, unknown and mismatched values
// leave the attribute at its zero value. Only a root that is not an object
// (or, for lists, not an array) is an error, reported as an *UnmarshalError
// wrapping ErrStructure.
//
// Mismatches can be observed with WithMismatchHook; LogMismatches adapts a
// *slog.Logger to that hook.
//
// Tables are built once, usually as package variables, and are safe for
// concurrent use by any number of decodes.
//
// # Related Packages
//
//   - github.com/signadot/graphmap/ir - IR representation
//   - github.com/signadot/graphmap/parse - Parse bytes to IR
//   - github.com/signadot/graphmap/graph - Graph API types built on gomap
package gomap
