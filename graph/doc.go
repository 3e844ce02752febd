// Package graph models graph API objects as immutable Go values.
//
// Each type is decoded through a gomap binding table, exported as
// <Type>Table, and exposes its state only through accessors:
//
//	note, err := gomap.DecodeJSON(data, graph.NoteTable)
//	if err != nil {
//	    return err // the input was not an object
//	}
//	created, ok := note.CreatedTime()
//
// Decoding is tolerant. Missing, null and mismatched fields leave the
// attribute empty; connections may arrive as a bare list, as a
// {"data": [...]} envelope, or as a placeholder object such as
// {"count": 0}, which reads as an empty list.
//
// Shared identity attributes are composed by embedding: a Photo embeds a
// NamedIdentity, which embeds an Identity. Timestamps are kept as they
// arrived and parsed on every call of their accessor. Nested objects are
// returned by value and collection accessors return deep copies, so a
// decoded object cannot be changed through what its accessors hand out.
//
// Every table is also registered by name as a gomap.Kind, see Lookup.
package graph
