// Package libdiff computes attribute-level differences between two trees,
// typically the snapshots of two decoded values of the same type.
//
// # Usage
//
//	changes := libdiff.Diff(graph.PhotoTable.Snapshot(a), graph.PhotoTable.Snapshot(b))
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
// Object fields are aligned by name with a sequence diff, so a renamed or
// reordered field shows up as a delete and an insert. Arrays are compared
// by index.
//
// # Related Packages
//
//   - github.com/signadot/graphmap/ir - IR representation
//   - github.com/signadot/graphmap/gomap - Snapshots of decoded values
package libdiff
