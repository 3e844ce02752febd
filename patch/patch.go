// Package patch rewrites raw JSON documents before they are parsed, for
// reproducing upstream schema drift against stored responses.
//
// A patch is either an RFC 6902 operation list:
//
//	[{"op": "replace", "path": "/comments", "value": {"count": 0}}]
//
// or an RFC 7386 merge patch object:
//
//	{"comments": {"count": 0}, "icon": null}
package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/graphmap/debug"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

type Patch struct {
	raw   []byte
	ops   jsonpatch.Patch
	merge bool
}

// Decode reads a patch, choosing the kind from the first non-space byte.
func Decode(d []byte) (*Patch, error) {
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: empty patch", ErrPatch)
	}
	switch d[0] {
	case '[':
		ops, err := jsonpatch.DecodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		return &Patch{raw: d, ops: ops}, nil
	case '{':
		return &Patch{raw: d, merge: true}, nil
	}
	return nil, fmt.Errorf("%w: expected a JSON array or object", ErrPatch)
}

// IsMerge reports whether p is a merge patch.
func (p *Patch) IsMerge() bool {
	return p.merge
}

// Apply returns doc with p applied. doc is not modified.
func (p *Patch) Apply(doc []byte) ([]byte, error) {
	if debug.Parse() {
		debug.Logf("apply patch (merge=%t) to %d bytes\n", p.IsMerge(), len(doc))
	}
	var (
		out []byte
		err error
	)
	if p.merge {
		out, err = jsonpatch.MergePatch(doc, p.raw)
	} else {
		out, err = p.ops.Apply(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return out, nil
}

// Between returns the merge patch that turns from into to.
func Between(from, to []byte) (*Patch, error) {
	d, err := jsonpatch.CreateMergePatch(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{raw: d, merge: true}, nil
}

// Bytes returns the patch document.
func (p *Patch) Bytes() []byte {
	return bytes.Clone(p.raw)
}
