package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node. Nodes that Compare equal hash
// equally within a process; hashes are not stable across processes.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		// integral floats hash like ints so that Compare and Hash agree
		if f, ok := n.float(); ok {
			if n.Int64 != nil {
				binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			} else if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
				binary.LittleEndian.PutUint64(b[:], uint64(int64(f)))
			} else {
				binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
			}
			h.Write(b[:])
		} else {
			h.WriteString(n.Number)
		}
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for i, field := range n.Fields {
			binary.LittleEndian.PutUint64(b[:], field.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
