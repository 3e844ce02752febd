package graph

import "github.com/signadot/graphmap/gomap"

// Identity is the attribute set shared by every graph object.
type Identity struct {
	id  string
	typ string
}

// ID is the object's graph identifier. Identifiers are strings on the wire
// but are accepted as numbers too, keeping their literal digits.
func (i Identity) ID() string { return i.id }

// Type is the metadata type, present only when the request asked for
// metadata.
func (i Identity) Type() string { return i.typ }

func (i Identity) String() string { return IdentityTable.Format(&i) }

// Unexported names for embedding. Callers cannot reassign an embedded identity.
type (
	identity            = Identity
	namedIdentity       = NamedIdentity
	categorizedIdentity = CategorizedIdentity
)

type NamedIdentity struct {
	identity
	name string
}

func (n NamedIdentity) Name() string { return n.name }

func (n NamedIdentity) String() string { return NamedIdentityTable.Format(&n) }

type CategorizedIdentity struct {
	namedIdentity
	category string
}

func (c CategorizedIdentity) Category() string { return c.category }

func (c CategorizedIdentity) String() string { return CategorizedIdentityTable.Format(&c) }

var IdentityTable = gomap.NewTable("Identity",
	gomap.String("id", func(i *Identity) *string { return &i.id }),
	gomap.String("type", func(i *Identity) *string { return &i.typ }),
)

var NamedIdentityTable = gomap.NewTable("NamedIdentity",
	gomap.Embed(IdentityTable, func(n *NamedIdentity) *Identity { return &n.identity }),
	gomap.String("name", func(n *NamedIdentity) *string { return &n.name }),
)

var CategorizedIdentityTable = gomap.NewTable("CategorizedIdentity",
	gomap.Embed(NamedIdentityTable, func(c *CategorizedIdentity) *NamedIdentity { return &c.namedIdentity }),
	gomap.String("category", func(c *CategorizedIdentity) *string { return &c.category }),
)
