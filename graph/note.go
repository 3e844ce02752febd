package graph

import (
	"time"

	"github.com/signadot/graphmap/datetime"
	"github.com/signadot/graphmap/gomap"
	"github.com/signadot/graphmap/ir"
)

// Note is a graph API note.
type Note struct {
	identity
	from        *NamedIdentity
	subject     string
	message     string
	icon        string
	createdTime string
	updatedTime string
	comments    []Comment
}

// From is the profile that created the note.
func (n *Note) From() (NamedIdentity, bool) { return deref(n.from) }

func (n *Note) Subject() string { return n.subject }

// Message is the note body, which may contain HTML.
func (n *Note) Message() string { return n.message }

func (n *Note) Icon() string { return n.icon }

func (n *Note) CreatedTime() (time.Time, bool) { return datetime.ParseLong(n.createdTime) }

func (n *Note) UpdatedTime() (time.Time, bool) { return datetime.ParseLong(n.updatedTime) }

// Comments returns a copy of the note's comments. The API sometimes sends
// {"count": 0} in place of the list; that reads as no comments.
func (n *Note) Comments() []Comment { return cloneEach(n.comments, Comment.clone) }

func (n *Note) String() string { return NoteTable.Format(n) }

var NoteTable = gomap.NewTable("Note",
	gomap.Embed(IdentityTable, func(n *Note) *Identity { return &n.identity }),
	gomap.Object("from", NamedIdentityTable, func(n *Note) **NamedIdentity { return &n.from }),
	gomap.String("subject", func(n *Note) *string { return &n.subject }),
	gomap.String("message", func(n *Note) *string { return &n.message }),
	gomap.String("icon", func(n *Note) *string { return &n.icon }),
	gomap.String("createdTime", func(n *Note) *string { return &n.createdTime }),
	gomap.String("updatedTime", func(n *Note) *string { return &n.updatedTime }),
	gomap.Slice("comments", CommentTable, func(n *Note) *[]Comment { return &n.comments }).
		Tolerate(ir.ObjectType).
		Unwrap(gomap.DataKey),
)
