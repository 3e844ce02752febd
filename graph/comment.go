package graph

import (
	"time"

	"github.com/signadot/graphmap/datetime"
	"github.com/signadot/graphmap/gomap"
	"github.com/signadot/graphmap/ir"
)

// Comment is a comment on a note, photo or other commentable object.
type Comment struct {
	identity
	from        *NamedIdentity
	message     string
	createdTime string
	likes       int
	likeCount   int
	userLikes   bool
	canRemove   bool
}

// From is the author.
func (c *Comment) From() (NamedIdentity, bool) { return deref(c.from) }

func (c *Comment) Message() string { return c.message }

func (c *Comment) CreatedTime() (time.Time, bool) { return datetime.ParseLong(c.createdTime) }

// Likes is the number of likes. Newer responses carry a likes connection
// here instead, which reads as 0.
//
// Deprecated: the graph API reports this as like_count; use LikeCount.
func (c *Comment) Likes() int { return c.likes }

func (c *Comment) LikeCount() int { return c.likeCount }

// UserLikes reports whether the requesting user likes the comment.
func (c *Comment) UserLikes() bool { return c.userLikes }

func (c *Comment) CanRemove() bool { return c.canRemove }

func (c *Comment) String() string { return CommentTable.Format(c) }

func (c Comment) clone() Comment {
	c.from = clonePtr(c.from)
	return c
}

var CommentTable = gomap.NewTable("Comment",
	gomap.Embed(IdentityTable, func(c *Comment) *Identity { return &c.identity }),
	gomap.Object("from", NamedIdentityTable, func(c *Comment) **NamedIdentity { return &c.from }),
	gomap.String("message", func(c *Comment) *string { return &c.message }),
	gomap.String("createdTime", func(c *Comment) *string { return &c.createdTime }),
	gomap.Int("likes", func(c *Comment) *int { return &c.likes }).
		Tolerate(ir.ObjectType).
		Deprecated(),
	gomap.Int("likeCount", func(c *Comment) *int { return &c.likeCount }),
	gomap.Bool("userLikes", func(c *Comment) *bool { return &c.userLikes }),
	gomap.Bool("canRemove", func(c *Comment) *bool { return &c.canRemove }),
)
