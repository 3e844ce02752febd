package graph

import (
	"slices"
	"time"

	"github.com/signadot/graphmap/datetime"
	"github.com/signadot/graphmap/gomap"
	"github.com/signadot/graphmap/ir"
)

// Photo is a graph API photo.
type Photo struct {
	namedIdentity
	from                     *CategorizedIdentity
	picture                  string
	source                   string
	height                   int
	width                    int
	link                     string
	icon                     string
	position                 int
	createdTime              string
	updatedTime              string
	tags                     []PhotoTag
	comments                 []Comment
	likes                    []NamedIdentity
	images                   []Image
	place                    *Place
	backdatedTime            string
	backdatedTimeGranularity string
}

// From is the profile that posted the photo.
func (p *Photo) From() (CategorizedIdentity, bool) { return deref(p.from) }

// Picture is the URL of the thumbnail.
func (p *Photo) Picture() string { return p.picture }

// Source is the URL of the full-sized image.
func (p *Photo) Source() string { return p.source }

func (p *Photo) Height() int { return p.height }

func (p *Photo) Width() int { return p.width }

func (p *Photo) Link() string { return p.link }

func (p *Photo) Icon() string { return p.icon }

// Position is the photo's position in its album.
//
// Deprecated: the graph API no longer maintains album positions.
func (p *Photo) Position() int { return p.position }

func (p *Photo) CreatedTime() (time.Time, bool) { return datetime.ParseLong(p.createdTime) }

func (p *Photo) UpdatedTime() (time.Time, bool) { return datetime.ParseLong(p.updatedTime) }

func (p *Photo) Tags() []PhotoTag { return slices.Clone(p.tags) }

func (p *Photo) Comments() []Comment { return cloneEach(p.comments, Comment.clone) }

func (p *Photo) Likes() []NamedIdentity { return slices.Clone(p.likes) }

// Images returns the available renditions of the photo, largest first as
// sent by the API.
func (p *Photo) Images() []Image { return slices.Clone(p.images) }

// Place is where the photo was taken.
func (p *Photo) Place() (Place, bool) {
	if p.place == nil {
		return Place{}, false
	}
	return p.place.clone(), true
}

// BackdatedTime is the user-provided time the photo was taken.
func (p *Photo) BackdatedTime() (time.Time, bool) { return datetime.ParseLong(p.backdatedTime) }

// BackdatedTimeGranularity is the precision of BackdatedTime: one of year,
// month, day, hour, min or none.
func (p *Photo) BackdatedTimeGranularity() string { return p.backdatedTimeGranularity }

func (p *Photo) String() string { return PhotoTable.Format(p) }

// PhotoTag marks a profile at a position in a photo. X and Y are
// percentages of the photo's width and height.
type PhotoTag struct {
	namedIdentity
	x           float64
	y           float64
	createdTime string
}

func (t PhotoTag) X() float64 { return t.x }

func (t PhotoTag) Y() float64 { return t.y }

func (t PhotoTag) CreatedTime() (time.Time, bool) { return datetime.ParseLong(t.createdTime) }

func (t PhotoTag) Equal(o PhotoTag) bool { return PhotoTagTable.Equal(&t, &o) }

func (t PhotoTag) Hash() uint64 { return PhotoTagTable.Hash(&t) }

func (t PhotoTag) String() string { return PhotoTagTable.Format(&t) }

// Image is one rendition of a photo.
type Image struct {
	height int
	width  int
	source string
}

func (i Image) Height() int { return i.height }

func (i Image) Width() int { return i.width }

func (i Image) Source() string { return i.source }

func (i Image) Equal(o Image) bool { return ImageTable.Equal(&i, &o) }

func (i Image) Hash() uint64 { return ImageTable.Hash(&i) }

func (i Image) String() string { return ImageTable.Format(&i) }

var PhotoTagTable = gomap.NewTable("PhotoTag",
	gomap.Embed(NamedIdentityTable, func(t *PhotoTag) *NamedIdentity { return &t.namedIdentity }),
	gomap.Float("x", func(t *PhotoTag) *float64 { return &t.x }),
	gomap.Float("y", func(t *PhotoTag) *float64 { return &t.y }),
	gomap.String("createdTime", func(t *PhotoTag) *string { return &t.createdTime }),
)

var ImageTable = gomap.NewTable("Image",
	gomap.Int("height", func(i *Image) *int { return &i.height }),
	gomap.Int("width", func(i *Image) *int { return &i.width }),
	gomap.String("source", func(i *Image) *string { return &i.source }),
)

var PhotoTable = gomap.NewTable("Photo",
	gomap.Embed(NamedIdentityTable, func(p *Photo) *NamedIdentity { return &p.namedIdentity }),
	gomap.Object("from", CategorizedIdentityTable, func(p *Photo) **CategorizedIdentity { return &p.from }),
	gomap.String("picture", func(p *Photo) *string { return &p.picture }),
	gomap.String("source", func(p *Photo) *string { return &p.source }),
	gomap.Int("height", func(p *Photo) *int { return &p.height }),
	gomap.Int("width", func(p *Photo) *int { return &p.width }),
	gomap.String("link", func(p *Photo) *string { return &p.link }),
	gomap.String("icon", func(p *Photo) *string { return &p.icon }),
	gomap.Int("position", func(p *Photo) *int { return &p.position }).Deprecated(),
	gomap.String("createdTime", func(p *Photo) *string { return &p.createdTime }),
	gomap.String("updatedTime", func(p *Photo) *string { return &p.updatedTime }),
	gomap.Slice("tags", PhotoTagTable, func(p *Photo) *[]PhotoTag { return &p.tags }).
		Tolerate(ir.ObjectType).
		Unwrap(gomap.DataKey),
	gomap.Slice("comments", CommentTable, func(p *Photo) *[]Comment { return &p.comments }).
		Tolerate(ir.ObjectType).
		Unwrap(gomap.DataKey),
	gomap.Slice("likes", NamedIdentityTable, func(p *Photo) *[]NamedIdentity { return &p.likes }).
		Tolerate(ir.ObjectType).
		Unwrap(gomap.DataKey),
	gomap.Slice("images", ImageTable, func(p *Photo) *[]Image { return &p.images }),
	gomap.Object("place", PlaceTable, func(p *Photo) **Place { return &p.place }),
	gomap.String("backdatedTime", func(p *Photo) *string { return &p.backdatedTime }),
	gomap.String("backdatedTimeGranularity", func(p *Photo) *string { return &p.backdatedTimeGranularity }),
)
