package graph

import "github.com/signadot/graphmap/gomap"

// Place is a page with a physical location.
type Place struct {
	categorizedIdentity
	location *Location
}

// Location reports false when the place has no address.
func (p *Place) Location() (Location, bool) { return deref(p.location) }

func (p *Place) String() string { return PlaceTable.Format(p) }

func (p Place) clone() Place {
	p.location = clonePtr(p.location)
	return p
}

type Location struct {
	street    string
	city      string
	state     string
	country   string
	zip       string
	latitude  float64
	longitude float64
}

func (l Location) Street() string     { return l.street }
func (l Location) City() string       { return l.city }
func (l Location) State() string      { return l.state }
func (l Location) Country() string    { return l.country }
func (l Location) Zip() string        { return l.zip }
func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }

func (l Location) Equal(o Location) bool { return LocationTable.Equal(&l, &o) }

func (l Location) Hash() uint64 { return LocationTable.Hash(&l) }

func (l Location) String() string { return LocationTable.Format(&l) }

var LocationTable = gomap.NewTable("Location",
	gomap.String("street", func(l *Location) *string { return &l.street }),
	gomap.String("city", func(l *Location) *string { return &l.city }),
	gomap.String("state", func(l *Location) *string { return &l.state }),
	gomap.String("country", func(l *Location) *string { return &l.country }),
	gomap.String("zip", func(l *Location) *string { return &l.zip }),
	gomap.Float("latitude", func(l *Location) *float64 { return &l.latitude }),
	gomap.Float("longitude", func(l *Location) *float64 { return &l.longitude }),
)

var PlaceTable = gomap.NewTable("Place",
	gomap.Embed(CategorizedIdentityTable, func(p *Place) *CategorizedIdentity { return &p.categorizedIdentity }),
	gomap.Object("location", LocationTable, func(p *Place) **Location { return &p.location }),
)
