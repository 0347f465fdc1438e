package roadgraph

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// RoadMap renders a Snapshot into an image.
type RoadMap interface {
	// Save renders to a PNG with the default colour scheme
	Save(fpath string) error

	// SaveAdv renders to a PNG with the given colour scheme
	SaveAdv(fpath string, scheme *ColourScheme) error

	// CustomImage returns an image drawn with the given colour scheme
	CustomImage(scheme *ColourScheme) (image.Image, error)
}

// AgeBand colours roads up to MaxAge steps old.
type AgeBand struct {
	MaxAge int64
	Colour color.Color
}

// ColourScheme defines how a road map should be coloured.
// Roads are coloured by age; the first band whose MaxAge covers the
// road wins & roads older than every band reuse the last band.
type ColourScheme struct {
	Background color.Color
	Bands      []AgeBand

	// line widths in pixels; the glow is a faint fat pass drawn under
	// the main line so fresh roads pop on dark backgrounds
	MainWidth float64
	GlowWidth float64
}

// DefaultScheme returns a reasonable default ColourScheme; young roads
// glow green & cool through yellow / orange to red as they age.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: color.RGBA{R: 3, G: 5, B: 5, A: 255},
		Bands: []AgeBand{
			{MaxAge: 15, Colour: colornames.Limegreen},
			{MaxAge: 30, Colour: colornames.Gold},
			{MaxAge: 50, Colour: colornames.Orange},
			{MaxAge: math.MaxInt64, Colour: colornames.Crimson},
		},
		MainWidth: 1.5,
		GlowWidth: 4,
	}
}

// colourFor returns the band colour for a road of the given age.
func (c *ColourScheme) colourFor(age int64) color.Color {
	for _, b := range c.Bands {
		if age <= b.MaxAge {
			return b.Colour
		}
	}
	if len(c.Bands) > 0 {
		return c.Bands[len(c.Bands)-1].Colour
	}
	return color.White
}

// imageMap renders a snapshot into a square image, viewport fitted to
// the network bounds.
type imageMap struct {
	snap *Snapshot
	size int
}

// NewMap returns a RoadMap that renders snap into a size x size image.
func NewMap(snap *Snapshot, size int) RoadMap {
	if size < 1 {
		size = 1024
	}
	return &imageMap{snap: snap, size: size}
}

// Save renders with the DefaultScheme.
func (m *imageMap) Save(fpath string) error {
	return m.SaveAdv(fpath, DefaultScheme())
}

// SaveAdv renders with the given scheme & writes a PNG.
func (m *imageMap) SaveAdv(fpath string, scheme *ColourScheme) error {
	im, err := m.CustomImage(scheme)
	if err != nil {
		return err
	}
	return savePNG(fpath, im)
}

// CustomImage draws the snapshot; a faint glow pass under the main
// lines, both coloured by road age.
func (m *imageMap) CustomImage(scheme *ColourScheme) (image.Image, error) {
	if scheme == nil {
		scheme = DefaultScheme()
	}

	ctx := gg.NewContext(m.size, m.size)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	minX, minY, maxX, maxY, ok := m.snap.Bounds()
	if !ok {
		return ctx.Image(), nil // nothing to draw
	}

	// pad the bounds a little & fit the longest side into our square
	w := maxX - minX
	h := maxY - minY
	span := math.Max(w, h)
	if span <= 0 {
		span = 1
	}
	pad := span * 0.1
	span += 2 * pad
	scale := float64(m.size) / span

	// offsets that centre the network in the viewport
	ox := (span-w)/2 - minX
	oy := (span-h)/2 - minY

	passes := []struct {
		width float64
		alpha int
	}{
		{scheme.GlowWidth, 50},
		{scheme.MainWidth, 230},
	}

	ctx.SetLineCapRound()
	for _, pass := range passes {
		ctx.SetLineWidth(pass.width)
		for _, r := range m.snap.Roads {
			a := m.snap.Nodes[r.A].Pos
			b := m.snap.Nodes[r.B].Pos

			cr, cg, cb, _ := scheme.colourFor(m.snap.Age(r)).RGBA()
			ctx.SetRGBA255(int(cr>>8), int(cg>>8), int(cb>>8), pass.alpha)

			ctx.DrawLine((a.X+ox)*scale, (a.Y+oy)*scale, (b.X+ox)*scale, (b.Y+oy)*scale)
			ctx.Stroke()
		}
	}

	return ctx.Image(), nil
}
