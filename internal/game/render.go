package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/iburimskiy/wheel-of-fortune/internal/config"
	"github.com/iburimskiy/wheel-of-fortune/internal/wheel"
)

var whiteSubImage *ebiten.Image

func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// wheelRenderer draws the segments into an offscreen image and puts that
// image on screen rotated by the current spin angle.
type wheelRenderer struct {
	radius float64
	fonts  *fontCache

	img      *ebiten.Image
	revision uint64
	drawn    bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func newWheelRenderer(radius float64, fonts *fontCache) *wheelRenderer {
	return &wheelRenderer{radius: radius, fonts: fonts}
}

// size is the side of the offscreen square, with room for the outer stroke.
func (r *wheelRenderer) size() int {
	return int(math.Ceil(2*r.radius)) + 2*config.BaseStroke
}

// draw puts the wheel on screen centred at (cx, cy) and turned clockwise by
// rotation degrees. The offscreen image is rebuilt only when the store changed.
func (r *wheelRenderer) draw(screen *ebiten.Image, store *wheel.Store, cx, cy, rotation float64) {
	if r.img == nil {
		r.img = ebiten.NewImage(r.size(), r.size())
	}
	if !r.drawn || r.revision != store.Revision() {
		r.redraw(store.Segments())
		r.revision = store.Revision()
		r.drawn = true
	}

	half := float64(r.size()) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.img, op)
}

func (r *wheelRenderer) redraw(segments []wheel.Segment) {
	r.img.Clear()
	c := float32(r.size()) / 2
	rad := float32(r.radius)

	vector.DrawFilledCircle(r.img, c, c, rad, colornames.Lightblue, true)
	vector.StrokeCircle(r.img, c, c, rad, config.BaseStroke, color.Black, true)

	ws := wedges(len(segments))
	for i, seg := range segments {
		r.drawWedge(ws[i], colorByName(seg.Color))
	}
	for i, seg := range segments {
		r.drawLabel(seg.Label, ws[i])
	}
}

func (r *wheelRenderer) drawWedge(w wedge, fill color.RGBA) {
	c := float32(r.size()) / 2

	var path vector.Path
	path.MoveTo(c, c)
	path.Arc(c, c, float32(r.radius), float32(w.start), float32(w.end), vector.Clockwise)
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.fillTriangles(fill)

	r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
		Width:    config.WedgeStroke,
		LineJoin: vector.LineJoinRound,
	})
	r.fillTriangles(color.RGBA{A: 0xff})
}

func (r *wheelRenderer) fillTriangles(clr color.RGBA) {
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(clr.R) / 0xff
		r.vertices[i].ColorG = float32(clr.G) / 0xff
		r.vertices[i].ColorB = float32(clr.B) / 0xff
		r.vertices[i].ColorA = float32(clr.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	r.img.DrawTriangles(r.vertices, r.indices, solidSource(), op)
}

func (r *wheelRenderer) drawLabel(label string, w wedge) {
	size := fitFontSize(label, maxLabelWidth(r.radius, w), r.fonts.measure)
	face, err := r.fonts.textFace(size)
	if err != nil {
		return
	}
	x, y := labelAnchor(r.radius, w)
	c := float64(r.size()) / 2

	op := &text.DrawOptions{}
	op.GeoM.Rotate(w.mid())
	op.GeoM.Translate(c+x, c+y)
	op.ColorScale.ScaleWithColor(color.Black)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(r.img, label, face, op)
}

// drawPointer draws the fixed marker at 12 o'clock, tip pointing into the wheel.
func drawPointer(screen *ebiten.Image, cx, cy, radius float64) {
	tipY := float32(cy - radius + config.PointerSize/2)
	baseY := float32(cy - radius - config.PointerSize)
	x := float32(cx)
	half := float32(config.PointerSize) * 0.7

	var path vector.Path
	path.MoveTo(x, tipY)
	path.LineTo(x-half, baseY)
	path.LineTo(x+half, baseY)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 0.85, 0.1, 0.1, 1
	}
	screen.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	vector.StrokeLine(screen, x-half, baseY, x+half, baseY, 2, color.Black, true)
}
