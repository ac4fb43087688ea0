package physics

import (
	"image/color"
	"math"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

const circleSegments = 16

var (
	colorStatic    = color.NRGBA{R: 128, G: 230, B: 128, A: 255}
	colorKinematic = color.NRGBA{R: 128, G: 128, B: 230, A: 255}
	colorDynamic   = color.NRGBA{R: 230, G: 179, B: 179, A: 255}
	colorAsleep    = color.NRGBA{R: 153, G: 153, B: 153, A: 255}
	colorInactive  = color.NRGBA{R: 128, G: 128, B: 77, A: 255}
)

// Segment is one debug line in world pixels.
type Segment struct {
	From, To mgl64.Vec2
	Color    color.NRGBA
}

// DebugRenderer outlines fixtures.
type DebugRenderer struct {
	worldWidth  int
	worldHeight int
	scale       Scale
	lineWidth   float64
}

// NewDebugRenderer creates a renderer for a worldWidth x worldHeight view.
func NewDebugRenderer(worldWidth, worldHeight int, scale Scale) *DebugRenderer {
	return &DebugRenderer{
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		scale:       scale,
		lineWidth:   1,
	}
}

// Resize keeps lines about one window pixel wide.
func (d *DebugRenderer) Resize(width, height int) {
	if width <= 0 || d.worldWidth <= 0 {
		return
	}
	d.lineWidth = math.Max(1, float64(d.worldWidth)/float64(width))
}

// LineWidth returns the stroke width in world pixels.
func (d *DebugRenderer) LineWidth() float64 {
	return d.lineWidth
}

// Segments lists the outline of every fixture in w.
func (d *DebugRenderer) Segments(w *World) []Segment {
	var out []Segment
	for body := w.b2.GetBodyList(); body != nil; body = body.GetNext() {
		xf := body.GetTransform()
		clr := bodyColor(body)
		for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
			out = d.appendShape(out, f.GetShape(), xf, clr)
		}
	}
	return out
}

func bodyColor(body *box2d.B2Body) color.NRGBA {
	switch {
	case !body.IsActive():
		return colorInactive
	case body.GetType() == box2d.B2BodyType.B2_staticBody:
		return colorStatic
	case body.GetType() == box2d.B2BodyType.B2_kinematicBody:
		return colorKinematic
	case !body.IsAwake():
		return colorAsleep
	default:
		return colorDynamic
	}
}

func (d *DebugRenderer) appendShape(out []Segment, shape box2d.B2ShapeInterface, xf box2d.B2Transform, clr color.NRGBA) []Segment {
	point := func(v box2d.B2Vec2) mgl64.Vec2 {
		return d.scale.FromBox2D(box2d.B2TransformVec2Mul(xf, v))
	}
	polyline := func(vs []box2d.B2Vec2, closed bool) {
		for i := 0; i+1 < len(vs); i++ {
			out = append(out, Segment{From: point(vs[i]), To: point(vs[i+1]), Color: clr})
		}
		if closed && len(vs) > 2 {
			out = append(out, Segment{From: point(vs[len(vs)-1]), To: point(vs[0]), Color: clr})
		}
	}

	switch s := shape.(type) {
	case *box2d.B2CircleShape:
		vs := make([]box2d.B2Vec2, circleSegments)
		for i := range vs {
			a := 2 * math.Pi * float64(i) / circleSegments
			vs[i] = box2d.MakeB2Vec2(s.M_p.X+s.M_radius*math.Cos(a), s.M_p.Y+s.M_radius*math.Sin(a))
		}
		polyline(vs, true)
		// radius line shows rotation
		edge := box2d.MakeB2Vec2(s.M_p.X+s.M_radius, s.M_p.Y)
		out = append(out, Segment{From: point(s.M_p), To: point(edge), Color: clr})
	case *box2d.B2PolygonShape:
		polyline(s.M_vertices[:s.M_count], true)
	case *box2d.B2ChainShape:
		polyline(s.M_vertices[:s.M_count], false)
	case *box2d.B2EdgeShape:
		out = append(out, Segment{From: point(s.M_vertex1), To: point(s.M_vertex2), Color: clr})
	}
	return out
}

// Render strokes every segment. Batches that cannot draw lines are skipped.
func (d *DebugRenderer) Render(batch graphics.Batch, w *World) {
	lines, ok := batch.(graphics.LineBatch)
	if !ok {
		return
	}
	segments := d.Segments(w)
	if len(segments) == 0 {
		return
	}
	lines.Begin()
	for _, s := range segments {
		lines.SetColor(s.Color)
		lines.StrokeLine(s.From.X(), s.From.Y(), s.To.X(), s.To.Y(), d.lineWidth)
	}
	lines.SetColor(graphics.White)
	lines.End()
}
