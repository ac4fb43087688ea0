package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
)

// BodyType selects how a body takes part in the simulation.
type BodyType uint8

var (
	StaticBody    = BodyType(box2d.B2BodyType.B2_staticBody)
	KinematicBody = BodyType(box2d.B2BodyType.B2_kinematicBody)
	DynamicBody   = BodyType(box2d.B2BodyType.B2_dynamicBody)
)

// BodyDefBuilder builds body definitions from pixel values. It resets after
// Build.
type BodyDefBuilder struct {
	scale Scale
	def   box2d.B2BodyDef
}

// NewBodyDefBuilder creates a builder converting with scale.
func NewBodyDefBuilder(scale Scale) *BodyDefBuilder {
	return &BodyDefBuilder{scale: scale, def: box2d.MakeB2BodyDef()}
}

func (b *BodyDefBuilder) Type(t BodyType) *BodyDefBuilder {
	b.def.Type = uint8(t)
	return b
}

// Position sets the body origin in pixels.
func (b *BodyDefBuilder) Position(p mgl64.Vec2) *BodyDefBuilder {
	b.def.Position = b.scale.ToBox2D(p)
	return b
}

// Angle sets the initial rotation in radians.
func (b *BodyDefBuilder) Angle(a float64) *BodyDefBuilder {
	b.def.Angle = a
	return b
}

// LinearVelocity sets the initial velocity in pixels per second.
func (b *BodyDefBuilder) LinearVelocity(v mgl64.Vec2) *BodyDefBuilder {
	b.def.LinearVelocity = b.scale.ToBox2D(v)
	return b
}

func (b *BodyDefBuilder) AngularVelocity(v float64) *BodyDefBuilder {
	b.def.AngularVelocity = v
	return b
}

func (b *BodyDefBuilder) LinearDamping(d float64) *BodyDefBuilder {
	b.def.LinearDamping = d
	return b
}

func (b *BodyDefBuilder) AngularDamping(d float64) *BodyDefBuilder {
	b.def.AngularDamping = d
	return b
}

func (b *BodyDefBuilder) NoSleep() *BodyDefBuilder {
	b.def.AllowSleep = false
	return b
}

func (b *BodyDefBuilder) NotAwakeOnSpawn() *BodyDefBuilder {
	b.def.Awake = false
	return b
}

func (b *BodyDefBuilder) NotActiveOnSpawn() *BodyDefBuilder {
	b.def.Active = false
	return b
}

func (b *BodyDefBuilder) FixedRotation() *BodyDefBuilder {
	b.def.FixedRotation = true
	return b
}

func (b *BodyDefBuilder) Bullet() *BodyDefBuilder {
	b.def.Bullet = true
	return b
}

func (b *BodyDefBuilder) GravityScale(s float64) *BodyDefBuilder {
	b.def.GravityScale = s
	return b
}

// Build returns the definition and resets the builder.
func (b *BodyDefBuilder) Build() box2d.B2BodyDef {
	def := b.def
	b.def = box2d.MakeB2BodyDef()
	return def
}

// FixtureDefBuilder builds fixture definitions from pixel values. It resets
// after Build.
type FixtureDefBuilder struct {
	scale Scale
	def   box2d.B2FixtureDef
}

// NewFixtureDefBuilder creates a builder converting with scale.
func NewFixtureDefBuilder(scale Scale) *FixtureDefBuilder {
	return &FixtureDefBuilder{scale: scale, def: box2d.MakeB2FixtureDef()}
}

// Circle uses a circle of radius pixels centered on the body.
func (b *FixtureDefBuilder) Circle(radius float64) *FixtureDefBuilder {
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = b.scale.Meters(radius)
	b.def.Shape = &shape
	return b
}

// Box uses a width x height pixel box centered on the body.
func (b *FixtureDefBuilder) Box(width, height float64) *FixtureDefBuilder {
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(b.scale.Meters(width/2), b.scale.Meters(height/2))
	b.def.Shape = &shape
	return b
}

// Polygon uses a convex polygon given in pixels relative to the body.
func (b *FixtureDefBuilder) Polygon(vertices []mgl64.Vec2) *FixtureDefBuilder {
	shape := box2d.MakeB2PolygonShape()
	vs := b.scale.toBox2DAll(vertices)
	shape.Set(vs, len(vs))
	b.def.Shape = &shape
	return b
}

// Chain uses an open polyline given in pixels relative to the body.
func (b *FixtureDefBuilder) Chain(vertices []mgl64.Vec2) *FixtureDefBuilder {
	shape := box2d.MakeB2ChainShape()
	vs := b.scale.toBox2DAll(vertices)
	shape.CreateChain(vs, len(vs))
	b.def.Shape = &shape
	return b
}

func (b *FixtureDefBuilder) Friction(f float64) *FixtureDefBuilder {
	b.def.Friction = f
	return b
}

func (b *FixtureDefBuilder) Restitution(r float64) *FixtureDefBuilder {
	b.def.Restitution = r
	return b
}

func (b *FixtureDefBuilder) Density(d float64) *FixtureDefBuilder {
	b.def.Density = d
	return b
}

func (b *FixtureDefBuilder) Sensor() *FixtureDefBuilder {
	b.def.IsSensor = true
	return b
}

// Filter sets the collision category, mask and group.
func (b *FixtureDefBuilder) Filter(category, mask uint16, group int16) *FixtureDefBuilder {
	b.def.Filter.CategoryBits = category
	b.def.Filter.MaskBits = mask
	b.def.Filter.GroupIndex = group
	return b
}

// Build returns the definition and resets the builder.
func (b *FixtureDefBuilder) Build() box2d.B2FixtureDef {
	def := b.def
	b.def = box2d.MakeB2FixtureDef()
	return def
}

type fixtureEntry struct {
	def      box2d.B2FixtureDef
	userData any
}

// BodyBuilder creates bodies with their fixtures in a world. It resets
// after Build.
type BodyBuilder struct {
	world    *World
	bodyDef  box2d.B2BodyDef
	userData any
	fixtures []fixtureEntry
}

// NewBodyBuilder creates a builder adding bodies to world.
func NewBodyBuilder(world *World) *BodyBuilder {
	return &BodyBuilder{world: world, bodyDef: box2d.MakeB2BodyDef()}
}

// ChangeWorld makes subsequent builds target w and returns the previous world.
func (b *BodyBuilder) ChangeWorld(w *World) *World {
	old := b.world
	b.world = w
	return old
}

// DisposeWorld disposes the target world.
func (b *BodyBuilder) DisposeWorld() {
	b.world.Dispose()
}

func (b *BodyBuilder) WithBodyDef(def *BodyDefBuilder) *BodyBuilder {
	b.bodyDef = def.Build()
	return b
}

// WithFixtureDef adds a fixture. userData is optional.
func (b *BodyBuilder) WithFixtureDef(def *FixtureDefBuilder, userData ...any) *BodyBuilder {
	e := fixtureEntry{def: def.Build()}
	if len(userData) > 0 {
		e.userData = userData[0]
	}
	b.fixtures = append(b.fixtures, e)
	return b
}

func (b *BodyBuilder) WithUserData(data any) *BodyBuilder {
	b.userData = data
	return b
}

// Build creates the body and its fixtures, then resets the builder.
func (b *BodyBuilder) Build() *box2d.B2Body {
	body := b.world.b2.CreateBody(&b.bodyDef)
	for i := range b.fixtures {
		e := &b.fixtures[i]
		if e.def.Shape == nil {
			continue
		}
		fixture := body.CreateFixtureFromDef(&e.def)
		if e.userData != nil {
			fixture.SetUserData(e.userData)
		}
	}
	body.SetUserData(b.userData)

	b.bodyDef = box2d.MakeB2BodyDef()
	b.userData = nil
	b.fixtures = nil
	return body
}
