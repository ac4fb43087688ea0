package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

const (
	TreeGap    = 125.0
	TreeY      = 75.0
	TreeWidth  = 32.0
	TreeHeight = 128.0

	GroundY      = -140.0
	GroundHeight = 220.0
)

// GroundColor tints the blank quad the ground is drawn with.
var GroundColor = color.NRGBA{R: 57, G: 155, B: 65, A: 255}

// Tree is a static prop.
type Tree struct {
	Body
	region *graphics.Region
}

func NewTree(pos mgl64.Vec2, region *graphics.Region) *Tree {
	return &Tree{
		Body:   Body{Position: pos, Width: TreeWidth, Height: TreeHeight},
		region: region,
	}
}

func (t *Tree) Render(batch graphics.Batch) {
	batch.SetColor(graphics.White)
	t.Draw(batch, t.region)
}

// Background is a row of trees alternating between two looks. There are
// more than fit on screen so camera movement is visible.
type Background struct {
	Trees []*Tree
}

func NewBackground(numTrees int, tree1, tree2 *graphics.Region) *Background {
	trees := make([]*Tree, numTrees)
	for i := range trees {
		region := tree1
		if i%2 == 1 {
			region = tree2
		}
		trees[i] = NewTree(mgl64.Vec2{TreeGap * float64(i), TreeY}, region)
	}
	return &Background{Trees: trees}
}

func (b *Background) Render(batch graphics.Batch) {
	for _, t := range b.Trees {
		t.Render(batch)
	}
}

// Ground is a wide strip starting below the world origin, so it still fills
// the bottom of the view when the camera follows something.
type Ground struct {
	Body
	region *graphics.Region
}

// NewGround spans three world widths.
func NewGround(worldWidth int, blank *graphics.Region) *Ground {
	return &Ground{
		Body: Body{
			Position: mgl64.Vec2{0, GroundY},
			Width:    3 * float64(worldWidth),
			Height:   GroundHeight,
		},
		region: blank,
	}
}

func (g *Ground) Render(batch graphics.Batch) {
	batch.SetColor(GroundColor)
	g.Draw(batch, g.region)
	batch.SetColor(graphics.White)
}
