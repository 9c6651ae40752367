package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/beka-birhanu/coffee-shop/service"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const tileSize = 16

// Sprite sheet layout of tiles.png: one row of 16px tiles.
const (
	tileFloor = iota
	tileCounter
	tilePlayer
	tilePlayerActive
	tileStation
	tileCustomer
	tileAmericanoCup
	tileEspressoCup
	tileCappuccinoCup
)

// font.png holds the digits 0-9 in 4px cells, glyphs 3x5.
const (
	glyphCell   = 4
	glyphHeight = 5
	fontScale   = 3
)

var (
	backgroundColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	timerBackColor  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	timerFillColor  = color.RGBA{R: 0x6a, G: 0xc0, B: 0x4a, A: 0xff}
	lightColor      = color.RGBA{R: 255, G: 255, B: 255, A: 26}
	shadeColor      = color.RGBA{R: 32, G: 32, B: 32, A: 51}
)

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// grid converts sprite rows and columns to pixels.
type grid struct {
	colWidth  float64
	rowHeight float64
	cols      int
	rows      int
}

func newGrid(s *service.State) grid {
	return grid{
		colWidth:  float64(s.Screen.Width) / float64(s.SpriteCols),
		rowHeight: float64(s.Screen.Height) / float64(s.SpriteRows),
		cols:      s.SpriteCols,
		rows:      s.SpriteRows,
	}
}

// stationRow returns the sprite row of station i.
func stationRow(i int) int {
	return 3 + 2*i
}

func (g *Game) render(screen *ebiten.Image, s *service.State) {
	screen.Fill(backgroundColor)
	gr := newGrid(s)

	g.drawFloorTiles(screen, gr)
	g.drawPlayer(screen, gr, s)
	g.drawStations(screen, gr, s)
	g.drawCustomers(screen, gr, s)
	g.drawScore(screen, gr, s)

	w, h := float32(s.Screen.Width), float32(s.Screen.Height)
	rowHeight := float32(gr.rowHeight)
	fillPolygon(screen, lightColor, [][2]float32{{w, rowHeight * 2}, {0, rowHeight * 10}, {0, 0}, {w, 0}})
	fillPolygon(screen, shadeColor, [][2]float32{{w, rowHeight * 2}, {0, rowHeight * 10}, {0, h}, {w, h}})
}

func (g *Game) sprite(idx int) *ebiten.Image {
	x := idx * tileSize
	return g.tiles.SubImage(image.Rect(x, 0, x+tileSize, tileSize)).(*ebiten.Image)
}

func (g *Game) drawTile(screen *ebiten.Image, gr grid, idx, col, row int, dy float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gr.colWidth/tileSize, gr.rowHeight/tileSize)
	op.GeoM.Translate(float64(col)*gr.colWidth, float64(row)*gr.rowHeight+dy)
	screen.DrawImage(g.sprite(idx), op)
}

func (g *Game) drawFloorTiles(screen *ebiten.Image, gr grid) {
	for row := 0; row < gr.rows; row++ {
		for col := 0; col < gr.cols; col++ {
			g.drawTile(screen, gr, tileFloor, col, row, 0)
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, gr grid, s *service.State) {
	idx := tilePlayer
	dy := 0.0
	if s.Player.IsActivating {
		idx = tilePlayerActive
		dy = -math.Abs(math.Sin(g.interp*math.Pi)) * gr.rowHeight / 8
	}
	g.drawTile(screen, gr, idx, gr.cols-5, stationRow(s.Player.Row), dy)
}

func (g *Game) drawStations(screen *ebiten.Image, gr grid, s *service.State) {
	col := gr.cols - 3
	for i, st := range s.Stations {
		row := stationRow(i)
		g.drawTile(screen, gr, tileCounter, col+1, row, 0)
		g.drawTile(screen, gr, tileStation, col, row, 0)
		if st.Ready {
			g.drawTile(screen, gr, cupTile(st.Drink), col, row, -gr.rowHeight/2)
		}

		x := float32(float64(col) * gr.colWidth)
		y := float32(float64(row+1)*gr.rowHeight - 3)
		barWidth := float32(gr.colWidth)
		vector.DrawFilledRect(screen, x, y, barWidth, 2, timerBackColor, false)
		vector.DrawFilledRect(screen, x, y, barWidth*float32(st.Timer.Progress()), 2, timerFillColor, false)

		ebitenutil.DebugPrintAt(screen, st.Name, int(float64(col-8)*gr.colWidth), int(float64(row)*gr.rowHeight))
	}
}

func (g *Game) drawCustomers(screen *ebiten.Image, gr grid, s *service.State) {
	for i, c := range s.Customers {
		col := 1 + i
		if col >= gr.cols-6 {
			break
		}
		g.drawTile(screen, gr, tileCustomer, col, 1, 0)
		g.drawTile(screen, gr, cupTile(c.Wants.Type), col, 2, 0)
	}
}

func (g *Game) drawScore(screen *ebiten.Image, gr grid, s *service.State) {
	digits := strconv.Itoa(s.Score)
	x := float64(screen.Bounds().Dx()) - float64(len(digits)*glyphCell*fontScale) - gr.colWidth/2
	for _, d := range digits {
		n := int(d - '0')
		glyph := g.font.SubImage(image.Rect(n*glyphCell, 0, n*glyphCell+glyphCell, glyphHeight)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(fontScale, fontScale)
		op.GeoM.Translate(x, gr.rowHeight/4)
		screen.DrawImage(glyph, op)
		x += glyphCell * fontScale
	}
}

func cupTile(d service.Drink) int {
	switch d {
	case service.Americano:
		return tileAmericanoCup
	case service.Espresso:
		return tileEspressoCup
	default:
		return tileCappuccinoCup
	}
}

func fillPolygon(screen *ebiten.Image, clr color.RGBA, points [][2]float32) {
	var path vector.Path
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
	screen.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{})
}
