package sway

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandBox  CommandType = iota // solid rectangle via the white pixel
	CommandText                    // text label
)

// baseFontSize is the label size in pixels at TextScale 1.
const baseFontSize = 16

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type      CommandType
	Transform [6]float64
	Color     Color
	Size      Vec2
	Text      string
	TextScale float64
	node      *Node
}

// traverse walks the tree depth-first and emits commands for visible nodes.
// An invisible node hides its whole subtree.
func (s *Scene) traverse(n *Node) {
	if !n.Visible {
		return
	}
	alpha := n.Color.A * n.worldAlpha
	if n.Size.X > 0 && n.Size.Y > 0 {
		s.commands = append(s.commands, RenderCommand{
			Type:      CommandBox,
			Transform: n.worldTransform,
			Color:     Color{n.Color.R, n.Color.G, n.Color.B, alpha},
			Size:      n.Size,
			node:      n,
		})
	}
	if n.Text != "" && n.TextScale != 0 {
		s.commands = append(s.commands, RenderCommand{
			Type:      CommandText,
			Transform: n.worldTransform,
			Color:     Color{n.Color.R, n.Color.G, n.Color.B, alpha},
			Size:      n.Size,
			Text:      n.Text,
			TextScale: n.TextScale,
			node:      n,
		})
	}
	for _, child := range n.children {
		s.traverse(child)
	}
}

// submit draws the collected commands onto target.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandBox:
			op.GeoM.Reset()
			op.GeoM.Scale(cmd.Size.X, cmd.Size.Y)
			op.GeoM.Concat(commandGeoM(cmd))
			op.ColorScale.Reset()
			a := float32(cmd.Color.A)
			op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
			target.DrawImage(whitePixel(), &op)
		case CommandText:
			s.submitText(target, cmd)
		}
	}
}

func (s *Scene) submitText(target *ebiten.Image, cmd *RenderCommand) {
	face := s.textFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(cmd.TextScale, cmd.TextScale)
	// Center on the node's pivot point rather than its top-left corner.
	op.GeoM.Translate(cmd.Size.X/2, cmd.Size.Y/2)
	op.GeoM.Concat(commandGeoM(cmd))
	a := float32(cmd.Color.A)
	op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
	text.Draw(target, cmd.Text, face, op)
}

// textFace lazily loads the default Go Regular face.
func (s *Scene) textFace() *text.GoTextFace {
	if s.face != nil {
		return s.face
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil
	}
	s.face = &text.GoTextFace{Source: src, Size: baseFontSize}
	return s.face
}

// commandGeoM converts a command's [6]float64 transform into an ebiten.GeoM.
func commandGeoM(cmd *RenderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, cmd.Transform[0])
	m.SetElement(1, 0, cmd.Transform[1])
	m.SetElement(0, 1, cmd.Transform[2])
	m.SetElement(1, 1, cmd.Transform[3])
	m.SetElement(0, 2, cmd.Transform[4])
	m.SetElement(1, 2, cmd.Transform[5])
	return m
}

// whitePixelImage is a 1x1 white image scaled up to draw boxes. Created on
// first use so that importing the package does not touch the graphics driver.
var whitePixelImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}
