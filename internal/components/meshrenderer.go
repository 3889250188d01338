package components

import (
	"fmt"

	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("mesh_renderer", func(props map[string]any) (engine.Component, error) {
		name, _ := props["color"].(string)
		if name == "" {
			name = "LightGray"
		}
		c, ok := ColorByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		m := NewMeshRenderer(c)
		m.Wireframe = engine.PropBool(props, "wireframe", false)
		return m, nil
	})
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// ColorByName maps a raylib palette name such as "SkyBlue" to its color.
func ColorByName(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

// MeshRenderer draws the shapes of its object's colliders, or the capsule
// of a character controller.
type MeshRenderer struct {
	engine.BaseComponent
	Color     rl.Color
	Wireframe bool
}

func NewMeshRenderer(color rl.Color) *MeshRenderer {
	return &MeshRenderer{Color: color}
}

// Draw must run inside rl.BeginMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	if box := engine.GetComponent[*BoxCollider](g); box != nil {
		center := box.GetCenter()
		rot := g.WorldRotation()
		size := box.GetWorldSize()
		rl.PushMatrix()
		rl.Translatef(center.X, center.Y, center.Z)
		rl.Rotatef(rot.Z, 0, 0, 1)
		rl.Rotatef(rot.Y, 0, 1, 0)
		rl.Rotatef(rot.X, 1, 0, 0)
		if m.Wireframe {
			rl.DrawCubeWiresV(rl.Vector3{}, size, m.Color)
		} else {
			rl.DrawCubeV(rl.Vector3{}, size, m.Color)
			rl.DrawCubeWiresV(rl.Vector3{}, size, rl.Fade(rl.Black, 0.3))
		}
		rl.PopMatrix()
	}

	if sphere := engine.GetComponent[*SphereCollider](g); sphere != nil {
		if m.Wireframe {
			rl.DrawSphereWires(sphere.GetCenter(), sphere.WorldRadius(), 12, 12, m.Color)
		} else {
			rl.DrawSphere(sphere.GetCenter(), sphere.WorldRadius(), m.Color)
		}
	}

	if cc := engine.GetComponent[*CharacterController](g); cc != nil {
		pos := g.WorldPosition()
		half := cc.Capsule().SegmentHalf()
		bottom := rl.Vector3{X: pos.X, Y: pos.Y - half, Z: pos.Z}
		top := rl.Vector3{X: pos.X, Y: pos.Y + half, Z: pos.Z}
		if m.Wireframe {
			rl.DrawCapsuleWires(bottom, top, cc.Radius, 8, 4, m.Color)
		} else {
			rl.DrawCapsule(bottom, top, cc.Radius, 8, 4, m.Color)
		}
		fwd := g.Transform.Forward()
		rl.DrawLine3D(pos, rl.Vector3Add(pos, rl.Vector3Scale(fwd, cc.Radius+0.3)), rl.Black)
	}
}
