// Package render defines the drawing capability creatures and brains use to
// visualize themselves, together with a terminal backend built on tcell.
package render

// Vector is a 2D position in world units.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Style mirrors the canvas style attributes callers may set. Empty fields
// are left to the backend's defaults.
type Style struct {
	LineWidth    float64
	StrokeStyle  string
	FillStyle    string
	GlobalAlpha  float64
	Font         string
	TextAlign    string
	TextBaseline string
}

// Graphics is the drawing capability supplied by the owner of a scene.
// Implementations never report failures back to the caller.
type Graphics interface {
	DrawCircle(center Vector, radius float64, style Style)
	DrawLine(from, to Vector, style Style)
	WriteText(x, y float64, text string, style Style)
}
