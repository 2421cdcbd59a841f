package app

// Viewport maps screen pixels of the top-down heightfield view onto the
// physical plane. Node i is drawn as a Scale-pixel square whose centre is
// the node's physical position.
type Viewport struct {
	Nodes  int
	Scale  int
	Width  float64
	Height float64
}

// ToWorld converts a screen pixel to physical (x, z). ok is false when the
// pixel falls outside the grid's physical extent.
func (v Viewport) ToWorld(px, py int) (x, z float64, ok bool) {
	if v.Nodes < 2 || v.Scale <= 0 {
		return 0, 0, false
	}
	cells := float64(v.Nodes - 1)
	fx := float64(px)/float64(v.Scale) - 0.5
	fz := float64(py)/float64(v.Scale) - 0.5
	if fx < 0 || fz < 0 || fx > cells || fz > cells {
		return 0, 0, false
	}
	x = fx*v.Width/cells - v.Width/2
	z = fz*v.Height/cells - v.Height/2
	return x, z, true
}

// Pixels returns the on-screen size of the view.
func (v Viewport) Pixels() int { return v.Nodes * v.Scale }
