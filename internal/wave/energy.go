package wave

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Energy returns the discrete kinetic plus potential energy of the grid for
// wave speed c: 0.5*sum(v^2) + 0.5*c^2*sum(|grad h|^2), with the gradient
// taken as forward differences along every lattice edge.
func Energy(g *Grid, c float64) float64 {
	kinetic := 0.5 * floats.Dot(g.velocity, g.velocity)

	var grad float64
	s := g.stride
	for z := 0; z <= g.n; z++ {
		row := z * s
		for x := 0; x <= g.n; x++ {
			i := row + x
			if x < g.n {
				d := (g.height[i+1] - g.height[i]) / g.deltaX
				grad += d * d
			}
			if z < g.n {
				d := (g.height[i+s] - g.height[i]) / g.deltaZ
				grad += d * d
			}
		}
	}
	return kinetic + 0.5*c*c*grad
}

// Variance returns the variance of the height field.
func Variance(g *Grid) float64 {
	return stat.Variance(g.height, nil)
}

// MaxAmplitude returns the largest absolute height on the grid.
func MaxAmplitude(g *Grid) float64 {
	return math.Max(floats.Max(g.height), -floats.Min(g.height))
}
