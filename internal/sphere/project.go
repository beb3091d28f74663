package sphere

import (
	"fmt"
	"iter"
)

// Projector maps camera-space points onto a Width x Height character grid.
type Projector struct {
	Width, Height int
	Distance      Real // screen distance from the viewer
	ZOffset       Real // pushes the object in front of the viewer
}

// Project returns the flat cell index of p and its inverse depth.
// Each projected term is truncated toward zero before the screen centre is
// added. Cells are twice as tall as wide, hence the doubled x term.
// The index may fall outside the grid; the compositor clips it.
func (pr Projector) Project(p Point3) (idx int, invDepth Real) {
	z := p.Z() + pr.ZOffset
	if z <= minDepth || !isFinite(z) {
		panic(fmt.Sprintf("point %v is not in front of the viewer (z=%g)", p, z))
	}
	invDepth = 1 / z
	sx := int(pr.Distance*invDepth*p.X()*2) + int(Real(pr.Width)/2)
	sy := int(pr.Distance*invDepth*-p.Y()) + int(Real(pr.Height)/2) // screen rows grow downward
	return sx + sy*pr.Width, invDepth
}

// Composite projects every sample into b using the depth test.
func (pr Projector) Composite(b *Buffers, samples iter.Seq[Sample]) (plotted int) {
	for s := range samples {
		idx, ooz := pr.Project(s.P)
		if b.Plot(idx, ooz, s.Char) {
			plotted++
		}
	}
	return plotted
}
