package projection

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Forward returns the projection as an orb.Projection from (longitude, latitude) in degrees
// to (x, y) in metres.
func (p *MapProjection) Forward() orb.Projection {
	return func(pt orb.Point) orb.Point {
		p.Transform(pt[:], 0, pt[:], 0, 1)
		return pt
	}
}

// Reverse returns the inverse projection as an orb.Projection. Points for which the
// computation does not converge give (NaN, NaN).
func (p *MapProjection) Reverse() orb.Projection {
	return func(pt orb.Point) orb.Point {
		if err := p.InverseTransform(pt[:], 0, pt[:], 0, 1); err != nil {
			log().Debug("inverse projection failed", "projection", p.name, "error", err)
			return orb.Point{math.NaN(), math.NaN()}
		}
		return pt
	}
}

// ProjectGeometry projects g from (longitude, latitude) in degrees to metres. The geometry
// is modified in place and returned.
func (p *MapProjection) ProjectGeometry(g orb.Geometry) orb.Geometry {
	return project.Geometry(g, p.Forward())
}

// UnprojectGeometry is the reverse of ProjectGeometry.
func (p *MapProjection) UnprojectGeometry(g orb.Geometry) orb.Geometry {
	return project.Geometry(g, p.Reverse())
}

// ProjectedDomain returns the bounding box in metres of the projected Domain.
func (p *MapProjection) ProjectedDomain() orb.Bound {
	ring := p.domain.ToRing()
	// Densify the edges, the meridians project to curves.
	const steps = 16
	var line orb.LineString
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		for s := 0; s < steps; s++ {
			f := float64(s) / steps
			line = append(line, orb.Point{a[0] + f*(b[0]-a[0]), a[1] + f*(b[1]-a[1])})
		}
	}
	return p.ProjectGeometry(line).Bound()
}
