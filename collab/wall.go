package collab

import (
	"fmt"

	"github.com/cpmech/gosl/gm"
)

// PolygonWall is the default Wall2D implementation: a closed polygon
// described by ordered (R,z) vertices, queried with gosl/gm's
// point-in-polygon geometry for 2D containment tests.
type PolygonWall struct {
	vertices [][]float64
}

// NewPolygonWall builds a PolygonWall from a closed list of (R,z)
// vertices (at least 3, not required to repeat the first point).
func NewPolygonWall(vertices [][]float64) (*PolygonWall, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("collab: wall polygon needs at least 3 vertices, got %d", len(vertices))
	}
	return &PolygonWall{vertices: vertices}, nil
}

// Contains reports whether (r,z) lies inside the wall polygon.
func (o *PolygonWall) Contains(r, z float64) (bool, error) {
	return gm.PointInPolygon([]float64{r, z}, o.vertices), nil
}

func init() {
	RegisterWall("polygon", func(cfg interface{}) (Wall2D, error) {
		verts, ok := cfg.([][]float64)
		if !ok {
			return nil, fmt.Errorf("collab: polygon wall expects [][]float64 config, got %T", cfg)
		}
		return NewPolygonWall(verts)
	})
}
