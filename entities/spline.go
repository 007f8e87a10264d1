package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Spline 样条曲线，不做插值，按控制点连成折线
type Spline struct {
	BaseEntity
	Flags         int
	Degree        int
	ControlPoints []*Vertex
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{BaseEntity: newBase("SPLINE")} })
}

func (s *Spline) Parse(p *Parser) error {
	var cur *Vertex
	return p.Fields(&s.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Int1:
			s.Flags = p.Short(t)
		case core.Int2:
			s.Degree = p.Short(t)
		case core.X1:
			cur = &Vertex{BaseEntity: newBase("VERTEX")}
			cur.Location.X = p.Float(t)
			s.ControlPoints = append(s.ControlPoints, cur)
		case core.Y1, core.Z1:
			if cur != nil {
				setCoord(p, t, &cur.Location)
			}
		}
	})
}

func (s *Spline) Closed() bool { return s.Flags&1 != 0 }

func (s *Spline) Geometry() orb.Geometry {
	g, _ := vertexGeometry(s.ControlPoints, s.Closed())
	return g
}

func (s *Spline) GeometryType() GeometryType { return vertexType(len(s.ControlPoints), s.Closed()) }
