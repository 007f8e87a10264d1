package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

type LWPolyline struct {
	BaseEntity
	Flags     int
	Elevation float64
	Vertices  []*Vertex
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{BaseEntity: newBase("LWPOLYLINE")} })
}

func (l *LWPolyline) Parse(p *Parser) error {
	var cur *Vertex
	return p.Fields(&l.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Int1:
			l.Flags = p.Short(t)
		case core.Elevation:
			l.Elevation = p.Float(t)
		case core.X1:
			// 每个 10 组码开始一个新顶点
			cur = &Vertex{BaseEntity: newBase("VERTEX")}
			cur.Location.X = p.Float(t)
			l.Vertices = append(l.Vertices, cur)
		case core.Y1:
			if cur != nil {
				cur.Location.Y = p.Float(t)
			}
		case core.Double3:
			if cur != nil {
				cur.Bulge = p.Float(t)
			}
		}
	})
}

func (l *LWPolyline) Closed() bool { return l.Flags&1 != 0 }

func (l *LWPolyline) Geometry() orb.Geometry {
	g, _ := vertexGeometry(l.Vertices, l.Closed())
	return g
}

func (l *LWPolyline) GeometryType() GeometryType {
	return vertexType(len(l.Vertices), l.Closed())
}
