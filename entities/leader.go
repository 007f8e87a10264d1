package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Leader 引线，顶点由重复的 10/20/30 给出
type Leader struct {
	BaseEntity
	StyleName string
	Flags     int
	Vertices  []*Vertex
}

func init() {
	Register("LEADER", func() Entity { return &Leader{BaseEntity: newBase("LEADER")} })
}

func (l *Leader) Parse(p *Parser) error {
	var cur *Vertex
	return p.Fields(&l.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.TextOrName2:
			l.StyleName = t.AsString()
		case core.Int1:
			l.Flags = p.Short(t)
		case core.X1:
			cur = &Vertex{BaseEntity: newBase("VERTEX")}
			cur.Location.X = p.Float(t)
			l.Vertices = append(l.Vertices, cur)
		case core.Y1, core.Z1:
			if cur != nil {
				setCoord(p, t, &cur.Location)
			}
		}
	})
}

func (l *Leader) Closed() bool { return l.Flags&1 != 0 }

func (l *Leader) Geometry() orb.Geometry {
	g, _ := vertexGeometry(l.Vertices, l.Closed())
	return g
}

func (l *Leader) GeometryType() GeometryType { return vertexType(len(l.Vertices), l.Closed()) }
