package entities

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Polyline 旧式多段线，顶点以 VERTEX 子实体给出，以 SEQEND 结束
type Polyline struct {
	BaseEntity
	Flags    int
	Vertices []*Vertex
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: newBase("POLYLINE")} })
	Register("SEQEND", func() Entity { return &Unknown{BaseEntity: newBase("SEQEND")} })
}

func (l *Polyline) Parse(p *Parser) error {
	err := p.Fields(&l.BaseEntity, func(t core.Tag) {
		if t.GroupCode() == core.Int1 {
			l.Flags = p.Short(t)
		}
	})
	if err != nil {
		return err
	}

	for {
		typ, ok := p.NextType()
		if !ok {
			return p.Err()
		}
		switch strings.ToUpper(typ) {
		case "VERTEX":
			v := &Vertex{BaseEntity: newBase("VERTEX")}
			if err := v.Parse(p); err != nil {
				return err
			}
			if !v.faceRecord() {
				l.Vertices = append(l.Vertices, v)
			}
		case "SEQEND":
			_, err := Read(p, "SEQEND")
			return err
		default:
			// 缺少 SEQEND
			p.Unread()
			return nil
		}
	}
}

func (l *Polyline) Closed() bool { return l.Flags&1 != 0 }

func (l *Polyline) Geometry() orb.Geometry {
	g, _ := vertexGeometry(l.Vertices, l.Closed())
	return g
}

func (l *Polyline) GeometryType() GeometryType {
	return vertexType(len(l.Vertices), l.Closed())
}
