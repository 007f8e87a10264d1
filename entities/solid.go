package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Solid 二维实心填充，第四点缺省时与第三点相同
type Solid struct {
	BaseEntity
	Corners [4]core.Point
	corners int
}

// Trace 与 Solid 字段相同，几何不参与分类
type Trace struct {
	Solid
}

func init() {
	Register("SOLID", func() Entity { return &Solid{BaseEntity: newBase("SOLID")} })
	Register("TRACE", func() Entity { return &Trace{Solid{BaseEntity: newBase("TRACE")}} })
}

func (s *Solid) Parse(p *Parser) error {
	return p.Fields(&s.BaseEntity, func(t core.Tag) {
		s.corners = max(s.corners, readCorner(p, t, &s.Corners))
	})
}

func (s *Solid) Geometry() orb.Geometry {
	return cornerRing(s.Corners, s.corners, true)
}

func (s *Solid) GeometryType() GeometryType { return PolygonGeometry }

func (t *Trace) GeometryType() GeometryType { return UnsupportedGeometry }
