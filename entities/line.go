package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register("LINE", func() Entity { return &Line{BaseEntity: newBase("LINE")} })
}

func (l *Line) Parse(p *Parser) error {
	return p.Fields(&l.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.X1, core.Y1, core.Z1:
			setCoord(p, t, &l.Start)
		case core.X2, core.Y2, core.Z2:
			setCoord(p, t, &l.End)
		}
	})
}

func (l *Line) Geometry() orb.Geometry {
	return orb.LineString{toOrb(l.Start), toOrb(l.End)}
}

func (l *Line) GeometryType() GeometryType { return LineGeometry }
