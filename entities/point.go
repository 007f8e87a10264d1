package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

type Point struct {
	BaseEntity
	Location core.Point
}

func init() {
	Register("POINT", func() Entity { return &Point{BaseEntity: newBase("POINT")} })
}

func (e *Point) Parse(p *Parser) error {
	return p.Fields(&e.BaseEntity, func(t core.Tag) {
		setCoord(p, t, &e.Location)
	})
}

func (e *Point) Geometry() orb.Geometry { return toOrb(e.Location) }

func (e *Point) GeometryType() GeometryType { return PointGeometry }
