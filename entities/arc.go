package entities

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Arc 圆弧，角度为度，逆时针从 StartAngle 到 EndAngle
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func init() {
	Register("ARC", func() Entity { return &Arc{BaseEntity: newBase("ARC")} })
}

func (a *Arc) Parse(p *Parser) error {
	return p.Fields(&a.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Double1:
			a.Radius = p.Float(t)
		case core.Angle1:
			a.StartAngle = p.Float(t)
		case core.Angle2:
			a.EndAngle = p.Float(t)
		default:
			setCoord(p, t, &a.Center)
		}
	})
}

func (a *Arc) Geometry() orb.Geometry {
	if a.Radius <= 0 {
		return nil
	}
	start := a.StartAngle * math.Pi / 180
	sweep := (a.EndAngle - a.StartAngle) * math.Pi / 180
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	return orb.LineString(arcPoints(a.Center, a.Radius, start, sweep))
}

func (a *Arc) GeometryType() GeometryType { return LineGeometry }
