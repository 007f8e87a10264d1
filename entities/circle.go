package entities

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

const (
	// NumSegments 半径小于该值的圆使用固定的最小分段角
	NumSegments = 16
	// MinAngle 最小分段角（弧度）
	MinAngle = 2 * math.Pi / NumSegments
)

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

func init() {
	Register("CIRCLE", func() Entity { return &Circle{BaseEntity: newBase("CIRCLE")} })
}

func (c *Circle) Parse(p *Parser) error {
	return p.Fields(&c.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Double1:
			c.Radius = p.Float(t)
		default:
			setCoord(p, t, &c.Center)
		}
	})
}

// Geometry 按分段角把圆离散成闭合环，首尾坐标完全相同
func (c *Circle) Geometry() orb.Geometry {
	if c.Radius <= 0 {
		return nil
	}

	ring := orb.Ring(arcPoints(c.Center, c.Radius, 0, 2*math.Pi))
	ring[len(ring)-1] = ring[0]
	return orb.Polygon{ring}
}

func (c *Circle) GeometryType() GeometryType { return PolygonGeometry }

// segmentAngle 半径 r 对应的分段角
func segmentAngle(r float64) float64 {
	if r < NumSegments {
		return MinAngle
	}
	return 2 * math.Pi / r
}

// arcPoints 从 start 起逆时针扫过 sweep 弧度，包含两个端点
func arcPoints(c core.Point, r, start, sweep float64) []orb.Point {
	n := int(math.Ceil(sweep/segmentAngle(r) - 1e-9))
	n = max(n, 1)

	pts := make([]orb.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		pts = append(pts, orb.Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)})
	}
	return pts
}
