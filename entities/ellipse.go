package entities

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// EllipseSegments 起止参数之间的细分数
const EllipseSegments = 18

type Ellipse struct {
	BaseEntity
	Center   core.Point
	MajorEnd core.Point // 长轴端点，相对圆心
	Ratio    float64    // 短轴/长轴
	Start    float64    // 起始参数（弧度）
	End      float64    // 终止参数（弧度）
}

func init() {
	Register("ELLIPSE", func() Entity {
		return &Ellipse{BaseEntity: newBase("ELLIPSE"), Ratio: 1, End: 2 * math.Pi}
	})
}

func (e *Ellipse) Parse(p *Parser) error {
	return p.Fields(&e.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.X1, core.Y1, core.Z1:
			setCoord(p, t, &e.Center)
		case core.X2, core.Y2, core.Z2:
			setCoord(p, t, &e.MajorEnd)
		case core.Double1:
			e.Ratio = p.Float(t)
		case core.Double2:
			e.Start = p.Float(t)
		case core.Double3:
			e.End = p.Float(t)
		}
	})
}

// span 起止参数；终止不大于起始时起始减去 2π
func (e *Ellipse) span() (start, sweep float64) {
	start = e.Start
	if start >= e.End {
		start -= 2 * math.Pi
	}
	return start, e.End - start
}

func (e *Ellipse) full() bool {
	_, sweep := e.span()
	return math.Abs(sweep-2*math.Pi) < 1e-9
}

func (e *Ellipse) Geometry() orb.Geometry {
	r := math.Hypot(e.MajorEnd.X, e.MajorEnd.Y)
	if r <= 0 {
		return nil
	}
	rot := math.Atan2(e.MajorEnd.Y, e.MajorEnd.X)
	cos, sin := math.Cos(rot), math.Sin(rot)
	minor := r * e.Ratio

	start, sweep := e.span()
	pts := make([]orb.Point, 0, EllipseSegments+1)
	for i := 0; i <= EllipseSegments; i++ {
		a := start + sweep*float64(i)/EllipseSegments
		x, y := r*math.Cos(a), minor*math.Sin(a)
		pts = append(pts, orb.Point{e.Center.X + x*cos - y*sin, e.Center.Y + x*sin + y*cos})
	}

	if e.full() {
		pts[len(pts)-1] = pts[0]
		return orb.Polygon{orb.Ring(pts)}
	}
	return orb.LineString(pts)
}

func (e *Ellipse) GeometryType() GeometryType {
	if e.full() {
		return PolygonGeometry
	}
	return LineGeometry
}
