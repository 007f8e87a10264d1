package entities

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Vertex 多段线顶点，Bulge 为凸度（圆弧包角四分之一的正切）
type Vertex struct {
	BaseEntity
	Location core.Point
	Bulge    float64
	Flags    int
}

func init() {
	Register("VERTEX", func() Entity { return &Vertex{BaseEntity: newBase("VERTEX")} })
}

func (v *Vertex) Parse(p *Parser) error {
	return p.Fields(&v.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Double3:
			v.Bulge = p.Float(t)
		case core.Int1:
			v.Flags = p.Short(t)
		default:
			setCoord(p, t, &v.Location)
		}
	})
}

func (v *Vertex) Geometry() orb.Geometry { return toOrb(v.Location) }

func (v *Vertex) GeometryType() GeometryType { return PointGeometry }

// faceRecord 多面网格的面记录顶点没有坐标
func (v *Vertex) faceRecord() bool {
	return v.Flags&128 != 0 && v.Flags&64 == 0
}

// vertexGeometry 由顶点序列生成线或面；闭合且不少于 3 个顶点时为面
func vertexGeometry(vertices []*Vertex, closed bool) (orb.Geometry, GeometryType) {
	if len(vertices) == 0 {
		return nil, LineGeometry
	}

	pts := make([]orb.Point, 0, len(vertices)+1)
	pts = append(pts, toOrb(vertices[0].Location))
	for i := 1; i < len(vertices); i++ {
		pts = appendSegment(pts, vertices[i-1], vertices[i])
	}

	if !closed || len(vertices) < 3 {
		return orb.LineString(pts), LineGeometry
	}

	last := vertices[len(vertices)-1]
	if last.Bulge != 0 {
		pts = appendSegment(pts, last, vertices[0])
	}
	if !pts[0].Equal(pts[len(pts)-1]) {
		pts = append(pts, pts[0])
	}
	return orb.Polygon{orb.Ring(pts)}, PolygonGeometry
}

// vertexType 顶点序列的几何分类
func vertexType(n int, closed bool) GeometryType {
	if closed && n >= 3 {
		return PolygonGeometry
	}
	return LineGeometry
}

// appendSegment 追加 from→to 的一段，凸度不为 0 时按圆弧离散，不重复 from
func appendSegment(pts []orb.Point, from, to *Vertex) []orb.Point {
	end := toOrb(to.Location)
	if from.Bulge != 0 {
		pts = append(pts, bulgePoints(toOrb(from.Location), end, from.Bulge)...)
	}
	return append(pts, end)
}

// bulgePoints 返回 p1→p2 圆弧的中间点（不含两端）
func bulgePoints(p1, p2 orb.Point, bulge float64) []orb.Point {
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	chord := math.Hypot(dx, dy)
	if chord == 0 {
		return nil
	}

	theta := 4 * math.Atan(bulge)
	r := chord / (2 * math.Sin(theta/2))
	h := r * math.Cos(theta/2)
	cx := (p1[0]+p2[0])/2 - h*dy/chord
	cy := (p1[1]+p2[1])/2 + h*dx/chord

	radius := math.Abs(r)
	start := math.Atan2(p1[1]-cy, p1[0]-cx)
	n := max(int(math.Ceil(math.Abs(theta)/segmentAngle(radius)-1e-9)), 1)

	pts := make([]orb.Point, 0, n-1)
	for i := 1; i < n; i++ {
		a := start + theta*float64(i)/float64(n)
		pts = append(pts, orb.Point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	return pts
}
