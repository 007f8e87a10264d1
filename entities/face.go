package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Face3D 三维面，取 XY 投影作为多边形
type Face3D struct {
	BaseEntity
	Corners [4]core.Point
	corners int // 已读到的角点数
}

func init() {
	Register("3DFACE", func() Entity { return &Face3D{BaseEntity: newBase("3DFACE")} })
}

func (f *Face3D) Parse(p *Parser) error {
	return p.Fields(&f.BaseEntity, func(t core.Tag) {
		f.corners = max(f.corners, readCorner(p, t, &f.Corners))
	})
}

func (f *Face3D) Geometry() orb.Geometry {
	return cornerRing(f.Corners, f.corners, false)
}

func (f *Face3D) GeometryType() GeometryType { return PolygonGeometry }

// readCorner 读取 10-13/20-23/30-33 四个角点，返回角点序号+1
func readCorner(p *Parser, t core.Tag, corners *[4]core.Point) int {
	var i int
	switch gc := t.GroupCode(); {
	case gc >= core.X1 && gc <= core.X4:
		i = int(gc - core.X1)
	case gc >= core.Y1 && gc <= core.Y4:
		i = int(gc - core.Y1)
	case gc >= core.Z1 && gc <= core.Z4:
		i = int(gc - core.Z1)
	default:
		return 0
	}
	setCoord(p, t, &corners[i])
	return i + 1
}

// cornerRing 由 3/4 个角点构成闭合环；缺失的第四点取第三点
// solid 为 true 时按 SOLID 的顶点顺序 1-2-4-3 连接
func cornerRing(c [4]core.Point, n int, solid bool) orb.Geometry {
	if n < 3 {
		return nil
	}
	if n == 3 {
		c[3] = c[2]
	}

	order := []int{0, 1, 2, 3}
	if solid {
		order = []int{0, 1, 3, 2}
	}

	ring := make(orb.Ring, 0, 5)
	for _, i := range order {
		pt := toOrb(c[i])
		if len(ring) > 0 && ring[len(ring)-1].Equal(pt) {
			continue
		}
		ring = append(ring, pt)
	}
	if !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	if len(ring) < 4 {
		return nil
	}
	return orb.Polygon{ring}
}
