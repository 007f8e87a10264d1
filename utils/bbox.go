package utils

import (
	"github.com/paulmach/orb"
)

// TransformBound 变换包围盒的四个角点，返回新的外包矩形
func TransformBound(b orb.Bound, m Affine) orb.Bound {
	corners := []orb.Point{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
	}

	out := orb.Bound{Min: m.Apply(corners[0]), Max: m.Apply(corners[0])}
	for _, p := range corners[1:] {
		out = out.Extend(m.Apply(p))
	}
	return out
}

// IsSeparate 判断两个包围盒是否完全分离
func IsSeparate(a, b orb.Bound, gap float64) bool {
	return a.Max[0]+gap < b.Min[0] || a.Min[0]-gap > b.Max[0] ||
		a.Max[1]+gap < b.Min[1] || a.Min[1]-gap > b.Max[1]
}
