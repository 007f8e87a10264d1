package dxf

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/utils"
)

const minRectLength = 1e-9

// Index 要素外包矩形的 R 树
type Index struct {
	tree *rtreego.Rtree
	size int
}

type indexedFeature struct {
	seq     int
	bound   orb.Bound
	feature *Feature
}

// Bounds implements rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return toRect(f.bound)
}

func toRect(b orb.Bound) rtreego.Rect {
	point := rtreego.Point{b.Min[0], b.Min[1]}
	lengths := []float64{
		max(b.Max[0]-b.Min[0], minRectLength),
		max(b.Max[1]-b.Min[1], minRectLength),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewIndex 为有几何的要素建立索引，空几何（错误几何）不入索引
func NewIndex(features []*Feature) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	n := 0
	for i, f := range features {
		if f.Geometry == nil {
			continue
		}
		if c, ok := f.Geometry.(orb.Collection); ok && len(c) == 0 {
			continue
		}
		tree.Insert(&indexedFeature{seq: i, bound: f.Geometry.Bound(), feature: f})
		n++
	}
	return &Index{tree: tree, size: n}
}

func (ix *Index) Size() int { return ix.size }

// Search 返回外包矩形与 b 相交的要素，按生成顺序排列
func (ix *Index) Search(b orb.Bound) []*Feature {
	var hits []*indexedFeature
	for _, s := range ix.tree.SearchIntersect(toRect(b)) {
		if f, ok := s.(*indexedFeature); ok && !utils.IsSeparate(f.bound, b, 0) {
			hits = append(hits, f)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].seq < hits[j].seq })

	out := make([]*Feature, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.feature)
	}
	return out
}
