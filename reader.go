package dxf

import (
	"github.com/zooyer/dxfgeo/entities"
)

// FeatureReader 要素的只进序列；需要重新遍历时另建一个
type FeatureReader struct {
	features []*Feature
	filter   func(*Feature) bool
	pos      int
	closed   bool
}

func newFeatureReader(features []*Feature, filter func(*Feature) bool) *FeatureReader {
	if filter == nil {
		filter = func(*Feature) bool { return true }
	}
	return &FeatureReader{features: features, filter: filter}
}

// kindFilter 只保留指定几何分类的要素
func kindFilter(kind entities.GeometryType) func(*Feature) bool {
	return func(f *Feature) bool { return f.Kind == kind }
}

func (r *FeatureReader) HasNext() bool {
	if r.closed {
		return false
	}
	for r.pos < len(r.features) && !r.filter(r.features[r.pos]) {
		r.pos++
	}
	return r.pos < len(r.features)
}

// Next 返回下一个要素，序列耗尽后返回 ErrNoSuchElement
func (r *FeatureReader) Next() (*Feature, error) {
	if !r.HasNext() {
		return nil, ErrNoSuchElement
	}
	f := r.features[r.pos]
	r.pos++
	return f, nil
}

func (r *FeatureReader) Close() error {
	r.closed = true
	r.features = nil
	return nil
}

// All 读出剩余的全部要素
func (r *FeatureReader) All() []*Feature {
	var out []*Feature
	for r.HasNext() {
		f, _ := r.Next()
		out = append(out, f)
	}
	return out
}
