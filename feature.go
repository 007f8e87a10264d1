package dxf

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/entities"
)

// Feature 展开后的一个要素，生成后不再修改
type Feature struct {
	ID        string
	Geometry  orb.Geometry
	Kind      entities.GeometryType
	LineType  string
	Color     colorful.Color
	Layer     string
	Thickness float64
	Rotation  float64 // 度
	Text      string
	Height    float64
	Align1    float64
	Align2    float64
	Visible   int
	XData     string
	Class     string
	Entity    entities.Entity
}

// Attribute 要素属性的名称与类型
type Attribute struct {
	Name string
	Type string
}

// Schema 要素属性定义，顺序固定
var Schema = []Attribute{
	{Name: "the_geom", Type: "Geometry"},
	{Name: "lineType", Type: "String"},
	{Name: "color", Type: "Color"},
	{Name: "layer", Type: "String"},
	{Name: "thickness", Type: "Double"},
	{Name: "rotation", Type: "Double"},
	{Name: "text", Type: "String"},
	{Name: "height", Type: "Double"},
	{Name: "align1", Type: "Double"},
	{Name: "align2", Type: "Double"},
	{Name: "visible", Type: "Integer"},
	{Name: "xdata", Type: "String"},
	{Name: "class", Type: "String"},
	{Name: "entity", Type: "Object"},
}

// Properties 除几何与源实体外的属性，颜色以 #rrggbb 表示
func (f *Feature) Properties() map[string]any {
	return map[string]any{
		"lineType":  f.LineType,
		"color":     f.Color.Hex(),
		"layer":     f.Layer,
		"thickness": f.Thickness,
		"rotation":  f.Rotation,
		"text":      f.Text,
		"height":    f.Height,
		"align1":    f.Align1,
		"align2":    f.Align2,
		"visible":   f.Visible,
		"xdata":     f.XData,
		"class":     f.Class,
	}
}
