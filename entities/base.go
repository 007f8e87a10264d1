package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// ACI 特殊颜色号
const (
	ColorByBlock = 0
	ColorByLayer = 256
)

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName     string
	LayerName    string
	LineTypeName string
	Handle       string
	Color        int // ACI 颜色号，缺省为 BYLAYER
	Thickness    float64
	Invisible    bool
	XData        XData
}

func newBase(typeName string) BaseEntity {
	return BaseEntity{TypeName: typeName, Color: ColorByLayer}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Base() *BaseEntity { return b }

// Visible 实体自身的可见性，不含图层
func (b *BaseEntity) Visible() bool { return !b.Invisible }

// ActualColor 解析 BYBLOCK/BYLAYER 后的颜色号
// insertColor 为外层块参照的颜色，-1 表示不在块内；layerColor 为所在图层颜色，-1 表示没有图层
func (b *BaseEntity) ActualColor(insertColor, layerColor int) int {
	switch {
	case b.Color == ColorByBlock && insertColor != -1:
		return insertColor
	case b.Color == ColorByLayer || b.Color < 0:
		if layerColor < 0 {
			return 1
		}
		return max(1, layerColor)
	}
	return b.Color
}

// parseCommon 处理所有实体共有的组码，返回是否已处理
func (b *BaseEntity) parseCommon(p *Parser, t core.Tag) bool {
	switch t.GroupCode() {
	case core.LayerName:
		b.LayerName = t.AsString()
	case core.LineTypeName:
		b.LineTypeName = t.AsString()
	case core.Handle:
		b.Handle = t.AsString()
	case core.Color:
		b.Color = p.Short(t)
	case core.Thickness:
		b.Thickness = p.Float(t)
	case core.Visibility:
		b.Invisible = p.Short(t)&1 != 0
	default:
		return false
	}
	return true
}

func toOrb(p core.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

// setCoord 按组码分类写入坐标分量
func setCoord(p *Parser, t core.Tag, pt *core.Point) {
	switch t.GroupCode() {
	case core.X1, core.X2, core.X3, core.X4:
		pt.X = p.Float(t)
	case core.Y1, core.Y2, core.Y3, core.Y4:
		pt.Y = p.Float(t)
	case core.Z1, core.Z2, core.Z3, core.Z4:
		pt.Z = p.Float(t)
	}
}
