package entities

import (
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// DefaultTextStyle 未指定字体样式时的默认值
const DefaultTextStyle = "STANDARD"

// Label 文字标注的位置与排版，角度为度，对齐为 0..1 的比例
type Label struct {
	Anchor   core.Point
	Text     string
	Height   float64
	Rotation float64
	Align1   float64 // 水平
	Align2   float64 // 垂直
}

// Text 单行文字
type Text struct {
	BaseEntity
	Location   core.Point
	AlignPoint core.Point
	Value      string
	Height     float64
	Rotation   float64 // 度
	Style      string
	HAlign     int // 72
	VAlign     int // 73
	raw        string
}

func init() {
	Register("TEXT", func() Entity { return newText("TEXT") })
}

func newText(typeName string) *Text {
	return &Text{BaseEntity: newBase(typeName), Style: DefaultTextStyle}
}

func (e *Text) Parse(p *Parser) error {
	err := p.Fields(&e.BaseEntity, func(t core.Tag) {
		e.parseField(p, t, core.Int4)
	})
	e.Value = NormalizeText(e.raw)
	return err
}

// parseField 处理文字类实体共有的组码，vertical 为垂直对齐所用的组码分类
func (e *Text) parseField(p *Parser, t core.Tag, vertical core.GroupCode) bool {
	switch gc := t.GroupCode(); gc {
	case core.X1, core.Y1, core.Z1:
		setCoord(p, t, &e.Location)
	case core.X2, core.Y2, core.Z2:
		setCoord(p, t, &e.AlignPoint)
	case core.Text:
		e.raw = t.Value
	case core.TextOrName2:
		e.raw += t.Value
	case core.Double1:
		e.Height = p.Float(t)
	case core.Angle1:
		e.Rotation = p.Float(t)
	case core.TextStyleName:
		e.Style = t.AsString()
	case core.Int3:
		e.HAlign = p.Short(t)
	case vertical:
		e.VAlign = p.Short(t)
	default:
		return false
	}
	return true
}

func (e *Text) Label() Label {
	h := e.HAlign
	switch h {
	case 3, 5: // aligned / fit
		h = 0
	case 4: // middle
		h = 1
	}
	return Label{
		Anchor:   e.Location,
		Text:     e.Value,
		Height:   e.Height,
		Rotation: e.Rotation,
		Align1:   float64(h) / 2,
		Align2:   float64(max(e.VAlign-1, 0)) / 2,
	}
}

func (e *Text) Geometry() orb.Geometry { return toOrb(e.Location) }

func (e *Text) GeometryType() GeometryType { return PointGeometry }
