package entities

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Insert 块参照；Columns/Rows 大于 1 时为阵列插入（MINSERT）
type Insert struct {
	BaseEntity
	Block          string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 度
	Columns        int
	Rows           int
	ColumnSpacing  float64
	RowSpacing     float64
	Attributes     []*Attrib
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: newBase("INSERT"),
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
			Columns:    1,
			Rows:       1,
		}
	})
}

func (i *Insert) Parse(p *Parser) error {
	hasAttributes := false

	err := p.Fields(&i.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Name:
			i.Block = t.AsString()
		case core.X1, core.Y1, core.Z1:
			setCoord(p, t, &i.InsertionPoint)
		case core.Double2:
			i.Scale.X = p.Float(t)
		case core.Double3:
			i.Scale.Y = p.Float(t)
		case core.Double4:
			i.Scale.Z = p.Float(t)
		case core.Double5:
			i.ColumnSpacing = p.Float(t)
		case core.Double6:
			i.RowSpacing = p.Float(t)
		case core.Angle1:
			i.Rotation = p.Float(t)
		case core.Int1:
			i.Columns = max(p.Short(t), 1)
		case core.Int2:
			i.Rows = max(p.Short(t), 1)
		case core.EntitiesFollow:
			hasAttributes = p.Short(t) == 1
		}
	})
	if err != nil || !hasAttributes {
		return err
	}

	// 核心逻辑：如果标记了有属性，则继续在当前流中抓取 ATTRIB 直到 SEQEND
	for {
		typ, ok := p.NextType()
		if !ok {
			return p.Err()
		}
		switch strings.ToUpper(typ) {
		case "ATTRIB":
			attr := &Attrib{Text: *newText("ATTRIB")}
			if err := attr.Parse(p); err != nil {
				return err
			}
			i.Attributes = append(i.Attributes, attr)
		case "SEQEND":
			_, err := Read(p, "SEQEND")
			return err
		default:
			p.Unread()
			return nil
		}
	}
}

func (i *Insert) BlockName() string { return i.Block }

// Attribute 按标签取属性值
func (i *Insert) Attribute(tag string) string {
	for _, a := range i.Attributes {
		if strings.EqualFold(a.Tag, tag) {
			return a.Value
		}
	}
	return ""
}

// Geometry 块参照本身没有几何，由解析阶段展开块内实体
func (i *Insert) Geometry() orb.Geometry { return nil }

func (i *Insert) GeometryType() GeometryType { return UnsupportedGeometry }
