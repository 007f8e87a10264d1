package entities

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

var (
	dimFormat = regexp.MustCompile(`\\[A-Z].*?;`)
	dimNumber = regexp.MustCompile(`[0-9.]+`)
)

// Dimension 标注；只解析属性，不生成几何
type Dimension struct {
	BaseEntity
	Block             string     // 组码 2 (标注图形所在的匿名块)
	DimType           int        // 组码 70 (关键：区分标注类型)
	StyleName         string     // 组码 3 (标注样式名称，用于关联 TABLES)
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50
	TextRotation      float64    // 组码 53
	TextMidPoint      core.Point // 组码 11 (中间的点)
	DefPoint          core.Point // 组码 10 (标注线起点)
	MeasureStart      core.Point // 组码 13 (被测量的起点)
	MeasureEnd        core.Point // 组码 14 (被测量的终点)
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: newBase("DIMENSION")}
	})
}

func (d *Dimension) Parse(p *Parser) error {
	return p.Fields(&d.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Name:
			d.Block = t.AsString()
		case core.TextOrName2:
			// 核心：读取标注样式名称
			d.StyleName = strings.ToUpper(t.AsString())
		case core.Text:
			d.Text = t.AsString()
		case core.Double3:
			d.ActualMeasurement = p.Float(t)
		case core.Angle1:
			d.Angle = p.Float(t)
		case core.Angle4:
			d.TextRotation = p.Float(t)
		case core.X1, core.Y1, core.Z1:
			setCoord(p, t, &d.DefPoint)
		case core.X2, core.Y2, core.Z2:
			setCoord(p, t, &d.TextMidPoint)
		case core.X4, core.Y4, core.Z4:
			setCoord(p, t, &d.MeasureStart)
		case core.Int1:
			// 组码 70 包含了很多信息，我们只需要低 3 位来判定类型
			d.DimType = p.Short(t) & 0x07
		default:
			switch t.Code {
			case 14:
				d.MeasureEnd.X = p.Float(t)
			case 24:
				d.MeasureEnd.Y = p.Float(t)
			case 34:
				d.MeasureEnd.Z = p.Float(t)
			}
		}
	})
}

func (d *Dimension) BlockName() string { return d.Block }

// Overridden 是否有手动文字覆盖（"<>" 表示保留测量值）
func (d *Dimension) Overridden() bool {
	return d.Text != "" && !strings.Contains(d.Text, "<>")
}

// GetCleanVal 正则提取数值
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		cleanText := dimFormat.ReplaceAllString(d.Text, "")
		if match := dimNumber.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}

func (d *Dimension) Label() Label {
	return Label{
		Anchor:   d.TextMidPoint,
		Text:     NormalizeText(d.Text),
		Rotation: d.TextRotation,
	}
}

// Geometry 标注的几何不支持
func (d *Dimension) Geometry() orb.Geometry { return nil }

func (d *Dimension) GeometryType() GeometryType { return UnsupportedGeometry }
