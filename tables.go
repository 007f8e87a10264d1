package dxf

import (
	"strings"

	"github.com/zooyer/dxfgeo/core"
	"github.com/zooyer/dxfgeo/entities"
)

const (
	// DefaultLayerName 实体没有图层时使用的图层名
	DefaultLayerName = "default"
	// DefaultLineTypeName 没有线型时使用的线型名
	DefaultLineTypeName = "CONTINUOUS"
	// DefaultColor 图层缺省颜色（白/黑）
	DefaultColor = 7
)

// Layer 图层；颜色为负表示关闭，标志位 1 表示冻结，两者都不可见
type Layer struct {
	Name     string
	Color    int
	Flags    int
	LineType string
}

func (l *Layer) Visible() bool {
	return l.Flags&1 == 0
}

// LineType 线型
type LineType struct {
	Name          string
	Description   string
	PatternLength float64
	Elements      []float64
}

type DimStyle struct {
	Name      string
	Precision int     // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征)
}

func (d *Document) parseTables(p *entities.Parser) error {
	scanner := p.Scanner()
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code != 0 {
			continue
		}

		var err error
		switch strings.ToUpper(tag.AsString()) {
		case "ENDSEC":
			return nil
		case "EOF":
			scanner.Back()
			return nil
		case "LAYER":
			err = d.parseLayer(p)
		case "LTYPE":
			err = d.parseLineType(p)
		case "DIMSTYLE":
			err = d.parseDimStyle(p)
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (d *Document) parseLayer(p *entities.Parser) error {
	layer := &Layer{Color: DefaultColor}
	err := p.Fields(nil, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Name:
			layer.Name = t.AsString()
		case core.Color:
			layer.Color = p.Short(t)
		case core.Int1:
			layer.Flags = p.Short(t)
		case core.LineTypeName:
			layer.LineType = t.AsString()
		}
	})
	if err != nil {
		return err
	}

	if layer.Color < 0 {
		layer.Color = -layer.Color
		layer.Flags |= 1
	}
	if layer.Name != "" {
		d.Layers[strings.ToUpper(layer.Name)] = layer
	}
	return nil
}

func (d *Document) parseLineType(p *entities.Parser) error {
	lt := &LineType{}
	err := p.Fields(nil, func(t core.Tag) {
		switch {
		case t.GroupCode() == core.Name:
			lt.Name = t.AsString()
		case t.GroupCode() == core.TextOrName2:
			lt.Description = t.AsString()
		case t.GroupCode() == core.Double1:
			lt.PatternLength = p.Float(t)
		case t.Code == 49:
			lt.Elements = append(lt.Elements, p.Float(t))
		}
	})
	if err != nil {
		return err
	}
	if lt.Name != "" {
		d.LineTypes[strings.ToUpper(lt.Name)] = lt
	}
	return nil
}

func (d *Document) parseDimStyle(p *entities.Parser) error {
	style := &DimStyle{
		Precision: 0,
		ExLimit:   0.0,
		Scale:     1.0, // 默认为 1.0，防止乘法归零
	}
	err := p.Fields(nil, func(t core.Tag) {
		switch t.Code {
		case 2: // 样式名称
			style.Name = strings.ToUpper(t.AsString())
		case 271: // 精度
			style.Precision = p.Short(t)
		case 44: // 标注线超出延伸线长度 (DIMEXE)
			style.ExLimit = p.Float(t)
		case 40: // 全局标注比例 (DIMSCALE)
			style.Scale = p.Float(t)
		}
	})
	if err != nil {
		return err
	}
	if style.Name != "" {
		d.DimStyles[style.Name] = style
	}
	return nil
}
