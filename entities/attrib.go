package entities

import "github.com/zooyer/dxfgeo/core"

// Attrib 块参照上的属性文字
type Attrib struct {
	Text
	Tag    string // 属性标签，如 "序号"
	Prompt string // 仅 ATTDEF
	Flags  int
}

func init() {
	Register("ATTRIB", func() Entity {
		return &Attrib{Text: *newText("ATTRIB")}
	})
	Register("ATTDEF", func() Entity {
		return &Attrib{Text: *newText("ATTDEF")}
	})
}

func (a *Attrib) Parse(p *Parser) error {
	err := p.Fields(&a.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Name:
			a.Tag = t.AsString()
			return
		case core.Int1:
			a.Flags = p.Short(t)
			return
		case core.TextOrName2:
			if a.TypeName == "ATTDEF" {
				a.Prompt = t.AsString()
				return
			}
		}
		// ATTRIB 的垂直对齐是 74，73 为字段长度
		a.parseField(p, t, core.Int5)
	})
	a.Value = NormalizeText(a.raw)
	return err
}

// Visible 标志位 1 表示属性不可见
func (a *Attrib) Visible() bool {
	return a.BaseEntity.Visible() && a.Flags&1 == 0
}

// Skip 属性定义只是模板，不单独输出
func (a *Attrib) Skip() bool { return a.TypeName == "ATTDEF" }
