package entities

import (
	"errors"

	"github.com/zooyer/dxfgeo/core"
)

// XDataGroup 一个注册应用下的扩展数据，值为 string / int / float64
type XDataGroup struct {
	App    string
	Values []any
}

// XData 按出现顺序保存的扩展数据
type XData struct {
	Groups []XDataGroup
}

func (x *XData) Empty() bool { return len(x.Groups) == 0 }

// Get 返回指定应用的扩展数据
func (x *XData) Get(app string) ([]any, bool) {
	for _, g := range x.Groups {
		if g.App == app {
			return g.Values, true
		}
	}
	return nil, false
}

// read 读取 1001 之后的扩展数据，遇到闭合的 "}" 或非扩展数据组码结束（后者回退）
func (x *XData) read(p *Parser, app string) {
	x.Groups = append(x.Groups, XDataGroup{App: app})
	g := &x.Groups[len(x.Groups)-1]

	depth := 0
	for p.err == nil {
		t, err := p.s.ReadPair()
		if errors.Is(err, core.ErrEndOfInput) {
			return
		}
		if err != nil {
			p.fail(err)
			return
		}

		switch t.GroupCode() {
		case core.XDataControlString:
			switch t.AsString() {
			case "{":
				depth++
			case "}":
				if depth--; depth <= 0 {
					return
				}
			}
		case core.XDataASCIIString, core.XDataLayerName, core.XDataChunkOfBytes, core.XDataDBHandle:
			g.Values = append(g.Values, t.AsString())
		case core.XDataInt16:
			g.Values = append(g.Values, p.Short(t))
		case core.XDataInt32:
			g.Values = append(g.Values, p.Int(t))
		case core.XDataDouble, core.XDataDistance, core.XDataScaleFactor,
			core.XDataX1, core.XDataX2, core.XDataX3, core.XDataX4,
			core.XDataY1, core.XDataY2, core.XDataY3, core.XDataY4,
			core.XDataZ1, core.XDataZ2, core.XDataZ3, core.XDataZ4:
			g.Values = append(g.Values, p.Float(t))
		default:
			p.s.Back()
			return
		}
	}
}
