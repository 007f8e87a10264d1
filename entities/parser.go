package entities

import (
	"errors"

	"github.com/zooyer/dxfgeo/core"
)

// Parser 在 Scanner 之上驱动实体字段的读取，数值转换失败时记录第一个错误
type Parser struct {
	s   *core.Scanner
	err error
}

func NewParser(s *core.Scanner) *Parser {
	return &Parser{s: s}
}

func (p *Parser) Scanner() *core.Scanner { return p.s }

func (p *Parser) Err() error { return p.err }

func (p *Parser) fail(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func (p *Parser) Float(t core.Tag) float64 {
	v, err := t.Float()
	p.fail(err)
	return v
}

func (p *Parser) Short(t core.Tag) int {
	v, err := t.Short()
	p.fail(err)
	return v
}

func (p *Parser) Int(t core.Tag) int {
	v, err := t.Int()
	p.fail(err)
	return v
}

// Fields 读取实体的属性标签对，直到下一个 TYPE（回退）或输入结束
// 通用组码由 base 处理，扩展数据交给 XData 读取，其余交给 fn
func (p *Parser) Fields(base *BaseEntity, fn func(t core.Tag)) error {
	for p.err == nil {
		t, err := p.s.ReadPair()
		if errors.Is(err, core.ErrEndOfInput) {
			break
		}
		if err != nil {
			p.fail(err)
			break
		}

		switch gc := t.GroupCode(); {
		case gc == core.Type:
			p.s.Back()
			return p.err
		case gc == core.XDataApplicationName && base != nil:
			base.XData.read(p, t.AsString())
		case gc.IsXData():
			// 没有 1001 应用名的扩展数据忽略
		case base != nil && base.parseCommon(p, t):
		case fn != nil:
			fn(t)
		}
	}
	return p.err
}

// NextType 读取下一个 TYPE 标签对的值；若下一个不是 TYPE 或输入结束，则回退并返回 false
func (p *Parser) NextType() (string, bool) {
	if p.err != nil {
		return "", false
	}
	t, err := p.s.ReadPair()
	if errors.Is(err, core.ErrEndOfInput) {
		return "", false
	}
	if err != nil {
		p.fail(err)
		return "", false
	}
	if t.GroupCode() != core.Type {
		p.s.Back()
		return "", false
	}
	return t.AsString(), true
}

// Unread 回退最近读取的标签对
func (p *Parser) Unread() {
	p.s.Back()
}
