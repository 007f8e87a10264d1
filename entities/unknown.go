package entities

import "github.com/paulmach/orb"

// Unknown 未注册的实体类型，读完字段后丢弃
type Unknown struct {
	BaseEntity
}

func (u *Unknown) Parse(p *Parser) error {
	return p.Fields(&u.BaseEntity, nil)
}

func (u *Unknown) Skip() bool { return true }

func (u *Unknown) Geometry() orb.Geometry { return nil }

func (u *Unknown) GeometryType() GeometryType { return UnsupportedGeometry }
