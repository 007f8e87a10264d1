package entities

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// MText 多行文字；旋转角组码 50 为弧度，未给出时由 11/21 方向向量推算
type MText struct {
	BaseEntity
	Location   core.Point
	Direction  core.Point
	Value      string
	Height     float64
	Width      float64
	Rotation   float64 // 度
	Style      string
	Attachment int // 71：1-9，左上到右下

	raw          string
	hasRotation  bool
	hasDirection bool
}

func init() {
	Register("MTEXT", func() Entity {
		return &MText{BaseEntity: newBase("MTEXT"), Style: DefaultTextStyle}
	})
}

func (m *MText) Parse(p *Parser) error {
	err := p.Fields(&m.BaseEntity, func(t core.Tag) {
		switch t.GroupCode() {
		case core.X1, core.Y1, core.Z1:
			setCoord(p, t, &m.Location)
		case core.X2, core.Y2, core.Z2:
			setCoord(p, t, &m.Direction)
			m.hasDirection = true
		case core.Text, core.TextOrName2:
			m.raw += t.Value
		case core.Double1:
			m.Height = p.Float(t)
		case core.Double2:
			m.Width = p.Float(t)
		case core.Angle1:
			m.Rotation = p.Float(t) * 180 / math.Pi
			m.hasRotation = true
		case core.TextStyleName:
			m.Style = t.AsString()
		case core.Int2:
			m.Attachment = p.Short(t)
		}
	})

	m.Value = NormalizeText(m.raw)
	if !m.hasRotation && m.hasDirection {
		m.Rotation = math.Atan2(m.Direction.Y, m.Direction.X) * 180 / math.Pi
	}
	return err
}

// Skip 空文字不生成要素
func (m *MText) Skip() bool { return m.Value == "" }

func (m *MText) Label() Label {
	var align1, align2 float64
	if m.Attachment >= 1 && m.Attachment <= 9 {
		align1 = float64((m.Attachment-1)%3) / 2
		switch (m.Attachment - 1) / 3 {
		case 0:
			align2 = 1
		case 1:
			align2 = 0.5
		}
	}
	return Label{
		Anchor:   m.Location,
		Text:     m.Value,
		Height:   m.Height,
		Rotation: m.Rotation,
		Align1:   align1,
		Align2:   align2,
	}
}

func (m *MText) Geometry() orb.Geometry { return toOrb(m.Location) }

func (m *MText) GeometryType() GeometryType { return PointGeometry }
