package dxf

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
)

// Header HEADER 段中用到的系统变量
type Header struct {
	Version   string     // $ACADVER
	CodePage  string     // $DWGCODEPAGE
	Units     int        // $INSUNITS
	ExtMin    core.Point // $EXTMIN
	ExtMax    core.Point // $EXTMAX
	UCSOrigin core.Point // $UCSORG

	hasMin, hasMax bool
}

// Extents 图纸范围；缺失或无效（空图纸的 1e20/-1e20）时返回 false
func (h *Header) Extents() (orb.Bound, bool) {
	if !h.hasMin || !h.hasMax || h.ExtMin.X > h.ExtMax.X || h.ExtMin.Y > h.ExtMax.Y {
		return orb.Bound{}, false
	}
	return orb.Bound{
		Min: orb.Point{h.ExtMin.X, h.ExtMin.Y},
		Max: orb.Point{h.ExtMax.X, h.ExtMax.Y},
	}, true
}

func (d *Document) parseHeader(scanner *core.Scanner) error {
	var variable string
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 {
			if !tag.Is(0, "ENDSEC") {
				scanner.Back()
			}
			break
		}
		if tag.Code == 9 {
			variable = strings.ToUpper(tag.AsString())
			continue
		}
		if err := d.Header.set(variable, tag); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// 2007 以前的图纸按声明的代码页解码后续字符串
	scanner.SetDecoder(core.CodePageDecoder(d.Header.Version, d.Header.CodePage))
	return nil
}

func (h *Header) set(variable string, tag core.Tag) (err error) {
	switch variable {
	case "$ACADVER":
		h.Version = tag.AsString()
	case "$DWGCODEPAGE":
		h.CodePage = tag.AsString()
	case "$INSUNITS":
		h.Units, err = tag.Short()
	case "$EXTMIN":
		h.hasMin = true
		err = setHeaderPoint(&h.ExtMin, tag)
	case "$EXTMAX":
		h.hasMax = true
		err = setHeaderPoint(&h.ExtMax, tag)
	case "$UCSORG":
		err = setHeaderPoint(&h.UCSOrigin, tag)
	}
	return err
}

func setHeaderPoint(p *core.Point, tag core.Tag) (err error) {
	switch tag.Code {
	case 10:
		p.X, err = tag.Float()
	case 20:
		p.Y, err = tag.Float()
	case 30:
		p.Z, err = tag.Float()
	}
	return err
}
