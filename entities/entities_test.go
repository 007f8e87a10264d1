package entities

import (
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/dxfgeo/core"
)

// pairs 把交替的组码、值拼成 DXF 文本
func pairs(kv ...string) string {
	return strings.Join(kv, "\n") + "\n"
}

func parseEntity(t *testing.T, src string) (Entity, *Parser) {
	t.Helper()
	p := NewParser(core.NewScanner(strings.NewReader(src)))
	typ, ok := p.NextType()
	require.True(t, ok, "缺少 TYPE 标签对")
	e, err := Read(p, typ)
	require.NoError(t, err)
	return e, p
}

func TestLine(t *testing.T) {
	e, p := parseEntity(t, pairs("0", "LINE", "8", "WALLS", "62", "3", "10", "0", "20", "0", "11", "10", "21", "0", "0", "EOF"))

	line := e.(*Line)
	assert.Equal(t, "WALLS", line.Layer())
	assert.Equal(t, 3, line.Color)
	assert.Equal(t, orb.LineString{{0, 0}, {10, 0}}, line.Geometry())
	assert.Equal(t, LineGeometry, line.GeometryType())

	// 下一个 TYPE 被回退，仍可读取
	typ, ok := p.NextType()
	assert.True(t, ok)
	assert.Equal(t, "EOF", typ)
}

func TestFormatErrorIsFatal(t *testing.T) {
	p := NewParser(core.NewScanner(strings.NewReader(pairs("0", "LINE", "10", "abc"))))
	typ, _ := p.NextType()
	_, err := Read(p, typ)

	var fe *core.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestUnknownEntityIsConsumed(t *testing.T) {
	e, p := parseEntity(t, pairs("0", "HATCH", "8", "0", "91", "1", "10", "1.0", "0", "POINT", "10", "1", "20", "2"))

	assert.True(t, Skipped(e))
	assert.Equal(t, "HATCH", e.Type())

	typ, ok := p.NextType()
	require.True(t, ok)
	next, err := Read(p, typ)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{1, 2}, next.Geometry())
}

func TestCircleClosure(t *testing.T) {
	for _, r := range []float64{0.5, 5, 16, 123.456} {
		c := &Circle{Center: core.Point{X: 3, Y: 4}, Radius: r}
		g, ok := c.Geometry().(orb.Polygon)
		require.True(t, ok)
		ring := g[0]
		assert.GreaterOrEqual(t, len(ring), 3, "r=%v", r)
		assert.Equal(t, ring[0], ring[len(ring)-1], "r=%v 首尾必须完全相同", r)
		for _, pt := range ring {
			assert.InDelta(t, r, math.Hypot(pt[0]-3, pt[1]-4), 1e-9)
		}
	}

	assert.Nil(t, (&Circle{Radius: 0}).Geometry())
}

func TestEllipse(t *testing.T) {
	full, _ := parseEntity(t, pairs("0", "ELLIPSE", "10", "0", "20", "0", "11", "10", "21", "0", "40", "0.5", "41", "0", "42", "6.283185307179586"))
	assert.Equal(t, PolygonGeometry, full.GeometryType())
	poly := full.Geometry().(orb.Polygon)
	assert.Len(t, poly[0], EllipseSegments+1)
	assert.Equal(t, poly[0][0], poly[0][len(poly[0])-1])
	assert.InDelta(t, 10, poly[0][0][0], 1e-9)

	half, _ := parseEntity(t, pairs("0", "ELLIPSE", "10", "0", "20", "0", "11", "0", "21", "4", "40", "0.5", "41", "0", "42", "3.141592653589793"))
	assert.Equal(t, LineGeometry, half.GeometryType())
	ls := half.Geometry().(orb.LineString)
	require.Len(t, ls, EllipseSegments+1)
	// 长轴沿 Y 方向
	assert.InDelta(t, 0, ls[0][0], 1e-9)
	assert.InDelta(t, 4, ls[0][1], 1e-9)
	assert.InDelta(t, -4, ls[len(ls)-1][1], 1e-9)
}

func TestPolyline(t *testing.T) {
	src := pairs(
		"0", "POLYLINE", "8", "PARCELS", "66", "1", "70", "1",
		"0", "VERTEX", "10", "0", "20", "0",
		"0", "VERTEX", "10", "10", "20", "0",
		"0", "VERTEX", "10", "10", "20", "10",
		"0", "SEQEND", "8", "PARCELS",
		"0", "LINE",
	)
	e, p := parseEntity(t, src)
	pl := e.(*Polyline)
	assert.Len(t, pl.Vertices, 3)
	assert.Equal(t, PolygonGeometry, pl.GeometryType())
	assert.Equal(t, orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 0}}}, pl.Geometry())

	typ, ok := p.NextType()
	assert.True(t, ok)
	assert.Equal(t, "LINE", typ)
}

func TestPolylineClosedWithTwoVerticesIsLine(t *testing.T) {
	src := pairs(
		"0", "POLYLINE", "70", "1",
		"0", "VERTEX", "10", "0", "20", "0",
		"0", "VERTEX", "10", "5", "20", "0",
		"0", "SEQEND",
	)
	e, _ := parseEntity(t, src)
	assert.Equal(t, LineGeometry, e.GeometryType())
	assert.Equal(t, orb.LineString{{0, 0}, {5, 0}}, e.Geometry())
}

func TestLWPolylineBulge(t *testing.T) {
	// 0,0 到 10,0 的半圆，凸度 1 为逆时针
	src := pairs("0", "LWPOLYLINE", "90", "2", "70", "0", "10", "0", "20", "0", "42", "1", "10", "10", "20", "0")
	e, _ := parseEntity(t, src)

	ls := e.Geometry().(orb.LineString)
	require.Greater(t, len(ls), 2)
	assert.Equal(t, orb.Point{0, 0}, ls[0])
	assert.Equal(t, orb.Point{10, 0}, ls[len(ls)-1])
	for _, pt := range ls[1 : len(ls)-1] {
		assert.InDelta(t, 5, math.Hypot(pt[0]-5, pt[1]), 1e-9)
		assert.Less(t, pt[1], 0.0, "逆时针从左到右经过下半圆")
	}
}

func TestLWPolylineClosed(t *testing.T) {
	src := pairs("0", "LWPOLYLINE", "70", "1", "10", "0", "20", "0", "10", "4", "20", "0", "10", "4", "20", "3", "10", "0", "20", "0")
	e, _ := parseEntity(t, src)
	poly := e.Geometry().(orb.Polygon)
	// 首尾已相同，不再追加
	assert.Len(t, poly[0], 4)
}

func TestSolidAndTrace(t *testing.T) {
	solid, _ := parseEntity(t, pairs("0", "SOLID", "10", "0", "20", "0", "11", "1", "21", "0", "12", "0", "22", "1", "13", "1", "23", "1"))
	assert.Equal(t, orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}, solid.Geometry())
	assert.Equal(t, PolygonGeometry, solid.GeometryType())

	tri, _ := parseEntity(t, pairs("0", "SOLID", "10", "0", "20", "0", "11", "1", "21", "0", "12", "0", "22", "1"))
	assert.Equal(t, orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}, tri.Geometry())

	trace, _ := parseEntity(t, pairs("0", "TRACE", "10", "0", "20", "0", "11", "1", "21", "0", "12", "0", "22", "1", "13", "1", "23", "1"))
	assert.Equal(t, UnsupportedGeometry, trace.GeometryType())
	assert.NotNil(t, trace.Geometry())
}

func TestFace3D(t *testing.T) {
	e, _ := parseEntity(t, pairs("0", "3DFACE", "10", "0", "20", "0", "30", "0", "11", "2", "21", "0", "31", "0", "12", "2", "22", "2", "32", "0", "13", "2", "23", "2", "33", "0"))
	assert.Equal(t, orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 0}}}, e.Geometry())
}

func TestTextAlignment(t *testing.T) {
	cases := []struct {
		h, v           int
		align1, align2 float64
	}{
		{0, 0, 0, 0},
		{1, 1, 0.5, 0},
		{2, 2, 1, 0.5},
		{3, 3, 0, 1},
		{4, 4, 0.5, 1.5},
		{5, 5, 0, 2},
		{6, 6, 3, 2.5},
		{7, 7, 3.5, 3},
	}
	for _, c := range cases {
		l := (&Text{HAlign: c.h, VAlign: c.v}).Label()
		assert.Equalf(t, c.align1, l.Align1, "72=%d", c.h)
		assert.Equalf(t, c.align2, l.Align2, "73=%d", c.v)
	}
}

func TestText(t *testing.T) {
	e, _ := parseEntity(t, pairs("0", "TEXT", "10", "1", "20", "2", "40", "2.5", "50", "30", "1", "A\\PB%%041", "72", "1", "73", "2"))
	text := e.(*Text)
	assert.Equal(t, "A\nB)", text.Value)
	assert.Equal(t, DefaultTextStyle, text.Style)

	l := text.Label()
	assert.Equal(t, 2.5, l.Height)
	assert.Equal(t, 30.0, l.Rotation)
	assert.Equal(t, 0.5, l.Align1)
	assert.Equal(t, 0.5, l.Align2)
	assert.Equal(t, orb.Point{1, 2}, text.Geometry())
}

func TestNormalizeText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"A\\PB", "A\nB"},
		{"%%041", ")"},
		{"{\\fArial|b0|i0;Hello}", "Hello"},
		{"\\U+00E9t\\u+00E9", "\u00e9t\u00e9"},
		{"U+4E2D", "\u4e2d"},
		{"\\u00e9t\\U00E9", "\u00e9t\u00e9"},
		{"45%%d", "45\u00b0"},
		{"  padded  ", "padded"},
		{"\\H2.5;big\\Ptwo", "big\ntwo"},
		{"e\u0301", "\u00e9"},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, NormalizeText(c.in), "input %q", c.in)
	}
}

func TestMText(t *testing.T) {
	e, _ := parseEntity(t, pairs("0", "MTEXT", "10", "5", "20", "5", "40", "3", "71", "5", "3", "Hello wo", "1", "rld", "11", "0", "21", "1"))
	m := e.(*MText)
	assert.Equal(t, "Hello world", m.Value)
	assert.False(t, Skipped(m))

	l := m.Label()
	assert.InDelta(t, 90, l.Rotation, 1e-9)
	assert.Equal(t, 0.5, l.Align1)
	assert.Equal(t, 0.5, l.Align2)

	rad, _ := parseEntity(t, pairs("0", "MTEXT", "1", "x", "50", "1.5707963267948966", "11", "1", "21", "0"))
	assert.InDelta(t, 90, rad.(*MText).Rotation, 1e-9, "显式旋转角优先")

	empty, _ := parseEntity(t, pairs("0", "MTEXT", "10", "0", "20", "0", "1", "  "))
	assert.True(t, Skipped(empty))
}

func TestInsertWithAttributes(t *testing.T) {
	src := pairs(
		"0", "INSERT", "2", "DOOR", "8", "0", "66", "1", "10", "5", "20", "6", "41", "2", "50", "90",
		"0", "ATTRIB", "2", "序号", "1", "A-01", "10", "5", "20", "6", "70", "0",
		"0", "ATTRIB", "2", "HIDDEN", "1", "x", "70", "1",
		"0", "SEQEND",
		"0", "CIRCLE",
	)
	e, p := parseEntity(t, src)
	ins := e.(*Insert)
	assert.Equal(t, "DOOR", ins.BlockName())
	assert.Equal(t, core.Point{X: 5, Y: 6}, ins.InsertionPoint)
	assert.Equal(t, core.Point{X: 2, Y: 1, Z: 1}, ins.Scale)
	assert.Equal(t, 90.0, ins.Rotation)
	require.Len(t, ins.Attributes, 2)
	assert.Equal(t, "A-01", ins.Attribute("序号"))
	assert.True(t, ins.Attributes[0].Visible())
	assert.False(t, ins.Attributes[1].Visible())

	typ, _ := p.NextType()
	assert.Equal(t, "CIRCLE", typ)
}

func TestXData(t *testing.T) {
	src := pairs(
		"0", "POINT", "10", "1", "20", "1",
		"1001", "APP1", "1002", "{", "1000", "hello", "1070", "7", "1040", "2.5", "1002", "}",
		"1001", "APP2", "1071", "70000", "1010", "1.0",
		"62", "5",
	)
	e, _ := parseEntity(t, src)
	base := e.Base()
	require.Len(t, base.XData.Groups, 2)

	v1, ok := base.XData.Get("APP1")
	require.True(t, ok)
	assert.Equal(t, []any{"hello", 7, 2.5}, v1)

	v2, _ := base.XData.Get("APP2")
	assert.Equal(t, []any{70000, 1.0}, v2)
	// 非扩展数据组码被回退给实体
	assert.Equal(t, 5, base.Color)
}

func TestActualColor(t *testing.T) {
	cases := []struct {
		color, insert, layer, want int
	}{
		{ColorByBlock, 3, 7, 3},
		{ColorByBlock, -1, 7, 0},
		{ColorByLayer, 3, 7, 7},
		{ColorByLayer, -1, 0, 1},
		{ColorByLayer, -1, -1, 1},
		{-1, -1, 4, 4},
		{5, 3, 7, 5},
	}
	for _, c := range cases {
		b := BaseEntity{Color: c.color}
		assert.Equalf(t, c.want, b.ActualColor(c.insert, c.layer), "%+v", c)
	}
}

func TestDimension(t *testing.T) {
	e, _ := parseEntity(t, pairs("0", "DIMENSION", "2", "*D1", "3", "iso-25", "1", "", "42", "1234.5678", "11", "5", "21", "1", "13", "0", "23", "0", "14", "10", "24", "0", "70", "32"))
	d := e.(*Dimension)
	assert.Equal(t, "*D1", d.BlockName())
	assert.Equal(t, "ISO-25", d.StyleName)
	assert.Equal(t, 0, d.DimType)
	assert.Equal(t, core.Point{X: 10}, d.MeasureEnd)
	assert.Equal(t, UnsupportedGeometry, d.GeometryType())
	assert.Nil(t, d.Geometry())
	assert.False(t, d.Overridden())
	assert.Equal(t, 1234.5678, d.GetCleanVal())
}

func TestEllipseStartAfterEnd(t *testing.T) {
	// 起始 3π/2 大于终止 π/2，起始减去 2π 后扫过右半边
	e, _ := parseEntity(t, pairs("0", "ELLIPSE", "10", "0", "20", "0", "11", "2", "21", "0", "40", "1", "41", "4.71238898038469", "42", "1.5707963267948966"))
	assert.Equal(t, LineGeometry, e.GeometryType())

	ls := e.Geometry().(orb.LineString)
	require.Len(t, ls, EllipseSegments+1)
	assert.InDelta(t, 0, ls[0][0], 1e-9)
	assert.InDelta(t, -2, ls[0][1], 1e-9)
	assert.InDelta(t, 2, ls[EllipseSegments/2][0], 1e-9)
	assert.InDelta(t, 2, ls[len(ls)-1][1], 1e-9)
}

func TestLeader(t *testing.T) {
	open, _ := parseEntity(t, pairs("0", "LEADER", "8", "0", "3", "STANDARD", "10", "0", "20", "0", "10", "5", "20", "5", "10", "10", "20", "5"))
	leader := open.(*Leader)
	assert.Equal(t, "STANDARD", leader.StyleName)
	assert.Equal(t, LineGeometry, leader.GeometryType())
	assert.Equal(t, orb.LineString{{0, 0}, {5, 5}, {10, 5}}, leader.Geometry())

	closed, _ := parseEntity(t, pairs("0", "LEADER", "8", "0", "70", "1", "10", "0", "20", "0", "10", "5", "20", "5", "10", "10", "20", "0"))
	assert.Equal(t, PolygonGeometry, closed.GeometryType())
	assert.Equal(t, orb.Polygon{{{0, 0}, {5, 5}, {10, 0}, {0, 0}}}, closed.Geometry())

	// 两个顶点即使闭合也是线
	short, _ := parseEntity(t, pairs("0", "LEADER", "8", "0", "70", "1", "10", "0", "20", "0", "10", "5", "20", "5"))
	assert.Equal(t, LineGeometry, short.GeometryType())
}

func TestSpline(t *testing.T) {
	e, _ := parseEntity(t, pairs("0", "SPLINE", "8", "0", "70", "8", "71", "3", "10", "0", "20", "0", "10", "1", "20", "2", "10", "3", "20", "2", "10", "4", "20", "0"))
	spline := e.(*Spline)
	assert.Equal(t, 3, spline.Degree)
	assert.Len(t, spline.ControlPoints, 4)
	assert.Equal(t, LineGeometry, spline.GeometryType())
	assert.Equal(t, orb.LineString{{0, 0}, {1, 2}, {3, 2}, {4, 0}}, spline.Geometry())

	closed, _ := parseEntity(t, pairs("0", "SPLINE", "8", "0", "70", "11", "10", "0", "20", "0", "10", "1", "20", "2", "10", "2", "20", "0"))
	assert.Equal(t, PolygonGeometry, closed.GeometryType())
	assert.Equal(t, orb.Polygon{{{0, 0}, {1, 2}, {2, 0}, {0, 0}}}, closed.Geometry())
}

func TestStrayXDataIgnored(t *testing.T) {
	e, _ := parseEntity(t, pairs("0", "POINT", "8", "0", "1000", "orphan", "10", "3", "20", "4"))
	assert.True(t, e.Base().XData.Empty())
	assert.Equal(t, orb.Point{3, 4}, e.Geometry())
	assert.True(t, Registered("point"))
	assert.False(t, Registered("HATCH"))
}
