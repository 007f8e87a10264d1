package utils

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/dxfgeo/core"
	"github.com/zooyer/dxfgeo/entities"
)

func assertPoint(t *testing.T, want, got orb.Point) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], 1e-9)
	assert.InDelta(t, want[1], got[1], 1e-9)
}

func TestAffineCompose(t *testing.T) {
	// 先旋转 90 度再平移
	m := Translate(10, 0).Multiply(Rotate(90))
	assertPoint(t, orb.Point{10, 1}, m.Apply(orb.Point{1, 0}))

	assert.Equal(t, m, Rotate(90).Then(Translate(10, 0)))
	assert.True(t, Identity().IsIdentity())
	assert.True(t, Translate(3, 4).Linear())
	assert.False(t, Scale(2, 1).Linear())
}

func TestInsertTransform(t *testing.T) {
	ins := &entities.Insert{
		InsertionPoint: core.Point{X: 100, Y: 50},
		Scale:          core.Point{X: 2, Y: 2, Z: 1},
		Rotation:       90,
	}
	m := InsertTransform(ins, core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 1, Z: 1}, 0, 0)

	// 基点映射到插入点
	assertPoint(t, orb.Point{100, 50}, m.Apply(orb.Point{1, 1}))
	// (2,1) 相对基点 (1,0)，缩放 2 倍后旋转 90 度 → (0,2)
	assertPoint(t, orb.Point{100, 52}, m.Apply(orb.Point{2, 1}))
}

func TestInsertTransformArrayCell(t *testing.T) {
	ins := &entities.Insert{
		Scale:         core.Point{X: 1, Y: 1, Z: 1},
		Rotation:      90,
		ColumnSpacing: 10,
		RowSpacing:    5,
	}
	m := InsertTransform(ins, core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, 1, 1)
	assertPoint(t, orb.Point{-5, 10}, m.Apply(orb.Point{}))
}

func TestNestedTranslationsSum(t *testing.T) {
	m := Identity()
	var sx, sy float64
	for i := 1; i <= 5; i++ {
		dx, dy := float64(i)*1.5, float64(-i)*0.25
		sx += dx
		sy += dy
		ins := &entities.Insert{InsertionPoint: core.Point{X: dx, Y: dy}, Scale: core.Point{X: 1, Y: 1, Z: 1}}
		m = CombineInserts(m, InsertTransform(ins, core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, 0, 0))
	}
	assertPoint(t, orb.Point{sx, sy}, m.Apply(orb.Point{}))
}

func TestTransformDoesNotMutate(t *testing.T) {
	ls := orb.LineString{{0, 0}, {1, 1}}
	out := Transform(ls, Translate(5, 5), nil)

	assert.Equal(t, orb.LineString{{0, 0}, {1, 1}}, ls)
	assert.Equal(t, orb.LineString{{5, 5}, {6, 6}}, out)

	poly := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}
	moved := Transform(poly, Scale(2, 2), nil).(orb.Polygon)
	assert.Equal(t, orb.Point{2, 2}, moved[0][2])
	assert.Equal(t, orb.Point{1, 1}, poly[0][2])
}

func TestLabelRotation(t *testing.T) {
	assert.Equal(t, 30.0, LabelRotation(Translate(5, 5), nil, orb.Point{}, 30))
	assert.InDelta(t, 120, LabelRotation(Rotate(90), nil, orb.Point{}, 30), 1e-9)
	// 非均匀缩放改变方向
	assert.InDelta(t, 45, LabelRotation(Scale(1, 2), nil, orb.Point{}, math.Atan(0.5)*180/math.Pi), 1e-9)
	// 镜像
	assert.InDelta(t, 180, LabelRotation(Scale(-1, 1), nil, orb.Point{}, 0), 1e-9)
}

func TestLabelRotationWithProjection(t *testing.T) {
	proj, err := Reprojection(SRS{Code: EPSGWGS84}, SRS{Code: EPSGWebMercator})
	require.NoError(t, err)
	require.NotNil(t, proj)

	// 墨卡托保角，东向仍为 0 度，北向仍为 90 度
	assert.InDelta(t, 0, math.Mod(LabelRotation(Identity(), proj, orb.Point{5, 52}, 0), 360), 1e-6)
	assert.InDelta(t, 90, LabelRotation(Identity(), proj, orb.Point{5, 52}, 90), 1e-6)
}

func TestParseSRS(t *testing.T) {
	for _, s := range []string{"EPSG:4326", "epsg:4326", "urn:ogc:def:crs:EPSG::4326", "http://www.opengis.net/gml/srs/epsg.xml#4326", "4326"} {
		srs, err := ParseSRS(s)
		require.NoErrorf(t, err, "srs %q", s)
		assert.Equal(t, EPSGWGS84, srs.Code)
	}

	srs, err := ParseSRS("")
	require.NoError(t, err)
	assert.True(t, srs.IsZero())

	_, err = ParseSRS("not-a-crs")
	var dse *DataSourceError
	require.ErrorAs(t, err, &dse)
	assert.Equal(t, "not-a-crs", dse.SRS)
	assert.Contains(t, err.Error(), `"not-a-crs"`)
}

func TestReprojection(t *testing.T) {
	google, _ := ParseSRS("EPSG:900913")
	merc, _ := ParseSRS("EPSG:3857")
	rd, _ := ParseSRS("EPSG:28992")

	proj, err := Reprojection(google, merc)
	require.NoError(t, err)
	assert.Nil(t, proj)

	proj, err = Reprojection(rd, SRS{})
	require.NoError(t, err)
	assert.Nil(t, proj)

	_, err = Reprojection(rd, merc)
	var dse *DataSourceError
	require.ErrorAs(t, err, &dse)
	assert.Equal(t, "EPSG:3857", dse.SRS)
}

func TestTransformBound(t *testing.T) {
	b := TransformBound(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}}, Rotate(90))
	assertPoint(t, orb.Point{-1, 0}, b.Min)
	assertPoint(t, orb.Point{0, 2}, b.Max)

	assert.True(t, IsSeparate(orb.Bound{Max: orb.Point{1, 1}}, orb.Bound{Min: orb.Point{3, 3}, Max: orb.Point{4, 4}}, 1))
	assert.False(t, IsSeparate(orb.Bound{Max: orb.Point{1, 1}}, orb.Bound{Min: orb.Point{3, 3}, Max: orb.Point{4, 4}}, 2))
}

func TestDimensionText(t *testing.T) {
	d := &entities.Dimension{ActualMeasurement: 1234.5678}
	assert.Equal(t, "1235", DimensionText(d, 0))
	assert.Equal(t, "1234.57", DimensionText(d, 2))
	assert.Equal(t, 1234.57, GetDimValue(d, 2))

	d.Text = "L=<>"
	assert.Equal(t, "L=1234.6", DimensionText(d, 1))

	d.Text = "ca. 1200"
	assert.Equal(t, "ca. 1200", DimensionText(d, 1))
}

func TestEncodeXData(t *testing.T) {
	var x entities.XData
	assert.Equal(t, "", EncodeXData(x))

	x.Groups = append(x.Groups,
		entities.XDataGroup{App: "B", Values: []any{"v", 3, 1.5}},
		entities.XDataGroup{App: "A"},
	)
	assert.Equal(t, `[{"app":"B","values":["v",3,1.5]},{"app":"A","values":[]}]`, EncodeXData(x))
}

func TestInsertTransformRotatedNonUniform(t *testing.T) {
	ins := &entities.Insert{
		InsertionPoint: core.Point{X: 10},
		Scale:          core.Point{X: 3, Y: 2, Z: 1},
		Rotation:       90,
	}
	m := InsertTransform(ins, core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 1, Z: 1}, 0, 0)

	// 先减基点并缩放，再旋转：x 方向的缩放落到世界坐标的 y 上
	assertPoint(t, orb.Point{10, 3}, m.Apply(orb.Point{2, 1}))
	assertPoint(t, orb.Point{8, 0}, m.Apply(orb.Point{1, 2}))
	assertPoint(t, orb.Point{8, 3}, m.Apply(orb.Point{2, 2}))
}
