package utils

import (
	"github.com/zooyer/dxfgeo/core"
	"github.com/zooyer/dxfgeo/entities"
)

// InsertTransform 块参照对块内局部坐标的变换：
// 先减去块基点并按块比例缩放，再按插入比例缩放、按插入角旋转，最后平移到插入点
// column/row 为阵列插入的单元格序号，偏移在旋转后的坐标系中
func InsertTransform(ins *entities.Insert, base, blockScale core.Point, column, row int) Affine {
	local := Scale(ins.Scale.X*blockScale.X, ins.Scale.Y*blockScale.Y).
		Multiply(Translate(-base.X, -base.Y))

	cell := Translate(float64(column)*ins.ColumnSpacing, float64(row)*ins.RowSpacing)

	return Translate(ins.InsertionPoint.X, ins.InsertionPoint.Y).
		Multiply(Rotate(ins.Rotation)).
		Multiply(cell).
		Multiply(local)
}

// CombineInserts 嵌套块的变换：子块变换先作用，再叠加父级变换
func CombineInserts(parent, child Affine) Affine {
	return parent.Multiply(child)
}
