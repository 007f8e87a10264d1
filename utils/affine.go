package utils

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Affine 二维仿射变换
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

func Identity() Affine {
	return Affine{A: 1, D: 1}
}

func Translate(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, E: tx, F: ty}
}

func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate 逆时针旋转，角度为度
func Rotate(deg float64) Affine {
	rad := deg * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply 返回 m·n，即先应用 n 再应用 m
func (m Affine) Multiply(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Then 返回先应用 m 再应用 n 的变换
func (m Affine) Then(n Affine) Affine {
	return n.Multiply(m)
}

// Apply 将点变换到父级/世界坐标
func (m Affine) Apply(p orb.Point) orb.Point {
	return orb.Point{
		m.A*p[0] + m.C*p[1] + m.E,
		m.B*p[0] + m.D*p[1] + m.F,
	}
}

// ApplyVector 只应用线性部分（雅可比矩阵）
func (m Affine) ApplyVector(v orb.Point) orb.Point {
	return orb.Point{m.A*v[0] + m.C*v[1], m.B*v[0] + m.D*v[1]}
}

// Linear 线性部分是否为单位阵（只有平移）
func (m Affine) Linear() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

func (m Affine) IsIdentity() bool {
	return m.Linear() && m.E == 0 && m.F == 0
}

// Projection 以 orb.Projection 的形式使用该变换
func (m Affine) Projection() orb.Projection {
	return m.Apply
}

// Transform 返回变换后的新几何，原几何不变；proj 不为空时在仿射变换后再做投影
func Transform(g orb.Geometry, m Affine, proj orb.Projection) orb.Geometry {
	if g == nil {
		return nil
	}
	g = orb.Clone(g)
	if !m.IsIdentity() {
		g = project.Geometry(g, m.Projection())
	}
	if proj != nil {
		g = project.Geometry(g, proj)
	}
	return g
}

// LabelRotation 文字旋转角（度）经变换后的角度
// 取变换在锚点处的雅可比矩阵作用于单位方向；有投影时再用两个相邻点的投影结果修正角度畸变
func LabelRotation(m Affine, proj orb.Projection, anchor orb.Point, deg float64) float64 {
	if m.Linear() && proj == nil {
		return deg
	}

	rad := deg * math.Pi / 180.0
	dir := m.ApplyVector(orb.Point{math.Cos(rad), math.Sin(rad)})
	n := math.Hypot(dir[0], dir[1])
	if n == 0 {
		return deg
	}

	angle := math.Atan2(dir[1], dir[0])
	if proj != nil {
		p0 := m.Apply(anchor)
		step := 1e-7 * math.Max(1, math.Hypot(p0[0], p0[1]))
		p1 := orb.Point{p0[0] + dir[0]/n*step, p0[1] + dir[1]/n*step}
		q0, q1 := proj(p0), proj(p1)
		angle = math.Atan2(q1[1]-q0[1], q1[0]-q0[0])
	}

	deg = angle * 180.0 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
