package dxf

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// aciTable AutoCAD 颜色索引（ACI）到 RGB
var aciTable = buildACI()

func buildACI() (table [256]colorful.Color) {
	fixed := [10][3]float64{
		{0, 0, 0},
		{255, 0, 0},
		{255, 255, 0},
		{0, 255, 0},
		{0, 255, 255},
		{0, 0, 255},
		{255, 0, 255},
		{255, 255, 255},
		{128, 128, 128},
		{192, 192, 192},
	}
	for i, rgb := range fixed {
		table[i] = colorful.Color{R: rgb[0] / 255, G: rgb[1] / 255, B: rgb[2] / 255}
	}

	// 10-249：24 个色相，每个色相 5 档明度，偶数为纯色、奇数为半饱和
	values := [5]float64{1, 0.8, 0.6, 0.5, 0.3}
	for i := 10; i < 250; i++ {
		hue := float64((i-10)/10) * 15
		sub := (i - 10) % 10
		sat := 1.0
		if sub%2 == 1 {
			sat = 0.5
		}
		table[i] = colorful.Hsv(hue, sat, values[sub/2])
	}

	// 250-255：灰度
	for i, g := range [6]float64{51, 91, 132, 173, 214, 255} {
		table[250+i] = colorful.Color{R: g / 255, G: g / 255, B: g / 255}
	}
	return table
}

// ACIColor 颜色号对应的 RGB，超出范围时取默认颜色
func ACIColor(index int) colorful.Color {
	if index < 0 || index >= len(aciTable) {
		index = DefaultColor
	}
	return aciTable[index]
}
