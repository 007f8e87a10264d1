package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/zooyer/dxfgeo/entities"
)

// GetDimValue 标注数值：有手动文字覆盖时从文字中提取，否则按精度四舍五入测量值
func GetDimValue(dim *entities.Dimension, precision int) float64 {
	// 1. 如果有手动文字覆盖，直接按文字提取数字
	if dim.Overridden() {
		return dim.GetCleanVal()
	}

	// 2. 根据精度进行四舍五入
	p := math.Pow(10, float64(precision))

	return math.Round(dim.ActualMeasurement*p) / p
}

// DimensionText 标注显示的文字，"<>" 替换为测量值
func DimensionText(dim *entities.Dimension, precision int) string {
	if dim.Overridden() {
		return entities.NormalizeText(dim.Text)
	}

	value := strconv.FormatFloat(GetDimValue(dim, precision), 'f', max(precision, 0), 64)
	if strings.Contains(dim.Text, "<>") {
		return strings.ReplaceAll(entities.NormalizeText(dim.Text), "<>", value)
	}
	return value
}
