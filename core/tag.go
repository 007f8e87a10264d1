package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
	Line  int // 值所在行号
}

// GroupCode 组码分类
func (t Tag) GroupCode() GroupCode {
	return Classify(t.Code)
}

// Float 将值转换为 float64
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, t.formatError("float")
	}
	return f, nil
}

// Short 将值转换为 16 位整数
func (t Tag) Short() (int, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 16)
	if err != nil {
		return 0, t.formatError("int16")
	}
	return int(i), nil
}

// Int 将值转换为 32 位整数
func (t Tag) Int() (int, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 32)
	if err != nil {
		return 0, t.formatError("int32")
	}
	return int(i), nil
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Is 判断是否为指定组码与值（值不区分大小写）
func (t Tag) Is(code int, value string) bool {
	return t.Code == code && strings.EqualFold(t.AsString(), value)
}

func (t Tag) formatError(kind string) error {
	return &FormatError{Line: t.Line, Code: t.Code, Value: t.Value, Kind: kind}
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}
