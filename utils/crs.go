package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// DataSourceError 坐标参考系无法识别或无法转换
type DataSourceError struct {
	SRS string
	Err error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Error parsing CoordinateSystem srs: %q: %v", e.SRS, e.Err)
	}
	return fmt.Sprintf("Error parsing CoordinateSystem srs: %q", e.SRS)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// 常用 EPSG 代码
const (
	EPSGWGS84       = 4326
	EPSGWebMercator = 3857
)

var webMercatorAliases = map[int]bool{3857: true, 900913: true, 3785: true, 102100: true, 102113: true}

var srsPattern = regexp.MustCompile(`(?i)^(?:epsg:{1,2}|urn:ogc:def:crs:epsg:[0-9.]*:|https?://www\.opengis\.net/(?:gml/srs/epsg\.xml#|def/crs/epsg/[0-9.]+/))?([0-9]+)$`)

// SRS 以 EPSG 代码表示的坐标参考系，Code 为 0 表示未指定
type SRS struct {
	Code int
	Name string
}

func (s SRS) IsZero() bool { return s.Code == 0 }

func (s SRS) String() string {
	if s.IsZero() {
		return ""
	}
	return "EPSG:" + strconv.Itoa(s.canonical())
}

func (s SRS) canonical() int {
	if webMercatorAliases[s.Code] {
		return EPSGWebMercator
	}
	return s.Code
}

// ParseSRS 解析 "EPSG:4326"、"urn:ogc:def:crs:EPSG::4326" 等写法，空串表示未指定
func ParseSRS(s string) (SRS, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SRS{}, nil
	}
	m := srsPattern.FindStringSubmatch(s)
	if m == nil {
		return SRS{}, &DataSourceError{SRS: s}
	}
	code, err := strconv.Atoi(m[1])
	if err != nil || code <= 0 {
		return SRS{}, &DataSourceError{SRS: s, Err: err}
	}
	return SRS{Code: code, Name: s}, nil
}

// Reprojection 返回 from 到 to 的坐标投影；两者相同或任一未指定时返回 nil
func Reprojection(from, to SRS) (orb.Projection, error) {
	if from.IsZero() || to.IsZero() || from.canonical() == to.canonical() {
		return nil, nil
	}

	switch {
	case from.canonical() == EPSGWGS84 && to.canonical() == EPSGWebMercator:
		return project.WGS84.ToMercator, nil
	case from.canonical() == EPSGWebMercator && to.canonical() == EPSGWGS84:
		return project.Mercator.ToWGS84, nil
	}
	return nil, &DataSourceError{SRS: to.Name, Err: fmt.Errorf("no transform from %s to %s", from, to)}
}
