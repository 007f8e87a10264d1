package dxf

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/zooyer/dxfgeo/utils"
)

// Options 数据源的解析选项
type Options struct {
	// SRS 图纸坐标所在的坐标参考系，例如 "EPSG:28992"，可为空
	SRS string
	// TargetSRS 目标坐标参考系，用于修正文字旋转角
	TargetSRS string
	// Reproject 为 true 时几何也投影到 TargetSRS
	Reproject bool
	// Transform 在块展开之后作用于全部坐标的仿射变换，nil 表示单位变换
	Transform *utils.Affine
	// InsertFilter 不展开的块名
	InsertFilter []string
	Logger       *log.Logger
}

// DefaultOptions 不做坐标转换、不过滤块
func DefaultOptions() Options {
	return Options{
		Logger: log.Default(),
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o Options) transform() utils.Affine {
	if o.Transform == nil {
		return utils.Identity()
	}
	return *o.Transform
}

func (o Options) excluded() map[string]bool {
	set := make(map[string]bool, len(o.InsertFilter))
	for _, name := range o.InsertFilter {
		set[strings.ToUpper(strings.TrimSpace(name))] = true
	}
	return set
}
