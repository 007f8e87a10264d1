package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/zooyer/dxfgeo"
)

// sourceFlags convert 与 info 共用的解析参数
type sourceFlags struct {
	config    string
	srs       string
	targetSRS string
	reproject bool
	transform string
	exclude   []string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "配置文件 (.toml/.yaml)")
	cmd.Flags().StringVar(&f.srs, "srs", "", "图纸坐标参考系，例如 EPSG:4326")
	cmd.Flags().StringVar(&f.targetSRS, "target-srs", "", "目标坐标参考系")
	cmd.Flags().BoolVar(&f.reproject, "reproject", false, "几何投影到目标坐标参考系")
	cmd.Flags().StringVar(&f.transform, "transform", "", "仿射变换系数 a,b,c,d,e,f")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude-block", nil, "不展开的块名")
}

// options 配置文件打底，命令行参数覆盖
func (f *sourceFlags) options(cmd *cobra.Command, logger *log.Logger) (dxf.Options, error) {
	config := &dxf.Config{}
	if f.config != "" {
		c, err := dxf.LoadConfig(f.config)
		if err != nil {
			return dxf.Options{}, err
		}
		config = c
	}

	flags := cmd.Flags()
	if flags.Changed("srs") {
		config.SRS = f.srs
	}
	if flags.Changed("target-srs") {
		config.TargetSRS = f.targetSRS
	}
	if flags.Changed("reproject") {
		config.Reproject = f.reproject
	}
	if flags.Changed("exclude-block") {
		config.InsertFilter = f.exclude
	}

	opts, err := config.Options(logger)
	if err != nil {
		return opts, err
	}
	if f.transform != "" {
		if opts.Transform, err = dxf.ParseAffine(f.transform); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// parseBound 解析 "minx,miny,maxx,maxy"
func parseBound(s string) (*orb.Bound, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bbox needs minx,miny,maxx,maxy, got %q", s)
	}

	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bbox value %q: %w", part, err)
		}
		v[i] = f
	}
	b := orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}
	return &b, nil
}
