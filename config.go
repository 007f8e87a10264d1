package dxf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/zooyer/dxfgeo/utils"
	"gopkg.in/yaml.v3"
)

// Config 配置文件内容，支持 TOML 与 YAML
type Config struct {
	// SRS 图纸坐标参考系
	SRS string `toml:"srs" yaml:"srs"`
	// TargetSRS 目标坐标参考系
	TargetSRS string `toml:"target_srs" yaml:"target_srs"`
	Reproject bool   `toml:"reproject" yaml:"reproject"`
	// Transform 仿射变换 a, b, c, d, e, f，空表示单位变换
	Transform []float64 `toml:"transform" yaml:"transform"`
	// InsertFilter 不展开的块名
	InsertFilter []string `toml:"insert_filter" yaml:"insert_filter"`
	// LogLevel debug/info/warn/error
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// LoadConfig 按扩展名读取 .toml 或 .yaml/.yml 配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.SRS = os.ExpandEnv(config.SRS)
	config.TargetSRS = os.ExpandEnv(config.TargetSRS)
	return &config, nil
}

// Options 转换为解析选项；logger 为空时按 LogLevel 新建
func (c *Config) Options(logger *log.Logger) (Options, error) {
	opts := DefaultOptions()
	opts.SRS = c.SRS
	opts.TargetSRS = c.TargetSRS
	opts.Reproject = c.Reproject
	opts.InsertFilter = c.InsertFilter

	if len(c.Transform) > 0 {
		if len(c.Transform) != 6 {
			return opts, fmt.Errorf("transform needs 6 coefficients, got %d", len(c.Transform))
		}
		m := utils.Affine{
			A: c.Transform[0], B: c.Transform[1], C: c.Transform[2],
			D: c.Transform[3], E: c.Transform[4], F: c.Transform[5],
		}
		opts.Transform = &m
	}

	if logger == nil {
		logger = log.New(os.Stderr)
		if c.LogLevel != "" {
			level, err := log.ParseLevel(c.LogLevel)
			if err != nil {
				return opts, err
			}
			logger.SetLevel(level)
		}
	}
	opts.Logger = logger
	return opts, nil
}

// ParseAffine 解析逗号分隔的 6 个仿射系数 "a,b,c,d,e,f"
func ParseAffine(s string) (*utils.Affine, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return nil, fmt.Errorf("transform needs 6 coefficients, got %d", len(parts))
	}

	var v [6]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid transform coefficient %q: %w", part, err)
		}
		v[i] = f
	}
	return &utils.Affine{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}, nil
}
