package entities

import (
	"strings"

	"github.com/paulmach/orb"
)

// GeometryType 实体几何的分类
type GeometryType int

const (
	UnsupportedGeometry GeometryType = iota
	PointGeometry
	LineGeometry
	PolygonGeometry
)

func (g GeometryType) String() string {
	switch g {
	case PointGeometry:
		return "point"
	case LineGeometry:
		return "line"
	case PolygonGeometry:
		return "polygon"
	}
	return "unsupported"
}

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(p *Parser) error
	Type() string
	Layer() string
	Base() *BaseEntity
	// Visible 实体自身的可见性，不含图层
	Visible() bool
	// Geometry 由已解析的字段计算局部坐标下的几何，无法计算时返回 nil
	Geometry() orb.Geometry
	GeometryType() GeometryType
}

// Labeler 带文字标注的实体（TEXT/MTEXT/ATTRIB/DIMENSION）
type Labeler interface {
	Label() Label
}

// BlockReference 引用块定义的实体（INSERT/DIMENSION）
type BlockReference interface {
	Entity
	BlockName() string
}

// Skipper 解析完成后不应进入文档的实体，例如未知类型或空的多行文字
type Skipper interface {
	Skip() bool
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[strings.ToUpper(typeName)] = factory
}

// Registered 是否注册了该实体类型
func Registered(typeName string) bool {
	_, ok := registry[strings.ToUpper(typeName)]
	return ok
}

// CreateEntity 根据实体名称生产对应的结构体，未注册的类型返回 Unknown
func CreateEntity(typeName string) Entity {
	typeName = strings.ToUpper(strings.TrimSpace(typeName))
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return &Unknown{BaseEntity: newBase(typeName)}
}

// Read 在 TYPE 标签对之后读取一个完整实体
func Read(p *Parser, typeName string) (Entity, error) {
	ent := CreateEntity(typeName)
	if err := ent.Parse(p); err != nil {
		return nil, err
	}
	return ent, nil
}

// Skipped 实体是否应被丢弃
func Skipped(e Entity) bool {
	s, ok := e.(Skipper)
	return ok && s.Skip()
}
