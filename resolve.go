package dxf

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/entities"
	"github.com/zooyer/dxfgeo/utils"
)

// resolver 深度优先展开块参照，生成世界坐标下的要素
type resolver struct {
	doc       *Document
	rotation  orb.Projection // 只用于修正文字角度
	reproject orb.Projection // 几何投影，可为空
	excluded  map[string]bool
	logger    *log.Logger

	// 同一块内实体的局部几何只计算一次
	cache    map[entities.Entity]orb.Geometry
	features []*Feature
}

// BaseTransform 全局仿射变换叠加 UCS 原点平移
func BaseTransform(doc *Document, opts Options) utils.Affine {
	ucs := doc.Header.UCSOrigin
	return utils.Translate(-ucs.X, -ucs.Y).Then(opts.transform())
}

// Resolve 展开文档中的全部实体，返回可见的要素
func Resolve(doc *Document, opts Options) ([]*Feature, error) {
	proj, err := projection(opts)
	if err != nil {
		return nil, err
	}

	r := &resolver{
		doc:      doc,
		rotation: proj,
		excluded: opts.excluded(),
		logger:   opts.logger(),
		cache:    make(map[entities.Entity]orb.Geometry),
	}
	if opts.Reproject {
		r.reproject = proj
	}

	if err := r.walk(doc.Entities, BaseTransform(doc, opts), -1, nil); err != nil {
		return nil, err
	}
	r.logger.Debug("entities resolved", "features", len(r.features))
	return r.features, nil
}

func projection(opts Options) (orb.Projection, error) {
	from, err := utils.ParseSRS(opts.SRS)
	if err != nil {
		return nil, err
	}
	to, err := utils.ParseSRS(opts.TargetSRS)
	if err != nil {
		return nil, err
	}
	return utils.Reprojection(from, to)
}

func (r *resolver) walk(list []entities.Entity, m utils.Affine, insertColor int, path []string) error {
	for _, e := range list {
		layer := r.doc.FindLayer(e.Layer())
		if ins, ok := e.(*entities.Insert); ok {
			if err := r.expand(ins, layer, m, insertColor, path); err != nil {
				return err
			}
			continue
		}
		if e.Visible() && layer.Visible() {
			r.emit(e, layer, m, insertColor)
		}
	}
	return nil
}

// expand 展开块参照；隐藏的块参照连同其内容一起隐藏
func (r *resolver) expand(ins *entities.Insert, layer *Layer, m utils.Affine, insertColor int, path []string) error {
	if !ins.Visible() || !layer.Visible() {
		return nil
	}

	name := strings.ToUpper(ins.Block)
	if r.excluded[name] {
		r.logger.Debug("insert filtered", "block", ins.Block)
		return nil
	}
	if slices.Contains(path, name) {
		return &CyclicBlockReferenceError{Path: append(slices.Clone(path), name)}
	}

	block := r.doc.FindBlock(ins.Block)
	if _, ok := r.doc.Blocks[name]; !ok {
		r.logger.Debug("block not found", "block", ins.Block)
	}

	var (
		color = ins.ActualColor(insertColor, layer.Color)
		next  = append(slices.Clone(path), name)
	)
	for row := 0; row < ins.Rows; row++ {
		for col := 0; col < ins.Columns; col++ {
			child := utils.CombineInserts(m, utils.InsertTransform(ins, block.Base, block.Scale, col, row))
			if err := r.walk(block.Entities, child, color, next); err != nil {
				return err
			}
		}
	}

	// 属性文字已经是插入所在坐标系的坐标
	for _, attr := range ins.Attributes {
		attrLayer := r.doc.FindLayer(attr.Layer())
		if attr.Visible() && attrLayer.Visible() {
			r.emit(attr, attrLayer, m, color)
		}
	}
	return nil
}

func (r *resolver) geometry(e entities.Entity) orb.Geometry {
	if g, ok := r.cache[e]; ok {
		return g
	}
	g := e.Geometry()
	r.cache[e] = g
	return g
}

func (r *resolver) emit(e entities.Entity, layer *Layer, m utils.Affine, insertColor int) {
	base := e.Base()
	f := &Feature{
		ID:        strconv.Itoa(len(r.features)),
		Kind:      e.GeometryType(),
		LineType:  r.lineType(base, layer),
		Color:     ACIColor(base.ActualColor(insertColor, layer.Color)),
		Layer:     layer.Name,
		Thickness: base.Thickness,
		Visible:   1,
		XData:     utils.EncodeXData(base.XData),
		Class:     e.Type(),
		Entity:    e,
	}

	if g := r.geometry(e); g != nil {
		f.Geometry = utils.Transform(g, m, r.reproject)
	} else {
		f.Geometry = ErrorGeometry()
		f.Kind = entities.UnsupportedGeometry
	}

	if labeler, ok := e.(entities.Labeler); ok {
		label := labeler.Label()
		if dim, ok := e.(*entities.Dimension); ok {
			label.Text = utils.DimensionText(dim, r.doc.DimStyle(dim.StyleName).Precision)
		}
		anchor := orb.Point{label.Anchor.X, label.Anchor.Y}
		f.Text = label.Text
		f.Height = label.Height
		f.Align1 = label.Align1
		f.Align2 = label.Align2
		f.Rotation = utils.LabelRotation(m, r.rotation, anchor, label.Rotation)
	}

	r.features = append(r.features, f)
}

// lineType BYLAYER 或缺省时取图层线型
func (r *resolver) lineType(base *entities.BaseEntity, layer *Layer) string {
	name := base.LineTypeName
	if name == "" || strings.EqualFold(name, "BYLAYER") || strings.EqualFold(name, "BYBLOCK") {
		name = layer.LineType
	}
	return r.doc.FindLineType(name).Name
}
