package dxf

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/zooyer/dxfgeo/core"
	"github.com/zooyer/dxfgeo/entities"
)

type Block struct {
	Name     string
	Layer    string
	Flags    int
	Base     core.Point
	Scale    core.Point
	Entities []entities.Entity
}

// Document 一张图纸的全部内容：表、块定义、顶层实体与头部变量
// 名称查找不区分大小写，找不到时返回可用的默认对象
type Document struct {
	Header    Header
	Layers    map[string]*Layer
	LineTypes map[string]*LineType
	Blocks    map[string]*Block
	DimStyles map[string]*DimStyle
	Entities  []entities.Entity

	references []entities.BlockReference
	logger     *log.Logger
}

func newDocument(logger *log.Logger) *Document {
	if logger == nil {
		logger = log.Default()
	}
	return &Document{
		Layers:    make(map[string]*Layer),
		LineTypes: make(map[string]*LineType),
		Blocks:    make(map[string]*Block),
		DimStyles: make(map[string]*DimStyle),
		Entities:  make([]entities.Entity, 0, 1024),
		logger:    logger,
	}
}

// FindLayer 按名称查找图层，不存在时返回同名的默认图层
func (d *Document) FindLayer(name string) *Layer {
	if l, ok := d.Layers[strings.ToUpper(name)]; ok {
		return l
	}
	if name == "" {
		name = DefaultLayerName
	}
	return &Layer{Name: name, Color: DefaultColor}
}

// FindLineType 按名称查找线型，不存在时返回同名的连续线型
func (d *Document) FindLineType(name string) *LineType {
	if lt, ok := d.LineTypes[strings.ToUpper(name)]; ok {
		return lt
	}
	if name == "" {
		name = DefaultLineTypeName
	}
	return &LineType{Name: name}
}

// FindBlock 按名称查找块定义，不存在时返回空块
func (d *Document) FindBlock(name string) *Block {
	if b, ok := d.Blocks[strings.ToUpper(name)]; ok {
		return b
	}
	return &Block{Name: name, Scale: core.Point{X: 1, Y: 1, Z: 1}}
}

// DimStyle 按名称查找标注样式
func (d *Document) DimStyle(name string) *DimStyle {
	if s, ok := d.DimStyles[strings.ToUpper(name)]; ok {
		return s
	}
	return &DimStyle{Name: strings.ToUpper(name), Scale: 1}
}

// References 解析过程中遇到的块参照（INSERT/DIMENSION），包括块内的
func (d *Document) References() []entities.BlockReference {
	return d.references
}

// ErrorGeometry 无法计算几何的实体使用的空几何集合
func ErrorGeometry() orb.Geometry {
	return orb.Collection{}
}

// add 把实体加入列表；未知类型或空文字被丢弃
func (d *Document) add(list *[]entities.Entity, ent entities.Entity) {
	if entities.Skipped(ent) {
		d.logger.Debug("skip entity", "type", ent.Type(), "registered", entities.Registered(ent.Type()))
		return
	}
	if ref, ok := ent.(entities.BlockReference); ok {
		d.references = append(d.references, ref)
	}
	*list = append(*list, ent)
}

func (d *Document) parseBlocks(p *entities.Parser) error {
	scanner := p.Scanner()
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code != 0 {
			continue
		}
		switch strings.ToUpper(tag.AsString()) {
		case "ENDSEC":
			return nil
		case "EOF":
			scanner.Back()
			return nil
		case "BLOCK":
			if err := d.parseBlock(p); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func (d *Document) parseBlock(p *entities.Parser) error {
	block := &Block{Scale: core.Point{X: 1, Y: 1, Z: 1}, Entities: []entities.Entity{}}
	err := p.Fields(nil, func(t core.Tag) {
		switch t.GroupCode() {
		case core.Name, core.TextOrName2:
			if block.Name == "" {
				block.Name = t.AsString()
			}
		case core.LayerName:
			block.Layer = t.AsString()
		case core.Int1:
			block.Flags = p.Short(t)
		case core.X1:
			block.Base.X = p.Float(t)
		case core.Y1:
			block.Base.Y = p.Float(t)
		case core.Z1:
			block.Base.Z = p.Float(t)
		case core.Double2:
			block.Scale.X = p.Float(t)
		case core.Double3:
			block.Scale.Y = p.Float(t)
		case core.Double4:
			block.Scale.Z = p.Float(t)
		}
	})
	if err != nil {
		return err
	}

	scanner := p.Scanner()
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code != 0 {
			continue
		}
		typ := strings.ToUpper(tag.AsString())
		if typ == "ENDBLK" {
			if _, err := entities.Read(p, typ); err != nil {
				return err
			}
			break
		}
		if typ == "ENDSEC" || typ == "BLOCK" || typ == "EOF" {
			// 缺少 ENDBLK
			scanner.Back()
			break
		}
		ent, err := entities.Read(p, typ)
		if err != nil {
			return err
		}
		d.add(&block.Entities, ent)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	d.Blocks[strings.ToUpper(block.Name)] = block
	return nil
}

func (d *Document) parseEntities(p *entities.Parser) error {
	scanner := p.Scanner()
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code != 0 {
			continue
		}
		typ := strings.ToUpper(tag.AsString())
		switch typ {
		case "ENDSEC":
			return nil
		case "EOF":
			scanner.Back()
			return nil
		}
		ent, err := entities.Read(p, typ)
		if err != nil {
			return err
		}
		d.add(&d.Entities, ent)
	}
	return scanner.Err()
}

func skipSection(scanner *core.Scanner) error {
	for scanner.Next() {
		if scanner.LastTag.Is(0, "ENDSEC") {
			return nil
		}
	}
	return scanner.Err()
}

// OpenDocument 解析本地 DXF 文件，不做块展开
func OpenDocument(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (*Document, error) {
	return LoadWithLogger(reader, nil)
}

// LoadWithLogger 解析 DXF 文本；logger 为空时使用默认 logger
func LoadWithLogger(reader io.Reader, logger *log.Logger) (*Document, error) {
	var (
		scanner  = core.NewScanner(reader)
		parser   = entities.NewParser(scanner)
		document = newDocument(logger)
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Is(0, "EOF") {
			break
		}
		if !tag.Is(0, "SECTION") {
			continue
		}
		if !scanner.Next() {
			break
		}

		var (
			err         error
			sectionName = strings.ToUpper(scanner.LastTag.AsString())
		)
		switch sectionName {
		case "HEADER":
			err = document.parseHeader(scanner)
		case "TABLES":
			err = document.parseTables(parser)
		case "BLOCKS":
			err = document.parseBlocks(parser)
		case "ENTITIES":
			err = document.parseEntities(parser)
		default:
			document.logger.Debug("skip section", "name", sectionName)
			err = skipSection(scanner)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	document.logger.Debug("document loaded",
		"layers", len(document.Layers), "blocks", len(document.Blocks), "entities", len(document.Entities))
	return document, nil
}
