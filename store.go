package dxf

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/zooyer/dxfgeo/entities"
	"github.com/zooyer/dxfgeo/utils"
)

// Query 要素查询条件；Bound 为空表示不过滤
type Query struct {
	TypeName string
	Bound    *orb.Bound
}

func (q *Query) trivial() bool {
	return q == nil || q.Bound == nil
}

// Store 一个 DXF 文档的只读要素数据源
// 首次访问时解析整个文档，之后的读取都在已展开的要素上过滤
type Store struct {
	name   string
	base   string
	open   func() (io.ReadCloser, error)
	opts   Options
	loaded bool

	doc      *Document
	features []*Feature
	bounds   *orb.Bound
	index    *Index
}

// Open 以本地文件创建数据源
func Open(filename string, opts Options) (*Store, error) {
	return newStore(filename, func() (io.ReadCloser, error) {
		return os.Open(filename)
	}, opts)
}

// OpenURL 以 file:// 或 http(s):// 地址创建数据源
func OpenURL(rawURL string, opts Options) (*Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(u.Scheme) {
	case "", "file":
		return Open(u.Path, opts)
	case "http", "https":
		return newStore(u.Path, func() (io.ReadCloser, error) {
			resp, err := http.Get(u.String())
			if err != nil {
				return nil, err
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return nil, fmt.Errorf("dxf: fetch %s: %s", u.Redacted(), resp.Status)
			}
			return resp.Body, nil
		}, opts)
	}
	return nil, fmt.Errorf("dxf: unsupported url scheme %q", u.Scheme)
}

// NewStore 以输入流创建数据源，流被完整读入内存以便重新解析
func NewStore(r io.Reader, name string, opts Options) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newStore(name, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}, opts)
}

func newStore(name string, open func() (io.ReadCloser, error), opts Options) (*Store, error) {
	// 坐标参考系在创建时校验
	if _, err := projection(opts); err != nil {
		return nil, err
	}
	return &Store{
		name: name,
		base: BaseName(name),
		open: open,
		opts: opts,
	}, nil
}

func (s *Store) Name() string { return s.name }

// Reload 丢弃已解析的结果，下一次访问重新解析
func (s *Store) Reload() error {
	s.loaded = false
	s.doc, s.features, s.bounds, s.index = nil, nil, nil, nil
	return s.load()
}

func (s *Store) load() (err error) {
	if s.loaded {
		return nil
	}

	raw, err := s.open()
	if err != nil {
		return err
	}
	defer func() {
		if e := raw.Close(); e != nil && err == nil {
			err = e
		}
	}()

	in, err := decompress(raw)
	if err != nil {
		return fmt.Errorf("dxf: open %s: %w", s.name, err)
	}
	defer func() {
		if e := in.Close(); e != nil && err == nil {
			err = e
		}
	}()

	doc, err := LoadWithLogger(in, s.opts.logger())
	if err != nil {
		return fmt.Errorf("dxf: parse %s: %w", s.name, err)
	}
	features, err := Resolve(doc, s.opts)
	if err != nil {
		return fmt.Errorf("dxf: resolve %s: %w", s.name, err)
	}

	s.doc, s.features = doc, features
	s.bounds, err = s.envelope(doc)
	if err != nil {
		return err
	}
	s.loaded = true
	return nil
}

// envelope 头部范围经全局变换（不含块变换）后的外包矩形
func (s *Store) envelope(doc *Document) (*orb.Bound, error) {
	ext, ok := doc.Header.Extents()
	if !ok {
		return nil, nil
	}
	b := utils.TransformBound(ext, BaseTransform(doc, s.opts))
	if s.opts.Reproject {
		proj, err := projection(s.opts)
		if err != nil {
			return nil, err
		}
		if proj != nil {
			b = project.Bound(b, proj)
		}
	}
	return &b, nil
}

// Document 已解析的文档
func (s *Store) Document() (*Document, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

// TypeName 几何分类对应的要素类型名
func (s *Store) TypeName(kind entities.GeometryType) string {
	return s.base + "_" + kind.String()
}

// TypeNames 文档中出现的几何分类对应的类型名，顺序为点、线、面
func (s *Store) TypeNames() ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	present := make(map[entities.GeometryType]bool)
	for _, f := range s.features {
		present[f.Kind] = true
	}

	var names []string
	for _, kind := range []entities.GeometryType{entities.PointGeometry, entities.LineGeometry, entities.PolygonGeometry} {
		if present[kind] {
			names = append(names, s.TypeName(kind))
		}
	}
	return names, nil
}

// Reader 按类型名读取要素；空串或文档名表示全部要素
func (s *Store) Reader(typeName string) (*FeatureReader, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	if typeName == "" || typeName == s.base {
		return newFeatureReader(s.features, nil), nil
	}
	for _, kind := range []entities.GeometryType{entities.PointGeometry, entities.LineGeometry, entities.PolygonGeometry} {
		if typeName == s.TypeName(kind) {
			return newFeatureReader(s.features, kindFilter(kind)), nil
		}
	}
	return nil, fmt.Errorf("dxf: unknown type name %q", typeName)
}

// Bounds 数据源范围；头部没有范围或带有非平凡过滤条件时返回 nil
func (s *Store) Bounds(q *Query) (*orb.Bound, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	if !q.trivial() || s.bounds == nil {
		return nil, nil
	}
	b := *s.bounds
	return &b, nil
}

// Query 返回与范围相交的要素
func (s *Store) Query(q Query) ([]*Feature, error) {
	r, err := s.Reader(q.TypeName)
	if err != nil {
		return nil, err
	}
	if q.Bound == nil {
		return r.All(), nil
	}

	if s.index == nil {
		s.index = NewIndex(s.features)
	}
	var out []*Feature
	for _, f := range s.index.Search(*q.Bound) {
		if r.filter(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *Store) Append(features ...*Feature) error { return ErrUnsupportedOperation }

func (s *Store) Remove(ids ...string) error { return ErrUnsupportedOperation }

func (s *Store) UpdateSchema(typeName string, schema []Attribute) error {
	return ErrUnsupportedOperation
}
