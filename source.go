package dxf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zipMagic  = []byte("PK\x03\x04")
)

// decompress 按文件头识别 gzip/zip 压缩，zip 取第一个 .dxf 条目（没有则取第一个文件）
// 返回的 ReadCloser 只关闭解压层，原始流由调用方关闭
func decompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case bytes.HasPrefix(head, zipMagic):
		data, err := io.ReadAll(br)
		if err != nil {
			return nil, err
		}
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		var entry *zip.File
		for _, f := range zr.File {
			if strings.HasSuffix(f.Name, "/") {
				continue
			}
			if entry == nil || (!strings.EqualFold(path.Ext(entry.Name), ".dxf") && strings.EqualFold(path.Ext(f.Name), ".dxf")) {
				entry = f
			}
		}
		if entry == nil {
			return nil, fmt.Errorf("dxf: zip archive has no entries")
		}
		return entry.Open()
	}
	return io.NopCloser(br), nil
}

// BaseName 由文件名得到要素类型名前缀：去掉 .dxf/.dxf.gz/.dxf.zip 扩展名，空格替换为下划线
func BaseName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	lower := strings.ToLower(base)
	for _, ext := range []string{".dxf.gz", ".dxf.zip", ".dxf", ".gz", ".zip"} {
		if strings.HasSuffix(lower, ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." || base == "/" {
		return "dxf"
	}
	return base
}
