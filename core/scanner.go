package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Scanner 逐对读取组码/值，支持回退一个标签对
type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	err     error
	line    int
	pushed  bool
	decoder *encoding.Decoder
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// Next 读取下一个标签对；流结束或出错时返回 false，错误通过 Err 获取
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	if s.pushed {
		s.pushed = false
		return true
	}

	// 1. 读取 Code 行，跳过空行
	var codeStr string
	for {
		line, ok, err := s.readLine()
		if err != nil {
			s.err = &ParseError{Line: s.line, Msg: "read group code", Err: err}
			return false
		}
		if !ok {
			return false
		}
		if codeStr = strings.TrimSpace(line); codeStr != "" {
			break
		}
	}
	codeLine := s.line

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = &ParseError{Line: codeLine, Msg: "group code " + strconv.Quote(codeStr) + " is not an integer"}
		return false
	}

	// 2. 读取 Value 行，Value 行缺失说明标签对被截断
	valueLine, ok, err := s.readLine()
	if err != nil {
		s.err = &ParseError{Line: s.line, Msg: "read value", Err: err}
		return false
	}
	if !ok {
		s.err = &ParseError{Line: codeLine, Msg: "missing value for group code " + codeStr, Err: io.ErrUnexpectedEOF}
		return false
	}

	s.LastTag = Tag{Code: code, Value: s.decode(strings.TrimSpace(valueLine)), Line: s.line}
	return true
}

// ReadPair 读取下一个标签对，流正常结束时返回 ErrEndOfInput
func (s *Scanner) ReadPair() (Tag, error) {
	if s.Next() {
		return s.LastTag, nil
	}
	if s.err != nil {
		return Tag{}, s.err
	}
	return Tag{}, ErrEndOfInput
}

// Back 回退最近读取的标签对，下一次 Next 会再次返回它
func (s *Scanner) Back() {
	s.pushed = true
}

func (s *Scanner) Err() error {
	return s.err
}

// Line 当前读到的行号
func (s *Scanner) Line() int {
	return s.line
}

// SetDecoder 设置字符串值的代码页解码器，nil 表示按 UTF-8 处理
func (s *Scanner) SetDecoder(d *encoding.Decoder) {
	s.decoder = d
}

// readLine 读取一行；ok 为 false 表示流已结束且没有剩余内容
func (s *Scanner) readLine() (line string, ok bool, err error) {
	line, err = s.reader.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	s.line++
	if s.line == 1 {
		line = strings.TrimPrefix(line, "\ufeff")
	}
	return line, true, nil
}

func (s *Scanner) decode(v string) string {
	if s.decoder != nil {
		if d, err := s.decoder.String(v); err == nil {
			return d
		}
	}
	if utf8.ValidString(v) {
		return v
	}
	// 老版本图纸未声明代码页时多为西欧编码
	if d, err := charmap.Windows1252.NewDecoder().String(v); err == nil {
		return d
	}
	return v
}
