package core

import (
	"errors"
	"fmt"
)

// ErrEndOfInput 输入流正常耗尽，调用方用它结束读取循环
var ErrEndOfInput = errors.New("dxf: end of input")

// ParseError 组码行不是整数、流读取失败或标签对被截断
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dxf: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("dxf: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError 数值型组码的值无法转换
type FormatError struct {
	Line  int
	Code  int
	Value string
	Kind  string // float / int16 / int32
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dxf: line %d: group code %d: invalid %s value %q", e.Line, e.Code, e.Kind, e.Value)
}
