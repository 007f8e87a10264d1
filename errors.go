package dxf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedOperation 数据源只读，任何写操作都返回该错误
	ErrUnsupportedOperation = errors.New("dxf: data store is read-only")
	// ErrNoSuchElement 要素序列已耗尽
	ErrNoSuchElement = errors.New("dxf: no more features")
)

// CyclicBlockReferenceError 块参照在展开路径上引用了自身
type CyclicBlockReferenceError struct {
	Path []string
}

func (e *CyclicBlockReferenceError) Error() string {
	return fmt.Sprintf("dxf: cyclic block reference: %s", strings.Join(e.Path, " -> "))
}
