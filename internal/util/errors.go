package util

import "errors"

var (
	ErrDocumentNotFound = errors.New("文件不存在")
	ErrPathOutsideRoot  = errors.New("path escapes content root")
)
