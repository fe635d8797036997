package util

import (
	"path/filepath"
	"strings"
)

// SafeJoin 将相对路径拼到根目录下，拒绝绝对路径和越界的 ".."
func SafeJoin(root, rel string) (string, error) {
	rel = strings.TrimPrefix(rel, "/")
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", ErrPathOutsideRoot
	}
	return filepath.Join(root, cleaned), nil
}
