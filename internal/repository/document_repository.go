package repository

import (
	"os"

	"langgraph_study_backend/internal/util"
)

// DocumentRepository 以内容根目录为界读取 Markdown 文档
type DocumentRepository struct {
	BaseDir string
}

func NewDocumentRepository(baseDir string) *DocumentRepository {
	return &DocumentRepository{BaseDir: baseDir}
}

// Resolve 把导航中的相对路径解析为磁盘路径，越界路径报错
func (r *DocumentRepository) Resolve(rel string) (string, error) {
	return util.SafeJoin(r.BaseDir, rel)
}

// Exists 判断文档是否存在且是普通文件
func (r *DocumentRepository) Exists(rel string) bool {
	full, err := r.Resolve(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}

// Read 读取文档全文，不存在时返回 util.ErrDocumentNotFound
func (r *DocumentRepository) Read(rel string) (string, error) {
	full, err := r.Resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", util.ErrDocumentNotFound
		}
		return "", err
	}
	return string(data), nil
}
