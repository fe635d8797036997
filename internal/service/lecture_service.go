package service

import (
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"

	"langgraph_study_backend/internal/model"
	"langgraph_study_backend/internal/repository"
)

// LectureService 读取讲义 Markdown 并渲染为 HTML
type LectureService struct {
	Docs *repository.DocumentRepository
}

func NewLectureService(docs *repository.DocumentRepository) *LectureService {
	return &LectureService{Docs: docs}
}

// Render 渲染一篇讲义，返回标题和 HTML 内容
func (s *LectureService) Render(lecturePath string) (*model.Lecture, error) {
	content, err := s.Docs.Read(lecturePath)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(lecturePath), filepath.Ext(lecturePath))
	html := blackfriday.Run(
		[]byte(content),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	)

	return &model.Lecture{
		File:    lecturePath,
		Title:   ExtractDocTitle(content, stem),
		Content: string(html),
	}, nil
}
