package service

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"langgraph_study_backend/internal/config"
	"langgraph_study_backend/internal/model"
)

var phaseDirRe = regexp.MustCompile(`^phase(\d+)_(.+)$`)

var titleCaser = cases.Title(language.Und)

// NavigationService 扫描讲义和测试题目录构建导航树。
// 每次调用都重新扫描文件系统，不做任何缓存。
type NavigationService struct {
	baseDir     string
	docsDir     string
	examplesDir string
}

func NewNavigationService(cfg *config.Config) *NavigationService {
	return &NavigationService{
		baseDir:     cfg.Content.BaseDir,
		docsDir:     cfg.Content.DocsDir,
		examplesDir: cfg.Content.ExamplesDir,
	}
}

// BuildNavigation 构建动态导航树
func (s *NavigationService) BuildNavigation() model.Navigation {
	nav := model.Navigation{
		Lectures: []model.LectureGroup{},
		Quizzes:  []model.QuizGroup{},
	}

	// 扫描讲义
	for _, phaseDir := range listPhaseDirs(s.docsDir) {
		phaseName := phaseLabel(phaseDir)
		var lectures []model.LectureEntry

		for _, mdFile := range listMarkdownFiles(filepath.Join(s.docsDir, phaseDir)) {
			if mdFile == "README.md" {
				continue
			}

			full := filepath.Join(s.docsDir, phaseDir, mdFile)
			stem := strings.TrimSuffix(mdFile, filepath.Ext(mdFile))
			title := stem
			if content, err := os.ReadFile(full); err == nil {
				title = ExtractDocTitle(string(content), stem)
			}

			lectures = append(lectures, model.LectureEntry{
				File:  s.relativeTo(full),
				Title: title,
				Phase: phaseName,
			})
		}

		if len(lectures) > 0 {
			nav.Lectures = append(nav.Lectures, model.LectureGroup{
				Phase: phaseName,
				Items: lectures,
			})
		}
	}

	// 扫描测试题
	for _, phaseDir := range listPhaseDirs(s.examplesDir) {
		phaseName := phaseLabel(phaseDir)
		quizzesDir := filepath.Join(s.examplesDir, phaseDir, "quizzes")
		if info, err := os.Stat(quizzesDir); err != nil || !info.IsDir() {
			continue
		}

		var quizzes []model.QuizEntry
		for _, mdFile := range listMarkdownFiles(quizzesDir) {
			full := filepath.Join(quizzesDir, mdFile)
			stem := strings.TrimSuffix(mdFile, filepath.Ext(mdFile))

			count := 0
			if content, err := os.ReadFile(full); err == nil {
				count = CountQuestions(string(content))
			}

			quizzes = append(quizzes, model.QuizEntry{
				File:  s.relativeTo(full),
				Title: QuizTitleFromStem(stem),
				Count: count,
				Phase: phaseName,
			})
		}

		if len(quizzes) > 0 {
			nav.Quizzes = append(nav.Quizzes, model.QuizGroup{
				Phase: phaseName,
				Items: quizzes,
			})
		}
	}

	return nav
}

func (s *NavigationService) relativeTo(full string) string {
	rel, err := filepath.Rel(s.baseDir, full)
	if err != nil {
		return filepath.ToSlash(full)
	}
	return filepath.ToSlash(rel)
}

// phaseLabel 从目录名提取阶段名称：phase01_basics -> 第01阶段：Basics
func phaseLabel(dirName string) string {
	m := phaseDirRe.FindStringSubmatch(dirName)
	if m == nil {
		return dirName
	}
	slug := titleCaser.String(strings.ReplaceAll(m[2], "_", " "))
	return "第" + m[1] + "阶段：" + slug
}

// listPhaseDirs 名称排序的 phase* 子目录
func listPhaseDirs(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "phase") {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs
}

// listMarkdownFiles 名称排序的 *.md 文件
func listMarkdownFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			files = append(files, e.Name())
		}
	}
	return files
}
