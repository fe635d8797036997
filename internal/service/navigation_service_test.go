package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"langgraph_study_backend/internal/config"
	"langgraph_study_backend/internal/service"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newNavigationFixture(t *testing.T) (*service.NavigationService, string) {
	t.Helper()
	base := t.TempDir()

	cfg := &config.Config{}
	cfg.Content.BaseDir = base
	cfg.Content.DocsDir = filepath.Join(base, "docs")
	cfg.Content.ExamplesDir = filepath.Join(base, "examples")
	return service.NewNavigationService(cfg), base
}

func TestBuildNavigationLectures(t *testing.T) {
	nav, base := newNavigationFixture(t)

	writeFile(t, filepath.Join(base, "docs/phase01_basics/01_intro.md"), "# 图结构入门\n\n正文。\n")
	writeFile(t, filepath.Join(base, "docs/phase01_basics/02_state.md"), "没有一级标题的文档\n")
	writeFile(t, filepath.Join(base, "docs/phase01_basics/README.md"), "# 阶段说明\n")
	// 没有讲义文件的阶段整组省略
	if err := os.MkdirAll(filepath.Join(base, "docs/phase02_advanced"), 0755); err != nil {
		t.Fatal(err)
	}

	result := nav.BuildNavigation()

	if len(result.Lectures) != 1 {
		t.Fatalf("expected 1 lecture group, got %d", len(result.Lectures))
	}
	group := result.Lectures[0]
	if group.Phase != "第01阶段：Basics" {
		t.Errorf("unexpected phase label: %q", group.Phase)
	}
	if len(group.Items) != 2 {
		t.Fatalf("README.md must be excluded, got %d items", len(group.Items))
	}
	if group.Items[0].Title != "图结构入门" {
		t.Errorf("title should come from the first level-1 heading, got %q", group.Items[0].Title)
	}
	if group.Items[0].File != "docs/phase01_basics/01_intro.md" {
		t.Errorf("unexpected file path: %q", group.Items[0].File)
	}
	// 没有一级标题时用文件名
	if group.Items[1].Title != "02_state" {
		t.Errorf("expected filename fallback, got %q", group.Items[1].Title)
	}
}

func TestBuildNavigationQuizzes(t *testing.T) {
	nav, base := newNavigationFixture(t)

	quizDoc := "### 题目1：第一题？\nA. 甲\nB. 乙\n\n### 题目2：第二题？\nA. 甲\nB. 乙\n"
	writeFile(t, filepath.Join(base, "examples/phase01_basics/quizzes/05_quiz_set1_basics.md"), quizDoc)
	// quizzes 子目录不存在的阶段跳过
	writeFile(t, filepath.Join(base, "examples/phase02_advanced/demos/01_demo.md"), "# demo\n")

	result := nav.BuildNavigation()

	if len(result.Quizzes) != 1 {
		t.Fatalf("expected 1 quiz group, got %d", len(result.Quizzes))
	}
	group := result.Quizzes[0]
	if group.Phase != "第01阶段：Basics" {
		t.Errorf("unexpected phase label: %q", group.Phase)
	}
	if len(group.Items) != 1 {
		t.Fatalf("expected 1 quiz, got %d", len(group.Items))
	}
	item := group.Items[0]
	if item.Title != "basics（set1）" {
		t.Errorf("unexpected quiz title: %q", item.Title)
	}
	if item.Count != 2 {
		t.Errorf("expected 2 questions, got %d", item.Count)
	}
	if item.File != "examples/phase01_basics/quizzes/05_quiz_set1_basics.md" {
		t.Errorf("unexpected file path: %q", item.File)
	}
}

func TestBuildNavigationEmptyTree(t *testing.T) {
	nav, _ := newNavigationFixture(t)

	result := nav.BuildNavigation()
	if len(result.Lectures) != 0 || len(result.Quizzes) != 0 {
		t.Errorf("expected empty navigation, got %+v", result)
	}
}
