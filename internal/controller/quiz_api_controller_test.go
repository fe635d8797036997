package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"langgraph_study_backend/internal/config"
	"langgraph_study_backend/internal/controller"
	"langgraph_study_backend/internal/repository"
	"langgraph_study_backend/internal/service"
)

const quizDoc = `# 基础知识测试

### 题目1：2+2等于几？
A. 3
B. 4
C. 5
**正确答案**：B
**解析**：基本算术。
`

const quizRel = "examples/phase01_basics/quizzes/05_quiz_set1_basics.md"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, filepath.Dir(quizRel)), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, quizRel), []byte(quizDoc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(base, "docs/phase01_basics"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "docs/phase01_basics/01_intro.md"), []byte("# 图结构入门\n\n正文。\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.Content.BaseDir = base
	cfg.Content.DocsDir = filepath.Join(base, "docs")
	cfg.Content.ExamplesDir = filepath.Join(base, "examples")
	cfg.Content.AnswersFile = filepath.Join(base, "examples/phase01_basics/quizzes/answers.json")

	docs := repository.NewDocumentRepository(cfg.Content.BaseDir)
	answers := repository.NewAnswerRepository(cfg.Content.AnswersFile)

	navSvc := service.NewNavigationService(cfg)
	lectureSvc := service.NewLectureService(docs)
	quizSvc := service.NewQuizService(docs, answers)

	page := controller.NewPageController(navSvc, lectureSvc, quizSvc)
	api := controller.NewQuizAPIController(navSvc, quizSvc)

	router := gin.New()
	router.GET("/", page.Home)
	router.GET("/quizzes", page.QuizList)
	router.GET("/lecture/*filepath", page.Lecture)
	router.GET("/quiz/*filepath", page.Quiz)
	router.GET("/api/navigation", api.GetNavigation)
	router.GET("/api/answers/*filepath", api.GetAnswers)
	router.POST("/api/save", api.SaveAnswer)
	router.POST("/api/submit", api.SubmitQuiz)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetNavigation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/navigation", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var nav struct {
		Lectures []struct {
			Phase string `json:"phase"`
		} `json:"lectures"`
		Quizzes []struct {
			Items []struct {
				Count int `json:"count"`
			} `json:"items"`
		} `json:"quizzes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &nav); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(nav.Lectures) != 1 || nav.Lectures[0].Phase != "第01阶段：Basics" {
		t.Errorf("unexpected lectures: %+v", nav.Lectures)
	}
	if len(nav.Quizzes) != 1 || nav.Quizzes[0].Items[0].Count != 1 {
		t.Errorf("unexpected quizzes: %+v", nav.Quizzes)
	}
}

func TestQuizPage(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/quiz/"+quizRel, "")
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
		}
		var payload struct {
			QuizFile string `json:"quiz_file"`
			Mode     string `json:"mode"`
			Quiz     struct {
				Questions []struct {
					ID string `json:"id"`
				} `json:"questions"`
			} `json:"quiz"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if payload.Mode != "single" || payload.QuizFile != quizRel {
			t.Errorf("unexpected payload: %+v", payload)
		}
		if len(payload.Quiz.Questions) != 1 || payload.Quiz.Questions[0].ID != "q1" {
			t.Errorf("unexpected questions: %+v", payload.Quiz.Questions)
		}
	})

	t.Run("AllMode", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/quiz/"+quizRel+"/all", "")
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"mode":"all"`) {
			t.Errorf("expected all mode, body: %s", w.Body.String())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/quiz/examples/no_such.md", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w.Body.String() != "文件不存在" {
			t.Errorf("expected plain-text body, got %q", w.Body.String())
		}
	})
}

func TestLecturePage(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/lecture/docs/phase01_basics/01_intro.md", "")
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		var payload struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if payload.Title != "图结构入门" {
			t.Errorf("unexpected title: %q", payload.Title)
		}
		if !strings.Contains(payload.Content, "<h1") {
			t.Errorf("content should be rendered HTML, got %q", payload.Content)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/lecture/docs/missing.md", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("TraversalRejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/lecture/../../etc/passwd", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for traversal, got %d", w.Code)
		}
	})
}

func TestSaveAnswer(t *testing.T) {
	router := newTestRouter(t)

	t.Run("OK", func(t *testing.T) {
		body := `{"quiz_file":"` + quizRel + `","question_id":"q1","answer":"B"}`
		w := doJSON(t, router, http.MethodPost, "/api/save", body)
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Status  string `json:"status"`
			SavedAt string `json:"saved_at"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if resp.Status != "ok" || resp.SavedAt == "" {
			t.Errorf("unexpected response: %+v", resp)
		}

		// 保存的答案能再读出来
		w = doJSON(t, router, http.MethodGet, "/api/answers/"+quizRel, "")
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		var answers map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &answers); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if answers["q1"] != "B" {
			t.Errorf("unexpected answers: %v", answers)
		}
	})

	t.Run("MissingField", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/save", `{"quiz_file":"a.md","question_id":"q1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGetAnswersEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/answers/never_touched.md", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "{}" {
		t.Errorf("expected empty mapping, got %s", w.Body.String())
	}
}

func TestSubmit(t *testing.T) {
	router := newTestRouter(t)

	submit := func(t *testing.T, answers string) (int, string) {
		t.Helper()
		body := `{"quiz_file":"` + quizRel + `","answers":` + answers + `}`
		w := doJSON(t, router, http.MethodPost, "/api/submit", body)
		return w.Code, w.Body.String()
	}

	t.Run("Correct", func(t *testing.T) {
		code, body := submit(t, `{"q1":"B"}`)
		if code != http.StatusOK {
			t.Fatalf("unexpected status: %d, body: %s", code, body)
		}
		var resp struct {
			Results []struct {
				IsCorrect bool `json:"is_correct"`
			} `json:"results"`
			Score struct {
				Correct    int     `json:"correct"`
				Total      int     `json:"total"`
				Percentage float64 `json:"percentage"`
			} `json:"score"`
		}
		if err := json.Unmarshal([]byte(body), &resp); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if !resp.Results[0].IsCorrect {
			t.Error("q1=B should be correct")
		}
		if resp.Score.Correct != 1 || resp.Score.Total != 1 || resp.Score.Percentage != 100.0 {
			t.Errorf("unexpected score: %+v", resp.Score)
		}
	})

	t.Run("Wrong", func(t *testing.T) {
		code, body := submit(t, `{"q1":"A"}`)
		if code != http.StatusOK {
			t.Fatalf("unexpected status: %d", code)
		}
		if !strings.Contains(body, `"percentage":0`) {
			t.Errorf("expected 0 percentage, body: %s", body)
		}
	})

	t.Run("MissingQuizFile", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/submit", `{"answers":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("QuizNotFound", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/submit", `{"quiz_file":"examples/nope.md"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
