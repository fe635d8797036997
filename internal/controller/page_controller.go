package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"langgraph_study_backend/internal/service"
	"langgraph_study_backend/internal/util"
)

// PageController 页面数据接口：首页、讲义、测试题。
// 返回 JSON 数据，由前端静态页面渲染。
type PageController struct {
	Navigation *service.NavigationService
	Lectures   *service.LectureService
	Quizzes    *service.QuizService
}

func NewPageController(nav *service.NavigationService, lectures *service.LectureService, quizzes *service.QuizService) *PageController {
	return &PageController{Navigation: nav, Lectures: lectures, Quizzes: quizzes}
}

// @Summary 首页导航
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (c *PageController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"nav": c.Navigation.BuildNavigation(),
	})
}

// @Summary 讲义页面
// @Produce json
// @Param filepath path string true "讲义文件路径"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "文件不存在"
// @Router /lecture/{filepath} [get]
func (c *PageController) Lecture(ctx *gin.Context) {
	rel := strings.TrimPrefix(ctx.Param("filepath"), "/")

	lecture, err := c.Lectures.Render(rel)
	if err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) || errors.Is(err, util.ErrPathOutsideRoot) {
			ctx.String(http.StatusNotFound, "文件不存在")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"title":        lecture.Title,
		"content":      lecture.Content,
		"nav":          c.Navigation.BuildNavigation(),
		"current_file": rel,
	})
}

// @Summary 测试题列表
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /quizzes [get]
func (c *PageController) QuizList(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"nav": c.Navigation.BuildNavigation(),
	})
}

// @Summary 测试题页面
// @Description 默认一题一页模式；路径以 /all 结尾时为全部显示模式
// @Produce json
// @Param filepath path string true "测试题文件路径"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "文件不存在"
// @Router /quiz/{filepath} [get]
func (c *PageController) Quiz(ctx *gin.Context) {
	rel := strings.TrimPrefix(ctx.Param("filepath"), "/")

	// gin 的通配路由不支持通配段后再接字面量，/all 后缀在这里剥掉
	mode := "single"
	if strings.HasSuffix(rel, "/all") {
		rel = strings.TrimSuffix(rel, "/all")
		mode = "all"
	}

	quiz, err := c.Quizzes.LoadQuiz(rel)
	if err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) || errors.Is(err, util.ErrPathOutsideRoot) {
			ctx.String(http.StatusNotFound, "文件不存在")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	savedAnswers, err := c.Quizzes.SavedAnswers(rel)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"quiz_file":     rel,
		"mode":          mode,
		"quiz":          quiz,
		"saved_answers": savedAnswers,
		"nav":           c.Navigation.BuildNavigation(),
	})
}
