package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"langgraph_study_backend/internal/service"
	"langgraph_study_backend/internal/util"
)

// QuizAPIController 前端 JS 调用的数据接口
type QuizAPIController struct {
	Navigation *service.NavigationService
	Quizzes    *service.QuizService
}

func NewQuizAPIController(nav *service.NavigationService, quizzes *service.QuizService) *QuizAPIController {
	return &QuizAPIController{Navigation: nav, Quizzes: quizzes}
}

// SaveAnswerRequest 实时保存单个答案
type SaveAnswerRequest struct {
	QuizFile   string `json:"quiz_file" binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// SubmitRequest 提交整卷答案
type SubmitRequest struct {
	QuizFile string            `json:"quiz_file" binding:"required"`
	Answers  map[string]string `json:"answers"`
}

// @Summary 获取导航数据（动态）
// @Tags 测试题
// @Produce json
// @Success 200 {object} model.Navigation
// @Router /api/navigation [get]
func (c *QuizAPIController) GetNavigation(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Navigation.BuildNavigation())
}

// @Summary 获取某套测试题的已保存答案
// @Tags 测试题
// @Produce json
// @Param filepath path string true "测试题文件路径"
// @Success 200 {object} map[string]string
// @Router /api/answers/{filepath} [get]
func (c *QuizAPIController) GetAnswers(ctx *gin.Context) {
	rel := strings.TrimPrefix(ctx.Param("filepath"), "/")

	saved, err := c.Quizzes.SavedAnswers(rel)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

// @Summary 实时保存单个答案
// @Tags 测试题
// @Accept json
// @Produce json
// @Param body body SaveAnswerRequest true "答案信息"
// @Success 200 {object} map[string]string
// @Failure 400 {object} util.Response
// @Router /api/save [post]
func (c *QuizAPIController) SaveAnswer(ctx *gin.Context) {
	var req SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "缺少必要参数")
		return
	}

	savedAt, err := c.Quizzes.SaveAnswer(req.QuizFile, req.QuestionID, req.Answer)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"saved_at": savedAt,
	})
}

// @Summary 提交答案，返回判分结果
// @Tags 测试题
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "提交的答案"
// @Success 200 {object} model.SubmissionResult
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/submit [post]
func (c *QuizAPIController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "缺少测试题文件")
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}

	result, err := c.Quizzes.Submit(req.QuizFile, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) || errors.Is(err, util.ErrPathOutsideRoot) {
			util.Error(ctx, http.StatusNotFound, "文件不存在")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
