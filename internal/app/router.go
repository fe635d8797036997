package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"langgraph_study_backend/docs"
	"langgraph_study_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 页面数据
	router.GET("/", c.page.Home)
	router.GET("/quizzes", c.page.QuizList)
	router.GET("/lecture/*filepath", c.page.Lecture)
	// /quiz/<path> 与 /quiz/<path>/all 共用一条通配路由，/all 在处理器里剥离
	router.GET("/quiz/*filepath", c.page.Quiz)

	// 前端 JS 调用的 API
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/navigation", c.api.GetNavigation)
		api.GET("/answers/*filepath", c.api.GetAnswers)
		api.POST("/save", c.api.SaveAnswer)
		api.POST("/submit", c.api.SubmitQuiz)
	}
}
