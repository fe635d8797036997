package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"langgraph_study_backend/internal/config"
	"langgraph_study_backend/internal/controller"
	"langgraph_study_backend/internal/repository"
	"langgraph_study_backend/internal/service"
	"langgraph_study_backend/pkg/logger"
	"langgraph_study_backend/pkg/monitoring"
	"langgraph_study_backend/pkg/security"
	"langgraph_study_backend/pkg/tracing"
)

// App 显式持有全部依赖，启动时构建一次后传给各处理器，不使用全局可变状态
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	document *repository.DocumentRepository
	answer   *repository.AnswerRepository
}

type services struct {
	navigation *service.NavigationService
	lecture    *service.LectureService
	quiz       *service.QuizService
}

type controllers struct {
	page   *controller.PageController
	api    *controller.QuizAPIController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新回调入口
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	return &repositories{
		document: repository.NewDocumentRepository(cfg.Content.BaseDir),
		answer:   repository.NewAnswerRepository(cfg.Content.AnswersFile),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		navigation: service.NewNavigationService(cfg),
		lecture:    service.NewLectureService(repos.document),
		quiz:       service.NewQuizService(repos.document, repos.answer),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		page:   controller.NewPageController(s.navigation, s.lecture, s.quiz),
		api:    controller.NewQuizAPIController(s.navigation, s.quiz),
		health: controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	repos := app.initRepositories(cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("langgraph-study-web", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	if cfg.Content.StaticDir != "" {
		router.Static("/static", cfg.Content.StaticDir)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
