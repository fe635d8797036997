// @title LangGraph 学习平台 API
// @version 1.0
// @description LangGraph 学习平台的后端服务：讲义浏览、测试题答题与评分。

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
package main

import (
	"flag"
	"log"
	"path/filepath"

	"langgraph_study_backend/internal/app"
	"langgraph_study_backend/internal/config"
	"langgraph_study_backend/pkg/configwatcher"
	"langgraph_study_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig(filepath.Join(*configPath, "config.yaml"), application.ApplyConfig)

	application.Run()
}
