package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Content   ContentConfig   `mapstructure:"content"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// ContentConfig 内容目录配置：讲义、测试题和答案文件均为本地 Markdown/JSON 文件
type ContentConfig struct {
	BaseDir     string `mapstructure:"base_dir"`     // 文档路径的根目录（导航中的相对路径以此为基准）
	DocsDir     string `mapstructure:"docs_dir"`     // 讲义目录（phaseNN_xxx 子目录）
	ExamplesDir string `mapstructure:"examples_dir"` // 示例目录（phaseNN_xxx/quizzes 子目录）
	StaticDir   string `mapstructure:"static_dir"`   // 前端静态资源
	AnswersFile string `mapstructure:"answers_file"` // 答案存储文件（JSON）
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LANGGRAPH_STUDY")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Content
	viper.BindEnv("content.base_dir", "CONTENT_BASE_DIR")
	viper.BindEnv("content.docs_dir", "CONTENT_DOCS_DIR")
	viper.BindEnv("content.examples_dir", "CONTENT_EXAMPLES_DIR")
	viper.BindEnv("content.static_dir", "CONTENT_STATIC_DIR")
	viper.BindEnv("content.answers_file", "CONTENT_ANSWERS_FILE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 未配置的目录按原项目布局推导
	if cfg.Content.DocsDir == "" {
		cfg.Content.DocsDir = filepath.Join(cfg.Content.BaseDir, "docs")
	}
	if cfg.Content.ExamplesDir == "" {
		cfg.Content.ExamplesDir = filepath.Join(cfg.Content.BaseDir, "examples")
	}
	if cfg.Content.AnswersFile == "" {
		cfg.Content.AnswersFile = filepath.Join(cfg.Content.ExamplesDir, "phase01_basics", "quizzes", "answers.json")
	}

	if dir := filepath.Dir(cfg.Content.AnswersFile); dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		}
	}

	return &cfg, nil
}
