// Package docs 提供 Swagger 文档（手工维护，结构与 swag init 生成物一致）
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "summary": "首页导航",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/quizzes": {
            "get": {
                "produces": ["application/json"],
                "summary": "测试题列表",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/lecture/{filepath}": {
            "get": {
                "produces": ["application/json"],
                "summary": "讲义页面",
                "parameters": [
                    {"type": "string", "name": "filepath", "in": "path", "required": true, "description": "讲义文件路径"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "文件不存在"}
                }
            }
        },
        "/quiz/{filepath}": {
            "get": {
                "produces": ["application/json"],
                "summary": "测试题页面",
                "parameters": [
                    {"type": "string", "name": "filepath", "in": "path", "required": true, "description": "测试题文件路径"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "文件不存在"}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/navigation": {
            "get": {
                "produces": ["application/json"],
                "summary": "获取导航数据（动态）",
                "tags": ["测试题"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/answers/{filepath}": {
            "get": {
                "produces": ["application/json"],
                "summary": "获取某套测试题的已保存答案",
                "tags": ["测试题"],
                "parameters": [
                    {"type": "string", "name": "filepath", "in": "path", "required": true, "description": "测试题文件路径"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/save": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "实时保存单个答案",
                "tags": ["测试题"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "缺少必要参数"}
                }
            }
        },
        "/api/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "提交答案，返回判分结果",
                "tags": ["测试题"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "缺少测试题文件"},
                    "404": {"description": "文件不存在"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LangGraph 学习平台 API",
	Description:      "LangGraph 学习平台的后端服务：讲义浏览、测试题答题与评分。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
