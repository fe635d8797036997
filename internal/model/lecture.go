package model

// Lecture 渲染后的讲义页面数据
type Lecture struct {
	File    string `json:"file"`
	Title   string `json:"title"`
	Content string `json:"content"` // 渲染后的 HTML
}
