package model

// LectureEntry 导航中的一篇讲义
type LectureEntry struct {
	File  string `json:"file"` // 相对内容根目录的路径
	Title string `json:"title"`
	Phase string `json:"phase"`
}

// QuizEntry 导航中的一套测试题
type QuizEntry struct {
	File  string `json:"file"`
	Title string `json:"title"`
	Count int    `json:"count"` // 题目数量
	Phase string `json:"phase"`
}

// LectureGroup 按阶段分组的讲义
type LectureGroup struct {
	Phase string         `json:"phase"`
	Items []LectureEntry `json:"items"`
}

// QuizGroup 按阶段分组的测试题
type QuizGroup struct {
	Phase string      `json:"phase"`
	Items []QuizEntry `json:"items"`
}

// Navigation 每次请求重新扫描文件树得到的导航结构
type Navigation struct {
	Lectures []LectureGroup `json:"lectures"`
	Quizzes  []QuizGroup    `json:"quizzes"`
}
