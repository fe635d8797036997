package model

// 题型
const (
	QuestionTypeChoice = "choice" // 选择题（A/B/C/D选项）
	QuestionTypeOpen   = "open"   // 开放性问题（文本答案）
)

// Question 单个题目，解析自测试题 Markdown 文件
type Question struct {
	ID            string            `json:"id"`     // q1、q2……按解析顺序编号
	Number        int               `json:"number"` // 与 ID 中的序号一致
	Type          string            `json:"type"`
	Text          string            `json:"text"`
	Options       map[string]string `json:"options"` // 选择题选项，开放题为空
	CorrectAnswer string            `json:"correct_answer,omitempty"`
	Explanation   string            `json:"explanation"`
}

// Quiz 一套测试题及其展示标题
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}
