package model

// QuestionResult 单题判分结果
type QuestionResult struct {
	ID            string            `json:"id"`
	Number        int               `json:"number"`
	Type          string            `json:"type"`
	Text          string            `json:"text"`
	Options       map[string]string `json:"options"`
	UserAnswer    string            `json:"user_answer"`
	CorrectAnswer string            `json:"correct_answer"`
	IsCorrect     bool              `json:"is_correct"`
	Explanation   string            `json:"explanation"`
}

// Score 整卷得分汇总
type Score struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"` // 保留一位小数，total 为 0 时为 0
}

// SubmissionResult 一次提交的完整结果，不持久化
type SubmissionResult struct {
	Results []QuestionResult `json:"results"`
	Score   Score            `json:"score"`
}
