package model

// QuizAnswers 一套测试题已保存的答案，键为题目 ID
type QuizAnswers struct {
	Answers map[string]string `json:"answers"`
}

// AnswerRecord 答案文件的整体结构，整读整写
type AnswerRecord struct {
	LastUpdated string                  `json:"last_updated,omitempty"`
	Quizzes     map[string]*QuizAnswers `json:"quizzes"`
}

func NewAnswerRecord() *AnswerRecord {
	return &AnswerRecord{
		Quizzes: make(map[string]*QuizAnswers),
	}
}

// AnswersFor 返回某套测试题的答案映射，没有则返回空映射
func (r *AnswerRecord) AnswersFor(quizPath string) map[string]string {
	if qa, ok := r.Quizzes[quizPath]; ok && qa.Answers != nil {
		return qa.Answers
	}
	return map[string]string{}
}

// SetAnswer 写入单个答案，必要时创建子映射
func (r *AnswerRecord) SetAnswer(quizPath, questionID, answer string) {
	if r.Quizzes == nil {
		r.Quizzes = make(map[string]*QuizAnswers)
	}
	qa, ok := r.Quizzes[quizPath]
	if !ok || qa == nil {
		qa = &QuizAnswers{Answers: make(map[string]string)}
		r.Quizzes[quizPath] = qa
	}
	if qa.Answers == nil {
		qa.Answers = make(map[string]string)
	}
	qa.Answers[questionID] = answer
}
