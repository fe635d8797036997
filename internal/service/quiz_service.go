package service

import (
	"math"
	"path/filepath"
	"strings"

	"langgraph_study_backend/internal/model"
	"langgraph_study_backend/internal/repository"
	"langgraph_study_backend/pkg/monitoring"
)

// QuizService 读取并解析测试题文档，合并已保存答案，判分提交
type QuizService struct {
	Docs    *repository.DocumentRepository
	Answers *repository.AnswerRepository
}

func NewQuizService(docs *repository.DocumentRepository, answers *repository.AnswerRepository) *QuizService {
	return &QuizService{Docs: docs, Answers: answers}
}

// LoadQuiz 每次重新读取文件解析，文档文本是正确答案的唯一来源
func (s *QuizService) LoadQuiz(quizPath string) (*model.Quiz, error) {
	content, err := s.Docs.Read(quizPath)
	if err != nil {
		monitoring.QuizParseCounter.WithLabelValues("error").Inc()
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(quizPath), filepath.Ext(quizPath))
	quiz := &model.Quiz{
		Title:     QuizTitleFromStem(stem),
		Questions: ParseQuiz(content),
	}
	monitoring.QuizParseCounter.WithLabelValues("ok").Inc()
	return quiz, nil
}

// SavedAnswers 返回某套测试题已保存的答案，没有则为空映射
func (s *QuizService) SavedAnswers(quizPath string) (map[string]string, error) {
	return s.Answers.AnswersFor(quizPath)
}

// SaveAnswer 实时保存单个答案，返回保存时间戳
func (s *QuizService) SaveAnswer(quizPath, questionID, answer string) (string, error) {
	savedAt, err := s.Answers.RecordAnswer(quizPath, questionID, answer)
	if err != nil {
		return "", err
	}
	monitoring.AnswerSaveCounter.Inc()
	return savedAt, nil
}

// Submit 重新解析测试题并对提交的答案判分
func (s *QuizService) Submit(quizPath string, submitted map[string]string) (*model.SubmissionResult, error) {
	quiz, err := s.LoadQuiz(quizPath)
	if err != nil {
		return nil, err
	}
	result := Score(quiz.Questions, submitted)
	return &result, nil
}

// Score 对比提交答案和正确答案。
// 只有已知正确答案的选择题参与对错判断；开放题计入总数但始终不算答对。
func Score(questions []model.Question, submitted map[string]string) model.SubmissionResult {
	results := make([]model.QuestionResult, 0, len(questions))
	correctCount := 0

	for _, q := range questions {
		userAnswer := submitted[q.ID]

		isCorrect := false
		if q.Type == model.QuestionTypeChoice && q.CorrectAnswer != "" {
			isCorrect = userAnswer == q.CorrectAnswer
			if isCorrect {
				correctCount++
			}
		}

		results = append(results, model.QuestionResult{
			ID:            q.ID,
			Number:        q.Number,
			Type:          q.Type,
			Text:          q.Text,
			Options:       q.Options,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}

	total := len(results)
	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(correctCount)/float64(total)*1000) / 10
	}

	return model.SubmissionResult{
		Results: results,
		Score: model.Score{
			Correct:    correctCount,
			Total:      total,
			Percentage: percentage,
		},
	}
}
