package repository

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"langgraph_study_backend/internal/model"
)

// AnswerRepository 把用户答案整读整写到单个 JSON 文件。
// 单个互斥锁串行化 load-modify-save，保证并发写不会互相覆盖半个文件。
type AnswerRepository struct {
	path string
	mu   sync.Mutex
}

func NewAnswerRepository(path string) *AnswerRepository {
	return &AnswerRepository{path: path}
}

// Load 读取答案记录，文件不存在时返回空记录
func (r *AnswerRepository) Load() (*model.AnswerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// Save 整体写回答案记录
func (r *AnswerRepository) Save(record *model.AnswerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(record)
}

// RecordAnswer 保存单个答案并更新时间戳，返回保存时间
func (r *AnswerRepository) RecordAnswer(quizPath, questionID, answer string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.loadLocked()
	if err != nil {
		return "", err
	}

	record.SetAnswer(quizPath, questionID, answer)
	record.LastUpdated = time.Now().Format(time.RFC3339)

	if err := r.saveLocked(record); err != nil {
		return "", err
	}
	return record.LastUpdated, nil
}

// AnswersFor 返回某套测试题已保存的答案映射
func (r *AnswerRepository) AnswersFor(quizPath string) (map[string]string, error) {
	record, err := r.Load()
	if err != nil {
		return nil, err
	}
	return record.AnswersFor(quizPath), nil
}

func (r *AnswerRepository) loadLocked() (*model.AnswerRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewAnswerRecord(), nil
		}
		return nil, err
	}

	record := model.NewAnswerRecord()
	if err := json.Unmarshal(data, record); err != nil {
		return nil, err
	}
	if record.Quizzes == nil {
		record.Quizzes = make(map[string]*model.QuizAnswers)
	}
	return record, nil
}

func (r *AnswerRepository) saveLocked(record *model.AnswerRecord) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}

	// 人类可读、保留中文原文
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return err
	}

	// 临时文件加改名，避免读到写了一半的文件
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
