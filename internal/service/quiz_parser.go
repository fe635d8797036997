package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"langgraph_study_backend/internal/model"
)

// 测试题文档的约定格式：
//
//	### 题目1：2+2等于几？        （也支持 问题/Question，可带 [类型:choice] 标记）
//	A. 3
//	B. 4
//	**正确答案**：B
//	**解析**：基本算术。
//
// 文档末尾的"正确答案汇总/测试总结/自我评估/完成时间"部分在解析前被截掉，
// 避免把汇总内容误认成题目内容。
var (
	summaryHeadingRe = regexp.MustCompile(`(?i)##+\s*(?:正确答案汇总|测试总结|自我评估|完成时间)`)
	questionHeaderRe = regexp.MustCompile(`(?i)###\s*(?:\[类型:(\w+)\])?\s*(?:题目|Question|问题)\s*\d+[:：]?\s*`)
	standaloneTypeRe = regexp.MustCompile(`^\[类型:(\w+)\]`)
	typeWordRe       = regexp.MustCompile(`\w+`)
	optionLineRe     = regexp.MustCompile(`^([A-D])\.\s*(.*)$`)
	answerLetterRe   = regexp.MustCompile(`[A-D]`)
	answerPrefixRe   = regexp.MustCompile(`^\*\*正确答案\*\*[:：]\s*`)
	titleHeadingRe   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	quizStemRe       = regexp.MustCompile(`^\d+_quiz_(set\d+)_(.+)$`)
)

var (
	// 题目文本不能是这些标记行
	questionTextMarkers = []string{"**正确答案", "**你的答案", "正确答案", "你的答案", "**解析", "解析："}
	// 进入答案解析区的触发标记
	answerSectionMarkers = []string{"**正确答案", "正确答案：", "正确答案:"}
	// 答案解析区到此为止
	masteryMarkers = []string{"**你的掌握情况", "你的掌握情况"}
)

const maxExplanationLines = 5

// ParseQuiz 把测试题文档解析成结构化题目列表。
// 解析是文档文本的纯函数：同一文本两次解析结果相同，文档无题目标题时返回空列表。
func ParseQuiz(content string) []model.Question {
	body := stripSummary(content)

	matches := questionHeaderRe.FindAllStringSubmatchIndex(body, -1)
	questions := make([]model.Question, 0, len(matches))

	for i, m := range matches {
		start := m[1]
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		inlineType := ""
		if m[2] >= 0 {
			inlineType = body[m[2]:m[3]]
		}

		q, ok := parseBlock(body[start:end], inlineType)
		if !ok {
			// 找不到题目文本的块整个丢弃，后续题目顺延编号
			continue
		}

		q.Number = len(questions) + 1
		q.ID = fmt.Sprintf("q%d", q.Number)
		questions = append(questions, q)
	}

	return questions
}

// blockScanner 按行扫描单个题目块。
// 状态推进：SeekingType（仅首行）→ SeekingText → Collecting（选项与答案区）→ Done。
type blockScanner struct {
	questionType string
	text         string
	options      map[string]string
	hasOption    bool // 存在真实选项行，用于推断题型
	inAnswer     bool
	answerDone   bool
	answerLines  []string
}

func parseBlock(block, inlineType string) (model.Question, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	s := &blockScanner{
		questionType: inlineType,
		options:      map[string]string{},
	}

	// SeekingType：类型标记只允许出现在块的第一行
	if s.questionType == "" && len(lines) > 0 {
		first := strings.TrimSpace(lines[0])
		if m := standaloneTypeRe.FindStringSubmatch(first); m != nil {
			s.questionType = m[1]
			lines = lines[1:]
		} else if strings.HasPrefix(first, "[类型:") {
			if w := typeWordRe.FindString(first); w != "" {
				s.questionType = w
				lines = lines[1:]
			}
		}
	}

	for _, line := range lines {
		s.scanLine(strings.TrimSpace(line))
	}

	if s.text == "" {
		return model.Question{}, false
	}

	q := model.Question{
		Type:        s.questionType,
		Text:        s.text,
		Options:     map[string]string{},
		Explanation: "",
	}

	// 没有显式题型标记时按选项行推断
	if q.Type == "" {
		if s.hasOption {
			q.Type = model.QuestionTypeChoice
		} else {
			q.Type = model.QuestionTypeOpen
		}
	}

	if q.Type == model.QuestionTypeChoice {
		q.Options = s.options
		// 答案区里的第一个字母就是正确答案；找不到就保持未知，不做猜测
		if letter := answerLetterRe.FindString(strings.Join(s.answerLines, " ")); letter != "" {
			q.CorrectAnswer = letter
		}
	}

	q.Explanation = buildExplanation(s.answerLines)

	return q, true
}

func (s *blockScanner) scanLine(line string) {
	// 答案区触发行自身也计入答案区；遇到掌握情况标记后答案区永久结束
	if !s.answerDone {
		if containsAny(line, answerSectionMarkers) {
			s.inAnswer = true
			s.answerLines = append(s.answerLines, line)
		} else if s.inAnswer {
			if hasAnyPrefix(line, masteryMarkers) {
				s.inAnswer = false
				s.answerDone = true
			} else {
				s.answerLines = append(s.answerLines, line)
			}
		}
	}

	// SeekingText：第一个非空、非标记、非类型行就是题目文本
	if s.text == "" && line != "" && !strings.HasPrefix(line, "[") && !containsAny(line, questionTextMarkers) {
		s.text = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
	}

	if m := optionLineRe.FindStringSubmatch(line); m != nil {
		letter, text := m[1], m[2]
		if !strings.Contains(text, "___") {
			s.hasOption = true
		}
		// "你的答案：___A" 之类的填写栏不算选项；同一字母后出现的覆盖先出现的
		if text != "" && !strings.HasPrefix(text, "___") && !strings.HasPrefix(text, "**你的答案") {
			s.options[letter] = text
		}
	}
}

func buildExplanation(answerLines []string) string {
	cleaned := make([]string, 0, maxExplanationLines)
	for _, line := range answerLines {
		c := strings.ReplaceAll(line, "**正确答案**", "")
		c = strings.ReplaceAll(c, "**解析**", "")
		c = answerPrefixRe.ReplaceAllString(c, "")
		c = strings.TrimSpace(strings.ReplaceAll(c, "👆", ""))
		// 过滤单字符行（比如孤立的答案字母）
		if utf8.RuneCountInString(c) > 1 {
			cleaned = append(cleaned, c)
			if len(cleaned) == maxExplanationLines {
				break
			}
		}
	}
	return strings.Join(cleaned, "\n")
}

// CountQuestions 统计题目数量，与 ParseQuiz 使用同一个标题模式，但不做完整解析
func CountQuestions(content string) int {
	return len(questionHeaderRe.FindAllString(stripSummary(content), -1))
}

// ExtractDocTitle 取第一个一级标题作为文档标题，没有则用备选名
func ExtractDocTitle(content, fallback string) string {
	if m := titleHeadingRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return fallback
}

// QuizTitleFromStem 从文件名推导测试题标题：
// 05_quiz_set1_basics -> "basics（set1）"；不符合约定时原样返回
func QuizTitleFromStem(stem string) string {
	if m := quizStemRe.FindStringSubmatch(stem); m != nil {
		topic := strings.ReplaceAll(m[2], "_", " ")
		return fmt.Sprintf("%s（%s）", topic, m[1])
	}
	return stem
}

func stripSummary(content string) string {
	if loc := summaryHeadingRe.FindStringIndex(content); loc != nil {
		return content[:loc[0]]
	}
	return content
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
