package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-interview-prep/models"
)

const (
	analysisTemperature = 0.7
	analysisMaxTokens   = 2000
)

const analysisPromptTemplate = `다음은 지원자의 포트폴리오입니다. 이 포트폴리오를 분석하여 면접관이 물어볼 만한 질문 10-15개를 생성해주세요.

포트폴리오 내용:
%s

각 질문에 대해 다음 형식의 JSON 배열로 응답해주세요:
[
  {
    "question": "질문 내용",
    "suggestedAnswer": "추천 답변 (2-3문장)"
  }
]

질문은 다음을 포함해야 합니다:
- 프로젝트 경험에 대한 구체적인 질문
- 사용한 기술 스택에 대한 심화 질문
- 문제 해결 과정에 대한 질문
- 협업 경험에 대한 질문
- 기술적 의사결정에 대한 질문`

func buildAnalysisPrompt(content string) string {
	return fmt.Sprintf(analysisPromptTemplate, content)
}

// parseGeneratedQuestions decodes the JSON array in a model answer. Markdown
// code fences and prose around the array are ignored. Entries with an empty
// question or answer are dropped.
func parseGeneratedQuestions(answer string) ([]models.GeneratedQuestion, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, ErrEmptyAIResponse
	}

	start := strings.Index(answer, "[")
	end := strings.LastIndex(answer, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON array found", ErrMalformedAIResponse)
	}

	var raw []models.GeneratedQuestion
	if err := json.Unmarshal([]byte(answer[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAIResponse, err)
	}

	questions := make([]models.GeneratedQuestion, 0, len(raw))
	for _, q := range raw {
		q.Question = strings.TrimSpace(q.Question)
		q.SuggestedAnswer = strings.TrimSpace(q.SuggestedAnswer)
		if q.Question == "" || q.SuggestedAnswer == "" {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no usable questions", ErrMalformedAIResponse)
	}

	return questions, nil
}
