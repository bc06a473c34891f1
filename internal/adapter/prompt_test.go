package adapter

import (
	"testing"

	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalysisPrompt_EmbedsContent(t *testing.T) {
	prompt := buildAnalysisPrompt("Go 백엔드 개발 3년")

	assert.Contains(t, prompt, "포트폴리오 내용:\nGo 백엔드 개발 3년\n")
	assert.Contains(t, prompt, `"suggestedAnswer": "추천 답변 (2-3문장)"`)
	assert.Contains(t, prompt, "- 기술적 의사결정에 대한 질문")
}

func TestParseGeneratedQuestions(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		want    []models.GeneratedQuestion
		wantErr error
	}{
		{
			name:   "plain array",
			answer: `[{"question":"Q1","suggestedAnswer":"A1"},{"question":"Q2","suggestedAnswer":"A2"}]`,
			want: []models.GeneratedQuestion{
				{Question: "Q1", SuggestedAnswer: "A1"},
				{Question: "Q2", SuggestedAnswer: "A2"},
			},
		},
		{
			name:   "fenced with prose",
			answer: "다음은 질문입니다.\n```json\n[{\"question\":\" Q1 \",\"suggestedAnswer\":\"A1\"}]\n```\n",
			want:   []models.GeneratedQuestion{{Question: "Q1", SuggestedAnswer: "A1"}},
		},
		{
			name:   "drops incomplete entries",
			answer: `[{"question":"Q1","suggestedAnswer":""},{"question":"Q2","suggestedAnswer":"A2"}]`,
			want:   []models.GeneratedQuestion{{Question: "Q2", SuggestedAnswer: "A2"}},
		},
		{name: "empty", answer: "  \n", wantErr: ErrEmptyAIResponse},
		{name: "no array", answer: "죄송합니다.", wantErr: ErrMalformedAIResponse},
		{name: "invalid json", answer: `[{"question": }]`, wantErr: ErrMalformedAIResponse},
		{name: "empty array", answer: `[]`, wantErr: ErrMalformedAIResponse},
		{name: "only incomplete", answer: `[{"question":"Q"}]`, wantErr: ErrMalformedAIResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGeneratedQuestions(tt.answer)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
