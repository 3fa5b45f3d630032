package services

import (
	"reflect"
	"testing"

	"alfredoptarigan/resume-refiner/internal/models"
)

func TestParseInterviewQA(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   []models.QuestionAnswer
		wantOK bool
	}{
		{
			name:   "plain array",
			text:   `[{"question":"Why Go?","answer":"Simplicity."},{"question":"Why us?","answer":"Mission."}]`,
			want:   []models.QuestionAnswer{{Question: "Why Go?", Answer: "Simplicity."}, {Question: "Why us?", Answer: "Mission."}},
			wantOK: true,
		},
		{
			name:   "fenced array with prose",
			text:   "Here you go:\n```json\n[{\"question\":\"Q1\",\"answer\":\"A1\"}]\n```\nGood luck!",
			want:   []models.QuestionAnswer{{Question: "Q1", Answer: "A1"}},
			wantOK: true,
		},
		{
			name:   "object with questions array",
			text:   `{"questions":[{"question":"Q1","answer":"A1"}]}`,
			want:   []models.QuestionAnswer{{Question: "Q1", Answer: "A1"}},
			wantOK: true,
		},
		{
			name:   "entries without question are skipped",
			text:   `[{"answer":"orphan"},{"question":" Q2 ","answer":" A2 "}]`,
			want:   []models.QuestionAnswer{{Question: "Q2", Answer: "A2"}},
			wantOK: true,
		},
		{
			name:   "garbage",
			text:   "I cannot help with that.",
			want:   FallbackInterviewQA,
			wantOK: false,
		},
		{
			name:   "object without questions",
			text:   `{"answer":"none"}`,
			want:   FallbackInterviewQA,
			wantOK: false,
		},
		{
			name:   "empty array",
			text:   `[]`,
			want:   FallbackInterviewQA,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInterviewQA(tt.text)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInterviewQA() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
