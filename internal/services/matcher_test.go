package services

import (
	"math"
	"reflect"
	"testing"
)

func TestScoreMatch(t *testing.T) {
	tests := []struct {
		name         string
		requirements []string
		resume       string
		wantPercent  float64
		wantMatched  []string
	}{
		{
			name:         "empty requirement list",
			requirements: nil,
			resume:       "anything",
			wantPercent:  0,
			wantMatched:  []string{},
		},
		{
			name:         "case insensitive containment",
			requirements: []string{"Go", "PostgreSQL", "Rust"},
			resume:       "Backend engineer: GO services on postgresql",
			wantPercent:  200.0 / 3.0,
			wantMatched:  []string{"Go", "PostgreSQL"},
		},
		{
			name:         "nothing matched",
			requirements: []string{"Haskell"},
			resume:       "Go developer",
			wantPercent:  0,
			wantMatched:  []string{},
		},
		{
			name:         "all matched",
			requirements: []string{"SQL"},
			resume:       "sql",
			wantPercent:  100,
			wantMatched:  []string{"SQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreMatch(tt.requirements, tt.resume)
			if math.Abs(got.Percentage-tt.wantPercent) > 1e-9 {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tt.wantPercent)
			}
			if !reflect.DeepEqual(got.Matched, tt.wantMatched) {
				t.Errorf("Matched = %q, want %q", got.Matched, tt.wantMatched)
			}
		})
	}
}
