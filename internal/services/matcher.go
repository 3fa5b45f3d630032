package services

import "strings"

type MatchResult struct {
	Percentage float64  `json:"match_percentage"`
	Matched    []string `json:"matched_requirements"`
}

// ScoreMatch reports which requirements appear literally, ignoring case, in
// the resume text. An empty requirement list scores 0.
func ScoreMatch(requirements []string, resumeText string) MatchResult {
	result := MatchResult{Matched: []string{}}
	if len(requirements) == 0 {
		return result
	}

	lowerResume := strings.ToLower(resumeText)
	for _, requirement := range requirements {
		if strings.Contains(lowerResume, strings.ToLower(requirement)) {
			result.Matched = append(result.Matched, requirement)
		}
	}

	result.Percentage = float64(len(result.Matched)) / float64(len(requirements)) * 100
	return result
}
