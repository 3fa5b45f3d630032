package services

import (
	"regexp"
	"strings"
)

// Requirement extraction is a heuristic over free text. It looks for a few
// well-known section markers and falls back to keyword phrases when none of
// them appear.
var (
	requirementMarkers = []*regexp.Regexp{
		regexp.MustCompile(`(?is)required skills:(.*?)(?:\n\n|\z)`),
		regexp.MustCompile(`(?is)requirements:(.*?)(?:\n\n|\z)`),
		regexp.MustCompile(`(?is)qualifications:(.*?)(?:\n\n|\z)`),
		regexp.MustCompile(`(?is)must have:(.*?)(?:\n\n|\z)`),
	}

	requirementSplitter = regexp.MustCompile(`[•\-\*]\s*|\n+`)

	requirementKeywords = []string{"experience with", "knowledge of", "ability to", "skills in"}
)

const keywordWindowSize = 3

// ExtractRequirements returns the deduplicated requirement phrases found in a
// job description, in first-seen order.
func ExtractRequirements(jobDescription string) []string {
	var (
		requirements []string
		markerFound  bool
	)

	for _, marker := range requirementMarkers {
		for _, match := range marker.FindAllStringSubmatch(jobDescription, -1) {
			markerFound = true
			for _, item := range requirementSplitter.Split(match[1], -1) {
				if item = strings.TrimSpace(item); item != "" {
					requirements = append(requirements, item)
				}
			}
		}
	}

	if !markerFound {
		requirements = keywordPhrases(jobDescription)
	}

	return dedupe(requirements)
}

func keywordPhrases(text string) []string {
	words := strings.Fields(text)

	var phrases []string
	for i := 0; i+keywordWindowSize <= len(words); i++ {
		phrase := strings.Join(words[i:i+keywordWindowSize], " ")
		lower := strings.ToLower(phrase)
		for _, keyword := range requirementKeywords {
			if strings.Contains(lower, keyword) {
				phrases = append(phrases, phrase)
				break
			}
		}
	}
	return phrases
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
