package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultSectionName = "General"
	genericChange      = "Refined content to better match job requirements"
)

// SectionMap keeps resume sections in the order they first appeared.
type SectionMap struct {
	names    []string
	contents map[string]string
}

func newSectionMap() *SectionMap {
	return &SectionMap{contents: make(map[string]string)}
}

func (s *SectionMap) set(name, content string) {
	if _, ok := s.contents[name]; !ok {
		s.names = append(s.names, name)
	}
	s.contents[name] = content
}

func (s *SectionMap) Get(name string) (string, bool) {
	content, ok := s.contents[name]
	return content, ok
}

func (s *SectionMap) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *SectionMap) Len() int {
	return len(s.names)
}

// SplitIntoSections groups lines under the most recent all-caps header line.
// Text before the first header belongs to "General".
func SplitIntoSections(text string) *SectionMap {
	sections := newSectionMap()
	current := defaultSectionName
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		if isSectionHeader(line) {
			if len(lines) > 0 {
				sections.set(current, strings.Join(lines, "\n"))
			}
			current = strings.TrimSpace(line)
			lines = nil
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) > 0 {
		sections.set(current, strings.Join(lines, "\n"))
	}
	return sections
}

func isSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if utf8.RuneCountInString(trimmed) <= 3 {
		return false
	}

	hasCased := false
	for _, r := range trimmed {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}

// SummarizeChanges describes which sections of the refined text are new or
// differ from the original.
func SummarizeChanges(original, refined string) []string {
	originalSections := SplitIntoSections(original)
	refinedSections := SplitIntoSections(refined)

	var changes []string
	for _, name := range refinedSections.Names() {
		refinedContent, _ := refinedSections.Get(name)
		originalContent, ok := originalSections.Get(name)
		switch {
		case !ok:
			changes = append(changes, fmt.Sprintf("Added new section: %s", name))
		case originalContent != refinedContent:
			changes = append(changes, fmt.Sprintf("Updated content in %s section", name))
		}
	}

	if len(changes) == 0 {
		return []string{genericChange}
	}
	return changes
}
