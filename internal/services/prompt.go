package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildRefinePrompt creates prompt for resume refinement
func (pb *PromptBuilder) BuildRefinePrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Given the following resume and job description, please refine the resume to better match the job requirements.
Make the changes while maintaining truthfulness and the candidate's actual experience.

Resume:
%s

Job Description:
%s

Please provide the refined resume:`,
		resumeText, jobDescription)
}

// BuildCoverLetterPrompt creates prompt for a cover letter
func (pb *PromptBuilder) BuildCoverLetterPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Create a professional cover letter based on the following resume and job description.
Make it personalized, highlighting relevant experience and skills that match the job requirements.

Resume:
%s

Job Description:
%s

Please write a compelling cover letter that demonstrates why the candidate is a great fit for this role.`,
		resumeText, jobDescription)
}

// BuildInterviewPrompt creates prompt for mock interview questions
func (pb *PromptBuilder) BuildInterviewPrompt(companyName, roleTitle, resumeText string) string {
	var resumeContext string
	if strings.TrimSpace(resumeText) != "" {
		resumeContext = fmt.Sprintf("Based on this resume: %s\n\n", resumeText)
	}

	return fmt.Sprintf(`Generate %d likely interview questions and detailed answers for a %s position at %s.

%sFormat the response as a JSON array with 'question' and 'answer' fields, for example:
[
  {"question": "<question>", "answer": "<answer>"}
]

Return ONLY the JSON array.`,
		interviewQuestionCount, roleTitle, companyName, resumeContext)
}
