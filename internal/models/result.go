package models

type RefineResponse struct {
	RefinedResume        string               `json:"refined_resume"`
	MatchPercentage      float64              `json:"match_percentage"`
	MatchedRequirements  []string             `json:"matched_requirements"`
	Changes              []string             `json:"changes"`
	CoverLetter          *string              `json:"cover_letter"`
	FileType             string               `json:"file_type"`
	RefinedDocument      []byte               `json:"refined_document"`
	JobDescriptionSource JobDescriptionSource `json:"job_description_source"`
}

type InterviewQARequest struct {
	CompanyName string `json:"company_name"`
	RoleTitle   string `json:"role_title"`
	ResumeText  string `json:"resume_text,omitempty"`
}

type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type InterviewQAResponse struct {
	Questions []QuestionAnswer `json:"questions"`
}

type MatchReportRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Code   int    `json:"code"`
}
