package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"alfredoptarigan/resume-refiner/internal/models"
	"alfredoptarigan/resume-refiner/internal/repositories"
)

type RefineInput struct {
	Filename            string
	Data                []byte
	JobDescription      string
	JobDescriptionURL   string
	GenerateCoverLetter bool
}

type RefinerService interface {
	Refine(ctx context.Context, input RefineInput) (*models.RefineResponse, error)
	GenerateInterviewQA(ctx context.Context, req models.InterviewQARequest) (*models.InterviewQAResponse, error)
	RenderDocument(text, fileType string) (*GeneratedDocument, error)
	BuildMatchReport(jobDescription, resumeText string) ([]byte, error)
}

type refinerService struct {
	codec         DocumentCodec
	fetcher       JobDescriptionFetcher
	generator     Generator
	exporter      MatchReportExporter
	history       repositories.RefinementRepository
	promptBuilder *PromptBuilder
}

// NewRefinerService wires the refinement pipeline. history may be nil when
// refinement history is disabled.
func NewRefinerService(
	codec DocumentCodec,
	fetcher JobDescriptionFetcher,
	generator Generator,
	exporter MatchReportExporter,
	history repositories.RefinementRepository,
) RefinerService {
	return &refinerService{
		codec:         codec,
		fetcher:       fetcher,
		generator:     generator,
		exporter:      exporter,
		history:       history,
		promptBuilder: NewPromptBuilder(),
	}
}

func (r *refinerService) Refine(ctx context.Context, input RefineInput) (*models.RefineResponse, error) {
	if err := r.generator.Ready(); err != nil {
		return nil, err
	}

	log.Printf("📄 Extracting text from %s", input.Filename)
	resumeText, format, err := r.codec.Extract(input.Data, input.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	jobDescription, source, err := r.resolveJobDescription(ctx, input.JobDescription, input.JobDescriptionURL)
	if err != nil {
		return nil, err
	}

	log.Println("🤖 Refining resume with LLM...")
	refined, err := r.generator.Complete(ctx, r.promptBuilder.BuildRefinePrompt(resumeText, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("failed to refine resume: %w", err)
	}

	requirements := ExtractRequirements(jobDescription)
	match := ScoreMatch(requirements, refined)
	changes := SummarizeChanges(resumeText, refined)

	document, err := r.codec.Regenerate(refined, format)
	if err != nil {
		return nil, fmt.Errorf("failed to regenerate document: %w", err)
	}

	var coverLetter *string
	if input.GenerateCoverLetter {
		log.Println("🤖 Generating cover letter...")
		letter, err := r.generator.Complete(ctx, r.promptBuilder.BuildCoverLetterPrompt(refined, jobDescription))
		if err != nil {
			return nil, fmt.Errorf("failed to generate cover letter: %w", err)
		}
		coverLetter = &letter
	}

	r.recordHistory(&models.RefinementRecord{
		Filename:             input.Filename,
		FileType:             string(format),
		MatchPercentage:      match.Percentage,
		RequirementCount:     len(requirements),
		MatchedCount:         len(match.Matched),
		ChangeCount:          len(changes),
		CoverLetterGenerated: coverLetter != nil,
		JobDescriptionSource: source,
	})

	log.Printf("✅ Resume refined: %.1f%% of %d requirements matched", match.Percentage, len(requirements))

	return &models.RefineResponse{
		RefinedResume:        refined,
		MatchPercentage:      match.Percentage,
		MatchedRequirements:  match.Matched,
		Changes:              changes,
		CoverLetter:          coverLetter,
		FileType:             string(format),
		RefinedDocument:      document.Data,
		JobDescriptionSource: source,
	}, nil
}

// resolveJobDescription prefers the scraped posting when a URL is given and
// falls back to the typed text when scraping fails.
func (r *refinerService) resolveJobDescription(ctx context.Context, text, url string) (string, models.JobDescriptionSource, error) {
	if url = strings.TrimSpace(url); url != "" {
		log.Printf("🔍 Fetching job description from %s", url)
		if scraped, ok := r.fetcher.Fetch(ctx, url); ok {
			return scraped, models.SourceURL, nil
		}
		if strings.TrimSpace(text) == "" {
			return "", "", fmt.Errorf("%w: failed to fetch job description from URL and no manual description provided", ErrMissingJobDescription)
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", "", ErrMissingJobDescription
	}
	return text, models.SourceText, nil
}

func (r *refinerService) recordHistory(record *models.RefinementRecord) {
	if r.history == nil {
		return
	}
	if err := r.history.Create(record); err != nil {
		log.Printf("⚠️ Failed to record refinement history: %v", err)
	}
}

func (r *refinerService) GenerateInterviewQA(ctx context.Context, req models.InterviewQARequest) (*models.InterviewQAResponse, error) {
	if err := r.generator.Ready(); err != nil {
		return nil, err
	}

	prompt := r.promptBuilder.BuildInterviewPrompt(req.CompanyName, req.RoleTitle, req.ResumeText)

	log.Printf("🤖 Generating interview Q&A for %s at %s", req.RoleTitle, req.CompanyName)
	response, err := r.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate interview questions: %w", err)
	}

	questions, _ := ParseInterviewQA(response)
	return &models.InterviewQAResponse{Questions: questions}, nil
}

func (r *refinerService) RenderDocument(text, fileType string) (*GeneratedDocument, error) {
	return r.codec.Regenerate(text, DocumentFormat(strings.ToLower(fileType)))
}

func (r *refinerService) BuildMatchReport(jobDescription, resumeText string) ([]byte, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrMissingJobDescription
	}

	requirements := ExtractRequirements(jobDescription)
	data, err := r.exporter.Export(requirements, ScoreMatch(requirements, resumeText))
	if err != nil {
		return nil, fmt.Errorf("failed to build match report: %w", err)
	}
	return data, nil
}
