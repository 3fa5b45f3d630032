package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"alfredoptarigan/resume-refiner/internal/config"
	"alfredoptarigan/resume-refiner/internal/services"
)

// Scores a resume against a job description offline and writes the xlsx
// match report. No generation service is involved.
//
//	go run ./scripts -resume ./cv.pdf -jd ./job.txt -out report.xlsx
//	go run ./scripts -resume ./cv.docx -url https://jobs.example.com/123
func main() {
	resumePath := flag.String("resume", "", "path to a .pdf or .docx resume")
	jdPath := flag.String("jd", "", "path to a plain-text job description")
	jdURL := flag.String("url", "", "job posting URL to scrape instead of -jd")
	outPath := flag.String("out", services.MatchReportFilename, "where to write the xlsx report")
	flag.Parse()

	if *resumePath == "" || (*jdPath == "" && *jdURL == "") {
		flag.Usage()
		os.Exit(2)
	}

	log.Println("🚀 Starting offline match report...")
	cfg := config.Load()

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	resumeText, format, err := services.NewDocumentCodec().Extract(data, *resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to extract resume text: %v", err)
	}
	log.Printf("   ✅ Extracted %d characters from %s resume", len(resumeText), format)

	var jobDescription string
	if *jdURL != "" {
		fetched, ok := services.NewJobDescriptionFetcher(cfg.Fetcher).Fetch(context.Background(), *jdURL)
		if !ok {
			log.Fatalf("❌ Could not fetch a job description from %s", *jdURL)
		}
		jobDescription = fetched
	} else {
		raw, err := os.ReadFile(*jdPath)
		if err != nil {
			log.Fatalf("❌ Failed to read job description: %v", err)
		}
		jobDescription = string(raw)
	}

	requirements := services.ExtractRequirements(jobDescription)
	result := services.ScoreMatch(requirements, resumeText)

	report, err := services.NewMatchReportExporter().Export(requirements, result)
	if err != nil {
		log.Fatalf("❌ Failed to build report: %v", err)
	}
	if err := os.WriteFile(*outPath, report, 0644); err != nil {
		log.Fatalf("❌ Failed to write report: %v", err)
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Match Summary:")
	log.Printf("   Requirements found: %d", len(requirements))
	log.Printf("   Matched: %d (%.1f%%)", len(result.Matched), result.Percentage)
	for _, requirement := range result.Matched {
		log.Printf("   ✅ %s", requirement)
	}
	log.Println(strings.Repeat("=", 60))
	log.Printf("✅ Report written to %s", *outPath)
}
