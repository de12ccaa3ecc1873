package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
)

// AnalyzerService runs the full analysis pipeline: extraction, resume
// validation, job-identity classification, lexical similarity, ATS
// scoring, and keyword-gap analysis. Every run recomputes everything from
// its inputs; nothing is cached between calls.
type AnalyzerService interface {
	AnalyzeDocuments(resume, job models.Document) (*models.AnalysisReport, error)
	Analyze(resumeText, jobText string) (*models.AnalysisReport, error)
}

type analyzerService struct {
	extractor  ExtractorService
	validator  ValidatorService
	classifier ClassifierService
	similarity SimilarityService
	scorer     ScorerService
	keywords   KeywordService
}

func NewAnalyzerService(
	extractor ExtractorService,
	validator ValidatorService,
	classifier ClassifierService,
	similarity SimilarityService,
	scorer ScorerService,
	keywords KeywordService,
) AnalyzerService {
	return &analyzerService{
		extractor:  extractor,
		validator:  validator,
		classifier: classifier,
		similarity: similarity,
		scorer:     scorer,
		keywords:   keywords,
	}
}

// AnalyzeDocuments extracts plain text from both documents and runs the
// pipeline on the result.
func (a *analyzerService) AnalyzeDocuments(resume, job models.Document) (*models.AnalysisReport, error) {
	resumeText, err := a.extractor.Extract(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume: %w", err)
	}

	jobText, err := a.extractor.Extract(job)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job description: %w", err)
	}

	return a.Analyze(resumeText, jobText)
}

func (a *analyzerService) Analyze(resumeText, jobText string) (*models.AnalysisReport, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return nil, models.ErrMissingInput
	}

	// Gate: stop before any scoring when the document is not a resume.
	if !a.validator.IsValidResume(resumeText) {
		return nil, models.ErrNotAResume
	}

	identity, err := a.classifier.Classify(jobText)
	if err != nil {
		return nil, fmt.Errorf("failed to classify job description: %w", err)
	}

	similarity, err := a.similarity.Similarity(resumeText, jobText)
	if err != nil {
		return nil, fmt.Errorf("failed to compute similarity: %w", err)
	}

	score := a.scorer.Score(resumeText, similarity*100)

	gap, err := a.keywords.Analyze(resumeText, jobText)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze keywords: %w", err)
	}

	missingEmail := !strings.Contains(resumeText, "@")

	report := &models.AnalysisReport{
		ID:              uuid.New(),
		Score:           score,
		JobIdentity:     identity,
		MatchedKeywords: gap.Matched,
		MissingKeywords: gap.Missing,
		MissingEmail:    missingEmail,
		Recommendations: buildRecommendations(identity, gap, missingEmail),
	}

	log.Printf("📊 Analysis %s complete: score %.0f, role %q, %d matched / %d missing keywords\n",
		report.ID, report.Score, identity.Title, len(gap.Matched), len(gap.Missing))

	return report, nil
}

// buildRecommendations assembles the actionable feedback shown alongside
// the score. Deterministic: it depends only on the report contents.
func buildRecommendations(identity models.JobIdentity, gap KeywordGap, missingEmail bool) []string {
	var recs []string

	if len(gap.Missing) > 0 {
		sample := gap.Missing
		if len(sample) > 10 {
			sample = sample[:10]
		}
		recs = append(recs, fmt.Sprintf(
			"As this is a %s role, add these terms: %s",
			identity.Category, strings.Join(sample, ", ")))
	}

	recs = append(recs, fmt.Sprintf(
		"Ensure the title %q appears in your professional summary.", identity.Title))

	if missingEmail {
		recs = append(recs, "No email detected. Ensure your contact details are at the very top.")
	}

	return recs
}
