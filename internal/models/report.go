package models

import (
	"github.com/google/uuid"
)

// Category is the department track a job description belongs to.
type Category string

const (
	CategoryDevelopment Category = "Development"
	CategorySales       Category = "Sales"
	CategoryMarketing   Category = "Marketing"
	CategoryDataAI      Category = "Data & AI"
	CategoryHRAdmin     Category = "HR & Admin"
	CategoryOther       Category = "Other"
)

// JobIdentity is the detected title and category of a job description.
type JobIdentity struct {
	Title    string   `json:"title"`
	Category Category `json:"category"`
}

// AnalysisReport is the sole output of one analysis run. It is immutable
// once produced; the keyword slices are sorted so identical inputs yield
// identical reports (the ID exists for log correlation only).
type AnalysisReport struct {
	ID              uuid.UUID   `json:"id"`
	Score           float64     `json:"score"`
	JobIdentity     JobIdentity `json:"job_identity"`
	MatchedKeywords []string    `json:"matched_keywords"`
	MissingKeywords []string    `json:"missing_keywords"`
	MissingEmail    bool        `json:"missing_email"`
	Recommendations []string    `json:"recommendations"`
}

// AnalyzeResponse wraps a report for the HTTP API.
type AnalyzeResponse struct {
	Message string          `json:"message"`
	Report  *AnalysisReport `json:"report"`
}
