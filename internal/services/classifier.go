package services

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
)

// categoryRule pairs a department category with its trigger keywords.
type categoryRule struct {
	category models.Category
	keywords []string
}

// categoryRules is checked in order; the first category with any keyword
// hit wins. The order is part of the contract: ambiguous descriptions
// resolve to the earliest matching category, never by specificity.
var categoryRules = []categoryRule{
	{models.CategoryDevelopment, []string{"software", "developer", "engineer", "frontend", "backend", "fullstack", "coder", "programming", "python", "java", "react"}},
	{models.CategorySales, []string{"sales", "account executive", "business development", "inside sales", "outreach", "revenue", "client"}},
	{models.CategoryMarketing, []string{"marketing", "seo", "social media", "content", "branding", "digital", "copywriter"}},
	{models.CategoryDataAI, []string{"data scientist", "data analyst", "machine learning", "ai", "sql", "tableau", "statistics"}},
	{models.CategoryHRAdmin, []string{"hr", "human resources", "recruiter", "talent", "admin", "office", "operations"}},
}

// titlePatterns is applied against the original-case text in priority
// order; the first match wins. The "looking for a" capture stops at a
// comma or period, the labelled patterns run to the end of the line.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)job title[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)position[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)role[:\s]+([^\n]+)`),
	regexp.MustCompile(`(?i)looking for a\s+([^\n,.]+)`),
	regexp.MustCompile(`(?i)hiring for\s+([^\n]+)`),
}

// professionalRoleWords qualify a noun chunk as a plausible job title
// during the last-resort fallback.
var professionalRoleWords = []string{"engineer", "manager", "developer", "analyst", "lead"}

const (
	genericTitle      = "Generic Professional Role"
	titleSearchPrefix = 200
)

// ClassifierService infers the job title and department category from
// job-description text. Output is deterministic for identical input.
type ClassifierService interface {
	Classify(jobDescription string) (models.JobIdentity, error)
}

type classifierService struct {
	tagger TaggerService
}

func NewClassifierService(tagger TaggerService) ClassifierService {
	return &classifierService{tagger: tagger}
}

func (c *classifierService) Classify(jobDescription string) (models.JobIdentity, error) {
	category := detectCategory(jobDescription)

	title, err := c.detectTitle(jobDescription, category)
	if err != nil {
		return models.JobIdentity{}, fmt.Errorf("failed to detect job title: %w", err)
	}

	return models.JobIdentity{Title: title, Category: category}, nil
}

func detectCategory(text string) models.Category {
	textLower := strings.ToLower(text)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(textLower, kw) {
				return rule.category
			}
		}
	}

	return models.CategoryOther
}

func (c *classifierService) detectTitle(text string, category models.Category) (string, error) {
	for _, pattern := range titlePatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return titleCase(strings.TrimSpace(match[1])), nil
		}
	}

	if category != models.CategoryOther {
		return fmt.Sprintf("%s Specialist", category), nil
	}

	// Last resort: look for a professional-sounding noun chunk near the
	// top of the description.
	chunk, err := c.findRoleChunk(text)
	if err != nil {
		return "", err
	}
	if chunk != "" {
		return titleCase(chunk), nil
	}

	return genericTitle, nil
}

// findRoleChunk tags the first ~200 characters of the text and returns the
// first run of adjective/noun tokens containing a professional role word.
func (c *classifierService) findRoleChunk(text string) (string, error) {
	runes := []rune(text)
	if len(runes) > titleSearchPrefix {
		runes = runes[:titleSearchPrefix]
	}

	tokens, err := c.tagger.Tag(string(runes))
	if err != nil {
		return "", err
	}

	var chunk []string
	for _, tok := range tokens {
		if IsNounTag(tok.Tag) || strings.HasPrefix(tok.Tag, "JJ") {
			chunk = append(chunk, tok.Text)
			continue
		}
		if qualifies := chunkHasRoleWord(chunk); qualifies {
			return strings.Join(chunk, " "), nil
		}
		chunk = chunk[:0]
	}
	if chunkHasRoleWord(chunk) {
		return strings.Join(chunk, " "), nil
	}

	return "", nil
}

func chunkHasRoleWord(chunk []string) bool {
	if len(chunk) == 0 {
		return false
	}
	joined := strings.ToLower(strings.Join(chunk, " "))
	for _, role := range professionalRoleWords {
		if strings.Contains(joined, role) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
