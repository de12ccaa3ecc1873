package services

import (
	"regexp"
	"strings"
)

// scoreSections is the structural completeness vocabulary; each hit is
// worth an equal share of the 15-point structure bonus.
var scoreSections = []string{"experience", "education", "skills", "summary"}

// contactPatterns are the contact-info completeness checks: a 10-digit
// phone number and an email-shaped token.
var contactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{10}`),
	regexp.MustCompile(`[\w.-]+@[\w.-]+`),
}

const (
	lexicalWeight  = 0.7
	structureBonus = 15.0
	contactBonus   = 15.0
)

// ScorerService combines the lexical match percentage with structural and
// contact-info signals into the final ATS score.
type ScorerService interface {
	Score(resumeText string, lexicalMatchPercent float64) float64
}

type scorerService struct{}

func NewScorerService() ScorerService {
	return &scorerService{}
}

// Score returns the weighted ATS score, clamped to [0,100]. The raw sum
// can exceed 100 when the lexical match is near perfect and both bonus
// categories are fully satisfied; clamping is expected, not an error.
func (s *scorerService) Score(resumeText string, lexicalMatchPercent float64) float64 {
	score := lexicalMatchPercent * lexicalWeight

	resumeLower := strings.ToLower(resumeText)
	foundSections := 0
	for _, section := range scoreSections {
		if strings.Contains(resumeLower, section) {
			foundSections++
		}
	}
	score += float64(foundSections) / float64(len(scoreSections)) * structureBonus

	foundContact := 0
	for _, pattern := range contactPatterns {
		if pattern.MatchString(resumeText) {
			foundContact++
		}
	}
	score += float64(foundContact) / float64(len(contactPatterns)) * contactBonus

	return clamp(score, 0, 100)
}
