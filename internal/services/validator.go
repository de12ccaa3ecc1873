package services

import (
	"strings"
)

// resumeIndicators is the canonical structural vocabulary a resume is
// expected to contain. A document qualifies as a resume when at least
// minIndicatorMatches distinct entries appear as lowercase substrings.
var resumeIndicators = []string{
	"experience",
	"education",
	"skills",
	"projects",
	"summary",
	"history",
}

const minIndicatorMatches = 2

// ValidatorService is the heuristic gate deciding whether extracted text
// actually looks like a resume.
type ValidatorService interface {
	IsValidResume(text string) bool
}

type validatorService struct{}

func NewValidatorService() ValidatorService {
	return &validatorService{}
}

func (v *validatorService) IsValidResume(text string) bool {
	textLower := strings.ToLower(text)

	matches := 0
	for _, indicator := range resumeIndicators {
		if strings.Contains(textLower, indicator) {
			matches++
		}
	}

	return matches >= minIndicatorMatches
}
