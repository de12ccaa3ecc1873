package services

import (
	"fmt"
	"sort"
	"strings"
)

// KeywordGap is the outcome of comparing the significant terms of a resume
// against those of a job description. Both slices are sorted, so the same
// input pair always produces the same gap.
type KeywordGap struct {
	Matched []string
	Missing []string
}

// KeywordService extracts significant terms (nouns and proper nouns,
// stopwords excluded) from each text and computes the matched and missing
// sets.
type KeywordService interface {
	Analyze(resumeText, jobText string) (KeywordGap, error)
}

type keywordService struct {
	tagger TaggerService
}

func NewKeywordService(tagger TaggerService) KeywordService {
	return &keywordService{tagger: tagger}
}

func (k *keywordService) Analyze(resumeText, jobText string) (KeywordGap, error) {
	resumeKeys, err := k.extractKeywords(resumeText)
	if err != nil {
		return KeywordGap{}, fmt.Errorf("failed to extract resume keywords: %w", err)
	}

	jobKeys, err := k.extractKeywords(jobText)
	if err != nil {
		return KeywordGap{}, fmt.Errorf("failed to extract job keywords: %w", err)
	}

	var matched, missing []string
	for key := range jobKeys {
		if _, ok := resumeKeys[key]; ok {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)

	return KeywordGap{Matched: matched, Missing: missing}, nil
}

// extractKeywords lowercases the text before tagging to normalise case
// sensitivity, keeps noun tokens that are not stopwords, and
// uppercase-normalises each survivor.
func (k *keywordService) extractKeywords(text string) (map[string]struct{}, error) {
	tokens, err := k.tagger.Tag(strings.ToLower(text))
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	for _, tok := range tokens {
		if !IsNounTag(tok.Tag) || tok.Stopword {
			continue
		}
		keys[strings.ToUpper(tok.Text)] = struct{}{}
	}

	return keys, nil
}
