package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
)

// ExtractorService converts an uploaded document into a flat plain-text
// string. No structural information is preserved; downstream components
// work purely on lexical content.
type ExtractorService interface {
	Extract(doc models.Document) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

func (e *extractorService) Extract(doc models.Document) (string, error) {
	var text string
	var err error

	switch doc.Format {
	case models.FormatPDF:
		text, err = extractPDFText(doc.Data)
	case models.FormatDOCX:
		text, err = extractDocxText(doc.Data)
	case models.FormatText:
		text = string(doc.Data)
	default:
		// Unknown formats yield empty text, not an error.
		return "", nil
	}

	if err != nil {
		return "", &models.ExtractionError{Format: doc.Format, Err: err}
	}

	if strings.TrimSpace(text) == "" {
		return "", &models.ExtractionError{
			Format: doc.Format,
			Err:    fmt.Errorf("no text content found"),
		}
	}

	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Scanned or image-only pages contribute nothing.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, " "), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return flattenDocxContent(content), nil
}

// flattenDocxContent strips the WordprocessingML markup that GetContent
// returns and joins paragraph texts with single spaces.
func flattenDocxContent(content string) string {
	// Paragraph closers become newlines so paragraph boundaries survive
	// the tag strip below.
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var text strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			text.WriteRune(r)
		}
	}

	var paragraphs []string
	for _, para := range strings.Split(text.String(), "\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			paragraphs = append(paragraphs, para)
		}
	}

	return strings.Join(paragraphs, " ")
}
