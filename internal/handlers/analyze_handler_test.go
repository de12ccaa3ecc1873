package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/services"
)

// stubTagger tags whitespace-separated tokens as nouns so handler tests do
// not depend on the real linguistic model.
type stubTagger struct{}

func (stubTagger) Tag(text string) ([]services.TaggedToken, error) {
	var tokens []services.TaggedToken
	for _, field := range strings.Fields(text) {
		word := strings.Trim(field, ".,:;!?")
		if word == "" {
			continue
		}
		tokens = append(tokens, services.TaggedToken{
			Text:     word,
			Tag:      "NN",
			Stopword: services.IsStopword(word),
		})
	}
	return tokens, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	tagger := stubTagger{}
	analyzer := services.NewAnalyzerService(
		services.NewExtractorService(),
		services.NewValidatorService(),
		services.NewClassifierService(tagger),
		services.NewSimilarityService(),
		services.NewScorerService(),
		services.NewKeywordService(tagger),
	)

	app := fiber.New()
	handler := NewAnalyzeHandler(analyzer, 1024*1024)
	app.Post("/api/v1/analyze", handler.HandleAnalyze)
	return app
}

// buildDocx assembles a minimal DOCX archive with one paragraph per line.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0"?><w:document><w:body>`)
	for _, para := range paragraphs {
		fmt.Fprintf(&doc, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, para)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(doc.String()))
	require.NoError(t, err)

	// The docx reader requires the relationships part to exist.
	rels, err := zw.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)

	require.NoError(t, zw.Close())

	return buf.Bytes()
}

type formFile struct {
	field    string
	filename string
	data     []byte
}

func multipartRequest(t *testing.T, files []formFile, values map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/v1/analyze", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleAnalyzeSuccess(t *testing.T) {
	app := newTestApp(t)

	resume := buildDocx(t,
		"Summary: backend engineer with experience",
		"Skills: python docker postgresql",
		"Education: BSc Computer Science",
		"Contact: jane@example.com 5551234567",
	)

	req := multipartRequest(t,
		[]formFile{{field: "resume", filename: "resume.docx", data: resume}},
		map[string]string{
			"job_description_text": "Job Title: Backend Engineer\nStrong python and kubernetes experience.",
		},
	)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(raw, &result))
	require.NotNil(t, result.Report)

	assert.Equal(t, "Backend Engineer", result.Report.JobIdentity.Title)
	assert.Equal(t, models.CategoryDevelopment, result.Report.JobIdentity.Category)
	assert.GreaterOrEqual(t, result.Report.Score, 0.0)
	assert.LessOrEqual(t, result.Report.Score, 100.0)
	assert.Contains(t, result.Report.MatchedKeywords, "PYTHON")
	assert.Contains(t, result.Report.MissingKeywords, "KUBERNETES")
	assert.False(t, result.Report.MissingEmail)
}

func TestHandleAnalyzeMissingResume(t *testing.T) {
	app := newTestApp(t)

	req := multipartRequest(t, nil, map[string]string{
		"job_description_text": "Some job description",
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeMissingJobDescription(t *testing.T) {
	app := newTestApp(t)

	resume := buildDocx(t, "Experience and Education", "Skills: everything")
	req := multipartRequest(t,
		[]formFile{{field: "resume", filename: "resume.docx", data: resume}},
		nil,
	)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeUnsupportedResumeFormat(t *testing.T) {
	app := newTestApp(t)

	tests := []string{"resume.exe", "resume.txt"}
	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			req := multipartRequest(t,
				[]formFile{{field: "resume", filename: filename, data: []byte("content")}},
				map[string]string{"job_description_text": "A job"},
			)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleAnalyzeCorruptResume(t *testing.T) {
	app := newTestApp(t)

	req := multipartRequest(t,
		[]formFile{{field: "resume", filename: "resume.pdf", data: []byte("not a pdf at all")}},
		map[string]string{"job_description_text": "A job description"},
	)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleAnalyzeRejectsNonResume(t *testing.T) {
	app := newTestApp(t)

	notAResume := buildDocx(t, "A recipe for banana bread", "Mix flour and sugar")
	req := multipartRequest(t,
		[]formFile{{field: "resume", filename: "resume.docx", data: notAResume}},
		map[string]string{"job_description_text": "Job Title: Baker\n"},
	)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleAnalyzeFileTooLarge(t *testing.T) {
	tagger := stubTagger{}
	analyzer := services.NewAnalyzerService(
		services.NewExtractorService(),
		services.NewValidatorService(),
		services.NewClassifierService(tagger),
		services.NewSimilarityService(),
		services.NewScorerService(),
		services.NewKeywordService(tagger),
	)

	app := fiber.New()
	handler := NewAnalyzeHandler(analyzer, 10) // 10 byte limit
	app.Post("/api/v1/analyze", handler.HandleAnalyze)

	req := multipartRequest(t,
		[]formFile{{field: "resume", filename: "resume.pdf", data: bytes.Repeat([]byte("x"), 100)}},
		map[string]string{"job_description_text": "A job"},
	)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
