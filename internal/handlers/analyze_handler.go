package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. It expects a multipart form with a
// "resume" file (PDF or DOCX) and either a "job_description" file or a
// "job_description_text" field. The analysis is computed synchronously and
// nothing is stored: every request gets a fresh report.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	resumeDoc, errResp := h.readDocumentField(form, "resume")
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	if resumeDoc == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}
	if resumeDoc.Format == models.FormatText {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": models.ErrUnsupportedFormat.Error(),
		})
	}

	jobDoc, errResp := h.readDocumentField(form, "job_description")
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}

	jobText := ""
	if values, exists := form.Value["job_description_text"]; exists && len(values) > 0 {
		jobText = values[0]
	}

	if jobDoc == nil && jobText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "provide a job_description file or job_description_text",
		})
	}

	if jobDoc == nil {
		jobDoc = &models.Document{
			Filename: "job_description.txt",
			Format:   models.FormatText,
			Data:     []byte(jobText),
		}
	}

	report, err := h.analyzer.AnalyzeDocuments(*resumeDoc, *jobDoc)
	if err != nil {
		return analysisErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.AnalyzeResponse{
		Message: "Analysis completed successfully",
		Report:  report,
	})
}

// readDocumentField pulls one uploaded file out of the form and returns it
// as a Document. A missing field is not an error; the caller decides
// whether the field was required.
func (h *AnalyzeHandler) readDocumentField(form *multipart.Form, field string) (*models.Document, fiber.Map) {
	files, exists := form.File[field]
	if !exists || len(files) == 0 {
		return nil, nil
	}

	file := files[0]

	if file.Size > h.maxFileSize {
		return nil, fiber.Map{
			"error": fmt.Sprintf("%s file too large. Max size: %d bytes", field, h.maxFileSize),
		}
	}

	format, ok := models.FormatFromFilename(file.Filename)
	if !ok {
		return nil, fiber.Map{
			"error": models.ErrUnsupportedFormat.Error(),
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, fiber.Map{
			"error": fmt.Sprintf("failed to open %s file: %v", field, err),
		}
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fiber.Map{
			"error": fmt.Sprintf("failed to read %s file: %v", field, err),
		}
	}

	return &models.Document{
		Filename: file.Filename,
		Format:   format,
		Data:     data,
	}, nil
}

func analysisErrorResponse(c *fiber.Ctx, err error) error {
	var extractionErr *models.ExtractionError

	switch {
	case errors.Is(err, models.ErrMissingInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, models.ErrNotAResume):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
			"hint":  "Please upload a file containing Experience, Education, or Skills.",
		})
	case errors.As(err, &extractionErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": extractionErr.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("analysis failed: %v", err),
		})
	}
}
