package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/output"
	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/services"
)

var (
	resumePath string
	jdPath     string
	jdText     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Analyze runs the full scoring pipeline on one resume and one job
description and prints the report.

The resume must be a PDF or DOCX file. The job description can be a PDF,
DOCX, or plain-text file (--jd), or passed inline (--jd-text).`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&resumePath, "resume", "", "path to the resume (.pdf or .docx)")
	analyzeCmd.Flags().StringVar(&jdPath, "jd", "", "path to the job description (.pdf, .docx, or .txt)")
	analyzeCmd.Flags().StringVar(&jdText, "jd-text", "", "job description as inline text")
	analyzeCmd.MarkFlagRequired("resume")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if jdPath == "" && jdText == "" {
		return errors.New("provide a job description with --jd or --jd-text")
	}

	tagger, err := services.NewProseTagger()
	if err != nil {
		return fmt.Errorf("failed to initialize tagging model: %w", err)
	}

	analyzer := services.NewAnalyzerService(
		services.NewExtractorService(),
		services.NewValidatorService(),
		services.NewClassifierService(tagger),
		services.NewSimilarityService(),
		services.NewScorerService(),
		services.NewKeywordService(tagger),
	)

	resumeDoc, err := readDocument(resumePath)
	if err != nil {
		return err
	}
	if resumeDoc.Format == models.FormatText {
		return fmt.Errorf("resume must be a PDF or DOCX file, got %s", resumePath)
	}

	var jobDoc models.Document
	if jdPath != "" {
		jobDoc, err = readDocument(jdPath)
		if err != nil {
			return err
		}
	} else {
		jobDoc = models.Document{
			Filename: "job_description.txt",
			Format:   models.FormatText,
			Data:     []byte(jdText),
		}
	}

	report, err := analyzer.AnalyzeDocuments(resumeDoc, jobDoc)
	if err != nil {
		if errors.Is(err, models.ErrNotAResume) {
			return fmt.Errorf("%s: upload a file containing Experience, Education, or Skills", err)
		}
		return err
	}

	if outputFmt == "json" {
		return output.JSON(report)
	}
	return output.Table(report)
}

func readDocument(path string) (models.Document, error) {
	format, ok := models.FormatFromFilename(path)
	if !ok {
		return models.Document{}, fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return models.Document{
		Filename: path,
		Format:   format,
		Data:     data,
	}, nil
}
