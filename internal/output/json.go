package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
)

// JSON writes a report as indented JSON to stdout
func JSON(report *models.AnalysisReport) error {
	return JSONTo(os.Stdout, report)
}

// JSONTo writes a report as indented JSON to the given writer
func JSONTo(w io.Writer, report *models.AnalysisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
