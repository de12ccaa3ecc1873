package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Sarma-Doranala/AI-Resume-Analyzer/internal/models"
)

// Table writes a report as formatted text to stdout
func Table(report *models.AnalysisReport) error {
	return TableTo(os.Stdout, report)
}

// TableTo writes a report as formatted text to the given writer
func TableTo(w io.Writer, report *models.AnalysisReport) error {
	fmt.Fprintf(w, "Overall ATS Score:  %.0f/100\n", report.Score)
	fmt.Fprintf(w, "Detected Role:      %s\n", report.JobIdentity.Title)
	fmt.Fprintf(w, "Category:           %s\n", report.JobIdentity.Category)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEYWORDS\tCOUNT\tTERMS")
	fmt.Fprintln(tw, "--------\t-----\t-----")
	fmt.Fprintf(tw, "Matched\t%d\t%s\n", len(report.MatchedKeywords), truncateList(report.MatchedKeywords, 10))
	fmt.Fprintf(tw, "Missing\t%d\t%s\n", len(report.MissingKeywords), truncateList(report.MissingKeywords, 10))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Required Resume Modifications:")
		for i, rec := range report.Recommendations {
			fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
		}
	}

	return nil
}

func truncateList(terms []string, max int) string {
	if len(terms) == 0 {
		return "-"
	}
	if len(terms) <= max {
		return strings.Join(terms, ", ")
	}
	return strings.Join(terms[:max], ", ") + ", ..."
}
