package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputFmt string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "atscheck",
	Short: "Match a resume against a job description",
	Long: `atscheck scores a resume against a job description the way an
applicant tracking system would.

It provides:
  - Text extraction from PDF and DOCX files
  - Job title and department category detection
  - A weighted ATS compatibility score (0-100)
  - Matched and missing keyword analysis with suggestions`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")

	rootCmd.AddCommand(analyzeCmd)
}
