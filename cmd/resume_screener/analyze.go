package main

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/analyzer"
)

var analyzeLexiconPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume or job description from a text file",
}

var analyzeResumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Score a resume text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		text, err := readDocument(args[0])
		if err != nil {
			return err
		}
		analysis, err := engine.AnalyzeResume(text)
		if err != nil {
			return err
		}
		return printJSON(analysis)
	},
}

var analyzeJobCmd = &cobra.Command{
	Use:   "job <file>",
	Short: "Analyze a job description text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		text, err := readDocument(args[0])
		if err != nil {
			return err
		}
		analysis, err := engine.AnalyzeJob(text)
		if err != nil {
			return err
		}
		return printJSON(analysis)
	},
}

func buildEngine() (*analyzer.Analyzer, error) {
	lex, err := loadLexicon(analyzeLexiconPath)
	if err != nil {
		return nil, err
	}
	return analyzer.New(lex), nil
}

// readDocument reads a plain-text document. Unreadable files and non-UTF-8
// content are reported as extraction failures; the engine never re-attempts
// extraction.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &analyzer.ErrExtractionFailed{Cause: err}
	}
	if !utf8.Valid(data) {
		return "", &analyzer.ErrExtractionFailed{Cause: fmt.Errorf("%s is not valid UTF-8 text", path)}
	}
	return string(data), nil
}

func printJSON(value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeLexiconPath, "lexicon", "", "Path to a lexicon override JSON file")
	analyzeCmd.AddCommand(analyzeResumeCmd)
	analyzeCmd.AddCommand(analyzeJobCmd)
	rootCmd.AddCommand(analyzeCmd)
}
