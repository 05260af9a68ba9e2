package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/types"
)

var (
	matchJobFile        string
	matchCandidatesFile string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank a batch of candidates against a job description",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}

		jobText, err := readDocument(matchJobFile)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(matchCandidatesFile)
		if err != nil {
			return fmt.Errorf("failed to read candidates file %s: %w", matchCandidatesFile, err)
		}
		var candidates []types.CandidateProfile
		if err := json.Unmarshal(data, &candidates); err != nil {
			return fmt.Errorf("failed to parse candidates JSON: %w", err)
		}

		matches, err := engine.MatchCandidates(cmd.Context(), jobText, candidates)
		if err != nil {
			return err
		}
		return printJSON(matches)
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "Path to the job description text file")
	matchCmd.Flags().StringVar(&matchCandidatesFile, "candidates", "", "Path to a JSON file with an array of candidate profiles")
	matchCmd.Flags().StringVar(&analyzeLexiconPath, "lexicon", "", "Path to a lexicon override JSON file")
	_ = matchCmd.MarkFlagRequired("job")
	_ = matchCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(matchCmd)
}
