package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/analyzer"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/server"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the screening HTTP API server",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(serveConfigFile)
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logger.New(cfg.LogJSON, cfg.Debug)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		lex, err := loadLexicon(cfg.LexiconPath)
		if err != nil {
			return err
		}

		engine := analyzer.New(lex)
		return server.New(cfg, engine, log).Start()
	},
}

func loadLexicon(path string) (*lexicon.Store, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.LoadFile(path)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}
