// Package main provides the ats_agent CLI for scoring resumes against job descriptions.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS resume scorer",
	Long: "ats_agent estimates how well a resume will fare in an applicant tracking system: " +
		"keyword coverage against a job description, category scores and formatting checks.",
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

var (
	configPath string
	rulesPath  string
	logLevel   string
	logFormat  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to YAML rule overlay")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: auto, json, console")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
