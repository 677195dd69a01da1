package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the rule tables used for extraction and checks",
}

var rulesDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective rule tables as a YAML overlay",
	Long: "Prints the built-in rule tables, merged with --rules when given, as a replace-mode " +
		"overlay that can be edited and passed back with --rules.",
	RunE: runRulesDump,
}

var rulesDumpOutput string

func init() {
	rulesDumpCmd.Flags().StringVarP(&rulesDumpOutput, "out", "o", "", "Write the overlay to this file instead of stdout")

	rulesCmd.AddCommand(rulesDumpCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRulesDump(_ *cobra.Command, _ []string) error {
	data, err := rules.Dump(ruleSet)
	if err != nil {
		return fmt.Errorf("failed to render rules: %w", err)
	}

	if rulesDumpOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(rulesDumpOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write rules: %w", err)
	}
	return nil
}
