package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/schemas"
	bundled "github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate saved reports or config files against a JSON Schema",
	Long: "Validates JSON or YAML files against a bundled schema (score_report, keyword_groups, config) " +
		"or a schema file on disk. Every file is checked; the command fails if any is invalid.",
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Bundled schema name or schema file path (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

// schemaRef maps a short name such as "score_report" to its bundled file
// name; anything else is returned unchanged.
func schemaRef(name string) string {
	for _, bundledName := range bundled.Names() {
		if name == bundledName || name+".schema.json" == bundledName {
			return bundledName
		}
	}
	return name
}

func runValidate(cmd *cobra.Command, args []string) error {
	ref := schemaRef(validateSchema)
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		err := schemas.ValidateFile(ref, path)

		var validationErr *schemas.ValidationError
		switch {
		case err == nil:
			_, _ = fmt.Fprintf(out, "✓ %s\n", path)
		case errors.As(err, &validationErr):
			failed++
			_, _ = fmt.Fprintf(out, "✗ %s\n", path)
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(out, "    %s: %s\n", fe.Field, fe.Message)
			}
		default:
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation against %s", failed, len(args), strings.TrimSuffix(ref, ".schema.json"))
	}
	return nil
}
